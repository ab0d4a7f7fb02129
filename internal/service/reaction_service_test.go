package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"radioapp/internal/models"
	"radioapp/internal/repository"
)

func TestAddReaction_InvalidType(t *testing.T) {
	reactionRepo := new(MockReactionRepository)
	publicationRepo := new(MockPublicationRepository)
	userRepo := new(MockUserRepository)

	svc := NewReactionService(reactionRepo, publicationRepo, userRepo)

	_, err := svc.AddReaction(context.Background(), ReactionRequest{
		PublicationID: 1,
		UserID:        7,
		ReactionType:  "Me aburre",
	})

	assert.ErrorIs(t, err, ErrInvalidReactionType)
	reactionRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	publicationRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAddReaction_PublicationNotFound(t *testing.T) {
	reactionRepo := new(MockReactionRepository)
	publicationRepo := new(MockPublicationRepository)
	userRepo := new(MockUserRepository)

	publicationRepo.On("GetByID", mock.Anything, int64(99)).
		Return(nil, repository.ErrPublicationNotFound)

	svc := NewReactionService(reactionRepo, publicationRepo, userRepo)

	_, err := svc.AddReaction(context.Background(), ReactionRequest{
		PublicationID: 99,
		UserID:        7,
		ReactionType:  "Me gusta",
	})

	assert.ErrorIs(t, err, repository.ErrPublicationNotFound)
	reactionRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAddReaction_Duplicate(t *testing.T) {
	reactionRepo := new(MockReactionRepository)
	publicationRepo := new(MockPublicationRepository)
	userRepo := new(MockUserRepository)

	publicationRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&models.Publication{ID: 1}, nil)
	userRepo.On("GetUserByID", mock.Anything, int64(7)).
		Return(&models.User{ID: 7, Username: "ana"}, nil)
	reactionRepo.On("Add", mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateReaction)

	svc := NewReactionService(reactionRepo, publicationRepo, userRepo)

	_, err := svc.AddReaction(context.Background(), ReactionRequest{
		PublicationID: 1,
		UserID:        7,
		ReactionType:  "Me gusta",
	})

	assert.ErrorIs(t, err, repository.ErrDuplicateReaction)
}

func TestAddReaction_Success(t *testing.T) {
	reactionRepo := new(MockReactionRepository)
	publicationRepo := new(MockPublicationRepository)
	userRepo := new(MockUserRepository)

	publicationRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&models.Publication{ID: 1}, nil)
	userRepo.On("GetUserByID", mock.Anything, int64(7)).
		Return(&models.User{ID: 7, Username: "ana"}, nil)
	reactionRepo.On("Add", mock.Anything, mock.MatchedBy(func(r *models.Reaction) bool {
		return r.PublicationID == 1 && r.UserID == 7 &&
			r.ReactionType == "Me encanta" && r.Username == "ana"
	})).Return(nil)

	svc := NewReactionService(reactionRepo, publicationRepo, userRepo)

	reaction, err := svc.AddReaction(context.Background(), ReactionRequest{
		PublicationID: 1,
		UserID:        7,
		ReactionType:  "Me encanta",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana", reaction.Username)
	reactionRepo.AssertExpectations(t)
}

func TestRemoveReaction_InvalidType(t *testing.T) {
	reactionRepo := new(MockReactionRepository)

	svc := NewReactionService(reactionRepo, new(MockPublicationRepository), new(MockUserRepository))

	err := svc.RemoveReaction(context.Background(), ReactionRequest{
		PublicationID: 1,
		UserID:        7,
		ReactionType:  "like",
	})

	assert.ErrorIs(t, err, ErrInvalidReactionType)
	reactionRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveReaction_NotFound(t *testing.T) {
	reactionRepo := new(MockReactionRepository)
	reactionRepo.On("Remove", mock.Anything, int64(1), int64(7), "Me interesa").
		Return(repository.ErrReactionNotFound)

	svc := NewReactionService(reactionRepo, new(MockPublicationRepository), new(MockUserRepository))

	err := svc.RemoveReaction(context.Background(), ReactionRequest{
		PublicationID: 1,
		UserID:        7,
		ReactionType:  "Me interesa",
	})

	assert.ErrorIs(t, err, repository.ErrReactionNotFound)
}
