package service

import (
	"context"
	"database/sql"
	"errors"
	"slices"

	"radioapp/internal/models"
	"radioapp/internal/repository"
)

// ValidReactionTypes is the fixed set of reactions a user can attach to a
// publication.
var ValidReactionTypes = []string{"Me gusta", "Me encanta", "Me interesa", "Me entristece"}

var ErrInvalidReactionType = errors.New("invalid reaction type")

type ReactionRequest struct {
	PublicationID int64  `json:"publication_id"`
	UserID        int64  `json:"user_id"`
	ReactionType  string `json:"reaction_type"`
	ProgramID     *int64 `json:"programa_id"`
}

type ReactionService interface {
	AddReaction(ctx context.Context, req ReactionRequest) (*models.Reaction, error)
	RemoveReaction(ctx context.Context, req ReactionRequest) error
}

type reactionService struct {
	reactionRepo    repository.ReactionRepository
	publicationRepo repository.PublicationRepository
	userRepo        repository.UserRepository
}

func NewReactionService(reactionRepo repository.ReactionRepository, publicationRepo repository.PublicationRepository, userRepo repository.UserRepository) ReactionService {
	return &reactionService{
		reactionRepo:    reactionRepo,
		publicationRepo: publicationRepo,
		userRepo:        userRepo,
	}
}

func (s *reactionService) AddReaction(ctx context.Context, req ReactionRequest) (*models.Reaction, error) {
	if !slices.Contains(ValidReactionTypes, req.ReactionType) {
		return nil, ErrInvalidReactionType
	}

	if _, err := s.publicationRepo.GetByID(ctx, req.PublicationID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	reaction := &models.Reaction{
		PublicationID: req.PublicationID,
		UserID:        req.UserID,
		ReactionType:  req.ReactionType,
		Username:      user.Username,
	}
	if req.ProgramID != nil {
		reaction.ProgramID = sql.NullInt64{Int64: *req.ProgramID, Valid: true}
	}

	if err = s.reactionRepo.Add(ctx, reaction); err != nil {
		return nil, err
	}

	return reaction, nil
}

func (s *reactionService) RemoveReaction(ctx context.Context, req ReactionRequest) error {
	if !slices.Contains(ValidReactionTypes, req.ReactionType) {
		return ErrInvalidReactionType
	}

	return s.reactionRepo.Remove(ctx, req.PublicationID, req.UserID, req.ReactionType)
}
