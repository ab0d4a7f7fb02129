package test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"radioapp/internal/models"
	"radioapp/internal/repository"
	"radioapp/internal/service"
)

func TestAddReaction_Created(t *testing.T) {
	reactionService := new(MockReactionService)
	handler := createTestHandler()
	handler.ReactionService = reactionService

	reactionService.On("AddReaction", mock.Anything, service.ReactionRequest{
		PublicationID: 1,
		UserID:        7,
		ReactionType:  "Me gusta",
	}).Return(&models.Reaction{ID: 42, PublicationID: 1, UserID: 7, ReactionType: "Me gusta", Username: "ana"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/reactions",
		strings.NewReader(`{"publication_id": 1, "user_id": 7, "reaction_type": "Me gusta"}`))
	rr := httptest.NewRecorder()

	handler.AddReaction(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"Me gusta"`)
	reactionService.AssertExpectations(t)
}

func TestAddReaction_InvalidType(t *testing.T) {
	reactionService := new(MockReactionService)
	handler := createTestHandler()
	handler.ReactionService = reactionService

	reactionService.On("AddReaction", mock.Anything, mock.Anything).
		Return(nil, service.ErrInvalidReactionType)

	req := httptest.NewRequest(http.MethodPost, "/api/reactions",
		strings.NewReader(`{"publication_id": 1, "user_id": 7, "reaction_type": "like"}`))
	rr := httptest.NewRecorder()

	handler.AddReaction(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "invalid reaction type")
}

func TestAddReaction_Duplicate(t *testing.T) {
	reactionService := new(MockReactionService)
	handler := createTestHandler()
	handler.ReactionService = reactionService

	reactionService.On("AddReaction", mock.Anything, mock.Anything).
		Return(nil, repository.ErrDuplicateReaction)

	req := httptest.NewRequest(http.MethodPost, "/api/reactions",
		strings.NewReader(`{"publication_id": 1, "user_id": 7, "reaction_type": "Me gusta"}`))
	rr := httptest.NewRecorder()

	handler.AddReaction(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAddReaction_MissingFields(t *testing.T) {
	reactionService := new(MockReactionService)
	handler := createTestHandler()
	handler.ReactionService = reactionService

	req := httptest.NewRequest(http.MethodPost, "/api/reactions",
		strings.NewReader(`{"publication_id": 1}`))
	rr := httptest.NewRecorder()

	handler.AddReaction(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	reactionService.AssertNotCalled(t, "AddReaction", mock.Anything, mock.Anything)
}

func TestRemoveReaction_OK(t *testing.T) {
	reactionService := new(MockReactionService)
	handler := createTestHandler()
	handler.ReactionService = reactionService

	reactionService.On("RemoveReaction", mock.Anything, service.ReactionRequest{
		PublicationID: 1,
		UserID:        7,
		ReactionType:  "Me gusta",
	}).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/reactions",
		strings.NewReader(`{"publication_id": 1, "user_id": 7, "reaction_type": "Me gusta"}`))
	rr := httptest.NewRecorder()

	handler.RemoveReaction(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	reactionService.AssertExpectations(t)
}

func TestRemoveReaction_NotFound(t *testing.T) {
	reactionService := new(MockReactionService)
	handler := createTestHandler()
	handler.ReactionService = reactionService

	reactionService.On("RemoveReaction", mock.Anything, mock.Anything).
		Return(repository.ErrReactionNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/reactions",
		strings.NewReader(`{"publication_id": 1, "user_id": 7, "reaction_type": "Me gusta"}`))
	rr := httptest.NewRecorder()

	handler.RemoveReaction(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
