package handlers

import (
	"encoding/json"
	"net/http"

	"radioapp/internal/service"
)

type ReactionRequest struct {
	PublicationID int64  `json:"publication_id" validate:"required"`
	UserID        int64  `json:"user_id" validate:"required"`
	ReactionType  string `json:"reaction_type" validate:"required"`
	ProgramID     *int64 `json:"programa_id"`
}

func (h *Handlers) AddReaction(w http.ResponseWriter, r *http.Request) {
	var req ReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Make sure publication_id, user_id, and a valid reaction_type are provided", http.StatusBadRequest)
		return
	}

	reaction, err := h.ReactionService.AddReaction(r.Context(), service.ReactionRequest{
		PublicationID: req.PublicationID,
		UserID:        req.UserID,
		ReactionType:  req.ReactionType,
		ProgramID:     req.ProgramID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, reaction, http.StatusCreated)
}

func (h *Handlers) RemoveReaction(w http.ResponseWriter, r *http.Request) {
	var req ReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Make sure publication_id, user_id, and a valid reaction_type are provided", http.StatusBadRequest)
		return
	}

	err := h.ReactionService.RemoveReaction(r.Context(), service.ReactionRequest{
		PublicationID: req.PublicationID,
		UserID:        req.UserID,
		ReactionType:  req.ReactionType,
		ProgramID:     req.ProgramID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Reaction removed successfully"}, http.StatusOK)
}
