package handlers

import (
	"encoding/json"
	"net/http"

	"radioapp/internal/service"
)

type CommentRequest struct {
	PublicationID   int64  `json:"publication_id" validate:"required"`
	UserID          int64  `json:"user_id" validate:"required"`
	ParentCommentID *int64 `json:"parent_comment_id"`
	Content         string `json:"content" validate:"required"`
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Make sure publication_id, user_id, and content are provided", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.AddComment(r.Context(), service.CreateCommentRequest{
		PublicationID:   req.PublicationID,
		UserID:          req.UserID,
		ParentCommentID: req.ParentCommentID,
		Content:         req.Content,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

// GetComments returns the comments of a publication organized as a reply
// tree.
func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	publicationID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid publication id", http.StatusBadRequest)
		return
	}

	tree, err := h.CommentService.GetCommentTree(r.Context(), publicationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, tree, http.StatusOK)
}

func (h *Handlers) EditComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid comment id", http.StatusBadRequest)
		return
	}

	var req struct {
		Content string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Content is required", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.EditComment(r.Context(), commentID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid comment id", http.StatusBadRequest)
		return
	}

	if err := h.CommentService.DeleteComment(r.Context(), commentID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Comment deleted successfully"}, http.StatusOK)
}
