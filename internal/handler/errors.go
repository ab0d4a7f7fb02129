package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"radioapp/internal/repository"
	"radioapp/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps known failures to their HTTP status; anything
// unrecognized is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrProgramNotFound),
		errors.Is(err, repository.ErrPublicationNotFound),
		errors.Is(err, repository.ErrCommentNotFound),
		errors.Is(err, repository.ErrReactionNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, repository.ErrDuplicateReaction),
		errors.Is(err, repository.ErrDuplicateUsername),
		errors.Is(err, service.ErrInvalidReactionType),
		errors.Is(err, service.ErrParentCommentMismatch),
		errors.Is(err, service.ErrUnsupportedFileType):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrResetTokenInvalid),
		errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, err.Error(), http.StatusUnauthorized)
	default:
		WriteError(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
