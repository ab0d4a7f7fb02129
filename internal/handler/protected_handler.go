package handlers

import (
	"net/http"

	"radioapp/internal/middleware"
)

func (h *Handlers) ProtectedResource(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Access granted to protected resource",
		"user":    claims,
	}, http.StatusOK)
}

func (h *Handlers) AdminResource(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Access granted to admin resource",
		"user":    claims,
	}, http.StatusOK)
}
