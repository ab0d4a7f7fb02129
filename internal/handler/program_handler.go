package handlers

import (
	"encoding/json"
	"net/http"

	"radioapp/internal/repository"
)

type ProgramRequest struct {
	Title           string `json:"titulo" validate:"required"`
	Description     string `json:"descripcion"`
	AdministratorID int64  `json:"administrador_id" validate:"required"`
}

func (h *Handlers) GetPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.ProgramRepo.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, programs, http.StatusOK)
}

func (h *Handlers) GetProgram(w http.ResponseWriter, r *http.Request) {
	programID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid program id", http.StatusBadRequest)
		return
	}

	program, err := h.ProgramRepo.GetByID(r.Context(), programID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, program, http.StatusOK)
}

func (h *Handlers) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req ProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Title and administrator ID are required", http.StatusBadRequest)
		return
	}

	program, err := h.ProgramService.CreateProgram(r.Context(), repository.CreateProgramRequest{
		Title:           req.Title,
		Description:     req.Description,
		AdministratorID: req.AdministratorID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, program, http.StatusCreated)
}

func (h *Handlers) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	programID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid program id", http.StatusBadRequest)
		return
	}

	var req struct {
		Title       string `json:"titulo" validate:"required"`
		Description string `json:"descripcion"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Title is required", http.StatusBadRequest)
		return
	}

	program, err := h.ProgramService.UpdateProgram(r.Context(), repository.UpdateProgramRequest{
		ProgramID:   programID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, program, http.StatusOK)
}

func (h *Handlers) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	programID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid program id", http.StatusBadRequest)
		return
	}

	if err := h.ProgramService.DeleteProgram(r.Context(), programID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Program deleted successfully"}, http.StatusOK)
}
