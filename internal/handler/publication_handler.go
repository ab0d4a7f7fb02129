package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"radioapp/internal/service"
)

func (h *Handlers) GetPublications(w http.ResponseWriter, r *http.Request) {
	publications, err := h.PublicationService.ListPublications(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, publications, http.StatusOK)
}

func (h *Handlers) GetPublication(w http.ResponseWriter, r *http.Request) {
	publicationID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid publication id", http.StatusBadRequest)
		return
	}

	publication, err := h.PublicationService.GetPublication(r.Context(), publicationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, publication, http.StatusOK)
}

func (h *Handlers) GetProgramPublications(w http.ResponseWriter, r *http.Request) {
	programID, ok := pathID(r, "programId")
	if !ok {
		WriteError(w, "Invalid program id", http.StatusBadRequest)
		return
	}

	publications, err := h.PublicationService.ListByProgram(r.Context(), programID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, publications, http.StatusOK)
}

// parseUpload extracts the optional multipart "file" field. The size cap is
// enforced before anything touches the database.
func (h *Handlers) parseUpload(w http.ResponseWriter, r *http.Request) (*service.Upload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WriteError(w, "File too large", http.StatusRequestEntityTooLarge)
		} else {
			WriteError(w, "Invalid multipart form", http.StatusBadRequest)
		}
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, true
		}
		WriteError(w, "Invalid file field", http.StatusBadRequest)
		return nil, false
	}

	if err = service.ValidateUpload(header.Filename); err != nil {
		file.Close()
		writeServiceError(w, err)
		return nil, false
	}

	return &service.Upload{
		FileName: header.Filename,
		File:     file,
		Size:     header.Size,
	}, true
}

func (h *Handlers) CreatePublication(w http.ResponseWriter, r *http.Request) {
	upload, ok := h.parseUpload(w, r)
	if !ok {
		return
	}

	userID, err := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	if err != nil {
		WriteError(w, "Invalid user_id", http.StatusBadRequest)
		return
	}

	content := r.FormValue("content")
	if content == "" {
		WriteError(w, "Content is required", http.StatusBadRequest)
		return
	}

	req := service.CreatePublicationRequest{
		UserID:  userID,
		Content: content,
	}

	if raw := r.FormValue("programa_id"); raw != "" {
		programID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			WriteError(w, "Invalid programa_id", http.StatusBadRequest)
			return
		}
		req.ProgramID = &programID
	}

	publication, err := h.PublicationService.CreatePublication(r.Context(), req, upload)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, publication, http.StatusCreated)
}

func (h *Handlers) UpdatePublication(w http.ResponseWriter, r *http.Request) {
	publicationID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid publication id", http.StatusBadRequest)
		return
	}

	upload, ok := h.parseUpload(w, r)
	if !ok {
		return
	}

	content := r.FormValue("content")
	if content == "" {
		WriteError(w, "Content is required", http.StatusBadRequest)
		return
	}

	publication, err := h.PublicationService.UpdatePublication(r.Context(), service.UpdatePublicationRequest{
		PublicationID: publicationID,
		Content:       content,
	}, upload)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, publication, http.StatusOK)
}

func (h *Handlers) DeletePublication(w http.ResponseWriter, r *http.Request) {
	publicationID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid publication id", http.StatusBadRequest)
		return
	}

	if err := h.PublicationService.DeletePublication(r.Context(), publicationID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Publication deleted successfully"}, http.StatusOK)
}
