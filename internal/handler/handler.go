package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"radioapp/internal/config"
	"radioapp/internal/repository"
	"radioapp/internal/service"
)

type Handlers struct {
	AuthService        service.AuthService
	UserService        service.UserService
	ProgramService     service.ProgramService
	PublicationService service.PublicationService
	ReactionService    service.ReactionService
	CommentService     service.CommentService
	UserRepo           repository.UserRepository
	ProgramRepo        repository.ProgramRepository
	Cfg                *config.Config
	Validate           *validator.Validate
	Health             func() error
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config, health func() error) *Handlers {
	return &Handlers{
		AuthService:        service.Auth,
		UserService:        service.User,
		ProgramService:     service.Program,
		PublicationService: service.Publication,
		ReactionService:    service.Reaction,
		CommentService:     service.Comment,
		UserRepo:           repo.User,
		ProgramRepo:        repo.Program,
		Cfg:                config,
		Validate:           validator.New(),
		Health:             health,
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"message": "Welcome to the Radio App API!"}, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.Health != nil {
		if err := h.Health(); err != nil {
			WriteError(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
