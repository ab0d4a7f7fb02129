package service

import (
	"radioapp/internal/config"
	"radioapp/internal/mailer"
	"radioapp/internal/repository"
	"radioapp/internal/storage"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Program     ProgramService
	Publication PublicationService
	Reaction    ReactionService
	Comment     CommentService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, mailer mailer.Mailer) *Service {
	return &Service{
		Auth:        NewAuthService(rep.User, cfg, mailer),
		User:        NewUserService(rep.User, cfg),
		Program:     NewProgramService(rep.Program),
		Publication: NewPublicationService(rep.Publication, rep.Reaction, rep.Comment, rep.User, storage, cfg),
		Reaction:    NewReactionService(rep.Reaction, rep.Publication, rep.User),
		Comment:     NewCommentService(rep.Comment, rep.Publication, rep.User),
	}
}
