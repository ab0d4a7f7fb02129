package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"radioapp/internal/models"
)

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrProgramNotFound     = errors.New("program not found")
	ErrPublicationNotFound = errors.New("publication not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrReactionNotFound    = errors.New("reaction not found")
	ErrDuplicateReaction   = errors.New("reaction already exists")
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrResetTokenInvalid   = errors.New("invalid or expired reset token")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	SearchUsersByName(ctx context.Context, name string) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userID int64) error
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	SetResetToken(ctx context.Context, userID int64, resetToken string, expires time.Time) error
	ResetPassword(ctx context.Context, userID int64, resetToken, newPassword string) error
}

type ProgramRepository interface {
	Create(ctx context.Context, program *models.Program) error
	GetByID(ctx context.Context, programID int64) (*models.Program, error)
	GetAll(ctx context.Context) ([]models.Program, error)
	Update(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, programID int64) error
}

type PublicationRepository interface {
	Create(ctx context.Context, publication *models.Publication) error
	GetByID(ctx context.Context, publicationID int64) (*models.Publication, error)
	GetAll(ctx context.Context) ([]models.Publication, error)
	GetByProgramID(ctx context.Context, programID int64) ([]models.Publication, error)
	Update(ctx context.Context, publication *models.Publication) error
	Delete(ctx context.Context, publicationID int64) error
}

type ReactionRepository interface {
	Add(ctx context.Context, reaction *models.Reaction) error
	Remove(ctx context.Context, publicationID, userID int64, reactionType string) error
	GetByPublicationID(ctx context.Context, publicationID int64) ([]models.Reaction, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID int64) (*models.Comment, error)
	GetByPublicationID(ctx context.Context, publicationID int64) ([]models.Comment, error)
	Update(ctx context.Context, commentID int64, content string) (*models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

type Repository struct {
	User        UserRepository
	Program     ProgramRepository
	Publication PublicationRepository
	Reaction    ReactionRepository
	Comment     CommentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:        NewUserRepository(db),
		Program:     NewProgramRepository(db),
		Publication: NewPublicationRepository(db),
		Reaction:    NewReactionRepository(db),
		Comment:     NewCommentRepository(db),
	}
}
