package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"slices"
	"strings"

	"radioapp/internal/config"
	"radioapp/internal/models"
	"radioapp/internal/repository"
	"radioapp/internal/storage"
)

var allowedUploadExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".mp3", ".wav"}

var ErrUnsupportedFileType = errors.New("unsupported file type")

// Upload is a validated multipart file ready for object storage.
type Upload struct {
	FileName string
	File     io.Reader
	Size     int64
}

type CreatePublicationRequest struct {
	UserID    int64
	Content   string
	ProgramID *int64
}

type UpdatePublicationRequest struct {
	PublicationID int64
	Content       string
}

type PublicationService interface {
	CreatePublication(ctx context.Context, req CreatePublicationRequest, upload *Upload) (*models.Publication, error)
	UpdatePublication(ctx context.Context, req UpdatePublicationRequest, upload *Upload) (*models.Publication, error)
	DeletePublication(ctx context.Context, publicationID int64) error
	GetPublication(ctx context.Context, publicationID int64) (*models.Publication, error)
	ListPublications(ctx context.Context) ([]models.Publication, error)
	ListByProgram(ctx context.Context, programID int64) ([]models.Publication, error)
}

type publicationService struct {
	publicationRepo repository.PublicationRepository
	reactionRepo    repository.ReactionRepository
	commentRepo     repository.CommentRepository
	userRepo        repository.UserRepository
	storage         storage.Storage
	cfg             *config.Config
}

func NewPublicationService(
	publicationRepo repository.PublicationRepository,
	reactionRepo repository.ReactionRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	storage storage.Storage,
	cfg *config.Config,
) PublicationService {
	return &publicationService{
		publicationRepo: publicationRepo,
		reactionRepo:    reactionRepo,
		commentRepo:     commentRepo,
		userRepo:        userRepo,
		storage:         storage,
		cfg:             cfg,
	}
}

// ValidateUpload rejects files with unsupported extensions. Called before
// any database interaction.
func ValidateUpload(fileName string) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !slices.Contains(allowedUploadExtensions, ext) {
		return ErrUnsupportedFileType
	}
	return nil
}

func (s *publicationService) CreatePublication(ctx context.Context, req CreatePublicationRequest, upload *Upload) (*models.Publication, error) {
	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	publication := &models.Publication{
		UserID:         req.UserID,
		Username:       user.Username,
		Content:        req.Content,
		FilePaths:      []string{},
		ReactionsCount: models.ReactionCounts{},
	}
	if req.ProgramID != nil {
		publication.ProgramID = sql.NullInt64{Int64: *req.ProgramID, Valid: true}
	}

	var objectName string
	if upload != nil {
		var fileURL string
		objectName, fileURL, err = s.storage.UploadFile(ctx, upload.FileName, upload.File, upload.Size)
		if err != nil {
			return nil, fmt.Errorf("failed to upload file: %w", err)
		}
		publication.FilePaths = []string{fileURL}
	}

	if err = s.publicationRepo.Create(ctx, publication); err != nil {
		if objectName != "" {
			s.storage.DeleteFile(ctx, objectName)
		}
		return nil, err
	}

	return publication, nil
}

func (s *publicationService) UpdatePublication(ctx context.Context, req UpdatePublicationRequest, upload *Upload) (*models.Publication, error) {
	publication, err := s.publicationRepo.GetByID(ctx, req.PublicationID)
	if err != nil {
		return nil, err
	}

	publication.Content = req.Content

	var oldPaths []string
	if upload != nil {
		_, fileURL, err := s.storage.UploadFile(ctx, upload.FileName, upload.File, upload.Size)
		if err != nil {
			return nil, fmt.Errorf("failed to upload file: %w", err)
		}
		oldPaths = publication.FilePaths
		publication.FilePaths = []string{fileURL}
	}

	if err = s.publicationRepo.Update(ctx, publication); err != nil {
		return nil, err
	}

	s.deleteStoredFiles(ctx, oldPaths)

	return publication, nil
}

func (s *publicationService) DeletePublication(ctx context.Context, publicationID int64) error {
	publication, err := s.publicationRepo.GetByID(ctx, publicationID)
	if err != nil {
		return err
	}

	if err = s.publicationRepo.Delete(ctx, publicationID); err != nil {
		return err
	}

	s.deleteStoredFiles(ctx, publication.FilePaths)

	return nil
}

func (s *publicationService) GetPublication(ctx context.Context, publicationID int64) (*models.Publication, error) {
	publication, err := s.publicationRepo.GetByID(ctx, publicationID)
	if err != nil {
		return nil, err
	}

	if err = s.attachSocialData(ctx, publication); err != nil {
		return nil, err
	}

	return publication, nil
}

func (s *publicationService) ListPublications(ctx context.Context) ([]models.Publication, error) {
	return s.publicationRepo.GetAll(ctx)
}

// ListByProgram returns the program's publications with reactions and the
// comment tree attached to each one.
func (s *publicationService) ListByProgram(ctx context.Context, programID int64) ([]models.Publication, error) {
	publications, err := s.publicationRepo.GetByProgramID(ctx, programID)
	if err != nil {
		return nil, err
	}

	for i := range publications {
		if err = s.attachSocialData(ctx, &publications[i]); err != nil {
			return nil, err
		}
	}

	return publications, nil
}

func (s *publicationService) attachSocialData(ctx context.Context, publication *models.Publication) error {
	reactions, err := s.reactionRepo.GetByPublicationID(ctx, publication.ID)
	if err != nil {
		return err
	}
	publication.Reactions = reactions

	comments, err := s.commentRepo.GetByPublicationID(ctx, publication.ID)
	if err != nil {
		return err
	}
	publication.Comments = BuildCommentTree(comments)

	return nil
}

func (s *publicationService) deleteStoredFiles(ctx context.Context, fileURLs []string) {
	for _, fileURL := range fileURLs {
		objectName := s.storage.ObjectNameFromURL(fileURL)
		if objectName == "" {
			continue
		}
		if err := s.storage.DeleteFile(ctx, objectName); err != nil {
			log.Printf("Warning: failed to delete stored file %s: %v", objectName, err)
		}
	}
}
