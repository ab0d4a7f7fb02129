package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"radioapp/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) SearchUsersByName(ctx context.Context, name string) ([]models.User, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, userID int64, resetToken string, expires time.Time) error {
	args := m.Called(ctx, userID, resetToken, expires)
	return args.Error(0)
}

func (m *MockUserRepository) ResetPassword(ctx context.Context, userID int64, resetToken, newPassword string) error {
	args := m.Called(ctx, userID, resetToken, newPassword)
	return args.Error(0)
}

type MockPublicationRepository struct {
	mock.Mock
}

func (m *MockPublicationRepository) Create(ctx context.Context, publication *models.Publication) error {
	args := m.Called(ctx, publication)
	return args.Error(0)
}

func (m *MockPublicationRepository) GetByID(ctx context.Context, publicationID int64) (*models.Publication, error) {
	args := m.Called(ctx, publicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Publication), args.Error(1)
}

func (m *MockPublicationRepository) GetAll(ctx context.Context) ([]models.Publication, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Publication), args.Error(1)
}

func (m *MockPublicationRepository) GetByProgramID(ctx context.Context, programID int64) ([]models.Publication, error) {
	args := m.Called(ctx, programID)
	return args.Get(0).([]models.Publication), args.Error(1)
}

func (m *MockPublicationRepository) Update(ctx context.Context, publication *models.Publication) error {
	args := m.Called(ctx, publication)
	return args.Error(0)
}

func (m *MockPublicationRepository) Delete(ctx context.Context, publicationID int64) error {
	args := m.Called(ctx, publicationID)
	return args.Error(0)
}

type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) Add(ctx context.Context, reaction *models.Reaction) error {
	args := m.Called(ctx, reaction)
	return args.Error(0)
}

func (m *MockReactionRepository) Remove(ctx context.Context, publicationID, userID int64, reactionType string) error {
	args := m.Called(ctx, publicationID, userID, reactionType)
	return args.Error(0)
}

func (m *MockReactionRepository) GetByPublicationID(ctx context.Context, publicationID int64) ([]models.Reaction, error) {
	args := m.Called(ctx, publicationID)
	return args.Get(0).([]models.Reaction), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByPublicationID(ctx context.Context, publicationID int64) ([]models.Comment, error) {
	args := m.Called(ctx, publicationID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, commentID int64, content string) (*models.Comment, error) {
	args := m.Called(ctx, commentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteFile(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *MockStorage) ObjectNameFromURL(fileURL string) string {
	args := m.Called(fileURL)
	return args.String(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendPasswordReset(email, resetToken string) error {
	args := m.Called(email, resetToken)
	return args.Error(0)
}
