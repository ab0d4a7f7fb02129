package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"radioapp/internal/config"
	"radioapp/internal/mailer"
	"radioapp/internal/models"
	"radioapp/internal/repository"
)

// Access and reset tokens both expire after one hour.
const tokenDuration = time.Hour

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	IssueToken(user *models.User) (string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	mailer   mailer.Mailer
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, mailer mailer.Mailer) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		mailer:   mailer,
	}
}

func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		IsAdmin:  req.IsAdmin,
	}

	err := s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

func (s *authService) IssueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"isadmin":  user.IsAdmin,
		"exp":      time.Now().Add(tokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	resetToken, err := s.generateResetToken(user)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expires := time.Now().Add(tokenDuration)
	if err = s.userRepo.SetResetToken(ctx, user.ID, resetToken, expires); err != nil {
		return err
	}

	return s.mailer.SendPasswordReset(user.Email, resetToken)
}

func (s *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	userID, err := s.verifyResetToken(resetToken)
	if err != nil {
		return repository.ErrResetTokenInvalid
	}

	return s.userRepo.ResetPassword(ctx, userID, resetToken, newPassword)
}

func (s *authService) generateResetToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.ID,
		"exp":    time.Now().Add(tokenDuration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecretKey))
}

func (s *authService) verifyResetToken(resetToken string) (int64, error) {
	token, err := jwt.Parse(resetToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		return 0, repository.ErrResetTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, repository.ErrResetTokenInvalid
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		return 0, repository.ErrResetTokenInvalid
	}

	return int64(userID), nil
}
