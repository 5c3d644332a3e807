package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fuelapi/internal/repository"
	"fuelapi/internal/token"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthService interface {
	Login(username, password string) (string, error)
}

type authService struct {
	repo   repository.AuthRepository
	tokens *token.Manager
	logger *zap.Logger
}

func NewAuthService(repo repository.AuthRepository, tokens *token.Manager, logger *zap.Logger) AuthService {
	return &authService{repo: repo, tokens: tokens, logger: logger}
}

// Login verifies credentials and mints a session token. Unknown username
// and wrong password produce the same ErrInvalidCredentials so callers
// cannot enumerate usernames.
func (s *authService) Login(username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return "", ErrMissingCredentials
	}

	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Failed to get user by username", zap.Error(err))
		return "", fmt.Errorf("failed to retrieve user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.logger.Error("Failed to generate session token", zap.Error(err))
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User logged in successfully.", zap.String("username", user.Username))
	return tokenString, nil
}
