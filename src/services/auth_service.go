package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/accuransi/website-api/src/repositories"
	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies credentials and hands out session tokens.
type AuthService struct {
	users  repositories.UserRepository
	tokens *TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(users repositories.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies the username/password pair and issues a token. A missing
// user and a wrong password both return ErrInvalidCredentials; only a store
// failure is reported differently.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	return s.tokens.Issue(user)
}
