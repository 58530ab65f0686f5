package services

import (
	"context"
	"fmt"

	"github.com/accuransi/website-api/src/models"
	"github.com/accuransi/website-api/src/repositories"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles admin account management. It owns password hashing;
// nothing else in the system ever sees a plaintext password.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func validateCredentials(username, password string) error {
	if len(username) < 1 || len(username) > 255 {
		return ErrInvalidUsername
	}
	if len(password) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// List returns all accounts, hashes included; handlers are responsible for
// sanitizing before serialization.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

// Create hashes the password and stores a new admin account.
func (s *UserService) Create(ctx context.Context, username, password, role string) (*models.User, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}
	if role == "" {
		role = models.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update changes the username and, when password is non-nil, re-hashes and
// replaces the stored hash. The username is required even on a no-password
// update.
func (s *UserService) Update(ctx context.Context, id int64, username string, password *string) (*models.User, error) {
	if len(username) < 1 || len(username) > 255 {
		return nil, ErrInvalidUsername
	}

	var hash *string
	if password != nil {
		if len(*password) < 8 {
			return nil, ErrWeakPassword
		}
		h, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hs := string(h)
		hash = &hs
	}

	return s.repo.Update(ctx, id, username, hash)
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// EnsureAdmin creates the initial admin account when the users table is
// empty. Used by the first-run auto-seed.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if _, err := s.Create(ctx, username, password, models.RoleAdmin); err != nil {
		return false, err
	}
	return true, nil
}
