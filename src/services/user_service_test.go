package services

import (
	"context"
	"errors"
	"testing"

	"github.com/accuransi/website-api/src/models"
	"github.com/accuransi/website-api/src/repositories"
	"github.com/accuransi/website-api/src/repositories/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and defaults the role", func(t *testing.T) {
		repo := mock.NewUserRepository()
		repo.CreateFunc = func(ctx context.Context, user *models.User) error {
			user.ID = 1
			return nil
		}

		svc := NewUserService(repo)
		user, err := svc.Create(ctx, "admin", "secret123", "")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user.Role != models.RoleAdmin {
			t.Errorf("expected role %q, got %q", models.RoleAdmin, user.Role)
		}
		if user.PasswordHash == "secret123" {
			t.Fatal("password stored in plaintext")
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")) != nil {
			t.Error("stored hash does not verify against the password")
		}
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		svc := NewUserService(mock.NewUserRepository())
		_, err := svc.Create(ctx, "admin", "short", "")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("propagates duplicate username", func(t *testing.T) {
		repo := mock.NewUserRepository()
		repo.CreateFunc = func(ctx context.Context, user *models.User) error {
			return repositories.ErrUsernameTaken
		}

		svc := NewUserService(repo)
		_, err := svc.Create(ctx, "admin", "secret123", "")
		if !errors.Is(err, repositories.ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got %v", err)
		}
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("without password only the username changes", func(t *testing.T) {
		repo := mock.NewUserRepository()
		var gotHash *string
		repo.UpdateFunc = func(ctx context.Context, id int64, username string, passwordHash *string) (*models.User, error) {
			gotHash = passwordHash
			return &models.User{ID: id, Username: username, Role: models.RoleAdmin}, nil
		}

		svc := NewUserService(repo)
		user, err := svc.Update(ctx, 3, "renamed", nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotHash != nil {
			t.Error("expected no password hash to reach the repository")
		}
		if user.Username != "renamed" {
			t.Errorf("expected username %q, got %q", "renamed", user.Username)
		}
	})

	t.Run("with password the hash is replaced", func(t *testing.T) {
		repo := mock.NewUserRepository()
		var gotHash *string
		repo.UpdateFunc = func(ctx context.Context, id int64, username string, passwordHash *string) (*models.User, error) {
			gotHash = passwordHash
			return &models.User{ID: id, Username: username, Role: models.RoleAdmin}, nil
		}

		svc := NewUserService(repo)
		password := "newsecret99"
		if _, err := svc.Update(ctx, 3, "admin", &password); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotHash == nil {
			t.Fatal("expected a password hash to reach the repository")
		}
		if bcrypt.CompareHashAndPassword([]byte(*gotHash), []byte(password)) != nil {
			t.Error("new hash does not verify against the new password")
		}
	})

	t.Run("missing id surfaces not found", func(t *testing.T) {
		svc := NewUserService(mock.NewUserRepository())
		_, err := svc.Update(ctx, 99, "admin", nil)
		if !errors.Is(err, repositories.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("empty username rejected", func(t *testing.T) {
		svc := NewUserService(mock.NewUserRepository())
		_, err := svc.Update(ctx, 3, "", nil)
		if !errors.Is(err, ErrInvalidUsername) {
			t.Errorf("expected ErrInvalidUsername, got %v", err)
		}
	})
}

func TestUserService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the first admin on an empty table", func(t *testing.T) {
		repo := mock.NewUserRepository()
		repo.CountFunc = func(ctx context.Context) (int, error) { return 0, nil }
		repo.CreateFunc = func(ctx context.Context, user *models.User) error {
			user.ID = 1
			return nil
		}

		svc := NewUserService(repo)
		created, err := svc.EnsureAdmin(ctx, "admin", "secret123")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !created {
			t.Error("expected admin to be created")
		}
		if len(repo.Calls["Create"]) != 1 {
			t.Errorf("expected 1 call to Create, got %d", len(repo.Calls["Create"]))
		}
	})

	t.Run("does nothing when users exist", func(t *testing.T) {
		repo := mock.NewUserRepository()
		repo.CountFunc = func(ctx context.Context) (int, error) { return 2, nil }

		svc := NewUserService(repo)
		created, err := svc.EnsureAdmin(ctx, "admin", "secret123")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if created {
			t.Error("expected no admin to be created")
		}
		if len(repo.Calls["Create"]) != 0 {
			t.Errorf("expected no calls to Create, got %d", len(repo.Calls["Create"]))
		}
	})
}
