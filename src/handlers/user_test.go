package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/accuransi/website-api/src/middleware"
	"github.com/accuransi/website-api/src/models"
	"github.com/accuransi/website-api/src/repositories"
	"github.com/accuransi/website-api/src/repositories/mock"
	"github.com/accuransi/website-api/src/services"
	"github.com/gin-gonic/gin"
)

func userTestRouter(t *testing.T, repo *mock.UserRepository) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := services.NewTokenService(testSecret)
	token, _, err := tokens.Issue(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	handler := NewUserHandler(services.NewUserService(repo))
	requireAuth := middleware.RequireAuth(tokens)

	router := gin.New()
	router.GET("/api/users", requireAuth, handler.HandleList)
	router.POST("/api/users", requireAuth, handler.HandleCreate)
	router.PUT("/api/users/:id", requireAuth, handler.HandleUpdate)
	router.DELETE("/api/users/:id", requireAuth, handler.HandleDelete)
	return router, token
}

func TestUserHandler_List(t *testing.T) {
	repo := mock.NewUserRepository()
	repo.ListFunc = func(ctx context.Context) ([]models.User, error) {
		return []models.User{
			{ID: 1, Username: "admin", PasswordHash: "$2a$10$secret", Role: models.RoleAdmin, CreatedAt: time.Now()},
		}, nil
	}
	router, token := userTestRouter(t, repo)

	t.Run("requires authentication", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/users", nil, "")
		assertStatusCode(t, w, http.StatusUnauthorized)
	})

	t.Run("never exposes password hashes", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/users", nil, token)
		assertStatusCode(t, w, http.StatusOK)

		if strings.Contains(w.Body.String(), "secret") || strings.Contains(w.Body.String(), "password_hash") {
			t.Errorf("response leaks password hash: %s", w.Body.String())
		}

		var users []models.User
		if err := json.Unmarshal(w.Body.Bytes(), &users); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if len(users) != 1 || users[0].Username != "admin" {
			t.Errorf("unexpected users %+v", users)
		}
	})
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		repo := mock.NewUserRepository()
		repo.CreateFunc = func(ctx context.Context, user *models.User) error {
			user.ID = 2
			user.CreatedAt = time.Now()
			return nil
		}
		router, token := userTestRouter(t, repo)

		w := performRequest(router, http.MethodPost, "/api/users",
			gin.H{"username": "editor", "password": "secret123"}, token)
		assertStatusCode(t, w, http.StatusCreated)

		if strings.Contains(w.Body.String(), "password") {
			t.Errorf("response leaks password material: %s", w.Body.String())
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := mock.NewUserRepository()
		repo.CreateFunc = func(ctx context.Context, user *models.User) error {
			return repositories.ErrUsernameTaken
		}
		router, token := userTestRouter(t, repo)

		w := performRequest(router, http.MethodPost, "/api/users",
			gin.H{"username": "admin", "password": "secret123"}, token)
		assertStatusCode(t, w, http.StatusConflict)
	})

	t.Run("missing password", func(t *testing.T) {
		router, token := userTestRouter(t, mock.NewUserRepository())
		w := performRequest(router, http.MethodPost, "/api/users",
			gin.H{"username": "editor"}, token)
		assertStatusCode(t, w, http.StatusBadRequest)
	})

	t.Run("short password", func(t *testing.T) {
		router, token := userTestRouter(t, mock.NewUserRepository())
		w := performRequest(router, http.MethodPost, "/api/users",
			gin.H{"username": "editor", "password": "short"}, token)
		assertStatusCode(t, w, http.StatusBadRequest)
	})
}

func TestUserHandler_Update(t *testing.T) {
	t.Run("username only", func(t *testing.T) {
		repo := mock.NewUserRepository()
		repo.UpdateFunc = func(ctx context.Context, id int64, username string, passwordHash *string) (*models.User, error) {
			if passwordHash != nil {
				t.Error("expected no password hash on a username-only update")
			}
			return &models.User{ID: id, Username: username, Role: models.RoleAdmin}, nil
		}
		router, token := userTestRouter(t, repo)

		w := performRequest(router, http.MethodPut, "/api/users/1",
			gin.H{"username": "renamed"}, token)
		assertStatusCode(t, w, http.StatusOK)
	})

	t.Run("username is required even with a password", func(t *testing.T) {
		router, token := userTestRouter(t, mock.NewUserRepository())
		w := performRequest(router, http.MethodPut, "/api/users/1",
			gin.H{"password": "newsecret99"}, token)
		assertStatusCode(t, w, http.StatusBadRequest)
	})

	t.Run("unknown id", func(t *testing.T) {
		router, token := userTestRouter(t, mock.NewUserRepository())
		w := performRequest(router, http.MethodPut, "/api/users/99",
			gin.H{"username": "renamed"}, token)
		assertStatusCode(t, w, http.StatusNotFound)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		repo := mock.NewUserRepository()
		repo.DeleteFunc = func(ctx context.Context, id int64) error { return nil }
		router, token := userTestRouter(t, repo)

		w := performRequest(router, http.MethodDelete, "/api/users/1", nil, token)
		assertStatusCode(t, w, http.StatusNoContent)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := mock.NewUserRepository()
		repo.DeleteFunc = func(ctx context.Context, id int64) error {
			return repositories.ErrNotFound
		}
		router, token := userTestRouter(t, repo)

		w := performRequest(router, http.MethodDelete, "/api/users/99", nil, token)
		assertStatusCode(t, w, http.StatusNotFound)
	})
}
