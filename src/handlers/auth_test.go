package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/accuransi/website-api/src/middleware"
	"github.com/accuransi/website-api/src/models"
	"github.com/accuransi/website-api/src/repositories"
	"github.com/accuransi/website-api/src/repositories/mock"
	"github.com/accuransi/website-api/src/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-for-unit-tests-32ch!"

func authTestRouter(t *testing.T) (*gin.Engine, *services.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	admin := &models.User{ID: 1, Username: "admin", PasswordHash: string(hash), Role: models.RoleAdmin}

	repo := mock.NewUserRepository()
	repo.GetByUsernameFunc = func(ctx context.Context, username string) (*models.User, error) {
		if username == admin.Username {
			return admin, nil
		}
		return nil, repositories.ErrNotFound
	}

	tokens := services.NewTokenService(testSecret)
	handler := NewAuthHandler(services.NewAuthService(repo, tokens))

	router := gin.New()
	router.POST("/login", handler.HandleLogin)
	router.GET("/api/verify-token", middleware.RequireAuth(tokens), handler.HandleVerifyToken)
	return router, tokens
}

func TestHandleLogin(t *testing.T) {
	router, tokens := authTestRouter(t)

	t.Run("valid credentials return a verifiable token", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/login",
			gin.H{"username": "admin", "password": "secret123"}, "")
		assertStatusCode(t, w, http.StatusOK)

		var resp LoginResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp.Token == "" {
			t.Fatal("expected non-empty token")
		}
		claims, err := tokens.Verify(resp.Token)
		if err != nil {
			t.Fatalf("returned token failed verification: %v", err)
		}
		if claims.Username != "admin" || claims.UserID != 1 {
			t.Errorf("unexpected claims %+v", claims)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/login",
			gin.H{"username": "admin", "password": "wrong"}, "")
		assertStatusCode(t, w, http.StatusUnauthorized)
		assertJSONError(t, w, "Invalid username or password")
	})

	t.Run("unknown username gets the same response", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/login",
			gin.H{"username": "nobody", "password": "secret123"}, "")
		assertStatusCode(t, w, http.StatusUnauthorized)
		assertJSONError(t, w, "Invalid username or password")
	})

	t.Run("missing password", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/login",
			gin.H{"username": "admin"}, "")
		assertStatusCode(t, w, http.StatusBadRequest)
	})

	t.Run("missing body", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/login", nil, "")
		assertStatusCode(t, w, http.StatusBadRequest)
	})
}

func TestHandleVerifyToken(t *testing.T) {
	router, tokens := authTestRouter(t)

	t.Run("valid token yields claims", func(t *testing.T) {
		token, _, err := tokens.Issue(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
		if err != nil {
			t.Fatalf("failed to issue token: %v", err)
		}

		w := performRequest(router, http.MethodGet, "/api/verify-token", nil, token)
		assertStatusCode(t, w, http.StatusOK)

		var resp struct {
			Valid bool            `json:"valid"`
			User  services.Claims `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if !resp.Valid {
			t.Error("expected valid=true")
		}
		if resp.User.Username != "admin" || resp.User.UserID != 1 {
			t.Errorf("unexpected user claims %+v", resp.User)
		}
	})

	t.Run("no token", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/verify-token", nil, "")
		assertStatusCode(t, w, http.StatusUnauthorized)
	})

	t.Run("bad token", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/verify-token", nil, "bogus")
		assertStatusCode(t, w, http.StatusForbidden)
	})
}
