package handlers

import (
	"net/http"

	"github.com/accuransi/website-api/src/middleware"
	"github.com/accuransi/website-api/src/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and token verification
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for successful login
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// HandleLogin authenticates a user and returns a session token.
func (ah *AuthHandler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	token, expiresAt, err := ah.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	})
}

// HandleVerifyToken reports the claims of an already-verified token. The
// auth guard has done the work by the time this runs.
func (ah *AuthHandler) HandleVerifyToken(c *gin.Context) {
	claims := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  claims,
	})
}
