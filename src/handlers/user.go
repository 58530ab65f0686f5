package handlers

import (
	"net/http"

	"github.com/accuransi/website-api/src/services"
	"github.com/gin-gonic/gin"
)

// UserHandler handles admin account management
type UserHandler struct {
	users *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// UpdateUserRequest represents the request body for updating a user. The
// username is required even when only the password changes; a nil password
// leaves the stored hash alone.
type UpdateUserRequest struct {
	Username string  `json:"username" binding:"required"`
	Password *string `json:"password"`
}

// HandleList returns all accounts. The password hash never serializes.
func (uh *UserHandler) HandleList(c *gin.Context) {
	users, err := uh.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// HandleCreate stores a new admin account.
func (uh *UserHandler) HandleCreate(c *gin.Context) {
	var req CreateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, err := uh.users.Create(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// HandleUpdate changes the username and optionally the password.
func (uh *UserHandler) HandleUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	user, err := uh.users.Update(c.Request.Context(), id, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// HandleDelete removes an account.
func (uh *UserHandler) HandleDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := uh.users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
