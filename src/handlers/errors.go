package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/accuransi/website-api/src/middleware"
	"github.com/accuransi/website-api/src/repositories"
	"github.com/accuransi/website-api/src/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError is the single translator from domain errors to HTTP
// responses. Known sentinels map to deterministic codes; anything else is
// logged in full server-side and answered with generic text so internal
// error detail never reaches the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update provided"})
	case errors.Is(err, services.ErrInvalidUsername) || errors.Is(err, services.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, repositories.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
	default:
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseID reads the :id route parameter. On failure it writes a 400 and
// reports false.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id parameter"})
		return 0, false
	}
	return id, true
}
