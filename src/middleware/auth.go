package middleware

import (
	"net/http"
	"strings"

	"github.com/accuransi/website-api/src/services"
	"github.com/gin-gonic/gin"
)

// ClaimsKey is the context key for verified token claims
const ClaimsKey = "auth_claims"

// RequireAuth gates mutating and privileged-read routes. A request with no
// credential (missing header, or not of the form "Bearer <token>") is
// rejected with 401; a presented credential that fails verification is
// rejected with 403. Expired and malformed tokens get the same response.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// CurrentUser retrieves the verified claims set by RequireAuth. Returns nil
// on routes that are not behind the guard.
func CurrentUser(c *gin.Context) *services.Claims {
	if v, exists := c.Get(ClaimsKey); exists {
		if claims, ok := v.(*services.Claims); ok {
			return claims
		}
	}
	return nil
}
