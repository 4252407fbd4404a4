package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"catalog-be/internal/apperrors"
	"catalog-be/internal/service"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextUserIDKey = "user_id"
	ContextUserKey   = "user"
)

// extractToken pulls the raw token key out of the Authorization header.
// Both "Token <key>" and "Bearer <key>" schemes are accepted.
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Token") && !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth rejects requests without a valid token and stores the
// authenticated user in the request context.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := extractToken(c)
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":  apperrors.KindAuthentication,
				"error": "authentication credentials were not provided",
			})
			c.Abort()
			return
		}

		user, err := authService.Authenticate(key)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":  apperrors.KindAuthentication,
				"error": "invalid token",
			})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUserKey, user)
		c.Next()
	}
}
