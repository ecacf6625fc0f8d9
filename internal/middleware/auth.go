package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"appointment-booking-api/internal/auth"
)

// Context keys set for downstream handlers.
const (
	UserIDKey   = "userID"
	UserRoleKey = "userRole"
)

// Auth requires a valid Bearer token. Only the profile endpoint is
// protected; the booking surface is deliberately open.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserRoleKey, claims.Role)
		c.Next()
	}
}
