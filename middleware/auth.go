package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tiffin-marketplace-api/models"
	"tiffin-marketplace-api/store"
)

// TokenHeader carries the session token on every authenticated request.
const TokenHeader = "x-auth-token"

// AuthRequired validates the session token against the store and injects the
// resolved user into the context. The role is checked against the session's
// bound role, not the user's current one.
func AuthRequired(s *store.Store, role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authentication token"})
			c.Abort()
			return
		}
		user, ok := s.UserByToken(token, role)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Set("token", token)
		c.Next()
	}
}

// CurrentUser extracts the authenticated user from the context
func CurrentUser(c *gin.Context) models.User {
	val, _ := c.Get("user")
	return val.(models.User)
}

// Token extracts the raw session token from the context
func Token(c *gin.Context) string {
	val, _ := c.Get("token")
	return val.(string)
}
