package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kosovai-backend/internal/pkg/jwtutil"
)

const ContextUsernameKey = "username"

// SessionAuth verifies the access_token cookie. Missing, malformed and
// expired tokens all receive the same answer.
func SessionAuth(secret, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		subject, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		c.Set(ContextUsernameKey, subject)
		c.Next()
	}
}
