package middleware

import (
	"net/http"
	"strings"

	"github.com/studycircle/studycircle/pkg/auth"

	"github.com/gin-gonic/gin"
)

// ContextUIDKey is where Auth stores the verified caller uid.
const ContextUIDKey = "uid"

// Auth validates the Bearer token and puts the caller's uid in the context.
func Auth(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		claims, err := verifier.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUIDKey, claims.UID)
		c.Next()
	}
}
