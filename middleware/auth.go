package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"slotmart/utils"
)

// Context keys populated by the auth middleware.
const (
	PrincipalIDKey   = "principalID"
	PrincipalRoleKey = "principalRole"
)

// RequireRole validates the bearer token and ensures the principal carries
// one of the allowed roles. On success the principal's ID and role are set on
// the request context.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		id, role, err := utils.ExtractPrincipalFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Set(PrincipalIDKey, id)
		c.Set(PrincipalRoleKey, role)
		c.Next()
	}
}

// PrincipalID returns the authenticated principal's ID from the context.
func PrincipalID(c *gin.Context) string {
	return c.GetString(PrincipalIDKey)
}

// PrincipalRole returns the authenticated principal's role from the context.
func PrincipalRole(c *gin.Context) string {
	return c.GetString(PrincipalRoleKey)
}
