package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/austintylerallen/civicstack/internal/auth"
	"github.com/austintylerallen/civicstack/internal/models"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

// RequireAuth extracts and verifies the bearer token and stores the caller
// identity on the request context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing Authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid Authorization header"})
			return
		}

		claims, err := auth.Parse(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, models.UserRole(claims.Role))
		c.Next()
	}
}

// RequireRole rejects callers whose role is not in the allowed set. Must run
// after RequireAuth.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := map[models.UserRole]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role, ok := c.Get(ctxRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		}
		if _, allowed := roleSet[role.(models.UserRole)]; !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's id, or 0 when anonymous.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		return v.(uint)
	}
	return 0
}

// CurrentRole returns the authenticated caller's role.
func CurrentRole(c *gin.Context) models.UserRole {
	if v, ok := c.Get(ctxRole); ok {
		return v.(models.UserRole)
	}
	return ""
}
