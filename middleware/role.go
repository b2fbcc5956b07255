package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole allows only callers whose token carries the given role.
// It must run after JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "This action requires the '" + role + "' role",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin allows only identities carrying the admin flag.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(CtxIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
