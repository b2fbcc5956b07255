package middleware

import (
	"net/http"
	"strings"

	"reabilitepro/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Context keys set by the auth middleware.
const (
	CtxUserID  = "userID"
	CtxRole    = "role"
	CtxIsAdmin = "isAdmin"
	CtxToken   = "token"
)

// JWTAuthMiddleware validates the bearer token, rejects revoked tokens via
// the Redis denylist and stores the caller's identity in the gin context.
func JWTAuthMiddleware(tokens *utils.TokenManager, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		revoked, err := utils.IsTokenDenylisted(c.Request.Context(), authCache, utils.HashToken(tokenString))
		if err != nil {
			zap.L().Error("failed to check token denylist", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has been revoked"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxIsAdmin, claims.Admin)
		c.Set(CtxToken, tokenString)
		c.Next()
	}
}
