package middleware

import (
	"context"
	"strings"

	"helperhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// TokenVerifier resolves an ID token to a user id.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (string, error)
}

// FirebaseAuthMiddleware requires "Authorization: Bearer <ID token>" and
// stores the caller's uid under "userID". Verified tokens are cached by hash
// in authCache; a nil cache verifies every request.
func FirebaseAuthMiddleware(verifier TokenVerifier, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := contextLogger(c)

		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if !strings.HasPrefix(authHeader, "Bearer ") || tokenString == "" {
			utils.RespondError(c, utils.NewUnauthenticatedError("Please sign in to continue."))
			c.Abort()
			return
		}

		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
		if authCache != nil {
			userID, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil && userID != "" {
				c.Set("userID", userID)
				c.Next()
				return
			}
			if err != nil && err != redis.Nil {
				logger.Warn("auth cache read failed, verifying token", zap.Error(err))
			}
		}

		userID, err := verifier.VerifyToken(ctx, tokenString)
		if err != nil {
			if !utils.IsKind(err, utils.KindUnauthenticated) {
				err = utils.NewRemoteError("Failed to verify session", err)
			}
			utils.RespondError(c, err)
			c.Abort()
			return
		}

		if authCache != nil {
			if err := authCache.Set(ctx, cacheKey, userID, utils.AuthCacheTTL).Err(); err != nil {
				logger.Warn("auth cache write failed", zap.Error(err))
			}
		}
		c.Set("userID", userID)
		c.Next()
	}
}
