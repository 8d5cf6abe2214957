package middleware

import (
	"net/http"
	"strings"

	"EquiLearn/internal/pkg"
	"EquiLearn/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	ContextRoleKey   = "user_role"
)

// AuthMiddleware requires a valid bearer token whose value matches the active
// session token in Redis, then slides the session expiry.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "authentication required"})
			c.Abort()
			return
		}

		userRep := &redis.UserRepository{}
		originToken, err := userRep.GetUserToken(claims.UserID)
		if err != nil || originToken != tokenFromHeader(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "session expired or signed in elsewhere"})
			c.Abort()
			return
		}

		if err := userRep.ExtendUserToken(claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller's identity when a valid token is
// present and continues anonymously otherwise. Used by the public donation
// paths, which accept both.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c)
		if ok {
			userRep := &redis.UserRepository{}
			if originToken, err := userRep.GetUserToken(claims.UserID); err == nil && originToken == tokenFromHeader(c) {
				c.Set(ContextUserIDKey, claims.UserID)
				c.Set(ContextRoleKey, claims.Role)
			}
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context) (*pkg.Claims, bool) {
	tokenStr := tokenFromHeader(c)
	if tokenStr == "" {
		return nil, false
	}
	claims, err := pkg.ParseAccess(tokenStr)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func tokenFromHeader(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// UserIDFromContext returns the authenticated caller, or nil when the request
// came through an optional-auth route anonymously.
func UserIDFromContext(c *gin.Context) *uint64 {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return nil
	}
	id, ok := v.(uint64)
	if !ok {
		return nil
	}
	return &id
}
