package middleware

import (
	"net/http"

	"EquiLearn/internal/model"

	"github.com/gin-gonic/gin"
)

// RequireAdmin sits behind AuthMiddleware: no identity means 401, any
// authenticated non-admin role means 403. The switch is exhaustive over the
// role enum so a new role fails closed.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, exists := c.Get(ContextRoleKey)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "authentication required"})
			c.Abort()
			return
		}
		role, ok := roleAny.(model.Role)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"msg": "admin access required"})
			c.Abort()
			return
		}

		switch role {
		case model.RoleAdmin:
			c.Next()
		case model.RoleDonor, model.RoleSchool:
			c.JSON(http.StatusForbidden, gin.H{"msg": "admin access required"})
			c.Abort()
		default:
			c.JSON(http.StatusForbidden, gin.H{"msg": "admin access required"})
			c.Abort()
		}
	}
}
