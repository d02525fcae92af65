package middleware

import (
	"net/http"
	"strings"

	"cleansweep/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware guards operator-only endpoints (layout editing,
// assignment, roster management). The token's role claim must be "admin".
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		role, err := utils.ExtractRoleFromToken(tokenString)
		if err != nil || role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
