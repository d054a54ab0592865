package middlewares

import (
	"net/http"
	"strings"

	"github.com/jorge-trivilin/ecommerce-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the Bearer token and stores the caller's identity
// in the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, jwtSecret)
		if err != nil || claims.UserID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("isAdmin", claims.IsAdmin)
		c.Next()
	}
}

// AdminOnly rejects callers without the admin flag. Must run after
// AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.IsAdmin(c) {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "admin privilege required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
