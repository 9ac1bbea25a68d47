package middleware

import (
	"github.com/gin-gonic/gin"

	"mediaportal-backend/internal/shared/response"
)

// AdminMiddleware checks the role claim set by AuthMiddleware.
// Every mutating endpoint must sit behind this; the client-side admin flag
// is never trusted.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok || role != "admin" {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
