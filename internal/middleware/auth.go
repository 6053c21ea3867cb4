package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"vision-gateway/pkg/response"
)

// Auth enforces a static bearer token when one is configured. With no token
// configured the middleware is a no-op, which is the default for local use.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiToken == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == token || token != m.apiToken {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
