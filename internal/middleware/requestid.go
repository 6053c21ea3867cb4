package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vision-gateway/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a request id to the context so every log line of the
// request carries it. An inbound X-Request-ID is honored; otherwise one is
// generated.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), log.RequestIDKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, id)

		c.Next()
	}
}
