package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"filmbuff-ai/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags the request context with the caller's X-Request-ID, or a fresh
// one, and echoes it on the response.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
