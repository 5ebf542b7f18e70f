package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chinnidiwakar/sliptrack/backend/internal/logger"
)

// RequestID attaches a correlation ID to every request. An incoming
// X-Request-ID header is honored; otherwise a new UUID is generated. The ID
// is echoed back in the response header and stored in the request context for
// logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(
			logger.WithRequestID(c.Request.Context(), requestID),
		)

		c.Next()
	}
}
