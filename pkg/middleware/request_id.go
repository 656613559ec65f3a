package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mergington/activity-registry/pkg/logger"
)

// HeaderRequestID is the header carrying the request ID
const HeaderRequestID = "X-Request-ID"

// RequestID assigns each request a unique ID, honoring one supplied by the
// caller. The ID is echoed in the response header and placed on the request
// context for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header(HeaderRequestID, requestID)

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
