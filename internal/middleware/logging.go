package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every HTTP request after it completes, with the request
// id set by RequestID when present.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get(RequestIDKey)

		logger.Info("HTTP request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", latency,
			"ip", c.ClientIP(),
			"request_id", requestID,
			"response_size", c.Writer.Size(),
		)

		if c.Writer.Status() >= 500 {
			logger.Error("HTTP request failed",
				"method", c.Request.Method,
				"path", path,
				"status", c.Writer.Status(),
				"request_id", requestID,
				"error_details", c.Errors.String(),
			)
		}
	}
}
