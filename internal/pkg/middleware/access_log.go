package middleware

import (
	"fmt"
	"time"

	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AccessLog scopes log to the request id, stores the scoped logger in the
// request context for handlers, and writes one line per request with method,
// path, status, latency and client IP. Must run after RequestID.
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		reqLog := log.With(RequestIDKey, c.GetString(RequestIDKey))
		c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), reqLog))
		c.Next()

		line := fmt.Sprintf("method=%s path=%s status=%d latency_ms=%d ip=%s",
			c.Request.Method, path, c.Writer.Status(),
			time.Since(start).Milliseconds(), c.ClientIP())

		switch {
		case len(c.Errors) > 0:
			reqLog.Warn(line, " errors=", c.Errors.String())
		case c.Writer.Status() >= 500:
			reqLog.Error(line)
		default:
			reqLog.Info(line)
		}
	}
}
