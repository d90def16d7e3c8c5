package middleware

import (
	"time"

	"sustainability-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger logs one structured line per request after it completes
func Logger() gin.HandlerFunc {
	log := logger.New()
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := map[string]interface{}{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": c.GetString(RequestIDKey),
		}
		entry := log.WithFields(fields)

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
			return
		}
		if c.Writer.Status() >= 500 {
			entry.Error("request failed")
			return
		}
		entry.Info("request completed")
	}
}
