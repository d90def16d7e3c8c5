package middleware

import (
	"strconv"
	"time"

	"sustainability-portal-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latencies per route and status code.
// The route template is used as the path label so path parameters do not
// explode the cardinality.
func Metrics(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		reg.HTTPRequestsTotal.WithLabelValues(path, c.Request.Method, status).Inc()
		reg.HTTPRequestDuration.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
