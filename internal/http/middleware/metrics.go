package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/movshovich/scarves-store/internal/metrics"
)

// Metrics records request count and duration per route. The route pattern
// (c.FullPath) is used instead of the raw URL to keep label cardinality
// bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration)
	}
}
