package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edaguler/scholarhub/internal/pkg/metrics"
)

// Metrics counts every request by method, route pattern and status code.
// The route pattern is used instead of the raw path so IDs do not blow up
// the label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
