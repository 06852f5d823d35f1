package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	appprom "github.com/takweol/casematch/internal/infrastructure/monitoring/prometheus"
)

// Metrics records request counts and latency per route template, so
// /api/v1/leads/:id aggregates under one label instead of one per lead.
func Metrics(m *appprom.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
