// Package middleware holds the gin middleware chain for the API server.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
)

// slowThreshold flags requests worth a warning even when they succeed.
const slowThreshold = 3 * time.Second

// RequestLogging logs one line per request with method, route, status and
// latency.  Paths in skip (health probes, metrics) are not logged.
func RequestLogging(log logging.Logger, skip ...string) gin.HandlerFunc {
	skipSet := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipSet[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skipSet[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("latency", latency),
			logging.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logging.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("request failed", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("request rejected", fields...)
		case latency > slowThreshold:
			log.Warn("slow request", fields...)
		default:
			log.Info("request served", fields...)
		}
	}
}
