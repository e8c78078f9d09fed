// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"remediation-portal/internal/logger"
	"remediation-portal/internal/metrics"
)

// unobservedPaths are scraped or probed constantly and would drown the request metrics.
var unobservedPaths = map[string]bool{
	"/metrics": true,
	"/health":  true,
	"/ready":   true,
	"/live":    true,
}

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP requests.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if unobservedPaths[c.FullPath()] {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}

// AccessLog logs one line per request with its request id.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if unobservedPaths[c.FullPath()] {
			return
		}

		logger.WithRequestID(GetRequestID(c)).Info("HTTP request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
