// Package middleware holds the gin middleware shared by all routes.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// requestIDKey is the gin context key for the request id.
const requestIDKey = "request_id"

// RequestID attaches a unique request id to every request, honoring an
// incoming X-Request-ID header when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		c.Set(requestIDKey, reqID)
		c.Header("X-Request-ID", reqID)

		c.Next()
	}
}

// GetRequestID extracts the request id from the gin context.
func GetRequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if id, ok := c.Get(requestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// RateLimit rejects requests above the given per-second rate with 429.
// Cleaning runs are CPU-bound (the fuzzy pass is quadratic), so the
// server refuses work instead of queueing it.
func RateLimit(rps int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), rps)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "too many requests",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}

// RequestLogger logs one structured line per completed request.
func RequestLogger() gin.HandlerFunc {
	logger := slog.Default().With("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("Request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", GetRequestID(c),
		)
	}
}
