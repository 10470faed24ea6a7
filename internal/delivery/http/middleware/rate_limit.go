package middleware

import (
	"net/http"
	"strconv"
	"time"

	"go-studio-backend/internal/delivery/http/response"
	"go-studio-backend/internal/ratelimit"
	"go-studio-backend/pkg/apperror"
	"go-studio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Counting backend (in-memory or Redis)
	Store ratelimit.Store
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix (default: "rl:contact:")
	KeyPrefix string
}

// ContactRateLimitConfig limits contact form submissions per client IP.
func ContactRateLimitConfig(limit int, window time.Duration, store ratelimit.Store) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		Store:     store,
		KeyPrefix: "rl:contact:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// RateLimitMiddleware enforces a sliding-window limit using the injected
// store. Runs before validation so abusive traffic is throttled before any
// validation work is spent on it. Store errors fail open: the limiter is an
// abuse deterrent, not a correctness boundary.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := config.KeyPrefix + config.KeyFunc(c)

		count, resetAt, err := config.Store.Increment(c.Request.Context(), key, config.Window)
		if err != nil {
			logger.Log.Warn("rate limit store unavailable, allowing request", "error", err.Error())
			c.Next()
			return
		}

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("rate limit exceeded", "ip", c.ClientIP(), "path", c.FullPath())

			response.Error(c, http.StatusTooManyRequests, apperror.CodeRateLimit,
				"Too many submissions. Please try again later.", nil)
			c.Abort()
			return
		}

		remaining := config.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		c.Next()
	}
}
