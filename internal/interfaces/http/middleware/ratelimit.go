package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymstack/internal/infrastructure/ratelimit"
	"gymstack/internal/shared/config"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/utils"
)

// RateLimit enforces per-IP request limits backed by Redis. Limiter errors
// fail open so a Redis outage does not take the API down with it.
func RateLimit(limiter ratelimit.RateLimiter, cfg *config.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	limits := ratelimit.RateLimitConfig{
		RequestsPerMinute: cfg.RequestsPerMinute,
		RequestsPerHour:   cfg.RequestsPerHour,
		RequestsPerDay:    cfg.RequestsPerDay,
	}

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.ClientIP(), limits)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
			c.Abort()
			return
		}

		c.Next()
	}
}
