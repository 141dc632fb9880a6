package middleware

import (
	"math"
	"net/http"
	"strconv"

	"tourism-reservation/internal/cache"
	"tourism-reservation/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimit throttles requests per client IP and route. A nil limiter
// disables it; limiter failures let the request through.
func RateLimit(limiter cache.RateLimiter) gin.HandlerFunc {
	if limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP() + ":route:" + c.Request.Method + " " + c.FullPath()

		decision, err := limiter.Take(c.Request.Context(), key)
		if err != nil {
			logger.WithComponent("ratelimit").Warn("Rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			secs := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(secs))
			abort(c, http.StatusTooManyRequests, "Too many requests")
			return
		}
		c.Next()
	}
}
