package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/pkg/logger"
)

// Login attempts are throttled far harder than authenticated traffic
const (
	loginLimitMax    = 5
	loginLimitWindow = time.Hour
	apiLimitMax      = 100
	apiLimitWindow   = 15 * time.Minute
)

// RateLimiter throttles clients with fixed windows counted in Redis. A nil
// limiter or nil client disables throttling, so the server still runs when
// Redis is not configured.
type RateLimiter struct {
	client *redis.Client
}

// NewRateLimiter creates a Redis-backed rate limiter
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

// LoginLimit throttles login attempts per client IP
func (rl *RateLimiter) LoginLimit() gin.HandlerFunc {
	return rl.limit("login", loginLimitMax, loginLimitWindow)
}

// APILimit throttles authenticated traffic per client IP
func (rl *RateLimiter) APILimit() gin.HandlerFunc {
	return rl.limit("api", apiLimitMax, apiLimitWindow)
}

func (rl *RateLimiter) limit(bucket string, max int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.client == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", bucket, c.ClientIP())
		count, err := rl.client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Fail open: a Redis outage must not take logins down with it
			logger.Warn().Err(err).Msg("Rate limiter unavailable")
			c.Next()
			return
		}
		if count == 1 {
			rl.client.Expire(c.Request.Context(), key, window)
		}

		if count > max {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeRateLimited, "Too many requests, try again later"),
			))
			return
		}

		c.Next()
	}
}
