package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pgaray/landing-api/internal/common"
	"github.com/pgaray/landing-api/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// RateLimitConfig configures the rate limiter
type RateLimitConfig struct {
	RequestsPerMinute int
	KeyPrefix         string
	Message           string
}

// DefaultRateLimitConfig returns the limits applied to the chat endpoint
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: 20,
		KeyPrefix:         "landing:ratelimit:chat:",
		Message:           "Too many requests, please try again later",
	}
}

// rateLimitScript is an atomic Lua script for sliding window rate limiting
var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local window_start = now - window

redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)
local count = redis.call('ZCARD', key)

if count < limit then
    redis.call('ZADD', key, now, now .. ':' .. math.random(1000000))
    redis.call('EXPIRE', key, math.ceil(window / 1000) + 1)
    return {1, limit - count - 1, 0}
else
    local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
    local reset_at = 0
    if #oldest >= 2 then
        reset_at = tonumber(oldest[2]) + window
    end
    return {0, 0, reset_at}
end
`)

// RateLimit returns a gin middleware that rate limits by client IP.
// A nil client disables limiting.
func RateLimit(client redis.Scripter, cfg RateLimitConfig) gin.HandlerFunc {
	window := time.Minute

	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := cfg.KeyPrefix + c.ClientIP()
		now := time.Now().UnixMilli()

		result, err := rateLimitScript.Run(c.Request.Context(), client, []string{key},
			cfg.RequestsPerMinute, window.Milliseconds(), now,
		).Int64Slice()
		if err != nil {
			// fail open
			logger.GetLogger().Warn().Err(err).Str("key", key).Msg("rate limit check failed")
			c.Next()
			return
		}

		allowed := result[0] == 1
		remaining := result[1]
		resetAt := result[2]

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			retryAfter := (resetAt - now) / 1000
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", resetAt/1000))
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			common.ErrorResponse(c, http.StatusTooManyRequests, cfg.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
