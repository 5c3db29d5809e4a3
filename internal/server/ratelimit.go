package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/retail-management/pkg/logger"
)

// RateLimiter implements rate limiting using Redis
type RateLimiter struct {
	redis       *redis.Client
	maxRequests int
	window      time.Duration
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(redisClient *redis.Client, maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redis:       redisClient,
		maxRequests: maxRequests,
		window:      window,
	}
}

// Middleware returns the rate limiting middleware. With a nil Redis
// client every request is allowed.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl.redis == nil {
				next.ServeHTTP(w, r)
				return
			}

			identifier := clientIP(r)

			allowed, remaining, resetTime, err := rl.checkLimit(r.Context(), identifier)
			if err != nil {
				logger.Logger.Error().
					Err(err).
					Str("identifier", identifier).
					Msg("Rate limiter error")
				// On error, allow request but log it
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.maxRequests))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime.Unix()))

			if !allowed {
				logger.Logger.Warn().
					Str("identifier", identifier).
					Int("limit", rl.maxRequests).
					Msg("Rate limit exceeded")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"error":       "Rate limit exceeded",
					"message":     fmt.Sprintf("Too many requests. Try again in %v", time.Until(resetTime).Round(time.Second)),
					"retry_after": time.Until(resetTime).Seconds(),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// checkLimit checks if request is within rate limit using sliding window
func (rl *RateLimiter) checkLimit(ctx context.Context, identifier string) (bool, int, time.Time, error) {
	key := fmt.Sprintf("ratelimit:%s", identifier)
	now := time.Now()
	windowStart := now.Add(-rl.window)

	pipe := rl.redis.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	pipe.Expire(ctx, key, rl.window+time.Minute)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return false, 0, time.Time{}, err
	}

	count := countCmd.Val()

	remaining := rl.maxRequests - int(count) - 1
	if remaining < 0 {
		remaining = 0
	}

	resetTime := now.Add(rl.window)
	allowed := count < int64(rl.maxRequests)

	return allowed, remaining, resetTime, nil
}

// GlobalRateLimiter creates a rate limiter for all requests
func GlobalRateLimiter(redisClient *redis.Client) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(redisClient, 100, time.Minute)
	return limiter.Middleware()
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
