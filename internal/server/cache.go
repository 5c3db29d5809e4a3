package server

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/retail-management/pkg/logger"
)

// CacheConfig holds response cache configuration
type CacheConfig struct {
	DefaultTTL       time.Duration
	CacheableMethods []string
	CacheableStatus  []int
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL:       30 * time.Second,
		CacheableMethods: []string{"GET", "HEAD"},
		CacheableStatus:  []int{200},
	}
}

// cacheResponseWriter buffers the response so it can be stored
type cacheResponseWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (crw *cacheResponseWriter) WriteHeader(code int) {
	crw.statusCode = code
	crw.ResponseWriter.WriteHeader(code)
}

func (crw *cacheResponseWriter) Write(b []byte) (int, error) {
	crw.body.Write(b)
	return crw.ResponseWriter.Write(b)
}

// CacheMiddleware implements response caching with Redis. With a nil
// client every request passes straight through.
func CacheMiddleware(redisClient *redis.Client, config CacheConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if redisClient == nil || !isMethodCacheable(r.Method, config.CacheableMethods) {
				next.ServeHTTP(w, r)
				return
			}

			cacheKey := generateCacheKey(r)
			ctx := r.Context()

			cachedResponse, err := redisClient.Get(ctx, cacheKey).Bytes()
			if err == nil && len(cachedResponse) > 0 {
				logger.Logger.Debug().
					Str("path", r.URL.Path).
					Str("cache_key", cacheKey).
					Msg("Cache hit")

				w.Header().Set("X-Cache", "HIT")
				w.Header().Set("Content-Type", "application/json")
				w.Write(cachedResponse)
				return
			}

			logger.Logger.Debug().
				Str("path", r.URL.Path).
				Str("cache_key", cacheKey).
				Msg("Cache miss")

			crw := &cacheResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			crw.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(crw, r)

			if !isStatusCacheable(crw.statusCode, config.CacheableStatus) {
				return
			}

			ttl := config.DefaultTTL
			if err := redisClient.Set(ctx, cacheKey, crw.body.Bytes(), ttl).Err(); err != nil {
				logger.Logger.Warn().
					Err(err).
					Str("cache_key", cacheKey).
					Msg("Failed to cache response")
				return
			}

			logger.Logger.Debug().
				Str("path", r.URL.Path).
				Str("cache_key", cacheKey).
				Dur("ttl", ttl).
				Int("size", crw.body.Len()).
				Msg("Response cached")
		})
	}
}

// generateCacheKey generates a unique cache key for the request
func generateCacheKey(r *http.Request) string {
	keyComponents := fmt.Sprintf("%s:%s:%s",
		r.Method,
		r.URL.Path,
		r.URL.RawQuery,
	)

	hash := sha256.Sum256([]byte(keyComponents))
	return fmt.Sprintf("cache:%s", hex.EncodeToString(hash[:]))
}

// isMethodCacheable checks if HTTP method is cacheable
func isMethodCacheable(method string, cacheableMethods []string) bool {
	for _, m := range cacheableMethods {
		if m == method {
			return true
		}
	}
	return false
}

// isStatusCacheable checks if HTTP status code is cacheable
func isStatusCacheable(status int, cacheableStatus []int) bool {
	for _, s := range cacheableStatus {
		if s == status {
			return true
		}
	}
	return false
}
