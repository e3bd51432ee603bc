// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/taibuivan/library/internal/platform/apperr"
	"github.com/taibuivan/library/internal/platform/constants"
	"github.com/taibuivan/library/internal/platform/ctxutil"
)

// # In-Memory Rate Limiting

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// memoryLimiter tracks one token bucket per client IP inside the process.
type memoryLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	rps     float64
	burst   int
}

// RateLimit limits requests per IP using the token bucket algorithm.
//
// Buckets live in process memory. A background janitor evicts idle clients
// until ctx is cancelled.
func RateLimit(ctx context.Context, rps float64, burst int) func(http.Handler) http.Handler {
	limiter := &memoryLimiter{
		clients: make(map[string]*rateLimitClient),
		rps:     rps,
		burst:   burst,
	}

	// Start a background cleanup routine that respects context cancellation
	go limiter.janitor(ctx, constants.RateLimitCleanupInterval)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !limiter.allow(RealIP(request)) {
				limited := apperr.RateLimited(1)
				writer.Header().Set(constants.HeaderRetryAfter, "1")
				writeError(writer, limited.HTTPStatus, limited.Message)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// allow consumes one token from the client's bucket.
func (limiter *memoryLimiter) allow(clientIP string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	clientInfo, found := limiter.clients[clientIP]

	// Initialize a new limiter if this is a fresh IP
	if !found {
		clientInfo = &rateLimitClient{
			limiter: rate.NewLimiter(rate.Limit(limiter.rps), limiter.burst),
		}
		limiter.clients[clientIP] = clientInfo
	}

	clientInfo.lastSeen = time.Now()
	return clientInfo.limiter.Allow()
}

// janitor removes clients idle for longer than [constants.RateLimitClientTTL].
func (limiter *memoryLimiter) janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			limiter.mu.Lock()
			for ip, clientInfo := range limiter.clients {
				if time.Since(clientInfo.lastSeen) > constants.RateLimitClientTTL {
					delete(limiter.clients, ip)
				}
			}
			limiter.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

// # Redis Rate Limiting

// tokenBucketScript refills and consumes a bucket atomically on the Redis server.
//
// KEYS[1] = bucket key (hash with fields: tokens, ts)
// ARGV[1] = refill rate in tokens per second
// ARGV[2] = capacity
// Returns {allowed (1/0), remaining tokens (floored), retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key   = KEYS[1]
local rate  = tonumber(ARGV[1])
local cap   = tonumber(ARGV[2])

local t = redis.call('TIME')
local now_ms = (tonumber(t[1]) * 1000) + math.floor(tonumber(t[2]) / 1000)

local data = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(data[1])
local ts     = tonumber(data[2])

if tokens == nil then
  tokens = cap
  ts = now_ms
end

local delta_ms = now_ms - ts
if delta_ms > 0 then
  tokens = math.min(cap, tokens + (delta_ms / 1000.0) * rate)
end

local allowed = 0
local retry_after_ms = 0

if tokens >= 1.0 then
  tokens = tokens - 1.0
  allowed = 1
else
  retry_after_ms = math.ceil((1.0 - tokens) * 1000.0 / rate)
end

redis.call('HSET', key, 'tokens', tokens, 'ts', now_ms)
redis.call('PEXPIRE', key, math.ceil((cap / rate) * 1000.0))

return {allowed, math.floor(tokens), retry_after_ms}
`)

// RedisRateLimit limits requests per IP with a token bucket shared through Redis,
// so every replica enforces the same budget.
//
// Redis failures fail open: the request is served and the error is logged.
func RedisRateLimit(client redis.Scripter, rps float64, burst int) func(http.Handler) http.Handler {
	rateArg := strconv.FormatFloat(rps, 'f', -1, 64)
	burstArg := strconv.Itoa(burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			key := constants.RedisPrefixRateLimit + ":" + RealIP(request)

			result, err := tokenBucketScript.Run(request.Context(), client, []string{key}, rateArg, burstArg).Int64Slice()
			if err != nil || len(result) != 3 {
				ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "rate_limit_store_unavailable",
					slog.Any("error", err),
				)
				next.ServeHTTP(writer, request)
				return
			}

			allowed, remaining, retryAfterMs := result[0] == 1, result[1], result[2]

			writer.Header().Set("X-RateLimit-Limit", burstArg)
			writer.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if !allowed {
				retrySeconds := int64(math.Max(1, math.Ceil(float64(retryAfterMs)/1000)))
				limited := apperr.RateLimited(int(retrySeconds))
				writer.Header().Set(constants.HeaderRetryAfter, strconv.FormatInt(retrySeconds, 10))
				writeError(writer, limited.HTTPStatus, limited.Message)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
