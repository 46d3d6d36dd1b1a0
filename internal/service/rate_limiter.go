package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
)

const rateLimitKeyPrefix = "portfolio:ratelimit:"

// Sliding window over a sorted set scored by millisecond timestamps.
// Returns {allowed, resetAtMillis}.
var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)

if redis.call('ZCARD', key) >= limit then
    local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
    if #oldest >= 2 then
        return {0, tonumber(oldest[2]) + window}
    end
    return {0, now + window}
end

redis.call('ZADD', key, now, member)
redis.call('PEXPIRE', key, window)
return {1, now + window}
`)

// RateLimiter is a sliding-window limiter shared by every server instance
// through Redis.
type RateLimiter struct {
	client redis.Scripter
}

func NewRateLimiter(client redis.Scripter) *RateLimiter {
	return &RateLimiter{client: client}
}

// CheckLimit records one hit for key and reports whether it fits in limit
// hits per window. Redis errors fail open so that an outage does not take
// the contact form down.
func (rl *RateLimiter) CheckLimit(
	ctx context.Context,
	key string,
	limit int,
	window time.Duration,
) (allowed bool, resetAt time.Time) {
	now := time.Now()

	result, err := rateLimitScript.Run(
		ctx,
		rl.client,
		[]string{rateLimitKeyPrefix + key},
		now.UnixMilli(),
		window.Milliseconds(),
		limit,
		xid.New().String(),
	).Int64Slice()
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("rate limit check failed, allowing request")
		return true, now.Add(window)
	}

	if len(result) != 2 {
		log.Warn().Str("key", key).Msg("unexpected rate limit result, allowing request")
		return true, now.Add(window)
	}

	return result[0] == 1, time.UnixMilli(result[1])
}
