package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourism-reservation/config"

	"github.com/redis/go-redis/v9"
)

// Decision is the outcome of one rate limit check.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type RateLimiter interface {
	// Take consumes one token from the bucket stored under key.
	Take(ctx context.Context, key string) (Decision, error)
}

type RedisRateLimiterImpl struct {
	client *redis.Client
	cfg    config.RateLimitConfig
}

func NewRedisRateLimiter(client *redis.Client, cfg config.RateLimitConfig) RateLimiter {
	return &RedisRateLimiterImpl{
		client: client,
		cfg:    cfg,
	}
}

// tokenBucket refills whole intervals only, so a bucket emptied by a burst
// regains RefillTokens per elapsed RefillInterval and never exceeds capacity.
// Returns {allowed, remaining, retry_after_ms}.
var tokenBucket = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local refill_tokens = tonumber(ARGV[3])
	local interval_ms = tonumber(ARGV[4])
	local ttl_seconds = tonumber(ARGV[5])

	local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
	local tokens = tonumber(state[1])
	local last_refill = tonumber(state[2])

	if tokens == nil or last_refill == nil then
		tokens = capacity
		last_refill = now_ms
	end

	if interval_ms > 0 and refill_tokens > 0 then
		local elapsed = math.max(0, now_ms - last_refill)
		local intervals = math.floor(elapsed / interval_ms)
		if intervals > 0 then
			tokens = math.min(capacity, tokens + intervals * refill_tokens)
			last_refill = last_refill + intervals * interval_ms
		end
	end

	local allowed = 0
	local retry_after_ms = 0
	if tokens > 0 then
		allowed = 1
		tokens = tokens - 1
	else
		retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
	end

	redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
	redis.call('EXPIRE', key, ttl_seconds)

	return {allowed, tokens, retry_after_ms}
`)

func (l *RedisRateLimiterImpl) Take(ctx context.Context, key string) (Decision, error) {
	result, err := tokenBucket.Run(ctx, l.client, []string{l.cfg.Prefix + ":" + key},
		time.Now().UnixMilli(),
		l.cfg.Capacity,
		l.cfg.RefillTokens,
		l.cfg.RefillInterval.Milliseconds(),
		int64(l.cfg.TTL/time.Second),
	).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("token bucket: %w", err)
	}
	if len(result) != 3 {
		return Decision{}, errors.New("token bucket: unexpected script result")
	}

	return Decision{
		Allowed:    result[0] == 1,
		Limit:      l.cfg.Capacity,
		Remaining:  int(result[1]),
		RetryAfter: time.Duration(result[2]) * time.Millisecond,
	}, nil
}
