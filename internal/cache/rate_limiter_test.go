package cache_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"tourism-reservation/config"
	"tourism-reservation/internal/cache"
	"tourism-reservation/internal/testutil"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRdb *redis.Client

func TestMain(m *testing.M) {
	rdb, cleanup, err := testutil.SetupRedisOnly()
	if err != nil {
		log.Printf("test redis unavailable, rate limiter tests will be skipped: %v", err)
		os.Exit(m.Run())
	}
	testRdb = rdb
	code := m.Run()
	cleanup()
	os.Exit(code)
}

func newLimiter(t *testing.T, capacity int, interval time.Duration) cache.RateLimiter {
	t.Helper()
	if testRdb == nil {
		t.Skip("test redis is not available")
	}
	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       capacity,
		RefillTokens:   1,
		RefillInterval: interval,
		TTL:            time.Minute,
		Prefix:         "test:ratelimit",
	}
	t.Cleanup(func() {
		keys, _ := testRdb.Keys(context.Background(), cfg.Prefix+":*").Result()
		if len(keys) > 0 {
			testRdb.Del(context.Background(), keys...)
		}
	})
	return cache.NewRedisRateLimiter(testRdb, cfg)
}

func TestRedisRateLimiter_Burst(t *testing.T) {
	limiter := newLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 2; i >= 0; i-- {
		d, err := limiter.Take(ctx, "ip:198.51.100.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, 3, d.Limit)
		assert.Equal(t, i, d.Remaining)
	}

	d, err := limiter.Take(ctx, "ip:198.51.100.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Zero(t, d.Remaining)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, d.RetryAfter, time.Minute)

	// other keys keep their own bucket
	d, err = limiter.Take(ctx, "ip:198.51.100.2")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRedisRateLimiter_Refill(t *testing.T) {
	limiter := newLimiter(t, 1, 200*time.Millisecond)
	ctx := context.Background()

	d, err := limiter.Take(ctx, "user:7")
	require.NoError(t, err)
	require.True(t, d.Allowed)

	d, err = limiter.Take(ctx, "user:7")
	require.NoError(t, err)
	require.False(t, d.Allowed)

	assert.Eventually(t, func() bool {
		d, err := limiter.Take(ctx, "user:7")
		return err == nil && d.Allowed
	}, 2*time.Second, 50*time.Millisecond)
}
