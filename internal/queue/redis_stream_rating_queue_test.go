package queue_test

import (
	"context"
	"testing"
	"time"

	"tourism-reservation/internal/queue"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanupStream(ctx context.Context, t *testing.T) {
	t.Helper()
	_ = getTestRdb(t).Del(ctx, queue.StreamKey).Err()
}

func pendingCount(ctx context.Context, t *testing.T) int64 {
	t.Helper()
	pending, err := getTestRdb(t).XPending(ctx, queue.StreamKey, queue.ConsumerGroupName).Result()
	require.NoError(t, err)
	return pending.Count
}

func TestNewRedisStreamRatingQueue(t *testing.T) {
	ctx := context.Background()
	rdb := getTestRdb(t)
	cleanupStream(ctx, t)

	q, err := queue.NewRedisStreamRatingQueue(ctx, rdb, "test-consumer", nil)
	require.NoError(t, err)
	require.NotNil(t, q)

	// the group already exists the second time
	q, err = queue.NewRedisStreamRatingQueue(ctx, rdb, "", nil)
	require.NoError(t, err)
	require.NotNil(t, q)
}

func TestRedisStreamRatingQueue_DeliversAndAcks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rdb := getTestRdb(t)
	cleanupStream(ctx, t)

	q, err := queue.NewRedisStreamRatingQueue(ctx, rdb, "deliver-test", nil)
	require.NoError(t, err)
	require.NoError(t, q.PublishRatingRefresh(ctx, 42))

	msgs, err := q.SubscribeRatingRefresh(ctx)
	require.NoError(t, err)

	d := receive(t, msgs)
	assert.Equal(t, 42, d.PlaceID)
	d.Ack()

	assert.Equal(t, int64(0), pendingCount(ctx, t))
}

func TestRedisStreamRatingQueue_SkipsInvalidMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rdb := getTestRdb(t)
	cleanupStream(ctx, t)

	q, err := queue.NewRedisStreamRatingQueue(ctx, rdb, "invalid-test", nil)
	require.NoError(t, err)

	require.NoError(t, rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: queue.StreamKey,
		Values: map[string]any{"place_id": "not-a-number"},
	}).Err())
	require.NoError(t, q.PublishRatingRefresh(ctx, 7))

	msgs, err := q.SubscribeRatingRefresh(ctx)
	require.NoError(t, err)

	d := receive(t, msgs)
	assert.Equal(t, 7, d.PlaceID)
	d.Ack()

	assert.Equal(t, int64(0), pendingCount(ctx, t))
}

func TestRedisStreamRatingQueue_RetriesNackedMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rdb := getTestRdb(t)
	cleanupStream(ctx, t)

	q, err := queue.NewRedisStreamRatingQueue(ctx, rdb, "retry-test", &queue.RedisStreamConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		MaxRetryCount:      5,
		ReadGroupBlockTime: 100 * time.Millisecond,
	})
	require.NoError(t, err)
	require.NoError(t, q.PublishRatingRefresh(ctx, 9))

	msgs, err := q.SubscribeRatingRefresh(ctx)
	require.NoError(t, err)

	receive(t, msgs).Nack(true)

	retried := receive(t, msgs)
	assert.Equal(t, 9, retried.PlaceID)
	retried.Ack()

	assert.Equal(t, int64(0), pendingCount(ctx, t))
}

func TestRedisStreamRatingQueue_DropsPoisonMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rdb := getTestRdb(t)
	cleanupStream(ctx, t)

	q, err := queue.NewRedisStreamRatingQueue(ctx, rdb, "poison-test", &queue.RedisStreamConfig{
		ClaimMinIdleTime:   100 * time.Millisecond,
		MaxRetryCount:      2,
		ReadGroupBlockTime: 100 * time.Millisecond,
	})
	require.NoError(t, err)
	require.NoError(t, q.PublishRatingRefresh(ctx, 13))

	msgs, err := q.SubscribeRatingRefresh(ctx)
	require.NoError(t, err)

	receive(t, msgs).Nack(true)

	// the reclaim raises the delivery count to the limit, so the entry is
	// acked and dropped instead of delivered again
	assertNoDelivery(t, msgs, time.Second)
	assert.Eventually(t, func() bool {
		return pendingCount(ctx, t) == 0
	}, 2*time.Second, 50*time.Millisecond)
}
