package queue_test

import (
	"context"
	"testing"
	"time"

	"tourism-reservation/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, msgs <-chan queue.Delivery) queue.Delivery {
	t.Helper()
	select {
	case d, ok := <-msgs:
		require.True(t, ok, "delivery channel closed")
		return d
	case <-time.After(5 * time.Second):
		t.Fatal("no delivery within 5s")
	}
	return queue.Delivery{}
}

func assertNoDelivery(t *testing.T, msgs <-chan queue.Delivery, wait time.Duration) {
	t.Helper()
	select {
	case d := <-msgs:
		t.Fatalf("unexpected delivery for place %d", d.PlaceID)
	case <-time.After(wait):
	}
}

func TestMemoryRatingQueue_DeliversInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewMemoryRatingQueue(4, nil)
	require.NoError(t, q.PublishRatingRefresh(ctx, 1))
	require.NoError(t, q.PublishRatingRefresh(ctx, 2))

	msgs, err := q.SubscribeRatingRefresh(ctx)
	require.NoError(t, err)

	first := receive(t, msgs)
	first.Ack()
	second := receive(t, msgs)
	second.Ack()

	assert.Equal(t, 1, first.PlaceID)
	assert.Equal(t, 2, second.PlaceID)
}

func TestMemoryRatingQueue_Nack(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewMemoryRatingQueue(4, &queue.MemoryRetryConfig{RetryDelay: 100 * time.Millisecond})
	msgs, err := q.SubscribeRatingRefresh(ctx)
	require.NoError(t, err)

	require.NoError(t, q.PublishRatingRefresh(ctx, 7))
	receive(t, msgs).Nack(true)
	assertNoDelivery(t, msgs, 50*time.Millisecond)
	assert.Equal(t, 7, receive(t, msgs).PlaceID, "requeued delivery comes back after the delay")

	require.NoError(t, q.PublishRatingRefresh(ctx, 8))
	receive(t, msgs).Nack(false)
	assertNoDelivery(t, msgs, 100*time.Millisecond)
}

func TestMemoryRatingQueue_PublishHonoursContext(t *testing.T) {
	q := queue.NewMemoryRatingQueue(1, nil)
	require.NoError(t, q.PublishRatingRefresh(context.Background(), 1))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := q.PublishRatingRefresh(ctx, 2)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemoryRatingQueue_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := queue.NewMemoryRatingQueue(1, nil)

	msgs, err := q.SubscribeRatingRefresh(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-msgs:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestMemoryRatingQueue_DropsAfterMaxRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewMemoryRatingQueue(4, &queue.MemoryRetryConfig{RetryDelay: 10 * time.Millisecond, MaxRetryCount: 3})
	msgs, err := q.SubscribeRatingRefresh(ctx)
	require.NoError(t, err)

	require.NoError(t, q.PublishRatingRefresh(ctx, 9))
	for range 3 {
		d := receive(t, msgs)
		assert.Equal(t, 9, d.PlaceID)
		d.Nack(true)
	}
	assertNoDelivery(t, msgs, 200*time.Millisecond)
}

func TestMemoryRatingQueue_PendingRetryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	q := queue.NewMemoryRatingQueue(4, &queue.MemoryRetryConfig{RetryDelay: 50 * time.Millisecond})
	msgs, err := q.SubscribeRatingRefresh(ctx)
	require.NoError(t, err)

	require.NoError(t, q.PublishRatingRefresh(ctx, 3))
	receive(t, msgs).Nack(true)
	cancel()

	// a fresh subscriber sees nothing: the retry was abandoned with ctx
	next, err := q.SubscribeRatingRefresh(context.Background())
	require.NoError(t, err)
	assertNoDelivery(t, next, 150*time.Millisecond)
}
