package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tourism-reservation/internal/queue"
	queueMocks "tourism-reservation/internal/queue/mocks"
	"tourism-reservation/internal/worker"
	apperrors "tourism-reservation/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	mu      sync.Mutex
	results map[int]error
	calls   []int
}

func (f *fakeRefresher) RefreshRating(_ context.Context, placeID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, placeID)
	return f.results[placeID]
}

// outcome records how a delivery was settled.
type outcome struct {
	acked   bool
	nacked  bool
	requeue bool
}

func delivery(placeID int, settled chan<- outcome) queue.Delivery {
	return queue.Delivery{
		PlaceID: placeID,
		Ack:     func() { settled <- outcome{acked: true} },
		Nack:    func(requeue bool) { settled <- outcome{nacked: true, requeue: requeue} },
	}
}

func TestRatingWorker_SettlesDeliveries(t *testing.T) {
	tests := []struct {
		name   string
		result error
		want   outcome
	}{
		{"refreshed", nil, outcome{acked: true}},
		{"place deleted", apperrors.ErrPlaceNotFound, outcome{nacked: true, requeue: false}},
		{"transient failure", errors.New("connection reset"), outcome{nacked: true, requeue: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			msgs := make(chan queue.Delivery, 1)
			settled := make(chan outcome, 1)
			q := queueMocks.NewMockRatingQueue(t)
			q.EXPECT().SubscribeRatingRefresh(mock.Anything).Return((<-chan queue.Delivery)(msgs), nil).Once()

			refresher := &fakeRefresher{results: map[int]error{5: tt.result}}
			done, err := worker.NewRatingWorker(refresher, q).Start(ctx)
			require.NoError(t, err)

			msgs <- delivery(5, settled)

			select {
			case got := <-settled:
				assert.Equal(t, tt.want, got)
			case <-time.After(time.Second):
				t.Fatal("delivery was not settled")
			}

			close(msgs)
			<-done
			assert.Equal(t, []int{5}, refresher.calls)
		})
	}
}

func TestRatingWorker_SubscribeFailure(t *testing.T) {
	q := queueMocks.NewMockRatingQueue(t)
	q.EXPECT().SubscribeRatingRefresh(mock.Anything).Return(nil, errors.New("redis down")).Once()

	done, err := worker.NewRatingWorker(&fakeRefresher{}, q).Start(context.Background())

	assert.Error(t, err)
	assert.Nil(t, done)
}

func TestRatingWorker_WithMemoryQueue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	q := queue.NewMemoryRatingQueue(10, nil)
	refreshed := make(chan int, 3)
	refresher := &channelRefresher{out: refreshed}

	done, err := worker.NewRatingWorker(refresher, q).Start(ctx)
	require.NoError(t, err)

	for _, id := range []int{1, 2, 3} {
		require.NoError(t, q.PublishRatingRefresh(ctx, id))
	}

	var got []int
	for range 3 {
		select {
		case id := <-refreshed:
			got = append(got, id)
		case <-time.After(time.Second):
			t.Fatal("worker did not process the queue in time")
		}
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestRatingWorker_FailingRefreshIsRetriedWithBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewMemoryRatingQueue(10, &queue.MemoryRetryConfig{
		RetryDelay:    20 * time.Millisecond,
		MaxRetryCount: 4,
	})
	refresher := &fakeRefresher{results: map[int]error{5: errors.New("connection refused")}}

	done, err := worker.NewRatingWorker(refresher, q).Start(ctx)
	require.NoError(t, err)
	require.NoError(t, q.PublishRatingRefresh(ctx, 5))

	time.Sleep(300 * time.Millisecond)
	cancel()
	<-done

	refresher.mu.Lock()
	defer refresher.mu.Unlock()
	assert.Len(t, refresher.calls, 4, "one request is attempted at most MaxRetryCount times")
}

type channelRefresher struct {
	out chan<- int
}

func (r *channelRefresher) RefreshRating(_ context.Context, placeID int) error {
	r.out <- placeID
	return nil
}
