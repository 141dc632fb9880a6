package queue

import (
	"context"
	"time"

	"tourism-reservation/pkg/logger"

	"go.uber.org/zap"
)

// Delivery is one rating refresh request handed to a consumer.
type Delivery struct {
	PlaceID int
	Ack     func()
	Nack    func(requeue bool)
}

// RatingQueue carries requests to recompute the average rating of a place.
type RatingQueue interface {
	PublishRatingRefresh(ctx context.Context, placeID int) error
	SubscribeRatingRefresh(ctx context.Context) (<-chan Delivery, error)
}

// MemoryRetryConfig overrides the retry timings; zero fields keep defaults.
type MemoryRetryConfig struct {
	RetryDelay    time.Duration // wait before a nacked request is redelivered
	MaxRetryCount int           // deliveries after which a request is dropped
}

func defaultMemoryRetryConfig() MemoryRetryConfig {
	return MemoryRetryConfig{
		RetryDelay:    5 * time.Second,
		MaxRetryCount: 5,
	}
}

type memoryMessage struct {
	placeID    int
	deliveries int
}

// MemoryRatingQueue is a channel-backed queue for single-process setups and
// tests. Requests still buffered or waiting for a retry at shutdown are lost.
type MemoryRatingQueue struct {
	ch  chan memoryMessage
	cfg MemoryRetryConfig
}

func NewMemoryRatingQueue(bufferSize int, config *MemoryRetryConfig) RatingQueue {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	cfg := defaultMemoryRetryConfig()
	if config != nil {
		if config.RetryDelay > 0 {
			cfg.RetryDelay = config.RetryDelay
		}
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
	}
	return &MemoryRatingQueue{
		ch:  make(chan memoryMessage, bufferSize),
		cfg: cfg,
	}
}

func (q *MemoryRatingQueue) PublishRatingRefresh(ctx context.Context, placeID int) error {
	select {
	case q.ch <- memoryMessage{placeID: placeID}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryRatingQueue) SubscribeRatingRefresh(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-q.ch:
				msg.deliveries++
				d := Delivery{
					PlaceID: msg.placeID,
					Ack:     func() {},
					Nack: func(requeue bool) {
						if requeue {
							q.retryLater(ctx, msg)
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// retryLater puts msg back after RetryDelay unless it has used up its
// deliveries. It never blocks the consumer that nacked it.
func (q *MemoryRatingQueue) retryLater(ctx context.Context, msg memoryMessage) {
	log := logger.WithComponent("mq")
	if msg.deliveries >= q.cfg.MaxRetryCount {
		log.Warn("Discarding rating refresh after max retries",
			zap.Int("place_id", msg.placeID),
			zap.Int("deliveries", msg.deliveries),
		)
		return
	}

	go func() {
		timer := time.NewTimer(q.cfg.RetryDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		select {
		case q.ch <- msg:
		default:
			log.Warn("Rating queue full, dropping retry", zap.Int("place_id", msg.placeID))
		}
	}()
}
