package queue

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tourism-reservation/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKey          = "ratings:refresh"
	ConsumerGroupName  = "rating-workers"
	ConsumerNamePrefix = "worker"

	placeIDField = "place_id"
)

// RedisStreamConfig overrides the retry timings; zero fields keep defaults.
type RedisStreamConfig struct {
	ClaimMinIdleTime   time.Duration // pending entries idle this long are reclaimed
	MaxRetryCount      int           // deliveries after which an entry is dropped
	ReadGroupBlockTime time.Duration
}

func defaultRedisStreamConfig() RedisStreamConfig {
	return RedisStreamConfig{
		ClaimMinIdleTime:   5 * time.Second,
		MaxRetryCount:      5,
		ReadGroupBlockTime: 2 * time.Second,
	}
}

// RedisStreamRatingQueue shares refresh requests between server instances
// through a stream consumer group. Unacked entries are retried via XAUTOCLAIM.
type RedisStreamRatingQueue struct {
	client       *redis.Client
	streamKey    string
	groupName    string
	consumerName string
	cfg          RedisStreamConfig
}

func NewRedisStreamRatingQueue(ctx context.Context, client *redis.Client, consumerID string, config *RedisStreamConfig) (RatingQueue, error) {
	if consumerID == "" {
		consumerID = uuid.New().String()
	}
	cfg := defaultRedisStreamConfig()
	if config != nil {
		if config.ClaimMinIdleTime > 0 {
			cfg.ClaimMinIdleTime = config.ClaimMinIdleTime
		}
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
		if config.ReadGroupBlockTime > 0 {
			cfg.ReadGroupBlockTime = config.ReadGroupBlockTime
		}
	}

	q := &RedisStreamRatingQueue{
		client:       client,
		streamKey:    StreamKey,
		groupName:    ConsumerGroupName,
		consumerName: fmt.Sprintf("%s:%s", ConsumerNamePrefix, consumerID),
		cfg:          cfg,
	}
	if err := q.ensureConsumerGroup(ctx); err != nil {
		return nil, fmt.Errorf("ensure consumer group: %w", err)
	}
	return q, nil
}

func (q *RedisStreamRatingQueue) ensureConsumerGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, q.streamKey, q.groupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (q *RedisStreamRatingQueue) PublishRatingRefresh(ctx context.Context, placeID int) error {
	err := q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.streamKey,
		ID:     "*",
		Values: map[string]any{placeIDField: placeID},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

func (q *RedisStreamRatingQueue) SubscribeRatingRefresh(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	go func() {
		defer close(out)
		go q.runAutoClaim(ctx, out)
		q.runReadLoop(ctx, out)
	}()
	return out, nil
}

func (q *RedisStreamRatingQueue) runReadLoop(ctx context.Context, out chan<- Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			q.readAndDeliver(ctx, out)
		}
	}
}

// readAndDeliver reads new entries only (">"). Entries already delivered to
// this consumer stay pending and come back through runAutoClaim.
func (q *RedisStreamRatingQueue) readAndDeliver(ctx context.Context, out chan<- Delivery) {
	streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.groupName,
		Consumer: q.consumerName,
		Streams:  []string{q.streamKey, ">"},
		Count:    10,
		Block:    q.cfg.ReadGroupBlockTime,
	}).Result()

	if errors.Is(err, redis.Nil) {
		return
	}
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.WithComponent("mq").Error("XReadGroup failed", zap.Error(err))
		time.Sleep(time.Second)
		return
	}

	for _, stream := range streams {
		if stream.Stream != q.streamKey {
			continue
		}
		for _, msg := range stream.Messages {
			if !q.deliver(ctx, out, msg) {
				return
			}
		}
	}
}

func (q *RedisStreamRatingQueue) runAutoClaim(ctx context.Context, out chan<- Delivery) {
	ticker := time.NewTicker(q.cfg.ClaimMinIdleTime)
	defer ticker.Stop()
	startID := "0-0"

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			claimed, nextID, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
				Stream:   q.streamKey,
				Group:    q.groupName,
				Consumer: q.consumerName,
				MinIdle:  q.cfg.ClaimMinIdleTime,
				Count:    10,
				Start:    startID,
			}).Result()

			if err != nil && !errors.Is(err, redis.Nil) {
				if ctx.Err() == nil {
					logger.WithComponent("mq").Error("XAutoClaim failed", zap.Error(err))
				}
				continue
			}
			if nextID != "" && nextID != "0-0" {
				startID = nextID
			} else {
				startID = "0-0"
			}

			for _, msg := range claimed {
				if q.isPoison(ctx, msg.ID) {
					continue
				}
				if !q.deliver(ctx, out, msg) {
					return
				}
			}
		}
	}
}

// isPoison acks and drops entries delivered MaxRetryCount times or more.
func (q *RedisStreamRatingQueue) isPoison(ctx context.Context, messageID string) bool {
	n, err := q.retryCount(ctx, messageID)
	if err != nil {
		logger.WithComponent("mq").Warn("Reading retry count failed", zap.String("message_id", messageID), zap.Error(err))
		return false
	}
	if n < q.cfg.MaxRetryCount {
		return false
	}

	logger.WithComponent("mq").Warn("Discarding poison message",
		zap.String("message_id", messageID),
		zap.Int("retries", n),
		zap.Int("max_retries", q.cfg.MaxRetryCount),
	)
	_ = q.client.XAck(ctx, q.streamKey, q.groupName, messageID).Err()
	return true
}

func (q *RedisStreamRatingQueue) retryCount(ctx context.Context, messageID string) (int, error) {
	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: q.streamKey,
		Group:  q.groupName,
		Start:  messageID,
		End:    messageID,
		Count:  1,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}
	return int(pending[0].RetryCount), nil
}

// deliver sends msg to out. It returns false once ctx is done.
func (q *RedisStreamRatingQueue) deliver(ctx context.Context, out chan<- Delivery, msg redis.XMessage) bool {
	d, ok := q.newDelivery(ctx, msg)
	if !ok {
		return true
	}
	select {
	case out <- d:
		return true
	case <-ctx.Done():
		return false
	}
}

// newDelivery decodes msg. Undecodable entries are acked and skipped.
func (q *RedisStreamRatingQueue) newDelivery(ctx context.Context, msg redis.XMessage) (Delivery, bool) {
	msgID := msg.ID
	raw, _ := msg.Values[placeIDField].(string)
	placeID, err := strconv.Atoi(raw)
	if err != nil || placeID <= 0 {
		logger.WithComponent("mq").Warn("Invalid rating refresh message", zap.String("message_id", msgID), zap.Any("values", msg.Values))
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, msgID).Err()
		return Delivery{}, false
	}

	return Delivery{
		PlaceID: placeID,
		Ack: func() {
			if err := q.client.XAck(ctx, q.streamKey, q.groupName, msgID).Err(); err != nil {
				logger.WithComponent("mq").Error("XAck failed", zap.String("message_id", msgID), zap.Error(err))
			}
		},
		Nack: func(requeue bool) {
			if requeue {
				// left pending; XAUTOCLAIM picks it up after ClaimMinIdleTime
				logger.WithComponent("mq").Info("Message nacked, will retry", zap.String("message_id", msgID), zap.Duration("claim_min_idle", q.cfg.ClaimMinIdleTime))
				return
			}
			if err := q.client.XAck(ctx, q.streamKey, q.groupName, msgID).Err(); err != nil {
				logger.WithComponent("mq").Error("XAck discard failed", zap.String("message_id", msgID), zap.Error(err))
			}
		},
	}, true
}
