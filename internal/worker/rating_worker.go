package worker

import (
	"context"
	"errors"

	"tourism-reservation/internal/queue"
	apperrors "tourism-reservation/pkg/app_errors"
	"tourism-reservation/pkg/logger"

	"go.uber.org/zap"
)

// RatingRefresher is the part of the place service the worker drives.
type RatingRefresher interface {
	RefreshRating(ctx context.Context, placeID int) error
}

type RatingWorker interface {
	// Start subscribes and processes deliveries until ctx is cancelled. The
	// returned channel is closed once the last delivery has been handled.
	Start(ctx context.Context) (<-chan struct{}, error)
}

type RatingWorkerImpl struct {
	refresher RatingRefresher
	queue     queue.RatingQueue
}

func NewRatingWorker(refresher RatingRefresher, queue queue.RatingQueue) RatingWorker {
	return &RatingWorkerImpl{
		refresher: refresher,
		queue:     queue,
	}
}

func (w *RatingWorkerImpl) Start(ctx context.Context) (<-chan struct{}, error) {
	msgs, err := w.queue.SubscribeRatingRefresh(ctx)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			w.handle(ctx, msg)
		}
	}()
	return done, nil
}

func (w *RatingWorkerImpl) handle(ctx context.Context, msg queue.Delivery) {
	err := w.refresher.RefreshRating(ctx, msg.PlaceID)
	switch {
	case err == nil:
		msg.Ack()
	case errors.Is(err, apperrors.ErrPlaceNotFound):
		// the place was deleted since the review was written
		msg.Nack(false)
	default:
		logger.WithComponent("worker").Warn("Rating refresh failed, requeueing",
			zap.Int("place_id", msg.PlaceID),
			zap.Error(err),
		)
		msg.Nack(true)
	}
}
