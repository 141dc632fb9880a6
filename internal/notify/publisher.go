package notify

import (
	"context"
	"time"

	"tourism-reservation/internal/model"
)

type EventType string

const (
	ReservationCreated EventType = "reservation.created"
	ReservationUpdated EventType = "reservation.updated"
	ReservationDeleted EventType = "reservation.deleted"
)

// ReservationEvent is the message published after a reservation changes.
type ReservationEvent struct {
	ID          string             `json:"id"`
	Type        EventType          `json:"type"`
	OccurredAt  time.Time          `json:"occurredAt"`
	Reservation *model.Reservation `json:"reservation"`
}

type Publisher interface {
	PublishReservation(ctx context.Context, event ReservationEvent) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() Publisher {
	return NoopPublisher{}
}

func (NoopPublisher) PublishReservation(context.Context, ReservationEvent) error { return nil }
func (NoopPublisher) Close() error { return nil }
