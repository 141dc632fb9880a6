package service

import (
	"context"
	"errors"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/repository"
	apperrors "tourism-reservation/pkg/app_errors"
)

// AvailabilityCalculator decides whether a booking request fits the current
// bookings of an event or a place.
type AvailabilityCalculator struct {
	reservations repository.ReservationRepository
}

func NewAvailabilityCalculator(reservations repository.ReservationRepository) *AvailabilityCalculator {
	return &AvailabilityCalculator{reservations: reservations}
}

// Check runs against q, which is the pool for plain lookups and the
// reservation transaction when the answer gates an insert.
//
// Events: capacity minus non-cancelled tickets must cover the quantity. A
// missing event is reported as unavailable, not as an error.
// Places: any non-cancelled booking on the same day blocks the day,
// whatever the requested quantity.
func (c *AvailabilityCalculator) Check(ctx context.Context, q repository.Querier, query model.AvailabilityQuery) (bool, error) {
	if query.EntityID <= 0 || query.Quantity < 1 {
		return false, apperrors.ErrInvalidRequest
	}

	switch query.EntityType {
	case model.EntityTypeEvent:
		capacity, booked, err := c.reservations.EventOccupancy(ctx, q, query.EntityID)
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return capacity-booked >= query.Quantity, nil

	case model.EntityTypePlace:
		if query.Date == nil {
			return false, apperrors.ErrInvalidRequest
		}
		count, err := c.reservations.CountPlaceBookingsOn(ctx, q, query.EntityID, *query.Date)
		if err != nil {
			return false, err
		}
		return count == 0, nil
	}

	return false, apperrors.ErrInvalidRequest
}
