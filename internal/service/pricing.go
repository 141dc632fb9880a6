package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/repository"
	"tourism-reservation/pkg/logger"

	"go.uber.org/zap"
)

// FallbackEntranceFee is the per-person fee used when a place has no usable
// adult entry in its fee table.
const FallbackEntranceFee = 10.0

var (
	errFeeTableMissing = errors.New("fee table missing")
	errAdultFeeMissing = errors.New("adult fee missing")
	errAdultFeeInvalid = errors.New("adult fee is not a positive number")
)

// PriceCalculator derives the total price stored on a reservation.
type PriceCalculator struct {
	events repository.EventRepository
	places repository.PlaceRepository
}

func NewPriceCalculator(events repository.EventRepository, places repository.PlaceRepository) *PriceCalculator {
	return &PriceCalculator{events: events, places: places}
}

func (p *PriceCalculator) EventTotal(event *model.Event, tickets int) float64 {
	return event.TicketPrice * float64(tickets)
}

// PlaceTotal never fails: an absent or malformed fee table degrades to the
// fallback fee and is only logged.
func (p *PriceCalculator) PlaceTotal(place *model.Place, persons int) float64 {
	fee, err := adultFee(place.EntranceFee)
	if err != nil {
		log := logger.WithComponent("pricing").With(zap.Int("place_id", place.ID), zap.Error(err))
		if errors.Is(err, errFeeTableMissing) {
			log.Debug("Using fallback entrance fee")
		} else {
			log.Warn("Malformed entrance fee, using fallback")
		}
		fee = FallbackEntranceFee
	}
	return fee * float64(persons)
}

// Quote resolves the reservation's target and prices it. It fails with the
// target's not-found error when the id does not resolve.
func (p *PriceCalculator) Quote(ctx context.Context, r *model.Reservation) (float64, error) {
	entityType, id, ok := r.Target()
	if !ok {
		return 0, validationError("a reservation must reference exactly one of eventId or placeId")
	}

	if entityType == model.EntityTypeEvent {
		event, err := p.events.FindByID(ctx, id)
		if err != nil {
			return 0, err
		}
		return p.EventTotal(event, r.Quantity()), nil
	}

	place, err := p.places.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return p.PlaceTotal(place, r.Quantity()), nil
}

func adultFee(raw json.RawMessage) (float64, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" || trimmed == "{}" {
		return 0, errFeeTableMissing
	}

	var table map[string]json.RawMessage
	if err := json.Unmarshal(raw, &table); err != nil {
		return 0, err
	}

	entry, ok := table["adult"]
	if !ok || string(entry) == "null" {
		return 0, errAdultFeeMissing
	}

	var fee float64
	if err := json.Unmarshal(entry, &fee); err != nil {
		var text string
		if json.Unmarshal(entry, &text) != nil {
			return 0, errAdultFeeInvalid
		}
		if fee, err = strconv.ParseFloat(strings.TrimSpace(text), 64); err != nil {
			return 0, errAdultFeeInvalid
		}
	}

	if fee <= 0 || math.IsNaN(fee) || math.IsInf(fee, 0) {
		return 0, errAdultFeeInvalid
	}
	return fee, nil
}
