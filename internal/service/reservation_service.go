package service

import (
	"context"
	"time"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/notify"
	"tourism-reservation/internal/repository"
	apperrors "tourism-reservation/pkg/app_errors"
	"tourism-reservation/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationService interface {
	List(ctx context.Context, caller model.Caller, filter model.ReservationFilter) ([]*model.Reservation, error)
	Get(ctx context.Context, caller model.Caller, id int) (*model.Reservation, error)
	// Create reserves the requested event tickets or place visit: the
	// availability check, the price calculation and the insert commit together.
	Create(ctx context.Context, caller model.Caller, req model.CreateReservationRequest) (*model.Reservation, error)
	Update(ctx context.Context, caller model.Caller, id int, params model.UpdateReservationParams) (*model.Reservation, error)
	Delete(ctx context.Context, caller model.Caller, id int) error
	CheckAvailability(ctx context.Context, query model.AvailabilityQuery) (bool, error)
}

type ReservationServiceImpl struct {
	db           TxBeginner
	reservations repository.ReservationRepository
	events       repository.EventRepository
	places       repository.PlaceRepository
	availability *AvailabilityCalculator
	pricing      *PriceCalculator
	access       *AccessFilter
	publisher    notify.Publisher
}

func NewReservationService(
	db TxBeginner,
	reservations repository.ReservationRepository,
	events repository.EventRepository,
	places repository.PlaceRepository,
	publisher notify.Publisher,
) ReservationService {
	return &ReservationServiceImpl{
		db:           db,
		reservations: reservations,
		events:       events,
		places:       places,
		availability: NewAvailabilityCalculator(reservations),
		pricing:      NewPriceCalculator(events, places),
		access:       NewAccessFilter(events, places),
		publisher:    publisher,
	}
}

func (s *ReservationServiceImpl) List(ctx context.Context, caller model.Caller, filter model.ReservationFilter) ([]*model.Reservation, error) {
	if err := s.access.ScopeReservations(caller, &filter); err != nil {
		return nil, err
	}
	return s.reservations.List(ctx, filter)
}

func (s *ReservationServiceImpl) Get(ctx context.Context, caller model.Caller, id int) (*model.Reservation, error) {
	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.AuthorizeReservation(ctx, caller, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *ReservationServiceImpl) Create(ctx context.Context, caller model.Caller, req model.CreateReservationRequest) (*model.Reservation, error) {
	reservation := newReservation(caller, req)
	if err := validateBooking(reservation); err != nil {
		return nil, err
	}

	created, err := s.reserve(ctx, reservation)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, notify.ReservationCreated, created)
	return created, nil
}

// reserve locks the target row so concurrent requests for the same event or
// place queue up behind each other between the check and the insert.
func (s *ReservationServiceImpl) reserve(ctx context.Context, reservation *model.Reservation) (*model.Reservation, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	entityType, id, _ := reservation.Target()
	query := model.AvailabilityQuery{
		EntityType: entityType,
		EntityID:   id,
		Date:       reservation.VisitDate,
		Quantity:   reservation.Quantity(),
	}

	switch entityType {
	case model.EntityTypeEvent:
		event, err := s.events.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		available, err := s.availability.Check(ctx, tx, query)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, apperrors.ErrNotEnoughTickets
		}
		reservation.TotalPrice = s.pricing.EventTotal(event, query.Quantity)

	case model.EntityTypePlace:
		place, err := s.places.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		available, err := s.availability.Check(ctx, tx, query)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, apperrors.ErrPlaceUnavailable
		}
		reservation.TotalPrice = s.pricing.PlaceTotal(place, query.Quantity)
	}

	created, err := s.reservations.Create(ctx, tx, reservation)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ReservationServiceImpl) Update(ctx context.Context, caller model.Caller, id int, params model.UpdateReservationParams) (*model.Reservation, error) {
	current, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.AuthorizeReservation(ctx, caller, current); err != nil {
		return nil, err
	}

	params = s.access.RestrictReservationUpdate(caller, current, params)
	params.TotalPrice = nil

	if params.Status != nil {
		if !params.Status.IsValid() {
			return nil, validationError("status must be one of pending, confirmed, cancelled, completed")
		}
		if !caller.IsAdmin() && !current.Status.CanTransitionTo(*params.Status) {
			return nil, apperrors.ErrInvalidStatusChange
		}
	}

	if params.ChangesBooking() {
		if err := s.reprice(ctx, current, &params); err != nil {
			return nil, err
		}
	}

	if params.IsEmpty() {
		return nil, validationError("no updatable fields provided")
	}

	updated, err := s.reservations.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, notify.ReservationUpdated, updated)
	return updated, nil
}

// reprice recomputes the total for an update that changes the booked entity
// or quantity. Switching target clears the columns of the previous one.
func (s *ReservationServiceImpl) reprice(ctx context.Context, current *model.Reservation, params *model.UpdateReservationParams) error {
	if params.EventID != nil && current.PlaceID != nil {
		params.ClearPlace = true
	}
	if params.PlaceID != nil && current.EventID != nil {
		params.ClearEvent = true
	}

	merged := params.Apply(*current)
	if err := validateBooking(&merged); err != nil {
		return err
	}

	total, err := s.pricing.Quote(ctx, &merged)
	if err != nil {
		return err
	}
	params.TotalPrice = &total
	return nil
}

func (s *ReservationServiceImpl) Delete(ctx context.Context, caller model.Caller, id int) error {
	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.access.AuthorizeReservation(ctx, caller, reservation); err != nil {
		return err
	}

	if err := s.reservations.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, notify.ReservationDeleted, reservation)
	return nil
}

func (s *ReservationServiceImpl) CheckAvailability(ctx context.Context, query model.AvailabilityQuery) (bool, error) {
	return s.availability.Check(ctx, s.db, query)
}

// publish is best-effort: the reservation is already committed.
func (s *ReservationServiceImpl) publish(ctx context.Context, eventType notify.EventType, reservation *model.Reservation) {
	event := notify.ReservationEvent{
		ID:          uuid.New().String(),
		Type:        eventType,
		OccurredAt:  time.Now().UTC(),
		Reservation: reservation,
	}
	if err := s.publisher.PublishReservation(ctx, event); err != nil {
		logger.WithComponent("reservation").Warn("Failed to publish reservation event",
			zap.String("type", string(eventType)),
			zap.Int("reservation_id", reservation.ID),
			zap.Error(err),
		)
	}
}

// newReservation builds the row to insert. Only admins may book on behalf of
// another user or choose the initial status.
func newReservation(caller model.Caller, req model.CreateReservationRequest) *model.Reservation {
	reservation := &model.Reservation{
		UserID:        caller.ID,
		EventID:       req.EventID,
		PlaceID:       req.PlaceID,
		Status:        model.ReservationStatusPending,
		PaymentMethod: req.PaymentMethod,
		PaymentID:     req.PaymentID,
		PaymentStatus: req.PaymentStatus,
	}
	if caller.IsAdmin() {
		if req.UserID != nil {
			reservation.UserID = *req.UserID
		}
		if req.Status != nil {
			reservation.Status = *req.Status
		}
	}

	if req.EventID != nil {
		reservation.NumberOfTickets = req.NumberOfTickets
	}
	if req.PlaceID != nil {
		reservation.NumberOfPersons = req.NumberOfPersons
		reservation.VisitDate = req.VisitDate
	}
	return reservation
}

// validateBooking enforces the event XOR place target, the fields each target
// requires and the absence of the other target's fields.
func validateBooking(r *model.Reservation) error {
	entityType, _, ok := r.Target()
	if !ok {
		return validationError("a reservation must reference exactly one of eventId or placeId")
	}
	if !r.Status.IsValid() {
		return validationError("status must be one of pending, confirmed, cancelled, completed")
	}

	switch entityType {
	case model.EntityTypeEvent:
		if r.NumberOfTickets == nil || *r.NumberOfTickets < 1 {
			return validationError("numberOfTickets must be at least 1 for event reservations")
		}
		if r.NumberOfPersons != nil || r.VisitDate != nil {
			return validationError("numberOfPersons and visitDate only apply to place reservations")
		}
	case model.EntityTypePlace:
		if r.NumberOfPersons == nil || *r.NumberOfPersons < 1 {
			return validationError("numberOfPersons must be at least 1 for place reservations")
		}
		if r.VisitDate == nil {
			return validationError("visitDate is required for place reservations")
		}
		if r.NumberOfTickets != nil {
			return validationError("numberOfTickets only applies to event reservations")
		}
	}
	return nil
}
