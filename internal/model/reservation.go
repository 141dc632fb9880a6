package model

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled, ReservationStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo checks the status lifecycle for non-admin callers.
// Re-applying the current status is always allowed.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	if s == target {
		return true
	}

	transitions := map[ReservationStatus][]ReservationStatus{
		ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
		ReservationStatusConfirmed: {ReservationStatusCancelled, ReservationStatusCompleted},
		ReservationStatusCancelled: {},
		ReservationStatusCompleted: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

type EntityType string

const (
	EntityTypeEvent EntityType = "event"
	EntityTypePlace EntityType = "place"
)

type Reservation struct {
	ID              int               `json:"id" db:"id"`
	UserID          int               `json:"userId" db:"user_id"`
	EventID         *int              `json:"eventId" db:"event_id"`
	PlaceID         *int              `json:"placeId" db:"place_id"`
	NumberOfTickets *int              `json:"numberOfTickets" db:"number_of_tickets"`
	NumberOfPersons *int              `json:"numberOfPersons" db:"number_of_persons"`
	VisitDate       *Date             `json:"visitDate" db:"visit_date"`
	TotalPrice      float64           `json:"totalPrice" db:"total_price"`
	Status          ReservationStatus `json:"status" db:"status"`
	PaymentMethod   *string           `json:"paymentMethod" db:"payment_method"`
	PaymentID       *string           `json:"paymentId" db:"payment_id"`
	PaymentStatus   *string           `json:"paymentStatus" db:"payment_status"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time         `json:"updatedAt" db:"updated_at"`
}

// Target returns the booked entity type and id. ok is false unless exactly
// one of EventID and PlaceID is set.
func (r *Reservation) Target() (entityType EntityType, id int, ok bool) {
	switch {
	case r.EventID != nil && r.PlaceID == nil:
		return EntityTypeEvent, *r.EventID, true
	case r.PlaceID != nil && r.EventID == nil:
		return EntityTypePlace, *r.PlaceID, true
	}
	return "", 0, false
}

// Quantity is the number of tickets for events and persons for places.
func (r *Reservation) Quantity() int {
	entityType, _, ok := r.Target()
	if !ok {
		return 0
	}
	if entityType == EntityTypeEvent && r.NumberOfTickets != nil {
		return *r.NumberOfTickets
	}
	if entityType == EntityTypePlace && r.NumberOfPersons != nil {
		return *r.NumberOfPersons
	}
	return 0
}

type CreateReservationRequest struct {
	// UserID is honoured for admins only; everyone else books for themselves.
	UserID          *int               `json:"userId"`
	EventID         *int               `json:"eventId" binding:"omitempty,min=1"`
	PlaceID         *int               `json:"placeId" binding:"omitempty,min=1"`
	NumberOfTickets *int               `json:"numberOfTickets" binding:"omitempty,min=1"`
	NumberOfPersons *int               `json:"numberOfPersons" binding:"omitempty,min=1"`
	VisitDate       *Date              `json:"visitDate"`
	Status          *ReservationStatus `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentMethod   *string            `json:"paymentMethod" binding:"omitempty,max=50"`
	PaymentID       *string            `json:"paymentId" binding:"omitempty,max=255"`
	PaymentStatus   *string            `json:"paymentStatus" binding:"omitempty,max=50"`
}

type UpdateReservationParams struct {
	UserID          *int               `json:"userId" binding:"omitempty,min=1"`
	EventID         *int               `json:"eventId" binding:"omitempty,min=1"`
	PlaceID         *int               `json:"placeId" binding:"omitempty,min=1"`
	NumberOfTickets *int               `json:"numberOfTickets" binding:"omitempty,min=1"`
	NumberOfPersons *int               `json:"numberOfPersons" binding:"omitempty,min=1"`
	VisitDate       *Date              `json:"visitDate"`
	TotalPrice      *float64           `json:"-"`
	Status          *ReservationStatus `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentMethod   *string            `json:"paymentMethod" binding:"omitempty,max=50"`
	PaymentID       *string            `json:"paymentId" binding:"omitempty,max=255"`
	PaymentStatus   *string            `json:"paymentStatus" binding:"omitempty,max=50"`

	// Set when a target switch must null the previous target's columns.
	ClearEvent bool `json:"-"`
	ClearPlace bool `json:"-"`
}

func (p UpdateReservationParams) IsEmpty() bool {
	return p.UserID == nil && p.EventID == nil && p.PlaceID == nil &&
		p.NumberOfTickets == nil && p.NumberOfPersons == nil && p.VisitDate == nil &&
		p.TotalPrice == nil && p.Status == nil && p.PaymentMethod == nil &&
		p.PaymentID == nil && p.PaymentStatus == nil && !p.ClearEvent && !p.ClearPlace
}

// ChangesBooking reports whether the update touches the booked entity or the
// booked quantity.
func (p UpdateReservationParams) ChangesBooking() bool {
	return p.EventID != nil || p.PlaceID != nil || p.NumberOfTickets != nil ||
		p.NumberOfPersons != nil || p.VisitDate != nil
}

// Apply returns a copy of r with the update merged in.
func (p UpdateReservationParams) Apply(r Reservation) Reservation {
	if p.UserID != nil {
		r.UserID = *p.UserID
	}
	if p.ClearEvent {
		r.EventID, r.NumberOfTickets = nil, nil
	}
	if p.ClearPlace {
		r.PlaceID, r.NumberOfPersons, r.VisitDate = nil, nil, nil
	}
	if p.EventID != nil {
		r.EventID = p.EventID
	}
	if p.PlaceID != nil {
		r.PlaceID = p.PlaceID
	}
	if p.NumberOfTickets != nil {
		r.NumberOfTickets = p.NumberOfTickets
	}
	if p.NumberOfPersons != nil {
		r.NumberOfPersons = p.NumberOfPersons
	}
	if p.VisitDate != nil {
		r.VisitDate = p.VisitDate
	}
	if p.TotalPrice != nil {
		r.TotalPrice = *p.TotalPrice
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.PaymentMethod != nil {
		r.PaymentMethod = p.PaymentMethod
	}
	if p.PaymentID != nil {
		r.PaymentID = p.PaymentID
	}
	if p.PaymentStatus != nil {
		r.PaymentStatus = p.PaymentStatus
	}
	return r
}

type ReservationFilter struct {
	UserID   *int              `form:"userId"`
	PlaceID  *int              `form:"placeId"`
	EventID  *int              `form:"eventId"`
	Status   ReservationStatus `form:"status"`
	FromDate *Date             `form:"-"`
	ToDate   *Date             `form:"-"`
	// ProviderID keeps reservations whose place or event the provider owns.
	ProviderID *int `form:"-"`
	Limit      int  `form:"limit"`
	Offset     int  `form:"offset"`
}

// AvailabilityQuery asks whether Quantity units of an entity can be booked.
// Date is required for places.
type AvailabilityQuery struct {
	EntityType EntityType
	EntityID   int
	Date       *Date
	Quantity   int
}
