package model

import "time"

type Event struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	Location    *string   `json:"location,omitempty" db:"location"`
	Organizer   *string   `json:"organizer,omitempty" db:"organizer"`
	StartDate   time.Time `json:"startDate" db:"start_date"`
	EndDate     time.Time `json:"endDate" db:"end_date"`
	Capacity    int       `json:"capacity" db:"capacity"`
	TicketPrice float64   `json:"ticketPrice" db:"ticket_price"`
	Images      []string  `json:"images" db:"images"`
	ProviderID  *int      `json:"providerId" db:"provider_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (e *Event) IsOwnedBy(providerID int) bool {
	return e.ProviderID != nil && *e.ProviderID == providerID
}

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	Organizer   *string   `json:"organizer"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	Capacity    int       `json:"capacity" binding:"required,min=1"`
	TicketPrice float64   `json:"ticketPrice" binding:"gte=0"`
	Images      []string  `json:"images"`
	ProviderID  *int      `json:"providerId"`
}

type UpdateEventParams struct {
	Title       *string    `json:"title" binding:"omitempty,max=255"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Organizer   *string    `json:"organizer"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Capacity    *int       `json:"capacity" binding:"omitempty,min=1"`
	TicketPrice *float64   `json:"ticketPrice" binding:"omitempty,gte=0"`
	Images      *[]string  `json:"images"`
	ProviderID  *int       `json:"providerId"`
}

type EventFilter struct {
	ProviderID *int   `form:"providerId"`
	Search     string `form:"search"`
	// Upcoming keeps events starting after now, soonest first.
	Upcoming bool `form:"upcoming"`
	Limit    int  `form:"limit"`
	Offset   int  `form:"offset"`
}
