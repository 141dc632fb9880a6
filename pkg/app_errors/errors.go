package apperrors

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrPlaceNotFound       = errors.New("place not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrPromotionNotFound   = errors.New("promotion not found")

	ErrValidation   = errors.New("validation failed")
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRequest is returned when the parameters of an availability
	// query do not describe a bookable entity.
	ErrInvalidRequest = errors.New("invalid entity type or missing required parameters")

	ErrNotEnoughTickets = errors.New("not enough tickets available")
	ErrPlaceUnavailable = errors.New("place not available on this date")

	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidStatusChange = errors.New("invalid reservation status change")
	ErrInternalServerError = errors.New("internal server error")
)

var notFound = []error{
	ErrUserNotFound,
	ErrPlaceNotFound,
	ErrEventNotFound,
	ErrReviewNotFound,
	ErrReservationNotFound,
	ErrPromotionNotFound,
}

// IsNotFound reports whether err wraps any of the entity not-found sentinels.
func IsNotFound(err error) bool {
	for _, target := range notFound {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
