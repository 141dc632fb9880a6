package service

import (
	"context"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/repository"
	apperrors "tourism-reservation/pkg/app_errors"
)

// AccessFilter narrows or rejects requests by role and ownership before they
// reach the store.
type AccessFilter struct {
	events repository.EventRepository
	places repository.PlaceRepository
}

func NewAccessFilter(events repository.EventRepository, places repository.PlaceRepository) *AccessFilter {
	return &AccessFilter{events: events, places: places}
}

// ScopeReservations rewrites the filter so a listing only contains rows the
// caller may see.
func (a *AccessFilter) ScopeReservations(caller model.Caller, filter *model.ReservationFilter) error {
	switch caller.Role {
	case model.RoleAdmin:
		return nil
	case model.RoleProvider:
		id := caller.ID
		filter.ProviderID = &id
		return nil
	case model.RoleUser:
		id := caller.ID
		filter.UserID = &id
		return nil
	}
	return apperrors.ErrForbidden
}

// AuthorizeReservation allows admins, the reservation's author and the
// provider owning the booked place or event.
func (a *AccessFilter) AuthorizeReservation(ctx context.Context, caller model.Caller, r *model.Reservation) error {
	if caller.IsAdmin() {
		return nil
	}
	if r.UserID == caller.ID && (caller.Role == model.RoleUser || caller.Role == model.RoleProvider) {
		return nil
	}
	if !caller.IsProvider() {
		return apperrors.ErrForbidden
	}

	owner, err := a.reservationOwner(ctx, r)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.ErrForbidden
		}
		return err
	}
	if owner == nil || *owner != caller.ID {
		return apperrors.ErrForbidden
	}
	return nil
}

// reservationOwner follows the reservation's target to read its provider.
func (a *AccessFilter) reservationOwner(ctx context.Context, r *model.Reservation) (*int, error) {
	entityType, id, ok := r.Target()
	if !ok {
		return nil, nil
	}

	if entityType == model.EntityTypeEvent {
		event, err := a.events.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return event.ProviderID, nil
	}

	place, err := a.places.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return place.ProviderID, nil
}

// RestrictReservationUpdate strips the fields the caller may not change.
// Providers managing someone else's booking keep status and payment status;
// authors keep status and payment details; admins keep everything.
func (a *AccessFilter) RestrictReservationUpdate(caller model.Caller, r *model.Reservation, params model.UpdateReservationParams) model.UpdateReservationParams {
	if caller.IsAdmin() {
		return params
	}

	restricted := model.UpdateReservationParams{
		Status:        params.Status,
		PaymentStatus: params.PaymentStatus,
	}
	if r.UserID == caller.ID {
		restricted.PaymentMethod = params.PaymentMethod
		restricted.PaymentID = params.PaymentID
	}
	return restricted
}

// AuthorizeNewListing rejects callers that cannot own places or events.
func (a *AccessFilter) AuthorizeNewListing(caller model.Caller) error {
	if caller.IsAdmin() || caller.IsProvider() {
		return nil
	}
	return apperrors.ErrForbidden
}

// AuthorizeListing allows admins and the provider owning the place or event.
func (a *AccessFilter) AuthorizeListing(caller model.Caller, providerID *int) error {
	if caller.IsAdmin() {
		return nil
	}
	if caller.IsProvider() && providerID != nil && *providerID == caller.ID {
		return nil
	}
	return apperrors.ErrForbidden
}

// AuthorizeReview allows admins and the review's author.
func (a *AccessFilter) AuthorizeReview(caller model.Caller, review *model.Review) error {
	if caller.IsAdmin() || review.UserID == caller.ID {
		return nil
	}
	return apperrors.ErrForbidden
}

// AuthorizeUser allows admins and the user themselves.
func (a *AccessFilter) AuthorizeUser(caller model.Caller, userID int) error {
	if caller.IsAdmin() || caller.ID == userID {
		return nil
	}
	return apperrors.ErrForbidden
}
