package service_test

import (
	"context"
	"testing"

	"tourism-reservation/internal/model"
	repoMocks "tourism-reservation/internal/repository/mocks"
	"tourism-reservation/internal/service"
	apperrors "tourism-reservation/pkg/app_errors"

	"github.com/stretchr/testify/assert"
)

var (
	admin    = model.Caller{ID: 1, Role: model.RoleAdmin}
	provider = model.Caller{ID: 2, Role: model.RoleProvider}
	tourist  = model.Caller{ID: 3, Role: model.RoleUser}
	stranger = model.Caller{ID: 4, Role: model.RoleUser}
)

func TestAccessFilter_ScopeReservations(t *testing.T) {
	access := service.NewAccessFilter(nil, nil)

	var filter model.ReservationFilter
	assert.NoError(t, access.ScopeReservations(admin, &filter))
	assert.Nil(t, filter.UserID)
	assert.Nil(t, filter.ProviderID)

	filter = model.ReservationFilter{UserID: intPtr(99)}
	assert.NoError(t, access.ScopeReservations(tourist, &filter))
	assert.Equal(t, tourist.ID, *filter.UserID)

	filter = model.ReservationFilter{}
	assert.NoError(t, access.ScopeReservations(provider, &filter))
	assert.Equal(t, provider.ID, *filter.ProviderID)

	assert.ErrorIs(t, access.ScopeReservations(model.Caller{ID: 5, Role: "guest"}, &filter), apperrors.ErrForbidden)
}

func TestAccessFilter_AuthorizeReservation(t *testing.T) {
	ctx := context.Background()
	booking := &model.Reservation{ID: 10, UserID: tourist.ID, EventID: intPtr(20), NumberOfTickets: intPtr(1)}

	t.Run("admin and author pass without lookups", func(t *testing.T) {
		access := service.NewAccessFilter(repoMocks.NewMockEventRepository(t), repoMocks.NewMockPlaceRepository(t))

		assert.NoError(t, access.AuthorizeReservation(ctx, admin, booking))
		assert.NoError(t, access.AuthorizeReservation(ctx, tourist, booking))
	})

	t.Run("other users are rejected", func(t *testing.T) {
		access := service.NewAccessFilter(repoMocks.NewMockEventRepository(t), repoMocks.NewMockPlaceRepository(t))

		assert.ErrorIs(t, access.AuthorizeReservation(ctx, stranger, booking), apperrors.ErrForbidden)
	})

	t.Run("provider owning the event", func(t *testing.T) {
		events := repoMocks.NewMockEventRepository(t)
		access := service.NewAccessFilter(events, repoMocks.NewMockPlaceRepository(t))

		events.EXPECT().FindByID(ctx, 20).Return(testEvent(20, 10, 5, intPtr(provider.ID)), nil).Once()

		assert.NoError(t, access.AuthorizeReservation(ctx, provider, booking))
	})

	t.Run("provider of another listing", func(t *testing.T) {
		events := repoMocks.NewMockEventRepository(t)
		access := service.NewAccessFilter(events, repoMocks.NewMockPlaceRepository(t))

		events.EXPECT().FindByID(ctx, 20).Return(testEvent(20, 10, 5, intPtr(77)), nil).Once()

		assert.ErrorIs(t, access.AuthorizeReservation(ctx, provider, booking), apperrors.ErrForbidden)
	})

	t.Run("provider and a deleted place", func(t *testing.T) {
		places := repoMocks.NewMockPlaceRepository(t)
		access := service.NewAccessFilter(repoMocks.NewMockEventRepository(t), places)
		visit := &model.Reservation{ID: 11, UserID: tourist.ID, PlaceID: intPtr(30)}

		places.EXPECT().FindByID(ctx, 30).Return(nil, apperrors.ErrPlaceNotFound).Once()

		assert.ErrorIs(t, access.AuthorizeReservation(ctx, provider, visit), apperrors.ErrForbidden)
	})
}

func TestAccessFilter_RestrictReservationUpdate(t *testing.T) {
	access := service.NewAccessFilter(nil, nil)
	booking := &model.Reservation{ID: 10, UserID: tourist.ID}
	confirmed := model.ReservationStatusConfirmed
	params := model.UpdateReservationParams{
		UserID:          intPtr(8),
		NumberOfTickets: intPtr(4),
		Status:          &confirmed,
		PaymentMethod:   strPtr("card"),
		PaymentStatus:   strPtr("paid"),
	}

	assert.Equal(t, params, access.RestrictReservationUpdate(admin, booking, params))

	own := access.RestrictReservationUpdate(tourist, booking, params)
	assert.Nil(t, own.UserID)
	assert.Nil(t, own.NumberOfTickets)
	assert.Equal(t, &confirmed, own.Status)
	assert.Equal(t, "card", *own.PaymentMethod)

	managed := access.RestrictReservationUpdate(provider, booking, params)
	assert.Nil(t, managed.PaymentMethod)
	assert.Equal(t, &confirmed, managed.Status)
	assert.Equal(t, "paid", *managed.PaymentStatus)
}

func TestAccessFilter_Listings(t *testing.T) {
	access := service.NewAccessFilter(nil, nil)

	assert.NoError(t, access.AuthorizeNewListing(admin))
	assert.NoError(t, access.AuthorizeNewListing(provider))
	assert.ErrorIs(t, access.AuthorizeNewListing(tourist), apperrors.ErrForbidden)

	assert.NoError(t, access.AuthorizeListing(admin, nil))
	assert.NoError(t, access.AuthorizeListing(provider, intPtr(provider.ID)))
	assert.ErrorIs(t, access.AuthorizeListing(provider, intPtr(42)), apperrors.ErrForbidden)
	assert.ErrorIs(t, access.AuthorizeListing(provider, nil), apperrors.ErrForbidden)
	assert.ErrorIs(t, access.AuthorizeListing(tourist, intPtr(tourist.ID)), apperrors.ErrForbidden)
}

func TestAccessFilter_ReviewsAndUsers(t *testing.T) {
	access := service.NewAccessFilter(nil, nil)
	review := &model.Review{ID: 1, UserID: tourist.ID, PlaceID: 3}

	assert.NoError(t, access.AuthorizeReview(tourist, review))
	assert.NoError(t, access.AuthorizeReview(admin, review))
	assert.ErrorIs(t, access.AuthorizeReview(stranger, review), apperrors.ErrForbidden)

	assert.NoError(t, access.AuthorizeUser(tourist, tourist.ID))
	assert.NoError(t, access.AuthorizeUser(admin, tourist.ID))
	assert.ErrorIs(t, access.AuthorizeUser(stranger, tourist.ID), apperrors.ErrForbidden)
}
