package repository_test

import (
	"context"
	"testing"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/repository"
	apperrors "tourism-reservation/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) *model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return &d
}

func TestReservationRepository_EventOccupancy(t *testing.T) {
	db := getTestDB(t)
	repo := repository.NewReservationRepository(db)
	ctx := context.Background()
	setupTestWithTruncate(t)

	userID := createTestUser(t, "guest@example.com", "user")
	eventID := createTestEvent(t, 10, 25, nil)

	capacity, booked, err := repo.EventOccupancy(ctx, db, eventID)
	require.NoError(t, err)
	assert.Equal(t, 10, capacity)
	assert.Equal(t, 0, booked)

	for _, b := range []struct {
		tickets int
		status  model.ReservationStatus
	}{
		{3, model.ReservationStatusPending},
		{2, model.ReservationStatusConfirmed},
		{4, model.ReservationStatusCancelled},
	} {
		_, err := repo.Create(ctx, db, &model.Reservation{
			UserID:          userID,
			EventID:         intPtr(eventID),
			NumberOfTickets: intPtr(b.tickets),
			TotalPrice:      float64(b.tickets) * 25,
			Status:          b.status,
		})
		require.NoError(t, err)
	}

	_, booked, err = repo.EventOccupancy(ctx, db, eventID)
	require.NoError(t, err)
	assert.Equal(t, 5, booked, "cancelled reservations do not hold tickets")

	_, _, err = repo.EventOccupancy(ctx, db, eventID+100)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestReservationRepository_CountPlaceBookingsOn(t *testing.T) {
	db := getTestDB(t)
	repo := repository.NewReservationRepository(db)
	ctx := context.Background()
	setupTestWithTruncate(t)

	userID := createTestUser(t, "guest@example.com", "user")
	placeID := createTestPlace(t, "Museum", `{}`, nil)
	day := mustDate(t, "2026-08-15")

	_, err := repo.Create(ctx, db, &model.Reservation{
		UserID: userID, PlaceID: intPtr(placeID), NumberOfPersons: intPtr(2), VisitDate: day,
		TotalPrice: 20, Status: model.ReservationStatusPending,
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, db, &model.Reservation{
		UserID: userID, PlaceID: intPtr(placeID), NumberOfPersons: intPtr(1), VisitDate: mustDate(t, "2026-08-16"),
		TotalPrice: 10, Status: model.ReservationStatusCancelled,
	})
	require.NoError(t, err)

	count, err := repo.CountPlaceBookingsOn(ctx, db, placeID, *day)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountPlaceBookingsOn(ctx, db, placeID, *mustDate(t, "2026-08-16"))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestReservationRepository_CreateRoundTrip(t *testing.T) {
	db := getTestDB(t)
	repo := repository.NewReservationRepository(db)
	ctx := context.Background()
	setupTestWithTruncate(t)

	userID := createTestUser(t, "guest@example.com", "user")
	placeID := createTestPlace(t, "Museum", `{}`, nil)

	created, err := repo.Create(ctx, db, &model.Reservation{
		UserID:          userID,
		PlaceID:         intPtr(placeID),
		NumberOfPersons: intPtr(3),
		VisitDate:       mustDate(t, "2026-09-01"),
		TotalPrice:      37.5,
		Status:          model.ReservationStatusPending,
		PaymentMethod:   strPtr("card"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", found.VisitDate.String())
	assert.InDelta(t, 37.5, found.TotalPrice, 1e-9)
	assert.Nil(t, found.EventID)
	assert.Equal(t, "card", *found.PaymentMethod)

	_, err = repo.FindByID(ctx, created.ID+1)
	assert.ErrorIs(t, err, apperrors.ErrReservationNotFound)
}

func TestReservationRepository_UpdateSwitchesTarget(t *testing.T) {
	db := getTestDB(t)
	repo := repository.NewReservationRepository(db)
	ctx := context.Background()
	setupTestWithTruncate(t)

	userID := createTestUser(t, "guest@example.com", "user")
	eventID := createTestEvent(t, 10, 25, nil)
	placeID := createTestPlace(t, "Museum", `{}`, nil)

	created, err := repo.Create(ctx, db, &model.Reservation{
		UserID: userID, EventID: intPtr(eventID), NumberOfTickets: intPtr(2),
		TotalPrice: 50, Status: model.ReservationStatusPending,
	})
	require.NoError(t, err)

	total := 30.0
	updated, err := repo.Update(ctx, created.ID, model.UpdateReservationParams{
		ClearEvent:      true,
		PlaceID:         intPtr(placeID),
		NumberOfPersons: intPtr(3),
		VisitDate:       mustDate(t, "2026-10-01"),
		TotalPrice:      &total,
	})
	require.NoError(t, err)

	assert.Nil(t, updated.EventID)
	assert.Nil(t, updated.NumberOfTickets)
	assert.Equal(t, placeID, *updated.PlaceID)
	assert.InDelta(t, 30.0, updated.TotalPrice, 1e-9)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	_, err = repo.Update(ctx, created.ID, model.UpdateReservationParams{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestReservationRepository_ListScopesByProvider(t *testing.T) {
	db := getTestDB(t)
	repo := repository.NewReservationRepository(db)
	ctx := context.Background()
	setupTestWithTruncate(t)

	userID := createTestUser(t, "guest@example.com", "user")
	providerID := createTestUser(t, "provider@example.com", "provider")
	otherID := createTestUser(t, "other@example.com", "provider")

	ownEvent := createTestEvent(t, 10, 5, intPtr(providerID))
	ownPlace := createTestPlace(t, "Own place", `{}`, intPtr(providerID))
	foreignEvent := createTestEvent(t, 10, 5, intPtr(otherID))

	for _, r := range []*model.Reservation{
		{UserID: userID, EventID: intPtr(ownEvent), NumberOfTickets: intPtr(1), Status: model.ReservationStatusPending},
		{UserID: userID, PlaceID: intPtr(ownPlace), NumberOfPersons: intPtr(1), VisitDate: mustDate(t, "2026-07-01"), Status: model.ReservationStatusPending},
		{UserID: userID, EventID: intPtr(foreignEvent), NumberOfTickets: intPtr(1), Status: model.ReservationStatusPending},
	} {
		_, err := repo.Create(ctx, db, r)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, model.ReservationFilter{ProviderID: intPtr(providerID)})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.List(ctx, model.ReservationFilter{UserID: intPtr(userID), EventID: intPtr(foreignEvent)})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestReservationRepository_Delete(t *testing.T) {
	db := getTestDB(t)
	repo := repository.NewReservationRepository(db)
	ctx := context.Background()
	setupTestWithTruncate(t)

	userID := createTestUser(t, "guest@example.com", "user")
	eventID := createTestEvent(t, 10, 5, nil)
	created, err := repo.Create(ctx, db, &model.Reservation{
		UserID: userID, EventID: intPtr(eventID), NumberOfTickets: intPtr(1), Status: model.ReservationStatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), apperrors.ErrReservationNotFound)
}

func strPtr(s string) *string { return &s }
