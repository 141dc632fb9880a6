package repository_test

import (
	"context"
	"encoding/json"
	"testing"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/repository"
	apperrors "tourism-reservation/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestPlaceRepository_CreateKeepsFeeTable(t *testing.T) {
	repo := repository.NewPlaceRepository(getTestDB(t))
	ctx := context.Background()
	setupTestWithTruncate(t)

	created, err := repo.Create(ctx, &model.Place{
		Name:        "Tile museum",
		Type:        "museum",
		Location:    model.Location{Latitude: floatPtr(38.72), Longitude: floatPtr(-9.11), Region: "Lisbon"},
		EntranceFee: json.RawMessage(`{"adult": "5.00", "child": 0}`),
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", found.Location.Region)
	assert.JSONEq(t, `{"adult": "5.00", "child": 0}`, string(found.EntranceFee))
	assert.Equal(t, []string{}, found.Images)

	_, err = repo.FindByID(ctx, created.ID+1)
	assert.ErrorIs(t, err, apperrors.ErrPlaceNotFound)
}

func TestPlaceRepository_ProximitySearch(t *testing.T) {
	repo := repository.NewPlaceRepository(getTestDB(t))
	ctx := context.Background()
	setupTestWithTruncate(t)

	// about 1 km and 300 km from the search point
	createTestPlace(t, "Near", `{"latitude": 38.72, "longitude": -9.13}`, nil)
	createTestPlace(t, "Far", `{"latitude": 41.15, "longitude": -8.61}`, nil)
	createTestPlace(t, "Nowhere", `{}`, nil)

	places, err := repo.List(ctx, model.PlaceFilter{Latitude: floatPtr(38.72), Longitude: floatPtr(-9.14), RadiusKm: 5})
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Near", places[0].Name)
	require.NotNil(t, places[0].Distance)
	assert.InDelta(t, 0.87, *places[0].Distance, 0.1)

	places, err = repo.List(ctx, model.PlaceFilter{Latitude: floatPtr(38.72), Longitude: floatPtr(-9.14), RadiusKm: 500})
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Near", places[0].Name, "nearest first")
	assert.Equal(t, "Far", places[1].Name)
}

func TestPlaceRepository_FilterByRegionAndName(t *testing.T) {
	repo := repository.NewPlaceRepository(getTestDB(t))
	ctx := context.Background()
	setupTestWithTruncate(t)

	createTestPlace(t, "Sea Museum", `{"region": "Algarve"}`, nil)
	createTestPlace(t, "Castle", `{"region": "Algarve"}`, nil)
	createTestPlace(t, "Science museum", `{"region": "Porto"}`, nil)

	places, err := repo.List(ctx, model.PlaceFilter{Region: "Algarve"})
	require.NoError(t, err)
	assert.Len(t, places, 2)

	places, err = repo.List(ctx, model.PlaceFilter{Name: "museum"})
	require.NoError(t, err)
	assert.Len(t, places, 2)
}

func TestPlaceRepository_RefreshAverageRating(t *testing.T) {
	db := getTestDB(t)
	repo := repository.NewPlaceRepository(db)
	reviews := repository.NewReviewRepository(db)
	ctx := context.Background()
	setupTestWithTruncate(t)

	userID := createTestUser(t, "critic@example.com", "user")
	placeID := createTestPlace(t, "Garden", `{}`, nil)
	emptyID := createTestPlace(t, "Empty", `{}`, nil)

	for _, rating := range []float64{3, 4, 5} {
		_, err := reviews.Create(ctx, &model.Review{UserID: userID, PlaceID: placeID, Rating: rating})
		require.NoError(t, err)
	}

	average, err := reviews.AverageRatingForPlace(ctx, placeID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, average, 1e-9)

	stored, err := repo.RefreshAverageRating(ctx, placeID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, stored, 1e-9)

	stored, err = repo.RefreshAverageRating(ctx, emptyID)
	require.NoError(t, err)
	assert.Zero(t, stored)

	popular, err := repo.Popular(ctx, 1)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, placeID, popular[0].ID)

	_, err = repo.RefreshAverageRating(ctx, emptyID+100)
	assert.ErrorIs(t, err, apperrors.ErrPlaceNotFound)
}
