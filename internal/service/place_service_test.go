package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"tourism-reservation/internal/model"
	repoMocks "tourism-reservation/internal/repository/mocks"
	"tourism-reservation/internal/service"
	apperrors "tourism-reservation/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlaceService(t *testing.T) (service.PlaceService, *repoMocks.MockPlaceRepository, *repoMocks.MockReviewRepository) {
	places := repoMocks.NewMockPlaceRepository(t)
	reviews := repoMocks.NewMockReviewRepository(t)
	return service.NewPlaceService(places, reviews, repoMocks.NewMockEventRepository(t)), places, reviews
}

func TestPlaceService_ListValidatesProximity(t *testing.T) {
	ctx := context.Background()

	invalid := map[string]model.PlaceFilter{
		"lat without lng":     {Latitude: floatPtr(45)},
		"latitude too large":  {Latitude: floatPtr(91), Longitude: floatPtr(10)},
		"longitude too small": {Latitude: floatPtr(10), Longitude: floatPtr(-181)},
		"negative radius":     {Latitude: floatPtr(10), Longitude: floatPtr(10), RadiusKm: -1},
	}
	for name, filter := range invalid {
		t.Run(name, func(t *testing.T) {
			svc, _, _ := newPlaceService(t)

			_, err := svc.List(ctx, filter)

			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}

	t.Run("valid proximity search", func(t *testing.T) {
		svc, places, _ := newPlaceService(t)
		filter := model.PlaceFilter{Latitude: floatPtr(48.85), Longitude: floatPtr(2.35), RadiusKm: 5}

		places.EXPECT().List(mock.Anything, filter).Return([]*model.Place{testPlace(1, "", nil)}, nil).Once()

		list, err := svc.List(ctx, filter)

		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestPlaceService_Rating(t *testing.T) {
	ctx := context.Background()

	t.Run("average of reviews", func(t *testing.T) {
		svc, places, reviews := newPlaceService(t)

		places.EXPECT().FindByID(mock.Anything, 3).Return(testPlace(3, "", nil), nil).Once()
		reviews.EXPECT().AverageRatingForPlace(mock.Anything, 3).Return(4.0, nil).Once()

		rating, err := svc.Rating(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, &model.PlaceRating{PlaceID: 3, AverageRating: 4}, rating)
	})

	t.Run("unknown place", func(t *testing.T) {
		svc, places, _ := newPlaceService(t)

		places.EXPECT().FindByID(mock.Anything, 3).Return(nil, apperrors.ErrPlaceNotFound).Once()

		_, err := svc.Rating(ctx, 3)

		assert.ErrorIs(t, err, apperrors.ErrPlaceNotFound)
	})
}

func TestPlaceService_Create(t *testing.T) {
	ctx := context.Background()
	req := model.CreatePlaceRequest{
		Name:        "Botanical garden",
		Type:        "park",
		EntranceFee: json.RawMessage(`{"adult": 6}`),
		ProviderID:  intPtr(50),
	}

	t.Run("provider owns what they create", func(t *testing.T) {
		svc, places, _ := newPlaceService(t)

		places.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(p *model.Place) bool {
				return p.ProviderID != nil && *p.ProviderID == provider.ID
			})).
			Return(&model.Place{ID: 1, ProviderID: intPtr(provider.ID)}, nil).
			Once()

		_, err := svc.Create(ctx, provider, req)

		require.NoError(t, err)
	})

	t.Run("admin assigns a provider", func(t *testing.T) {
		svc, places, _ := newPlaceService(t)

		places.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(p *model.Place) bool {
				return *p.ProviderID == 50
			})).
			Return(&model.Place{ID: 2}, nil).
			Once()

		_, err := svc.Create(ctx, admin, req)

		require.NoError(t, err)
	})

	t.Run("tourists cannot list places", func(t *testing.T) {
		svc, _, _ := newPlaceService(t)

		_, err := svc.Create(ctx, tourist, req)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("fee table must be an object", func(t *testing.T) {
		svc, _, _ := newPlaceService(t)
		bad := req
		bad.EntranceFee = json.RawMessage(`"ten euros"`)

		_, err := svc.Create(ctx, admin, bad)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("half a coordinate", func(t *testing.T) {
		svc, _, _ := newPlaceService(t)
		bad := req
		bad.Location = model.Location{Latitude: floatPtr(1)}

		_, err := svc.Create(ctx, admin, bad)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestPlaceService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	owned := testPlace(3, "", intPtr(provider.ID))

	t.Run("owner cannot reassign the place", func(t *testing.T) {
		svc, places, _ := newPlaceService(t)

		places.EXPECT().FindByID(mock.Anything, 3).Return(owned, nil).Once()
		places.EXPECT().
			Update(mock.Anything, 3, mock.MatchedBy(func(p model.UpdatePlaceParams) bool {
				return p.ProviderID == nil && *p.Name == "Renamed"
			})).
			Return(owned, nil).
			Once()

		_, err := svc.Update(ctx, provider, 3, model.UpdatePlaceParams{Name: strPtr("Renamed"), ProviderID: intPtr(99)})

		require.NoError(t, err)
	})

	t.Run("other provider", func(t *testing.T) {
		svc, places, _ := newPlaceService(t)

		places.EXPECT().FindByID(mock.Anything, 3).Return(testPlace(3, "", intPtr(42)), nil).Once()

		assert.ErrorIs(t, svc.Delete(ctx, provider, 3), apperrors.ErrForbidden)
	})

	t.Run("admin deletes", func(t *testing.T) {
		svc, places, _ := newPlaceService(t)

		places.EXPECT().FindByID(mock.Anything, 3).Return(owned, nil).Once()
		places.EXPECT().Delete(mock.Anything, 3).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, admin, 3))
	})
}

func TestPlaceService_RefreshRating(t *testing.T) {
	svc, places, _ := newPlaceService(t)

	places.EXPECT().RefreshAverageRating(mock.Anything, 3).Return(4.5, nil).Once()
	places.EXPECT().RefreshAverageRating(mock.Anything, 4).Return(0.0, apperrors.ErrPlaceNotFound).Once()

	assert.NoError(t, svc.RefreshRating(context.Background(), 3))
	assert.ErrorIs(t, svc.RefreshRating(context.Background(), 4), apperrors.ErrPlaceNotFound)
}
