package handler_test

import (
	"net/http"
	"testing"

	"tourism-reservation/internal/handler"
	"tourism-reservation/internal/model"
	"tourism-reservation/internal/service/mocks"
	apperrors "tourism-reservation/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupPlaceTestRouter(mockService *mocks.MockPlaceService, caller *model.Caller) *gin.Engine {
	router, api := newTestRouter()
	handler.NewPlaceHandler(mockService).RegisterRoutes(api, fakeAuth(caller))
	return router
}

func TestSearchPlaces(t *testing.T) {
	t.Run("Success - proximity", func(t *testing.T) {
		mockService := mocks.NewMockPlaceService(t)
		router := setupPlaceTestRouter(mockService, nil)

		mockService.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(f model.PlaceFilter) bool {
				return f.IsProximity() && *f.Latitude == 38.72 && *f.Longitude == -9.14 && f.RadiusKm == 2.5
			})).
			Return([]*model.Place{{ID: 1, Name: "Castle"}}, nil).
			Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/places/search?lat=38.72&lng=-9.14&radius=2.5", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Success - q is a name search", func(t *testing.T) {
		mockService := mocks.NewMockPlaceService(t)
		router := setupPlaceTestRouter(mockService, nil)

		mockService.EXPECT().List(mock.Anything, model.PlaceFilter{Name: "tower"}).Return([]*model.Place{}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/places/search?q=tower", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - nothing to search for", func(t *testing.T) {
		mockService := mocks.NewMockPlaceService(t)
		router := setupPlaceTestRouter(mockService, nil)

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/places/search", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - ErrValidation", func(t *testing.T) {
		mockService := mocks.NewMockPlaceService(t)
		router := setupPlaceTestRouter(mockService, nil)

		mockService.EXPECT().List(mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrValidation).
			Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/places/search?lat=100&lng=0", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPlaceListings(t *testing.T) {
	t.Run("Success - by region", func(t *testing.T) {
		mockService := mocks.NewMockPlaceService(t)
		router := setupPlaceTestRouter(mockService, nil)

		mockService.EXPECT().List(mock.Anything, model.PlaceFilter{Region: "Algarve", Type: "beach"}).Return([]*model.Place{}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/places/region/Algarve?type=beach", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Success - by provider", func(t *testing.T) {
		mockService := mocks.NewMockPlaceService(t)
		router := setupPlaceTestRouter(mockService, nil)

		mockService.EXPECT().List(mock.Anything, model.PlaceFilter{ProviderID: intPtr(2)}).Return([]*model.Place{}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/places/provider/2", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Success - popular", func(t *testing.T) {
		mockService := mocks.NewMockPlaceService(t)
		router := setupPlaceTestRouter(mockService, nil)

		mockService.EXPECT().Popular(mock.Anything, 5).Return([]*model.Place{}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/places/popular?limit=5", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - invalid popular limit", func(t *testing.T) {
		mockService := mocks.NewMockPlaceService(t)
		router := setupPlaceTestRouter(mockService, nil)

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/places/popular?limit=zero", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid limit", decode(t, w).Message)
	})
}

func TestPlaceRating(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockPlaceService(t)
		router := setupPlaceTestRouter(mockService, nil)

		mockService.EXPECT().Rating(mock.Anything, 4).Return(&model.PlaceRating{PlaceID: 4, AverageRating: 4}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/places/4/rating", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"placeId": 4, "averageRating": 4}`, string(decode(t, w).Data))
	})

	t.Run("Failed - ErrPlaceNotFound", func(t *testing.T) {
		mockService := mocks.NewMockPlaceService(t)
		router := setupPlaceTestRouter(mockService, nil)

		mockService.EXPECT().Rating(mock.Anything, 4).Return(nil, apperrors.ErrPlaceNotFound).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/places/4/rating", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Place not found", decode(t, w).Message)
	})
}

func TestCreatePlace(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockPlaceService(t)
		router := setupPlaceTestRouter(mockService, providerCaller)

		mockService.EXPECT().
			Create(mock.Anything, *providerCaller, mock.MatchedBy(func(req model.CreatePlaceRequest) bool {
				return req.Name == "Lighthouse" && string(req.EntranceFee) == `{"adult":4}`
			})).
			Return(&model.Place{ID: 8, Name: "Lighthouse"}, nil).
			Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/places", `{"name":"Lighthouse","type":"landmark","entranceFee":{"adult":4}}`))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Place created successfully", decode(t, w).Message)
	})

	t.Run("Failed - missing name", func(t *testing.T) {
		mockService := mocks.NewMockPlaceService(t)
		router := setupPlaceTestRouter(mockService, providerCaller)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/places", map[string]any{"type": "landmark"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []handler.FieldError{{Field: "name", Message: "is required"}}, decode(t, w).Errors)
	})

	t.Run("Failed - ErrForbidden", func(t *testing.T) {
		mockService := mocks.NewMockPlaceService(t)
		router := setupPlaceTestRouter(mockService, userCaller)

		mockService.EXPECT().Create(mock.Anything, *userCaller, mock.Anything).Return(nil, apperrors.ErrForbidden).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/places", map[string]any{"name": "Shed", "type": "barn"}))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Failed - unauthenticated", func(t *testing.T) {
		mockService := mocks.NewMockPlaceService(t)
		router := setupPlaceTestRouter(mockService, nil)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/places", map[string]any{"name": "Shed", "type": "barn"}))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDeletePlace(t *testing.T) {
	mockService := mocks.NewMockPlaceService(t)
	router := setupPlaceTestRouter(mockService, providerCaller)

	mockService.EXPECT().Delete(mock.Anything, *providerCaller, 8).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/places/8", nil)
	w := serve(router, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
