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

func setupReviewTestRouter(mockService *mocks.MockReviewService, caller *model.Caller) *gin.Engine {
	router, api := newTestRouter()
	handler.NewReviewHandler(mockService).RegisterRoutes(api, fakeAuth(caller))
	return router
}

func TestCreateReview(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockReviewService(t)
		router := setupReviewTestRouter(mockService, userCaller)

		mockService.EXPECT().
			Create(mock.Anything, *userCaller, mock.MatchedBy(func(req model.CreateReviewRequest) bool {
				return req.PlaceID == 7 && *req.Rating == 4.5
			})).
			Return(&model.Review{ID: 1, PlaceID: 7, Rating: 4.5}, nil).
			Once()

		body := map[string]any{"placeId": 7, "rating": 4.5, "comment": "Lovely views"}
		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/reviews", body))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Review created successfully", decode(t, w).Message)
	})

	t.Run("Failed - rating out of range", func(t *testing.T) {
		mockService := mocks.NewMockReviewService(t)
		router := setupReviewTestRouter(mockService, userCaller)

		body := map[string]any{"placeId": 7, "rating": 6}
		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/reviews", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []handler.FieldError{{Field: "rating", Message: "must be at most 5"}}, decode(t, w).Errors)
	})

	t.Run("Failed - invalid JSON", func(t *testing.T) {
		mockService := mocks.NewMockReviewService(t)
		router := setupReviewTestRouter(mockService, userCaller)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/reviews", InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request format", decode(t, w).Message)
	})

	t.Run("Failed - ErrPlaceNotFound", func(t *testing.T) {
		mockService := mocks.NewMockReviewService(t)
		router := setupReviewTestRouter(mockService, userCaller)

		mockService.EXPECT().Create(mock.Anything, *userCaller, mock.Anything).
			Return(nil, apperrors.ErrPlaceNotFound).
			Once()

		body := map[string]any{"placeId": 99, "rating": 3}
		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/reviews", body))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReviewWrites(t *testing.T) {
	t.Run("Success - update", func(t *testing.T) {
		mockService := mocks.NewMockReviewService(t)
		router := setupReviewTestRouter(mockService, userCaller)

		mockService.EXPECT().Update(mock.Anything, *userCaller, 3, mock.Anything).
			Return(&model.Review{ID: 3, Rating: 2}, nil).
			Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPut, "/api/v1/reviews/3", map[string]any{"rating": 2}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - delete by someone else", func(t *testing.T) {
		mockService := mocks.NewMockReviewService(t)
		router := setupReviewTestRouter(mockService, userCaller)

		mockService.EXPECT().Delete(mock.Anything, *userCaller, 3).Return(apperrors.ErrForbidden).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/v1/reviews/3", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Access denied", decode(t, w).Message)
	})

	t.Run("Failed - unauthenticated", func(t *testing.T) {
		mockService := mocks.NewMockReviewService(t)
		router := setupReviewTestRouter(mockService, nil)

		req, _ := http.NewRequest(http.MethodDelete, "/api/v1/reviews/3", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Success - delete", func(t *testing.T) {
		mockService := mocks.NewMockReviewService(t)
		router := setupReviewTestRouter(mockService, adminCaller)

		mockService.EXPECT().Delete(mock.Anything, *adminCaller, 3).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/v1/reviews/3", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
