package handler_test

import (
	"net/http"
	"testing"
	"time"

	"tourism-reservation/internal/handler"
	"tourism-reservation/internal/model"
	"tourism-reservation/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupPromotionTestRouter(mockService *mocks.MockPromotionService, caller *model.Caller) *gin.Engine {
	router, api := newTestRouter()
	handler.NewPromotionHandler(mockService).RegisterRoutes(api, fakeAuth(caller))
	return router
}

func TestListActivePromotions(t *testing.T) {
	t.Run("Success - explicit date", func(t *testing.T) {
		mockService := mocks.NewMockPromotionService(t)
		router := setupPromotionTestRouter(mockService, nil)
		day, _ := model.ParseDate("2026-06-10")

		mockService.EXPECT().ListActive(mock.Anything, 3, day).Return([]*model.Promotion{{ID: 1}}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/promotions/place/3/active?date=2026-06-10", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Success - defaults to today", func(t *testing.T) {
		mockService := mocks.NewMockPromotionService(t)
		router := setupPromotionTestRouter(mockService, nil)
		today := model.NewDate(time.Now().UTC())

		mockService.EXPECT().
			ListActive(mock.Anything, 3, mock.MatchedBy(func(d model.Date) bool {
				// tolerate a run that crosses midnight
				return !d.Before(today.Time) && d.Sub(today.Time) <= 24*time.Hour
			})).
			Return([]*model.Promotion{}, nil).
			Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/promotions/place/3/active", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestListPromotions(t *testing.T) {
	mockService := mocks.NewMockPromotionService(t)
	router := setupPromotionTestRouter(mockService, nil)

	mockService.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f model.PromotionFilter) bool {
			return *f.PlaceID == 3 && f.ActiveOn != nil && f.ActiveOn.String() == "2026-06-10"
		})).
		Return([]*model.Promotion{}, nil).
		Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/promotions?placeId=3&activeOn=2026-06-10", nil)
	w := serve(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
