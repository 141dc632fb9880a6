package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"tourism-reservation/internal/handler"
	"tourism-reservation/internal/model"
	"tourism-reservation/internal/service/mocks"
	apperrors "tourism-reservation/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupReservationTestRouter(mockService *mocks.MockReservationService, caller *model.Caller) *gin.Engine {
	router, api := newTestRouter()
	handler.NewReservationHandler(mockService).RegisterRoutes(api, fakeAuth(caller))
	return router
}

func TestCheckAvailability(t *testing.T) {
	t.Run("Success - event tickets", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, nil)

		mockService.EXPECT().
			CheckAvailability(mock.Anything, model.AvailabilityQuery{EntityType: model.EntityTypeEvent, EntityID: 5, Quantity: 3}).
			Return(true, nil).
			Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/reservations/availability?entityType=event&entityId=5&numberOfTickets=3", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "success", body.Status)
		assert.JSONEq(t, `{"available": true}`, string(body.Data))
	})

	t.Run("Success - place defaults to one person", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, nil)

		mockService.EXPECT().
			CheckAvailability(mock.Anything, mock.MatchedBy(func(q model.AvailabilityQuery) bool {
				return q.EntityType == model.EntityTypePlace && q.Quantity == 1 && q.Date != nil && q.Date.String() == "2026-08-15"
			})).
			Return(false, nil).
			Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/reservations/availability?entityType=place&entityId=9&date=2026-08-15", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"available": false}`, string(decode(t, w).Data))
	})

	t.Run("Failed - missing entity type", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, nil)

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/reservations/availability?entityId=5", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.Equal(t, "error", body.Status)
		assert.Contains(t, body.Errors, handler.FieldError{Field: "entityType", Message: "is required"})
	})

	t.Run("Failed - unknown entity type", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, nil)

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/reservations/availability?entityType=hotel&entityId=5", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w).Errors, handler.FieldError{Field: "entityType", Message: "must be event or place"})
	})

	t.Run("Failed - malformed date", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, nil)

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/reservations/availability?entityType=place&entityId=9&date=15/08/2026", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "date", decode(t, w).Errors[0].Field)
	})

	t.Run("Failed - ErrInvalidRequest", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, nil)

		mockService.EXPECT().CheckAvailability(mock.Anything, mock.Anything).Return(false, apperrors.ErrInvalidRequest).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/reservations/availability?entityType=place&entityId=9", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid entity type or missing required parameters", decode(t, w).Message)
	})
}

func TestCreateReservation(t *testing.T) {
	payload := map[string]any{"eventId": 5, "numberOfTickets": 2}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, userCaller)

		mockService.EXPECT().
			Create(mock.Anything, *userCaller, mock.MatchedBy(func(req model.CreateReservationRequest) bool {
				return *req.EventID == 5 && *req.NumberOfTickets == 2
			})).
			Return(&model.Reservation{ID: 1, UserID: userCaller.ID, EventID: intPtr(5), TotalPrice: 40, Status: model.ReservationStatusPending}, nil).
			Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/reservations", payload))

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Reservation created successfully", body.Message)

		var created model.Reservation
		require.NoError(t, json.Unmarshal(body.Data, &created))
		assert.Equal(t, 1, created.ID)
		assert.InDelta(t, 40.0, created.TotalPrice, 1e-9)
	})

	t.Run("Failed - ErrNotEnoughTickets", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, userCaller)

		mockService.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrNotEnoughTickets).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/reservations", payload))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Not enough tickets available", decode(t, w).Message)
	})

	t.Run("Failed - ErrPlaceUnavailable", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, userCaller)

		mockService.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrPlaceUnavailable).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/reservations", map[string]any{
			"placeId": 9, "numberOfPersons": 2, "visitDate": "2026-08-15",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Place not available on this date", decode(t, w).Message)
	})

	t.Run("Failed - unknown event", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, userCaller)

		mockService.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrEventNotFound).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/reservations", payload))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Event not found", decode(t, w).Message)
	})

	t.Run("Failed - wrong field type", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, userCaller)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/reservations", `{"eventId": 5, "numberOfTickets": "two"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []handler.FieldError{{Field: "numberOfTickets", Message: "has the wrong type"}}, decode(t, w).Errors)
	})

	t.Run("Failed - invalid JSON", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, userCaller)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/reservations", InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request format", decode(t, w).Message)
	})

	t.Run("Failed - unauthenticated", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, nil)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/reservations", payload))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestListReservations(t *testing.T) {
	t.Run("Success - with date range", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, userCaller)

		mockService.EXPECT().
			List(mock.Anything, *userCaller, mock.MatchedBy(func(f model.ReservationFilter) bool {
				return f.Status == model.ReservationStatusConfirmed &&
					f.FromDate != nil && f.FromDate.String() == "2026-01-01" &&
					f.ToDate == nil
			})).
			Return([]*model.Reservation{{ID: 1}, {ID: 2}}, nil).
			Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/reservations?status=confirmed&fromDate=2026-01-01", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var list []model.Reservation
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &list))
		assert.Len(t, list, 2)
	})

	t.Run("Failed - unknown status", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, userCaller)

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/reservations?status=refunded", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid status", decode(t, w).Message)
	})
}

func TestGetReservation(t *testing.T) {
	t.Run("Failed - invalid id", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, userCaller)

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/reservations/abc", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid id", decode(t, w).Message)
	})

	t.Run("Failed - ErrForbidden", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, userCaller)

		mockService.EXPECT().Get(mock.Anything, *userCaller, 7).Return(nil, apperrors.ErrForbidden).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/reservations/7", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Access denied", decode(t, w).Message)
	})

	t.Run("Failed - ErrReservationNotFound", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, userCaller)

		mockService.EXPECT().Get(mock.Anything, *userCaller, 7).Return(nil, apperrors.ErrReservationNotFound).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/reservations/7", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Reservation not found", decode(t, w).Message)
	})
}

func TestUpdateReservation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, userCaller)

		mockService.EXPECT().
			Update(mock.Anything, *userCaller, 7, mock.MatchedBy(func(p model.UpdateReservationParams) bool {
				return *p.Status == model.ReservationStatusCancelled && p.TotalPrice == nil
			})).
			Return(&model.Reservation{ID: 7, Status: model.ReservationStatusCancelled}, nil).
			Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPut, "/api/v1/reservations/7", map[string]any{
			"status":     "cancelled",
			"totalPrice": 0.01,
		}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - ErrInvalidStatusChange", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, userCaller)

		mockService.EXPECT().Update(mock.Anything, mock.Anything, 7, mock.Anything).Return(nil, apperrors.ErrInvalidStatusChange).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPut, "/api/v1/reservations/7", map[string]any{"status": "pending"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid reservation status change", decode(t, w).Message)
	})

	t.Run("Failed - status outside the lifecycle", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, userCaller)

		w := serve(router, createJSONHTTPRequest(http.MethodPut, "/api/v1/reservations/7", map[string]any{"status": "refunded"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w).Errors[0].Message, "must be one of pending, confirmed, cancelled, completed")
	})
}

func TestDeleteReservation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, adminCaller)

		mockService.EXPECT().Delete(mock.Anything, *adminCaller, 7).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/v1/reservations/7", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed - unexpected error", func(t *testing.T) {
		mockService := mocks.NewMockReservationService(t)
		router := setupReservationTestRouter(mockService, adminCaller)

		mockService.EXPECT().Delete(mock.Anything, *adminCaller, 7).Return(assert.AnError).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/v1/reservations/7", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decode(t, w).Message)
	})
}

func intPtr(v int) *int { return &v }
