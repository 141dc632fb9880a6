package service_test

import (
	"context"
	"testing"

	"tourism-reservation/internal/model"
	repoMocks "tourism-reservation/internal/repository/mocks"
	"tourism-reservation/internal/service"
	apperrors "tourism-reservation/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceCalculator_EventTotal(t *testing.T) {
	calc := service.NewPriceCalculator(nil, nil)

	assert.InDelta(t, 75.0, calc.EventTotal(testEvent(1, 100, 25, nil), 3), 1e-9)
	assert.InDelta(t, 0.0, calc.EventTotal(testEvent(1, 100, 0, nil), 4), 1e-9)
}

func TestPriceCalculator_PlaceTotal(t *testing.T) {
	calc := service.NewPriceCalculator(nil, nil)

	tests := []struct {
		name    string
		fee     string
		persons int
		want    float64
	}{
		{"numeric adult fee", `{"adult": 15, "child": 5}`, 2, 30},
		{"numeric string adult fee", `{"adult": "12.50"}`, 4, 50},
		{"no fee table", "", 3, 30},
		{"null fee table", `null`, 3, 30},
		{"empty fee table", `{}`, 2, 20},
		{"adult entry missing", `{"child": 5}`, 2, 20},
		{"zero adult fee", `{"adult": 0}`, 2, 20},
		{"negative adult fee", `{"adult": -8}`, 1, 10},
		{"unparseable adult fee", `{"adult": "free"}`, 1, 10},
		{"fee table is not an object", `[1, 2]`, 5, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.PlaceTotal(testPlace(7, tt.fee, nil), tt.persons)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPriceCalculator_Quote(t *testing.T) {
	ctx := context.Background()

	t.Run("event target", func(t *testing.T) {
		events := repoMocks.NewMockEventRepository(t)
		calc := service.NewPriceCalculator(events, nil)

		events.EXPECT().FindByID(ctx, 4).Return(testEvent(4, 50, 20, nil), nil).Once()

		total, err := calc.Quote(ctx, &model.Reservation{EventID: intPtr(4), NumberOfTickets: intPtr(3)})

		require.NoError(t, err)
		assert.InDelta(t, 60.0, total, 1e-9)
	})

	t.Run("place target", func(t *testing.T) {
		places := repoMocks.NewMockPlaceRepository(t)
		calc := service.NewPriceCalculator(nil, places)

		places.EXPECT().FindByID(ctx, 9).Return(testPlace(9, `{"adult": 8}`, nil), nil).Once()

		total, err := calc.Quote(ctx, &model.Reservation{PlaceID: intPtr(9), NumberOfPersons: intPtr(2)})

		require.NoError(t, err)
		assert.InDelta(t, 16.0, total, 1e-9)
	})

	t.Run("missing event", func(t *testing.T) {
		events := repoMocks.NewMockEventRepository(t)
		calc := service.NewPriceCalculator(events, nil)

		events.EXPECT().FindByID(ctx, 4).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := calc.Quote(ctx, &model.Reservation{EventID: intPtr(4), NumberOfTickets: intPtr(1)})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("both targets", func(t *testing.T) {
		calc := service.NewPriceCalculator(nil, nil)

		_, err := calc.Quote(ctx, &model.Reservation{EventID: intPtr(1), PlaceID: intPtr(2)})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
