package service_test

import (
	"context"
	"encoding/json"
	"time"

	"tourism-reservation/internal/model"
	"tourism-reservation/internal/repository"

	"github.com/jackc/pgx/v5"
)

// fakeTx records how the reservation transaction ended.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

// fakeDB hands out a single fakeTx.
type fakeDB struct {
	repository.Querier
	tx *fakeTx
}

func newFakeDB() *fakeDB {
	return &fakeDB{tx: &fakeTx{}}
}

func (db *fakeDB) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	return db.tx, nil
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func statusPtr(s model.ReservationStatus) *model.ReservationStatus { return &s }

func datePtr(s string) *model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func testEvent(id int, capacity int, price float64, providerID *int) *model.Event {
	start := time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC)
	return &model.Event{
		ID:          id,
		Title:       "Harbour concert",
		StartDate:   start,
		EndDate:     start.Add(3 * time.Hour),
		Capacity:    capacity,
		TicketPrice: price,
		ProviderID:  providerID,
	}
}

func testPlace(id int, fee string, providerID *int) *model.Place {
	var raw json.RawMessage
	if fee != "" {
		raw = json.RawMessage(fee)
	}
	return &model.Place{
		ID:          id,
		Name:        "Old town museum",
		Type:        "museum",
		EntranceFee: raw,
		ProviderID:  providerID,
	}
}
