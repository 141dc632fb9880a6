package repository_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"tourism-reservation/internal/testutil"

	"github.com/jackc/pgx/v5/pgxpool"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	db, cleanup, err := testutil.SetupDatabaseOnly()
	if err != nil {
		log.Printf("test database unavailable, repository tests will be skipped: %v", err)
		os.Exit(m.Run())
	}
	testDB = db
	code := m.Run()
	cleanup()
	os.Exit(code)
}

// getTestDB returns the pool, skipping the test without a database.
func getTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDB == nil {
		t.Skip("test database is not available")
	}
	return testDB
}

func setupTestWithTruncate(t *testing.T) {
	t.Helper()
	_, err := getTestDB(t).Exec(context.Background(),
		"TRUNCATE promotions, reservations, reviews, events, places, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

func createTestUser(t *testing.T, email, role string) int {
	t.Helper()
	var id int
	err := testDB.QueryRow(context.Background(), `
		INSERT INTO users (first_name, last_name, email, role)
		VALUES ('Test', 'User', $1, $2)
		RETURNING id
	`, email, role).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return id
}

func createTestEvent(t *testing.T, capacity int, price float64, providerID *int) int {
	t.Helper()
	start := time.Now().UTC().Add(24 * time.Hour)
	var id int
	err := testDB.QueryRow(context.Background(), `
		INSERT INTO events (title, start_date, end_date, capacity, ticket_price, provider_id)
		VALUES ('Test event', $1, $2, $3, $4, $5)
		RETURNING id
	`, start, start.Add(2*time.Hour), capacity, price, providerID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return id
}

func createTestPlace(t *testing.T, name string, location string, providerID *int) int {
	t.Helper()
	var id int
	err := testDB.QueryRow(context.Background(), `
		INSERT INTO places (name, type, location, entrance_fee, provider_id)
		VALUES ($1, 'museum', $2::jsonb, '{"adult": 10}'::jsonb, $3)
		RETURNING id
	`, name, location, providerID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test place: %v", err)
	}
	return id
}

func intPtr(v int) *int { return &v }
