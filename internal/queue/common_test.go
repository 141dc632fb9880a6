package queue_test

import (
	"log"
	"os"
	"testing"

	"tourism-reservation/internal/testutil"

	"github.com/redis/go-redis/v9"
)

var testRdb *redis.Client

func TestMain(m *testing.M) {
	rdb, cleanup, err := testutil.SetupRedisOnly()
	if err != nil {
		log.Printf("redis unavailable, stream queue tests will be skipped: %v", err)
		os.Exit(m.Run())
	}
	testRdb = rdb
	code := m.Run()
	cleanup()
	os.Exit(code)
}

func getTestRdb(t *testing.T) *redis.Client {
	t.Helper()
	if testRdb == nil {
		t.Skip("test redis is not available")
	}
	return testRdb
}
