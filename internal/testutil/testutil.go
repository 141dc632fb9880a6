package testutil

import (
	"context"
	"fmt"
	"log"

	"tourism-reservation/config"
	"tourism-reservation/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Setup connects to the test Postgres and Redis. Packages call it from
// TestMain and skip their integration tests when it fails.
func Setup() (*pgxpool.Pool, *redis.Client, func(), error) {
	testDB, cleanupDB, err := SetupDatabaseOnly()
	if err != nil {
		return nil, nil, nil, err
	}

	testRdb, cleanupRedis, err := SetupRedisOnly()
	if err != nil {
		cleanupDB()
		return nil, nil, nil, err
	}

	cleanup := func() {
		cleanupDB()
		cleanupRedis()
	}
	return testDB, testRdb, cleanup, nil
}

// SetupDatabaseOnly connects to the test database and applies the schema.
func SetupDatabaseOnly() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	testDB, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	if err := testDB.Ping(context.Background()); err != nil {
		testDB.Close()
		return nil, nil, fmt.Errorf("failed to ping test database: %w", err)
	}
	log.Println("Test database connected successfully")

	return testDB, testDB.Close, nil
}

// SetupRedisOnly is for tests that only need Redis, such as the stream
// queue and the rate limiter.
func SetupRedisOnly() (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	cleanup := func() { rdb.Close() }
	return rdb, cleanup, nil
}
