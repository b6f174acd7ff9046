// Package testutil connects integration tests to the test Postgres and Redis.
package testutil

import (
	"context"
	"fmt"
	"log"

	"go-gin-event-portal/config"
	"go-gin-event-portal/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// SetupDatabase opens the test database and makes sure the journal schema exists.
func SetupDatabase() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping test database: %v", err)
	}
	if err := database.EnsureSchema(context.Background(), pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to create schema: %v", err)
	}
	log.Println("Test database connected successfully")

	cleanup := func() {
		pool.Close()
		log.Println("Test database closed")
	}
	return pool, cleanup, nil
}

// SetupRedisOnly only opens Redis, for tests of the Redis-backed stores.
func SetupRedisOnly() (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %v", err)
	}
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to ping redis: %v", err)
	}
	log.Println("Test redis connected successfully")

	cleanup := func() {
		rdb.Close()
		log.Println("Test redis closed")
	}
	return rdb, cleanup, nil
}
