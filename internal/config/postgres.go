package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var dbPool *pgxpool.Pool

// ConnectToPostgres initializes the PostgreSQL connection pool. Persistence is
// optional; callers only connect when a URL is configured.
func ConnectToPostgres(ctx context.Context, url string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	dbPool = pool
	return pool, nil
}

// GetDB returns the global PostgreSQL pool, or nil when persistence is disabled.
func GetDB() *pgxpool.Pool {
	return dbPool
}

// ClosePostgres safely closes the PostgreSQL pool.
func ClosePostgres() {
	if dbPool != nil {
		dbPool.Close()
	}
}
