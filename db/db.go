// Package db owns the PostgreSQL connection pool. The pool is opened once
// at startup and passed down explicitly; nothing else in the application
// holds database state.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog"
)

const pingTimeout = 10 * time.Second

type DB struct {
	Pool *pgxpool.Pool
	log  zerolog.Logger
}

// Connect opens the pool from a postgres:// URL and pings it so startup
// fails fast when the database is down.
func Connect(ctx context.Context, databaseURL string, log zerolog.Logger) (*DB, error) {
	pool, err := pgxpool.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Msg("connected to the database")

	return &DB{Pool: pool, log: log}, nil
}

// EnsureSchema creates the tables when they do not exist yet, one statement
// at a time.
func (d *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := d.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (d *DB) Close() {
	d.log.Info().Msg("closing database connection pool")
	d.Pool.Close()
}
