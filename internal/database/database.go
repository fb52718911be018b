// Package database provides PostgreSQL connection management using pgx.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/activity-signup/internal/config"
)

const connectAttempts = 5

// schema creates the activities tables when they do not exist yet.
const schema = `
CREATE TABLE IF NOT EXISTS activities (
	name             TEXT PRIMARY KEY,
	description      TEXT NOT NULL DEFAULT '',
	schedule         TEXT NOT NULL DEFAULT '',
	max_participants INTEGER NOT NULL CHECK (max_participants >= 0),
	position         BIGSERIAL
);

CREATE TABLE IF NOT EXISTS participants (
	id            UUID PRIMARY KEY,
	activity_name TEXT NOT NULL REFERENCES activities (name) ON DELETE CASCADE,
	email         TEXT NOT NULL,
	signed_up_at  TIMESTAMPTZ NOT NULL,
	seq           BIGSERIAL,
	UNIQUE (activity_name, email)
);
`

// NewPool creates and validates a pgxpool connection pool.
// It retries a few times to accommodate containers starting up.
func NewPool(ctx context.Context, cfg config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	poolCfg.MaxConns = 20
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}
		slog.Warn("db connect attempt failed",
			slog.Int("attempt", attempt),
			slog.Int("of", connectAttempts),
			slog.Any("error", err),
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	return nil, fmt.Errorf("connect to postgres: %w", err)
}

// Migrate applies the schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
