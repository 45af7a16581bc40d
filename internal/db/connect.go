package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"toolbelt.dev/toolbelt/pkg/logging"
)

// PingTimeout bounds the connectivity check when opening a pool.
const PingTimeout = 10 * time.Second

// Connect opens a pgx connection pool for the given details and verifies it
// with a ping.
func Connect(ctx context.Context, details ConnectionDetails) (*pgxpool.Pool, error) {
	log := logging.New("db")

	poolConfig, err := pgxpool.ParseConfig(details.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", details.Host, err)
	}

	log.Info().Str("database", details.Database).Str("host", details.Host).Msg("connected")
	return pool, nil
}
