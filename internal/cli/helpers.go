package cli

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"toolbelt.dev/toolbelt/internal/awsx"
	"toolbelt.dev/toolbelt/internal/config"
	"toolbelt.dev/toolbelt/internal/db"
)

// connectByNickname resolves a nickname and opens a verified connection pool.
// An explicit region overrides the registry's.
func connectByNickname(ctx context.Context, nickname, region string, readOnly bool) (*pgxpool.Pool, *config.Registry, error) {
	registry, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	cluster, err := registry.Lookup(nickname)
	if err != nil {
		return nil, nil, err
	}
	if region == "" {
		region = cluster.Region
	}

	clients, err := awsx.NewClients(ctx, region)
	if err != nil {
		return nil, nil, err
	}

	details, err := db.NewResolver(registry, clients).Resolve(ctx, nickname, readOnly)
	if err != nil {
		return nil, nil, err
	}

	pool, err := db.Connect(ctx, details)
	if err != nil {
		return nil, nil, err
	}
	return pool, registry, nil
}
