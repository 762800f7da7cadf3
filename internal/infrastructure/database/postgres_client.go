package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appconfig "fieldserve/internal/config"
)

// ConnectPostgres opens a pgx pool against the configured database and
// verifies connectivity before handing it out.
func ConnectPostgres(ctx context.Context, cfg appconfig.DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}
