package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/taskfarm/internal/config"
	"github.com/osse101/taskfarm/internal/database"
	"github.com/osse101/taskfarm/internal/database/postgres"
	"github.com/osse101/taskfarm/internal/eventlog"
)

// InitializeEventLog picks the audit log storage. Without DATABASE_URL events stay in memory;
// otherwise a Postgres pool is opened, migrated, and returned for the caller to close.
func InitializeEventLog(ctx context.Context, cfg *config.Config) (eventlog.Repository, *pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		slog.Info(LogMsgEventLogMemory, "capacity", cfg.EventLogCapacity)
		return eventlog.NewMemoryRepository(cfg.EventLogCapacity), nil, nil
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{
		DSN:             cfg.DatabaseURL,
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: DBMaxConnIdleTime,
		MaxConnLifetime: DBMaxConnLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	migrateCtx, cancel := context.WithTimeout(ctx, MigrationTimeout)
	defer cancel()
	if err := database.Migrate(migrateCtx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
	}

	slog.Info(LogMsgEventLogPostgres, "max_conns", cfg.DBMaxConns)
	return postgres.NewEventLogRepository(pool), pool, nil
}
