package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/keysfinder-api/internal/config"
	"github.com/phrazzld/keysfinder-api/internal/platform/sqlstore"
	"github.com/phrazzld/keysfinder-api/internal/redact"
)

// setupAppDatabase opens the catalog connection pool and verifies it is
// reachable. The DSN never appears in errors or logs.
func setupAppDatabase(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*sql.DB, sqlstore.Dialect, error) {
	db, dialect, err := sqlstore.Open(ctx, cfg.Database)
	if err != nil {
		return nil, sqlstore.Dialect{}, fmt.Errorf("database setup failed: %s", redact.Error(err))
	}

	logger.Info("Database connection established",
		"driver", dialect.Name(),
		"max_open_conns", cfg.Database.MaxOpenConns)
	return db, dialect, nil
}
