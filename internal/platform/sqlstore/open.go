package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Drivers for the supported dialects.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/phrazzld/keysfinder-api/internal/config"
)

// Open opens a connection pool for cfg, applies the pool limits and verifies
// connectivity within cfg.ConnectTimeout. It returns the pool together with
// the dialect the catalog queries must use.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, Dialect, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, Dialect{}, err
	}

	db, err := sql.Open(dialect.DriverName(), cfg.URL)
	if err != nil {
		return nil, Dialect{}, fmt.Errorf("failed to open database connection: %w", err)
	}

	configurePool(db, dialect, cfg)

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, Dialect{}, fmt.Errorf("failed to ping database: %w", MapError(opPing, err))
	}

	return db, dialect, nil
}

func configurePool(db *sql.DB, dialect Dialect, cfg config.DatabaseConfig) {
	maxOpen := cfg.MaxOpenConns
	maxIdle := cfg.MaxIdleConns

	// Each connection to an in-memory SQLite database is a separate database.
	if dialect == SQLite && isSQLiteMemory(cfg.URL) {
		maxOpen, maxIdle = 1, 1
	}

	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}
	if maxIdle >= 0 {
		db.SetMaxIdleConns(maxIdle)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

func isSQLiteMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}
