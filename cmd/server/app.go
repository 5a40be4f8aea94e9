package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/keysfinder-api/internal/config"
	"github.com/phrazzld/keysfinder-api/internal/platform/metrics"
	"github.com/phrazzld/keysfinder-api/internal/platform/sqlstore"
	"github.com/phrazzld/keysfinder-api/internal/service"
	"github.com/phrazzld/keysfinder-api/internal/store"
)

// dbStatsName labels the connection pool collectors.
const dbStatsName = "catalog"

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	catalogStore   store.CatalogStore
	catalogService service.CatalogService

	metrics *metrics.Metrics
}

// newApplication creates a new application instance with all dependencies initialized.
// The database must already be open; the application takes ownership of it.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	dialect sqlstore.Dialect,
) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		metrics: metrics.New(),
	}

	if err := app.metrics.RegisterDB(db, dbStatsName); err != nil {
		return nil, fmt.Errorf("failed to register database metrics: %w", err)
	}

	app.catalogStore = sqlstore.NewCatalogStore(db, dialect)

	var err error
	app.catalogService, err = service.NewCatalogService(
		app.catalogStore,
		service.CatalogOptions{
			DefaultPageSize:  cfg.Catalog.DefaultPageSize,
			MaxPageSize:      cfg.Catalog.MaxPageSize,
			ListPageSize:     cfg.Catalog.ListPageSize,
			RandomSampleSize: cfg.Catalog.RandomSampleSize,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
