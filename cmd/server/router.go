package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/keysfinder-api/internal/api"
	apiMiddleware "github.com/phrazzld/keysfinder-api/internal/api/middleware"
	"github.com/phrazzld/keysfinder-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(app.metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", shared.TraceIDHeader},
		ExposedHeaders: []string{shared.TraceIDHeader},
		MaxAge:         300,
	}))

	catalogHandler := api.NewCatalogHandler(
		app.catalogService,
		app.logger,
		api.WithFailureRecorder(app.metrics),
	)

	// Catalog endpoints
	r.Get("/search", catalogHandler.Search)
	r.Get("/checkDuplicateKeyboardId", catalogHandler.CheckDuplicateKeyboardID)
	r.Get("/random", catalogHandler.Random)
	r.Get("/getKeyboards", catalogHandler.GetKeyboards)
	r.Get("/getKeyboardDetailById", catalogHandler.GetKeyboardDetailByID)
	r.Get("/getComparisonsByDetailId", catalogHandler.GetComparisonsByDetailID)
	r.Get("/keyboardList", catalogHandler.KeyboardList)

	// Operational endpoints
	r.Get("/health", catalogHandler.Health)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
