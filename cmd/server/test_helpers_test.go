package main

import (
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/keysfinder-api/internal/config"
	"github.com/phrazzld/keysfinder-api/internal/platform/logger"
	"github.com/phrazzld/keysfinder-api/internal/platform/sqlstore"
	"github.com/phrazzld/keysfinder-api/internal/testdb"
	"github.com/stretchr/testify/require"
)

// testConfig returns a valid configuration backed by in-memory SQLite.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:               3000,
			LogLevel:           "debug",
			ShutdownTimeout:    5 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{
			Driver:          "sqlite",
			URL:             ":memory:",
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: 0,
			ConnectTimeout:  time.Second,
		},
		Catalog: config.CatalogConfig{
			DefaultPageSize:  15,
			MaxPageSize:      100,
			ListPageSize:     10,
			RandomSampleSize: 9,
		},
	}
}

// newTestApplication builds an application over a migrated, empty catalog.
func newTestApplication(t *testing.T) (*application, *sql.DB) {
	t.Helper()

	db := testdb.Open(t)
	app, err := newApplication(testConfig(), logger.New(io.Discard, slog.LevelDebug), db, sqlstore.SQLite)
	require.NoError(t, err)
	return app, db
}

// get performs a GET against handler and returns the recorded response.
func get(handler http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}
