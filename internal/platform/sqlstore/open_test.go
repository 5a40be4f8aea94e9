package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/keysfinder-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(url string) config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:          "sqlite",
		URL:             url,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Minute,
		ConnectTimeout:  2 * time.Second,
	}
}

func TestOpen_SQLiteMemory(t *testing.T) {
	db, dialect, err := Open(context.Background(), sqliteConfig(":memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Equal(t, SQLite, dialect)
	assert.Equal(t, 1, db.Stats().MaxOpenConnections, "in-memory sqlite is pinned to one connection")
}

func TestOpen_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, _, err := Open(context.Background(), sqliteConfig("file:"+path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Equal(t, 10, db.Stats().MaxOpenConnections)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := sqliteConfig(":memory:")
	cfg.Driver = "oracle"

	db, _, err := Open(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, db)
}

func TestOpen_PingFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "catalog.db")

	db, _, err := Open(context.Background(), sqliteConfig("file:"+missing+"?mode=ro"))
	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "failed to ping database")
}

func TestIsSQLiteMemory(t *testing.T) {
	assert.True(t, isSQLiteMemory(":memory:"))
	assert.True(t, isSQLiteMemory("file:test?mode=memory&cache=shared"))
	assert.False(t, isSQLiteMemory("file:catalog.db"))
}
