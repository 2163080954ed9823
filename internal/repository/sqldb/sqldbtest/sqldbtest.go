// Package sqldbtest opens migrated SQLite databases for tests.
package sqldbtest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"employee-tracker/config"
	"employee-tracker/internal/repository/sqldb"
)

// Config returns a SQLite configuration pointing into t.TempDir().
func Config(t testing.TB) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Name:   filepath.Join(t.TempDir(), "tracker.db"),
	}
}

// Open migrates a fresh database and returns a handle closed on cleanup.
func Open(t testing.TB) *sql.DB {
	t.Helper()
	cfg := Config(t)
	require.NoError(t, sqldb.Migrate(cfg, zap.NewNop()))

	db, err := sqldb.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
