package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_DATABASE",
	"DB_SSLMODE", "DB_MIGRATE", "LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT",
}

// clearEnv runs the test from an empty directory with every config variable
// unset, so neither the host environment nor a stray .env leaks in.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range configEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.False(t, cfg.Database.Migrate)
	assert.Empty(t, cfg.Database.User)
	assert.Empty(t, cfg.Database.Name)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "tracker")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_DATABASE", "company")
	t.Setenv("DB_MIGRATE", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "tracker", cfg.Database.User)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "company", cfg.Database.Name)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("DB_DRIVER=sqlite3\nDB_DATABASE=tracker.db\n"), 0o644))
	t.Cleanup(func() {
		_ = os.Unsetenv("DB_DRIVER")
		_ = os.Unsetenv("DB_DATABASE")
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "tracker.db", cfg.Database.Name)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadConfig()
	require.Error(t, err)

	var unsupported ErrUnsupportedDriver
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "oracle", unsupported.Driver)
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "postgres",
			cfg: DatabaseConfig{
				Driver: DriverPostgres, Host: "localhost", Port: 5432,
				User: "root", Password: "pw", Name: "employees", SSLMode: "disable",
			},
			want: "postgres://root:pw@localhost:5432/employees?sslmode=disable",
		},
		{
			name: "postgres escapes credentials",
			cfg: DatabaseConfig{
				Driver: DriverPostgres, Host: "db", Port: 5432,
				User: "root", Password: "p@ss word", Name: "employees", SSLMode: "require",
			},
			want: "postgres://root:p%40ss%20word@db:5432/employees?sslmode=require",
		},
		{
			name: "sqlite enables foreign keys",
			cfg:  DatabaseConfig{Driver: DriverSQLite, Name: "/tmp/tracker.db"},
			want: "file:/tmp/tracker.db?_foreign_keys=on",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
