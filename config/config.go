package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type Config struct {
	Database DatabaseConfig
	Log      LogConfig
}

// DatabaseConfig holds the connection parameters. Only Driver is validated;
// missing credentials are left for the connection attempt to reject.
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	Migrate  bool
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("db_driver", DriverPostgres)
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_migrate", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	v.SetDefault("log_output", "stderr")
	for _, key := range []string{
		"db_driver", "db_host", "db_port", "db_user", "db_password", "db_database",
		"db_sslmode", "db_migrate", "log_level", "log_format", "log_output",
	} {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:   strings.ToLower(strings.TrimSpace(v.GetString("db_driver"))),
			Host:     v.GetString("db_host"),
			Port:     v.GetInt("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			Name:     v.GetString("db_database"),
			SSLMode:  v.GetString("db_sslmode"),
			Migrate:  v.GetBool("db_migrate"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
			Output: v.GetString("log_output"),
		},
	}

	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, ErrUnsupportedDriver{Driver: cfg.Database.Driver}
	}
	return cfg, nil
}

// DSN returns the data source name understood by the configured driver.
func (c DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return "file:" + c.Name + "?_foreign_keys=on"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

type ErrUnsupportedDriver struct {
	Driver string
}

func (e ErrUnsupportedDriver) Error() string {
	return fmt.Sprintf("DB_DRIVER %q is not supported (use %q or %q)", e.Driver, DriverPostgres, DriverSQLite)
}
