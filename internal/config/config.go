package config

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all runtime configuration for the API
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	CORS     CORSConfig
	LogLevel string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Env             string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds storage settings
type DatabaseConfig struct {
	// Driver is either "sqlite" or "postgres"
	Driver string
	// Path is the SQLite database file, or ":memory:"
	Path string
	// DSN is the Postgres connection string
	DSN             string
	LogLevel        string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	// SeedDocumentation inserts the default documentation entry when the table is empty
	SeedDocumentation bool
}

// AdminConfig holds admin token settings.
// An empty JWTSecret disables the admin guard on mutating routes.
type AdminConfig struct {
	JWTSecret string
	Email     string
}

// CORSConfig holds cross-origin settings
type CORSConfig struct {
	AllowedOrigins []string
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Env, "production")
}

// Load reads an optional .env file and then the process environment.
// Values missing from both fall back to the defaults below.
func Load() (*Config, error) {
	// .env is optional; real deployments pass plain environment variables
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Env:             v.GetString("APP_ENV"),
			Port:            v.GetString("PORT"),
			ReadTimeout:     v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("HTTP_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Driver:            strings.ToLower(v.GetString("DB_DRIVER")),
			Path:              v.GetString("DB_PATH"),
			DSN:               v.GetString("DB_DSN"),
			LogLevel:          strings.ToLower(v.GetString("DB_LOG_LEVEL")),
			MaxIdleConns:      v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns:      v.GetInt("DB_MAX_OPEN_CONNS"),
			ConnMaxLifetime:   v.GetDuration("DB_CONN_MAX_LIFETIME"),
			SeedDocumentation: v.GetBool("SEED_DOCUMENTATION"),
		},
		Admin: AdminConfig{
			JWTSecret: v.GetString("ADMIN_JWT_SECRET"),
			Email:     v.GetString("ADMIN_EMAIL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		LogLevel: strings.ToLower(v.GetString("LOG_LEVEL")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("HTTP_READ_TIMEOUT", "10s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "10s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_PATH", "./data/helloworld.db")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "1h")
	v.SetDefault("SEED_DOCUMENTATION", true)

	v.SetDefault("ADMIN_JWT_SECRET", "")
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("DB_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (expected %q or %q)", c.Database.Driver, DriverSQLite, DriverPostgres)
	}

	if c.Admin.JWTSecret != "" {
		if _, err := base64.StdEncoding.DecodeString(c.Admin.JWTSecret); err != nil {
			return fmt.Errorf("ADMIN_JWT_SECRET must be base64 encoded: %w", err)
		}
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
