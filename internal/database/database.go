package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/helloworld/api-backend/internal/config"
	"github.com/helloworld/api-backend/internal/models"
	"github.com/helloworld/api-backend/internal/validators"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryPath is the SQLite path for a private in-memory database
const MemoryPath = ":memory:"

// Config holds database configuration options
type Config struct {
	// Driver selects the GORM dialector: "sqlite" or "postgres"
	Driver string

	// DatabasePath is the file path to the SQLite database
	// Example: "./data/helloworld.db" or ":memory:" for in-memory database
	DatabasePath string

	// DSN is the Postgres connection string
	DSN string

	// LogLevel sets GORM logging verbosity
	// Silent = no logs, Error = errors only, Warn = warnings + errors, Info = all queries
	LogLevel logger.LogLevel

	// MaxIdleConns sets the maximum number of idle connections in the pool
	MaxIdleConns int

	// MaxOpenConns sets the maximum number of open connections to the database
	MaxOpenConns int

	// ConnMaxLifetime sets the maximum amount of time a connection may be reused
	ConnMaxLifetime time.Duration

	// SeedDocumentation inserts the default documentation entry into an empty table
	SeedDocumentation bool
}

// DefaultConfig returns sensible default configuration for production
func DefaultConfig(dbPath string) *Config {
	return &Config{
		Driver:            config.DriverSQLite,
		DatabasePath:      dbPath,
		LogLevel:          logger.Warn,
		MaxIdleConns:      10,
		MaxOpenConns:      100,
		ConnMaxLifetime:   time.Hour,
		SeedDocumentation: true,
	}
}

// TestConfig returns configuration suitable for testing (in-memory database)
func TestConfig() *Config {
	return &Config{
		Driver:            config.DriverSQLite,
		DatabasePath:      MemoryPath,
		LogLevel:          logger.Silent,
		MaxIdleConns:      1,
		MaxOpenConns:      1,
		ConnMaxLifetime:   time.Minute * 30,
		SeedDocumentation: true,
	}
}

// FromAppConfig converts the application database settings
func FromAppConfig(cfg config.DatabaseConfig) *Config {
	return &Config{
		Driver:            cfg.Driver,
		DatabasePath:      cfg.Path,
		DSN:               cfg.DSN,
		LogLevel:          ParseLogLevel(cfg.LogLevel),
		MaxIdleConns:      cfg.MaxIdleConns,
		MaxOpenConns:      cfg.MaxOpenConns,
		ConnMaxLifetime:   cfg.ConnMaxLifetime,
		SeedDocumentation: cfg.SeedDocumentation,
	}
}

// ParseLogLevel maps a level name to a GORM log level, defaulting to Warn
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// InitDB initializes the database connection and runs migrations
// Returns a GORM DB instance or an error if initialization fails
func InitDB(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	if cfg == nil {
		cfg = DefaultConfig("./data/helloworld.db")
	}
	if log == nil {
		log = zap.NewNop()
	}

	dialector, err := openDialector(cfg, log)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(cfg.LogLevel),
		NowFunc: func() time.Time {
			// Ensure all GORM timestamps use UTC
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if cfg.Driver == config.DriverSQLite && cfg.DatabasePath == MemoryPath {
		// Every connection to ":memory:" gets its own empty database
		maxOpen = 1
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if cfg.Driver == config.DriverSQLite {
		// Enable Write-Ahead Logging for better concurrency
		if err := db.Exec("PRAGMA journal_mode = WAL;").Error; err != nil {
			log.Warn("failed to enable WAL mode", zap.Error(err))
		}
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Debug("database migrations completed")

	if cfg.SeedDocumentation {
		if err := SeedDocumentation(db); err != nil {
			return nil, fmt.Errorf("failed to seed documentation: %w", err)
		}
	}

	log.Info("database initialized", zap.String("driver", cfg.Driver))
	return db, nil
}

func openDialector(cfg *Config, log *zap.Logger) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("postgres DSN is required")
		}
		return postgres.Open(cfg.DSN), nil

	case config.DriverSQLite, "":
		cfg.Driver = config.DriverSQLite
		if cfg.DatabasePath != MemoryPath {
			if err := ensureDBDirectory(cfg.DatabasePath, log); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
			if err := checkDatabaseWritePermissions(cfg.DatabasePath); err != nil {
				return nil, fmt.Errorf("database directory permission check failed: %w", err)
			}
		}
		log.Info("opening SQLite database", zap.String("path", cfg.DatabasePath))
		return sqlite.Open(cfg.DatabasePath), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// runMigrations executes GORM AutoMigrate for all models
func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Greeting{},
		&models.ErrorRecord{},
		&models.HealthStatus{},
		&models.Documentation{},
	); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	return nil
}

// SeedDocumentation inserts the default documentation entry if the table is empty
func SeedDocumentation(db *gorm.DB) error {
	return seedDocumentation(db, models.DefaultDocumentation())
}

func seedDocumentation(db *gorm.DB, doc *models.Documentation) error {
	var count int64
	if err := db.Model(&models.Documentation{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count documentation entries: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := validators.ValidateHTTPMethod(string(doc.Method), "method"); err != nil {
		return fmt.Errorf("invalid documentation entry: %w", err)
	}

	if err := db.Create(doc).Error; err != nil {
		return fmt.Errorf("failed to insert documentation entry: %w", err)
	}
	return nil
}

// Close gracefully closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}

// Ping checks if the database connection is alive
func Ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return errors.New("database is not configured")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// ensureDBDirectory creates the directory for the database file if it doesn't exist
func ensureDBDirectory(dbPath string, log *zap.Logger) error {
	dir := filepath.Dir(dbPath)
	if dir == "." {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	log.Info("created database directory", zap.String("dir", dir))
	return nil
}

// checkDatabaseWritePermissions verifies that we can write to the database directory
func checkDatabaseWritePermissions(dbPath string) error {
	dir := filepath.Dir(dbPath)

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot access database directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	f, err := os.CreateTemp(dir, ".write_test_")
	if err != nil {
		return fmt.Errorf("cannot write to database directory %s: %w (check permissions)", dir, err)
	}
	name := f.Name()
	f.Close()
	os.Remove(name)

	return nil
}
