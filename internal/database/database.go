package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/killallgit/editor-api/internal/models"
	"github.com/killallgit/editor-api/pkg/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
}

// Options tunes the connection pool and SQLite pragmas
type Options struct {
	Verbose           bool
	MaxOpenConns      int
	MaxIdleConns      int
	ConnMaxLifetime   time.Duration
	EnableWAL         bool
	EnableForeignKeys bool
}

// OptionsFromConfig builds Options from the database config section
func OptionsFromConfig(cfg config.DatabaseConfig) Options {
	return Options{
		Verbose:           cfg.LogQueries,
		MaxOpenConns:      cfg.MaxConnections,
		MaxIdleConns:      cfg.MaxIdleConnections,
		ConnMaxLifetime:   cfg.ConnectionMaxLifetime,
		EnableWAL:         cfg.EnableWAL,
		EnableForeignKeys: cfg.EnableForeignKeys,
	}
}

// Initialize creates a new database connection with default pool settings
func Initialize(dbPath string, verbose bool) (*DB, error) {
	return Open(dbPath, Options{Verbose: verbose, EnableForeignKeys: true})
}

// Open creates a new database connection. An empty path or ":memory:" opens
// a private in-memory database held on a single connection.
func Open(dbPath string, opts Options) (*DB, error) {
	inMemory := dbPath == "" || dbPath == ":memory:"
	if inMemory {
		dbPath = ":memory:"
	} else {
		dir := filepath.Dir(dbPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	logLevel := logger.Error
	if opts.Verbose {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(dbPath), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	// Every connection to ":memory:" is a separate database
	if inMemory {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(orDefault(opts.MaxOpenConns, 10))
		sqlDB.SetMaxIdleConns(orDefault(opts.MaxIdleConns, 5))
		if opts.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		} else {
			sqlDB.SetConnMaxLifetime(time.Hour)
		}
	}

	if opts.EnableWAL && !inMemory {
		if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
			return nil, fmt.Errorf("failed to enable WAL: %w", err)
		}
	}
	if opts.EnableForeignKeys {
		if err := db.Exec("PRAGMA foreign_keys=ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return &DB{DB: db}, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// AutoMigrate runs GORM auto migration for the provided models
func (db *DB) AutoMigrate(models ...any) error {
	if err := db.DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	log.Printf("[DEBUG] Migrated %d model(s)", len(models))
	return nil
}

// Models lists every table the service owns
func Models() []any {
	return []any{&models.Video{}, &models.Job{}}
}

// Migrate brings the schema up to date for every model in Models
func (db *DB) Migrate() error {
	return db.AutoMigrate(Models()...)
}

// InitializeWithMigrations opens the configured database and migrates it
func InitializeWithMigrations() (*DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("database path is not configured")
	}

	db, err := Open(cfg.Database.Path, OptionsFromConfig(cfg.Database))
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
