package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"investment-manager/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database owns the store handle. Every operation goes through WithSession.
type Database struct {
	db *gorm.DB
}

// Connect opens the store described by cfg and, if enabled, creates the tables.
func Connect(cfg Config) (*Database, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// One connection per operation: nothing is kept idle, so releasing a
	// session's connection closes it.
	sqlDB.SetMaxIdleConns(0)

	d := &Database{db: db}
	if cfg.AutoMigrate {
		if err := d.Migrate(); err != nil {
			d.Close()
			return nil, err
		}
	}
	return d, nil
}

// Migrate creates the customers and investments tables when missing.
func (d *Database) Migrate() error {
	for _, table := range models.Tables() {
		if err := d.db.AutoMigrate(table); err != nil {
			return fmt.Errorf("migrate %T: %w", table, err)
		}
	}
	return nil
}

// WithSession acquires a connection, begins a transaction on it and hands it to fn.
// The transaction commits only when fn returns nil; on error or panic it is rolled
// back. The connection is released on every path.
func (d *Database) WithSession(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.db.WithContext(ctx).Transaction(fn)
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func logLevel(s string) logger.LogLevel {
	switch strings.ToLower(s) {
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
