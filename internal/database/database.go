// Package database provides the GORM-backed store connection shared by
// the schema and ingestion layers.
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ErrUnsupportedDriver is returned when the database URL scheme is not
// recognized.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Database wraps a gorm.DB connection.
type Database struct {
	db *gorm.DB
}

// NewDatabase opens a database connection from a URL. Supported schemes
// are sqlite (sqlite:///path/to.db) and postgres (postgresql://...).
func NewDatabase(ctx context.Context, url string) (Database, error) {
	dialector, err := parseDialector(url)
	if err != nil {
		return Database{}, fmt.Errorf("parse database url: %w", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: slogGormLogger{},
	})
	if err != nil {
		return Database{}, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return Database{}, fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return Database{}, fmt.Errorf("ping database: %w", err)
	}

	return Database{db: db}, nil
}

// GORM returns the underlying gorm.DB.
func (d Database) GORM() *gorm.DB {
	return d.db
}

// Session returns a gorm session bound to the context.
func (d Database) Session(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx)
}

// Close closes the underlying connection pool.
func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// IsSQLite reports whether the connection uses the sqlite driver.
func (d Database) IsSQLite() bool {
	return d.db.Name() == "sqlite"
}

// IsPostgres reports whether the connection uses the postgres driver.
func (d Database) IsPostgres() bool {
	return d.db.Name() == "postgres"
}

// parseDialector maps a database URL to a gorm dialector.
func parseDialector(url string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(url, "sqlite:///"):
		path := strings.TrimPrefix(url, "sqlite:///")
		return sqlite.Open(path), nil
	case strings.HasPrefix(url, "postgresql://"), strings.HasPrefix(url, "postgres://"):
		return postgres.Open(url), nil
	default:
		return nil, ErrUnsupportedDriver
	}
}
