package database

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mnavarro/salesboard/internal/config"
)

type DB struct {
	*sql.DB
	driver string
}

// NewConnection creates a new database connection using the provided config.
// The driver is either "sqlite3" (file-backed, the default) or "mysql".
func NewConnection(cfg *config.DBConfig) (*DB, error) {
	switch cfg.Driver {
	case "sqlite3", "mysql":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, driver: cfg.Driver}, nil
}

// Driver returns the database/sql driver name this connection was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// HealthCheck performs a simple health check on the database
func (db *DB) HealthCheck() error {
	return db.Ping()
}
