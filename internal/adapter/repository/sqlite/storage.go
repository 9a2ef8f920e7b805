// Package sqlite stores finance blobs in a local SQLite database file, the
// default single-user backend.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/wealthflow/wealthflow/internal/domain"
	"github.com/wealthflow/wealthflow/migrations"
)

const (
	selectBlobSQL = `SELECT value FROM finance_blobs WHERE key = ?`
	upsertBlobSQL = `INSERT INTO finance_blobs (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteBlobSQL = `DELETE FROM finance_blobs WHERE key = ?`
)

// Open opens the database at path and applies the schema migrations.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrations.SQLite, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to open sqlite migrations: %w", err)
	}

	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite migrate driver: %w", err)
	}

	// m.Close would also close db, so it is left open.
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run sqlite migrations: %w", err)
	}

	return nil
}

// Storage implements usecase.Storage on the finance_blobs table.
type Storage struct {
	db  *sql.DB
	now func() time.Time
}

// NewStorage creates a new Storage on an opened database.
func NewStorage(db *sql.DB) *Storage {
	return &Storage{
		db:  db,
		now: func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

// Get retrieves a blob by key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var value string

	err := s.db.QueryRowContext(ctx, selectBlobSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select blob %s: %w", key, err)
	}

	return []byte(value), nil
}

// Set upserts a blob.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, upsertBlobSQL, key, string(value), s.now()); err != nil {
		return fmt.Errorf("upsert blob %s: %w", key, err)
	}

	return nil
}

// Remove deletes a blob. Removing an absent key is not an error.
func (s *Storage) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteBlobSQL, key); err != nil {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}

	return nil
}
