package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wealthflow/wealthflow/internal/domain"
)

const (
	selectBlobSQL = `SELECT value FROM finance_blobs WHERE key = $1`
	upsertBlobSQL = `INSERT INTO finance_blobs (key, value, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	deleteBlobSQL = `DELETE FROM finance_blobs WHERE key = $1`
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Storage implements usecase.Storage on the finance_blobs table.
type Storage struct {
	pool    pgxPool
	retrier *Retrier
}

// NewStorage creates a new Storage.
func NewStorage(pool *pgxpool.Pool, retrier *Retrier) *Storage {
	return newStorageWithPool(pool, retrier)
}

func newStorageWithPool(pool pgxPool, retrier *Retrier) *Storage {
	return &Storage{pool: pool, retrier: retrier}
}

// Get retrieves a blob by key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var value string

	err := s.pool.QueryRow(ctx, selectBlobSQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select blob %s: %w", key, err)
	}

	return []byte(value), nil
}

// Set upserts a blob, retrying on serialization failures and deadlocks.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	err := s.retrier.Retry(ctx, func() error {
		_, err := s.pool.Exec(ctx, upsertBlobSQL, key, string(value))
		return err
	})
	if err != nil {
		return fmt.Errorf("upsert blob %s: %w", key, err)
	}

	return nil
}

// Remove deletes a blob with the same retry policy as Set. Removing an absent
// key is not an error.
func (s *Storage) Remove(ctx context.Context, key string) error {
	err := s.retrier.Retry(ctx, func() error {
		_, err := s.pool.Exec(ctx, deleteBlobSQL, key)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}

	return nil
}
