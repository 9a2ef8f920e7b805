package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wealthflow/wealthflow/internal/domain"
)

// Storage implements usecase.Storage on plain Redis string keys.
type Storage struct {
	client *redis.Client
	prefix string
}

// NewStorage creates a new Storage. Every key is stored under prefix.
func NewStorage(client *redis.Client, prefix string) *Storage {
	return &Storage{
		client: client,
		prefix: prefix,
	}
}

// Get retrieves a blob by key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	return val, nil
}

// Set stores a blob without expiry.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}

// Remove deletes a blob. Removing an absent key is not an error.
func (s *Storage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}

	return nil
}
