// Package memory keeps finance blobs in process memory. State is lost on
// exit; used for tests and throwaway runs.
package memory

import (
	"context"
	"sync"

	"github.com/wealthflow/wealthflow/internal/domain"
)

// Storage implements usecase.Storage on a map.
type Storage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewStorage creates an empty Storage.
func NewStorage() *Storage {
	return &Storage{blobs: make(map[string][]byte)}
}

// Get retrieves a copy of the blob stored under key.
func (s *Storage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.blobs[key]
	if !ok {
		return nil, domain.ErrBlobNotFound
	}

	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (s *Storage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = append([]byte(nil), value...)

	return nil
}

// Remove deletes key.
func (s *Storage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)

	return nil
}
