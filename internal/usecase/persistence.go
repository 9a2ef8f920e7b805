package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"slices"

	"github.com/wealthflow/wealthflow/internal/domain"
)

var jsonNull = []byte("null")

func (s *FinanceStore) key(name string) string {
	return s.cfg.KeyPrefix + name
}

// loadUser reads the user blob. Absent, null or unreadable blobs mean no user.
func (s *FinanceStore) loadUser(ctx context.Context) *domain.User {
	data, ok := s.readBlob(ctx, KeyUser)
	if !ok {
		return nil
	}

	var u domain.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.log.Warn().Err(err).Str("key", KeyUser).Msg("discarding unreadable user blob")
		s.metrics.BlobFallback(KeyUser)

		return nil
	}

	return &u
}

// loadCollection decodes a collection blob, falling back to a copy of seed
// when the blob is absent, null or structurally incompatible.
func loadCollection[T any](ctx context.Context, s *FinanceStore, key string, seed []T) []T {
	fallback := func() []T {
		s.metrics.BlobFallback(key)

		out := slices.Clone(seed)
		if out == nil {
			out = []T{}
		}

		return out
	}

	data, ok := s.readBlob(ctx, key)
	if !ok {
		s.log.Debug().Str("key", key).Msg("no persisted collection, using seed data")
		return fallback()
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("persisted collection unreadable, using seed data")
		return fallback()
	}

	if items == nil {
		items = []T{}
	}

	return items
}

// readBlob returns the stored bytes for name, or false when the key is
// absent, holds JSON null, or cannot be read.
func (s *FinanceStore) readBlob(ctx context.Context, name string) ([]byte, bool) {
	data, err := s.storage.Get(ctx, s.key(name))
	if err != nil {
		if !errors.Is(err, domain.ErrBlobNotFound) {
			s.log.Error().Err(err).Str("key", name).Msg("failed to read persisted blob, using fallback")
			s.metrics.BlobReadFailed(name)
		}

		return nil, false
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil, false
	}

	return data, true
}

// writeLocked rewrites one blob in full. Failures are logged and counted;
// in-memory state stays authoritative.
func (s *FinanceStore) writeLocked(ctx context.Context, name string, v any) {
	data, err := json.Marshal(v)
	if err == nil {
		err = s.storage.Set(ctx, s.key(name), data)
	}

	if err != nil {
		s.log.Error().Err(err).Str("key", name).Msg("failed to persist blob")
		s.metrics.PersistFailed(name)
	}
}

func (s *FinanceStore) persistUserLocked(ctx context.Context) {
	if s.user == nil {
		if err := s.storage.Remove(ctx, s.key(KeyUser)); err != nil {
			s.log.Error().Err(err).Str("key", KeyUser).Msg("failed to remove blob")
			s.metrics.PersistFailed(KeyUser)
		}

		return
	}

	s.writeLocked(ctx, KeyUser, s.user)
}

func (s *FinanceStore) persistAccountsLocked(ctx context.Context) {
	s.writeLocked(ctx, KeyAccounts, s.accounts)
}

func (s *FinanceStore) persistTransactionsLocked(ctx context.Context) {
	s.writeLocked(ctx, KeyTransactions, s.transactions)
}

func (s *FinanceStore) persistStocksLocked(ctx context.Context) {
	s.writeLocked(ctx, KeyStocks, s.stocks)
}
