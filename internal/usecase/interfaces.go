package usecase

import (
	"context"
	"time"

	"github.com/wealthflow/wealthflow/internal/domain"
)

// Storage is the key-value persistence adapter behind the finance store.
// Get returns domain.ErrBlobNotFound for an absent key; Remove of an absent
// key is not an error.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// SeedProvider supplies the default data set used when no persisted state
// exists. The returned snapshot has no user.
type SeedProvider interface {
	Seed() domain.Snapshot
}

// AdviceProvider turns a financial summary into advice text. It never fails;
// an unavailable service yields a fixed fallback string.
type AdviceProvider interface {
	Advise(ctx context.Context, summary string) string
}

// Observer receives store change events in mutation order.
type Observer interface {
	OnChange(event domain.ChangeEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(event domain.ChangeEvent)

// OnChange calls f(event).
func (f ObserverFunc) OnChange(event domain.ChangeEvent) { f(event) }

// StoreMetrics records finance store activity.
type StoreMetrics interface {
	MutationApplied(op string)
	PersistFailed(key string)
	BlobFallback(key string)
	BlobReadFailed(key string)
	LoadCompleted(d time.Duration)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a key whose request did not succeed so it can be retried.
	Release(ctx context.Context, key string) error
}

type nopStoreMetrics struct{}

func (nopStoreMetrics) MutationApplied(string)      {}
func (nopStoreMetrics) PersistFailed(string)        {}
func (nopStoreMetrics) BlobFallback(string)         {}
func (nopStoreMetrics) BlobReadFailed(string)       {}
func (nopStoreMetrics) LoadCompleted(time.Duration) {}
