package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/wealthflow/wealthflow/internal/domain"
)

// InMemoryStorage is a map-backed Storage with overridable behaviour.
type InMemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte) error
	RemoveFunc func(ctx context.Context, key string) error

	SetCalls    int
	RemoveCalls int
}

func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{
		blobs: make(map[string][]byte),
	}
}

func (m *InMemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.blobs[key]; ok {
		return append([]byte(nil), v...), nil
	}
	return nil, domain.ErrBlobNotFound
}

func (m *InMemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	m.SetCalls++
	m.mu.Unlock()
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = append([]byte(nil), value...)
	return nil
}

func (m *InMemoryStorage) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	m.RemoveCalls++
	m.mu.Unlock()
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

// Put stores a raw blob without counting it as a Set call.
func (m *InMemoryStorage) Put(key string, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = []byte(value)
}

// Blob returns the raw stored value for key.
func (m *InMemoryStorage) Blob(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.blobs[key]
	return string(v), ok
}

// SequenceIDGenerator returns prefix-1, prefix-2, ... unless GenerateFunc is set.
type SequenceIDGenerator struct {
	GenerateFunc func() string
	Prefix       string
	counter      int
	mu           sync.Mutex
}

func NewSequenceIDGenerator(prefix string) *SequenceIDGenerator {
	return &SequenceIDGenerator{Prefix: prefix}
}

func (m *SequenceIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return m.Prefix + "-" + strconv.Itoa(m.counter)
}

// StaticSeedProvider returns a fixed snapshot.
type StaticSeedProvider struct {
	Snapshot domain.Snapshot
}

func (m StaticSeedProvider) Seed() domain.Snapshot {
	return m.Snapshot.Clone()
}

// RecordingMetrics counts StoreMetrics calls.
type RecordingMetrics struct {
	mu           sync.Mutex
	Mutations    map[string]int
	Failures     map[string]int
	Fallbacks    map[string]int
	ReadFailures map[string]int
	Loads        []time.Duration
}

func NewRecordingMetrics() *RecordingMetrics {
	return &RecordingMetrics{
		Mutations:    make(map[string]int),
		Failures:     make(map[string]int),
		Fallbacks:    make(map[string]int),
		ReadFailures: make(map[string]int),
	}
}

func (m *RecordingMetrics) MutationApplied(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Mutations[op]++
}

func (m *RecordingMetrics) PersistFailed(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failures[key]++
}

func (m *RecordingMetrics) BlobFallback(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Fallbacks[key]++
}

func (m *RecordingMetrics) BlobReadFailed(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReadFailures[key]++
}

func (m *RecordingMetrics) LoadCompleted(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Loads = append(m.Loads, d)
}
