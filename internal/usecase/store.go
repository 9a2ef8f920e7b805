package usecase

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/wealthflow/wealthflow/internal/domain"
)

// StoreStatus is the lifecycle state of a FinanceStore.
type StoreStatus string

const (
	StatusUninitialized StoreStatus = "uninitialized"
	StatusLoading       StoreStatus = "loading"
	StatusReady         StoreStatus = "ready"
)

// StoreConfig holds optional finance store settings.
type StoreConfig struct {
	// LoadDelay is waited before the persisted blobs are read.
	LoadDelay time.Duration
	// KeyPrefix is prepended to every persisted key.
	KeyPrefix string
	Logger    zerolog.Logger
	Metrics   StoreMetrics
	// Now defaults to time.Now.
	Now func() time.Time
}

type observerEntry struct {
	id       int
	observer Observer
}

// FinanceStore is the single authoritative holder of the user, accounts,
// transactions and stock positions. Every successful mutation is written
// back to Storage as a full-collection rewrite and announced to observers.
//
// Mutations are serialized by mu. Observers are notified outside mu but
// under notifyMu, so they may read from the store and always receive events
// in mutation order.
type FinanceStore struct {
	storage Storage
	idGen   IDGenerator
	seeds   SeedProvider
	cfg     StoreConfig
	log     zerolog.Logger
	metrics StoreMetrics

	mu           sync.Mutex
	status       StoreStatus
	ready        chan struct{}
	user         *domain.User
	userTouched  bool
	accounts     []domain.Account
	transactions []domain.Transaction
	stocks       []domain.StockPosition

	notifyMu  sync.Mutex
	obsMu     sync.RWMutex
	observers []observerEntry
	nextObsID int
}

// NewFinanceStore creates a store in the uninitialized state. Call Load to
// populate it.
func NewFinanceStore(storage Storage, idGen IDGenerator, seeds SeedProvider, cfg StoreConfig) *FinanceStore {
	if cfg.Metrics == nil {
		cfg.Metrics = nopStoreMetrics{}
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &FinanceStore{
		storage:      storage,
		idGen:        idGen,
		seeds:        seeds,
		cfg:          cfg,
		log:          cfg.Logger.With().Str("component", "finance_store").Logger(),
		metrics:      cfg.Metrics,
		status:       StatusUninitialized,
		ready:        make(chan struct{}),
		accounts:     []domain.Account{},
		transactions: []domain.Transaction{},
		stocks:       []domain.StockPosition{},
	}
}

// Status returns the current lifecycle state.
func (s *FinanceStore) Status() StoreStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}

// Loading reports whether the store has not yet reached ready.
func (s *FinanceStore) Loading() bool {
	return s.Status() != StatusReady
}

// Ready is closed once the store reaches ready.
func (s *FinanceStore) Ready() <-chan struct{} {
	return s.ready
}

// Load moves the store through loading to ready. It waits LoadDelay, then
// reads the four persisted blobs; an absent or unreadable blob falls back to
// seed data, or to no user. Calling Load on a loading or ready store is a
// no-op. If ctx is cancelled during the delay the store returns to
// uninitialized.
func (s *FinanceStore) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.status != StatusUninitialized {
		s.mu.Unlock()
		return nil
	}
	s.status = StatusLoading
	s.mu.Unlock()

	start := s.cfg.Now()
	s.log.Info().Dur("delay", s.cfg.LoadDelay).Msg("loading finance store")

	if s.cfg.LoadDelay > 0 {
		timer := time.NewTimer(s.cfg.LoadDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			s.mu.Lock()
			s.status = StatusUninitialized
			s.mu.Unlock()

			return ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()

	seed := s.seeds.Seed()

	if !s.userTouched {
		s.user = s.loadUser(ctx)
	}
	s.accounts = loadCollection(ctx, s, KeyAccounts, seed.Accounts)
	s.transactions = loadCollection(ctx, s, KeyTransactions, seed.Transactions)
	s.stocks = loadCollection(ctx, s, KeyStocks, seed.Stocks)
	s.status = StatusReady
	close(s.ready)

	s.metrics.LoadCompleted(s.cfg.Now().Sub(start))
	s.log.Info().
		Int("accounts", len(s.accounts)).
		Int("transactions", len(s.transactions)).
		Int("stocks", len(s.stocks)).
		Bool("logged_in", s.user != nil).
		Msg("finance store ready")

	s.unlockAndNotify(domain.EventTypeStoreReady)

	return nil
}

// User returns a copy of the current user, or nil when logged out.
func (s *FinanceStore) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}

	u := *s.user

	return &u
}

// Accounts returns a copy of the accounts in insertion order.
func (s *FinanceStore) Accounts() []domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.accounts)
}

// Transactions returns a copy of the transactions, newest first.
func (s *FinanceStore) Transactions() []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.transactions)
}

// Stocks returns a copy of the stock positions in insertion order.
func (s *FinanceStore) Stocks() []domain.StockPosition {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.stocks)
}

// Snapshot returns a consistent copy of the whole state.
func (s *FinanceStore) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Subscribe registers an observer for change events. The returned function
// removes it.
//
// Observers run synchronously while the notification lock is held. They may
// read from the store but must not call its mutations; doing so deadlocks.
// Hand events off to a goroutine or channel for any follow-up writes.
func (s *FinanceStore) Subscribe(o Observer) (unsubscribe func()) {
	s.obsMu.Lock()
	s.nextObsID++
	id := s.nextObsID
	s.observers = append(s.observers, observerEntry{id: id, observer: o})
	s.obsMu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			s.obsMu.Lock()
			defer s.obsMu.Unlock()

			s.observers = slices.DeleteFunc(s.observers, func(e observerEntry) bool {
				return e.id == id
			})
		})
	}
}

func (s *FinanceStore) snapshotLocked() domain.Snapshot {
	snap := domain.Snapshot{
		User:         s.user,
		Accounts:     s.accounts,
		Transactions: s.transactions,
		Stocks:       s.stocks,
		Loading:      s.status != StatusReady,
	}

	return snap.Clone()
}

func (s *FinanceStore) requireReadyLocked() error {
	if s.status != StatusReady {
		return domain.ErrStoreNotReady
	}

	return nil
}

// unlockAndNotify builds the change event from the locked state, releases mu
// and delivers the event to every observer before returning.
func (s *FinanceStore) unlockAndNotify(eventType string, ids ...string) {
	event := domain.ChangeEvent{
		Type:       eventType,
		EntityIDs:  ids,
		OccurredAt: s.cfg.Now().UTC(),
		Snapshot:   s.snapshotLocked(),
	}

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	s.obsMu.RLock()
	observers := slices.Clone(s.observers)
	s.obsMu.RUnlock()

	for _, e := range observers {
		e.observer.OnChange(event)
	}
}

// newIDLocked returns a generated ID that is not in use by taken.
func (s *FinanceStore) newIDLocked(taken func(id string) bool) string {
	var id string
	for range maxIDAttempts {
		id = s.idGen.Generate()
		if id != "" && !taken(id) {
			return id
		}
	}

	s.log.Warn().Str("id", id).Msg("id generator kept colliding, deriving suffixed id")

	base := id
	if base == "" {
		base = "id"
	}

	for n := 1; ; n++ {
		id = base + "_" + strconv.Itoa(n)
		if !taken(id) {
			return id
		}
	}
}
