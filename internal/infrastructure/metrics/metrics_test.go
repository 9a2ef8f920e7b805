package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/wealthflow/wealthflow/internal/domain"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)

	if m.StoreMutations == nil || m.HTTPRequests == nil || m.Accounts == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.MutationApplied("addAccount")

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestStoreMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.MutationApplied("addTransaction")
	m.MutationApplied("addTransaction")
	m.MutationApplied("removeStock")
	m.PersistFailed("wf_accounts")
	m.BlobFallback("wf_stocks")
	m.BlobReadFailed("wf_user")
	m.LoadCompleted(500 * time.Millisecond)

	if got := testutil.ToFloat64(m.StoreMutations.WithLabelValues("addTransaction")); got != 2 {
		t.Fatalf("expected 2 addTransaction mutations, got %v", got)
	}
	if got := testutil.ToFloat64(m.StoreMutations.WithLabelValues("removeStock")); got != 1 {
		t.Fatalf("expected 1 removeStock mutation, got %v", got)
	}
	if got := testutil.ToFloat64(m.PersistFailures.WithLabelValues("wf_accounts")); got != 1 {
		t.Fatalf("expected 1 persist failure, got %v", got)
	}
	if got := testutil.ToFloat64(m.BlobFallbacks.WithLabelValues("wf_stocks")); got != 1 {
		t.Fatalf("expected 1 blob fallback, got %v", got)
	}
	if got := testutil.ToFloat64(m.BlobReadFailures.WithLabelValues("wf_user")); got != 1 {
		t.Fatalf("expected 1 blob read failure, got %v", got)
	}
	if got := testutil.CollectAndCount(m.StoreLoadDuration); got != 1 {
		t.Fatalf("expected load histogram to be collected, got %d", got)
	}
}

func TestOnChangeUpdatesGauges(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.OnChange(domain.ChangeEvent{
		Type: domain.EventTypeStoreReady,
		Snapshot: domain.Snapshot{
			User:         &domain.User{ID: "u1", Name: "Amy", Email: "amy@example.com"},
			Accounts:     make([]domain.Account, 3),
			Transactions: make([]domain.Transaction, 2),
			Stocks:       make([]domain.StockPosition, 1),
		},
	})

	if got := testutil.ToFloat64(m.Accounts); got != 3 {
		t.Fatalf("expected 3 accounts, got %v", got)
	}
	if got := testutil.ToFloat64(m.Transactions); got != 2 {
		t.Fatalf("expected 2 transactions, got %v", got)
	}
	if got := testutil.ToFloat64(m.Stocks); got != 1 {
		t.Fatalf("expected 1 stock, got %v", got)
	}
	if got := testutil.ToFloat64(m.LoggedIn); got != 1 {
		t.Fatalf("expected logged in gauge 1, got %v", got)
	}

	m.OnChange(domain.ChangeEvent{Type: domain.EventTypeUserLoggedOut})

	if got := testutil.ToFloat64(m.LoggedIn); got != 0 {
		t.Fatalf("expected logged in gauge 0, got %v", got)
	}
	if got := testutil.ToFloat64(m.Accounts); got != 0 {
		t.Fatalf("expected 0 accounts, got %v", got)
	}
}
