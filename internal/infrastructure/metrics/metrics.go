package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wealthflow/wealthflow/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Store metrics
	StoreMutations    *prometheus.CounterVec
	PersistFailures   *prometheus.CounterVec
	BlobFallbacks     *prometheus.CounterVec
	BlobReadFailures  *prometheus.CounterVec
	StoreLoadDuration prometheus.Histogram

	// State gauges, refreshed on every change event
	Accounts     prometheus.Gauge
	Transactions prometheus.Gauge
	Stocks       prometheus.Gauge
	LoggedIn     prometheus.Gauge

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec

	// Advice metrics
	AdviceRequests prometheus.Counter
}

// New creates all metrics and registers them with reg. A nil reg means the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		// Store metrics
		StoreMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wealthflow_store_mutations_total",
				Help: "Total successful finance store mutations by operation",
			},
			[]string{"operation"},
		),
		PersistFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wealthflow_store_persist_failures_total",
				Help: "Total failed blob writes by key",
			},
			[]string{"key"},
		),
		BlobFallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wealthflow_store_blob_fallbacks_total",
				Help: "Total blobs replaced by seed data or no user on load",
			},
			[]string{"key"},
		),
		BlobReadFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wealthflow_store_blob_read_failures_total",
				Help: "Total blob reads that failed with a backend error on load",
			},
			[]string{"key"},
		),
		StoreLoadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "wealthflow_store_load_duration_seconds",
			Help:    "Duration of finance store loading, including the load delay",
			Buckets: prometheus.DefBuckets,
		}),

		// State gauges
		Accounts: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wealthflow_accounts",
			Help: "Current number of accounts",
		}),
		Transactions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wealthflow_transactions",
			Help: "Current number of transactions",
		}),
		Stocks: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wealthflow_stock_positions",
			Help: "Current number of stock positions",
		}),
		LoggedIn: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wealthflow_user_logged_in",
			Help: "1 when a user is logged in",
		}),

		// API metrics
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wealthflow_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wealthflow_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Rate limiting metrics
		RateLimitHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wealthflow_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"route"},
		),

		AdviceRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "wealthflow_advice_requests_total",
			Help: "Total advice requests sent to the provider",
		}),
	}
}

// MutationApplied implements usecase.StoreMetrics.
func (m *Metrics) MutationApplied(op string) {
	m.StoreMutations.WithLabelValues(op).Inc()
}

// PersistFailed implements usecase.StoreMetrics.
func (m *Metrics) PersistFailed(key string) {
	m.PersistFailures.WithLabelValues(key).Inc()
}

// BlobFallback implements usecase.StoreMetrics.
func (m *Metrics) BlobFallback(key string) {
	m.BlobFallbacks.WithLabelValues(key).Inc()
}

// BlobReadFailed implements usecase.StoreMetrics.
func (m *Metrics) BlobReadFailed(key string) {
	m.BlobReadFailures.WithLabelValues(key).Inc()
}

// LoadCompleted implements usecase.StoreMetrics.
func (m *Metrics) LoadCompleted(d time.Duration) {
	m.StoreLoadDuration.Observe(d.Seconds())
}

// OnChange refreshes the state gauges from the event snapshot.
func (m *Metrics) OnChange(event domain.ChangeEvent) {
	m.Accounts.Set(float64(len(event.Snapshot.Accounts)))
	m.Transactions.Set(float64(len(event.Snapshot.Transactions)))
	m.Stocks.Set(float64(len(event.Snapshot.Stocks)))

	if event.Snapshot.User != nil {
		m.LoggedIn.Set(1)
	} else {
		m.LoggedIn.Set(0)
	}
}
