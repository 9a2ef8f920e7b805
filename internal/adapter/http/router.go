package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/wealthflow/wealthflow/internal/adapter/http/handler"
	"github.com/wealthflow/wealthflow/internal/adapter/http/middleware"
	"github.com/wealthflow/wealthflow/internal/infrastructure/metrics"
	"github.com/wealthflow/wealthflow/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	HealthHandler      *handler.HealthHandler
	SessionHandler     *handler.SessionHandler
	AccountHandler     *handler.AccountHandler
	TransactionHandler *handler.TransactionHandler
	StockHandler       *handler.StockHandler
	ReportHandler      *handler.ReportHandler
	AdviceHandler      *handler.AdviceHandler

	// Optional
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	AdviceLimiter    *middleware.RateLimiter
	Metrics          *metrics.Metrics
	// MetricsHandler serves /metrics; nil means promhttp.Handler().
	MetricsHandler http.Handler
	Logger         zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.NewRecoveryMiddleware(cfg.Logger).Wrap)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, cfg.Logger)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Get("/state", cfg.ReportHandler.State)

		// Session
		r.Route("/session", func(r chi.Router) {
			r.Get("/", cfg.SessionHandler.Get)
			r.Post("/", cfg.SessionHandler.Login)
			r.Delete("/", cfg.SessionHandler.Logout)
		})

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", cfg.AccountHandler.List)
			r.Post("/", cfg.AccountHandler.Create)
			r.Delete("/{id}", cfg.AccountHandler.Delete)
		})

		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", cfg.TransactionHandler.List)
			r.Post("/", cfg.TransactionHandler.Create)
			r.Delete("/{id}", cfg.TransactionHandler.Delete)
		})

		r.Get("/categories", cfg.TransactionHandler.Categories)

		// Stocks
		r.Route("/stocks", func(r chi.Router) {
			r.Get("/", cfg.StockHandler.List)
			r.Post("/", cfg.StockHandler.Create)
			r.Post("/refresh", cfg.StockHandler.Refresh)
			r.Put("/{id}/price", cfg.StockHandler.UpdatePrice)
			r.Delete("/{id}", cfg.StockHandler.Delete)
		})

		// Derived views
		r.Get("/dashboard", cfg.ReportHandler.Dashboard)
		r.Get("/reports/monthly", cfg.ReportHandler.Monthly)
		r.Get("/reconciliation", cfg.ReportHandler.Reconciliation)

		// Advice
		r.Group(func(r chi.Router) {
			if cfg.AdviceLimiter != nil {
				r.Use(cfg.AdviceLimiter.Limit)
			}
			r.Post("/advice", cfg.AdviceHandler.Advise)
		})
	})

	return r
}
