package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/wealthflow/wealthflow/internal/adapter/advice/gemini"
	httpAdapter "github.com/wealthflow/wealthflow/internal/adapter/http"
	"github.com/wealthflow/wealthflow/internal/adapter/http/handler"
	"github.com/wealthflow/wealthflow/internal/adapter/http/middleware"
	"github.com/wealthflow/wealthflow/internal/adapter/repository/memory"
	postgresRepo "github.com/wealthflow/wealthflow/internal/adapter/repository/postgres"
	redisRepo "github.com/wealthflow/wealthflow/internal/adapter/repository/redis"
	sqliteRepo "github.com/wealthflow/wealthflow/internal/adapter/repository/sqlite"
	"github.com/wealthflow/wealthflow/internal/domain"
	"github.com/wealthflow/wealthflow/internal/infrastructure/config"
	"github.com/wealthflow/wealthflow/internal/infrastructure/eventpublisher"
	"github.com/wealthflow/wealthflow/internal/infrastructure/logger"
	"github.com/wealthflow/wealthflow/internal/infrastructure/metrics"
	"github.com/wealthflow/wealthflow/internal/infrastructure/postgres"
	"github.com/wealthflow/wealthflow/internal/infrastructure/redis"
	"github.com/wealthflow/wealthflow/internal/infrastructure/seed"
	"github.com/wealthflow/wealthflow/internal/usecase"
)

const limiterIdleTTL = 10 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	logr := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal().Err(err).Msg("server failed")
	}
}

func run(ctx context.Context, cfg *config.Config, logr zerolog.Logger) error {
	a, err := buildApp(ctx, cfg, logr, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	a.Start(ctx)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      a.handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logr.Info().Str("port", cfg.HTTPPort).Str("storage", cfg.StorageBackend).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	logr.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logr.Info().Msg("server stopped")

	return nil
}

// app is the wired object graph behind the HTTP server.
type app struct {
	cfg       *config.Config
	log       zerolog.Logger
	store     *usecase.FinanceStore
	handler   http.Handler
	limiter   *middleware.RateLimiter
	publisher *eventpublisher.EventPublisher
	closers   []func()
}

// buildApp wires storage, the finance store and the HTTP surface. A nil
// registry registers metrics on the Prometheus default registry.
func buildApp(ctx context.Context, cfg *config.Config, logr zerolog.Logger, registry *prometheus.Registry) (*app, error) {
	a := &app{cfg: cfg, log: logr}

	var (
		m              *metrics.Metrics
		metricsHandler http.Handler
	)
	if registry != nil {
		m = metrics.New(registry)
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	} else {
		m = metrics.New(nil)
		metricsHandler = promhttp.Handler()
	}

	checks := map[string]handler.HealthCheck{}

	// Connect to Redis
	var redisClient *goredis.Client
	if cfg.UsesRedis() {
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		redisClient = client
		a.closers = append(a.closers, func() { _ = client.Close() })
		checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		logr.Info().Msg("connected to redis")
	}

	storage, err := a.newStorage(ctx, redisClient, checks)
	if err != nil {
		a.Close()
		return nil, err
	}

	store := usecase.NewFinanceStore(storage, postgresRepo.NewULIDGenerator(), seed.NewProvider(), usecase.StoreConfig{
		LoadDelay: cfg.LoadDelay,
		KeyPrefix: cfg.StorageKeyPrefix,
		Logger:    logr,
		Metrics:   m,
	})
	a.store = store

	store.Subscribe(m)

	if sink := newEventSink(cfg, redisClient, logr); sink != nil {
		a.publisher = eventpublisher.NewEventPublisher(eventpublisher.Config{
			Publisher: sink,
			Logger:    logr,
		})
		store.Subscribe(a.publisher)
	}

	converter := newConverter(cfg)

	advisor, err := gemini.NewProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logr)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create advice provider: %w", err)
	}

	// Initialize use cases
	adviceUC := usecase.NewAdviceUseCase(store, advisor, converter)
	refresher := usecase.NewPriceRefresher(store, nil)
	reconciliationUC := usecase.NewReconciliationUseCase(store)

	a.limiter = middleware.NewRateLimiter(cfg.AdviceRateLimit, cfg.AdviceRateBurst)
	a.limiter.Hits = m.RateLimitHits.WithLabelValues("advice")

	routerCfg := httpAdapter.RouterConfig{
		HealthHandler:      handler.NewHealthHandler(store, checks),
		SessionHandler:     handler.NewSessionHandler(store),
		AccountHandler:     handler.NewAccountHandler(store),
		TransactionHandler: handler.NewTransactionHandler(store),
		StockHandler:       handler.NewStockHandler(store, refresher),
		ReportHandler:      handler.NewReportHandler(store, reconciliationUC, converter),
		AdviceHandler:      handler.NewAdviceHandler(adviceUC),
		AdviceLimiter:      a.limiter,
		Metrics:            m,
		MetricsHandler:     metricsHandler,
		Logger:             logr,
	}

	if cfg.IdempotencyEnabled {
		routerCfg.IdempotencyStore = redisRepo.NewIdempotencyStore(redisClient, cfg.StorageKeyPrefix)
		routerCfg.IdempotencyTTL = cfg.IdempotencyTTL
	}

	a.handler = httpAdapter.NewRouter(routerCfg)

	return a, nil
}

// newStorage opens the configured blob storage backend.
func (a *app) newStorage(ctx context.Context, redisClient *goredis.Client, checks map[string]handler.HealthCheck) (usecase.Storage, error) {
	cfg := a.cfg

	switch cfg.StorageBackend {
	case config.BackendMemory:
		a.log.Warn().Msg("using in-memory storage, data will not survive a restart")
		return memory.NewStorage(), nil

	case config.BackendSQLite:
		db, err := sqliteRepo.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		a.closers = append(a.closers, func() { _ = db.Close() })
		checks["sqlite"] = db.PingContext
		a.log.Info().Str("path", cfg.SQLitePath).Msg("opened sqlite database")
		return sqliteRepo.NewStorage(db), nil

	case config.BackendRedis:
		// The store applies StorageKeyPrefix itself.
		return redisRepo.NewStorage(redisClient, ""), nil

	case config.BackendPostgres:
		if err := postgres.NewMigrator(cfg.DatabaseURL, a.log).Up(); err != nil {
			return nil, err
		}

		pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
			DatabaseURL:    cfg.DatabaseURL,
			MaxConns:       cfg.DatabaseMaxConns,
			MinConns:       cfg.DatabaseMinConns,
			ConnectTimeout: cfg.DatabaseTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		checks["postgres"] = pool.Ping
		a.log.Info().Msg("connected to postgres")
		return postgresRepo.NewStorage(pool, postgresRepo.NewRetrier(a.log)), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// Start loads the store and runs the background workers until ctx is done.
func (a *app) Start(ctx context.Context) {
	go func() {
		if err := a.store.Load(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.log.Error().Err(err).Msg("failed to load finance store")
		}
	}()

	if a.publisher != nil {
		go func() {
			_ = a.publisher.Start(ctx)
		}()
	}

	go func() {
		ticker := time.NewTicker(limiterIdleTTL)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := a.limiter.CleanupLimiters(limiterIdleTTL); n > 0 {
					a.log.Debug().Int("evicted", n).Msg("evicted idle rate limiters")
				}
			}
		}
	}()
}

// Close releases backend connections in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// newEventSink picks where change events go: a redis channel, the log, or
// nowhere (nil).
func newEventSink(cfg *config.Config, redisClient *goredis.Client, logr zerolog.Logger) eventpublisher.Publisher {
	switch {
	case cfg.EventsChannel != "":
		return eventpublisher.NewRedisPublisher(redisClient, cfg.EventsChannel)
	case cfg.EventsLog:
		return eventpublisher.NewLogPublisher(logr.With().Str("component", "events").Logger())
	default:
		return nil
	}
}

func newConverter(cfg *config.Config) domain.Converter {
	c := domain.DefaultConverter()
	if cfg.LocalCurrency != "" {
		c.LocalCurrency = cfg.LocalCurrency
	}
	if cfg.USDRate > 0 {
		c.Rates["USD"] = decimal.NewFromFloat(cfg.USDRate)
	}

	return c
}
