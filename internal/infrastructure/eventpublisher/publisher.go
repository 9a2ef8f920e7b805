// Package eventpublisher forwards finance store change events to external
// subscribers.
package eventpublisher

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/wealthflow/wealthflow/internal/domain"
)

// DefaultBufferSize is the queue length used when Config.BufferSize is zero.
const DefaultBufferSize = 256

// Publisher defines the interface for publishing events to external systems.
type Publisher interface {
	Publish(ctx context.Context, notice domain.ChangeNotice) error
}

// Config for EventPublisher.
type Config struct {
	Publisher  Publisher
	Logger     zerolog.Logger
	BufferSize int // Number of notices queued before new ones are dropped
}

// EventPublisher is a store observer that queues change notices and
// publishes them from a background worker, so slow publishers never hold up
// store mutations.
type EventPublisher struct {
	publisher Publisher
	logger    zerolog.Logger
	queue     chan domain.ChangeNotice
	dropped   atomic.Int64
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(cfg Config) *EventPublisher {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBufferSize
	}

	return &EventPublisher{
		publisher: cfg.Publisher,
		logger:    cfg.Logger.With().Str("component", "event_publisher").Logger(),
		queue:     make(chan domain.ChangeNotice, cfg.BufferSize),
	}
}

// OnChange implements usecase.Observer. It never blocks; when the queue is
// full the notice is dropped and counted.
func (ep *EventPublisher) OnChange(event domain.ChangeEvent) {
	notice := event.Notice()

	select {
	case ep.queue <- notice:
	default:
		ep.dropped.Add(1)
		ep.logger.Warn().Str("event_type", notice.Type).Msg("event queue full, dropping notice")
	}
}

// Dropped returns the number of notices dropped because the queue was full.
func (ep *EventPublisher) Dropped() int64 {
	return ep.dropped.Load()
}

// Start begins the event publishing worker.
// It runs continuously until the context is cancelled.
func (ep *EventPublisher) Start(ctx context.Context) error {
	ep.logger.Info().Int("buffer", cap(ep.queue)).Msg("event publisher started")

	for {
		select {
		case <-ctx.Done():
			ep.logger.Info().Int("pending", len(ep.queue)).Msg("event publisher shutting down")
			return ctx.Err()
		case notice := <-ep.queue:
			ep.publish(ctx, notice)
		}
	}
}

func (ep *EventPublisher) publish(ctx context.Context, notice domain.ChangeNotice) {
	if err := ep.publisher.Publish(ctx, notice); err != nil {
		// Continue with later notices even if one fails
		ep.logger.Error().Err(err).Str("event_type", notice.Type).Msg("failed to publish event")
		return
	}

	ep.logger.Debug().
		Str("event_type", notice.Type).
		Strs("entity_ids", notice.EntityIDs).
		Msg("event published")
}

// RedisPublisher publishes notices as JSON on a redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher creates a new RedisPublisher.
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

// Publish sends the notice to the channel.
func (p *RedisPublisher) Publish(ctx context.Context, notice domain.ChangeNotice) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return err
	}

	return p.client.Publish(ctx, p.channel, payload).Err()
}

// LogPublisher is a simple publisher that logs events.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the notice.
func (p *LogPublisher) Publish(_ context.Context, notice domain.ChangeNotice) error {
	p.logger.Info().
		Str("event_type", notice.Type).
		Strs("entity_ids", notice.EntityIDs).
		Int("accounts", notice.Accounts).
		Int("transactions", notice.Transactions).
		Int("stocks", notice.Stocks).
		Bool("logged_in", notice.LoggedIn).
		Msg("EVENT PUBLISHED")

	return nil
}
