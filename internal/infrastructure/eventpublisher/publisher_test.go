package eventpublisher

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/wealthflow/wealthflow/internal/domain"
)

func TestStartPublishesQueuedNotices(t *testing.T) {
	pub := newStubPublisher()
	ep := newTestPublisher(pub, 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = ep.Start(ctx) }()

	ep.OnChange(accountAdded("acc_9"))

	select {
	case n := <-pub.seen:
		if n.Type != domain.EventTypeAccountAdded || len(n.EntityIDs) != 1 || n.EntityIDs[0] != "acc_9" {
			t.Fatalf("unexpected notice: %#v", n)
		}
		if n.Accounts != 1 || !n.LoggedIn {
			t.Fatalf("expected snapshot counts in notice, got %#v", n)
		}
	case <-time.After(time.Second):
		t.Fatal("notice was not published")
	}
}

func TestStartContinuesOnPublishError(t *testing.T) {
	pub := newStubPublisher()
	pub.errorsByType = map[string]error{domain.EventTypeStockRemoved: errors.New("fail")}
	ep := newTestPublisher(pub, 10)

	ep.OnChange(domain.ChangeEvent{Type: domain.EventTypeStockRemoved, EntityIDs: []string{"stk_1"}})
	ep.OnChange(accountAdded("acc_4"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = ep.Start(ctx) }()

	select {
	case n := <-pub.seen:
		if n.Type != domain.EventTypeAccountAdded {
			t.Fatalf("expected account notice after failed one, got %#v", n)
		}
	case <-time.After(time.Second):
		t.Fatal("publisher stopped after error")
	}
}

func TestOnChangeDropsWhenQueueFull(t *testing.T) {
	ep := newTestPublisher(newStubPublisher(), 1)

	ep.OnChange(accountAdded("a"))
	ep.OnChange(accountAdded("b"))
	ep.OnChange(accountAdded("c"))

	if got := ep.Dropped(); got != 2 {
		t.Fatalf("expected 2 dropped notices, got %d", got)
	}
}

func TestStartStopsOnContextCancellation(t *testing.T) {
	ep := newTestPublisher(newStubPublisher(), 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- ep.Start(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("publisher did not stop after cancel")
	}
}

func TestRedisPublisherPublishesJSON(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	ctx := context.Background()
	sub := client.Subscribe(ctx, "wealthflow:events")
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	pub := NewRedisPublisher(client, "wealthflow:events")
	notice := accountAdded("acc_7").Notice()
	if err := pub.Publish(ctx, notice); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case msg := <-sub.Channel():
		var got domain.ChangeNotice
		if err := json.Unmarshal([]byte(msg.Payload), &got); err != nil {
			t.Fatalf("payload is not JSON: %v", err)
		}
		if got.Type != domain.EventTypeAccountAdded || got.EntityIDs[0] != "acc_7" || got.Accounts != 1 {
			t.Fatalf("unexpected payload: %#v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no message received")
	}
}

func TestLogPublisher(t *testing.T) {
	pub := NewLogPublisher(zerolog.Nop())

	if err := pub.Publish(context.Background(), accountAdded("x").Notice()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func newTestPublisher(pub Publisher, buffer int) *EventPublisher {
	return NewEventPublisher(Config{
		Publisher:  pub,
		Logger:     zerolog.Nop(),
		BufferSize: buffer,
	})
}

func accountAdded(id string) domain.ChangeEvent {
	return domain.ChangeEvent{
		Type:       domain.EventTypeAccountAdded,
		EntityIDs:  []string{id},
		OccurredAt: time.Date(2023, 10, 27, 8, 0, 0, 0, time.UTC),
		Snapshot: domain.Snapshot{
			User:     &domain.User{ID: "u1", Name: "Amy", Email: "amy@example.com"},
			Accounts: []domain.Account{{ID: id, Name: "Main", Currency: "TWD"}},
		},
	}
}

type stubPublisher struct {
	mu           sync.Mutex
	published    []domain.ChangeNotice
	errorsByType map[string]error
	seen         chan domain.ChangeNotice
}

func newStubPublisher() *stubPublisher {
	return &stubPublisher{seen: make(chan domain.ChangeNotice, 10)}
}

func (s *stubPublisher) Publish(_ context.Context, notice domain.ChangeNotice) error {
	if err := s.errorsByType[notice.Type]; err != nil {
		return err
	}

	s.mu.Lock()
	s.published = append(s.published, notice)
	s.mu.Unlock()

	s.seen <- notice
	return nil
}
