package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

type recordingService struct {
	mu     sync.Mutex
	events []domain.InventoryEvent
	done   chan struct{}
	want   int
}

func newRecordingService(want int) *recordingService {
	return &recordingService{done: make(chan struct{}), want: want}
}

func (s *recordingService) Process(_ context.Context, event domain.InventoryEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_DeliversAllEvents(t *testing.T) {
	svc := newRecordingService(10)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Enqueue(domain.InventoryEvent{
			SweetID: "sweet-1",
			Action:  domain.ActionPurchase,
			Delta:   -1,
		})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events, got %d", len(svc.events))
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, newRecordingService(0), zerolog.Nop())

	first := d.shardIndex("sweet-42")
	for i := 0; i < 100; i++ {
		if got := d.shardIndex("sweet-42"); got != first {
			t.Fatalf("shard index changed from %d to %d", first, got)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_StopsOnCancel(t *testing.T) {
	svc := newRecordingService(1)
	d := NewDispatcher(1, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Enqueue(domain.InventoryEvent{SweetID: "sweet-1", Action: domain.ActionRestock, Delta: 5})
	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("event not processed before cancel")
	}

	cancel()
	// After cancellation workers drain nothing further; enqueueing must not
	// block while buffer space remains.
	d.Enqueue(domain.InventoryEvent{SweetID: "sweet-1", Action: domain.ActionRestock, Delta: 5})
}
