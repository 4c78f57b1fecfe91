package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sikeu/finance-api/internal/core/domain"
)

type stubAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	err    error
}

func (r *stubAuditRepo) Insert(_ context.Context, e *domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, *e)
	return nil
}

func (r *stubAuditRepo) snapshot() []domain.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AuditEvent(nil), r.events...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestDispatcher_WritesEvents(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewDispatcher(3, repo, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 20; i++ {
		d.Publish(domain.AuditEvent{ID: fmt.Sprint(i), Entity: "Proyek", RecordID: fmt.Sprintf("p-%d", i%5), Action: domain.AuditCreated})
	}

	waitFor(t, func() bool { return len(repo.snapshot()) == 20 })
}

func TestDispatcher_PreservesOrderPerRecord(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	actions := []domain.AuditAction{domain.AuditCreated, domain.AuditUpdated, domain.AuditUpdated, domain.AuditDeleted}
	for i, a := range actions {
		d.Publish(domain.AuditEvent{ID: fmt.Sprint(i), Entity: "Proyek", RecordID: "p-1", Action: a})
	}

	waitFor(t, func() bool { return len(repo.snapshot()) == len(actions) })
	for i, e := range repo.snapshot() {
		if e.ID != fmt.Sprint(i) {
			t.Fatalf("event %d out of order: got id %s", i, e.ID)
		}
	}
}

func TestDispatcher_DrainsOnShutdown(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())

	for i := 0; i < 5; i++ {
		d.Publish(domain.AuditEvent{ID: fmt.Sprint(i), RecordID: "p-1"})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)
	d.Wait()

	if got := len(repo.snapshot()); got != 5 {
		t.Fatalf("expected buffered events to be flushed, got %d", got)
	}
}

func TestDispatcher_RepositoryFailureIsNotFatal(t *testing.T) {
	repo := &stubAuditRepo{err: errors.New("db down")}
	d := NewDispatcher(1, repo, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Publish(domain.AuditEvent{ID: "1", RecordID: "p-1"})
	cancel()
	d.Wait()

	if len(repo.snapshot()) != 0 {
		t.Fatalf("no events should be stored")
	}
}

func TestDispatcher_ShardIndexStable(t *testing.T) {
	d := NewDispatcher(8, &stubAuditRepo{}, zerolog.Nop())
	a := d.shardIndex("p-42")
	for i := 0; i < 10; i++ {
		if d.shardIndex("p-42") != a {
			t.Fatalf("shard index must be deterministic")
		}
	}
	if a < 0 || a >= 8 {
		t.Fatalf("shard index out of range: %d", a)
	}
}
