package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/roomlane/concierge-backend/internal/models"
	"github.com/roomlane/concierge-backend/internal/sessions"
)

func newManager() *SessionManager {
	var seq int
	clock := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }
	// The backend shares the fake clock so its expiry checks agree with the
	// manager's stamps.
	backend := sessions.NewMemoryStore().WithClock(now)
	return NewSessionManager(backend, time.Hour, zerolog.Nop()).
		WithClock(now).
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("session-%d", seq)
		})
}

func TestResolveCreatesFreshSession(t *testing.T) {
	m := newManager()

	s, err := m.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.ID != "session-1" {
		t.Errorf("id = %q, want session-1", s.ID)
	}
	if s.Step != models.StepName {
		t.Errorf("step = %s, want name", s.Step)
	}
	if s.Data != (models.BookingDraft{}) {
		t.Errorf("fresh session has data: %+v", s.Data)
	}
	if !s.ExpiresAt.Equal(s.CreatedAt.Add(time.Hour)) {
		t.Errorf("expiry = %v, want created+1h", s.ExpiresAt)
	}
}

func TestResolveReturnsLiveSessionUnchanged(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	first, err := m.Resolve(ctx, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	first.Step = models.StepGuests
	first.Data.Name = "Alice"
	if err := m.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	again, err := m.Resolve(ctx, first.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if again.ID != first.ID || again.Step != models.StepGuests || again.Data.Name != "Alice" {
		t.Errorf("session changed on resolve: %+v", again)
	}
}

func TestResolveUnknownIDMintsNewSession(t *testing.T) {
	m := newManager()

	s, err := m.Resolve(context.Background(), "no-such-session")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.ID == "no-such-session" {
		t.Error("unknown IDs must not be adopted")
	}
	if s.Step != models.StepName {
		t.Errorf("step = %s, want name", s.Step)
	}
}

func TestLockPrunesReleasedEntries(t *testing.T) {
	m := newManager()

	unlock := m.Lock("a")
	if _, ok := m.locks.Load("a"); !ok {
		t.Fatal("held lock missing from registry")
	}
	unlock()
	if _, ok := m.locks.Load("a"); ok {
		t.Error("released lock left in registry")
	}
}

func TestLockIsPerSession(t *testing.T) {
	m := newManager()

	unlockA := m.Lock("a")
	// A different session's lock must not block.
	done := make(chan struct{})
	go func() {
		unlockB := m.Lock("b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on another session blocked")
	}
	unlockA()

	// Same session's lock is exclusive until released.
	reacquired := make(chan struct{})
	unlockA = m.Lock("a")
	go func() {
		unlock := m.Lock("a")
		unlock()
		close(reacquired)
	}()

	select {
	case <-reacquired:
		t.Fatal("same-session lock acquired while held")
	case <-time.After(50 * time.Millisecond):
	}
	unlockA()
	<-reacquired
}
