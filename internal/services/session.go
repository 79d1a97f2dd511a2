package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/roomlane/concierge-backend/internal/models"
	"github.com/roomlane/concierge-backend/internal/observability"
	"github.com/roomlane/concierge-backend/internal/sessions"
)

// DefaultSessionTTL is how long an idle dialogue stays resumable.
const DefaultSessionTTL = time.Hour

// SessionManager is the session registry: it resolves an optional client
// supplied ID to a live session, minting a fresh one when needed, and
// hands out per-session locks so at most one turn is in flight per
// session.
type SessionManager struct {
	backend sessions.Store
	ttl     time.Duration
	log     zerolog.Logger

	// Injected for deterministic tests.
	now   func() time.Time
	newID func() string

	locks sync.Map // session ID -> *sync.Mutex
}

// NewSessionManager creates a registry over the given backend.
func NewSessionManager(backend sessions.Store, ttl time.Duration, log zerolog.Logger) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{
		backend: backend,
		ttl:     ttl,
		log:     log,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// WithClock overrides the clock. Test hook.
func (m *SessionManager) WithClock(now func() time.Time) *SessionManager {
	m.now = now
	return m
}

// WithIDGenerator overrides session ID minting. Test hook.
func (m *SessionManager) WithIDGenerator(newID func() string) *SessionManager {
	m.newID = newID
	return m
}

// Resolve returns the live session for id, or creates a fresh one when id
// is empty or unknown. The returned session always has a valid ID.
func (m *SessionManager) Resolve(ctx context.Context, id string) (*models.Session, error) {
	if id != "" {
		session, found, err := m.backend.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve session: %w", err)
		}
		if found {
			return session, nil
		}
	}

	now := m.now()
	session := &models.Session{
		ID:         m.newID(),
		Step:       models.StepName,
		CreatedAt:  now,
		LastActive: now,
		ExpiresAt:  now.Add(m.ttl),
	}
	if err := m.backend.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	observability.SessionsCreated.Inc()
	m.log.Debug().Str("session_id", session.ID).Msg("session created")
	return session, nil
}

// Save refreshes the activity stamps and persists the session.
func (m *SessionManager) Save(ctx context.Context, session *models.Session) error {
	now := m.now()
	session.LastActive = now
	session.ExpiresAt = now.Add(m.ttl)
	if err := m.backend.Save(ctx, session); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

// Lock acquires the per-session mutex and returns the unlock function.
// Entries are pruned on release so the registry does not grow with every
// session ever seen; a waiter that wins a pruned mutex fails the identity
// check and retries against the live entry.
func (m *SessionManager) Lock(id string) func() {
	for {
		v, _ := m.locks.LoadOrStore(id, &sync.Mutex{})
		mu := v.(*sync.Mutex)
		mu.Lock()
		if cur, ok := m.locks.Load(id); ok && cur == mu {
			return func() {
				m.locks.CompareAndDelete(id, mu)
				mu.Unlock()
			}
		}
		mu.Unlock()
	}
}
