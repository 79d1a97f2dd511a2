package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/roomlane/concierge-backend/internal/models"
)

// MemoryStore keeps sessions in a mutex-guarded map for the lifetime of
// the process. Expired entries are treated as missing on read and swept by
// the janitor.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session

	now  func() time.Time
	stop chan struct{}
	once sync.Once
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*models.Session),
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// WithClock overrides the expiry clock. Test hook.
func (m *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	m.now = now
	return m
}

func (m *MemoryStore) Get(_ context.Context, id string) (*models.Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[id]
	if !exists {
		return nil, false, nil
	}
	if !session.ExpiresAt.IsZero() && m.now().After(session.ExpiresAt) {
		return nil, false, nil
	}
	return session, true, nil
}

func (m *MemoryStore) Save(_ context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.ID] = session
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

// StartJanitor sweeps expired sessions every interval until Stop is called.
func (m *MemoryStore) StartJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.sweep()
			case <-m.stop:
				return
			}
		}
	}()
}

// Stop halts the janitor.
func (m *MemoryStore) Stop() {
	m.once.Do(func() { close(m.stop) })
}

func (m *MemoryStore) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, session := range m.sessions {
		if !session.ExpiresAt.IsZero() && now.After(session.ExpiresAt) {
			delete(m.sessions, id)
		}
	}
}
