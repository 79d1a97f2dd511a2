package storage

import (
	"sync"
	"time"

	"github.com/roomlane/concierge-backend/internal/models"
)

// MemoryStore holds bookings in memory. Used for tests and local runs
// without a database.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings map[uint]*models.Booking
	counter  uint
}

// NewMemoryStore creates a new in-memory booking store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookings: make(map[uint]*models.Booking),
	}
}

func (m *MemoryStore) CreateBooking(sessionID string, draft models.BookingDraft) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counter++
	booking := draftToBooking(sessionID, draft)
	booking.ID = m.counter
	booking.CreatedAt = time.Now()

	m.bookings[booking.ID] = &booking
	return &booking, nil
}

func (m *MemoryStore) GetBooking(id uint) (*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	booking, exists := m.bookings[id]
	if !exists {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (m *MemoryStore) GetBookingsBySession(sessionID string) ([]*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.Booking
	// Ascending ID order keeps listings stable.
	for id := uint(1); id <= m.counter; id++ {
		if b, ok := m.bookings[id]; ok && b.SessionID == sessionID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MemoryStore) GetAllBookings() ([]*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.Booking
	for id := uint(1); id <= m.counter; id++ {
		if b, ok := m.bookings[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}
