package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/roomlane/concierge-backend/internal/models"
)

// DatabaseStore persists bookings through GORM.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a booking store backed by the given database.
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (s *DatabaseStore) CreateBooking(sessionID string, draft models.BookingDraft) (*models.Booking, error) {
	booking := draftToBooking(sessionID, draft)
	if err := s.db.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &booking, nil
}

func (s *DatabaseStore) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	return &booking, nil
}

func (s *DatabaseStore) GetBookingsBySession(sessionID string) ([]*models.Booking, error) {
	var bookings []*models.Booking
	if err := s.db.Where("session_id = ?", sessionID).Order("id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings for session %s: %w", sessionID, err)
	}
	return bookings, nil
}

func (s *DatabaseStore) GetAllBookings() ([]*models.Booking, error) {
	var bookings []*models.Booking
	if err := s.db.Order("id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
