package storage

import (
	"errors"

	"github.com/roomlane/concierge-backend/internal/models"
)

// ErrBookingNotFound is returned when a booking ID does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// Store is the booking sink: an append-only record store for finished
// reservations plus the reads the API exposes.
type Store interface {
	// CreateBooking persists a finished reservation and returns the record
	// with its sink-assigned ID and timestamp.
	CreateBooking(sessionID string, draft models.BookingDraft) (*models.Booking, error)
	GetBooking(id uint) (*models.Booking, error)
	GetBookingsBySession(sessionID string) ([]*models.Booking, error)
	GetAllBookings() ([]*models.Booking, error)
}

// draftToBooking applies the record defaults the schema promises: breakfast
// defaults to false, payment method to "Not specified".
func draftToBooking(sessionID string, draft models.BookingDraft) models.Booking {
	breakfast := false
	if draft.Breakfast != nil {
		breakfast = *draft.Breakfast
	}
	payment := draft.PaymentMethod
	if payment == "" {
		payment = models.PaymentNotSpecified
	}
	return models.Booking{
		SessionID:     sessionID,
		Name:          draft.Name,
		Checkin:       draft.CheckinDate,
		Checkout:      draft.CheckoutDate,
		Guests:        draft.Guests,
		Breakfast:     breakfast,
		PaymentMethod: payment,
	}
}
