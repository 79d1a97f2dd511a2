package models

import "time"

// Booking is a committed reservation record. The ID and CreatedAt are
// assigned by the store on insert.
type Booking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	SessionID     string    `json:"session_id" gorm:"index"`
	Name          string    `json:"name"`
	Checkin       string    `json:"checkin"`  // ISO YYYY-MM-DD
	Checkout      string    `json:"checkout"` // ISO YYYY-MM-DD
	Guests        int       `json:"guests"`
	Breakfast     bool      `json:"breakfast" gorm:"default:false"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// PaymentNotSpecified is stored when the guest skips the payment question.
const PaymentNotSpecified = "Not specified"

// Reply is what the conversation service returns for a single turn.
// Complete is true only on the turn that commits the booking.
type Reply struct {
	Text     string   `json:"reply"`
	Complete bool     `json:"complete"`
	Booking  *Booking `json:"booking,omitempty"`
}
