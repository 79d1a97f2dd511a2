package models

import "time"

// Step is the current position in the fixed field-collection sequence.
// The set is closed: every transition in the conversation service switches
// exhaustively over these values.
type Step string

const (
	StepName      Step = "name"
	StepCheckin   Step = "checkin"
	StepCheckout  Step = "checkout"
	StepGuests    Step = "guests"
	StepBreakfast Step = "breakfast"
	StepPayment   Step = "payment"
	StepConfirm   Step = "confirm"
	StepComplete  Step = "complete"
)

// BookingDraft accumulates reservation fields as the conversation advances.
// Fields are filled strictly in step order; a cancellation clears the whole
// draft at once.
type BookingDraft struct {
	Name          string `json:"name,omitempty"`
	CheckinDate   string `json:"checkin_date,omitempty"`  // ISO YYYY-MM-DD
	CheckoutDate  string `json:"checkout_date,omitempty"` // ISO YYYY-MM-DD
	Guests        int    `json:"guests,omitempty"`        // 0 means not collected yet
	Breakfast     *bool  `json:"breakfast,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

// Reset clears all accumulated fields.
func (d *BookingDraft) Reset() {
	*d = BookingDraft{}
}

// Session holds the conversation state for one guest dialogue.
type Session struct {
	ID         string       `json:"id"`
	Step       Step         `json:"step"`
	Data       BookingDraft `json:"data"`
	CreatedAt  time.Time    `json:"created_at"`
	LastActive time.Time    `json:"last_active"`
	ExpiresAt  time.Time    `json:"expires_at"`
}
