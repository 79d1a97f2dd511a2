package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/roomlane/concierge-backend/internal/models"
	"github.com/roomlane/concierge-backend/internal/nlp"
	"github.com/roomlane/concierge-backend/internal/observability"
	"github.com/roomlane/concierge-backend/internal/storage"
)

// ErrSessionComplete is returned for turns against a finished session; the
// caller should start a new session instead of reusing the old one.
var ErrSessionComplete = errors.New("session already complete")

// Exact confirmation vocabularies. Matching is on the trimmed, lowercased
// turn; anything else re-prompts.
var (
	confirmWords = map[string]struct{}{
		"confirm": {}, "yes": {}, "book": {}, "book it": {}, "proceed": {},
	}
	cancelWords = map[string]struct{}{
		"cancel": {}, "no": {}, "restart": {}, "start over": {},
	}
)

// ConversationService drives the reservation dialogue: one extractor per
// step, advance on success, re-prompt on failure, commit on confirmation.
type ConversationService struct {
	store storage.Store
	dates *nlp.DateParser
	log   zerolog.Logger
}

// NewConversationService creates the dialogue state machine over the given
// booking sink.
func NewConversationService(store storage.Store, log zerolog.Logger) *ConversationService {
	return &ConversationService{
		store: store,
		dates: nlp.NewDateParser(),
		log:   log,
	}
}

// ProcessTurn runs one state transition for the session. The session is
// mutated in place only on success paths; extraction failures leave step
// and data untouched. A sink failure is returned as an error with the
// session still in the confirm step so the guest can retry.
func (c *ConversationService) ProcessTurn(session *models.Session, message string) (*models.Reply, error) {
	switch session.Step {
	case models.StepName:
		return c.collectName(session, message), nil
	case models.StepCheckin:
		return c.collectCheckin(session, message), nil
	case models.StepCheckout:
		return c.collectCheckout(session, message), nil
	case models.StepGuests:
		return c.collectGuests(session, message), nil
	case models.StepBreakfast:
		return c.collectBreakfast(session, message), nil
	case models.StepPayment:
		return c.collectPayment(session, message), nil
	case models.StepConfirm:
		return c.confirm(session, message)
	case models.StepComplete:
		observability.ObserveTurn(string(models.StepComplete), "error")
		return nil, ErrSessionComplete
	default:
		return nil, fmt.Errorf("session %s in unknown step %q", session.ID, session.Step)
	}
}

func (c *ConversationService) collectName(session *models.Session, message string) *models.Reply {
	name, ok := nlp.ExtractName(message)
	if !ok {
		return c.retry(session, "name", "I didn't catch your name. Could you please tell me your name?")
	}

	session.Data.Name = name
	session.Step = models.StepCheckin
	observability.ObserveTurn(string(models.StepName), "advanced")
	return &models.Reply{
		Text: fmt.Sprintf("Nice to meet you, %s! When would you like to check in? (e.g., 'tomorrow', 'January 15th', '2024-01-15')", name),
	}
}

func (c *ConversationService) collectCheckin(session *models.Session, message string) *models.Reply {
	date, ok := c.dates.Extract(message)
	if !ok {
		return c.retry(session, "checkin", "I couldn't understand the date. Please provide your check-in date (e.g., 'tomorrow', 'January 15th', or '2024-01-15')")
	}

	session.Data.CheckinDate = date
	session.Step = models.StepCheckout
	observability.ObserveTurn(string(models.StepCheckin), "advanced")
	return &models.Reply{
		Text: fmt.Sprintf("Great! Check-in on %s. When would you like to check out?", date),
	}
}

func (c *ConversationService) collectCheckout(session *models.Session, message string) *models.Reply {
	date, ok := c.dates.Extract(message)
	if !ok {
		return c.retry(session, "checkout", "I couldn't understand the check-out date. Please provide a valid date.")
	}
	if !nlp.ValidateDateOrder(session.Data.CheckinDate, date) {
		return c.retry(session, "checkout", fmt.Sprintf("Check-out date must be after check-in date (%s). Please provide a later check-out date.", session.Data.CheckinDate))
	}

	session.Data.CheckoutDate = date
	session.Step = models.StepGuests
	observability.ObserveTurn(string(models.StepCheckout), "advanced")
	return &models.Reply{
		Text: fmt.Sprintf("Perfect! Check-out on %s. How many guests will be staying?", date),
	}
}

func (c *ConversationService) collectGuests(session *models.Session, message string) *models.Reply {
	guests, ok := nlp.ExtractGuestCount(message)
	if !ok {
		return c.retry(session, "guests", "Please tell me the number of guests (1-10 people).")
	}

	session.Data.Guests = guests
	session.Step = models.StepBreakfast
	observability.ObserveTurn(string(models.StepGuests), "advanced")
	guestWord := "guests"
	if guests == 1 {
		guestWord = "guest"
	}
	return &models.Reply{
		Text: fmt.Sprintf("Noted: %d %s. Would you like to include breakfast? (yes/no)", guests, guestWord),
	}
}

func (c *ConversationService) collectBreakfast(session *models.Session, message string) *models.Reply {
	breakfast, ok := nlp.ExtractYesNo(message)
	if !ok {
		return c.retry(session, "breakfast", "Please answer yes or no for breakfast preference.")
	}

	session.Data.Breakfast = &breakfast
	session.Step = models.StepPayment
	observability.ObserveTurn(string(models.StepBreakfast), "advanced")
	breakfastText := "without breakfast"
	if breakfast {
		breakfastText = "with breakfast"
	}
	return &models.Reply{
		Text: fmt.Sprintf("Excellent, %s! What's your preferred payment method? (credit card, debit card, cash, paypal, or 'skip')", breakfastText),
	}
}

func (c *ConversationService) collectPayment(session *models.Session, message string) *models.Reply {
	method, ok := nlp.ExtractPaymentMethod(message)
	if !ok {
		// Only blank input lands here; the transport rejects it first.
		return c.retry(session, "payment", "What's your preferred payment method? (credit card, debit card, cash, paypal, or 'skip')")
	}

	session.Data.PaymentMethod = method
	session.Step = models.StepConfirm
	observability.ObserveTurn(string(models.StepPayment), "advanced")
	return &models.Reply{Text: c.renderSummary(session.Data)}
}

func (c *ConversationService) confirm(session *models.Session, message string) (*models.Reply, error) {
	response := strings.ToLower(strings.TrimSpace(message))

	if _, ok := confirmWords[response]; ok {
		booking, err := c.store.CreateBooking(session.ID, session.Data)
		if err != nil {
			// Data stays intact and the step stays at confirm so the guest
			// can retry the confirmation.
			observability.ObserveTurn(string(models.StepConfirm), "error")
			c.log.Error().Err(err).Str("session_id", session.ID).Msg("booking sink failed")
			return nil, fmt.Errorf("commit booking: %w", err)
		}

		session.Step = models.StepComplete
		observability.ObserveTurn(string(models.StepConfirm), "completed")
		observability.Bookings.Inc()
		c.log.Info().Str("session_id", session.ID).Uint("booking_id", booking.ID).Msg("booking confirmed")
		return &models.Reply{
			Text:     fmt.Sprintf("🎉 Booking confirmed! Your reservation ID is #%d. Thank you for choosing our hotel!", booking.ID),
			Complete: true,
			Booking:  booking,
		}, nil
	}

	if _, ok := cancelWords[response]; ok {
		session.Data.Reset()
		session.Step = models.StepName
		observability.ObserveTurn(string(models.StepConfirm), "reset")
		return &models.Reply{
			Text: "Booking cancelled. Let's start over! What's your name?",
		}, nil
	}

	observability.ObserveTurn(string(models.StepConfirm), "retry")
	return &models.Reply{
		Text: "Please type 'confirm' to complete your booking or 'cancel' to start over.",
	}, nil
}

func (c *ConversationService) retry(session *models.Session, field, prompt string) *models.Reply {
	observability.ObserveTurn(string(session.Step), "retry")
	observability.ObserveExtractionFailure(field)
	return &models.Reply{Text: prompt}
}

func (c *ConversationService) renderSummary(data models.BookingDraft) string {
	breakfast := "No"
	if data.Breakfast != nil && *data.Breakfast {
		breakfast = "Yes"
	}
	payment := data.PaymentMethod
	if payment == "" {
		payment = models.PaymentNotSpecified
	}

	return fmt.Sprintf(`Please confirm your booking details:

• Name: %s
• Check-in: %s
• Check-out: %s
• Guests: %d
• Breakfast: %s
• Payment: %s

Type 'confirm' to complete your booking or 'cancel' to start over.`,
		data.Name, data.CheckinDate, data.CheckoutDate, data.Guests, breakfast, payment)
}
