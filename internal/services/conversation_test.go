package services

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/roomlane/concierge-backend/internal/models"
	"github.com/roomlane/concierge-backend/internal/storage"
)

func newConversation(t *testing.T) (*ConversationService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewConversationService(store, zerolog.Nop()), store
}

func newSession() *models.Session {
	return &models.Session{ID: "test-session", Step: models.StepName}
}

func turn(t *testing.T, c *ConversationService, s *models.Session, msg string) *models.Reply {
	t.Helper()
	reply, err := c.ProcessTurn(s, msg)
	if err != nil {
		t.Fatalf("turn %q: %v", msg, err)
	}
	return reply
}

func TestFullBookingFlow(t *testing.T) {
	c, _ := newConversation(t)
	s := newSession()

	steps := []struct {
		msg  string
		next models.Step
	}{
		{"I'm Alice", models.StepCheckin},
		{"tomorrow", models.StepCheckout},
		{"in 3 days", models.StepGuests},
		{"2", models.StepBreakfast},
		{"yes", models.StepPayment},
		{"visa", models.StepConfirm},
	}

	for _, st := range steps {
		reply := turn(t, c, s, st.msg)
		if s.Step != st.next {
			t.Fatalf("after %q step = %s, want %s", st.msg, s.Step, st.next)
		}
		if reply.Complete {
			t.Fatalf("turn %q reported complete early", st.msg)
		}
	}

	if s.Data.Name != "Alice" {
		t.Errorf("name = %q, want Alice", s.Data.Name)
	}
	if s.Data.Guests != 2 {
		t.Errorf("guests = %d, want 2", s.Data.Guests)
	}
	if s.Data.Breakfast == nil || !*s.Data.Breakfast {
		t.Error("breakfast should be true")
	}
	if s.Data.PaymentMethod != "Visa" {
		t.Errorf("payment = %q, want Visa", s.Data.PaymentMethod)
	}
	// ISO dates compare lexicographically.
	if s.Data.CheckoutDate <= s.Data.CheckinDate {
		t.Errorf("checkout %q not after checkin %q", s.Data.CheckoutDate, s.Data.CheckinDate)
	}

	reply := turn(t, c, s, "confirm")
	if !reply.Complete {
		t.Fatal("confirming turn should complete the booking")
	}
	if reply.Booking == nil || reply.Booking.ID == 0 {
		t.Fatal("completed reply must carry a booking with an ID")
	}
	if s.Step != models.StepComplete {
		t.Errorf("step = %s, want complete", s.Step)
	}
}

func TestCheckoutBeforeCheckinIsRejected(t *testing.T) {
	c, _ := newConversation(t)
	s := &models.Session{
		ID:   "s",
		Step: models.StepCheckout,
		Data: models.BookingDraft{Name: "Alice", CheckinDate: "2024-01-20"},
	}

	reply := turn(t, c, s, "2024-01-18")
	if s.Step != models.StepCheckout {
		t.Errorf("step = %s, want checkout (no advance on ordering failure)", s.Step)
	}
	if s.Data.CheckoutDate != "" {
		t.Errorf("checkout date stored despite rejection: %q", s.Data.CheckoutDate)
	}
	if reply.Complete {
		t.Error("rejection must not complete the booking")
	}
}

func TestCancelAtConfirmResetsEverything(t *testing.T) {
	c, _ := newConversation(t)
	breakfast := true
	s := &models.Session{
		ID:   "s",
		Step: models.StepConfirm,
		Data: models.BookingDraft{
			Name: "Alice", CheckinDate: "2024-01-20", CheckoutDate: "2024-01-22",
			Guests: 2, Breakfast: &breakfast, PaymentMethod: "Cash",
		},
	}

	turn(t, c, s, "cancel")
	if s.Step != models.StepName {
		t.Errorf("step = %s, want name", s.Step)
	}
	if s.Data != (models.BookingDraft{}) {
		t.Errorf("draft not fully cleared: %+v", s.Data)
	}

	// Next turn starts collecting a name again.
	turn(t, c, s, "I'm Bob")
	if s.Data.Name != "Bob" || s.Step != models.StepCheckin {
		t.Errorf("restart broken: name=%q step=%s", s.Data.Name, s.Step)
	}
}

func TestUnrecognizedConfirmInputReprompts(t *testing.T) {
	c, _ := newConversation(t)
	s := &models.Session{
		ID:   "s",
		Step: models.StepConfirm,
		Data: models.BookingDraft{Name: "Alice", CheckinDate: "2024-01-20", CheckoutDate: "2024-01-22", Guests: 1},
	}

	reply := turn(t, c, s, "hmm let me think")
	if s.Step != models.StepConfirm {
		t.Errorf("step = %s, want confirm", s.Step)
	}
	if reply.Complete || reply.Booking != nil {
		t.Error("re-prompt must not complete or carry a booking")
	}
}

func TestExtractionFailureDoesNotAdvance(t *testing.T) {
	c, _ := newConversation(t)
	s := &models.Session{ID: "s", Step: models.StepGuests, Data: models.BookingDraft{Name: "Alice", CheckinDate: "2024-01-20", CheckoutDate: "2024-01-22"}}

	turn(t, c, s, "a dozen")
	if s.Step != models.StepGuests {
		t.Errorf("step = %s, want guests", s.Step)
	}
	if s.Data.Guests != 0 {
		t.Errorf("guests = %d, want unset", s.Data.Guests)
	}
}

type failingStore struct {
	storage.Store
}

func (f *failingStore) CreateBooking(string, models.BookingDraft) (*models.Booking, error) {
	return nil, errors.New("sink unavailable")
}

func TestSinkFailureKeepsSessionInConfirm(t *testing.T) {
	c := NewConversationService(&failingStore{}, zerolog.Nop())
	s := &models.Session{
		ID:   "s",
		Step: models.StepConfirm,
		Data: models.BookingDraft{Name: "Alice", CheckinDate: "2024-01-20", CheckoutDate: "2024-01-22", Guests: 2},
	}

	_, err := c.ProcessTurn(s, "confirm")
	if err == nil {
		t.Fatal("expected a sink error")
	}
	if s.Step != models.StepConfirm {
		t.Errorf("step = %s, want confirm (retryable)", s.Step)
	}
	if s.Data.Name != "Alice" {
		t.Error("draft must stay intact after a sink failure")
	}
}

func TestCompletedSessionRejectsFurtherTurns(t *testing.T) {
	c, _ := newConversation(t)
	s := &models.Session{ID: "s", Step: models.StepComplete}

	_, err := c.ProcessTurn(s, "hello again")
	if !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("err = %v, want ErrSessionComplete", err)
	}
}
