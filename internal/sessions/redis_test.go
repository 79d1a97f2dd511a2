package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/roomlane/concierge-backend/internal/models"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisStore(mr.Addr(), "", 0, time.Hour)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	if _, found, err := store.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("get missing = (found=%v, err=%v), want miss", found, err)
	}

	breakfast := true
	s := &models.Session{
		ID:   "abc",
		Step: models.StepPayment,
		Data: models.BookingDraft{
			Name: "Alice", CheckinDate: "2024-01-20", CheckoutDate: "2024-01-22",
			Guests: 2, Breakfast: &breakfast,
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := store.Get(ctx, "abc")
	if err != nil || !found {
		t.Fatalf("get = (found=%v, err=%v), want hit", found, err)
	}
	if got.Step != models.StepPayment || got.Data.Guests != 2 {
		t.Errorf("unexpected session: %+v", got)
	}
	if got.Data.Breakfast == nil || !*got.Data.Breakfast {
		t.Error("breakfast flag lost in serialization")
	}

	if err := store.Delete(ctx, "abc"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := store.Get(ctx, "abc"); found {
		t.Error("session survived delete")
	}
}

func TestRedisStoreAppliesTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(mr.Addr(), "", 0, time.Minute)
	ctx := context.Background()

	if err := store.Save(ctx, &models.Session{ID: "abc"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	mr.FastForward(2 * time.Minute)
	if _, found, _ := store.Get(ctx, "abc"); found {
		t.Error("session outlived its TTL")
	}
}
