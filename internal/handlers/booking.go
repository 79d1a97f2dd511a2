package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/roomlane/concierge-backend/internal/models"
	"github.com/roomlane/concierge-backend/internal/storage"
)

// BookingHandler serves committed reservations.
type BookingHandler struct {
	store storage.Store
}

// NewBookingHandler creates a booking handler.
func NewBookingHandler(store storage.Store) *BookingHandler {
	return &BookingHandler{store: store}
}

// GetBooking retrieves a reservation by ID.
func (h *BookingHandler) GetBooking(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Booking ID must be a number",
		})
	}

	booking, err := h.store.GetBooking(uint(id))
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Booking not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve booking",
		})
	}

	return c.JSON(booking)
}

// ListBookings retrieves reservations, optionally filtered by session.
func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	var (
		bookings []*models.Booking
		err      error
	)

	if sessionID := c.Query("session_id"); sessionID != "" {
		bookings, err = h.store.GetBookingsBySession(sessionID)
	} else {
		bookings, err = h.store.GetAllBookings()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve bookings",
		})
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}
