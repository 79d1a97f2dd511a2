package routes

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/roomlane/concierge-backend/internal/handlers"
	"github.com/roomlane/concierge-backend/internal/observability"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	app *fiber.App,
	chat *handlers.ChatHandler,
	bookings *handlers.BookingHandler,
	health *handlers.HealthHandler,
	metrics *prometheus.Registry,
) {
	app.Get("/", health.HandleRoot)
	app.Get("/health", health.HandleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(observability.MetricsHandler(metrics)))

	api := app.Group("/api")
	api.Post("/chat", chat.HandleChat)

	b := api.Group("/bookings")
	b.Get("/", bookings.ListBookings)
	b.Get("/:id", bookings.GetBooking)
}
