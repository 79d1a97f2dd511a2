package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler reports service liveness and dependency status.
type HealthHandler struct {
	db          *gorm.DB // nil when running on the memory store
	storageKind string
	sessionKind string
}

// NewHealthHandler creates a health handler. db may be nil.
func NewHealthHandler(db *gorm.DB, storageKind, sessionKind string) *HealthHandler {
	return &HealthHandler{db: db, storageKind: storageKind, sessionKind: sessionKind}
}

// HandleRoot describes the service.
func (h *HealthHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "Concierge Backend API",
		"version": "1.0.0",
		"status":  "healthy",
		"storage": h.storageKind,
		"sessions": fiber.Map{
			"backend": h.sessionKind,
		},
		"endpoints": fiber.Map{
			"chat":     "/api/chat",
			"bookings": "/api/bookings",
			"health":   "/health",
			"metrics":  "/metrics",
		},
	})
}

// HandleHealth is the monitoring probe; it pings the database when one is
// configured.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	status := "healthy"
	statusCode := fiber.StatusOK
	dbHealthy := true

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil || sqlDB.Ping() != nil {
			status = "unhealthy"
			statusCode = fiber.StatusServiceUnavailable
			dbHealthy = false
		}
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status": status,
		"services": fiber.Map{
			"database": dbHealthy,
		},
	})
}
