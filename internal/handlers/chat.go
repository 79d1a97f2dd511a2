package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/roomlane/concierge-backend/internal/models"
	"github.com/roomlane/concierge-backend/internal/services"
)

// ChatHandler exposes the dialogue over HTTP.
type ChatHandler struct {
	sessions     *services.SessionManager
	conversation *services.ConversationService
	log          zerolog.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(sessions *services.SessionManager, conversation *services.ConversationService, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		sessions:     sessions,
		conversation: conversation,
		log:          log,
	}
}

// ChatRequest is one inbound guest turn.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse mirrors the turn contract: the booking field is null until
// the completing turn.
type ChatResponse struct {
	Reply     string          `json:"reply"`
	Complete  bool            `json:"complete"`
	Booking   *models.Booking `json:"booking"`
	SessionID string          `json:"session_id"`
}

// HandleChat processes one conversation turn.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Blank turns are rejected before the state machine runs.
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message cannot be empty",
		})
	}

	session, err := h.sessions.Resolve(c.Context(), req.SessionID)
	if err != nil {
		h.log.Error().Err(err).Msg("session resolve failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error. Please try again.",
		})
	}

	unlock := h.sessions.Lock(session.ID)
	defer unlock()

	reply, err := h.conversation.ProcessTurn(session, message)
	if err != nil {
		if errors.Is(err, services.ErrSessionComplete) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":      "This booking is already complete. Please start a new session.",
				"session_id": session.ID,
			})
		}
		h.log.Error().Err(err).Str("session_id", session.ID).Msg("turn failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":      "We couldn't save your booking right now. Please try again.",
			"session_id": session.ID,
		})
	}

	if err := h.sessions.Save(c.Context(), session); err != nil {
		h.log.Error().Err(err).Str("session_id", session.ID).Msg("session save failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":      "Internal server error. Please try again.",
			"session_id": session.ID,
		})
	}

	return c.JSON(ChatResponse{
		Reply:     reply.Text,
		Complete:  reply.Complete,
		Booking:   reply.Booking,
		SessionID: session.ID,
	})
}
