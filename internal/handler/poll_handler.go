package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/mattear/waitlist-watch/internal/service"
)

// PollHandler exposes the cron trigger endpoint.
type PollHandler struct {
	poll *service.PollService
}

// NewPollHandler creates a new poll handler.
func NewPollHandler(poll *service.PollService) *PollHandler {
	return &PollHandler{poll: poll}
}

// Register sets up the trigger route.
func (h *PollHandler) Register(router fiber.Router) {
	router.Get("/poll", h.Trigger)
}

// Trigger runs one poll cycle and responds with the stored snapshot.
func (h *PollHandler) Trigger(c fiber.Ctx) error {
	snapshot, err := h.poll.Poll(c.Context())
	if err != nil {
		slog.Error("poll failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"ok":    false,
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ok":     true,
		"stored": snapshot,
	})
}
