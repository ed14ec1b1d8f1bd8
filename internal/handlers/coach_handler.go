package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/para-labs/para-backend/internal/dto"
	"github.com/para-labs/para-backend/internal/middleware"
	"github.com/para-labs/para-backend/internal/services"
)

type CoachHandler struct {
	coachService *services.CoachService
}

func NewCoachHandler(coachService *services.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// Chat always answers 200 with a reply string; collaborator failures are
// absorbed by the service's fallback text.
func (h *CoachHandler) Chat(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Message is required",
		})
	}

	reply := h.coachService.Respond(userID, req.Message)
	return c.JSON(dto.ChatResponse{Reply: reply})
}
