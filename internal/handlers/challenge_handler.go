package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/para-labs/para-backend/internal/dto"
	"github.com/para-labs/para-backend/internal/middleware"
	"github.com/para-labs/para-backend/internal/services"
)

type ChallengeHandler struct {
	challengeService *services.ChallengeService
}

func NewChallengeHandler(challengeService *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

func (h *ChallengeHandler) Start(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.StartChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	challenge, err := h.challengeService.StartChallenge(userID, req.Goal)
	if err != nil {
		if errors.Is(err, services.ErrChallengeActive) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewChallengeResponse(challenge))
}

func (h *ChallengeHandler) Active(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	challenge, err := h.challengeService.GetActiveChallenge(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load challenge",
		})
	}
	if challenge == nil {
		return c.JSON(nil)
	}

	return c.JSON(dto.NewChallengeResponse(challenge))
}

func (h *ChallengeHandler) Today(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	day, tasks, err := h.challengeService.TodaysTasks(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load tasks",
		})
	}

	return c.JSON(dto.TodaysTasksResponse{Day: day, Tasks: tasks})
}

func (h *ChallengeHandler) CompleteTask(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	taskID := c.Params("id")
	if taskID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Task id is required",
		})
	}

	if err := h.challengeService.CompleteTask(userID, taskID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to complete task",
		})
	}

	return c.JSON(fiber.Map{"message": "Task completed"})
}

func (h *ChallengeHandler) Advance(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	challenge, err := h.challengeService.AdvanceDay(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to advance challenge",
		})
	}
	if challenge == nil {
		return c.JSON(nil)
	}

	return c.JSON(dto.NewChallengeResponse(challenge))
}
