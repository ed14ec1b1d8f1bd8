package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/para-labs/para-backend/internal/dto"
	"github.com/para-labs/para-backend/internal/middleware"
	"github.com/para-labs/para-backend/internal/services"
)

type CoinsHandler struct {
	ledger *services.LedgerService
}

func NewCoinsHandler(ledger *services.LedgerService) *CoinsHandler {
	return &CoinsHandler{ledger: ledger}
}

func (h *CoinsHandler) Transactions(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit := c.QueryInt("limit", 10)
	transactions, err := h.ledger.ListTransactions(userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load transactions",
		})
	}

	resp := dto.TransactionsResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
	}
	for i := range transactions {
		resp.Transactions = append(resp.Transactions, dto.NewTransactionResponse(&transactions[i]))
	}
	return c.JSON(resp)
}

func (h *CoinsHandler) Rewards(c *fiber.Ctx) error {
	rewards := make([]dto.RewardResponse, 0, len(services.Rewards))
	for _, r := range services.Rewards {
		rewards = append(rewards, dto.RewardResponse{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Cost:        r.Cost,
		})
	}
	return c.JSON(rewards)
}

func (h *CoinsHandler) Redeem(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	rewardID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid reward id",
		})
	}

	balance, err := h.ledger.Redeem(userID, rewardID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRewardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInsufficientCoins):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to redeem reward",
			})
		}
	}

	return c.JSON(dto.RedeemResponse{
		Balance: balance,
		Message: fmt.Sprintf("Reward %d unlocked", rewardID),
	})
}
