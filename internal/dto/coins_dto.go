package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/para-labs/para-backend/internal/models"
)

type TransactionResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Amount    int       `json:"amount"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

type TransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

type RewardResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
}

type RedeemResponse struct {
	Balance int    `json:"balance"`
	Message string `json:"message"`
}

func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		Type:      t.Type,
		Amount:    t.Amount,
		Reason:    t.Reason,
		Timestamp: t.Timestamp,
	}
}
