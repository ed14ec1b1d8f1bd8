package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TransactionEarned = "earned"
	TransactionSpent  = "spent"
)

// Transaction is an append-only ledger entry. Rows are inserted in the
// same database transaction as the balance update they describe and are
// never updated or deleted.
type Transaction struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string    `gorm:"size:10;not null" json:"type"`
	Amount    int       `gorm:"not null" json:"amount"`
	Reason    string    `gorm:"size:255" json:"reason"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
}
