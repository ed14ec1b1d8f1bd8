package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/para-labs/para-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrRewardNotFound    = errors.New("reward not found")
	ErrInsufficientCoins = errors.New("not enough coins")
)

// Level thresholds. Levels only move up.
const (
	level2Coins = 200
	level3Coins = 500
	maxLevel    = 3
)

// Reward is a fixed catalog entry redeemable for coins.
type Reward struct {
	ID          int
	Title       string
	Description string
	Cost        int
}

var Rewards = []Reward{
	{ID: 1, Title: "Premium Meditations", Description: "Unlock exclusive guided meditations", Cost: 50},
	{ID: 2, Title: "Community Access", Description: "Join the PARA community forums", Cost: 200},
	{ID: 3, Title: "VIP Challenges", Description: "Access to exclusive transformation challenges", Cost: 300},
	{ID: 4, Title: "Custom AI Coaching", Description: "Personalized AI coaching responses", Cost: 150},
	{ID: 5, Title: "Advanced Workout Sessions", Description: "High-intensity workout programs", Cost: 100},
	{ID: 6, Title: "Live Workshop Access", Description: "Join exclusive live workshops", Cost: 500},
	{ID: 7, Title: "Knowledge Library", Description: "Access to premium knowledge content", Cost: 250},
	{ID: 8, Title: "UI Customization", Description: "Customize your PARA experience", Cost: 400},
}

// LedgerService is the single authority over coin balances. Every
// balance change goes through AdjustCoins, which couples the balance
// update, the transaction row, and the level check in one database
// transaction.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// AdjustCoins moves a user's balance by amount (negative to spend),
// records the transaction, and re-evaluates the level. Returns the new
// balance.
func (s *LedgerService) AdjustCoins(userID uuid.UUID, amount int, reason string) (int, error) {
	var balance int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		b, err := adjustCoins(tx, userID, amount, reason)
		balance = b
		return err
	})
	return balance, err
}

// adjustCoins runs inside an open transaction. The row lock on the user
// keeps concurrent adjustments from losing updates.
func adjustCoins(tx *gorm.DB, userID uuid.UUID, amount int, reason string) (int, error) {
	var user models.User
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to load user: %w", err)
	}

	newBalance := user.Coins + amount

	txn := models.Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      TransactionKind(amount),
		Amount:    amount,
		Reason:    reason,
		Timestamp: time.Now(),
	}
	if err := tx.Create(&txn).Error; err != nil {
		return 0, fmt.Errorf("failed to record transaction: %w", err)
	}

	updates := map[string]interface{}{"coins": newBalance}
	if lvl := NextLevel(newBalance, user.Level); lvl != user.Level {
		updates["level"] = lvl
	}
	if err := tx.Model(&user).Updates(updates).Error; err != nil {
		return 0, fmt.Errorf("failed to update balance: %w", err)
	}

	return newBalance, nil
}

// TransactionKind derives the ledger entry type from the sign of the
// amount.
func TransactionKind(amount int) string {
	if amount > 0 {
		return models.TransactionEarned
	}
	return models.TransactionSpent
}

// NextLevel applies the coin thresholds to the current level. The 500
// check runs first so a single large award can jump straight to level 3.
// Levels never go down.
func NextLevel(coins, level int) int {
	if coins >= level3Coins && level < maxLevel {
		return maxLevel
	}
	if coins >= level2Coins && level < 2 {
		return 2
	}
	return level
}

// ListTransactions returns the user's newest transactions, default 10.
func (s *LedgerService) ListTransactions(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	var transactions []models.Transaction
	err := s.db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}

// RewardByID looks up a catalog entry.
func RewardByID(id int) (*Reward, error) {
	for i := range Rewards {
		if Rewards[i].ID == id {
			return &Rewards[i], nil
		}
	}
	return nil, ErrRewardNotFound
}

// Redeem spends coins on a reward. The balance check and the spend share
// one transaction so a user cannot redeem past zero.
func (s *LedgerService) Redeem(userID uuid.UUID, rewardID int) (int, error) {
	reward, err := RewardByID(rewardID)
	if err != nil {
		return 0, err
	}

	var balance int
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to load user: %w", err)
		}
		if user.Coins < reward.Cost {
			return ErrInsufficientCoins
		}
		b, err := adjustCoins(tx, userID, -reward.Cost, fmt.Sprintf("Unlocked %s", reward.Title))
		balance = b
		return err
	})
	return balance, err
}
