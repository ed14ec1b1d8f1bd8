package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a PARA account. Coins and Level are written only by the ledger
// service; the login streak fields only by the auth service.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Email       string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Coins       int       `gorm:"not null;default:0" json:"coins"`
	Level       int       `gorm:"not null;default:1" json:"level"`
	LoginStreak int       `gorm:"not null;default:1" json:"login_streak"`
	LastLogin   time.Time `json:"last_login"`
	// LastLoginDate is the calendar day ("2006-01-02") of the last login,
	// used to decide whether the daily bonus is due.
	LastLoginDate string         `gorm:"size:10" json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
