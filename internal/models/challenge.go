package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Task is one actionable item inside a challenge day. Tasks are embedded
// in the challenge row as JSONB, preserving the document layout the data
// model was designed around. A task flips completed=false -> true exactly
// once; there is no un-completion path.
type Task struct {
	ID          string     `json:"id"`
	Day         int        `json:"day"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Challenge is a user's 41-day transformation plan. At most one challenge
// per user is active at a time; the challenge service enforces this on
// creation.
type Challenge struct {
	ID         uuid.UUID                 `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID                 `gorm:"type:uuid;not null;index" json:"user_id"`
	Title      string                    `gorm:"size:100;not null" json:"title"`
	Goal       string                    `gorm:"type:text;not null" json:"goal"`
	StartDate  time.Time                 `json:"start_date"`
	EndDate    time.Time                 `json:"end_date"`
	CurrentDay int                       `gorm:"not null;default:1" json:"current_day"`
	TotalDays  int                       `gorm:"not null;default:41" json:"total_days"`
	Tasks      datatypes.JSONSlice[Task] `gorm:"type:jsonb" json:"tasks"`
	IsActive   bool                      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt  time.Time                 `json:"created_at"`
	UpdatedAt  time.Time                 `json:"updated_at"`
	DeletedAt  gorm.DeletedAt            `gorm:"index" json:"-"`
}
