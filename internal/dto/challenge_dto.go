package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/para-labs/para-backend/internal/models"
)

type StartChallengeRequest struct {
	Goal string `json:"goal"`
}

type ChallengeResponse struct {
	ID         uuid.UUID     `json:"id"`
	UserID     uuid.UUID     `json:"user_id"`
	Title      string        `json:"title"`
	Goal       string        `json:"goal"`
	StartDate  time.Time     `json:"start_date"`
	EndDate    time.Time     `json:"end_date"`
	CurrentDay int           `json:"current_day"`
	TotalDays  int           `json:"total_days"`
	Tasks      []models.Task `json:"tasks"`
	IsActive   bool          `json:"is_active"`
	CreatedAt  time.Time     `json:"created_at"`
}

type TodaysTasksResponse struct {
	Day   int           `json:"day"`
	Tasks []models.Task `json:"tasks"`
}

func NewChallengeResponse(ch *models.Challenge) ChallengeResponse {
	return ChallengeResponse{
		ID:         ch.ID,
		UserID:     ch.UserID,
		Title:      ch.Title,
		Goal:       ch.Goal,
		StartDate:  ch.StartDate,
		EndDate:    ch.EndDate,
		CurrentDay: ch.CurrentDay,
		TotalDays:  ch.TotalDays,
		Tasks:      ch.Tasks,
		IsActive:   ch.IsActive,
		CreatedAt:  ch.CreatedAt,
	}
}
