package services

import (
	"testing"
	"time"

	"github.com/para-labs/para-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func coachUser() *models.User {
	return &models.User{Name: "Ada", Level: 2, Coins: 230}
}

func TestBuildCoachContext_NoChallenge(t *testing.T) {
	ctx := BuildCoachContext(coachUser(), nil)

	assert.Contains(t, ctx, "Name: Ada")
	assert.Contains(t, ctx, "Level: 2")
	assert.Contains(t, ctx, "Coins: 230")
	assert.Contains(t, ctx, "No active challenge")
	assert.Contains(t, ctx, "You haven't started a challenge yet.")
	assert.Contains(t, ctx, "You don't have any active tasks today.")
	assert.Contains(t, ctx, "PARA Coach")
}

func TestBuildCoachContext_WithChallenge(t *testing.T) {
	now := time.Now()
	ch := &models.Challenge{
		Goal:       "learn the cello",
		CurrentDay: 2,
		TotalDays:  ChallengeDays,
		Tasks: datatypes.NewJSONSlice([]models.Task{
			{ID: "task-1-0", Day: 1, Title: "Hold the bow", Completed: true, CompletedAt: &now},
			{ID: "task-2-0", Day: 2, Title: "Play open strings", Completed: true, CompletedAt: &now},
			{ID: "task-2-1", Day: 2, Title: "Practice scales"},
		}),
	}

	ctx := BuildCoachContext(coachUser(), ch)

	assert.Contains(t, ctx, "Goal: learn the cello")
	// 2 of 3 tasks, rounded: 67%
	assert.Contains(t, ctx, "day 2 of your 41-day challenge (67% complete)")
	assert.Contains(t, ctx, "completed 2 out of 3 total tasks")
	assert.Contains(t, ctx, "1. Play open strings - Completed")
	assert.Contains(t, ctx, "2. Practice scales - Not completed yet")
	assert.NotContains(t, ctx, "Hold the bow", "yesterday's tasks stay out of the listing")
}

func TestBuildCoachContext_ProgressRounding(t *testing.T) {
	ch := &models.Challenge{
		Goal:       "g",
		CurrentDay: 1,
		TotalDays:  ChallengeDays,
		Tasks: datatypes.NewJSONSlice([]models.Task{
			{ID: "task-1-0", Day: 1, Title: "a", Completed: true},
			{ID: "task-1-1", Day: 1, Title: "b"},
			{ID: "task-1-2", Day: 1, Title: "c"},
		}),
	}

	// 1 of 3 rounds to 33%
	assert.Contains(t, BuildCoachContext(coachUser(), ch), "(33% complete)")
}
