package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/para-labs/para-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// fullPlanJSON builds a syntactically valid plan covering days 1..41.
func fullPlanJSON(t *testing.T, tasksPerDay int) string {
	t.Helper()
	days := make([]planDay, 0, ChallengeDays)
	for d := 1; d <= ChallengeDays; d++ {
		tasks := make([]string, 0, tasksPerDay)
		for i := 0; i < tasksPerDay; i++ {
			tasks = append(tasks, fmt.Sprintf("Do thing %d on day %d", i, d))
		}
		days = append(days, planDay{Day: d, Tasks: tasks})
	}
	b, err := json.Marshal(days)
	require.NoError(t, err)
	return string(b)
}

func TestParsePlan(t *testing.T) {
	t.Run("accepts a full plan", func(t *testing.T) {
		tasks, err := ParsePlan(fullPlanJSON(t, 3))
		require.NoError(t, err)
		assert.Len(t, tasks, ChallengeDays*3)

		days := make(map[int]bool)
		for _, task := range tasks {
			days[task.Day] = true
			assert.False(t, task.Completed)
			assert.Nil(t, task.CompletedAt)
		}
		assert.Len(t, days, ChallengeDays)
		assert.Equal(t, "task-1-0", tasks[0].ID)
	})

	t.Run("accepts a fenced plan", func(t *testing.T) {
		fenced := "```json\n" + fullPlanJSON(t, 4) + "\n```"
		tasks, err := ParsePlan(fenced)
		require.NoError(t, err)
		assert.Len(t, tasks, ChallengeDays*4)
	})

	t.Run("rejects a partial plan", func(t *testing.T) {
		partial := `[{"day": 1, "tasks": ["only one day"]}]`
		_, err := ParsePlan(partial)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 41")
	})

	t.Run("rejects out-of-range days", func(t *testing.T) {
		_, err := ParsePlan(`[{"day": 42, "tasks": ["too far"]}]`)
		assert.Error(t, err)

		_, err = ParsePlan(`[{"day": 0, "tasks": ["too early"]}]`)
		assert.Error(t, err)
	})

	t.Run("rejects duplicate days", func(t *testing.T) {
		text := strings.Replace(fullPlanJSON(t, 3), `"day":2`, `"day":1`, 1)
		_, err := ParsePlan(text)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("rejects an empty day", func(t *testing.T) {
		text := strings.Replace(fullPlanJSON(t, 1), `["Do thing 0 on day 5"]`, `[]`, 1)
		_, err := ParsePlan(text)
		assert.Error(t, err)
	})

	t.Run("rejects prose", func(t *testing.T) {
		_, err := ParsePlan("Here is your plan! Day 1: stretch.")
		assert.Error(t, err)
	})
}

func TestFallbackPlan(t *testing.T) {
	tasks := FallbackPlan("run a marathon")

	require.Len(t, tasks, ChallengeDays*3)

	days := make(map[int]int)
	for _, task := range tasks {
		days[task.Day]++
	}
	require.Len(t, days, ChallengeDays)
	for day := 1; day <= ChallengeDays; day++ {
		assert.Equal(t, 3, days[day], "day %d", day)
	}

	assert.Contains(t, tasks[0].Title, "run a marathon")
	assert.Equal(t, "task-1-0", tasks[0].ID)
	assert.Equal(t, "task-41-2", tasks[len(tasks)-1].ID)
}

func TestTaskID(t *testing.T) {
	assert.Equal(t, "task-1-0", TaskID(1, 0))
	assert.Equal(t, "task-41-3", TaskID(41, 3))
}

func TestTasksForDay(t *testing.T) {
	tasks := []models.Task{
		{ID: "task-1-0", Day: 1},
		{ID: "task-1-1", Day: 1},
		{ID: "task-2-0", Day: 2},
	}

	day1 := TasksForDay(tasks, 1)
	require.Len(t, day1, 2)
	assert.Equal(t, "task-1-0", day1[0].ID)

	assert.Len(t, TasksForDay(tasks, 2), 1)
	assert.Empty(t, TasksForDay(tasks, 3))
}

func challengeOnDay(day int, tasks ...models.Task) *models.Challenge {
	return &models.Challenge{
		CurrentDay: day,
		TotalDays:  ChallengeDays,
		Tasks:      datatypes.NewJSONSlice(tasks),
	}
}

func TestNextDay(t *testing.T) {
	now := time.Now()
	done := models.Task{ID: "task-1-0", Day: 1, Completed: true, CompletedAt: &now}
	open := models.Task{ID: "task-1-1", Day: 1}

	t.Run("does not advance with an incomplete task", func(t *testing.T) {
		_, _, ok := NextDay(challengeOnDay(1, done, open))
		assert.False(t, ok)
	})

	t.Run("does not advance a day with no tasks", func(t *testing.T) {
		_, _, ok := NextDay(challengeOnDay(3, done, open))
		assert.False(t, ok)
	})

	t.Run("advances when the day is complete", func(t *testing.T) {
		other := models.Task{ID: "task-2-0", Day: 2}
		next, finished, ok := NextDay(challengeOnDay(1, done, other))
		require.True(t, ok)
		assert.False(t, finished)
		assert.Equal(t, 2, next)
	})

	t.Run("finishes after the final day", func(t *testing.T) {
		last := models.Task{ID: "task-41-0", Day: ChallengeDays, Completed: true, CompletedAt: &now}
		next, finished, ok := NextDay(challengeOnDay(ChallengeDays, last))
		require.True(t, ok)
		assert.True(t, finished)
		assert.Equal(t, ChallengeDays, next)
	})
}

func TestChallengeDatesSpanFortyOneDays(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, ChallengeDays-1)
	assert.Equal(t, 40*24*time.Hour, end.Sub(start))
}
