package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// The task list survives a trip through its JSON column encoding with
// days, titles, and completion state intact.
func TestChallengeTasksRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	tasks := []Task{
		{ID: "task-1-0", Day: 1, Title: "Stretch for ten minutes", Completed: true, CompletedAt: &now},
		{ID: "task-1-1", Day: 1, Title: "Write down one intention"},
		{ID: "task-2-0", Day: 2, Title: "Go for a walk"},
	}

	ch := Challenge{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Title:      "41-Day Transformation",
		Goal:       "feel better in the mornings",
		CurrentDay: 1,
		TotalDays:  41,
		Tasks:      datatypes.NewJSONSlice(tasks),
		IsActive:   true,
	}

	raw, err := json.Marshal(ch)
	require.NoError(t, err)

	var decoded Challenge
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, ch.Goal, decoded.Goal)
	require.Len(t, decoded.Tasks, len(tasks))
	for i, task := range decoded.Tasks {
		assert.Equal(t, tasks[i].ID, task.ID)
		assert.Equal(t, tasks[i].Day, task.Day)
		assert.Equal(t, tasks[i].Title, task.Title)
		assert.Equal(t, tasks[i].Completed, task.Completed)
	}
	require.NotNil(t, decoded.Tasks[0].CompletedAt)
	assert.True(t, decoded.Tasks[0].CompletedAt.Equal(now))
	assert.Nil(t, decoded.Tasks[1].CompletedAt)
}
