package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/para-labs/para-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrChallengeActive = errors.New("an active challenge already exists")

const (
	// ChallengeDays is the fixed length of every challenge.
	ChallengeDays = 41

	challengeTitle       = "41-Day Transformation"
	taskCompletionReward = 5
	taskCompletionReason = "Completed task"
)

// ChallengeService owns the challenge lifecycle: plan generation, task
// completion, and day advancement. Task completion rewards route through
// the ledger.
type ChallengeService struct {
	db     *gorm.DB
	ledger *LedgerService
	gemini *GeminiClient
}

func NewChallengeService(db *gorm.DB, ledger *LedgerService, gemini *GeminiClient) *ChallengeService {
	return &ChallengeService{db: db, ledger: ledger, gemini: gemini}
}

// StartChallenge creates a 41-day challenge for the goal. A user can
// hold only one active challenge at a time.
func (s *ChallengeService) StartChallenge(userID uuid.UUID, goal string) (*models.Challenge, error) {
	if goal == "" {
		return nil, errors.New("goal is required")
	}

	var count int64
	if err := s.db.Model(&models.Challenge{}).
		Where("user_id = ? AND is_active = true", userID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check active challenge: %w", err)
	}
	if count > 0 {
		return nil, ErrChallengeActive
	}

	tasks := s.generatePlan(goal)

	start := time.Now()
	challenge := models.Challenge{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      challengeTitle,
		Goal:       goal,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, ChallengeDays-1),
		CurrentDay: 1,
		TotalDays:  ChallengeDays,
		Tasks:      datatypes.NewJSONSlice(tasks),
		IsActive:   true,
	}

	if err := s.db.Create(&challenge).Error; err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	return &challenge, nil
}

// GetActiveChallenge returns the user's active challenge, or nil when
// there is none. Read-only.
func (s *ChallengeService) GetActiveChallenge(userID uuid.UUID) (*models.Challenge, error) {
	var challenge models.Challenge
	err := s.db.Where("user_id = ? AND is_active = true", userID).First(&challenge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load active challenge: %w", err)
	}
	return &challenge, nil
}

// TodaysTasks returns the active challenge's tasks for its current day.
func (s *ChallengeService) TodaysTasks(userID uuid.UUID) (int, []models.Task, error) {
	challenge, err := s.GetActiveChallenge(userID)
	if err != nil || challenge == nil {
		return 0, nil, err
	}
	return challenge.CurrentDay, TasksForDay(challenge.Tasks, challenge.CurrentDay), nil
}

// CompleteTask marks the task done and credits the completion reward.
// A missing challenge or task is a silent no-op, and a task that is
// already completed earns nothing a second time.
func (s *ChallengeService) CompleteTask(userID uuid.UUID, taskID string) error {
	challenge, err := s.GetActiveChallenge(userID)
	if err != nil {
		return err
	}
	if challenge == nil {
		return nil
	}

	now := time.Now()
	tasks := []models.Task(challenge.Tasks)
	completed := false
	for i := range tasks {
		if tasks[i].ID == taskID && !tasks[i].Completed {
			tasks[i].Completed = true
			tasks[i].CompletedAt = &now
			completed = true
			break
		}
	}
	if !completed {
		return nil
	}

	err = s.db.Model(challenge).
		Update("tasks", datatypes.NewJSONSlice(tasks)).Error
	if err != nil {
		return fmt.Errorf("failed to save task completion: %w", err)
	}

	if _, err := s.ledger.AdjustCoins(userID, taskCompletionReward, taskCompletionReason); err != nil {
		return fmt.Errorf("failed to credit task reward: %w", err)
	}
	return nil
}

// AdvanceDay moves the active challenge to the next day once every task
// of the current day is completed. Past the final day the challenge is
// deactivated instead. Returns the challenge after the attempt, nil when
// the user has none.
func (s *ChallengeService) AdvanceDay(userID uuid.UUID) (*models.Challenge, error) {
	challenge, err := s.GetActiveChallenge(userID)
	if err != nil || challenge == nil {
		return nil, err
	}

	next, done, ok := NextDay(challenge)
	if !ok {
		return challenge, nil
	}

	if done {
		if err := s.db.Model(challenge).Update("is_active", false).Error; err != nil {
			return nil, fmt.Errorf("failed to finish challenge: %w", err)
		}
		challenge.IsActive = false
		return challenge, nil
	}

	if err := s.db.Model(challenge).Update("current_day", next).Error; err != nil {
		return nil, fmt.Errorf("failed to advance challenge: %w", err)
	}
	challenge.CurrentDay = next
	return challenge, nil
}

// NextDay decides whether a challenge can advance. ok is false unless the
// current day has at least one task and all of them are completed. done
// reports that the challenge just cleared its final day.
func NextDay(ch *models.Challenge) (next int, done bool, ok bool) {
	today := TasksForDay(ch.Tasks, ch.CurrentDay)
	if len(today) == 0 {
		return ch.CurrentDay, false, false
	}
	for _, t := range today {
		if !t.Completed {
			return ch.CurrentDay, false, false
		}
	}

	next = ch.CurrentDay + 1
	if next > ch.TotalDays {
		return ch.CurrentDay, true, true
	}
	return next, false, true
}

// TasksForDay filters the embedded task list down to one day.
func TasksForDay(tasks []models.Task, day int) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.Day == day {
			out = append(out, t)
		}
	}
	return out
}

// TaskID formats the stable per-challenge task identifier.
func TaskID(day, idx int) string {
	return fmt.Sprintf("task-%d-%d", day, idx)
}

// --- Plan generation ---

type planDay struct {
	Day   int      `json:"day"`
	Tasks []string `json:"tasks"`
}

func (s *ChallengeService) generatePlan(goal string) []models.Task {
	text, err := s.gemini.GenerateContent(planPrompt(goal))
	if err != nil {
		slog.Warn("task generation failed, using fallback plan", "error", err)
		return FallbackPlan(goal)
	}

	tasks, err := ParsePlan(text)
	if err != nil {
		slog.Warn("task plan rejected, using fallback plan", "error", err)
		return FallbackPlan(goal)
	}
	return tasks
}

func planPrompt(goal string) string {
	return fmt.Sprintf(`I need to create a %d-day challenge to help someone achieve this goal: "%s".

Generate a set of daily tasks for all %d days. Each day should have 3-4 specific, actionable tasks that build progressively toward the goal.

Format your response as a JSON array with this structure:
[
  {
    "day": 1,
    "tasks": [
      "Task description 1",
      "Task description 2",
      "Task description 3"
    ]
  }
]

Make sure the tasks are:
1. Specific and actionable
2. Progressively more challenging
3. Directly related to the goal
4. Realistic to complete in a day

Only return the JSON array, nothing else.`, ChallengeDays, goal, ChallengeDays)
}

// ParsePlan decodes the model's JSON plan and rejects anything that does
// not cover days 1..41 exactly once with at least one task each. Any
// violation fails closed; the caller substitutes the fallback plan.
func ParsePlan(text string) ([]models.Task, error) {
	var days []planDay
	if err := json.Unmarshal([]byte(stripFences(text)), &days); err != nil {
		return nil, fmt.Errorf("plan is not a valid JSON array: %w", err)
	}

	seen := make(map[int]bool, ChallengeDays)
	var tasks []models.Task
	for _, d := range days {
		if d.Day < 1 || d.Day > ChallengeDays {
			return nil, fmt.Errorf("day %d out of range", d.Day)
		}
		if seen[d.Day] {
			return nil, fmt.Errorf("duplicate day %d", d.Day)
		}
		if len(d.Tasks) == 0 {
			return nil, fmt.Errorf("day %d has no tasks", d.Day)
		}
		seen[d.Day] = true

		for i, title := range d.Tasks {
			if title == "" {
				return nil, fmt.Errorf("day %d has an empty task", d.Day)
			}
			tasks = append(tasks, models.Task{
				ID:    TaskID(d.Day, i),
				Day:   d.Day,
				Title: title,
			})
		}
	}

	if len(seen) != ChallengeDays {
		return nil, fmt.Errorf("plan covers %d of %d days", len(seen), ChallengeDays)
	}
	return tasks, nil
}

// FallbackPlan is the deterministic plan used whenever generation fails:
// three fixed tasks per day referencing the goal.
func FallbackPlan(goal string) []models.Task {
	tasks := make([]models.Task, 0, ChallengeDays*3)
	for day := 1; day <= ChallengeDays; day++ {
		titles := []string{
			fmt.Sprintf("Spend 15 minutes reflecting on your goal: %s", goal),
			"Take one small action toward your goal",
			"Journal about your progress",
		}
		for i, title := range titles {
			tasks = append(tasks, models.Task{
				ID:    TaskID(day, i),
				Day:   day,
				Title: title,
			})
		}
	}
	return tasks
}
