package services

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/para-labs/para-backend/internal/models"
	"gorm.io/gorm"
)

const (
	coachFallback    = "I'm having trouble connecting right now. Please try again in a moment."
	coachUserMissing = "I'm sorry, I couldn't retrieve your user information. Please try again later."
)

// CoachService answers chat messages with the user's current state as
// context. Replies are not persisted; chat history is the client's
// concern.
type CoachService struct {
	db         *gorm.DB
	challenges *ChallengeService
	gemini     *GeminiClient
}

func NewCoachService(db *gorm.DB, challenges *ChallengeService, gemini *GeminiClient) *CoachService {
	return &CoachService{db: db, challenges: challenges, gemini: gemini}
}

// Respond builds the coaching context and forwards the message. Failures
// never surface as errors; the caller always gets a string to display.
func (s *CoachService) Respond(userID uuid.UUID, message string) string {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		slog.Warn("coach could not load user", "user_id", userID.String(), "error", err)
		return coachUserMissing
	}

	challenge, err := s.challenges.GetActiveChallenge(userID)
	if err != nil {
		slog.Warn("coach could not load challenge", "user_id", userID.String(), "error", err)
		challenge = nil
	}

	reply, err := s.gemini.GenerateContent(BuildCoachContext(&user, challenge), message)
	if err != nil {
		slog.Warn("coach reply failed", "user_id", userID.String(), "error", err)
		return coachFallback
	}
	return reply
}

// BuildCoachContext renders the system context: who the user is, where
// they stand in their challenge, and what today's tasks look like.
func BuildCoachContext(user *models.User, ch *models.Challenge) string {
	goalLine := "No active challenge"
	progress := "You haven't started a challenge yet."
	tasksInfo := "You don't have any active tasks today."

	if ch != nil {
		goalLine = "Goal: " + ch.Goal

		total := len(ch.Tasks)
		completed := 0
		for _, t := range ch.Tasks {
			if t.Completed {
				completed++
			}
		}
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(completed) / float64(total) * 100))
		}
		progress = fmt.Sprintf(
			"You're on day %d of your %d-day challenge (%d%% complete). You've completed %d out of %d total tasks.",
			ch.CurrentDay, ch.TotalDays, pct, completed, total)

		today := TasksForDay(ch.Tasks, ch.CurrentDay)
		if len(today) > 0 {
			var b strings.Builder
			b.WriteString("Today's tasks:\n")
			for i, t := range today {
				status := "Not completed yet"
				if t.Completed {
					status = "Completed"
				}
				fmt.Fprintf(&b, "%d. %s - %s\n", i+1, t.Title, status)
			}
			tasksInfo = strings.TrimRight(b.String(), "\n")
		}
	}

	return fmt.Sprintf(`You are an AI coach for the PARA transformation platform. Your name is PARA Coach.

USER INFORMATION:
Name: %s
Level: %d
Coins: %d

CHALLENGE INFORMATION:
%s
%s

TASKS INFORMATION:
%s

Your role is to:
1. Provide guidance specifically related to the user's goal and tasks
2. Be encouraging and supportive
3. Offer practical advice for completing tasks
4. Acknowledge progress and achievements
5. Keep responses focused on the transformation journey

DO NOT:
- Discuss topics unrelated to the user's goals or tasks
- Provide medical advice
- Make promises about specific outcomes

Keep your responses concise, practical, and focused on helping the user achieve their goal.`,
		user.Name, user.Level, user.Coins, goalLine, progress, tasksInfo)
}
