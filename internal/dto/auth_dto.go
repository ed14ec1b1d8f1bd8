package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/para-labs/para-backend/internal/models"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the redacted user view: everything a client may see,
// never the password hash.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Coins       int       `json:"coins"`
	Level       int       `json:"level"`
	LoginStreak int       `json:"login_streak"`
	LastLogin   time.Time `json:"last_login"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MeResponse carries a nil user rather than an error when no session
// resolves.
type MeResponse struct {
	User *UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Coins:       u.Coins,
		Level:       u.Level,
		LoginStreak: u.LoginStreak,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
	}
}
