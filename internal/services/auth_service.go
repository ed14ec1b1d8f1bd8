package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/para-labs/para-backend/internal/config"
	"github.com/para-labs/para-backend/internal/dto"
	"github.com/para-labs/para-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// One message for both unknown email and bad password, so the
	// endpoint cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const (
	signupBonus     = 50
	dailyLoginBonus = 5

	signupBonusReason = "Account creation bonus"
	dailyBonusReason  = "Daily login bonus"
)

type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	ledger *LedgerService
}

func NewAuthService(db *gorm.DB, cfg *config.Config, ledger *LedgerService) *AuthService {
	return &AuthService{db: db, cfg: cfg, ledger: ledger}
}

// Register creates an account, credits the signup bonus through the
// ledger, and issues a session token.
func (s *AuthService) Register(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		return nil, errors.New("name and email required, password must be at least 8 characters")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := models.User{
		ID:            uuid.New(),
		Name:          req.Name,
		Email:         req.Email,
		Password:      string(hash),
		Coins:         0,
		Level:         1,
		LoginStreak:   1,
		LastLogin:     now,
		LastLoginDate: CalendarDay(now),
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	balance, err := s.ledger.AdjustCoins(user.ID, signupBonus, signupBonusReason)
	if err != nil {
		return nil, fmt.Errorf("failed to credit signup bonus: %w", err)
	}
	user.Coins = balance

	token, err := s.IssueSession(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(&user)}, nil
}

// Login verifies credentials, awards the daily bonus on the first login
// of a calendar day, and issues a session token.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	today := CalendarDay(now)

	if user.LastLoginDate != today {
		balance, err := s.ledger.AdjustCoins(user.ID, dailyLoginBonus, dailyBonusReason)
		if err != nil {
			return nil, fmt.Errorf("failed to credit daily bonus: %w", err)
		}
		user.Coins = balance
		user.LoginStreak++
		user.LastLogin = now
		user.LastLoginDate = today

		err = s.db.Model(&user).Updates(map[string]interface{}{
			"login_streak":    user.LoginStreak,
			"last_login":      now,
			"last_login_date": today,
		}).Error
		if err != nil {
			return nil, fmt.Errorf("failed to update login info: %w", err)
		}
	} else {
		user.LastLogin = now
		if err := s.db.Model(&user).UpdateColumn("last_login", now).Error; err != nil {
			return nil, fmt.Errorf("failed to update login time: %w", err)
		}
	}

	token, err := s.IssueSession(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(&user)}, nil
}

// CurrentUser resolves a user id to the redacted view. Any failure
// degrades to nil rather than an error.
func (s *AuthService) CurrentUser(userID uuid.UUID) *dto.UserResponse {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Warn("failed to resolve current user", "user_id", userID.String(), "error", err)
		}
		return nil
	}
	resp := dto.NewUserResponse(&user)
	return &resp
}

// IssueSession signs a session token carrying the user id.
func (s *AuthService) IssueSession(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.cfg.SessionExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// CalendarDay collapses a timestamp to its calendar day. Two logins on
// the same day compare equal; the daily bonus fires when they differ.
func CalendarDay(t time.Time) string {
	return t.Format("2006-01-02")
}
