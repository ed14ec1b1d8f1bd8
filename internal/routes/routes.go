package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/para-labs/para-backend/internal/config"
	"github.com/para-labs/para-backend/internal/handlers"
	"github.com/para-labs/para-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	challengeHandler *handlers.ChallengeHandler,
	coinsHandler *handlers.CoinsHandler,
	coachHandler *handlers.CoachHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth routes are public with a stricter limit. Logout and me never
	// 401 (logout is idempotent, me degrades to a null user).
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", authHandler.Me)

	// Everything else requires a session.
	session := middleware.SessionProtected(cfg)

	api.Post("/challenges", session, challengeHandler.Start)
	api.Get("/challenges/active", session, challengeHandler.Active)
	api.Get("/challenges/active/today", session, challengeHandler.Today)
	api.Post("/challenges/advance", session, challengeHandler.Advance)
	api.Post("/tasks/:id/complete", session, challengeHandler.CompleteTask)

	api.Get("/coins/transactions", session, coinsHandler.Transactions)
	api.Get("/rewards", session, coinsHandler.Rewards)
	api.Post("/rewards/:id/redeem", session, coinsHandler.Redeem)

	api.Post("/coach/chat", session, coachHandler.Chat)
}
