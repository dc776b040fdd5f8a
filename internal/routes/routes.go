package routes

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/tieubochet/stackstreak/internal/chain"
	"github.com/tieubochet/stackstreak/internal/config"
	"github.com/tieubochet/stackstreak/internal/leaderboard"
	"github.com/tieubochet/stackstreak/internal/middleware"
	"github.com/tieubochet/stackstreak/internal/notification"
	"github.com/tieubochet/stackstreak/internal/record"
	"github.com/tieubochet/stackstreak/internal/streak"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. Missing Postgres
// or Redis backends fall back to in-memory implementations in development.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	var store record.Store
	switch {
	case d.DB != nil:
		pg := record.NewPostgresStore(d.DB)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			return err
		}
		store = pg
	case d.Cache != nil:
		store = record.NewRedisStore(d.Cache)
	default:
		store = record.NewMemoryStore()
	}

	var client chain.Client
	if d.Cfg.ChainURL != "" {
		client = chain.NewHTTPClient(d.Cfg.ChainURL, d.Cfg.Contract(), d.Logger)
	} else {
		client = chain.NewStaticClient()
	}

	notifier := notification.NewLoggerNotifier(d.Logger)
	board := leaderboard.New(notifier)
	submitter := chain.NewLoggerSubmitter(d.Logger)
	streakSvc := streak.NewService(store, client, submitter, board, d.Logger)

	streakHandler := streak.NewHandler(streakSvc)
	boardHandler := leaderboard.NewHandler(board, d.Cfg.LeaderboardSize)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterStreakRoutes(api, streakHandler)
	RegisterLeaderboardRoutes(api, boardHandler)

	return nil
}
