package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/mattear/waitlist-watch/internal/adapter/store"
	"github.com/mattear/waitlist-watch/internal/adapter/upstream"
	"github.com/mattear/waitlist-watch/internal/handler"
	"github.com/mattear/waitlist-watch/internal/middleware"
	"github.com/mattear/waitlist-watch/internal/service"
	"github.com/mattear/waitlist-watch/pkg/config"

	_ "github.com/lib/pq"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("🚀 Starting Waitlist Watch",
		"port", cfg.Port,
		"upstream", cfg.UpstreamURL,
		"cron_auth_enabled", cfg.CronSecret != "",
	)

	// ── Database ─────────────────────────────────────────────────────────
	pgStore, err := store.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pgStore.Close()

	if err := pgStore.EnsureSchema(context.Background()); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	// ── Adapters ─────────────────────────────────────────────────────────
	signupClient := upstream.NewTRPCClient(upstream.ClientConfig{
		URL:     cfg.UpstreamURL,
		Source:  cfg.TRPCSource,
		Timeout: cfg.UpstreamTimeout,
	})

	// ── Services ─────────────────────────────────────────────────────────
	pollService := service.NewPollService(signupClient, pgStore, cfg.SignupEmail)
	statusService := service.NewStatusService(pgStore, cfg.StatusCacheTTL)

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods: []string{"GET", "OPTIONS"},
	}))

	// ── Public Routes ────────────────────────────────────────────────────
	statusHandler := handler.NewStatusHandler(statusService)
	statusHandler.Register(app)

	// Health check
	app.Get("/api/v1/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"app":     cfg.AppName,
			"version": "1.0.0",
		})
	})

	// ── Cron Trigger ─────────────────────────────────────────────────────
	cron := app.Group("/api/cron", middleware.CronAuth(cfg.CronSecret))

	pollHandler := handler.NewPollHandler(pollService)
	pollHandler.Register(cron)

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
