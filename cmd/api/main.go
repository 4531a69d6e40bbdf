package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/regis-mugisha/expo-wallet-api/internal/config"
	"github.com/regis-mugisha/expo-wallet-api/internal/cron"
	"github.com/regis-mugisha/expo-wallet-api/internal/metrics"
	"github.com/regis-mugisha/expo-wallet-api/internal/middleware"
	"github.com/regis-mugisha/expo-wallet-api/internal/ratelimit"
	"github.com/regis-mugisha/expo-wallet-api/internal/router"
	"github.com/regis-mugisha/expo-wallet-api/internal/transactions"
	"github.com/regis-mugisha/expo-wallet-api/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("error creating connection pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := transactions.NewRepo(pool)

	// Schema must exist before the listener binds; serving traffic against a
	// missing table is worse than not starting.
	if err := repo.EnsureSchema(ctx); err != nil {
		slog.Error("error initializing database", "error", err)
		os.Exit(1)
	}
	slog.Info("database initialized")

	counter, err := buildCounter(cfg)
	if err != nil {
		slog.Error("error connecting rate counter", "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal server error."

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"message": message})
		},
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(metrics.Middleware())

	gate := ratelimit.New(ratelimit.Config{
		Counter: counter,
		Max:     int64(cfg.RateLimitMax),
		Window:  cfg.RateLimitWindow,
	})

	r := &router.Router{
		Transactions: transactions.NewHandler(repo),
		RateGate:     gate,
	}
	r.RegisterRoutes(app)

	if cfg.CronEnabled() && cfg.APIURL != "" {
		job := cron.NewJob(strings.TrimSuffix(cfg.APIURL, "/") + "/api/health")
		job.Start()
		defer job.Stop()
	}

	slog.Info("server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func buildCounter(cfg *config.Config) (ratelimit.Counter, error) {
	if cfg.RedisURL == "" {
		slog.Warn("REDIS_URL not set, using in-process rate counter")
		return ratelimit.NewMemoryCounter(), nil
	}
	return ratelimit.NewRedisCounter(cfg.RedisURL)
}
