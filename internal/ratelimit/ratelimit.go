// Package ratelimit admits or rejects requests based on a per-client counter
// over a fixed time window. Counting state lives in the injected Counter,
// normally Redis, so nothing is shared in-process between replicas.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Counter increments the request count for key within the current window and
// returns the count after the increment.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Config tunes the gate middleware.
type Config struct {
	Counter Counter
	// Max is the number of requests allowed per window per client.
	Max int64
	// Window is the fixed counting window.
	Window time.Duration
}

// New returns the gate middleware. Requests over the limit get 429 before any
// handler runs. A counter failure is fail-closed: it is logged and the
// request is rejected with 500.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := cfg.Counter.Incr(c.UserContext(), c.IP(), cfg.Window)
		if err != nil {
			slog.Error("rate counter unavailable", "ip", c.IP(), "error", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal server error.")
		}

		if count > cfg.Max {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests, please try again later.",
			})
		}

		return c.Next()
	}
}
