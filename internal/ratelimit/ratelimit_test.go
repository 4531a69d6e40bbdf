package ratelimit

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestMemoryCounter(t *testing.T) {
	ctx := context.Background()

	t.Run("counts within a window", func(t *testing.T) {
		c := NewMemoryCounter()
		for want := int64(1); want <= 3; want++ {
			got, err := c.Incr(ctx, "1.2.3.4", time.Minute)
			if err != nil {
				t.Fatalf("Incr failed: %v", err)
			}
			if got != want {
				t.Errorf("count = %d, want %d", got, want)
			}
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		c := NewMemoryCounter()
		if _, err := c.Incr(ctx, "a", time.Minute); err != nil {
			t.Fatalf("Incr failed: %v", err)
		}
		got, err := c.Incr(ctx, "b", time.Minute)
		if err != nil {
			t.Fatalf("Incr failed: %v", err)
		}
		if got != 1 {
			t.Errorf("fresh key count = %d, want 1", got)
		}
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		c := NewMemoryCounter()
		current := time.Now()
		c.now = func() time.Time { return current }

		if _, err := c.Incr(ctx, "a", time.Minute); err != nil {
			t.Fatalf("Incr failed: %v", err)
		}
		if _, err := c.Incr(ctx, "a", time.Minute); err != nil {
			t.Fatalf("Incr failed: %v", err)
		}

		current = current.Add(2 * time.Minute)
		got, err := c.Incr(ctx, "a", time.Minute)
		if err != nil {
			t.Fatalf("Incr failed: %v", err)
		}
		if got != 1 {
			t.Errorf("count after expiry = %d, want 1", got)
		}
	})
}

type failingCounter struct{}

func (failingCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	return 0, errors.New("counter unreachable")
}

func newGateApp(counter Counter, max int64) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			return c.SendStatus(code)
		},
	})
	app.Use(New(Config{Counter: counter, Max: max, Window: time.Minute}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestGate(t *testing.T) {
	t.Run("admits requests under the limit", func(t *testing.T) {
		app := newGateApp(NewMemoryCounter(), 2)
		for i := 0; i < 2; i++ {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("request %d returned %d, want 200", i+1, resp.StatusCode)
			}
		}
	})

	t.Run("rejects requests over the limit with 429", func(t *testing.T) {
		app := newGateApp(NewMemoryCounter(), 1)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()

		resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusTooManyRequests {
			t.Errorf("over-limit request returned %d, want 429", resp.StatusCode)
		}
	})

	t.Run("counter failure is fail-closed", func(t *testing.T) {
		app := newGateApp(failingCounter{}, 100)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusInternalServerError {
			t.Errorf("counter failure returned %d, want 500", resp.StatusCode)
		}
	})
}
