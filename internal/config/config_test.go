package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("missing DATABASE_URL is an error", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		if _, err := Load(); err == nil {
			t.Fatal("expected error when DATABASE_URL is unset")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/wallet")
		t.Setenv("PORT", "")
		t.Setenv("RATE_LIMIT_MAX", "")
		t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "")
		t.Setenv("ENV", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Port != "5001" {
			t.Errorf("Port = %q, want 5001", cfg.Port)
		}
		if cfg.RateLimitMax != 100 {
			t.Errorf("RateLimitMax = %d, want 100", cfg.RateLimitMax)
		}
		if cfg.RateLimitWindow != time.Minute {
			t.Errorf("RateLimitWindow = %s, want 1m", cfg.RateLimitWindow)
		}
		if cfg.CronEnabled() {
			t.Error("cron should be disabled outside production")
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/wallet")
		t.Setenv("PORT", "9090")
		t.Setenv("RATE_LIMIT_MAX", "5")
		t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")
		t.Setenv("ENV", "Production")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Port != "9090" {
			t.Errorf("Port = %q, want 9090", cfg.Port)
		}
		if cfg.RateLimitMax != 5 {
			t.Errorf("RateLimitMax = %d, want 5", cfg.RateLimitMax)
		}
		if cfg.RateLimitWindow != 30*time.Second {
			t.Errorf("RateLimitWindow = %s, want 30s", cfg.RateLimitWindow)
		}
		if !cfg.CronEnabled() {
			t.Error("cron should auto-start in production")
		}
	})

	t.Run("invalid rate limit values are errors", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/wallet")

		t.Setenv("RATE_LIMIT_MAX", "zero")
		if _, err := Load(); err == nil {
			t.Error("expected error for non-numeric RATE_LIMIT_MAX")
		}

		t.Setenv("RATE_LIMIT_MAX", "-1")
		if _, err := Load(); err == nil {
			t.Error("expected error for negative RATE_LIMIT_MAX")
		}

		t.Setenv("RATE_LIMIT_MAX", "")
		t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "0")
		if _, err := Load(); err == nil {
			t.Error("expected error for zero RATE_LIMIT_WINDOW_SECONDS")
		}
	})
}
