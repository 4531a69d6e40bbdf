// Package config loads process configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	// RedisURL points the rate counter at an external Redis. Empty means the
	// in-process counter is used instead.
	RedisURL        string
	RateLimitMax    int
	RateLimitWindow time.Duration

	Env string

	// APIURL is the base URL the keep-warm job pings.
	APIURL string
}

const (
	defaultPort            = "5001"
	defaultRateLimitMax    = 100
	defaultRateLimitWindow = time.Minute
)

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            defaultPort,
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:        strings.TrimSpace(os.Getenv("REDIS_URL")),
		RateLimitMax:    defaultRateLimitMax,
		RateLimitWindow: defaultRateLimitWindow,
		Env:             strings.ToLower(strings.TrimSpace(os.Getenv("ENV"))),
		APIURL:          strings.TrimSpace(os.Getenv("API_URL")),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Port = v
	}

	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_MAX")); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, errors.New("RATE_LIMIT_MAX must be a positive integer")
		}
		cfg.RateLimitMax = parsed
	}

	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_WINDOW_SECONDS")); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, errors.New("RATE_LIMIT_WINDOW_SECONDS must be a positive integer")
		}
		cfg.RateLimitWindow = time.Duration(parsed) * time.Second
	}

	return cfg, nil
}

// CronEnabled reports whether the keep-warm job should start automatically.
func (c *Config) CronEnabled() bool {
	return c.Env == "production"
}
