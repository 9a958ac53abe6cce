package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var (
	errConcurrencyOutOfRange = errors.New("config: LINK_CHECK_CONCURRENCY must be 1-100")
	errInvalidTimeout        = errors.New("config: FETCH_TIMEOUT must be positive")
	errInvalidBodyLimit      = errors.New("config: MAX_BODY_BYTES must be positive")
)

// Config holds the run configuration. Environment variables provide the
// defaults; command line flags override them.
type Config struct {
	LogLevel             string
	LinkCheckConcurrency int
	FetchTimeout         time.Duration
	MaxBodyBytes         int64
	UserAgent            string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:             getEnv("LOG_LEVEL", "INFO"),
		LinkCheckConcurrency: getEnvAsInt("LINK_CHECK_CONCURRENCY", 1),
		FetchTimeout:         getEnvAsDuration("FETCH_TIMEOUT", 10*time.Second),
		MaxBodyBytes:         int64(getEnvAsInt("MAX_BODY_BYTES", 10<<20)),
		UserAgent:            getEnv("USER_AGENT", ""),
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.LinkCheckConcurrency < 1 || c.LinkCheckConcurrency > 100 {
		return fmt.Errorf("%w: got %d", errConcurrencyOutOfRange, c.LinkCheckConcurrency)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%w: got %s", errInvalidTimeout, c.FetchTimeout)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: got %d", errInvalidBodyLimit, c.MaxBodyBytes)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return v
}
