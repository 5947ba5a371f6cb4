package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Netflix/go-env"
)

// Client configuration - defaults target the hosted PetLoves backend.
type Config struct {
	Environment    string        `env:"ENVIRONMENT,default=dev"`
	LogLevel       string        `env:"LOG_LEVEL,default=debug"`
	APIBaseURL     string        `env:"API_BASE_URL,default=https://petloves-backend.onrender.com"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=30s"`
	MaxRetries     int           `env:"MAX_RETRIES,default=3"`
	RetryDelay     time.Duration `env:"RETRY_DELAY,default=1s"`
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS,default=0"` // 0 disables the client-side limiter
	RateLimitBurst int           `env:"RATE_LIMIT_BURST,default=1"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"staging": true,
	"prod":    true,
}

func NewConfig() (*Config, error) {
	var cfg Config

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	// path segments are appended to the base URL verbatim
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid environment '%s'. Valid environments: dev, test, staging, prod", cfg.Environment)
	}

	if cfg.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL cannot be empty")
	}

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got '%s'", cfg.APIBaseURL)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", cfg.RequestTimeout)
	}

	if cfg.MaxRetries < 0 {
		return fmt.Errorf("max retries cannot be negative, got %d", cfg.MaxRetries)
	}

	if cfg.RetryDelay < 0 {
		return fmt.Errorf("retry delay cannot be negative, got %v", cfg.RetryDelay)
	}

	if cfg.RateLimitRPS < 0 {
		return fmt.Errorf("rate limit rps cannot be negative, got %v", cfg.RateLimitRPS)
	}

	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1 when the limiter is enabled, got %d", cfg.RateLimitBurst)
	}

	return nil
}
