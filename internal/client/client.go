// Package client is the access layer the PetLoves web application uses to
// call the PetLoves backend API. It resolves endpoint paths against a
// configured base URL, executes requests with per-attempt timeouts and a
// bounded retry policy, and normalizes every response into a uniform
// success/error Result so callers never have to handle raw HTTP failures.
package client

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/petloves/petloves/app/internal/config"
)

// Client handles communication with the PetLoves backend API
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// New builds a Client from the supplied configuration. The http.Client
// carries no global timeout: each attempt gets its own timeout context in
// the request executor.
func New(cfg *config.Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient: &http.Client{},
		timeout:    cfg.RequestTimeout,
		retries:    cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     logger,
	}

	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), burst)
	}

	return c
}
