package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/petloves/petloves/app/internal/version"
)

// requestOptions is the per-call overlay on the client defaults.
type requestOptions struct {
	timeout time.Duration
	retries int
	headers map[string]string
}

// RequestOption adjusts a single API call.
type RequestOption func(*requestOptions)

// WithTimeout overrides the per-attempt timeout for this call.
func WithTimeout(d time.Duration) RequestOption {
	return func(o *requestOptions) { o.timeout = d }
}

// WithRetries overrides the retry count for this call.
func WithRetries(n int) RequestOption {
	return func(o *requestOptions) {
		if n >= 0 {
			o.retries = n
		}
	}
}

// WithHeader sets a request header, overriding the defaults (including
// Content-Type).
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = map[string]string{}
		}
		o.headers[key] = value
	}
}

// doRequest executes one logical API call: it resolves the full URL, applies
// default headers and runs up to retries+1 sequential attempts.
//
// Responses below 500 terminate the loop immediately - 2xx/3xx as the
// successful outcome, 4xx as a non-transient failure that retrying cannot
// fix. 5xx responses and transport failures are retried with a linearly
// growing delay until the attempt budget runs out, at which point the last
// response or error is propagated. The caller owns the response body.
func (c *Client) doRequest(ctx context.Context, method, path string, body []byte, opts ...RequestOption) (*http.Response, error) {
	o := requestOptions{timeout: c.timeout, retries: c.retries}
	for _, opt := range opts {
		opt(&o)
	}

	fullURL := c.baseURL + path
	requestID := uuid.NewString()

	var lastErr error
	for attempt := 0; ; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, newConnectionError(err)
			}
		}

		res, err := c.attempt(ctx, method, fullURL, body, requestID, o)
		switch {
		case err != nil:
			lastErr = err
		case res.StatusCode < http.StatusInternalServerError:
			return res, nil
		case attempt == o.retries:
			// out of attempts: hand the 5xx response to the normalizer
			return res, nil
		default:
			_ = res.Body.Close()
			lastErr = &APIError{Status: res.StatusCode, Message: http.StatusText(res.StatusCode)}
		}

		if attempt == o.retries {
			return nil, lastErr
		}

		// linear backoff: 1x, 2x, 3x... the configured delay
		delay := time.Duration(attempt+1) * c.retryDelay

		c.logger.Debug("retrying request",
			"method", method,
			"url", fullURL,
			"request_id", requestID,
			"attempt", attempt+1,
			"delay", delay,
			"error", lastErr,
		)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, newConnectionError(ctx.Err())
		}
	}
}

// attempt performs a single network exchange. The attempt's timeout context
// stays alive until the response body is closed.
func (c *Client) attempt(ctx context.Context, method, fullURL string, body []byte, requestID string, o requestOptions) (*http.Response, error) {
	reqCtx := ctx
	cancel := context.CancelFunc(func() {})
	if o.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, o.timeout)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, fullURL, reader)
	if err != nil {
		cancel()
		return nil, newInternalError(err, "creating request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("X-Request-ID", requestID)
	for k, v := range o.headers {
		req.Header.Set(k, v)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, newConnectionError(err)
	}

	res.Body = &cancelOnClose{ReadCloser: res.Body, cancel: cancel}
	return res, nil
}

// cancelOnClose releases the attempt's timeout context when the response
// body is closed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	c.cancel()
	return c.ReadCloser.Close()
}
