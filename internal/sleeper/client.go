// Package sleeper provides HTTP client infrastructure for the Sleeper
// fantasy platform API.
//
// Sleeper is keyless and read-only; rate limiting is handled via a token
// bucket limiter and transient failures via the shared retry policy.
package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/gridironlab/fantasy-data/internal/metrics"
	"github.com/gridironlab/fantasy-data/internal/retry"
)

// DefaultBaseURL is the public Sleeper API root.
const DefaultBaseURL = "https://api.sleeper.app/v1"

// Client is the shared HTTP client for all Sleeper endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	policy     retry.Policy
	logger     *slog.Logger
}

// NewClient creates a Sleeper HTTP client with rate limiting and retries.
func NewClient(baseURL string, requestsPerMinute int, policy retry.Policy, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		policy:     policy,
		logger:     logger,
	}
}

// get performs one rate-limited GET and decodes the response into v.
// Non-2xx responses come back as a *retry.StatusError so the retry policy
// and callers can branch on the status code.
func (c *Client) get(ctx context.Context, endpoint, path string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	start := time.Now()
	err := c.getOnce(ctx, path, v)
	metrics.UpstreamLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, status).Inc()
	return err
}

func (c *Client) getOnce(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &retry.StatusError{
			StatusCode: resp.StatusCode,
			Body:       truncate(body, 200),
			RetryAfter: resp.Header.Get("Retry-After"),
		}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// fetch runs a GET under the retry policy and decodes into T.
func fetch[T any](ctx context.Context, c *Client, endpoint, path string) (T, error) {
	return retry.DoValueContext(ctx, c.policy, func(ctx context.Context) (T, error) {
		var out T
		err := c.get(ctx, endpoint, path, &out)
		return out, err
	})
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
