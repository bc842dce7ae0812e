package cms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	SourceID   = "cms"
	SourceName = "Headless CMS"

	// Peak concurrent batch requests against the CMS API.
	parallelRequests = 4

	// Hard per-attempt timeouts, fixed per resource type. Post batches carry
	// full content bodies and need the larger budget.
	postsTimeout = 60 * time.Second
	mediaTimeout = 30 * time.Second
)

// Config holds CMS client configuration.
type Config struct {
	BaseURL     string
	BatchSize   int
	MaxAttempts int
	RetryDelay  time.Duration
}

// Client fetches posts and media from the CMS public API.
type Client struct {
	postsClient *http.Client
	mediaClient *http.Client
	baseURL     string
	batchSize   int
	maxAttempts int
	retryDelay  time.Duration
	logger      *slog.Logger
}

// New creates a new CMS API client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		postsClient: &http.Client{Timeout: postsTimeout},
		mediaClient: &http.Client{Timeout: mediaTimeout},
		baseURL:     cfg.BaseURL,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
		retryDelay:  cfg.RetryDelay,
		logger:      logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (c *Client) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (c *Client) Name() string {
	return SourceName
}

// StatusError reports a received non-2xx HTTP response. The response is
// authoritative, unlike a transport failure, so it is never retried.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}

// fetchWithRetry performs one GET with up to maxAttempts attempts, waiting
// retryDelay * attempt between attempts. Only transport failures (network
// error, timeout) are retried; a StatusError surfaces immediately.
func (c *Client) fetchWithRetry(ctx context.Context, httpClient *http.Client, url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		body, err := c.doRequest(ctx, httpClient, url)
		if err == nil {
			return body, nil
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return nil, err
		}

		lastErr = err
		if attempt == c.maxAttempts {
			break
		}

		backoff := c.retryDelay * time.Duration(attempt)
		c.logger.Warn("request failed, retrying",
			"url", url,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *Client) doRequest(ctx context.Context, httpClient *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ContentSyncer/1.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return body, nil
}
