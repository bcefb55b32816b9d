package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/handiism/chord-compiler/internal/model"
)

const (
	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "ChordCompiler"

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 60 * time.Second
)

// Client wraps HTTP operations with tab-site-specific configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - A proactive rate limit shared by every request made through it
//   - Classified errors (every failure is a model NetworkError)
//
// Example usage:
//
//	client := NewClient(WithRateLimit(2))
//
//	html, err := client.GetString(ctx, "http://www.ultimate-guitar.com/search.php?...")
//	if errors.Is(err, model.ErrNetwork) {
//	    // log and move on to the next song
//	}
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithRateLimit allows at most perSecond requests per second, with a burst
// of one. Zero or a negative value disables the limit.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		} else {
			c.limiter = nil
		}
	}
}

// NewClient creates a new HTTP client.
//
// Without options the client uses a 60 second timeout, the
// "ChordCompiler" User-Agent and no rate limit.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request and returns the response body as bytes.
//
// The request waits for the rate limiter and includes the configured
// User-Agent header.
//
// Returns a NetworkError if:
//   - The rate limiter wait is cancelled
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, model.NetworkError("wait for rate limit", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, model.NetworkError("build request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, model.NetworkError("GET "+url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, model.NetworkError("GET "+url, fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, model.NetworkError("read body of "+url, err)
	}
	return body, nil
}

// GetString performs a GET request and returns the response body as a string.
//
// This is a convenience wrapper around Get for fetching text content like HTML.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
