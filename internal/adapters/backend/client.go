// Package backend talks to the REST backend that owns every entity. It maps
// transport failures, backend-reported errors and malformed bodies onto the
// apperrors sentinels and logs each failure before returning it.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/middleware"
)

// DefaultTimeout bounds every backend call unless WithTimeout says otherwise.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// Client is a thin JSON client for the backend API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// NewClient creates a client for the backend rooted at baseURL, e.g.
// "https://api.example.com/api".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the root every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request is one backend call.
type request struct {
	method string
	path   string
	query  url.Values
	token  string
	body   any
}

// do sends the request and returns the raw body of a 2xx answer.
func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("backend_method", r.method),
		slog.String("backend_path", r.path),
	)

	endpoint := c.baseURL + "/" + strings.TrimLeft(r.path, "/")
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var payload io.Reader
	if r.body != nil {
		encoded, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", r.path, err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", r.path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// Cancelled by the caller (or superseded); not a backend failure.
			return nil, context.Cause(ctx)
		}
		logger.Error("Backend unreachable", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s %s: %v", apperrors.ErrUpstreamUnavailable, r.method, r.path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		berr := &apperrors.BackendError{
			Status:   resp.StatusCode,
			Message:  errorMessage(body),
			Endpoint: r.path,
		}
		logger.Warn("Backend returned an error",
			slog.Int("status", resp.StatusCode),
			slog.String("message", berr.Message),
		)
		return nil, berr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, context.Cause(ctx)
		}
		logger.Error("Failed to read backend response", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s %s: %v", apperrors.ErrUpstreamUnavailable, r.method, r.path, err)
	}

	logger.Debug("Backend call completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)
	return body, nil
}

// errorMessage pulls the operator-facing message out of an error body. The
// backend uses `message`; `error` shows up on a few routes.
func errorMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
		return ""
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 || strings.HasPrefix(text, "<") {
		return ""
	}
	return text
}

// malformed wraps a decode failure and logs it.
func malformed(ctx context.Context, path string, err error) error {
	middleware.GetLoggerFromCtx(ctx).Error("Malformed backend response",
		slog.String("backend_path", path),
		slog.String("error", err.Error()),
	)
	return fmt.Errorf("%w: %s: %v", apperrors.ErrMalformedResponse, path, err)
}

// tokenOf returns the session's backend token.
func tokenOf(sess *domain.Session) (string, error) {
	if sess == nil || sess.BackendToken == "" {
		return "", fmt.Errorf("%w: no backend session", apperrors.ErrUnauthorized)
	}
	return sess.BackendToken, nil
}

// call is do with the session's token.
func (c *Client) call(ctx context.Context, sess *domain.Session, r request) ([]byte, error) {
	token, err := tokenOf(sess)
	if err != nil {
		return nil, err
	}
	r.token = token
	return c.do(ctx, r)
}
