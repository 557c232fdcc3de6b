// Package api provides the HTTP/JSON client for the party-planning backend.
//
// Every outbound call passes through a single request pipeline: the access
// token (when present) is attached as a bearer header before send, and a 401
// response triggers the refresh-and-retry protocol after receive. The retry
// is bounded to exactly one attempt per originating request, so a 401 on the
// retried request propagates instead of looping.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the per-request timeout when none is configured.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the current credential pair to the request pipeline
// and receives token updates from the refresh protocol.
//
// Implementations must read the live persisted value on every call; the
// pipeline never caches a token beyond one request's lifetime, so a token
// revoked between requests is never reused.
type TokenSource interface {
	// AccessToken returns the current access token, or "" when logged out.
	AccessToken() string
	// RefreshToken returns the current refresh token, or "" when logged out.
	RefreshToken() string
	// SetAccessToken persists a newly minted access token.
	SetAccessToken(token string) error
	// Clear wipes all persisted credentials.
	Clear() error
}

// Client is the HTTP client for the backend API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTokenSource attaches a credential source to the request pipeline.
// Without one the client sends unauthenticated requests only.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// New creates a new API client for the given base URL
// (e.g. "http://localhost:8000/api/v1").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends a JSON request through the authenticated pipeline and decodes the
// response into out (which may be nil). The body is marshaled once so the
// request can be re-issued after a token refresh.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = marshalBody(body)
		if err != nil {
			return err
		}
	}

	retried := false
	for {
		req, err := c.newRequest(ctx, method, path, payload)
		if err != nil {
			return err
		}
		// attachCredential: set the bearer header only when a token exists.
		attached := false
		if c.tokens != nil {
			if tok := c.tokens.AccessToken(); tok != "" {
				req.Header.Set("Authorization", "Bearer "+tok)
				attached = true
			}
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("execute request: %w", err)
		}

		// A 401 enters the refresh protocol at most once per originating
		// request. A 401 on a request that never carried a credential and
		// has nothing to refresh with is just an authentication failure
		// (e.g. a rejected login) and propagates as-is.
		if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil && !retried &&
			(attached || c.tokens.RefreshToken() != "") {
			retried = true
			origErr := decodeResponse(resp, nil)
			if err := c.recoverAuth(ctx, origErr); err != nil {
				return err
			}
			// Re-issue the original request exactly once with the new token.
			continue
		}

		return decodeResponse(resp, out)
	}
}

// recoverAuth implements the irrecoverable-vs-recoverable split of the 401
// handler: without a refresh token, or when the refresh call itself fails,
// all credentials are wiped and the returned error matches ErrSessionExpired.
// origErr is the decoded 401 from the originating request and is preserved
// in the no-refresh-token case.
func (c *Client) recoverAuth(ctx context.Context, origErr error) error {
	refresh := c.tokens.RefreshToken()
	if refresh == "" {
		if err := c.tokens.Clear(); err != nil {
			slog.Warn("clearing credentials failed", "error", err)
		}
		return fmt.Errorf("%w: %w", ErrSessionExpired, origErr)
	}

	access, err := c.RefreshAccessToken(ctx, refresh)
	if err != nil {
		if cerr := c.tokens.Clear(); cerr != nil {
			slog.Warn("clearing credentials failed", "error", cerr)
		}
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	if err := c.tokens.SetAccessToken(access); err != nil {
		return fmt.Errorf("persist refreshed token: %w", err)
	}
	slog.Debug("access token refreshed")
	return nil
}

// marshalBody marshals a request body, wrapping the error with context.
func marshalBody(body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return payload, nil
}

// newRequest builds a JSON request against the API root.
func (c *Client) newRequest(ctx context.Context, method, path string, payload []byte) (*http.Request, error) {
	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// decodeResponse maps the HTTP response onto a typed result or error.
func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || len(respBody) == 0 {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, serverMessage(respBody))

	case resp.StatusCode == http.StatusBadRequest:
		if ve := parseValidationError(respBody); ve != nil {
			return ve
		}
		fallthrough

	default:
		return &ServerError{Status: resp.StatusCode, Message: serverMessage(respBody)}
	}
}

// parseValidationError decodes a field-keyed validation payload, tolerating
// both `["msg"]` and `"msg"` value shapes. Returns nil if the body does not
// look like a validation error. The reserved message keys (detail, message,
// error) mark a plain error body, not per-field validation.
func parseValidationError(body []byte) *ValidationError {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return nil
	}
	for _, reserved := range []string{"detail", "message", "error"} {
		if _, ok := raw[reserved]; ok {
			return nil
		}
	}

	fields := make(map[string][]string, len(raw))
	for key, val := range raw {
		var list []string
		if err := json.Unmarshal(val, &list); err == nil {
			fields[key] = list
			continue
		}
		var single string
		if err := json.Unmarshal(val, &single); err == nil {
			fields[key] = []string{single}
			continue
		}
		return nil
	}
	return &ValidationError{Fields: fields}
}

// serverMessage extracts a human-readable message from an error body.
func serverMessage(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Detail != "":
			return payload.Detail
		case payload.Message != "":
			return payload.Message
		case payload.Error != "":
			return payload.Error
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
