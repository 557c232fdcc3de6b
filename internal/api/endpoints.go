package api

import (
	"context"
	"net/http"
)

// Register creates a new account. Registration does not authenticate the
// session; the server's response is echoed to the caller. Validation failures
// surface as *ValidationError for field-level display.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/users/register/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a user record and a token pair.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/users/login/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout notifies the server to revoke the given refresh token.
// The response body is ignored by contract.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refresh": refreshToken}
	return c.do(ctx, http.MethodPost, "/users/logout/", body, nil)
}

// RefreshAccessToken exchanges a refresh token for a new access token.
// This call bypasses the authenticated pipeline: it must never recurse into
// the 401 handler that invokes it.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	body := map[string]string{"refresh": refreshToken}
	payload, err := marshalBody(body)
	if err != nil {
		return "", err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/users/token/refresh/", payload)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	var out struct {
		Access string `json:"access"`
	}
	if err := decodeResponse(resp, &out); err != nil {
		return "", err
	}
	return out.Access, nil
}

// Profile fetches the current user's profile. Bearer-authenticated.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/profile/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Ask sends a free-form chat message to the AI assistant.
func (c *Client) Ask(ctx context.Context, req AskRequest) (*AskResponse, error) {
	var resp AskResponse
	if err := c.do(ctx, http.MethodPost, "/ai/ask/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PlanParty requests a party plan from the collected questionnaire answers.
func (c *Client) PlanParty(ctx context.Context, req PlanRequest) (*PlanResponse, error) {
	var resp PlanResponse
	if err := c.do(ctx, http.MethodPost, "/ai/party/plan/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health probes the AI service liveness. Unauthenticated by contract, but
// routed through the shared pipeline like every other call.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var resp HealthStatus
	if err := c.do(ctx, http.MethodGet, "/ai/health/", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
