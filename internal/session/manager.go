package session

import (
	"context"
	"log/slog"

	"github.com/patihq/pati/internal/api"
)

// State is the session's position in its lifecycle.
type State int

const (
	// StateUnknown means Restore has not run yet; authentication is not
	// decidable.
	StateUnknown State = iota
	// StateAuthenticated means a credential pair and user record are present.
	StateAuthenticated
	// StateUnauthenticated means no valid credentials exist.
	StateUnauthenticated
)

// String returns the string representation of a State.
func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "invalid"
	}
}

// Manager owns exactly one credential pair and its lifecycle. It is the sole
// writer of the persisted store; the request pipeline reads from the same
// store through the api.TokenSource interface.
type Manager struct {
	store  *FileStore
	client *api.Client

	state   State
	user    *api.User
	loading bool
}

// NewManager creates a session manager over the given store and API client.
// The session starts in StateUnknown with loading set; Restore decides the
// initial state.
func NewManager(store *FileStore, client *api.Client) *Manager {
	return &Manager{
		store:   store,
		client:  client,
		state:   StateUnknown,
		loading: true,
	}
}

// Restore reads the persisted credentials at startup and decides the session
// state without any network call. Both tokens and a parseable user record
// make the session authenticated; anything less wipes the store and leaves
// it unauthenticated. Restore never fails — a broken store is just a
// logged-out session. The loading flag flips to false exactly once.
func (m *Manager) Restore() {
	defer func() { m.loading = false }()

	creds, err := m.store.Load()
	if err != nil {
		slog.Warn("restoring session failed, clearing credentials", "error", err)
		if cerr := m.store.Clear(); cerr != nil {
			slog.Warn("clearing credentials failed", "error", cerr)
		}
		m.state = StateUnauthenticated
		m.user = nil
		return
	}

	if creds.AccessToken != "" && creds.RefreshToken != "" && creds.User != nil {
		m.state = StateAuthenticated
		m.user = creds.User
		return
	}

	// Partially present credentials are as good as none.
	if creds.AccessToken != "" || creds.RefreshToken != "" || creds.User != nil {
		if cerr := m.store.Clear(); cerr != nil {
			slog.Warn("clearing credentials failed", "error", cerr)
		}
	}
	m.state = StateUnauthenticated
	m.user = nil
}

// Login authenticates against the backend. On success both tokens and the
// user record are persisted together and the session becomes authenticated.
// On failure nothing is written and the error (including field-level
// validation messages) is returned for display.
func (m *Manager) Login(ctx context.Context, email, password string) (*api.User, error) {
	resp, err := m.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	user := resp.User
	if err := m.store.Save(&Credentials{
		AccessToken:  resp.Tokens.Access,
		RefreshToken: resp.Tokens.Refresh,
		User:         &user,
	}); err != nil {
		return nil, err
	}

	m.state = StateAuthenticated
	m.user = &user
	slog.Info("logged in", "email", user.Email)
	return &user, nil
}

// Register creates an account. It does not authenticate the session; the
// server response is echoed to the caller.
func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	return m.client.Register(ctx, req)
}

// Logout best-effort notifies the server with the current refresh token,
// then unconditionally wipes the persisted credentials. A failed or
// unreachable server never prevents the local wipe.
func (m *Manager) Logout(ctx context.Context) error {
	if refresh := m.store.RefreshToken(); refresh != "" {
		if err := m.client.Logout(ctx, refresh); err != nil {
			slog.Warn("server logout failed, clearing local session anyway", "error", err)
		}
	}

	err := m.store.Clear()
	m.state = StateUnauthenticated
	m.user = nil
	return err
}

// User returns the cached user record, or nil when unauthenticated.
func (m *Manager) User() *api.User {
	return m.user
}

// State returns the current session state.
func (m *Manager) State() State {
	return m.state
}

// Authenticated reports whether the session holds valid credentials.
func (m *Manager) Authenticated() bool {
	return m.state == StateAuthenticated
}

// Loading reports whether Restore has run yet.
func (m *Manager) Loading() bool {
	return m.loading
}

// Expire reflects an irrecoverable auth failure detected by the request
// pipeline: the store has already been wiped, so only the in-memory state
// needs to follow.
func (m *Manager) Expire() {
	m.state = StateUnauthenticated
	m.user = nil
}
