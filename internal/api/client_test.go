package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// memTokens is an in-memory TokenSource for pipeline tests.
type memTokens struct {
	access  string
	refresh string
	cleared int
}

func (m *memTokens) AccessToken() string  { return m.access }
func (m *memTokens) RefreshToken() string { return m.refresh }
func (m *memTokens) SetAccessToken(tok string) error {
	m.access = tok
	return nil
}
func (m *memTokens) Clear() error {
	m.access = ""
	m.refresh = ""
	m.cleared++
	return nil
}

func TestLoginDecodesUserAndTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/login/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("login carried Authorization header %q, want none", got)
		}
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Email != "a@b.com" || req.Password != "secret1" {
			t.Errorf("unexpected credentials %+v", req)
		}
		json.NewEncoder(w).Encode(LoginResponse{
			User:   User{ID: "7", Email: "a@b.com", Nickname: "모모"},
			Tokens: TokenPair{Access: "acc-1", Refresh: "ref-1"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(&memTokens{}))
	resp, err := c.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if resp.User.Nickname != "모모" || resp.Tokens.Access != "acc-1" || resp.Tokens.Refresh != "ref-1" {
		t.Errorf("Login() = %+v", resp)
	}
}

func TestRegisterValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"email": ["이미 사용 중인 이메일입니다."], "nickname": ["너무 짧습니다."]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Register(context.Background(), RegisterRequest{Email: "a@b.com"})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Register() error = %v, want *ValidationError", err)
	}
	if got := ve.FieldMessages("email"); len(got) != 1 || got[0] != "이미 사용 중인 이메일입니다." {
		t.Errorf("FieldMessages(email) = %v", got)
	}
	if got := ve.FieldMessages("nickname"); len(got) != 1 {
		t.Errorf("FieldMessages(nickname) = %v", got)
	}
}

func TestRefreshRetryOnce(t *testing.T) {
	tokens := &memTokens{access: "stale", refresh: "ref-1"}
	var profileCalls, refreshCalls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/profile/":
			profileCalls++
			if r.Header.Get("Authorization") == "Bearer fresh" {
				json.NewEncoder(w).Encode(User{ID: "1", Email: "a@b.com", Nickname: "모모"})
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
		case "/users/token/refresh/":
			refreshCalls++
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["refresh"] != "ref-1" {
				t.Errorf("refresh called with %q", body["refresh"])
			}
			json.NewEncoder(w).Encode(map[string]string{"access": "fresh"})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(tokens))
	user, err := c.Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile() error: %v", err)
	}
	if user.Email != "a@b.com" {
		t.Errorf("Profile() = %+v", user)
	}
	if refreshCalls != 1 {
		t.Errorf("refresh calls = %d, want exactly 1", refreshCalls)
	}
	if profileCalls != 2 {
		t.Errorf("profile calls = %d, want exactly 2 (original + one retry)", profileCalls)
	}
	if tokens.access != "fresh" {
		t.Errorf("access token = %q, want refreshed token persisted", tokens.access)
	}
}

func TestSecond401DoesNotRefreshAgain(t *testing.T) {
	tokens := &memTokens{access: "stale", refresh: "ref-1"}
	var refreshCalls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/token/refresh/":
			refreshCalls++
			json.NewEncoder(w).Encode(map[string]string{"access": "fresh-but-rejected"})
		default:
			// Reject even the refreshed token.
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(tokens))
	_, err := c.Profile(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Profile() error = %v, want ErrUnauthorized", err)
	}
	if errors.Is(err, ErrSessionExpired) {
		t.Errorf("second 401 must propagate untouched, got session-expired: %v", err)
	}
	if refreshCalls != 1 {
		t.Errorf("refresh calls = %d, want exactly 1 (no retry loop)", refreshCalls)
	}
}

func TestNoRefreshTokenClearsAndPropagates(t *testing.T) {
	tokens := &memTokens{access: "stale"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(tokens))
	_, err := c.Profile(context.Background())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("Profile() error = %v, want ErrSessionExpired", err)
	}
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("original 401 should be preserved in the chain: %v", err)
	}
	if tokens.cleared != 1 {
		t.Errorf("Clear() calls = %d, want 1", tokens.cleared)
	}
}

func TestRefreshFailureClearsCredentials(t *testing.T) {
	tokens := &memTokens{access: "stale", refresh: "revoked"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(tokens))
	_, err := c.Profile(context.Background())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("Profile() error = %v, want ErrSessionExpired", err)
	}
	if tokens.cleared != 1 {
		t.Errorf("Clear() calls = %d, want 1", tokens.cleared)
	}
	if tokens.access != "" || tokens.refresh != "" {
		t.Errorf("credentials not wiped: %+v", tokens)
	}
}

func TestRejectedLoginIsNotSessionExpiry(t *testing.T) {
	tokens := &memTokens{} // logged out: nothing to attach, nothing to refresh

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "이메일 또는 비밀번호가 올바르지 않습니다."}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(tokens))
	_, err := c.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "wrong"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Login() error = %v, want ErrUnauthorized", err)
	}
	if errors.Is(err, ErrSessionExpired) {
		t.Errorf("rejected login must not look like an expired session: %v", err)
	}
	if tokens.cleared != 0 {
		t.Errorf("Clear() calls = %d, want 0", tokens.cleared)
	}
}

func TestParseValidationError(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string][]string
	}{
		{
			name: "field arrays",
			body: `{"email": ["taken"], "password": ["too short", "too common"]}`,
			want: map[string][]string{"email": {"taken"}, "password": {"too short", "too common"}},
		},
		{
			name: "string values tolerated",
			body: `{"email": "taken"}`,
			want: map[string][]string{"email": {"taken"}},
		},
		{
			name: "non-validation shape",
			body: `{"detail": {"nested": true}}`,
			want: nil,
		},
		{
			name: "reserved detail key",
			body: `{"detail": "요청이 올바르지 않습니다."}`,
			want: nil,
		},
		{
			name: "reserved message key",
			body: `{"message": "bad request"}`,
			want: nil,
		},
		{
			name: "reserved error key",
			body: `{"error": "bad request"}`,
			want: nil,
		},
		{
			name: "not json",
			body: `oops`,
			want: nil,
		},
		{
			name: "empty object",
			body: `{}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := parseValidationError([]byte(tt.body))
			if tt.want == nil {
				if ve != nil {
					t.Errorf("parseValidationError() = %+v, want nil", ve)
				}
				return
			}
			if ve == nil {
				t.Fatal("parseValidationError() = nil, want fields")
			}
			for key, want := range tt.want {
				got := ve.Fields[key]
				if len(got) != len(want) {
					t.Errorf("field %q = %v, want %v", key, got, want)
					continue
				}
				for i := range want {
					if got[i] != want[i] {
						t.Errorf("field %q = %v, want %v", key, got, want)
					}
				}
			}
		})
	}
}

func TestBadRequestDetailIsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "요청이 올바르지 않습니다."}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Register(context.Background(), RegisterRequest{Email: "a@b.com"})

	var ve *ValidationError
	if errors.As(err, &ve) {
		t.Fatalf("Register() error = %v, want *ServerError not *ValidationError", err)
	}
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("Register() error = %v, want *ServerError", err)
	}
	if se.Status != http.StatusBadRequest || se.Message != "요청이 올바르지 않습니다." {
		t.Errorf("ServerError = %+v", se)
	}
}

func TestServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "boom"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Health(context.Background())

	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("Health() error = %v, want *ServerError", err)
	}
	if se.Status != http.StatusInternalServerError || se.Message != "boom" {
		t.Errorf("ServerError = %+v", se)
	}
}
