package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/patihq/pati/internal/api"
	"github.com/patihq/pati/internal/session"
)

func TestPrintFieldErrors(t *testing.T) {
	verr := &api.ValidationError{Fields: map[string][]string{
		"email": {"이미 사용 중인 이메일입니다."},
	}}

	if !printFieldErrors(fmt.Errorf("register: %w", verr)) {
		t.Error("printFieldErrors() = false for a wrapped validation error")
	}
	if printFieldErrors(errors.New("plain")) {
		t.Error("printFieldErrors() = true for a non-validation error")
	}
}

func newAuthenticatedManager(t *testing.T) *session.Manager {
	t.Helper()
	store := session.NewFileStoreAt(filepath.Join(t.TempDir(), "credentials.json"))
	err := store.Save(&session.Credentials{
		AccessToken:  "acc-1",
		RefreshToken: "ref-1",
		User:         &api.User{ID: "7", Email: "a@b.com", Nickname: "모모"},
	})
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	mgr := session.NewManager(store, api.New("http://127.0.0.1:0"))
	mgr.Restore()
	if !mgr.Authenticated() {
		t.Fatal("manager not authenticated after restore")
	}
	return mgr
}

func TestResolveProfileExpiredSessionSurfacesLoginHint(t *testing.T) {
	mgr := newAuthenticatedManager(t)

	pipelineErr := fmt.Errorf("%w: %w", api.ErrSessionExpired, api.ErrUnauthorized)
	user, offline, err := resolveProfile(mgr, nil, pipelineErr)

	if err == nil || user != nil || offline {
		t.Fatalf("resolveProfile() = (%v, %v, %v), want login-hint error", user, offline, err)
	}
	if !strings.Contains(err.Error(), "pati login") {
		t.Errorf("error = %q, want a `pati login` hint", err)
	}
	if mgr.Authenticated() || mgr.User() != nil {
		t.Error("expired session left the in-memory state authenticated")
	}
}

func TestResolveProfileTransportFailureFallsBack(t *testing.T) {
	mgr := newAuthenticatedManager(t)

	user, offline, err := resolveProfile(mgr, nil, errors.New("connection refused"))
	if err != nil {
		t.Fatalf("resolveProfile() error: %v", err)
	}
	if !offline || user == nil || user.Nickname != "모모" {
		t.Errorf("resolveProfile() = (%+v, %v), want cached offline profile", user, offline)
	}
	if !mgr.Authenticated() {
		t.Error("transport failure must not expire the session")
	}
}

func TestResolveProfileSuccess(t *testing.T) {
	mgr := newAuthenticatedManager(t)
	want := &api.User{ID: "7", Email: "a@b.com", Nickname: "모모"}

	user, offline, err := resolveProfile(mgr, want, nil)
	if err != nil || offline || user != want {
		t.Errorf("resolveProfile() = (%v, %v, %v), want fetched profile", user, offline, err)
	}
}
