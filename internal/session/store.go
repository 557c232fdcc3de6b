// Package session owns the authentication session lifecycle: the persisted
// credential pair, the cached user record, and the transitions between
// authenticated and unauthenticated states.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/patihq/pati/internal/api"
	"github.com/patihq/pati/internal/paths"
)

// Credentials is the persisted session state. All three fields live and die
// together: they are written in one piece at login and wiped in one piece at
// logout or on irrecoverable refresh failure.
type Credentials struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	User         *api.User `json:"user"`
}

// FileStore persists credentials as a JSON file (~/.pati/credentials.json).
// It implements api.TokenSource by reading the live file on every call, so a
// token revoked by a concurrent logout is never reused on a later request.
type FileStore struct {
	path string
}

// NewFileStore creates a store at the default credentials path.
func NewFileStore() (*FileStore, error) {
	path, err := paths.CredentialsPath()
	if err != nil {
		return nil, err
	}
	return NewFileStoreAt(path), nil
}

// NewFileStoreAt creates a store at a specific path.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted credentials. A missing file yields empty
// credentials and no error; a malformed file yields an error so the caller
// can wipe it.
func (s *FileStore) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Credentials{}, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return &creds, nil
}

// Save writes the credentials in a single atomic-enough step (temp file and
// rename) so a crash never leaves a partially written record.
func (s *FileStore) Save(creds *Credentials) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Clear removes the persisted credentials. Removing an absent file is not
// an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// AccessToken implements api.TokenSource.
func (s *FileStore) AccessToken() string {
	creds, err := s.Load()
	if err != nil {
		return ""
	}
	return creds.AccessToken
}

// RefreshToken implements api.TokenSource.
func (s *FileStore) RefreshToken() string {
	creds, err := s.Load()
	if err != nil {
		return ""
	}
	return creds.RefreshToken
}

// SetAccessToken implements api.TokenSource. Only the access token is
// replaced; the refresh token and user record stay as they are.
func (s *FileStore) SetAccessToken(token string) error {
	creds, err := s.Load()
	if err != nil {
		return err
	}
	creds.AccessToken = token
	return s.Save(creds)
}
