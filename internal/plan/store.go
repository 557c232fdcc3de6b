package plan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/patihq/pati/internal/paths"
)

// ErrNoPlans is returned when the plans directory holds no saved plan.
var ErrNoPlans = errors.New("no saved plans")

// Store persists plan records as Markdown files in a single directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at the default plans directory.
func NewStore() (*Store, error) {
	dir, err := paths.PlansDir()
	if err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// NewStoreAt creates a Store rooted at an explicit directory.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the record's Markdown rendering to the plans directory and
// returns the written path.
func (s *Store) Save(r Record) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating plans directory: %w", err)
	}
	path := filepath.Join(s.dir, r.ID+".md")
	if err := os.WriteFile(path, []byte(r.Markdown()), 0o644); err != nil {
		return "", fmt.Errorf("writing plan: %w", err)
	}
	return path, nil
}

// List returns the IDs of all saved plans, oldest first.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading plans directory: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(ids)
	return ids, nil
}

// Load returns the Markdown content of a saved plan.
func (s *Store) Load(id string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, id+".md"))
	if err != nil {
		return "", fmt.Errorf("reading plan %s: %w", id, err)
	}
	return string(data), nil
}

// Latest returns the most recently saved plan's ID and Markdown content.
func (s *Store) Latest() (string, string, error) {
	ids, err := s.List()
	if err != nil {
		return "", "", err
	}
	if len(ids) == 0 {
		return "", "", ErrNoPlans
	}
	id := ids[len(ids)-1]
	content, err := s.Load(id)
	if err != nil {
		return "", "", err
	}
	return id, content, nil
}
