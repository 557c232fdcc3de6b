// Package paths provides a single source of truth for pati file paths.
// All path helpers honor environment variable overrides for isolated testing.
//
// Path resolution precedence:
//  1. Specific env vars (PATI_CREDENTIALS_PATH) take highest priority
//  2. PATI_DIR env var sets the base directory (derives credentials/config/plans)
//  3. Default behavior (~/.pati, ~/.config/pati) when no env vars are set
package paths

import (
	"os"
	"path/filepath"
)

// Environment variable names for path overrides.
const (
	// EnvPatiDir is the base directory override (e.g., /tmp/pati-test).
	// When set, credentials, plans, and config paths derive from this directory.
	EnvPatiDir = "PATI_DIR"

	// EnvCredentialsPath overrides the credentials file path directly.
	EnvCredentialsPath = "PATI_CREDENTIALS_PATH"
)

// BaseDir returns the pati base directory (~/.pati by default).
// Honors PATI_DIR environment variable.
func BaseDir() (string, error) {
	if dir := os.Getenv(EnvPatiDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pati"), nil
}

// ConfigDir returns the pati config directory (~/.config/pati by default).
// When PATI_DIR is set, returns PATI_DIR/config instead.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvPatiDir); dir != "" {
		return filepath.Join(dir, "config"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pati"), nil
}

// ConfigPath returns the path to the global pati config file.
// (~/.config/pati/config.toml by default, or PATI_DIR/config/config.toml).
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// CredentialsPath returns the path to the persisted session credentials.
// Precedence: PATI_CREDENTIALS_PATH > PATI_DIR/credentials.json > ~/.pati/credentials.json
func CredentialsPath() (string, error) {
	if path := os.Getenv(EnvCredentialsPath); path != "" {
		return path, nil
	}
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "credentials.json"), nil
}

// PlansDir returns the plans directory (~/.pati/plans by default).
// When PATI_DIR is set, returns PATI_DIR/plans.
func PlansDir() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "plans"), nil
}

// PlanPath returns the path to a specific saved plan file.
func PlanPath(planID string) (string, error) {
	dir, err := PlansDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, planID+".md"), nil
}

// LogPath returns the log file path (~/.pati/pati.log by default).
func LogPath() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "pati.log"), nil
}
