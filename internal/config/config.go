// Package config provides configuration loading and validation for pati.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/patihq/pati/internal/paths"
)

// DefaultAPIBaseURL is the backend API root used when nothing is configured.
const DefaultAPIBaseURL = "http://localhost:8000/api/v1"

// EnvAPIBaseURL overrides the API base URL from the environment.
const EnvAPIBaseURL = "PATI_API_URL"

// Config represents the pati configuration.
type Config struct {
	// API contains backend connection settings.
	API APIConfig `toml:"api"`

	// Log contains logging settings.
	Log LogConfig `toml:"log"`

	// Chat contains chat pacing settings.
	Chat ChatConfig `toml:"chat"`
}

// APIConfig contains backend connection settings.
type APIConfig struct {
	// BaseURL is the backend API root, e.g. "http://localhost:8000/api/v1".
	BaseURL string `toml:"base-url"`

	// TimeoutSeconds is the per-request timeout. 0 uses the default (30s).
	TimeoutSeconds int `toml:"timeout-seconds"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is the log verbosity: "debug", "info", "warn", or "error".
	Level string `toml:"level"`

	// Path overrides the log file location.
	Path string `toml:"path"`
}

// ChatConfig contains pacing for the simulated typing choreography.
type ChatConfig struct {
	// TypingDelayMillis is the delay before the typing indicator appears.
	TypingDelayMillis int `toml:"typing-delay-millis"`

	// ResponseDelayMillis is the delay before a paced bot reply replaces
	// the typing indicator.
	ResponseDelayMillis int `toml:"response-delay-millis"`
}

// Load loads the pati configuration from the default path.
// Returns a config populated with defaults if the file doesn't exist.
func Load() (*Config, error) {
	path, err := paths.ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads the config from a specific path.
// Returns a config populated with defaults if the file doesn't exist.
func LoadFromPath(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv layers environment overrides on top of file values.
func (c *Config) applyEnv() {
	if u := os.Getenv(EnvAPIBaseURL); u != "" {
		c.API.BaseURL = u
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.API.BaseURL != "" {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config: invalid api.base-url %q", c.API.BaseURL)
		}
	}
	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("config: api.timeout-seconds must not be negative")
	}
	if c.Chat.TypingDelayMillis < 0 || c.Chat.ResponseDelayMillis < 0 {
		return fmt.Errorf("config: chat delays must not be negative")
	}
	return nil
}

// BaseURL returns the configured API base URL or the default.
func (c *Config) BaseURL() string {
	if c != nil && c.API.BaseURL != "" {
		return c.API.BaseURL
	}
	return DefaultAPIBaseURL
}

// RequestTimeout returns the configured request timeout or the default.
func (c *Config) RequestTimeout() time.Duration {
	if c != nil && c.API.TimeoutSeconds > 0 {
		return time.Duration(c.API.TimeoutSeconds) * time.Second
	}
	return 30 * time.Second
}

// TypingDelay returns the delay before the typing indicator appears.
func (c *Config) TypingDelay() time.Duration {
	if c != nil && c.Chat.TypingDelayMillis > 0 {
		return time.Duration(c.Chat.TypingDelayMillis) * time.Millisecond
	}
	return 300 * time.Millisecond
}

// ResponseDelay returns the delay before a paced bot reply appears.
func (c *Config) ResponseDelay() time.Duration {
	if c != nil && c.Chat.ResponseDelayMillis > 0 {
		return time.Duration(c.Chat.ResponseDelayMillis) * time.Millisecond
	}
	return 1200 * time.Millisecond
}
