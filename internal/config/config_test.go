package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if got := cfg.BaseURL(); got != DefaultAPIBaseURL {
		t.Errorf("BaseURL() = %q, want default %q", got, DefaultAPIBaseURL)
	}
	if got := cfg.RequestTimeout(); got != 30*time.Second {
		t.Errorf("RequestTimeout() = %v, want 30s", got)
	}
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
[api]
base-url = "https://api.example.com/api/v1"
timeout-seconds = 5

[log]
level = "debug"

[chat]
typing-delay-millis = 100
response-delay-millis = 200
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if got := cfg.BaseURL(); got != "https://api.example.com/api/v1" {
		t.Errorf("BaseURL() = %q", got)
	}
	if got := cfg.RequestTimeout(); got != 5*time.Second {
		t.Errorf("RequestTimeout() = %v, want 5s", got)
	}
	if got := cfg.TypingDelay(); got != 100*time.Millisecond {
		t.Errorf("TypingDelay() = %v, want 100ms", got)
	}
	if got := cfg.ResponseDelay(); got != 200*time.Millisecond {
		t.Errorf("ResponseDelay() = %v, want 200ms", got)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[api]
base-url = "https://file.example.com"
`)
	t.Setenv(EnvAPIBaseURL, "https://env.example.com")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if got := cfg.BaseURL(); got != "https://env.example.com" {
		t.Errorf("BaseURL() = %q, want env override to win", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty is valid", Config{}, false},
		{"valid url", Config{API: APIConfig{BaseURL: "http://localhost:8000/api/v1"}}, false},
		{"relative url", Config{API: APIConfig{BaseURL: "localhost:8000"}}, true},
		{"negative timeout", Config{API: APIConfig{TimeoutSeconds: -1}}, true},
		{"negative delay", Config{Chat: ChatConfig{TypingDelayMillis: -5}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
