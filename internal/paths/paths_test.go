package paths

import (
	"path/filepath"
	"testing"
)

func TestBaseDirHonorsOverride(t *testing.T) {
	t.Setenv(EnvPatiDir, "/tmp/pati-test")

	dir, err := BaseDir()
	if err != nil {
		t.Fatalf("BaseDir() error: %v", err)
	}
	if dir != "/tmp/pati-test" {
		t.Errorf("BaseDir() = %q, want %q", dir, "/tmp/pati-test")
	}
}

func TestDerivedPathsUnderOverride(t *testing.T) {
	t.Setenv(EnvPatiDir, "/tmp/pati-test")

	tests := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{"credentials", CredentialsPath, "/tmp/pati-test/credentials.json"},
		{"config", ConfigPath, "/tmp/pati-test/config/config.toml"},
		{"plans", PlansDir, "/tmp/pati-test/plans"},
		{"log", LogPath, "/tmp/pati-test/pati.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCredentialsPathDirectOverride(t *testing.T) {
	t.Setenv(EnvPatiDir, "/tmp/pati-test")
	t.Setenv(EnvCredentialsPath, "/tmp/elsewhere/creds.json")

	got, err := CredentialsPath()
	if err != nil {
		t.Fatalf("CredentialsPath() error: %v", err)
	}
	if got != "/tmp/elsewhere/creds.json" {
		t.Errorf("CredentialsPath() = %q, want direct override to win", got)
	}
}

func TestPlanPath(t *testing.T) {
	t.Setenv(EnvPatiDir, "/tmp/pati-test")

	got, err := PlanPath("abc123")
	if err != nil {
		t.Fatalf("PlanPath() error: %v", err)
	}
	want := filepath.Join("/tmp/pati-test", "plans", "abc123.md")
	if got != want {
		t.Errorf("PlanPath() = %q, want %q", got, want)
	}
}
