package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent for defaults.
	for _, k := range []string{"GRABLY_API_URL", "GRABLY_HTTP_TIMEOUT", "GRABLY_DEBUG"} {
		t.Setenv(k, "")
		os.Unsetenv(k) //nolint:errcheck
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:5004" {
		t.Errorf("APIBaseURL = %q, want local default", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GRABLY_API_URL", "https://admin-api.grably.io")
	t.Setenv("GRABLY_HTTP_TIMEOUT", "5s")
	t.Setenv("GRABLY_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIBaseURL != "https://admin-api.grably.io" {
		t.Errorf("APIBaseURL = %q, want env override", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v, want 5s", cfg.HTTPTimeout)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}
