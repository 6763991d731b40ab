package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.BaseURL != "https://ncrdb.usga.org/" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if got := cfg.FetchTimeout(); got != 30*time.Second {
		t.Errorf("FetchTimeout() = %v, want 30s", got)
	}
	if got := cfg.PacingDelay(); got != 2*time.Second {
		t.Errorf("PacingDelay() = %v, want 2s", got)
	}
	if cfg.StorageRoot == "" {
		t.Error("StorageRoot is empty")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "base_url: http://localhost:8080/\npacing_delay_ms: 500\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BaseURL != "http://localhost:8080/" {
		t.Errorf("BaseURL = %q, want the override", cfg.BaseURL)
	}
	if got := cfg.PacingDelay(); got != 500*time.Millisecond {
		t.Errorf("PacingDelay() = %v, want 500ms", got)
	}
	// Unset keys keep their defaults.
	if got := cfg.FetchTimeout(); got != 30*time.Second {
		t.Errorf("FetchTimeout() = %v, want default 30s", got)
	}
	if cfg.StorageRoot != Default().StorageRoot {
		t.Errorf("StorageRoot = %q, want default", cfg.StorageRoot)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() error = nil, want read error")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("base_url: [broken\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}
