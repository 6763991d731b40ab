package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries every tunable of one pull run. It is constructed once
// per run and threaded through the entry points; nothing reads
// package-level mutable defaults.
type Config struct {
	BaseURL             string `yaml:"base_url"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
	PacingDelayMillis   int    `yaml:"pacing_delay_ms"`
	StorageRoot         string `yaml:"storage_root"`
}

// Default returns the stock configuration for the public NCRDB host.
func Default() Config {
	return Config{
		BaseURL:             "https://ncrdb.usga.org/",
		FetchTimeoutSeconds: 30,
		PacingDelayMillis:   2000,
		StorageRoot:         "~/.local/share/usga-golf-courses",
	}
}

// Load reads a YAML config file over the defaults; unset keys keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// FetchTimeout bounds every page fetch and the wait for the listing
// grid to render.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// PacingDelay is the fixed courtesy delay between successive upstream
// calls.
func (c Config) PacingDelay() time.Duration {
	return time.Duration(c.PacingDelayMillis) * time.Millisecond
}
