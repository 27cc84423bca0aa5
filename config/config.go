package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Config holds user-configurable defaults for interactive sessions.
type Config struct {
	IntervalMS int `json:"interval_ms"`
	SlowStep   int `json:"slow_step"`
	MediumStep int `json:"medium_step"`
	FastStep   int `json:"fast_step"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		IntervalMS: 50,
		SlowStep:   1,
		MediumStep: 10,
		FastStep:   50,
	}
}

// Path returns ~/.config/liveterm/config.json (or XDG_CONFIG_HOME).
// Returns empty string if the home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "liveterm", "config.json")
}

// Load loads config from disk; returns defaults on error.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("liveterm: warning: config parse error: %v", err)
	}
	if cfg.IntervalMS <= 0 {
		cfg.IntervalMS = Default().IntervalMS
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
