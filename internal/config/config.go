// Package config handles the planify home directory and its YAML
// config file. The epoch (first-run date) lives here: it is written
// exactly once, at first run, and every date computation receives it
// explicitly from then on.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Nazish-kiran/planify/internal/dateutil"
	"github.com/Nazish-kiran/planify/internal/planner"
)

const (
	// EnvHome overrides the planify home directory (mainly for tests).
	EnvHome = "PLANIFY_HOME"

	configFile = "config.yaml"
	stateFile  = "state.json"
)

// Config models ~/.planify/config.yaml.
type Config struct {
	// Epoch is the installation's first-run date key (YYYY-MM-DD).
	// Week indexes and year phases are anchored to it.
	Epoch string `yaml:"epoch"`

	// StatePath is where the planner state blob lives.
	StatePath string `yaml:"state_path"`

	// HorizonYears is the planning horizon the global percentage is
	// measured against.
	HorizonYears int `yaml:"horizon_years"`
}

// Dir returns the planify home directory: $PLANIFY_HOME if set,
// otherwise ~/.planify.
func Dir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".planify"), nil
}

// Load reads the config file, creating it with defaults on first run.
// now supplies the epoch when none is recorded yet.
func Load(now time.Time) (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		cfg := defaults(dir, now)
		if err := write(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Backfill missing fields and persist them, so the epoch gets
	// pinned even if the file was created by hand.
	changed := false
	if cfg.Epoch == "" {
		cfg.Epoch = dateutil.Key(now)
		changed = true
	}
	if cfg.StatePath == "" {
		cfg.StatePath = filepath.Join(dir, stateFile)
		changed = true
	}
	if cfg.HorizonYears <= 0 {
		cfg.HorizonYears = planner.DefaultHorizonYears
		changed = true
	}
	if changed {
		if err := write(path, &cfg); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// EpochTime parses the recorded epoch to UTC midnight.
func (c *Config) EpochTime() (time.Time, error) {
	return dateutil.ParseKey(c.Epoch)
}

func defaults(dir string, now time.Time) *Config {
	return &Config{
		Epoch:        dateutil.Key(now),
		StatePath:    filepath.Join(dir, stateFile),
		HorizonYears: planner.DefaultHorizonYears,
	}
}

func write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
