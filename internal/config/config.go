// Package config loads the run configuration for the wavefront CLI from an
// optional YAML file, with documented defaults and strict validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Sentinel errors for configuration loading.
var (
	// ErrScheduler indicates an unknown scheduler selector.
	ErrScheduler = errors.New("config: scheduler must be one of sequential, farm, tree")
	// ErrLength indicates a non-positive matrix length.
	ErrLength = errors.New("config: length must be > 0")
)

// Schedulers accepted by the CLI.
const (
	SchedulerSequential = "sequential"
	SchedulerFarm       = "farm"
	SchedulerTree       = "tree"
)

// DefaultLength matches the library default; the original batch runs used
// 1<<14, which remains a sensible value on real hardware.
const DefaultLength = 4096

// Config carries everything the CLI needs for one run. Workers = 0 means
// "derive from hardware concurrency" (farm) or "required explicitly" (tree).
type Config struct {
	Length    int    `yaml:"length"`
	Workers   int    `yaml:"workers"`
	Scheduler string `yaml:"scheduler"`
	Policy    string `yaml:"policy"`
	MaxChunk  int    `yaml:"max_chunk"`
	Assist    bool   `yaml:"coordinator_assist"`
	LogLevel  string `yaml:"log_level"`
	Print     bool   `yaml:"print"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		Length:    DefaultLength,
		Scheduler: SchedulerFarm,
		Policy:    "static",
		MaxChunk:  64,
		LogLevel:  "info",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged; unknown keys are rejected to catch typos early.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects impossible runs before any scheduling starts.
func (c Config) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("%w: got %d", ErrLength, c.Length)
	}
	switch c.Scheduler {
	case SchedulerSequential, SchedulerFarm, SchedulerTree:
	default:
		return fmt.Errorf("%w: got %q", ErrScheduler, c.Scheduler)
	}

	return nil
}
