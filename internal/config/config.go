// Package config loads aoc settings from an optional YAML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvLog      = "AOC_LOG"       // off / debug (also info, warn, error)
	EnvInputDir = "AOC_INPUT_DIR" // overrides inputs.dir
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "aoc.yaml"

// Config holds all aoc configuration.
type Config struct {
	Name string `yaml:"name"`

	// Default input file lookup
	Inputs InputsConfig `yaml:"inputs"`

	// Harness behaviour
	Execution ExecutionConfig `yaml:"execution"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "aoc",
		Inputs: InputsConfig{
			Dir:       "inputs",
			Extension: ".txt",
		},
		Execution: ExecutionConfig{
			SlowThreshold: "10s",
		},
		Logging: LoggingConfig{
			Level:  "error",
			Format: "console",
		},
	}
}

// FromEnv returns the defaults with environment overrides applied.
// It never touches the filesystem.
func FromEnv() *Config {
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	return cfg
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v, ok := os.LookupEnv(EnvLog); ok {
		c.Logging.Level = levelFromEnv(v)
	}
	if dir := os.Getenv(EnvInputDir); dir != "" {
		c.Inputs.Dir = dir
	}
}

// InputPath returns the default input path for a day.
func (c *Config) InputPath(dayID string) string {
	return c.Inputs.PathFor(dayID)
}

// GetSlowThreshold returns the slow-variant threshold as a duration.
func (c *Config) GetSlowThreshold() time.Duration {
	d, err := time.ParseDuration(c.Execution.SlowThreshold)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "warning", "error"}

// ValidFormats lists the accepted log formats.
var ValidFormats = []string{"console", "json"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Inputs.Dir == "" {
		return fmt.Errorf("inputs.dir must not be empty")
	}
	if !contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %q (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if c.Logging.Format != "" && !contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging format: %q (valid: %v)", c.Logging.Format, ValidFormats)
	}
	if c.Execution.SlowThreshold != "" {
		if _, err := time.ParseDuration(c.Execution.SlowThreshold); err != nil {
			return fmt.Errorf("invalid execution.slow_threshold: %w", err)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
