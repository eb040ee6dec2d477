package config

import "strings"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level,omitempty"`           // debug, info, warn, error
	Format     string          `yaml:"format" json:"format,omitempty"`         // console, json
	Categories map[string]bool `yaml:"categories" json:"categories,omitempty"` // Per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Categories not listed are enabled.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if c.Categories == nil {
		return true
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}

// IsVerbose reports whether debug diagnostics are enabled.
func (c *LoggingConfig) IsVerbose() bool {
	return strings.EqualFold(strings.TrimSpace(c.Level), "debug")
}

// levelFromEnv maps an AOC_LOG value to a log level. The boolean-ish
// spellings map to the two documented settings: off (errors only) and debug.
func levelFromEnv(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "off", "0", "false", "no":
		return "error"
	case "debug", "1", "true", "yes", "on":
		return "debug"
	default:
		return strings.ToLower(strings.TrimSpace(v))
	}
}
