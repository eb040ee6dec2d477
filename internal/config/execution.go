package config

// ExecutionConfig configures how the harness runs a day.
type ExecutionConfig struct {
	// A variant running longer than this is logged as slow (Go duration).
	SlowThreshold string `yaml:"slow_threshold" json:"slow_threshold,omitempty"`
}
