package config

import "time"

// RetentionConfig controls the background retention sweeps.
type RetentionConfig struct {
	// EventTTL is how long stored events stay queryable for catch-up.
	EventTTL time.Duration `yaml:"event_ttl"`

	// SandboxExecutionTTL is how long finished sandbox execution records
	// (with their captured output) are kept.
	SandboxExecutionTTL time.Duration `yaml:"sandbox_execution_ttl"`

	// CleanupInterval is how often the sweeps run.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:            7 * 24 * time.Hour,
		SandboxExecutionTTL: 30 * 24 * time.Hour,
		CleanupInterval:     1 * time.Hour,
	}
}
