package config

import "time"

// SandboxConfig controls the container sandbox runner.
type SandboxConfig struct {
	// Images maps language → container image.
	Images map[string]string `yaml:"images"`

	// DefaultTimeout applies when an execution doesn't set timeout_seconds.
	DefaultTimeout time.Duration `yaml:"default_timeout"`

	// DefaultMemoryLimitMB applies when an execution doesn't set memory_limit_mb.
	DefaultMemoryLimitMB int `yaml:"default_memory_limit_mb"`

	// DefaultCPUQuota is the fraction of one CPU (1.0 = one full core).
	DefaultCPUQuota float64 `yaml:"default_cpu_quota"`

	// ScratchSizeMB bounds the writable /tmp tmpfs mount.
	ScratchSizeMB int `yaml:"scratch_size_mb"`

	// SeccompProfile is the path of the seccomp profile applied to every
	// container; empty uses the runtime default profile.
	SeccompProfile string `yaml:"seccomp_profile"`
}

// DefaultSandboxConfig returns the built-in sandbox defaults.
func DefaultSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		Images: map[string]string{
			"python": "python:3.12-slim",
			"node":   "node:22-slim",
			"php":    "php:8.3-cli",
			"shell":  "alpine:3.20",
		},
		DefaultTimeout:       120 * time.Second,
		DefaultMemoryLimitMB: 512,
		DefaultCPUQuota:      1.0,
		ScratchSizeMB:        256,
	}
}
