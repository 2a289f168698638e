// Package sandbox executes untrusted generated code in hardened, throwaway
// containers: no network, read-only rootfs, dropped capabilities, bounded
// CPU/memory, and a writable tmpfs scratch mount only.
package sandbox

import (
	"context"
	"time"
)

// Execution statuses.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusTimeout   = "timeout"
	StatusKilled    = "killed"
)

// Error types recorded on failed executions.
const (
	ErrorTypeTimeout     = "timeout"
	ErrorTypeOutOfMemory = "out_of_memory"
	ErrorTypeNonzeroExit = "nonzero_exit"
	ErrorTypeInfra       = "infrastructure"
)

// Spec describes one execution.
type Spec struct {
	ExecutionID string
	WorkspaceID string
	ProjectID   string

	// Language selects the container image: python, node, php, shell.
	Language string

	// Command overrides the detected command when non-empty.
	Command []string

	// CodeDir is mounted read-only at /workspace.
	CodeDir string

	// Env is extra environment, KEY=VALUE.
	Env []string

	// TimeoutSeconds is the wall-clock budget. nil uses the configured
	// default; an explicit zero budget times out immediately.
	TimeoutSeconds *int

	MemoryLimitMB int
	CPUQuota      float64
}

// Result is the outcome of one execution.
type Result struct {
	Status       string
	ExitCode     int
	Stdout       string
	Stderr       string
	Duration     time.Duration
	ContainerID  string
	PeakMemoryMB int
	ErrorType    string
	ErrorMessage string
}

// Runner executes sandboxed commands. Implemented by DockerRunner; faked
// in engine tests.
type Runner interface {
	Run(ctx context.Context, spec *Spec) (*Result, error)
}
