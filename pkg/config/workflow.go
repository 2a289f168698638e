package config

import "time"

// WorkflowConfig controls the workflow engine and approval sweeper.
type WorkflowConfig struct {
	// SchedulerTick is how often the engine re-evaluates readiness in
	// addition to event-driven wakeups (restart-safe resume path).
	SchedulerTick time.Duration `yaml:"scheduler_tick"`

	// SweeperInterval is how often the approval sweeper scans for
	// auto-approvals and expirations.
	SweeperInterval time.Duration `yaml:"sweeper_interval"`

	// MaxParallelSteps caps concurrently running steps per execution.
	// Zero means unbounded within a parallel group.
	MaxParallelSteps int `yaml:"max_parallel_steps"`

	// DefaultRetryMaxAttempts applies to steps without a retry policy.
	DefaultRetryMaxAttempts int `yaml:"default_retry_max_attempts"`

	// DefaultRetryBackoffBase is the first retry backoff; doubled each attempt.
	DefaultRetryBackoffBase time.Duration `yaml:"default_retry_backoff_base"`

	// DefaultApprovalExpiry applies when an approval step has no
	// expires_after_s configured.
	DefaultApprovalExpiry time.Duration `yaml:"default_approval_expiry"`
}

// DefaultWorkflowConfig returns the built-in workflow defaults.
func DefaultWorkflowConfig() *WorkflowConfig {
	return &WorkflowConfig{
		SchedulerTick:           2 * time.Second,
		SweeperInterval:         1 * time.Second,
		MaxParallelSteps:        0,
		DefaultRetryMaxAttempts: 1,
		DefaultRetryBackoffBase: 500 * time.Millisecond,
		DefaultApprovalExpiry:   24 * time.Hour,
	}
}
