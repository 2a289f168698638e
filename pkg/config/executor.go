package config

import "time"

// ExecutorConfig controls the task executor's phase state machine.
type ExecutorConfig struct {
	// AnalyzeTimeout bounds the analyze phase LLM call.
	AnalyzeTimeout time.Duration `yaml:"analyze_timeout"`

	// PlanTimeout bounds the plan phase LLM call.
	PlanTimeout time.Duration `yaml:"plan_timeout"`

	// ExecuteTimeoutPerRound bounds one engineer/tester/reviewer round,
	// scaled by the complexity factor.
	ExecuteTimeoutPerRound time.Duration `yaml:"execute_timeout_per_round"`

	// LLMRetryAttempts is the internal retry budget for transient LLM
	// failures within a phase.
	LLMRetryAttempts int `yaml:"llm_retry_attempts"`

	// LLMRetryBackoffBase is the first backoff; doubled each attempt.
	LLMRetryBackoffBase time.Duration `yaml:"llm_retry_backoff_base"`

	// BudgetBase is the monetary budget for a run before multipliers:
	// budget = BudgetBase × task budget_multiplier × complexity factor.
	BudgetBase float64 `yaml:"budget_base"`

	// CancelGracePeriod is the bound within which a cancelled run must
	// reach a terminal state.
	CancelGracePeriod time.Duration `yaml:"cancel_grace_period"`
}

// DefaultExecutorConfig returns the built-in executor defaults.
func DefaultExecutorConfig() *ExecutorConfig {
	return &ExecutorConfig{
		AnalyzeTimeout:         2 * time.Minute,
		PlanTimeout:            3 * time.Minute,
		ExecuteTimeoutPerRound: 10 * time.Minute,
		LLMRetryAttempts:       3,
		LLMRetryBackoffBase:    time.Second,
		BudgetBase:             1.0,
		CancelGracePeriod:      30 * time.Second,
	}
}
