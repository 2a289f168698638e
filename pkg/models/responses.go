package models

import "time"

// RunSummary is the list-view projection of a task run.
type RunSummary struct {
	RunID       string     `json:"run_id"`
	TaskID      string     `json:"task_id"`
	RunNumber   int        `json:"run_number"`
	Status      string     `json:"status"`
	Phase       string     `json:"phase"`
	RoundCount  int        `json:"round_count"`
	BranchName  string     `json:"branch_name,omitempty"`
	PRURL       string     `json:"pr_url,omitempty"`
	GitStatus   string     `json:"git_status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DurationMS  *int       `json:"duration_ms,omitempty"`
	ErrorKind   string     `json:"error_kind,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// StepTimelineEntry is one step in an execution timeline.
type StepTimelineEntry struct {
	StepExecutionID string     `json:"step_execution_id"`
	StepID          string     `json:"step_id"`
	StepName        string     `json:"step_name"`
	StepType        string     `json:"step_type"`
	Status          string     `json:"status"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	DurationMS      *int       `json:"duration_ms,omitempty"`
	RetryCount      int        `json:"retry_count"`
	ErrorKind       string     `json:"error_kind,omitempty"`
	Error           string     `json:"error,omitempty"`
}

// ExecutionTimeline is the detailed execution view.
type ExecutionTimeline struct {
	ExecutionID     string              `json:"execution_id"`
	WorkflowID      string              `json:"workflow_id"`
	ExecutionNumber int                 `json:"execution_number"`
	Status          string              `json:"status"`
	StartedAt       *time.Time          `json:"started_at,omitempty"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
	DurationMS      *int                `json:"duration_ms,omitempty"`
	Steps           []StepTimelineEntry `json:"steps"`
}

// WorkflowMetrics aggregates execution statistics for one workflow.
type WorkflowMetrics struct {
	WorkflowID     string  `json:"workflow_id"`
	ExecutionCount int     `json:"execution_count"`
	SuccessCount   int     `json:"success_count"`
	FailureCount   int     `json:"failure_count"`
	SuccessRate    float64 `json:"success_rate"`
	AvgDurationMS  float64 `json:"avg_duration_ms"`
	MinDurationMS  int     `json:"min_duration_ms"`
	MaxDurationMS  int     `json:"max_duration_ms"`
}
