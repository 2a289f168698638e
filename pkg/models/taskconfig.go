package models

import (
	"encoding/json"
	"fmt"
)

// OutputMode selects whether a run generates a fresh project or patches an
// existing one.
type OutputMode string

// Output modes.
const (
	OutputModeGenerateNew   OutputMode = "generate_new"
	OutputModePatchExisting OutputMode = "patch_existing"
)

// Complexity is the planner's estimate of task size; it tunes the round
// budget and phase deadlines.
type Complexity string

// Complexity levels.
const (
	ComplexityXS Complexity = "XS"
	ComplexityS  Complexity = "S"
	ComplexityM  Complexity = "M"
	ComplexityL  Complexity = "L"
	ComplexityXL Complexity = "XL"
)

// RoundBudget maps complexity to the tuned max_rounds value (capped by the
// task's own max_rounds).
func (c Complexity) RoundBudget() int {
	switch c {
	case ComplexityXS:
		return 1
	case ComplexityS:
		return 2
	case ComplexityM:
		return 3
	case ComplexityL:
		return 4
	case ComplexityXL:
		return 5
	default:
		return 3
	}
}

// Factor returns the budget multiplier for this complexity.
func (c Complexity) Factor() float64 {
	switch c {
	case ComplexityXS:
		return 0.5
	case ComplexityS:
		return 0.75
	case ComplexityM:
		return 1.0
	case ComplexityL:
		return 1.5
	case ComplexityXL:
		return 2.0
	default:
		return 1.0
	}
}

// Valid reports whether c is a known complexity level.
func (c Complexity) Valid() bool {
	switch c {
	case ComplexityXS, ComplexityS, ComplexityM, ComplexityL, ComplexityXL:
		return true
	}
	return false
}

// TaskConfig is the recognized task configuration, decoded from the task's
// JSON config column.
type TaskConfig struct {
	MaxRounds          int        `json:"max_rounds,omitempty"`
	MaxRevisionRounds  int        `json:"max_revision_rounds,omitempty"`
	MemorySize         int        `json:"memory_size,omitempty"`
	BudgetMultiplier   float64    `json:"budget_multiplier,omitempty"`
	AutoApprovePlan    bool       `json:"auto_approve_plan,omitempty"`
	BranchPrefix       string     `json:"branch_prefix,omitempty"`
	CommitTemplate     string     `json:"commit_template,omitempty"`
	TargetStack        string     `json:"target_stack,omitempty"`
	ProjectType        string     `json:"project_type,omitempty"`
	OutputMode         OutputMode `json:"output_mode,omitempty"`
	StrictRequirements bool       `json:"strict_requirements,omitempty"`
	Constraints        []string   `json:"constraints,omitempty"`
}

// TaskConfigFromMap decodes and validates a raw config map.
func TaskConfigFromMap(raw map[string]interface{}) (*TaskConfig, error) {
	cfg := &TaskConfig{
		BudgetMultiplier: 1.0,
		OutputMode:       OutputModeGenerateNew,
	}
	if raw == nil {
		return cfg, nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, NewFailure(ErrKindInvalidInput, "task config not serializable: %v", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, NewFailure(ErrKindInvalidInput, "task config malformed: %v", err)
	}
	if cfg.BudgetMultiplier == 0 {
		cfg.BudgetMultiplier = 1.0
	}
	if cfg.OutputMode == "" {
		cfg.OutputMode = OutputModeGenerateNew
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks option ranges.
func (c *TaskConfig) Validate() error {
	if c.MaxRounds < 0 {
		return NewFailure(ErrKindInvalidInput, "max_rounds must be >= 1 when set")
	}
	if c.MaxRevisionRounds < 0 {
		return NewFailure(ErrKindInvalidInput, "max_revision_rounds must be >= 0")
	}
	if c.BudgetMultiplier < 0.1 || c.BudgetMultiplier > 5.0 {
		return NewFailure(ErrKindInvalidInput,
			"budget_multiplier %.2f outside [0.1, 5.0]", c.BudgetMultiplier)
	}
	switch c.OutputMode {
	case OutputModeGenerateNew, OutputModePatchExisting:
	default:
		return NewFailure(ErrKindInvalidInput, "unknown output_mode %q", c.OutputMode)
	}
	return nil
}

// String implements fmt.Stringer for logging.
func (c *TaskConfig) String() string {
	return fmt.Sprintf("TaskConfig{stack=%s mode=%s budget=%.2f auto_approve=%t}",
		c.TargetStack, c.OutputMode, c.BudgetMultiplier, c.AutoApprovePlan)
}
