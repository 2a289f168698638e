package config

// Defaults holds system-wide default values applied when a task or
// workflow does not override them.
type Defaults struct {
	// MaxRounds caps the planner's tuned round budget.
	MaxRounds int `yaml:"max_rounds"`

	// MaxRevisionRounds bounds the engineer/tester/reviewer revision loop.
	MaxRevisionRounds int `yaml:"max_revision_rounds"`

	// AutoApprovePlan skips the human plan gate when true.
	AutoApprovePlan bool `yaml:"auto_approve_plan"`

	// BranchPrefix is the Git branch prefix when neither the task nor the
	// project sets one.
	BranchPrefix string `yaml:"branch_prefix"`

	// CommitTemplate accepts {task_name} and {run_number} placeholders.
	CommitTemplate string `yaml:"commit_template"`

	// TargetStack is the stack spec used when a task doesn't name one.
	TargetStack string `yaml:"target_stack"`
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		MaxRounds:         3,
		MaxRevisionRounds: 2,
		AutoApprovePlan:   false,
		BranchPrefix:      "mgx",
		CommitTemplate:    "MGX: {task_name} (run #{run_number})",
		TargetStack:       "fastapi",
	}
}
