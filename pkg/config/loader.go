package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// mgxYAMLConfig is the on-disk mgx.yaml structure. Every section is
// optional; missing sections fall back to built-in defaults.
type mgxYAMLConfig struct {
	Defaults *Defaults       `yaml:"defaults"`
	Queue    *QueueConfig    `yaml:"queue"`
	Executor *ExecutorConfig `yaml:"executor"`
	Sandbox  *SandboxConfig  `yaml:"sandbox"`
	Workflow  *WorkflowConfig  `yaml:"workflow"`
	LLM       *LLMConfig       `yaml:"llm"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Initialize loads mgx.yaml from configDir, fills defaults, and validates.
// A missing file yields a fully-defaulted configuration.
func Initialize(_ context.Context, configDir string) (*Config, error) {
	cfg := &Config{
		configDir: configDir,
		Defaults:  DefaultDefaults(),
		Queue:     DefaultQueueConfig(),
		Executor:  DefaultExecutorConfig(),
		Sandbox:   DefaultSandboxConfig(),
		Workflow:  DefaultWorkflowConfig(),
		LLM:       DefaultLLMConfig(),
		Retention: DefaultRetentionConfig(),
	}

	path := filepath.Join(configDir, "mgx.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("No mgx.yaml found, using built-in defaults", "path", path)
			return cfg, cfg.validate()
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fileCfg mgxYAMLConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if fileCfg.Defaults != nil {
		cfg.Defaults = fileCfg.Defaults
	}
	if fileCfg.Queue != nil {
		cfg.Queue = fileCfg.Queue
	}
	if fileCfg.Executor != nil {
		cfg.Executor = fileCfg.Executor
	}
	if fileCfg.Sandbox != nil {
		cfg.Sandbox = fileCfg.Sandbox
	}
	if fileCfg.Workflow != nil {
		cfg.Workflow = fileCfg.Workflow
	}
	if fileCfg.LLM != nil {
		cfg.LLM = fileCfg.LLM
	}
	if fileCfg.Retention != nil {
		cfg.Retention = fileCfg.Retention
	}

	slog.Info("Configuration loaded", "path", path)
	return cfg, cfg.validate()
}

// validate rejects configurations that would misbehave at runtime.
func (c *Config) validate() error {
	var errs []error

	if c.Queue.WorkerCount <= 0 {
		errs = append(errs, NewFieldError("queue.worker_count", "must be positive"))
	}
	if c.Queue.MaxConcurrentRuns <= 0 {
		errs = append(errs, NewFieldError("queue.max_concurrent_runs", "must be positive"))
	}
	if c.Queue.HeartbeatInterval <= 0 {
		errs = append(errs, NewFieldError("queue.heartbeat_interval", "must be positive"))
	}
	if c.Defaults.MaxRounds < 1 {
		errs = append(errs, NewFieldError("defaults.max_rounds", "must be at least 1"))
	}
	if c.Defaults.MaxRevisionRounds < 0 {
		errs = append(errs, NewFieldError("defaults.max_revision_rounds", "must not be negative"))
	}
	if c.Executor.LLMRetryAttempts < 1 {
		errs = append(errs, NewFieldError("executor.llm_retry_attempts", "must be at least 1"))
	}
	if c.Executor.BudgetBase <= 0 {
		errs = append(errs, NewFieldError("executor.budget_base", "must be positive"))
	}
	if c.Sandbox.DefaultMemoryLimitMB <= 0 {
		errs = append(errs, NewFieldError("sandbox.default_memory_limit_mb", "must be positive"))
	}
	if len(c.Sandbox.Images) == 0 {
		errs = append(errs, NewFieldError("sandbox.images", "at least one language image is required"))
	}
	if c.Workflow.SweeperInterval <= 0 {
		errs = append(errs, NewFieldError("workflow.sweeper_interval", "must be positive"))
	}
	if c.LLM.Addr == "" {
		errs = append(errs, NewFieldError("llm.addr", "required"))
	}
	if c.LLM.WorkspaceConcurrency <= 0 {
		errs = append(errs, NewFieldError("llm.workspace_concurrency", "must be positive"))
	}
	if c.Retention.CleanupInterval <= 0 {
		errs = append(errs, NewFieldError("retention.cleanup_interval", "must be positive"))
	}

	return errors.Join(errs...)
}
