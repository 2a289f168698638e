// Package config loads and validates the MGX server configuration.
package config

// Config is the umbrella configuration object returned by Initialize()
// and passed explicitly to every component. There is no package-level
// configuration state.
type Config struct {
	configDir string

	Defaults  *Defaults
	Queue     *QueueConfig
	Executor  *ExecutorConfig
	Sandbox   *SandboxConfig
	Workflow  *WorkflowConfig
	LLM       *LLMConfig
	Retention *RetentionConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
