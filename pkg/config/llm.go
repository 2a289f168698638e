package config

import "time"

// LLMConfig controls the gRPC completion sidecar client.
type LLMConfig struct {
	// Addr is the gRPC address of the completion service.
	Addr string `yaml:"addr"`

	// Model is the default model name sent with completion requests.
	Model string `yaml:"model"`

	// MaxTokens caps completion length; zero lets the provider decide.
	MaxTokens int `yaml:"max_tokens"`

	// Temperature; nil lets the provider decide.
	Temperature *float32 `yaml:"temperature"`

	// RequestTimeout bounds a single completion RPC.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// WorkspaceConcurrency gates in-flight completions per workspace.
	WorkspaceConcurrency int `yaml:"workspace_concurrency"`
}

// DefaultLLMConfig returns the built-in LLM client defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Addr:                 "localhost:50051",
		Model:                "default",
		MaxTokens:            8192,
		RequestTimeout:       5 * time.Minute,
		WorkspaceConcurrency: 4,
	}
}
