// Package llm is the completion port: a narrow interface over the gRPC
// inference sidecar, plus the retry, budget, and per-workspace concurrency
// layers the phase engines compose around it.
package llm

import (
	"context"
)

// Role values for prompt messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one prompt message.
type Message struct {
	Role    string
	Content string
}

// Request is a completion request.
type Request struct {
	WorkspaceID  string
	Model        string
	SystemPrompt string
	Messages     []Message
	Temperature  *float32
	MaxTokens    *int32
}

// Response is a completion result with usage accounting.
type Response struct {
	Text         string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
	CostEstimate float64
	FinishReason string
}

// Completer is the completion port. Implementations must honor context
// cancellation and classify failures with models error kinds.
type Completer interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
}
