// Package models holds shared domain types: error kinds, task
// configuration, review outcomes, and API request/response shapes.
package models

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies every failure surfaced by the execution fabric.
// The kind is carried on terminal run/execution records and on failure
// event payloads; there are no silent failures.
type ErrorKind string

// Error kinds.
const (
	ErrKindInvalidInput     ErrorKind = "invalid_input"
	ErrKindNotFound         ErrorKind = "not_found"
	ErrKindConflict         ErrorKind = "conflict"
	ErrKindDeadlineExceeded ErrorKind = "deadline_exceeded"
	ErrKindCancelled        ErrorKind = "cancelled"
	ErrKindLLMFailed        ErrorKind = "llm_failed"
	ErrKindSandboxFailed    ErrorKind = "sandbox_failed"
	ErrKindGitFailed        ErrorKind = "git_failed"
	ErrKindBudgetExhausted  ErrorKind = "budget_exhausted"
	ErrKindInternal         ErrorKind = "internal"
)

// Failure is an error carrying an ErrorKind and optional details.
type Failure struct {
	Kind    ErrorKind
	Message string
	Details map[string]any
	Cause   error
}

// NewFailure creates a Failure of the given kind.
func NewFailure(kind ErrorKind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapFailure creates a Failure wrapping an underlying cause.
func WrapFailure(kind ErrorKind, cause error, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func (f *Failure) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Cause)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Unwrap exposes the cause for errors.Is/As chains.
func (f *Failure) Unwrap() error {
	return f.Cause
}

// KindOf extracts the ErrorKind from an error chain. Context errors map to
// deadline_exceeded/cancelled; anything unclassified is internal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrKindDeadlineExceeded
	}
	if errors.Is(err, context.Canceled) {
		return ErrKindCancelled
	}
	return ErrKindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
