// Package executor drives a single task run through its phase state
// machine: analyze, plan, approval, the execute/review/revise loop, and
// git finalization. Persistence, LLM access, and agent selection come in
// through narrow interfaces; pkg/services provides the real
// implementations.
package executor

import (
	"github.com/mgx-dev/mgx/pkg/models"
)

// Phase is a run's position in the state machine.
type Phase string

// Run phases.
const (
	PhaseCreated          Phase = "created"
	PhaseAnalyzing        Phase = "analyzing"
	PhasePlanning         Phase = "planning"
	PhaseAwaitingApproval Phase = "awaiting_approval"
	PhaseExecuting        Phase = "executing"
	PhaseReviewing        Phase = "reviewing"
	PhaseRevising         Phase = "revising"
	PhaseCompleting       Phase = "completing"
	PhaseDone             Phase = "done"
)

// Status is a run's terminal outcome. Empty until the run finishes.
type Status string

// Terminal run statuses.
const (
	StatusCompleted    Status = "completed"
	StatusFailed       Status = "failed"
	StatusCancelled    Status = "cancelled"
	StatusTimeout      Status = "timeout"
	StatusPlanRejected Status = "plan_rejected"
)

// Terminal reports whether the status ends the run.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled, StatusTimeout, StatusPlanRejected:
		return true
	}
	return false
}

// allowedTransitions is the complete edge set. The only edge back toward
// an earlier phase is revising → executing.
var allowedTransitions = map[Phase][]Phase{
	PhaseCreated:          {PhaseAnalyzing},
	PhaseAnalyzing:        {PhasePlanning, PhaseCompleting},
	PhasePlanning:         {PhaseAwaitingApproval, PhaseCompleting},
	PhaseAwaitingApproval: {PhaseExecuting, PhaseCompleting},
	PhaseExecuting:        {PhaseReviewing, PhaseCompleting},
	PhaseReviewing:        {PhaseRevising, PhaseCompleting},
	PhaseRevising:         {PhaseExecuting, PhaseCompleting},
	PhaseCompleting:       {PhaseDone},
	PhaseDone:             {},
}

// ValidateTransition rejects edges outside the state machine.
func ValidateTransition(from, to Phase) error {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}
	return models.NewFailure(models.ErrKindInternal,
		"illegal phase transition %s -> %s", from, to)
}
