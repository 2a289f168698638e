package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mgx-dev/mgx/pkg/models"
)

func TestValidateTransition(t *testing.T) {
	legal := []struct{ from, to Phase }{
		{PhaseCreated, PhaseAnalyzing},
		{PhaseAnalyzing, PhasePlanning},
		{PhasePlanning, PhaseAwaitingApproval},
		{PhaseAwaitingApproval, PhaseExecuting},
		{PhaseExecuting, PhaseReviewing},
		{PhaseReviewing, PhaseRevising},
		{PhaseRevising, PhaseExecuting},
		{PhaseReviewing, PhaseCompleting},
		{PhaseCompleting, PhaseDone},
	}
	for _, tt := range legal {
		assert.NoError(t, ValidateTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}

	illegal := []struct{ from, to Phase }{
		{PhaseCreated, PhaseExecuting},
		{PhaseExecuting, PhaseAnalyzing},
		{PhaseReviewing, PhasePlanning},
		{PhaseDone, PhaseAnalyzing},
		{PhaseCompleting, PhaseExecuting},
	}
	for _, tt := range illegal {
		err := ValidateTransition(tt.from, tt.to)
		assert.True(t, models.IsKind(err, models.ErrKindInternal), "%s -> %s", tt.from, tt.to)
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusPlanRejected.Terminal())
	assert.False(t, Status("").Terminal())
	assert.False(t, Status("running").Terminal())
}
