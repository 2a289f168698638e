package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mgx-dev/mgx/pkg/models"
)

func TestReviewHashDistinguishesOutcomes(t *testing.T) {
	a := &models.ReviewOutcome{Verdict: models.VerdictChangesRequired, Notes: "fix imports"}
	b := &models.ReviewOutcome{Verdict: models.VerdictChangesRequired, Notes: "fix tests"}
	c := &models.ReviewOutcome{Verdict: models.VerdictApproved, Notes: "fix imports"}

	assert.Equal(t, ReviewHash(a), ReviewHash(a))
	assert.NotEqual(t, ReviewHash(a), ReviewHash(b))
	assert.NotEqual(t, ReviewHash(a), ReviewHash(c))
}

func TestShouldRevise(t *testing.T) {
	changes := &models.ReviewOutcome{Verdict: models.VerdictChangesRequired, Notes: "n1"}
	approved := &models.ReviewOutcome{Verdict: models.VerdictApproved}

	tests := []struct {
		name              string
		outcome           *models.ReviewOutcome
		completed         int
		maxRevisionRounds int
		prevHash          string
		currHash          string
		want              bool
	}{
		{"approved never revises", approved, 0, 5, "", "h", false},
		{"changes with budget", changes, 0, 2, "", "h", true},
		{"budget spent", changes, 2, 2, "", "h", false},
		{"zero revision rounds", changes, 0, 0, "", "h", false},
		{"identical consecutive review halts", changes, 1, 5, "h", "h", false},
		{"different review continues", changes, 1, 5, "h1", "h2", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldRevise(tt.outcome, tt.completed, tt.maxRevisionRounds, tt.prevHash, tt.currHash)
			assert.Equal(t, tt.want, got)
		})
	}
}
