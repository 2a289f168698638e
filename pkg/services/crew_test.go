package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/agent"
	"github.com/mgx-dev/mgx/pkg/executor"
	"github.com/mgx-dev/mgx/pkg/models"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare json",
			in:   `{"verdict": "approved"}`,
			want: `{"verdict": "approved"}`,
		},
		{
			name: "fenced with language tag",
			in:   "```json\n{\"verdict\": \"approved\"}\n```",
			want: `{"verdict": "approved"}`,
		},
		{
			name: "fenced without language tag",
			in:   "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "fence opens directly on the object",
			in:   "```{\"a\": 1}```",
			want: `{"a": 1}`,
		},
		{
			name: "prose around the object",
			in:   "Here is the plan:\n{\"steps\": []}\nLet me know.",
			want: `{"steps": []}`,
		},
		{
			name: "surrounding whitespace",
			in:   "  \n{\"x\": true}\n  ",
			want: `{"x": true}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}

func TestDecodeAgentJSON(t *testing.T) {
	var outcome models.ReviewOutcome
	err := decodeAgentJSON("```json\n{\"verdict\":\"approved\",\"notes\":\"\"}\n```", &outcome)
	require.NoError(t, err)
	assert.Equal(t, models.VerdictApproved, outcome.Verdict)
}

func TestDecodeAgentJSONRejectsGarbage(t *testing.T) {
	var outcome models.ReviewOutcome
	err := decodeAgentJSON("I could not produce a verdict this time.", &outcome)
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.ErrKindLLMFailed))
}

func TestRoundPayloadFirstRound(t *testing.T) {
	task := &executor.TaskInfo{Name: "checkout", Description: "Build the checkout API."}
	round := &executor.RoundInput{
		Round: 1,
		Plan: &executor.Plan{Steps: []executor.PlanStep{
			{Role: agent.RoleEngineer, Description: "implement handlers"},
			{Role: agent.RoleTester, Description: "write tests"},
		}},
		Analysis: &executor.Analysis{TestStrategy: "Unit tests per handler."},
	}

	payload := roundPayload(task, round, "Implement the plan.")
	assert.Contains(t, payload, "Task: checkout")
	assert.Contains(t, payload, "Round: 1")
	assert.Contains(t, payload, "1. [engineer] implement handlers")
	assert.Contains(t, payload, "2. [tester] write tests")
	assert.Contains(t, payload, "Test strategy: Unit tests per handler.")
	assert.NotContains(t, payload, "Reviewer feedback")
	assert.NotContains(t, payload, "Sandbox output")
}

func TestRoundPayloadRevisionRound(t *testing.T) {
	task := &executor.TaskInfo{
		Name:        "checkout",
		Description: "Build the checkout API.",
		Config:      &models.TaskConfig{Constraints: []string{"no ORM", "stdlib http only"}},
	}
	round := &executor.RoundInput{
		Round:           2,
		ReviewFeedback:  "empty-cart case returns 500",
		SandboxFeedback: "FAILED tests/test_cart.py::test_empty",
	}

	payload := roundPayload(task, round, "Implement the plan.")
	assert.Contains(t, payload, "Reviewer feedback from the previous round:\nempty-cart case returns 500")
	assert.Contains(t, payload, "Sandbox output from the previous round:\nFAILED tests/test_cart.py::test_empty")
	assert.Contains(t, payload, "Constraints:\n- no ORM\n- stdlib http only")
	// Feedback sections appear after the instruction.
	assert.Less(t, strings.Index(payload, "Implement the plan."), strings.Index(payload, "Reviewer feedback"))
}
