package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCondition(t *testing.T) {
	context := map[string]any{
		"input": map[string]any{
			"env":   "production",
			"count": float64(3),
			"debug": false,
		},
		"steps": map[string]any{
			"build": map[string]any{
				"output": map[string]any{"passed": true, "warnings": float64(0)},
			},
		},
	}

	tests := []struct {
		expr string
		want bool
	}{
		{"steps.build.output.passed", true},
		{"!steps.build.output.passed", false},
		{"input.debug", false},
		{"!input.debug", true},
		{`input.env == "production"`, true},
		{`input.env == 'staging'`, false},
		{`input.env != "staging"`, true},
		{"input.count == 3", true},
		{"input.count != 3", false},
		{"steps.build.output.warnings == 0", true},
		{"steps.missing.output.x", false},
		{"steps.missing.output.x == null", true},
		{`steps.missing.output.x == "y"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := EvaluateCondition(tt.expr, context)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateConditionErrors(t *testing.T) {
	_, err := EvaluateCondition("", nil)
	assert.Error(t, err)

	_, err = EvaluateCondition("input.x == notaliteral", nil)
	assert.Error(t, err)

	_, err = EvaluateCondition("== 3", nil)
	assert.Error(t, err)
}
