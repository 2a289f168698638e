package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectDBEventID(t *testing.T) {
	env := NewEnvelope(EventTaskCreated, "ws-1", map[string]any{"k": "v"})
	payload, err := env.MarshalWire()
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(payload, 99)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(99), m["db_event_id"])
	assert.Equal(t, env.EventID, m["event_id"])
	assert.NotContains(t, m, "truncated")
}

func TestTruncateOversizedPayload(t *testing.T) {
	env := NewEnvelope(EventSandboxCompleted, "ws-1", map[string]any{
		"stdout": strings.Repeat("x", notifyLimit*2),
	})
	env.TaskID = "t-1"
	env.RunID = "r-1"
	payload, err := env.MarshalWire()
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(payload, 7)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), notifyLimit)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, float64(7), m["db_event_id"])
	assert.Equal(t, env.EventID, m["event_id"])
	assert.Equal(t, EventSandboxCompleted, m["event_type"])
	assert.Equal(t, "ws-1", m["workspace_id"])
	// Routing IDs survive so topic filtering still works client-side.
	assert.Equal(t, "t-1", m["task_id"])
	assert.Equal(t, "r-1", m["run_id"])
	assert.NotContains(t, m, "stdout")
	assert.NotContains(t, m, "data")
}

func TestTruncateNotNeededPassthrough(t *testing.T) {
	payload := []byte(`{"event_id":"e1","event_type":"task.created","workspace_id":"ws-1","data":{}}`)
	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, string(payload), out)
}
