package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	env := NewEnvelope(EventTaskCreated, "ws-1", map[string]any{"name": "demo"})

	assert.NotEmpty(t, env.EventID)
	assert.Equal(t, EventTaskCreated, env.EventType)
	assert.Equal(t, EnvelopeVersion, env.Version)
	assert.Equal(t, "ws-1", env.WorkspaceID)
	assert.Equal(t, time.UTC, env.Timestamp.Location())
	assert.Equal(t, "demo", env.Data["name"])
}

func TestNewEnvelopeNilData(t *testing.T) {
	env := NewEnvelope(EventTaskCreated, "ws-1", nil)
	assert.NotNil(t, env.Data)
}

func TestEnvelopeValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Envelope)
		wantErr string
	}{
		{
			name:   "valid envelope",
			mutate: func(*Envelope) {},
		},
		{
			name:    "missing event_id",
			mutate:  func(e *Envelope) { e.EventID = "" },
			wantErr: "event_id",
		},
		{
			name:    "missing event_type",
			mutate:  func(e *Envelope) { e.EventType = "" },
			wantErr: "event_type",
		},
		{
			name:    "missing workspace_id",
			mutate:  func(e *Envelope) { e.WorkspaceID = "" },
			wantErr: "workspace_id",
		},
		{
			name:    "missing version",
			mutate:  func(e *Envelope) { e.Version = "" },
			wantErr: "version",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnvelope(EventTaskCreated, "ws-1", nil)
			tt.mutate(env)
			err := env.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestEnvelopeWireRoundTrip(t *testing.T) {
	env := NewEnvelope(EventWorkflowStepCompleted, "ws-1", map[string]any{
		"step_id": "s1",
		"attempt": float64(2),
	})
	env.WorkflowID = "wf-1"
	env.ExecutionID = "ex-1"
	env.CorrelationID = "corr-1"

	data, err := env.MarshalWire()
	require.NoError(t, err)

	got, err := UnmarshalWire(data)
	require.NoError(t, err)
	assert.Equal(t, env.EventID, got.EventID)
	assert.Equal(t, env.EventType, got.EventType)
	assert.Equal(t, env.WorkspaceID, got.WorkspaceID)
	assert.Equal(t, env.WorkflowID, got.WorkflowID)
	assert.Equal(t, env.ExecutionID, got.ExecutionID)
	assert.Equal(t, env.CorrelationID, got.CorrelationID)
	assert.True(t, env.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, env.Data, got.Data)
}

func TestEnvelopeWireFieldNames(t *testing.T) {
	env := NewEnvelope(EventTaskStarted, "ws-1", map[string]any{})
	env.TaskID = "t-1"
	env.RunID = "r-1"

	data, err := env.MarshalWire()
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{"event_id", "event_type", "timestamp", "version", "workspace_id", "task_id", "run_id", "data"} {
		assert.Contains(t, raw, key)
	}
	// Empty optional fields are omitted, not serialized as "".
	assert.NotContains(t, raw, "agent_id")
	assert.NotContains(t, raw, "workflow_id")

	// Timestamp is RFC 3339 UTC.
	ts, ok := raw["timestamp"].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(env.Timestamp))
}

func TestUnmarshalWireRejectsInvalid(t *testing.T) {
	_, err := UnmarshalWire([]byte(`{"event_type":"task.created"}`))
	assert.Error(t, err)

	_, err = UnmarshalWire([]byte(`not json`))
	assert.Error(t, err)
}

func TestEnvelopeTopics(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Envelope)
		want   []string
	}{
		{
			name:   "workspace only",
			mutate: func(*Envelope) {},
			want:   []string{"all", "workspace:ws-1"},
		},
		{
			name:   "task event",
			mutate: func(e *Envelope) { e.TaskID = "t-1" },
			want:   []string{"all", "workspace:ws-1", "workspace:ws-1.task:t-1"},
		},
		{
			name:   "workflow event",
			mutate: func(e *Envelope) { e.WorkflowID = "wf-1" },
			want:   []string{"all", "workspace:ws-1", "workspace:ws-1.workflow:wf-1"},
		},
		{
			name:   "agent event",
			mutate: func(e *Envelope) { e.AgentID = "a-1" },
			want:   []string{"all", "workspace:ws-1", "workspace:ws-1.agent:a-1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnvelope(EventTaskCreated, "ws-1", nil)
			tt.mutate(env)
			assert.Equal(t, tt.want, env.Topics())
			assert.Equal(t, tt.want[len(tt.want)-1], env.PrimaryTopic())
		})
	}
}
