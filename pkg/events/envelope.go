package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Envelope is the language-independent wire format carried to every
// subscriber. JSON keys are wire-exact; minor envelope versions may add
// optional fields but never rename these.
type Envelope struct {
	EventID       string         `json:"event_id"`
	EventType     string         `json:"event_type"`
	Timestamp     time.Time      `json:"timestamp"`
	Version       string         `json:"version"`
	WorkspaceID   string         `json:"workspace_id"`
	AgentID       string         `json:"agent_id,omitempty"`
	TaskID        string         `json:"task_id,omitempty"`
	RunID         string         `json:"run_id,omitempty"`
	WorkflowID    string         `json:"workflow_id,omitempty"`
	ExecutionID   string         `json:"execution_id,omitempty"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	Data          map[string]any `json:"data"`
}

// NewEnvelope creates an envelope with a fresh event ID, UTC timestamp,
// and the current envelope version.
func NewEnvelope(eventType, workspaceID string, data map[string]any) *Envelope {
	if data == nil {
		data = map[string]any{}
	}
	return &Envelope{
		EventID:     uuid.New().String(),
		EventType:   eventType,
		Timestamp:   time.Now().UTC(),
		Version:     EnvelopeVersion,
		WorkspaceID: workspaceID,
		Data:        data,
	}
}

// Validate rejects envelopes missing required wire fields.
func (e *Envelope) Validate() error {
	if e.EventID == "" {
		return fmt.Errorf("envelope missing event_id")
	}
	if e.EventType == "" {
		return fmt.Errorf("envelope missing event_type")
	}
	if e.WorkspaceID == "" {
		return fmt.Errorf("envelope missing workspace_id")
	}
	if e.Version == "" {
		return fmt.Errorf("envelope missing version")
	}
	return nil
}

// Topics returns the hierarchical topics this envelope is published to,
// most specific last.
func (e *Envelope) Topics() []string {
	topics := []string{TopicAll, WorkspaceTopic(e.WorkspaceID)}
	if e.TaskID != "" {
		topics = append(topics, TaskTopic(e.WorkspaceID, e.TaskID))
	}
	if e.WorkflowID != "" {
		topics = append(topics, WorkflowTopic(e.WorkspaceID, e.WorkflowID))
	}
	if e.AgentID != "" {
		topics = append(topics, AgentTopic(e.WorkspaceID, e.AgentID))
	}
	return topics
}

// PrimaryTopic is the most specific topic, used as the persistence channel.
func (e *Envelope) PrimaryTopic() string {
	topics := e.Topics()
	return topics[len(topics)-1]
}

// MarshalWire serializes the envelope with RFC 3339 UTC timestamps.
func (e *Envelope) MarshalWire() ([]byte, error) {
	type alias Envelope
	return json.Marshal(&struct {
		*alias
		Timestamp string `json:"timestamp"`
	}{
		alias:     (*alias)(e),
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
	})
}

// UnmarshalWire parses a wire envelope.
func UnmarshalWire(data []byte) (*Envelope, error) {
	type alias Envelope
	aux := &struct {
		*alias
		Timestamp string `json:"timestamp"`
	}{}
	var e Envelope
	aux.alias = (*alias)(&e)
	if err := json.Unmarshal(data, aux); err != nil {
		return nil, fmt.Errorf("failed to parse envelope: %w", err)
	}
	if aux.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339Nano, aux.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse envelope timestamp: %w", err)
		}
		e.Timestamp = ts.UTC()
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}
