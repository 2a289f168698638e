package events

import (
	"encoding/json"
	"fmt"
)

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for
// NOTIFY delivery and applies truncation if the result exceeds the limit.
// The stored payload never contains db_event_id; it exists only on the
// NOTIFY path so clients can track their catchup position.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(enriched)
}

// truncateIfNeeded returns the payload as-is when it fits within the
// NOTIFY limit, otherwise a minimal truncation envelope with only the
// routing fields the client needs to fetch the full event from the store.
func truncateIfNeeded(payload []byte) (string, error) {
	if len(payload) <= notifyLimit {
		return string(payload), nil
	}

	var routing struct {
		EventID     string `json:"event_id"`
		EventType   string `json:"event_type"`
		WorkspaceID string `json:"workspace_id"`
		AgentID     string `json:"agent_id"`
		TaskID      string `json:"task_id"`
		RunID       string `json:"run_id"`
		WorkflowID  string `json:"workflow_id"`
		ExecutionID string `json:"execution_id"`
		DBEventID   *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payload, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"event_id":     routing.EventID,
		"event_type":   routing.EventType,
		"workspace_id": routing.WorkspaceID,
		"truncated":    true,
	}
	for key, val := range map[string]string{
		"agent_id":     routing.AgentID,
		"task_id":      routing.TaskID,
		"run_id":       routing.RunID,
		"workflow_id":  routing.WorkflowID,
		"execution_id": routing.ExecutionID,
	} {
		if val != "" {
			truncated[key] = val
		}
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	out, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(out), nil
}
