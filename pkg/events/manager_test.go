package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, _ int64, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

func setupTestManager(t *testing.T, querier CatchupQuerier) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(querier, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func sendJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

// subscribeTopic sends a subscribe message and consumes the confirmation.
func subscribeTopic(t *testing.T, conn *websocket.Conn, topic string) {
	t.Helper()
	sendJSON(t, conn, ClientMessage{Action: "subscribe", Topic: topic})
	msg := readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])
	require.Equal(t, topic, msg["topic"])
}

// waitForSubscribers polls until the channel has n subscribers.
func waitForSubscribers(t *testing.T, m *ConnectionManager, channel string, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return m.subscriberCount(channel) == n
	}, 2*time.Second, 10*time.Millisecond)
}

func TestConnectionManagerConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManagerPing(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	sendJSON(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManagerSubscribeRequiresTopic(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	sendJSON(t, conn, ClientMessage{Action: "subscribe"})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
}

func TestConnectionManagerDispatchRouting(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribeTopic(t, conn, "workspace:ws-1.task:*")
	waitForSubscribers(t, manager, "workspace:ws-1", 1)

	// Matching task event: delivered.
	env := NewEnvelope(EventTaskStarted, "ws-1", map[string]any{"k": "v"})
	env.TaskID = "t-1"
	payload, err := env.MarshalWire()
	require.NoError(t, err)
	manager.Dispatch("workspace:ws-1", payload)

	msg := readJSON(t, conn)
	assert.Equal(t, EventTaskStarted, msg["event_type"])
	assert.Equal(t, "t-1", msg["task_id"])

	// Workspace-level event without a task: filtered out by the pattern.
	other := NewEnvelope(EventWorkflowStarted, "ws-1", nil)
	otherPayload, err := other.MarshalWire()
	require.NoError(t, err)
	manager.Dispatch("workspace:ws-1", otherPayload)

	// Next matching event arrives without the filtered one in between.
	env2 := NewEnvelope(EventTaskCompleted, "ws-1", nil)
	env2.TaskID = "t-1"
	payload2, err := env2.MarshalWire()
	require.NoError(t, err)
	manager.Dispatch("workspace:ws-1", payload2)

	msg = readJSON(t, conn)
	assert.Equal(t, EventTaskCompleted, msg["event_type"])
}

func TestConnectionManagerDispatchDeduplicates(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	// Overlapping subscriptions routed via two LISTEN channels.
	subscribeTopic(t, conn, "all")
	subscribeTopic(t, conn, "workspace:ws-1")
	waitForSubscribers(t, manager, "all", 1)
	waitForSubscribers(t, manager, "workspace:ws-1", 1)

	env := NewEnvelope(EventTaskCreated, "ws-1", nil)
	payload, err := env.MarshalWire()
	require.NoError(t, err)

	// The same event is NOTIFYed on each of its topics.
	manager.Dispatch("all", payload)
	manager.Dispatch("workspace:ws-1", payload)

	msg := readJSON(t, conn)
	assert.Equal(t, env.EventID, msg["event_id"])

	// A sentinel proves no duplicate was queued in between.
	sentinel := NewEnvelope(EventTaskCancelled, "ws-2", nil)
	sentinelPayload, err := sentinel.MarshalWire()
	require.NoError(t, err)
	manager.Dispatch("all", sentinelPayload)

	msg = readJSON(t, conn)
	assert.Equal(t, sentinel.EventID, msg["event_id"])
}

func TestConnectionManagerAutoCatchup(t *testing.T) {
	querier := &mockCatchupQuerier{events: []CatchupEvent{
		{ID: 41, Payload: map[string]any{"event_id": "e1", "event_type": EventTaskCreated, "workspace_id": "ws-1"}},
		{ID: 42, Payload: map[string]any{"event_id": "e2", "event_type": EventTaskStarted, "workspace_id": "ws-1"}},
	}}
	_, server := setupTestManager(t, querier)
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribeTopic(t, conn, "workspace:ws-1")

	msg := readJSON(t, conn)
	assert.Equal(t, "e1", msg["event_id"])
	assert.Equal(t, float64(41), msg["db_event_id"])

	msg = readJSON(t, conn)
	assert.Equal(t, "e2", msg["event_id"])
	assert.Equal(t, float64(42), msg["db_event_id"])
}

func TestConnectionManagerCatchupOverflow(t *testing.T) {
	events := make([]CatchupEvent, catchupLimit+1)
	for i := range events {
		events[i] = CatchupEvent{ID: int64(i + 1), Payload: map[string]any{"event_id": "e", "workspace_id": "ws-1"}}
	}
	_, server := setupTestManager(t, &mockCatchupQuerier{events: events})
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribeTopic(t, conn, "workspace:ws-1")

	for i := 0; i < catchupLimit; i++ {
		readJSON(t, conn)
	}
	msg := readJSON(t, conn)
	assert.Equal(t, "catchup.overflow", msg["type"])
	assert.Equal(t, true, msg["has_more"])
}

func TestConnectionManagerUnsubscribe(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribeTopic(t, conn, "workspace:ws-1")
	waitForSubscribers(t, manager, "workspace:ws-1", 1)

	sendJSON(t, conn, ClientMessage{Action: "unsubscribe", Topic: "workspace:ws-1"})
	waitForSubscribers(t, manager, "workspace:ws-1", 0)
}

func TestConnectionManagerDisconnectCleansUp(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribeTopic(t, conn, "workspace:ws-1")
	waitForSubscribers(t, manager, "workspace:ws-1", 1)
	require.Equal(t, 1, manager.ActiveConnections())

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0
	}, 2*time.Second, 10*time.Millisecond)
	waitForSubscribers(t, manager, "workspace:ws-1", 0)
}

func TestListenChannelForPattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"all", "all"},
		{"workspace:ws-1", "workspace:ws-1"},
		{"workspace:ws-1.task:t-1", "workspace:ws-1.task:t-1"},
		{"workspace:ws-1.task:*", "workspace:ws-1"},
		{"workspace:ws-1.*", "workspace:ws-1"},
		{"workspace:*", "all"},
		{"**", "all"},
		{"task:t-1", "all"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, listenChannelForPattern(tt.pattern))
		})
	}
}

func TestTopicsFromPayload(t *testing.T) {
	env := NewEnvelope(EventTaskStarted, "ws-1", nil)
	env.TaskID = "t-1"
	payload, err := env.MarshalWire()
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"all", "workspace:ws-1", "workspace:ws-1.task:t-1"},
		topicsFromPayload(payload))

	// Unparseable payloads fall back to the broadcast topic.
	assert.Equal(t, []string{TopicAll}, topicsFromPayload([]byte("junk")))
}
