package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit caps the number of events returned in one catchup response.
// Beyond it the client gets a catchup.overflow message and should do a
// full REST reload instead of paginating.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when a topic
// gains its first subscriber. Without it a stalled connection would block
// the client's read loop indefinitely.
const listenTimeout = 10 * time.Second

// CatchupEvent is one stored event returned by the catchup query.
type CatchupEvent struct {
	ID      int64
	Payload map[string]any
}

// CatchupQuerier queries stored events matching a topic pattern.
// Implemented by the event service.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, topicPattern string, sinceID int64, limit int) ([]CatchupEvent, error)
}

// ConnectionManager owns the WebSocket connections of one pod and routes
// NOTIFY payloads to them by topic pattern. Clients subscribe with glob
// patterns; the manager LISTENs on the narrowest PG channel covering each
// pattern and filters per connection.
type ConnectionManager struct {
	connections map[string]*Connection
	mu          sync.RWMutex

	// channels maps a LISTEN channel to the connection IDs routed via it.
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	catchupQuerier CatchupQuerier

	listener   *NotifyListener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
}

// Connection is a single WebSocket client.
//
// patterns and listenChannels are accessed without a lock: all mutation
// happens on the goroutine that owns the connection (HandleConnection's
// read loop and its deferred cleanup).
type Connection struct {
	ID   string
	Conn *websocket.Conn

	// patterns maps a subscribed topic pattern to its LISTEN channel.
	patterns map[string]string
	// listenChannels is the set of LISTEN channels this connection is
	// routed through (reverse index of patterns values).
	listenChannels map[string]int

	ctx    context.Context
	cancel context.CancelFunc
}

// NewConnectionManager creates a ConnectionManager.
func NewConnectionManager(catchupQuerier CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:    make(map[string]*Connection),
		channels:       make(map[string]map[string]bool),
		catchupQuerier: catchupQuerier,
		writeTimeout:   writeTimeout,
	}
}

// SetListener wires the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both sides exist.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection runs the lifecycle of one WebSocket connection. Called
// by the HTTP handler after upgrade; blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:             connID,
		Conn:           conn,
		patterns:       make(map[string]string),
		listenChannels: make(map[string]int),
		ctx:            ctx,
		cancel:         cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// Dispatch routes a NOTIFY payload received on a channel to every
// connection whose patterns match the event's topics. An event is
// NOTIFYed on each of its hierarchical topics, so a connection routed
// through more than one of them would see duplicates; the event is
// delivered only via the most general channel the connection listens on.
func (m *ConnectionManager) Dispatch(channel string, payload []byte) {
	topics := topicsFromPayload(payload)

	m.channelMu.RLock()
	connIDs, exists := m.channels[channel]
	if !exists {
		m.channelMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	// Snapshot connection pointers, then send without holding mu: writes
	// may take up to writeTimeout each.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if preferredChannel(conn, topics) != channel {
			continue
		}
		if !matchesAnyPattern(conn, topics) {
			continue
		}
		if err := m.sendRaw(conn, payload); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "error", err)
		}
	}
}

// ActiveConnections returns the count of live WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount returns the number of connections routed via a channel.
// Unexported, used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[channel])
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Topic == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "topic is required for subscribe"})
			return
		}
		if err := m.subscribe(c, msg.Topic); err != nil {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"topic":   msg.Topic,
				"message": "failed to subscribe to topic",
			})
			return
		}
		m.sendJSON(c, map[string]string{
			"type":  "subscription.confirmed",
			"topic": msg.Topic,
		})
		// Auto catch-up so late subscribers see prior events.
		m.handleCatchup(ctx, c, msg.Topic, 0)

	case "unsubscribe":
		if msg.Topic == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "topic is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Topic)

	case "catchup":
		if msg.Topic == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "topic is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.handleCatchup(ctx, c, msg.Topic, int64(*msg.LastEventID))
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe registers a topic pattern and starts LISTEN on its covering
// channel if this pod has no other subscriber for it. LISTEN is
// synchronous so the auto-catchup that follows runs with LISTEN already
// active, closing the window where events published between catchup and
// LISTEN would be lost.
func (m *ConnectionManager) subscribe(c *Connection, pattern string) error {
	channel := listenChannelForPattern(pattern)

	m.channelMu.Lock()
	needsListen := false
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
		needsListen = true
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, listenCancel := context.WithTimeout(context.Background(), listenTimeout)
			defer listenCancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				m.cleanupFailedChannel(c, channel)
				return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	c.patterns[pattern] = channel
	c.listenChannels[channel]++
	return nil
}

// cleanupFailedChannel removes every subscriber routed via a channel after
// a LISTEN failure and notifies the affected connections (the triggering
// one is notified by the caller via the returned error).
//
// Between releasing channelMu and LISTEN completing, other goroutines may
// have subscribed to the same channel; they skipped LISTEN because the
// entry already existed and returned success. Those connections received
// subscription.confirmed but the PG LISTEN never came up. Clients must
// treat subscription.error as authoritative: discard received events for
// the topic and re-subscribe or fall back to REST polling.
func (m *ConnectionManager) cleanupFailedChannel(triggering *Connection, channel string) {
	m.channelMu.Lock()
	affectedIDs := make([]string, 0, len(m.channels[channel]))
	for connID := range m.channels[channel] {
		if connID != triggering.ID {
			affectedIDs = append(affectedIDs, connID)
		}
	}
	delete(m.channels, channel)
	m.channelMu.Unlock()

	if len(affectedIDs) == 0 {
		return
	}

	m.mu.RLock()
	conns := make([]*Connection, 0, len(affectedIDs))
	for _, id := range affectedIDs {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", conn.ID, "channel", channel)
		m.sendJSON(conn, map[string]string{
			"type":    "subscription.error",
			"channel": channel,
			"message": "channel listen failed; subscription removed",
		})
	}
}

// unsubscribe removes a topic pattern; when no pattern of this connection
// still needs the covering channel, the connection leaves it, and the last
// connection leaving stops LISTEN.
func (m *ConnectionManager) unsubscribe(c *Connection, pattern string) {
	channel, ok := c.patterns[pattern]
	if !ok {
		return
	}
	delete(c.patterns, pattern)
	c.listenChannels[channel]--
	if c.listenChannels[channel] > 0 {
		return
	}
	delete(c.listenChannels, channel)

	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
			// Last subscriber left. The goroutine re-checks m.channels
			// before issuing UNLISTEN so a rapid unsubscribe/resubscribe
			// cycle does not drop an active LISTEN.
			m.listenerMu.RLock()
			l := m.listener
			m.listenerMu.RUnlock()
			if l != nil {
				go func() {
					m.channelMu.RLock()
					_, resubscribed := m.channels[channel]
					m.channelMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), channel); err != nil {
						slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
					}
				}()
			}
		}
	}
	m.channelMu.Unlock()
}

// handleCatchup sends stored events matching the pattern since lastEventID.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, pattern string, lastEventID int64) {
	if m.catchupQuerier == nil {
		return
	}

	events, err := m.catchupQuerier.GetCatchupEvents(ctx, pattern, lastEventID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "topic", pattern, "error", err)
		return
	}

	hasMore := len(events) > catchupLimit
	if hasMore {
		events = events[:catchupLimit]
	}

	// Stored payloads never contain db_event_id; it is injected here (as
	// on the NOTIFY path) so clients can track their catchup position.
	for _, evt := range events {
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("Failed to send catchup event",
				"connection_id", c.ID, "error", err)
			return
		}
	}

	if hasMore {
		m.sendJSON(c, map[string]any{
			"type":     "catchup.overflow",
			"topic":    pattern,
			"has_more": true,
		})
	}
}

func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for pattern := range c.patterns {
		m.unsubscribe(c, pattern)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}

// listenChannelForPattern maps a topic pattern to the narrowest concrete
// PG channel covering it. Every event is NOTIFYed on each of its
// hierarchical topics, so listening on the pattern's literal prefix is
// sufficient: "workspace:abc.task:*" is covered by LISTEN "workspace:abc",
// while patterns with no literal workspace segment fall back to "all".
func listenChannelForPattern(pattern string) string {
	if pattern == TopicAll {
		return TopicAll
	}
	head, rest, hasRest := strings.Cut(pattern, ".")
	if !strings.HasPrefix(head, "workspace:") || strings.ContainsAny(head, "*?[{") {
		return TopicAll
	}
	if !hasRest || strings.ContainsAny(rest, "*?[{") {
		return head
	}
	// Fully literal entity topic: listen on the exact channel.
	return pattern
}

// preferredChannel returns the most general LISTEN channel of this
// connection among the event's topics (topics are ordered general to
// specific). Delivery happens only via this channel.
func preferredChannel(c *Connection, topics []string) string {
	for _, topic := range topics {
		if c.listenChannels[topic] > 0 {
			return topic
		}
	}
	return ""
}

// matchesAnyPattern reports whether any of the connection's patterns
// matches any of the event's topics.
func matchesAnyPattern(c *Connection, topics []string) bool {
	for pattern := range c.patterns {
		for _, topic := range topics {
			if ok, err := doublestar.Match(pattern, topic); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// topicsFromPayload reconstructs the hierarchical topics of a NOTIFY
// payload. Works for both full envelopes and truncation envelopes, which
// preserve the routing IDs.
func topicsFromPayload(payload []byte) []string {
	var routing struct {
		WorkspaceID string `json:"workspace_id"`
		TaskID      string `json:"task_id"`
		WorkflowID  string `json:"workflow_id"`
		AgentID     string `json:"agent_id"`
	}
	if err := json.Unmarshal(payload, &routing); err != nil || routing.WorkspaceID == "" {
		return []string{TopicAll}
	}
	e := Envelope{
		WorkspaceID: routing.WorkspaceID,
		TaskID:      routing.TaskID,
		WorkflowID:  routing.WorkflowID,
		AgentID:     routing.AgentID,
	}
	return e.Topics()
}
