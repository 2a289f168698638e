package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// WSEvent represents a received WebSocket message: an event envelope or
// a control message (connection.established, catchup.*, errors).
type WSEvent struct {
	Type     string          // event_type for envelopes, type for control messages
	Raw      json.RawMessage // original JSON
	Parsed   map[string]any  // parsed for assertions
	Received time.Time
}

// WSClient connects to the event stream endpoint and collects messages.
type WSClient struct {
	conn   *websocket.Conn
	events []WSEvent
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	doneCh chan struct{}
}

// WSConnect establishes a WebSocket connection to the test server and
// starts collecting messages in a background goroutine.
func WSConnect(ctx context.Context, wsURL string) (*WSClient, error) {
	conn, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{})
	if err != nil {
		return nil, fmt.Errorf("WebSocket dial: %w", err)
	}

	clientCtx, cancel := context.WithCancel(ctx)
	c := &WSClient{
		conn:   conn,
		ctx:    clientCtx,
		cancel: cancel,
		doneCh: make(chan struct{}),
	}

	go c.readLoop()

	return c, nil
}

// Subscribe sends a subscribe action for the given topic pattern.
// Subscribing triggers an automatic catchup of stored events.
func (c *WSClient) Subscribe(topic string) error {
	msg := map[string]string{
		"action": "subscribe",
		"topic":  topic,
	}
	data, _ := json.Marshal(msg)
	return c.conn.Write(c.ctx, websocket.MessageText, data)
}

// WaitForEvent waits until a message matching the predicate is received,
// or timeout.
func (c *WSClient) WaitForEvent(predicate func(WSEvent) bool, timeout time.Duration) (*WSEvent, error) {
	deadline := time.After(timeout)
	tick := time.NewTicker(25 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-deadline:
			return nil, fmt.Errorf("timeout waiting for event (collected %d events)", len(c.Events()))
		case <-tick.C:
			c.mu.Lock()
			for i := range c.events {
				if predicate(c.events[i]) {
					evt := c.events[i]
					c.mu.Unlock()
					return &evt, nil
				}
			}
			c.mu.Unlock()
		}
	}
}

// WaitForEventType waits for a message with the given type.
func (c *WSClient) WaitForEventType(eventType string, timeout time.Duration) (*WSEvent, error) {
	return c.WaitForEvent(func(e WSEvent) bool {
		return e.Type == eventType
	}, timeout)
}

// WaitForRunPhase waits for a run.phase event carrying the given phase.
func (c *WSClient) WaitForRunPhase(phase string, timeout time.Duration) (*WSEvent, error) {
	return c.WaitForEvent(func(e WSEvent) bool {
		if e.Type != "run.phase" {
			return false
		}
		data, _ := e.Parsed["data"].(map[string]any)
		return data != nil && data["phase"] == phase
	}, timeout)
}

// Events returns a snapshot of all collected messages.
func (c *WSClient) Events() []WSEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]WSEvent, len(c.events))
	copy(result, c.events)
	return result
}

// EventsByType returns messages filtered by type.
func (c *WSClient) EventsByType(eventType string) []WSEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	var result []WSEvent
	for _, e := range c.events {
		if e.Type == eventType {
			result = append(result, e)
		}
	}
	return result
}

// Close closes the WebSocket connection and waits for the read loop to
// exit.
func (c *WSClient) Close() error {
	c.cancel()
	_ = c.conn.CloseNow()
	<-c.doneCh
	return nil
}

// readLoop reads messages and appends them to the events slice.
func (c *WSClient) readLoop() {
	defer close(c.doneCh)
	for {
		_, data, err := c.conn.Read(c.ctx)
		if err != nil {
			return // connection closed or context cancelled
		}

		var parsed map[string]any
		if err := json.Unmarshal(data, &parsed); err != nil {
			continue // skip malformed messages
		}

		c.mu.Lock()
		c.events = append(c.events, WSEvent{
			Type:     wsEventType(parsed),
			Raw:      json.RawMessage(data),
			Parsed:   parsed,
			Received: time.Now(),
		})
		c.mu.Unlock()
	}
}
