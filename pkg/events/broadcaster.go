package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// subscriberBuffer is the default bounded buffer per subscriber.
const subscriberBuffer = 1024

// persistRetries bounds persistence attempts before an event is
// dead-lettered (logged with its full payload, never silently dropped).
const persistRetries = 3

// EventStore is the append-only persistence sink behind the mandatory
// persistence subscriber. Implemented by the events publisher.
type EventStore interface {
	Persist(ctx context.Context, envelope *Envelope) error
}

// Subscription is a live event feed. Events arrives on C in publish order
// per source entity. When the buffer overflows, events are dropped and a
// synthetic subscriber_lagging envelope is delivered instead.
type Subscription struct {
	ID       string
	Patterns []string
	C        <-chan *Envelope

	// mu guards ch against the close/send race: fanOut may hold a
	// reference to a subscription that Unsubscribe is tearing down, so
	// every send and the close itself happen under the lock.
	mu      sync.Mutex
	ch      chan *Envelope
	closed  bool
	lagging bool
}

// deliver sends the envelope without blocking. On overflow the event is
// dropped and a single lag marker is injected until the subscriber
// drains. No-op once the subscription is closed.
func (s *Subscription) deliver(envelope *Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- envelope:
		s.lagging = false
		return
	default:
	}
	if !s.lagging {
		s.lagging = true
		lag := NewEnvelope(EventSubscriberLagging, envelope.WorkspaceID, map[string]any{
			"subscriber_id": s.ID,
			"dropped_after": envelope.EventID,
		})
		select {
		case s.ch <- lag:
		default:
			// Buffer still full: drop the oldest buffered event to make
			// room for the marker. Best effort beyond that — the
			// subscriber discovers the gap via catchup.
			select {
			case <-s.ch:
			default:
			}
			select {
			case s.ch <- lag:
			default:
			}
		}
	}
	slog.Warn("Subscriber lagging, event dropped",
		"subscriber_id", s.ID, "event_type", envelope.EventType)
}

// closeChan closes the feed exactly once, fencing off in-flight sends.
func (s *Subscription) closeChan() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

// Broadcaster fans out envelopes to pattern-matched subscribers and to the
// mandatory persistence subscriber. Publish never blocks the caller.
//
// The subscriber list is read on every publish and mutated rarely, so it
// is guarded by a RWMutex.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscription

	store     EventStore
	persistCh chan *Envelope

	closeOnce sync.Once
	closed    chan struct{}
	done      chan struct{}
}

// NewBroadcaster creates a broadcaster. store may be nil (persistence
// disabled, e.g. in tests).
func NewBroadcaster(store EventStore) *Broadcaster {
	b := &Broadcaster{
		subscribers: make(map[string]*Subscription),
		store:       store,
		persistCh:   make(chan *Envelope, subscriberBuffer),
		closed:      make(chan struct{}),
		done:        make(chan struct{}),
	}
	go b.persistLoop()
	return b
}

// Subscribe registers a subscriber for the given topic patterns.
// Subscribing again with the same ID replaces the previous subscription.
func (b *Broadcaster) Subscribe(subscriberID string, patterns []string) *Subscription {
	ch := make(chan *Envelope, subscriberBuffer)
	sub := &Subscription{
		ID:       subscriberID,
		Patterns: patterns,
		C:        ch,
		ch:       ch,
	}

	b.mu.Lock()
	if prev, ok := b.subscribers[subscriberID]; ok {
		prev.closeChan()
	}
	b.subscribers[subscriberID] = sub
	b.mu.Unlock()

	return sub
}

// Unsubscribe removes a subscriber. Idempotent.
func (b *Broadcaster) Unsubscribe(subscriberID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sub, ok := b.subscribers[subscriberID]; ok {
		sub.closeChan()
		delete(b.subscribers, subscriberID)
	}
}

// Publish fans an envelope out to matching subscribers and enqueues it for
// persistence. Non-blocking: a full subscriber buffer drops the event for
// that subscriber and marks it lagging.
func (b *Broadcaster) Publish(envelope *Envelope) {
	select {
	case <-b.closed:
		return
	default:
	}

	// Persistence first so the append-only store never trails a subscriber
	// that has already observed the event.
	if b.store != nil {
		select {
		case b.persistCh <- envelope:
		default:
			// Write queue saturated. Publish must not block the emitting
			// goroutine, so the event is dead-lettered instead of written
			// inline.
			b.deadLetter(envelope, errPersistQueueFull)
		}
	}

	b.fanOut(envelope)
}

// PublishTransient fans an envelope out to subscribers without persisting
// it. Used for high-frequency ephemeral events such as sandbox log chunks.
func (b *Broadcaster) PublishTransient(envelope *Envelope) {
	select {
	case <-b.closed:
		return
	default:
	}
	b.fanOut(envelope)
}

func (b *Broadcaster) fanOut(envelope *Envelope) {
	topics := envelope.Topics()

	b.mu.RLock()
	subs := make([]*Subscription, 0, len(b.subscribers))
	for _, sub := range b.subscribers {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	for _, sub := range subs {
		if !matchesAny(sub.Patterns, topics) {
			continue
		}
		sub.deliver(envelope)
	}
}

// Close stops the broadcaster, drains the persistence queue, and closes
// all subscriber channels.
func (b *Broadcaster) Close() {
	b.closeOnce.Do(func() {
		close(b.closed)
		close(b.persistCh)
		<-b.done

		b.mu.Lock()
		for id, sub := range b.subscribers {
			sub.closeChan()
			delete(b.subscribers, id)
		}
		b.mu.Unlock()
	})
}

// persistLoop is the mandatory persistence subscriber: a single consumer
// preserving publish order into the append-only store.
func (b *Broadcaster) persistLoop() {
	defer close(b.done)
	for envelope := range b.persistCh {
		b.persistWithRetry(envelope)
	}
}

// errPersistQueueFull marks events dead-lettered under queue saturation.
var errPersistQueueFull = errors.New("persistence queue saturated")

// persistWithRetry writes an envelope with bounded retries, then
// dead-letters it to the log. Persistence failures never drop silently.
func (b *Broadcaster) persistWithRetry(envelope *Envelope) {
	if b.store == nil {
		return
	}
	backoff := 100 * time.Millisecond
	var err error
	for attempt := 1; attempt <= persistRetries; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = b.store.Persist(ctx, envelope)
		cancel()
		if err == nil {
			return
		}
		time.Sleep(backoff)
		backoff *= 2
	}
	b.deadLetter(envelope, err)
}

// deadLetter logs a dropped event with its full payload so it can be
// replayed by hand. Events are never dropped silently.
func (b *Broadcaster) deadLetter(envelope *Envelope, err error) {
	payload, _ := envelope.MarshalWire()
	slog.Error("Event persistence failed, dead-lettering",
		"event_id", envelope.EventID,
		"event_type", envelope.EventType,
		"payload", string(payload),
		"error", err)
}

// matchesAny reports whether any subscriber pattern matches any of the
// envelope's topics. Patterns use glob syntax ("workspace:abc.*").
func matchesAny(patterns, topics []string) bool {
	for _, pattern := range patterns {
		for _, topic := range topics {
			if ok, err := doublestar.Match(pattern, topic); err == nil && ok {
				return true
			}
		}
	}
	return false
}
