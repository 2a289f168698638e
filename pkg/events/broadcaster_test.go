package events

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore implements EventStore and records persisted envelopes.
type recordingStore struct {
	mu        sync.Mutex
	envelopes []*Envelope
	failures  int // fail this many Persist calls before succeeding
}

func (s *recordingStore) Persist(_ context.Context, envelope *Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures > 0 {
		s.failures--
		return fmt.Errorf("store unavailable")
	}
	s.envelopes = append(s.envelopes, envelope)
	return nil
}

func (s *recordingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.envelopes)
}

// blockingStore implements EventStore with a Persist that blocks until
// release is closed, pinning the persistence loop.
type blockingStore struct {
	release chan struct{}
}

func (s *blockingStore) Persist(_ context.Context, _ *Envelope) error {
	<-s.release
	return nil
}

func collectEvents(sub *Subscription, n int, timeout time.Duration) []*Envelope {
	var out []*Envelope
	deadline := time.After(timeout)
	for len(out) < n {
		select {
		case env, ok := <-sub.C:
			if !ok {
				return out
			}
			out = append(out, env)
		case <-deadline:
			return out
		}
	}
	return out
}

func TestBroadcasterDeliversToMatchingSubscribers(t *testing.T) {
	b := NewBroadcaster(nil)
	defer b.Close()

	all := b.Subscribe("all-sub", []string{"all"})
	ws := b.Subscribe("ws-sub", []string{"workspace:ws-1"})
	task := b.Subscribe("task-sub", []string{"workspace:ws-1.task:*"})
	other := b.Subscribe("other-sub", []string{"workspace:ws-2"})

	env := NewEnvelope(EventTaskStarted, "ws-1", nil)
	env.TaskID = "t-1"
	b.Publish(env)

	assert.Len(t, collectEvents(all, 1, time.Second), 1)
	assert.Len(t, collectEvents(ws, 1, time.Second), 1)
	assert.Len(t, collectEvents(task, 1, time.Second), 1)
	assert.Empty(t, collectEvents(other, 1, 100*time.Millisecond))
}

func TestBroadcasterPreservesPublishOrder(t *testing.T) {
	b := NewBroadcaster(nil)
	defer b.Close()

	sub := b.Subscribe("sub", []string{"workspace:ws-1.task:t-1"})

	const n = 50
	for i := 0; i < n; i++ {
		env := NewEnvelope(EventRunPhase, "ws-1", map[string]any{"seq": i})
		env.TaskID = "t-1"
		b.Publish(env)
	}

	got := collectEvents(sub, n, 2*time.Second)
	require.Len(t, got, n)
	for i, env := range got {
		assert.Equal(t, i, env.Data["seq"])
	}
}

func TestBroadcasterResubscribeReplacesPrevious(t *testing.T) {
	b := NewBroadcaster(nil)
	defer b.Close()

	first := b.Subscribe("sub", []string{"all"})
	second := b.Subscribe("sub", []string{"all"})

	// The first subscription's channel is closed on replacement.
	_, ok := <-first.C
	assert.False(t, ok)

	b.Publish(NewEnvelope(EventTaskCreated, "ws-1", nil))
	assert.Len(t, collectEvents(second, 1, time.Second), 1)
}

func TestBroadcasterUnsubscribeIdempotent(t *testing.T) {
	b := NewBroadcaster(nil)
	defer b.Close()

	b.Subscribe("sub", []string{"all"})
	b.Unsubscribe("sub")
	b.Unsubscribe("sub") // no panic

	// Publishing after unsubscribe must not block or panic.
	b.Publish(NewEnvelope(EventTaskCreated, "ws-1", nil))
}

func TestBroadcasterLaggingSubscriber(t *testing.T) {
	b := NewBroadcaster(nil)
	defer b.Close()

	sub := b.Subscribe("slow", []string{"all"})

	// Never drain: overflow the buffer, then check the lag marker.
	for i := 0; i < subscriberBuffer+10; i++ {
		b.Publish(NewEnvelope(EventRunPhase, "ws-1", map[string]any{"seq": i}))
	}

	got := collectEvents(sub, subscriberBuffer+1, 2*time.Second)
	require.Len(t, got, subscriberBuffer)

	var lagging int
	for _, env := range got {
		if env.EventType == EventSubscriberLagging {
			lagging++
			assert.Equal(t, "slow", env.Data["subscriber_id"])
		}
	}
	// Exactly one lag marker despite multiple drops.
	assert.Equal(t, 1, lagging)
}

func TestBroadcasterPersistsAllEvents(t *testing.T) {
	store := &recordingStore{}
	b := NewBroadcaster(store)

	const n = 20
	for i := 0; i < n; i++ {
		env := NewEnvelope(EventTaskCreated, "ws-1", map[string]any{"seq": i})
		b.Publish(env)
	}
	b.Close() // drains the persistence queue

	require.Equal(t, n, store.count())
	for i, env := range store.envelopes {
		assert.Equal(t, i, env.Data["seq"])
	}
}

func TestBroadcasterPersistRetries(t *testing.T) {
	store := &recordingStore{failures: 2}
	b := NewBroadcaster(store)

	b.Publish(NewEnvelope(EventTaskCreated, "ws-1", nil))
	b.Close()

	assert.Equal(t, 1, store.count())
}

func TestBroadcasterPublishTransientSkipsStore(t *testing.T) {
	store := &recordingStore{}
	b := NewBroadcaster(store)

	sub := b.Subscribe("sub", []string{"all"})
	b.PublishTransient(NewEnvelope(EventSandboxLogs, "ws-1", map[string]any{"chunk": "hello"}))

	got := collectEvents(sub, 1, time.Second)
	require.Len(t, got, 1)
	assert.Equal(t, EventSandboxLogs, got[0].EventType)

	b.Close()
	assert.Zero(t, store.count())
}

func TestBroadcasterPublishDuringSubscriberChurn(t *testing.T) {
	b := NewBroadcaster(nil)
	defer b.Close()

	// Publishers race subscribe/unsubscribe on shared IDs: a publish that
	// holds a reference to a subscription being torn down must never send
	// on its closed channel.
	stop := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				env := NewEnvelope(EventRunPhase, "ws-1", map[string]any{"from": n})
				env.TaskID = "t-1"
				b.Publish(env)
			}
		}(i)
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("churn-%d", n)
			for {
				select {
				case <-stop:
					return
				default:
				}
				b.Subscribe(id, []string{"all"})
				b.Unsubscribe(id)
			}
		}(i)
	}

	time.Sleep(200 * time.Millisecond)
	close(stop)
	wg.Wait()
}

func TestBroadcasterPublishNonBlockingWhenStoreSaturated(t *testing.T) {
	store := &blockingStore{release: make(chan struct{})}
	b := NewBroadcaster(store)

	// First event pins the persistence loop inside Persist; the rest fill
	// the write queue to capacity.
	for i := 0; i < subscriberBuffer+1; i++ {
		b.Publish(NewEnvelope(EventTaskCreated, "ws-1", map[string]any{"seq": i}))
	}

	// With the queue saturated, Publish dead-letters instead of writing
	// inline and returns immediately.
	start := time.Now()
	b.Publish(NewEnvelope(EventTaskCreated, "ws-1", nil))
	assert.Less(t, time.Since(start), time.Second)

	close(store.release)
	b.Close()
}

func TestBroadcasterPublishAfterClose(t *testing.T) {
	b := NewBroadcaster(nil)
	b.Close()
	b.Publish(NewEnvelope(EventTaskCreated, "ws-1", nil)) // no panic
	b.Close()                                             // idempotent
}

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		topics   []string
		want     bool
	}{
		{"exact", []string{"workspace:a"}, []string{"all", "workspace:a"}, true},
		{"glob tail", []string{"workspace:a.task:*"}, []string{"all", "workspace:a", "workspace:a.task:t1"}, true},
		{"no match", []string{"workspace:b"}, []string{"all", "workspace:a"}, false},
		{"all", []string{"all"}, []string{"all", "workspace:a"}, true},
		{"empty patterns", nil, []string{"all"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesAny(tt.patterns, tt.topics))
		})
	}
}
