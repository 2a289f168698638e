package agent

import (
	"sort"
	"time"
)

// Memory pruning defaults.
const (
	DefaultMemoryTTL        = 24 * time.Hour
	DefaultMemoryMaxEntries = 1000
	DefaultMemoryMaxBytes   = 100 << 20 // 100 MiB
)

// MemoryLimits bounds a single instance's memory store. Zero fields fall
// back to the defaults.
type MemoryLimits struct {
	TTL        time.Duration
	MaxEntries int
	MaxBytes   int64
}

func (l MemoryLimits) withDefaults() MemoryLimits {
	if l.TTL <= 0 {
		l.TTL = DefaultMemoryTTL
	}
	if l.MaxEntries <= 0 {
		l.MaxEntries = DefaultMemoryMaxEntries
	}
	if l.MaxBytes <= 0 {
		l.MaxBytes = DefaultMemoryMaxBytes
	}
	return l
}

// MemoryEntry is the pruning view of a stored memory record.
type MemoryEntry struct {
	Key        string
	SizeBytes  int64
	AccessedAt time.Time
}

// PlanEviction decides which keys to evict so the store satisfies the
// limits after every write. Order of checks: expired entries first, then
// LRU down to the entry cap, then LRU down to the byte cap. The input
// slice is not modified.
func PlanEviction(entries []MemoryEntry, limits MemoryLimits, now time.Time) []string {
	limits = limits.withDefaults()

	evict := make([]string, 0)
	live := make([]MemoryEntry, 0, len(entries))
	cutoff := now.Add(-limits.TTL)
	for _, e := range entries {
		if e.AccessedAt.Before(cutoff) {
			evict = append(evict, e.Key)
			continue
		}
		live = append(live, e)
	}

	// Oldest access first so LRU eviction is a prefix walk.
	sort.Slice(live, func(i, j int) bool {
		if !live[i].AccessedAt.Equal(live[j].AccessedAt) {
			return live[i].AccessedAt.Before(live[j].AccessedAt)
		}
		return live[i].Key < live[j].Key
	})

	for len(live) > limits.MaxEntries {
		evict = append(evict, live[0].Key)
		live = live[1:]
	}

	var total int64
	for _, e := range live {
		total += e.SizeBytes
	}
	for total > limits.MaxBytes && len(live) > 0 {
		evict = append(evict, live[0].Key)
		total -= live[0].SizeBytes
		live = live[1:]
	}

	return evict
}
