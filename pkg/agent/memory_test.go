package agent

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestPlanEvictionExpired(t *testing.T) {
	now := time.Now()
	entries := []MemoryEntry{
		{Key: "fresh", SizeBytes: 10, AccessedAt: now.Add(-time.Hour)},
		{Key: "stale", SizeBytes: 10, AccessedAt: now.Add(-25 * time.Hour)},
	}
	evict := PlanEviction(entries, MemoryLimits{}, now)
	assert.Equal(t, []string{"stale"}, evict)
}

func TestPlanEvictionCountLRU(t *testing.T) {
	now := time.Now()
	entries := []MemoryEntry{
		{Key: "oldest", SizeBytes: 1, AccessedAt: now.Add(-3 * time.Minute)},
		{Key: "middle", SizeBytes: 1, AccessedAt: now.Add(-2 * time.Minute)},
		{Key: "newest", SizeBytes: 1, AccessedAt: now.Add(-1 * time.Minute)},
	}
	evict := PlanEviction(entries, MemoryLimits{MaxEntries: 2}, now)
	assert.Equal(t, []string{"oldest"}, evict)
}

func TestPlanEvictionByteLRU(t *testing.T) {
	now := time.Now()
	entries := []MemoryEntry{
		{Key: "big-old", SizeBytes: 60, AccessedAt: now.Add(-3 * time.Minute)},
		{Key: "big-mid", SizeBytes: 60, AccessedAt: now.Add(-2 * time.Minute)},
		{Key: "small", SizeBytes: 10, AccessedAt: now.Add(-1 * time.Minute)},
	}
	// 130 bytes stored, 70 allowed: drop the two oldest.
	evict := PlanEviction(entries, MemoryLimits{MaxBytes: 70}, now)
	assert.Equal(t, []string{"big-old", "big-mid"}, evict)
}

func TestPlanEvictionNothingToDo(t *testing.T) {
	now := time.Now()
	entries := []MemoryEntry{
		{Key: "a", SizeBytes: 5, AccessedAt: now},
	}
	assert.Empty(t, PlanEviction(entries, MemoryLimits{}, now))
}

func TestPlanEvictionInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	now := time.Unix(1_700_000_000, 0)
	limits := MemoryLimits{TTL: time.Hour, MaxEntries: 8, MaxBytes: 500}

	genEntries := gen.SliceOf(gopter.CombineGens(
		gen.IntRange(0, 7200),  // seconds since access
		gen.Int64Range(1, 200), // size
	).Map(func(vals []interface{}) MemoryEntry {
		return MemoryEntry{
			SizeBytes:  vals[1].(int64),
			AccessedAt: now.Add(-time.Duration(vals[0].(int)) * time.Second),
		}
	}))

	properties.Property("post-write limits hold", prop.ForAll(
		func(entries []MemoryEntry) bool {
			for i := range entries {
				entries[i].Key = fmt.Sprintf("k%d", i)
			}
			evicted := map[string]bool{}
			for _, key := range PlanEviction(entries, limits, now) {
				evicted[key] = true
			}

			var count int
			var total int64
			cutoff := now.Add(-limits.TTL)
			for _, e := range entries {
				if evicted[e.Key] {
					continue
				}
				if e.AccessedAt.Before(cutoff) {
					return false
				}
				count++
				total += e.SizeBytes
			}
			return count <= limits.MaxEntries && total <= limits.MaxBytes
		},
		genEntries,
	))

	properties.TestingRun(t)
}
