package agent

import (
	"sort"
	"sync"

	"github.com/mgx-dev/mgx/pkg/models"
)

// Instance is the assignment view of an agent instance.
type Instance struct {
	ID           string
	Role         Role
	Capabilities []string
	ActiveSteps  int
}

// Assigner implements the assignment policy: capability_match first,
// least_loaded second, round_robin within remaining ties. The rotation
// counter is per role and process-local; persistence-level load counters
// keep multi-pod assignment balanced.
type Assigner struct {
	mu       sync.Mutex
	rotation map[Role]int
}

// NewAssigner creates an Assigner.
func NewAssigner() *Assigner {
	return &Assigner{rotation: make(map[Role]int)}
}

// Choose selects an instance for the role. exclude removes instances that
// already failed this step (failover). Returns not_found when no instance
// qualifies.
func (a *Assigner) Choose(role Role, candidates []Instance, exclude map[string]bool) (*Instance, error) {
	eligible := make([]Instance, 0, len(candidates))
	required := role.RequiredCapabilities()
	for _, inst := range candidates {
		if exclude[inst.ID] {
			continue
		}
		if !hasCapabilities(inst.Capabilities, required) {
			continue
		}
		eligible = append(eligible, inst)
	}
	if len(eligible) == 0 {
		return nil, models.NewFailure(models.ErrKindNotFound,
			"no eligible agent instance for role %s", role)
	}

	// Least loaded, with ID as the deterministic secondary order so
	// round-robin rotates over a stable sequence.
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].ActiveSteps != eligible[j].ActiveSteps {
			return eligible[i].ActiveSteps < eligible[j].ActiveSteps
		}
		return eligible[i].ID < eligible[j].ID
	})

	minLoad := eligible[0].ActiveSteps
	tied := 0
	for tied < len(eligible) && eligible[tied].ActiveSteps == minLoad {
		tied++
	}

	a.mu.Lock()
	pick := eligible[a.rotation[role]%tied]
	a.rotation[role]++
	a.mu.Unlock()

	return &pick, nil
}

// hasCapabilities reports whether required ⊆ available.
func hasCapabilities(available, required []string) bool {
	if len(required) == 0 {
		return true
	}
	set := make(map[string]bool, len(available))
	for _, c := range available {
		set[c] = true
	}
	for _, c := range required {
		if !set[c] {
			return false
		}
	}
	return true
}
