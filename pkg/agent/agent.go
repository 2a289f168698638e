// Package agent holds the multi-agent controller logic: role definitions,
// the assignment policy, shared-context versioning rules, and per-instance
// memory pruning. Persistence-backed operations live in pkg/services;
// everything here is deterministic and unit-testable.
package agent

// Role is an agent's function in a run.
type Role string

// Agent roles.
const (
	RolePlanner  Role = "planner"
	RoleEngineer Role = "engineer"
	RoleTester   Role = "tester"
	RoleReviewer Role = "reviewer"
)

// Valid reports whether the role is known.
func (r Role) Valid() bool {
	switch r {
	case RolePlanner, RoleEngineer, RoleTester, RoleReviewer:
		return true
	}
	return false
}

// RequiredCapabilities is the capability set a role demands of an
// instance. An instance qualifies when this set is a subset of its own.
func (r Role) RequiredCapabilities() []string {
	switch r {
	case RolePlanner:
		return []string{"analysis", "planning"}
	case RoleEngineer:
		return []string{"code_generation"}
	case RoleTester:
		return []string{"code_execution", "test_authoring"}
	case RoleReviewer:
		return []string{"code_review"}
	default:
		return nil
	}
}
