package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/models"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RolePlanner.Valid())
	assert.True(t, RoleReviewer.Valid())
	assert.False(t, Role("manager").Valid())
}

func TestChooseRequiresCapabilities(t *testing.T) {
	a := NewAssigner()

	candidates := []Instance{
		{ID: "a1", Capabilities: []string{"analysis"}},
		{ID: "a2", Capabilities: []string{"analysis", "planning", "code_review"}},
	}

	picked, err := a.Choose(RolePlanner, candidates, nil)
	require.NoError(t, err)
	assert.Equal(t, "a2", picked.ID)

	_, err = a.Choose(RoleEngineer, candidates, nil)
	assert.True(t, models.IsKind(err, models.ErrKindNotFound))
}

func TestChoosePrefersLeastLoaded(t *testing.T) {
	a := NewAssigner()

	candidates := []Instance{
		{ID: "busy", Capabilities: []string{"code_generation"}, ActiveSteps: 4},
		{ID: "idle", Capabilities: []string{"code_generation"}, ActiveSteps: 0},
	}
	picked, err := a.Choose(RoleEngineer, candidates, nil)
	require.NoError(t, err)
	assert.Equal(t, "idle", picked.ID)
}

func TestChooseRoundRobinWithinTies(t *testing.T) {
	a := NewAssigner()

	candidates := []Instance{
		{ID: "e1", Capabilities: []string{"code_generation"}},
		{ID: "e2", Capabilities: []string{"code_generation"}},
		{ID: "e3", Capabilities: []string{"code_generation"}},
	}

	var order []string
	for i := 0; i < 6; i++ {
		picked, err := a.Choose(RoleEngineer, candidates, nil)
		require.NoError(t, err)
		order = append(order, picked.ID)
	}
	assert.Equal(t, []string{"e1", "e2", "e3", "e1", "e2", "e3"}, order)
}

func TestChooseRotationIsPerRole(t *testing.T) {
	a := NewAssigner()

	engineers := []Instance{
		{ID: "e1", Capabilities: []string{"code_generation"}},
		{ID: "e2", Capabilities: []string{"code_generation"}},
	}
	reviewers := []Instance{
		{ID: "r1", Capabilities: []string{"code_review"}},
		{ID: "r2", Capabilities: []string{"code_review"}},
	}

	first, err := a.Choose(RoleEngineer, engineers, nil)
	require.NoError(t, err)
	assert.Equal(t, "e1", first.ID)

	// Reviewer rotation starts fresh regardless of engineer picks.
	picked, err := a.Choose(RoleReviewer, reviewers, nil)
	require.NoError(t, err)
	assert.Equal(t, "r1", picked.ID)
}

func TestChooseExcludesFailedInstances(t *testing.T) {
	a := NewAssigner()

	candidates := []Instance{
		{ID: "e1", Capabilities: []string{"code_generation"}},
		{ID: "e2", Capabilities: []string{"code_generation"}, ActiveSteps: 2},
	}

	picked, err := a.Choose(RoleEngineer, candidates, map[string]bool{"e1": true})
	require.NoError(t, err)
	assert.Equal(t, "e2", picked.ID)

	_, err = a.Choose(RoleEngineer, candidates, map[string]bool{"e1": true, "e2": true})
	assert.True(t, models.IsKind(err, models.ErrKindNotFound))
}

func TestHasCapabilities(t *testing.T) {
	assert.True(t, hasCapabilities([]string{"a", "b", "c"}, []string{"a", "c"}))
	assert.True(t, hasCapabilities(nil, nil))
	assert.False(t, hasCapabilities([]string{"a"}, []string{"a", "b"}))
}
