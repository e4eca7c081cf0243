package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UIBK-DPS-DC/Pulse/engine"
	"github.com/UIBK-DPS-DC/Pulse/selector"
)

func sol(objectives ...float64) *engine.Solution {
	return &engine.Solution{Objectives: objectives}
}

func TestPreferenceSelectorSortsByObjectiveZero(t *testing.T) {
	front := []*engine.Solution{sol(3, 0), sol(1, 0), sol(2, 0)}

	low, ok := selector.PreferenceSelector(front, nil, 1e-9, 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, low.Objectives[0])

	high, ok := selector.PreferenceSelector(front, nil, 1e-9, 1)
	require.True(t, ok)
	assert.Equal(t, 3.0, high.Objectives[0])
}

func TestPreferenceSelectorEmptyReturnsAbsent(t *testing.T) {
	_, ok := selector.PreferenceSelector(nil, nil, 1e-9, 0.5)
	assert.False(t, ok)
}

func TestPreferenceSelectorFiltersInfeasible(t *testing.T) {
	specs := []engine.ConstraintSpec{{Target: 2}}
	feasibleSol := &engine.Solution{Objectives: []float64{5, 0}, Constraints: []float64{2}}
	infeasibleSol := &engine.Solution{Objectives: []float64{1, 0}, Constraints: []float64{0}}

	s, ok := selector.PreferenceSelector([]*engine.Solution{feasibleSol, infeasibleSol}, specs, 1e-9, 0)
	require.True(t, ok)
	assert.Same(t, feasibleSol, s)
}

// Invariant 6: selecting from a size-1 set returns that element regardless
// of selector.
func TestSelectorIdempotenceOnSingletonFront(t *testing.T) {
	only := sol(4, 7)
	front := []*engine.Solution{only}

	p, ok := selector.PreferenceSelector(front, nil, 1e-9, 0.37)
	require.True(t, ok)
	assert.Same(t, only, p)

	k, ok := selector.KneenessSelector(front, nil, 1e-9)
	require.True(t, ok)
	assert.Same(t, only, k)
}

func TestKneenessSelectorBelowThreeReturnsFirst(t *testing.T) {
	front := []*engine.Solution{sol(1, 1), sol(2, 2)}
	s, ok := selector.KneenessSelector(front, nil, 1e-9)
	require.True(t, ok)
	assert.Same(t, front[0], s)
}

func TestKneenessSelectorPicksMaximumPerpendicularDistance(t *testing.T) {
	// convex front: (0,0), (1,3) [knee], (2,0); the line runs (0,0)->(2,0),
	// so (1,3) has by far the largest perpendicular distance.
	knee := sol(1, 3)
	front := []*engine.Solution{sol(0, 0), knee, sol(2, 0)}

	s, ok := selector.KneenessSelector(front, nil, 1e-9)
	require.True(t, ok)
	assert.Same(t, knee, s)
}

func TestKneenessSelectorEmptyReturnsAbsent(t *testing.T) {
	_, ok := selector.KneenessSelector(nil, nil, 1e-9)
	assert.False(t, ok)
}

// Invariant 7: Kneeness.Compute(a, a, p) == 0 for any p (degenerate line);
// Kneeness.Compute(p0, p1, p0) == 0.
func TestKneenessComputeDegenerateAndEndpointCases(t *testing.T) {
	var k selector.Kneeness
	a := selector.Point{X: 5, Y: 5}
	p := selector.Point{X: 100, Y: -100}

	assert.Equal(t, 0.0, k.Compute(a, a, p))

	p0 := selector.Point{X: 0, Y: 0}
	p1 := selector.Point{X: 4, Y: 0}
	assert.Equal(t, 0.0, k.Compute(p0, p1, p0))
}

func TestKneenessComputeOffLineIsPositive(t *testing.T) {
	var k selector.Kneeness
	p0 := selector.Point{X: 0, Y: 0}
	p1 := selector.Point{X: 4, Y: 0}
	assert.InDelta(t, 3.0, k.Compute(p0, p1, selector.Point{X: 2, Y: 3}), 1e-9)
}
