// Package selector picks a single solution out of a non-dominated front,
// per spec.md §4.7: a PreferenceSelector trading objectives by a scalar
// preference, and a KneenessSelector picking the front's geometric knee.
package selector

import (
	"math"
	"sort"

	"github.com/UIBK-DPS-DC/Pulse/engine"
)

// feasible returns the subset of solutions satisfying every constraint
// spec within tolerance; problems with no constraints pass every solution
// through unchanged.
func feasible(solutions []*engine.Solution, specs []engine.ConstraintSpec, tolerance float64) []*engine.Solution {
	out := make([]*engine.Solution, 0, len(solutions))
	for _, s := range solutions {
		if s.Feasible(specs, tolerance) {
			out = append(out, s)
		}
	}

	return out
}

// PreferenceSelector sorts the feasible front by objective 0 ascending and
// returns the element at index round(preference*(size-1)); preference
// must lie in [0,1]. Returns (nil, false) if no feasible solution exists.
func PreferenceSelector(solutions []*engine.Solution, specs []engine.ConstraintSpec, tolerance, preference float64) (*engine.Solution, bool) {
	feas := feasible(solutions, specs, tolerance)
	if len(feas) == 0 {
		return nil, false
	}

	sorted := make([]*engine.Solution, len(feas))
	copy(sorted, feas)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Objectives[0] < sorted[j].Objectives[0]
	})

	idx := int(math.Round(preference * float64(len(sorted)-1)))

	return sorted[idx], true
}

// KneenessSelector returns the front's knee: the interior point maximizing
// perpendicular distance from the line through the first and last points
// in (objective 0, objective 1) space. A front of fewer than 3 feasible
// solutions returns the first. Returns (nil, false) if no feasible
// solution exists.
func KneenessSelector(solutions []*engine.Solution, specs []engine.ConstraintSpec, tolerance float64) (*engine.Solution, bool) {
	feas := feasible(solutions, specs, tolerance)
	if len(feas) == 0 {
		return nil, false
	}
	if len(feas) < 3 {
		return feas[0], true
	}

	p0 := Point{feas[0].Objectives[0], feas[0].Objectives[1]}
	p1 := Point{feas[len(feas)-1].Objectives[0], feas[len(feas)-1].Objectives[1]}

	var knee Kneeness
	best := feas[0]
	bestDist := -1.0
	for _, s := range feas[1 : len(feas)-1] {
		d := knee.Compute(p0, p1, Point{s.Objectives[0], s.Objectives[1]})
		if d > bestDist {
			bestDist = d
			best = s
		}
	}

	return best, true
}
