package localproblem

import "github.com/UIBK-DPS-DC/Pulse/engine"

// Initializer seeds a population by drawing replicas_k bit positions per
// service, sampling with replacement (spec.md §4.5). Sampling a
// bit already set has no effect, so the effective initial cardinality may
// be less than replicas_k; cardinality repair (§4.4.1) re-raises it to the
// target on first evaluation. This mirrors the reference behavior exactly
// — alternatives that sample without replacement are not spec-compliant
// (see DESIGN.md open question 3).
type Initializer struct {
	problem *Problem
}

// NewInitializer returns an Initializer bound to problem.
func NewInitializer(problem *Problem) *Initializer {
	return &Initializer{problem: problem}
}

// Initializer satisfies engine.HasInitializer, letting any driver that
// checks for the capability pick up replica-aware seeding automatically.
func (p *Problem) Initializer() engine.Initializer { return NewInitializer(p) }

// Initialize satisfies engine.Initializer: it returns one freshly seeded
// solution wrapped in a single-element slice. A driver builds a population
// by calling Initialize once per individual and flattening the results
// (see engine/testdriver), since the interface carries no population-size
// argument of its own.
func (init *Initializer) Initialize(rng engine.RNG) []*engine.Solution {
	return init.Population(1, rng)
}

// Population returns n seeded solutions; kept distinct from Initialize so
// callers that already know their population size can avoid a slice of
// single-element calls.
func (init *Initializer) Population(n int, rng engine.RNG) []*engine.Solution {
	out := make([]*engine.Solution, n)
	for idx := 0; idx < n; idx++ {
		s := init.problem.NewSolution()
		for k, svc := range init.problem.services {
			l := len(init.problem.feasible[k])
			if l == 0 {
				continue
			}
			for r := 0; r < svc.Replicas; r++ {
				s.Variables[k].Set(rng.Intn(l))
			}
		}
		out[idx] = s
	}

	return out
}
