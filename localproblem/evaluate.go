package localproblem

import (
	"math"

	"github.com/UIBK-DPS-DC/Pulse/characteristics"
	"github.com/UIBK-DPS-DC/Pulse/engine"
)

// Evaluate repairs s's cardinality per service, decodes the resulting
// assignment, and fills s.Objectives[ObjectiveCost] (minimize) and
// s.Objectives[ObjectiveFairness] (maximize), per spec.md §4.4.
//
// assignments and util are call-local: Evaluate never touches Problem
// state, so distinct solutions can be evaluated concurrently against the
// same Problem (spec.md §5).
func (p *Problem) Evaluate(s *engine.Solution, rng engine.RNG) {
	m := len(p.resources)
	assignments := make([][]bool, len(p.services))
	for k := range p.services {
		assignments[k] = make([]bool, m)
	}

	for k, svc := range p.services {
		target := min(svc.Replicas, len(p.feasible[k]))
		repair(s.Variables[k], target, rng)
		for _, x := range s.Variables[k].SetBits() {
			assignments[k][p.feasible[k][x]] = true
		}
	}

	cost := 0.0
	reqSum := make([]characteristics.Characteristics, m)
	for k, svc := range p.services {
		for i := 0; i < m; i++ {
			if assignments[k][i] {
				cost += p.cost[k][i]
				reqSum[i] = reqSum[i].Add(svc.Requirements)
			}
		}
	}

	fairnessSum := 0.0
	for i, res := range p.resources {
		util := reqSum[i].Divide(res.Characteristics).Max()
		fairnessSum += math.Pow(util, p.p)
	}

	s.Objectives[ObjectiveCost] = cost
	s.Objectives[ObjectiveFairness] = math.Pow(fairnessSum, 1/p.p)
}
