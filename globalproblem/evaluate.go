package globalproblem

import "github.com/UIBK-DPS-DC/Pulse/engine"

// Evaluate fills s.Constraints[k] with cardinality(bitset_k), s.Objectives
// with total cost and inter-cluster latency, per spec.md §4.6. Unlike the
// local problem, Evaluate never mutates s.Variables — infeasible
// individuals are reported via Constraints, not repaired.
//
// touched and its bookkeeping are call-local, so distinct solutions can be
// evaluated concurrently against the same Problem (spec.md §5).
func (p *Problem) Evaluate(s *engine.Solution, rng engine.RNG) {
	clusterGraph := p.gs.ClusterGraph()
	clusterNames := p.gs.ClusterNames()

	var touchedOrder []string
	touched := make(map[string]bool)
	cost := 0.0

	for k := range p.serviceNames {
		bits := s.Variables[k].SetBits()
		s.Constraints[k] = float64(len(bits))

		for _, x := range bits {
			sl := p.slots[k][x]
			cname := clusterNames[sl.cluster]
			cluster := clusterFor(p.gs, cname)
			cost += cluster.Candidates[k][sl.index].Cost

			if !touched[cname] {
				touched[cname] = true
				touchedOrder = append(touchedOrder, cname)
			}
		}
	}

	latency := 0.0
	for _, u := range touchedOrder {
		for _, v := range touchedOrder {
			if l, ok := clusterGraph.Latency(u, v); ok {
				latency += l
			}
		}
	}

	s.Objectives[ObjectiveCost] = cost
	s.Objectives[ObjectiveLatency] = latency
}
