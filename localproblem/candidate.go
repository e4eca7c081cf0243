package localproblem

import (
	"github.com/UIBK-DPS-DC/Pulse/engine"
	"github.com/UIBK-DPS-DC/Pulse/model"
)

// MarshalCandidates converts a local solution into the per-(service,
// resource) candidate matrix consumed by the global stage (spec.md §4.8):
// candidates[k][i].Assigned is true iff resource i was selected for
// service k in s, and Cost is always the precomputed c[k][i] regardless
// of assignment.
func (p *Problem) MarshalCandidates(s Decoded) [][]model.Candidate {
	m := len(p.resources)
	out := make([][]model.Candidate, len(p.services))
	for k := range p.services {
		row := make([]model.Candidate, m)
		assigned := make(map[int]bool, len(s[k]))
		for _, i := range s[k] {
			assigned[i] = true
		}
		for i := 0; i < m; i++ {
			row[i] = model.Candidate{Assigned: assigned[i], Cost: p.cost[k][i]}
		}
		out[k] = row
	}

	return out
}

// Decoded is the decoded form of a local solution: Decoded[k] lists the
// resource indices assigned to service k.
type Decoded [][]int

// Decode translates an already-evaluated solution's bitsets through
// feasible[k] into resource-index space.
func (p *Problem) Decode(s *engine.Solution) Decoded {
	out := make(Decoded, len(p.services))
	for k := range p.services {
		bits := s.Variables[k].SetBits()
		row := make([]int, len(bits))
		for j, x := range bits {
			row[j] = p.feasible[k][x]
		}
		out[k] = row
	}

	return out
}
