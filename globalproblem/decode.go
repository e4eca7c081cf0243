package globalproblem

import "github.com/UIBK-DPS-DC/Pulse/engine"

// Assignment is one selected (service, cluster, resource) triple.
type Assignment struct {
	ClusterName   string
	ResourceIndex int
}

// Decoded is the decoded form of a global solution: Decoded[k] lists the
// (cluster, resource) assignments chosen for service k.
type Decoded [][]Assignment

// Decode translates an already-evaluated solution's bitsets through
// slots[k] into (cluster, resource) space.
func (p *Problem) Decode(s *engine.Solution) Decoded {
	names := p.gs.ClusterNames()
	out := make(Decoded, len(p.serviceNames))
	for k := range p.serviceNames {
		bits := s.Variables[k].SetBits()
		row := make([]Assignment, len(bits))
		for j, x := range bits {
			sl := p.slots[k][x]
			row[j] = Assignment{ClusterName: names[sl.cluster], ResourceIndex: sl.index}
		}
		out[k] = row
	}

	return out
}
