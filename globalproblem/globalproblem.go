// Package globalproblem implements the global composition problem: across
// the federation, pick which (cluster, resource) candidate hosts each
// replica of each service, trading total cost against inter-cluster
// latency (spec.md §4.6).
package globalproblem

import (
	"github.com/UIBK-DPS-DC/Pulse/engine"
	"github.com/UIBK-DPS-DC/Pulse/model"
	"github.com/UIBK-DPS-DC/Pulse/state"
)

// Objective indices into a Solution's Objectives slice.
const (
	ObjectiveCost = iota
	ObjectiveLatency
	numObjectives
)

// slot identifies one (cluster, resource) candidate pair reachable for a
// given service.
type slot struct {
	cluster int // index into gs.ClusterNames()
	index   int // resource index within that cluster
}

// Problem is the global composition problem: n bitset variables (one per
// service), two objectives (COST, LATENCY, both minimize), n equality
// constraints (cardinality(bitset_k) == replicas_k). Unlike the local
// problem, infeasible individuals are reported, not repaired — the engine
// is expected to filter on Solution.Feasible (spec.md §4.6).
type Problem struct {
	gs           *state.GlobalState
	serviceNames []string
	replicas     []int
	slots        [][]slot // slots[k], cluster-major then resource-minor order
	isComplete   bool
}

// New precomputes, for every service, the ordered list of (cluster,
// resource) slots whose candidate was assigned by the local stage.
func New(gs *state.GlobalState) *Problem {
	names := gs.ServiceNames()
	replicas := make([]int, len(names))
	for k, name := range names {
		svc, _ := gs.Service(name)
		replicas[k] = svc.Replicas
	}

	clusterNames := gs.ClusterNames()
	slots := make([][]slot, len(names))
	isComplete := true
	for k := range names {
		var row []slot
		for u, cname := range clusterNames {
			cluster := clusterFor(gs, cname)
			if k >= len(cluster.Candidates) {
				continue
			}
			for i, cand := range cluster.Candidates[k] {
				if cand.Assigned {
					row = append(row, slot{cluster: u, index: i})
				}
			}
		}
		slots[k] = row
		if len(row) == 0 {
			isComplete = false
		}
	}

	return &Problem{
		gs:           gs,
		serviceNames: names,
		replicas:     replicas,
		slots:        slots,
		isComplete:   isComplete,
	}
}

func clusterFor(gs *state.GlobalState, name string) model.Cluster {
	for i := 0; i < gs.ClusterCount(); i++ {
		c := gs.Cluster(i)
		if c.ClusterName == name {
			return c
		}
	}

	return model.Cluster{}
}

// IsComplete reports whether every service has at least one candidate
// slot; a false value means no feasible solution can exist (spec.md §4.6
// scenario S5).
func (p *Problem) IsComplete() bool { return p.isComplete }

// Slots returns the ordered (cluster, resource) candidates for service k,
// as (clusterName, resourceIndex) pairs.
func (p *Problem) Slots(k int) []Slot {
	out := make([]Slot, len(p.slots[k]))
	names := p.gs.ClusterNames()
	for i, s := range p.slots[k] {
		out[i] = Slot{ClusterName: names[s.cluster], ResourceIndex: s.index}
	}

	return out
}

// Slot is a public (cluster, resource) candidate reference.
type Slot struct {
	ClusterName   string
	ResourceIndex int
}

// NumberOfVariables returns n, the number of services.
func (p *Problem) NumberOfVariables() int { return len(p.serviceNames) }

// NumberOfObjectives returns 2 (COST, LATENCY).
func (p *Problem) NumberOfObjectives() int { return numObjectives }

// NumberOfConstraints returns n, one equality constraint per service.
func (p *Problem) NumberOfConstraints() int { return len(p.serviceNames) }

// ObjectiveSenses returns (Minimize, Minimize) for (COST, LATENCY).
func (p *Problem) ObjectiveSenses() []engine.ObjectiveSense {
	return []engine.ObjectiveSense{engine.Minimize, engine.Minimize}
}

// ConstraintSpecs returns one spec per service: cardinality(bitset_k) must
// equal replicas_k.
func (p *Problem) ConstraintSpecs() []engine.ConstraintSpec {
	specs := make([]engine.ConstraintSpec, len(p.serviceNames))
	for k, name := range p.serviceNames {
		specs[k] = engine.ConstraintSpec{Name: name, Target: float64(p.replicas[k])}
	}

	return specs
}

// NewSolution returns a blank solution: one cleared bitset per service,
// sized to that service's slot count, with constraints preallocated.
func (p *Problem) NewSolution() *engine.Solution {
	vars := make([]*engine.Bitset, len(p.serviceNames))
	for k := range p.serviceNames {
		vars[k] = engine.NewBitset(len(p.slots[k]))
	}

	return &engine.Solution{
		Variables:   vars,
		Objectives:  make([]float64, numObjectives),
		Constraints: make([]float64, len(p.serviceNames)),
	}
}

// ServiceNames returns the problem's service names, index-aligned with
// every per-service slice above.
func (p *Problem) ServiceNames() []string { return p.serviceNames }

// Replicas returns the replica target for service k.
func (p *Problem) Replicas(k int) int { return p.replicas[k] }
