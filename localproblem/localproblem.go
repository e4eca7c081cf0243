// Package localproblem implements the local assignment problem: within
// one cluster, pick which resources host each replica of each service,
// trading total cost against load fairness (spec.md §4.4).
package localproblem

import (
	"errors"
	"sort"

	"github.com/UIBK-DPS-DC/Pulse/engine"
	"github.com/UIBK-DPS-DC/Pulse/model"
	"github.com/UIBK-DPS-DC/Pulse/state"
)

// ErrInvalidFairnessExponent indicates p < 1, violating spec.md §4.4's
// "fairness exponent p ≥ 1" precondition.
var ErrInvalidFairnessExponent = errors.New("localproblem: fairness exponent must be >= 1")

// Objective indices into a Solution's Objectives slice.
const (
	ObjectiveCost = iota
	ObjectiveFairness
	numObjectives
)

// Problem is the local assignment problem: n bitset variables (one per
// service), two objectives (COST minimize, FAIRNESS maximize), no
// engine-level constraints — feasibility is restored inside Evaluate by
// cardinality repair (spec.md §4.4.1), never reported as a violation.
//
// Constructed once from a LocalState snapshot; every precomputed field
// below is read-only for the remainder of the Problem's life, so Evaluate
// can run concurrently for distinct solutions (spec.md §5's correction:
// no shared scratch buffers live on Problem).
type Problem struct {
	serviceNames []string
	services     []model.Service
	resources    []model.Resource
	feasible     [][]int       // feasible[k] = ascending resource indices
	cost         [][]float64   // cost[k][i] for every i in [0,m)
	p            float64
}

// New precomputes feasibility and per-(service,resource) cost from a
// LocalState snapshot and fairness exponent p (p >= 1).
func New(ls *state.LocalState, p float64) (*Problem, error) {
	if p < 1 {
		return nil, ErrInvalidFairnessExponent
	}

	names := ls.ServiceNames()
	services := make([]model.Service, len(names))
	for i, name := range names {
		services[i], _ = ls.Service(name)
	}

	m := ls.ResourceCount()
	resources := make([]model.Resource, m)
	for i := 0; i < m; i++ {
		resources[i] = ls.Resource(i)
	}

	sg := ls.ServiceGraph()

	feasible := make([][]int, len(services))
	cost := make([][]float64, len(services))
	for k, svc := range services {
		feas := make([]int, 0, m)
		row := make([]float64, m)

		outEdges, _ := sg.Graph().Neighbors(svc.ServiceName)
		inEdges, _ := sg.Graph().InEdges(svc.ServiceName)

		for i, res := range resources {
			if svc.Requirements.LessEqual(res.Characteristics) {
				feas = append(feas, i)
			}
			c := res.Cost.Fixed + svc.Data*res.Cost.Data
			for _, e := range outEdges {
				c += e.Payload * res.Cost.Out
			}
			for _, e := range inEdges {
				c += e.Payload * res.Cost.In
			}
			row[i] = c
		}
		sort.Ints(feas)
		feasible[k] = feas
		cost[k] = row
	}

	return &Problem{
		serviceNames: names,
		services:     services,
		resources:    resources,
		feasible:     feasible,
		cost:         cost,
		p:            p,
	}, nil
}

// NumberOfVariables returns n, the number of services.
func (p *Problem) NumberOfVariables() int { return len(p.services) }

// NumberOfObjectives returns 2 (COST, FAIRNESS).
func (p *Problem) NumberOfObjectives() int { return numObjectives }

// NumberOfConstraints returns 0 — the local problem enforces feasibility
// by repair, not by engine-level constraints.
func (p *Problem) NumberOfConstraints() int { return 0 }

// ObjectiveSenses returns (Minimize, Maximize) for (COST, FAIRNESS).
func (p *Problem) ObjectiveSenses() []engine.ObjectiveSense {
	return []engine.ObjectiveSense{engine.Minimize, engine.Maximize}
}

// ConstraintSpecs returns an empty slice; the local problem has none.
func (p *Problem) ConstraintSpecs() []engine.ConstraintSpec { return nil }

// NewSolution returns a blank solution: one cleared bitset per service,
// sized to that service's feasible-resource count.
func (p *Problem) NewSolution() *engine.Solution {
	vars := make([]*engine.Bitset, len(p.services))
	for k := range p.services {
		vars[k] = engine.NewBitset(len(p.feasible[k]))
	}

	return &engine.Solution{
		Variables:  vars,
		Objectives: make([]float64, numObjectives),
	}
}

// FeasibleResources returns the ascending feasible-resource indices for
// service k.
func (p *Problem) FeasibleResources(k int) []int { return p.feasible[k] }

// Cost returns the precomputed per-pair assignment cost c[k][i].
func (p *Problem) Cost(k, i int) float64 { return p.cost[k][i] }

// ResourceCount returns m, the number of resources.
func (p *Problem) ResourceCount() int { return len(p.resources) }

// Resource returns the resource at index i.
func (p *Problem) Resource(i int) model.Resource { return p.resources[i] }

// Service returns the service at index k.
func (p *Problem) Service(k int) model.Service { return p.services[k] }

// ServiceNames returns the problem's service names, index-aligned with
// every per-service slice above.
func (p *Problem) ServiceNames() []string { return p.serviceNames }
