// Package resultgraph builds the output graphs of spec.md §4.9:
// AssignmentGraph for the local stage's selected solution, CompositionGraph
// for the global stage's. Both are weighted pseudographs over core.Graph,
// exported to GraphML and to a service×resource count matrix in CSV.
package resultgraph

import (
	"github.com/UIBK-DPS-DC/Pulse/core"
	"github.com/UIBK-DPS-DC/Pulse/localproblem"
)

// AssignmentGraph is the local stage's result graph: service vertices
// connected to the resource vertices their selected solution assigned
// them to, edges carrying the precomputed per-pair cost as weight.
type AssignmentGraph struct {
	g *core.Graph
}

// BuildAssignmentGraph constructs an AssignmentGraph from a local problem
// and a decoded solution (localproblem.Problem.Decode's output).
func BuildAssignmentGraph(p *localproblem.Problem, decoded localproblem.Decoded) *AssignmentGraph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())

	for k, name := range p.ServiceNames() {
		_ = g.AddVertex(name, "service")
		for _, i := range decoded[k] {
			resourceName := p.Resource(i).ResourceName
			if !g.HasVertex(resourceName) {
				_ = g.AddVertex(resourceName, "resource")
			}
			_, _ = g.AddEdge(name, resourceName, p.Cost(k, i))
		}
	}

	return &AssignmentGraph{g: g}
}

// Graph exposes the underlying core.Graph for inspection.
func (ag *AssignmentGraph) Graph() *core.Graph { return ag.g }
