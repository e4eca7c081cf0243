// Package servicegraph builds the directed weighted multigraph of
// inter-service interactions within one locality (spec.md §4.2).
package servicegraph

import (
	"sort"

	"github.com/UIBK-DPS-DC/Pulse/core"
	"github.com/UIBK-DPS-DC/Pulse/model"
)

// ServiceGraph is a directed weighted multigraph whose vertices are
// services and whose edges mirror Service.Interactions. Edge weight
// equals Interaction.Weight; edge payload carries Interaction.DataTransfer.
//
// Built once from a snapshot of services; read-only and freely shareable
// afterward.
type ServiceGraph struct {
	g *core.Graph
}

// Build constructs a ServiceGraph from a name-keyed set of services.
//
// For each service, every (targetName, interaction) pair in its
// Interactions map is added as a directed edge, provided targetName names
// a service present in the same set. Missing targets are dropped
// silently — this is not an error, per spec.md §3's invariant that an
// unresolved interaction target is simply ignored when building the
// graph.
func Build(services map[string]model.Service) *ServiceGraph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())

	names := make([]string, 0, len(services))
	for name := range services {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		_ = g.AddVertex(name, "service")
	}

	for _, name := range names {
		svc := services[name]
		targets := make([]string, 0, len(svc.Interactions))
		for target := range svc.Interactions {
			targets = append(targets, target)
		}
		sort.Strings(targets)

		for _, target := range targets {
			if _, ok := services[target]; !ok {
				continue
			}
			interaction := svc.Interactions[target]
			_, _ = g.AddEdge(name, target, interaction.Weight, core.WithPayload(interaction.DataTransfer))
		}
	}

	return &ServiceGraph{g: g}
}

// DataTransfer returns the dataTransfer payload of the first from→to edge,
// and whether such an edge exists.
func (sg *ServiceGraph) DataTransfer(from, to string) (float64, bool) {
	edges := sg.g.EdgesBetween(from, to)
	if len(edges) == 0 {
		return 0, false
	}

	return edges[0].Payload, true
}

// EdgeCount returns the number of (service, target) interaction edges.
func (sg *ServiceGraph) EdgeCount() int { return sg.g.EdgeCount() }

// Graph exposes the underlying core.Graph for export and inspection.
func (sg *ServiceGraph) Graph() *core.Graph { return sg.g }
