// Package clustergraph builds the directed weighted pseudograph of
// inter-cluster latency (spec.md §4.3).
package clustergraph

import (
	"sort"

	"github.com/UIBK-DPS-DC/Pulse/core"
	"github.com/UIBK-DPS-DC/Pulse/model"
)

// ClusterGraph is a directed weighted pseudograph on clusters, with edges
// carrying the latency value as weight. Built once; read-only afterward.
type ClusterGraph struct {
	g *core.Graph
}

// Build constructs a ClusterGraph from a name-keyed set of clusters and a
// dense latency[from][to] table. A cell is added as an edge only when both
// its row and column name a known cluster; missing or absent cells are
// skipped.
func Build(clusters map[string]model.Cluster, latency map[string]map[string]float64) *ClusterGraph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())

	names := make([]string, 0, len(clusters))
	for name := range clusters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_ = g.AddVertex(name, "cluster")
	}

	froms := make([]string, 0, len(latency))
	for from := range latency {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	for _, from := range froms {
		if _, ok := clusters[from]; !ok {
			continue
		}
		tos := make([]string, 0, len(latency[from]))
		for to := range latency[from] {
			tos = append(tos, to)
		}
		sort.Strings(tos)
		for _, to := range tos {
			if _, ok := clusters[to]; !ok {
				continue
			}
			_, _ = g.AddEdge(from, to, latency[from][to])
		}
	}

	return &ClusterGraph{g: g}
}

// Latency returns the stored latency value for a from→to edge, and
// whether such an edge exists.
func (cg *ClusterGraph) Latency(from, to string) (float64, bool) {
	edges := cg.g.EdgesBetween(from, to)
	if len(edges) == 0 {
		return 0, false
	}

	return edges[0].Weight, true
}

// Graph exposes the underlying core.Graph for export and inspection.
func (cg *ClusterGraph) Graph() *core.Graph { return cg.g }
