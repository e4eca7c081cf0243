package resultgraph

import (
	"fmt"

	"github.com/UIBK-DPS-DC/Pulse/characteristics"
	"github.com/UIBK-DPS-DC/Pulse/core"
	"github.com/UIBK-DPS-DC/Pulse/globalproblem"
	"github.com/UIBK-DPS-DC/Pulse/model"
	"github.com/UIBK-DPS-DC/Pulse/state"
)

// CompositionGraph is the global stage's result graph: service vertices
// connected to the (cluster, resource) vertices their selected solution
// assigned them to, edges carrying the candidate's precomputed cost as
// weight and, as a secondary payload, that cluster's total latency
// contribution to the touched-cluster set (spec.md §4.9).
type CompositionGraph struct {
	g                      *core.Graph
	fixedCostPerResource   map[string]float64
	utilizationPerResource map[string]float64
}

func resourceLabel(cluster, resource string) string {
	return fmt.Sprintf("%s:%s", cluster, resource)
}

// BuildCompositionGraph constructs a CompositionGraph from a global state,
// its problem, and a decoded solution (globalproblem.Problem.Decode's
// output).
func BuildCompositionGraph(gs *state.GlobalState, p *globalproblem.Problem, decoded globalproblem.Decoded) *CompositionGraph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())

	fixedCost := make(map[string]float64)
	reqSum := make(map[string]characteristics.Characteristics)
	capacity := make(map[string]characteristics.Characteristics)

	clusterGraph := gs.ClusterGraph()

	var touchedOrder []string
	touched := make(map[string]bool)
	for k := range decoded {
		for _, a := range decoded[k] {
			if !touched[a.ClusterName] {
				touched[a.ClusterName] = true
				touchedOrder = append(touchedOrder, a.ClusterName)
			}
		}
	}

	for k, name := range p.ServiceNames() {
		_ = g.AddVertex(name, "service")
		svc, _ := gs.Service(name)

		for _, a := range decoded[k] {
			cluster := clusterFor(gs, a.ClusterName)
			resource := cluster.Resources[a.ResourceIndex]
			label := resourceLabel(a.ClusterName, resource.ResourceName)

			if !g.HasVertex(label) {
				_ = g.AddVertex(label, "cluster-resource")
				fixedCost[label] = resource.Cost.Fixed
				capacity[label] = resource.Characteristics
			}

			latencyContribution := 0.0
			for _, v := range touchedOrder {
				if l, ok := clusterGraph.Latency(a.ClusterName, v); ok {
					latencyContribution += l
				}
			}

			cost := cluster.Candidates[k][a.ResourceIndex].Cost
			_, _ = g.AddEdge(name, label, cost, core.WithPayload(latencyContribution))

			reqSum[label] = reqSum[label].Add(svc.Requirements)
		}
	}

	utilization := make(map[string]float64, len(reqSum))
	for label, sum := range reqSum {
		utilization[label] = sum.Divide(capacity[label]).Max()
	}

	return &CompositionGraph{g: g, fixedCostPerResource: fixedCost, utilizationPerResource: utilization}
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

// Graph exposes the underlying core.Graph for inspection.
func (cg *CompositionGraph) Graph() *core.Graph { return cg.g }

// FixedCostPerResource returns each touched (cluster, resource) label's
// static per-slot fixed cost.
func (cg *CompositionGraph) FixedCostPerResource() map[string]float64 { return cg.fixedCostPerResource }

// UtilizationPerResource returns each touched (cluster, resource) label's
// summed utilization vector reduced by Max (spec.md §4.9).
func (cg *CompositionGraph) UtilizationPerResource() map[string]float64 {
	return cg.utilizationPerResource
}
