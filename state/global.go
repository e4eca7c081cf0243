package state

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/UIBK-DPS-DC/Pulse/clustergraph"
	"github.com/UIBK-DPS-DC/Pulse/model"
	"github.com/UIBK-DPS-DC/Pulse/normalizer"
)

// ErrUnknownClusterInLatency indicates a latency table row or column names
// a cluster that was never added to the GlobalState.
var ErrUnknownClusterInLatency = errors.New("state: latency entry names an unknown cluster")

// GlobalState groups clusters and services of the whole federation,
// together with the pairwise inter-cluster latency table, and exposes the
// ClusterGraph built from them.
//
// Construction fails fast (returns a *multierror.Error aggregating every
// independent cause) if: any cluster's candidate lists don't have one
// entry per service×resource pair, or any latency entry names a cluster
// that was never added — per spec.md §7's "structural violation" error
// kind.
type GlobalState struct {
	clusters *orderedClusters
	services *orderedServices
	latency  map[string]map[string]float64

	graphOnce sync.Once
	graph     *clustergraph.ClusterGraph
}

// NewGlobalState builds a GlobalState from clusters, services, and a dense
// latency[from][to] table, validating the cross-cutting invariants of
// spec.md §3 before returning.
func NewGlobalState(
	clusters []model.Cluster,
	services []model.Service,
	latency map[string]map[string]float64,
) (*GlobalState, error) {
	gs := &GlobalState{
		clusters: newOrderedClusters(),
		services: newOrderedServices(),
		latency:  latency,
	}
	for _, c := range clusters {
		gs.clusters.put(c)
	}
	for _, s := range services {
		gs.services.put(s)
	}

	if err := gs.validate(); err != nil {
		return nil, err
	}

	return gs, nil
}

func (gs *GlobalState) validate() error {
	var result *multierror.Error

	nServices := gs.services.len()
	for _, name := range gs.clusters.names() {
		c, _ := gs.clusters.get(name)
		if len(c.Candidates) != nServices {
			result = multierror.Append(result, fmt.Errorf(
				"%w: cluster %q has %d candidate rows, want %d services",
				model.ErrCandidateLengthMismatch, name, len(c.Candidates), nServices))

			continue
		}
		if err := c.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("cluster %q: %w", name, err))
		}
	}

	for from, row := range gs.latency {
		if _, ok := gs.clusters.get(from); !ok {
			result = multierror.Append(result, fmt.Errorf("%w: %q (row)", ErrUnknownClusterInLatency, from))

			continue
		}
		for to := range row {
			if _, ok := gs.clusters.get(to); !ok {
				result = multierror.Append(result, fmt.Errorf("%w: %q (column)", ErrUnknownClusterInLatency, to))
			}
		}
	}

	return result.ErrorOrNil()
}

// ClusterNames returns cluster names in insertion order.
func (gs *GlobalState) ClusterNames() []string { return gs.clusters.names() }

// ServiceNames returns service names in insertion order.
func (gs *GlobalState) ServiceNames() []string { return gs.services.names() }

// ServiceCount returns the number of services (n in spec.md's notation).
func (gs *GlobalState) ServiceCount() int { return gs.services.len() }

// ClusterCount returns the number of clusters.
func (gs *GlobalState) ClusterCount() int { return gs.clusters.len() }

// Cluster returns the cluster at position i in insertion order.
func (gs *GlobalState) Cluster(i int) model.Cluster { return gs.clusters.at(i) }

// Service returns the service with the given name and whether it exists.
func (gs *GlobalState) Service(name string) (model.Service, bool) { return gs.services.get(name) }

// ServiceIndex returns the position of a service name among ServiceNames,
// or -1 if absent. The global problem's candidate rows are indexed by this
// position.
func (gs *GlobalState) ServiceIndex(name string) int {
	for i, n := range gs.services.names() {
		if n == name {
			return i
		}
	}

	return -1
}

// Clusters returns a name-keyed snapshot of every cluster.
func (gs *GlobalState) Clusters() map[string]model.Cluster {
	out := make(map[string]model.Cluster, gs.clusters.len())
	for _, name := range gs.clusters.names() {
		c, _ := gs.clusters.get(name)
		out[name] = c
	}

	return out
}

// Latency returns the raw latency table, keyed by cluster names.
func (gs *GlobalState) Latency() map[string]map[string]float64 { return gs.latency }

// ClusterGraph returns the ClusterGraph built once from this state's
// clusters and latency table.
func (gs *GlobalState) ClusterGraph() *clustergraph.ClusterGraph {
	gs.graphOnce.Do(func() {
		gs.graph = clustergraph.Build(gs.Clusters(), gs.latency)
	})

	return gs.graph
}

// NormalizedCandidateCosts returns, for service k, every cluster's
// candidate costs min-max normalized into [0,1] against the cost range
// observed across the whole federation for that service (spec.md §2
// "exposes ... a normalization of candidate lists", §4.10 Normalizer).
// The result is cluster-major then resource-minor, mirroring
// Cluster.Candidates[k]'s own indexing; a cluster with fewer than k+1
// candidate rows contributes an empty slice at its position.
func (gs *GlobalState) NormalizedCandidateCosts(k int) [][]float64 {
	names := gs.clusters.names()

	n := normalizer.New()
	for _, name := range names {
		c, _ := gs.clusters.get(name)
		if k >= len(c.Candidates) {
			continue
		}
		for _, cand := range c.Candidates[k] {
			n.Accept(cand.Cost)
		}
	}

	out := make([][]float64, len(names))
	for u, name := range names {
		c, _ := gs.clusters.get(name)
		if k >= len(c.Candidates) {
			continue
		}
		row := make([]float64, len(c.Candidates[k]))
		for i, cand := range c.Candidates[k] {
			row[i] = n.Normalize(cand.Cost)
		}
		out[u] = row
	}

	return out
}
