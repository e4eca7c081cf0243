// Package state groups resources, services, and clusters into the two
// snapshots the optimization problems are built from: LocalState (one
// cluster) and GlobalState (the federation).
package state

import (
	"sync"

	"github.com/UIBK-DPS-DC/Pulse/model"
	"github.com/UIBK-DPS-DC/Pulse/servicegraph"
)

// LocalState groups the resources and services of a single cluster and
// exposes the ServiceGraph built from them.
//
// Resources and services are insertion-ordered, first-write-wins maps
// keyed by name; the ServiceGraph is built lazily on first access and
// cached.
type LocalState struct {
	resources *orderedResources
	services  *orderedServices

	graphOnce sync.Once
	graph     *servicegraph.ServiceGraph
}

// NewLocalState builds a LocalState from resources and services in the
// given order; duplicate names keep the first occurrence.
func NewLocalState(resources []model.Resource, services []model.Service) *LocalState {
	ls := &LocalState{resources: newOrderedResources(), services: newOrderedServices()}
	for _, r := range resources {
		ls.resources.put(r)
	}
	for _, s := range services {
		ls.services.put(s)
	}

	return ls
}

// ResourceNames returns resource names in insertion order.
func (ls *LocalState) ResourceNames() []string { return ls.resources.names() }

// ServiceNames returns service names in insertion order.
func (ls *LocalState) ServiceNames() []string { return ls.services.names() }

// Resource returns the resource at position i in insertion order.
func (ls *LocalState) Resource(i int) model.Resource { return ls.resources.at(i) }

// ResourceCount returns the number of resources (m in spec.md's notation).
func (ls *LocalState) ResourceCount() int { return ls.resources.len() }

// Service looks up a service by name.
func (ls *LocalState) Service(name string) (model.Service, bool) { return ls.services.get(name) }

// ServiceCount returns the number of services (n in spec.md's notation).
func (ls *LocalState) ServiceCount() int { return ls.services.len() }

// Services returns a name-keyed snapshot of every service, for building a
// ServiceGraph or a LocalAssignmentProblem.
func (ls *LocalState) Services() map[string]model.Service { return ls.services.asMap() }

// ServiceGraph returns the ServiceGraph built once from this state's
// services, building it on first call.
func (ls *LocalState) ServiceGraph() *servicegraph.ServiceGraph {
	ls.graphOnce.Do(func() {
		ls.graph = servicegraph.Build(ls.services.asMap())
	})

	return ls.graph
}
