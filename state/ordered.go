package state

import "github.com/UIBK-DPS-DC/Pulse/model"

// orderedServices is an insertion-ordered map keyed by service name.
// First write wins on duplicate keys, matching the teacher's
// deterministic-ordering discipline (core.Graph.Edges() sorts by ID;
// here the "sort" is simply "don't reorder").
type orderedServices struct {
	order []string
	byKey map[string]model.Service
}

func newOrderedServices() *orderedServices {
	return &orderedServices{byKey: make(map[string]model.Service)}
}

func (o *orderedServices) put(s model.Service) {
	if _, exists := o.byKey[s.ServiceName]; exists {
		return
	}
	o.order = append(o.order, s.ServiceName)
	o.byKey[s.ServiceName] = s
}

func (o *orderedServices) get(name string) (model.Service, bool) {
	s, ok := o.byKey[name]

	return s, ok
}

func (o *orderedServices) names() []string {
	out := make([]string, len(o.order))
	copy(out, o.order)

	return out
}

func (o *orderedServices) asMap() map[string]model.Service {
	out := make(map[string]model.Service, len(o.byKey))
	for k, v := range o.byKey {
		out[k] = v
	}

	return out
}

func (o *orderedServices) len() int { return len(o.order) }

// orderedResources is an insertion-ordered map keyed by resource name.
type orderedResources struct {
	order []string
	byKey map[string]model.Resource
}

func newOrderedResources() *orderedResources {
	return &orderedResources{byKey: make(map[string]model.Resource)}
}

func (o *orderedResources) put(r model.Resource) {
	if _, exists := o.byKey[r.ResourceName]; exists {
		return
	}
	o.order = append(o.order, r.ResourceName)
	o.byKey[r.ResourceName] = r
}

func (o *orderedResources) names() []string {
	out := make([]string, len(o.order))
	copy(out, o.order)

	return out
}

func (o *orderedResources) at(i int) model.Resource { return o.byKey[o.order[i]] }

func (o *orderedResources) len() int { return len(o.order) }

// orderedClusters is an insertion-ordered map keyed by cluster name.
type orderedClusters struct {
	order []string
	byKey map[string]model.Cluster
}

func newOrderedClusters() *orderedClusters {
	return &orderedClusters{byKey: make(map[string]model.Cluster)}
}

func (o *orderedClusters) put(c model.Cluster) {
	if _, exists := o.byKey[c.ClusterName]; exists {
		return
	}
	o.order = append(o.order, c.ClusterName)
	o.byKey[c.ClusterName] = c
}

func (o *orderedClusters) names() []string {
	out := make([]string, len(o.order))
	copy(out, o.order)

	return out
}

func (o *orderedClusters) at(i int) model.Cluster { return o.byKey[o.order[i]] }

func (o *orderedClusters) get(name string) (model.Cluster, bool) {
	c, ok := o.byKey[name]

	return c, ok
}

func (o *orderedClusters) len() int { return len(o.order) }
