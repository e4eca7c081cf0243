// Package model defines the immutable domain records consumed by the
// optimization problems: Interaction, Service, Resource, Cost, Candidate,
// and Cluster.
package model

import "github.com/UIBK-DPS-DC/Pulse/characteristics"

// Interaction describes one outgoing service-to-service dependency.
// Weight is carried as the service graph's edge weight; DataTransfer is
// the cost-relevant quantity consumed by the local problem's cost
// precomputation.
type Interaction struct {
	Weight       float64 `json:"weight"`
	DataTransfer float64 `json:"dataTransfer"`
}

// Service is one deployable unit, replicated Replicas times.
//
// Interactions names this service's outgoing edges by target service
// name; a target that doesn't exist in the owning LocalState is dropped
// silently when the service graph is built (see servicegraph), not an
// error here.
type Service struct {
	ServiceName  string                 `json:"serviceName"`
	ImageName    string                 `json:"imageName"`
	Requirements characteristics.Characteristics `json:"requirements"`
	Data         float64                `json:"data"`
	Replicas     int                    `json:"replicas"`
	Interactions map[string]Interaction `json:"interactions"`
}

// Cost is a resource's per-slot pricing, derived deterministically from
// its Characteristics by DeriveCost.
type Cost struct {
	Fixed float64 `json:"fixed"`
	Data  float64 `json:"data"`
	In    float64 `json:"in"`
	Out   float64 `json:"out"`
}

// Cost derivation coefficients. These are a contract, not a tuning knob:
// implementations must reproduce them exactly (spec.md §3).
const (
	costCoeffCPU    = 0.0366
	costCoeffMemory = 0.0043
	costCoeffDisk   = 0.0001
	costCoeffGPU    = 1.6760

	costData = 0.0
	costIn   = 0.05
	costOut  = 0.09
)

// DeriveCost computes a resource's Cost from its Characteristics using the
// fixed coefficients of spec.md §3.
func DeriveCost(c characteristics.Characteristics) Cost {
	return Cost{
		Fixed: costCoeffCPU*c.CPU + costCoeffMemory*c.Memory + costCoeffDisk*c.Disk + costCoeffGPU*c.GPU,
		Data:  costData,
		In:    costIn,
		Out:   costOut,
	}
}

// Resource is one schedulable slot, identified by ResourceName, with a
// fixed capacity and a cost derived from that capacity.
type Resource struct {
	ResourceName    string                          `json:"resourceName"`
	Characteristics characteristics.Characteristics `json:"characteristics"`
	Cost            Cost                            `json:"cost"`
}

// NewResource builds a Resource, deriving its Cost from its Characteristics.
func NewResource(name string, c characteristics.Characteristics) Resource {
	return Resource{ResourceName: name, Characteristics: c, Cost: DeriveCost(c)}
}

// Candidate is a single resource slot's outcome for one service as
// produced by the local stage: whether the local solver chose it, and its
// precomputed per-slot cost.
type Candidate struct {
	Assigned bool    `json:"assigned"`
	Cost     float64 `json:"cost"`
}

// Cluster is one site's offered resources together with its candidate
// lists, indexed service-major then resource-minor, both orders owned by
// the enclosing GlobalState.
//
// Invariant: len(Candidates[k]) == len(Resources) for every service k.
type Cluster struct {
	ClusterName string       `json:"clusterName"`
	Resources   []Resource   `json:"resources"`
	Candidates  [][]Candidate `json:"candidates"`
}
