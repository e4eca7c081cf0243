// Package core is the shared weighted-multigraph substrate used by
// servicegraph, clustergraph, and resultgraph.
//
// Go get github.com/UIBK-DPS-DC/Pulse/core
package core
