package clustergraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UIBK-DPS-DC/Pulse/clustergraph"
	"github.com/UIBK-DPS-DC/Pulse/model"
)

func TestBuild_LatencyLookup(t *testing.T) {
	clusters := map[string]model.Cluster{
		"c0": {ClusterName: "c0"},
		"c1": {ClusterName: "c1"},
		"c2": {ClusterName: "c2"},
	}
	latency := map[string]map[string]float64{
		"c0": {"c1": 2, "c2": 5},
		"c1": {"c0": 2},
	}

	cg := clustergraph.Build(clusters, latency)

	v, ok := cg.Latency("c0", "c1")
	require.True(t, ok)
	assert.InDelta(t, 2, v, 1e-12)

	_, ok = cg.Latency("c2", "c0")
	assert.False(t, ok)
}

func TestBuild_SkipsUnknownClusterCells(t *testing.T) {
	clusters := map[string]model.Cluster{"c0": {ClusterName: "c0"}}
	latency := map[string]map[string]float64{"c0": {"ghost": 9}}

	cg := clustergraph.Build(clusters, latency)
	assert.Equal(t, 0, cg.Graph().EdgeCount())
}
