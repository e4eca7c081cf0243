package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UIBK-DPS-DC/Pulse/characteristics"
	"github.com/UIBK-DPS-DC/Pulse/model"
	"github.com/UIBK-DPS-DC/Pulse/state"
)

func TestLocalState_FirstWriteWins(t *testing.T) {
	ls := state.NewLocalState(
		[]model.Resource{
			model.NewResource("r0", characteristics.New(1, 1, 1, 0)),
			model.NewResource("r0", characteristics.New(9, 9, 9, 9)),
		},
		nil,
	)

	assert.Equal(t, 1, ls.ResourceCount())
	assert.InDelta(t, 1, ls.Resource(0).Characteristics.CPU, 1e-12)
}

func TestLocalState_ServiceGraphIsCached(t *testing.T) {
	ls := state.NewLocalState(nil, []model.Service{{ServiceName: "a"}})
	first := ls.ServiceGraph()
	second := ls.ServiceGraph()
	assert.Same(t, first, second)
}

func TestNewGlobalState_ValidatesCandidateLength(t *testing.T) {
	_, err := state.NewGlobalState(
		[]model.Cluster{{
			ClusterName: "c0",
			Resources:   []model.Resource{{ResourceName: "r0"}},
			Candidates:  [][]model.Candidate{}, // 0 rows, but 1 service below
		}},
		[]model.Service{{ServiceName: "svc"}},
		nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrCandidateLengthMismatch)
}

func TestNewGlobalState_ValidatesLatencyClusterNames(t *testing.T) {
	_, err := state.NewGlobalState(
		[]model.Cluster{{ClusterName: "c0", Candidates: [][]model.Candidate{}}},
		nil,
		map[string]map[string]float64{"ghost": {"c0": 1}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrUnknownClusterInLatency)
}

func TestNewGlobalState_Valid(t *testing.T) {
	gs, err := state.NewGlobalState(
		[]model.Cluster{
			{ClusterName: "c0", Resources: []model.Resource{{ResourceName: "r0"}}, Candidates: [][]model.Candidate{{{}}}},
		},
		[]model.Service{{ServiceName: "svc"}},
		map[string]map[string]float64{"c0": {"c0": 0}},
	)
	require.NoError(t, err)
	assert.Equal(t, 0, gs.ServiceIndex("svc"))
	assert.Equal(t, -1, gs.ServiceIndex("missing"))
	assert.NotNil(t, gs.ClusterGraph())
}

func TestGlobalState_NormalizedCandidateCosts(t *testing.T) {
	gs, err := state.NewGlobalState(
		[]model.Cluster{
			{
				ClusterName: "c0",
				Resources:   []model.Resource{{ResourceName: "r0"}},
				Candidates:  [][]model.Candidate{{{Cost: 10}}},
			},
			{
				ClusterName: "c1",
				Resources:   []model.Resource{{ResourceName: "r0"}},
				Candidates:  [][]model.Candidate{{{Cost: 30}}},
			},
		},
		[]model.Service{{ServiceName: "svc"}},
		nil,
	)
	require.NoError(t, err)

	normalized := gs.NormalizedCandidateCosts(0)
	require.Len(t, normalized, 2)
	assert.InDelta(t, 0, normalized[0][0], 1e-12)
	assert.InDelta(t, 1, normalized[1][0], 1e-12)
}

func TestGlobalState_NormalizedCandidateCostsEmptyRange(t *testing.T) {
	gs, err := state.NewGlobalState(
		[]model.Cluster{
			{
				ClusterName: "c0",
				Resources:   []model.Resource{{ResourceName: "r0"}},
				Candidates:  [][]model.Candidate{{{Cost: 5}}},
			},
		},
		[]model.Service{{ServiceName: "svc"}},
		nil,
	)
	require.NoError(t, err)

	normalized := gs.NormalizedCandidateCosts(0)
	require.Len(t, normalized, 1)
	assert.InDelta(t, 0, normalized[0][0], 1e-12)
}
