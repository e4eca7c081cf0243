package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/UIBK-DPS-DC/Pulse/characteristics"
	"github.com/UIBK-DPS-DC/Pulse/model"
)

func TestDeriveCost(t *testing.T) {
	c := characteristics.New(1, 0, 0, 0)
	cost := model.DeriveCost(c)

	assert.InDelta(t, 0.0366, cost.Fixed, 1e-9)
	assert.InDelta(t, 0.0, cost.Data, 1e-12)
	assert.InDelta(t, 0.05, cost.In, 1e-12)
	assert.InDelta(t, 0.09, cost.Out, 1e-12)
}

func TestDeriveCostAllDimensions(t *testing.T) {
	c := characteristics.New(2, 3, 4, 1)
	cost := model.DeriveCost(c)
	want := 0.0366*2 + 0.0043*3 + 0.0001*4 + 1.6760*1
	assert.InDelta(t, want, cost.Fixed, 1e-9)
}

func TestNewResourceDerivesCost(t *testing.T) {
	r := model.NewResource("r0", characteristics.New(1, 0, 0, 0))
	assert.InDelta(t, 0.0366, r.Cost.Fixed, 1e-9)
}

func TestClusterValidate(t *testing.T) {
	ok := model.Cluster{
		ClusterName: "c0",
		Resources:   []model.Resource{{ResourceName: "r0"}, {ResourceName: "r1"}},
		Candidates:  [][]model.Candidate{{{}, {}}},
	}
	assert.NoError(t, ok.Validate())

	bad := model.Cluster{
		ClusterName: "c0",
		Resources:   []model.Resource{{ResourceName: "r0"}},
		Candidates:  [][]model.Candidate{{{}, {}}},
	}
	assert.ErrorIs(t, bad.Validate(), model.ErrCandidateLengthMismatch)
}
