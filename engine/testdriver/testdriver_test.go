package testdriver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UIBK-DPS-DC/Pulse/characteristics"
	"github.com/UIBK-DPS-DC/Pulse/engine"
	"github.com/UIBK-DPS-DC/Pulse/engine/testdriver"
	"github.com/UIBK-DPS-DC/Pulse/globalproblem"
	"github.com/UIBK-DPS-DC/Pulse/localproblem"
	"github.com/UIBK-DPS-DC/Pulse/model"
	"github.com/UIBK-DPS-DC/Pulse/state"
)

func fixtureProblem(t *testing.T) *localproblem.Problem {
	t.Helper()
	resources := []model.Resource{
		model.NewResource("r0", characteristics.New(4, 4, 4, 0)),
		model.NewResource("r1", characteristics.New(4, 4, 4, 0)),
	}
	services := []model.Service{
		{ServiceName: "a", Requirements: characteristics.New(1, 1, 1, 0), Replicas: 1},
		{ServiceName: "b", Requirements: characteristics.New(1, 1, 1, 0), Replicas: 1},
	}
	p, err := localproblem.New(state.NewLocalState(resources, services), 2)
	require.NoError(t, err)

	return p
}

func TestRunRejectsNonPositivePopulation(t *testing.T) {
	p := fixtureProblem(t)
	d := testdriver.New(1, nil)
	_, err := d.Run(p, 0, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, testdriver.ErrInvalidPopulationSize)
}

func TestRunReturnsNonDominatedFront(t *testing.T) {
	p := fixtureProblem(t)
	d := testdriver.New(5, localproblem.NewInitializer(p))

	front, err := d.Run(p, 6, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.NotEmpty(t, front)

	senses := p.ObjectiveSenses()
	for i, a := range front {
		for j, b := range front {
			if i == j {
				continue
			}
			assert.False(t, engine.Dominates(a, b, senses))
		}
	}
}

func TestRunPicksUpProblemsOwnInitializerAutomatically(t *testing.T) {
	p := fixtureProblem(t)
	d := testdriver.New(2, nil) // no explicit Init: should discover localproblem's own

	front, err := d.Run(p, 4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.NotEmpty(t, front)
}

// globalproblem.Problem implements no engine.HasInitializer, so Run must
// fall back to coin-flip seeding without erroring.
func TestRunFallsBackToCoinFlipSeedingWithoutAnInitializer(t *testing.T) {
	clusters := []model.Cluster{
		{
			ClusterName: "c0",
			Resources:   []model.Resource{{ResourceName: "r0"}},
			Candidates:  [][]model.Candidate{{{Assigned: true, Cost: 1}}},
		},
	}
	services := []model.Service{{ServiceName: "svc", Replicas: 1}}
	gs, err := state.NewGlobalState(clusters, services, map[string]map[string]float64{})
	require.NoError(t, err)

	p := globalproblem.New(gs)
	d := testdriver.New(2, nil)

	front, err := d.Run(p, 4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.NotEmpty(t, front)
}
