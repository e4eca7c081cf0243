package globalproblem_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UIBK-DPS-DC/Pulse/engine"
	"github.com/UIBK-DPS-DC/Pulse/globalproblem"
	"github.com/UIBK-DPS-DC/Pulse/model"
	"github.com/UIBK-DPS-DC/Pulse/state"
)

func buildLatency(n int) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, n)
	for i := 0; i < n; i++ {
		from := clusterName(i)
		row := make(map[string]float64, n)
		for j := 0; j < n; j++ {
			d := float64(i - j)
			if d < 0 {
				d = -d
			}
			row[clusterName(j)] = d
		}
		out[from] = row
	}

	return out
}

func clusterName(i int) string {
	return []string{"c0", "c1", "c2"}[i]
}

// S6: three clusters with latency L[i][j] = |i-j|; a solution whose chosen
// candidates span clusters {0,2} must yield latency 0+2+2+0 = 4.
func TestLatencyAccountingAcrossTouchedClusters(t *testing.T) {
	clusters := []model.Cluster{
		{
			ClusterName: "c0",
			Resources:   []model.Resource{{ResourceName: "r0"}},
			Candidates:  [][]model.Candidate{{{Assigned: true, Cost: 1}}},
		},
		{
			ClusterName: "c1",
			Resources:   []model.Resource{{ResourceName: "r0"}},
			Candidates:  [][]model.Candidate{{{Assigned: false, Cost: 1}}},
		},
		{
			ClusterName: "c2",
			Resources:   []model.Resource{{ResourceName: "r0"}},
			Candidates:  [][]model.Candidate{{{Assigned: true, Cost: 2}}},
		},
	}
	services := []model.Service{{ServiceName: "svc", Replicas: 2}}

	gs, err := state.NewGlobalState(clusters, services, buildLatency(3))
	require.NoError(t, err)

	p := globalproblem.New(gs)
	require.True(t, p.IsComplete())
	require.Len(t, p.Slots(0), 2)

	s := p.NewSolution()
	s.Variables[0].Set(0)
	s.Variables[0].Set(1)
	p.Evaluate(s, rand.New(rand.NewSource(1)))

	assert.InDelta(t, 4.0, s.Objectives[globalproblem.ObjectiveLatency], 1e-9)
	assert.InDelta(t, 3.0, s.Objectives[globalproblem.ObjectiveCost], 1e-9)
	assert.Equal(t, 2.0, s.Constraints[0])
}

// S5: two clusters, one service with replicas=2; only one candidate
// assigned across both clusters. No solution can reach constraint_0 == 2,
// so Feasible must always report false.
func TestGlobalCompositionRejectsInfeasible(t *testing.T) {
	clusters := []model.Cluster{
		{
			ClusterName: "c0",
			Resources:   []model.Resource{{ResourceName: "r0"}},
			Candidates:  [][]model.Candidate{{{Assigned: true, Cost: 1}}},
		},
		{
			ClusterName: "c1",
			Resources:   []model.Resource{{ResourceName: "r0"}},
			Candidates:  [][]model.Candidate{{{Assigned: false, Cost: 1}}},
		},
	}
	services := []model.Service{{ServiceName: "svc", Replicas: 2}}

	gs, err := state.NewGlobalState(clusters, services, map[string]map[string]float64{})
	require.NoError(t, err)

	p := globalproblem.New(gs)
	require.Len(t, p.Slots(0), 1)

	s := p.NewSolution()
	s.Variables[0].Set(0)
	p.Evaluate(s, rand.New(rand.NewSource(1)))

	assert.Equal(t, 1.0, s.Constraints[0])
	assert.False(t, s.Feasible(p.ConstraintSpecs(), 1e-9))

	s2 := p.NewSolution()
	p.Evaluate(s2, rand.New(rand.NewSource(1)))
	assert.Equal(t, 0.0, s2.Constraints[0])
	assert.False(t, s2.Feasible(p.ConstraintSpecs(), 1e-9))
}

func TestIsCompleteFalseWhenAServiceHasNoAssignedCandidate(t *testing.T) {
	clusters := []model.Cluster{
		{
			ClusterName: "c0",
			Resources:   []model.Resource{{ResourceName: "r0"}},
			Candidates:  [][]model.Candidate{{{Assigned: false, Cost: 1}}},
		},
	}
	services := []model.Service{{ServiceName: "svc", Replicas: 1}}

	gs, err := state.NewGlobalState(clusters, services, map[string]map[string]float64{})
	require.NoError(t, err)

	p := globalproblem.New(gs)
	assert.False(t, p.IsComplete())
	assert.Empty(t, p.Slots(0))
}

// spec.md §5/§9: Evaluate must be safe to call concurrently for distinct
// solutions against one shared Problem. Evaluating the same starting
// solutions concurrently, each under its own seeded RNG, must reproduce
// the sequential objective and constraint values exactly.
func TestEvaluateConcurrentMatchesSequential(t *testing.T) {
	clusters := []model.Cluster{
		{
			ClusterName: "c0",
			Resources:   []model.Resource{{ResourceName: "r0"}},
			Candidates:  [][]model.Candidate{{{Assigned: true, Cost: 1}}},
		},
		{
			ClusterName: "c1",
			Resources:   []model.Resource{{ResourceName: "r0"}},
			Candidates:  [][]model.Candidate{{{Assigned: true, Cost: 2}}},
		},
		{
			ClusterName: "c2",
			Resources:   []model.Resource{{ResourceName: "r0"}},
			Candidates:  [][]model.Candidate{{{Assigned: true, Cost: 3}}},
		},
	}
	services := []model.Service{{ServiceName: "svc", Replicas: 2}}

	gs, err := state.NewGlobalState(clusters, services, buildLatency(3))
	require.NoError(t, err)

	p := globalproblem.New(gs)
	require.Len(t, p.Slots(0), 3)

	const n = 32
	starts := make([]*engine.Solution, n)
	for i := range starts {
		s := p.NewSolution()
		switch i % 3 {
		case 0:
			s.Variables[0].Set(0)
			s.Variables[0].Set(2)
		case 1:
			s.Variables[0].Set(0)
			s.Variables[0].Set(1)
			s.Variables[0].Set(2)
		}
		starts[i] = s
	}

	sequential := make([]*engine.Solution, n)
	for i := range starts {
		s := starts[i].Clone()
		p.Evaluate(s, rand.New(rand.NewSource(int64(i))))
		sequential[i] = s
	}

	concurrent := make([]*engine.Solution, n)
	var wg sync.WaitGroup
	for i := range starts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s := starts[i].Clone()
			p.Evaluate(s, rand.New(rand.NewSource(int64(i))))
			concurrent[i] = s
		}(i)
	}
	wg.Wait()

	for i := range sequential {
		assert.InDelta(t, sequential[i].Objectives[globalproblem.ObjectiveCost],
			concurrent[i].Objectives[globalproblem.ObjectiveCost], 1e-9)
		assert.InDelta(t, sequential[i].Objectives[globalproblem.ObjectiveLatency],
			concurrent[i].Objectives[globalproblem.ObjectiveLatency], 1e-9)
		assert.Equal(t, sequential[i].Constraints[0], concurrent[i].Constraints[0])
	}
}

func TestProblemShapeMatchesServiceAndConstraintCount(t *testing.T) {
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
	assert.Equal(t, 1, p.NumberOfVariables())
	assert.Equal(t, 2, p.NumberOfObjectives())
	assert.Equal(t, 1, p.NumberOfConstraints())
	require.Len(t, p.ConstraintSpecs(), 1)
	assert.Equal(t, 1.0, p.ConstraintSpecs()[0].Target)
}
