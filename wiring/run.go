package wiring

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/UIBK-DPS-DC/Pulse/engine"
	"github.com/UIBK-DPS-DC/Pulse/globalproblem"
	"github.com/UIBK-DPS-DC/Pulse/localproblem"
	"github.com/UIBK-DPS-DC/Pulse/model"
	"github.com/UIBK-DPS-DC/Pulse/resultgraph"
	"github.com/UIBK-DPS-DC/Pulse/selector"
	"github.com/UIBK-DPS-DC/Pulse/state"
)

// ErrNoFeasibleGlobalSolution indicates the global stage's selector found
// no feasible solution in the engine's returned front (spec.md §4.7
// "returns absent if empty").
var ErrNoFeasibleGlobalSolution = errors.New("wiring: no feasible global composition solution")

// ClusterInput is one cluster's local assignment input: its name and the
// LocalState built from its offered resources and the services it hosts.
type ClusterInput struct {
	Name  string
	State *state.LocalState
}

// Result is everything a Run produces: a correlation ID, every stage's
// non-dominated front and selected solution, and the final composition
// graph.
type Result struct {
	RunID string

	LocalFronts     map[string][]*engine.Solution
	LocalSelections map[string]*engine.Solution

	GlobalFront     []*engine.Solution
	GlobalSelection *engine.Solution

	Composition *resultgraph.CompositionGraph
}

// Run drives the full pipeline of spec.md §2: for each cluster, solve the
// local assignment problem and marshal its selected solution into
// candidates; assemble the resulting clusters into a GlobalState; solve
// the global composition problem; and build the final CompositionGraph
// from its selected solution.
//
// driver is the caller's evolutionary engine (e.g. engine/testdriver for
// tests); Run never implements search itself, only wiring (spec.md §1,
// §9 engine coupling).
//
// Each ClusterInput's LocalState must list services in the same order as
// services: that order becomes each cluster's candidate-row index, and
// GlobalState requires every cluster's candidate rows to align with it.
func Run(
	logger hclog.Logger,
	clusters []ClusterInput,
	services []model.Service,
	latency map[string]map[string]float64,
	driver engine.Driver,
	cfg Config,
	rng engine.RNG,
) (*Result, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	runID := uuid.NewString()
	logger = logger.With("runId", runID)

	var errs *multierror.Error
	modelClusters := make([]model.Cluster, 0, len(clusters))
	localFronts := make(map[string][]*engine.Solution, len(clusters))
	localSelections := make(map[string]*engine.Solution, len(clusters))

	for _, ci := range clusters {
		logger.Debug("solving local assignment", "cluster", ci.Name)

		cluster, front, selection, err := runLocal(driver, ci, cfg, rng)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("cluster %q: %w", ci.Name, err))

			continue
		}

		modelClusters = append(modelClusters, cluster)
		localFronts[ci.Name] = front
		localSelections[ci.Name] = selection
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	gs, err := state.NewGlobalState(modelClusters, services, latency)
	if err != nil {
		return nil, fmt.Errorf("wiring: build global state: %w", err)
	}

	problem := globalproblem.New(gs)
	if !problem.IsComplete() {
		logger.Warn("global composition incomplete: at least one service has no assigned local candidate")
	}

	front, err := driver.Run(problem, cfg.GlobalPopulationSize, rng)
	if err != nil {
		return nil, fmt.Errorf("wiring: global engine run: %w", err)
	}

	globalSelection, ok := selectFrom(front, problem.ConstraintSpecs(), cfg.Selector)
	if !ok {
		return nil, ErrNoFeasibleGlobalSolution
	}

	composition := resultgraph.BuildCompositionGraph(gs, problem, problem.Decode(globalSelection))

	logger.Info("run complete",
		"clusters", len(clusters),
		"globalCost", globalSelection.Objectives[globalproblem.ObjectiveCost],
		"globalLatency", globalSelection.Objectives[globalproblem.ObjectiveLatency])

	return &Result{
		RunID:           runID,
		LocalFronts:     localFronts,
		LocalSelections: localSelections,
		GlobalFront:     front,
		GlobalSelection: globalSelection,
		Composition:     composition,
	}, nil
}

func runLocal(driver engine.Driver, ci ClusterInput, cfg Config, rng engine.RNG) (model.Cluster, []*engine.Solution, *engine.Solution, error) {
	problem, err := localproblem.New(ci.State, cfg.FairnessExponent)
	if err != nil {
		return model.Cluster{}, nil, nil, fmt.Errorf("build local problem: %w", err)
	}

	front, err := driver.Run(problem, cfg.LocalPopulationSize, rng)
	if err != nil {
		return model.Cluster{}, nil, nil, fmt.Errorf("local engine run: %w", err)
	}

	selection, ok := selectFrom(front, problem.ConstraintSpecs(), cfg.Selector)
	if !ok {
		return model.Cluster{}, nil, nil, errors.New("no feasible local solution")
	}

	candidates := problem.MarshalCandidates(problem.Decode(selection))
	resources := make([]model.Resource, problem.ResourceCount())
	for i := range resources {
		resources[i] = problem.Resource(i)
	}

	cluster := model.Cluster{ClusterName: ci.Name, Resources: resources, Candidates: candidates}

	return cluster, front, selection, nil
}

func selectFrom(front []*engine.Solution, specs []engine.ConstraintSpec, cfg SelectorConfig) (*engine.Solution, bool) {
	const tolerance = 1e-6

	if cfg.Kind == "preference" {
		return selector.PreferenceSelector(front, specs, tolerance, cfg.Preference)
	}

	return selector.KneenessSelector(front, specs, tolerance)
}
