// Package testdriver implements a minimal random-search engine.Driver used
// only by this module's own tests and examples, standing in for the real
// multi-objective evolutionary engine named in spec.md §1 as an external,
// out-of-scope collaborator.
package testdriver

import (
	"errors"

	"github.com/UIBK-DPS-DC/Pulse/engine"
)

// ErrInvalidPopulationSize indicates Run was asked for a non-positive
// population.
var ErrInvalidPopulationSize = errors.New("testdriver: population size must be positive")

// Driver runs Generations rounds of single-bit-flip hill climbing over an
// initial population, returning the non-dominated front across every
// feasible solution ever evaluated, or across every evaluated solution
// when none was feasible.
type Driver struct {
	Generations int
	// Init overrides seeding when set. If nil, Run prefers the problem's
	// own engine.HasInitializer when it implements one, falling back to
	// coin-flip random seeding otherwise.
	Init engine.Initializer
}

// New returns a Driver with the given generation budget and optional
// problem-specific initializer.
func New(generations int, init engine.Initializer) *Driver {
	return &Driver{Generations: generations, Init: init}
}

// Run seeds a population, hill-climbs it for Generations rounds under
// single-bit mutation, and returns the non-dominated front across every
// evaluated feasible solution (every evaluated solution if none is
// feasible).
func (d *Driver) Run(problem engine.Problem, populationSize int, rng engine.RNG) ([]*engine.Solution, error) {
	if populationSize <= 0 {
		return nil, ErrInvalidPopulationSize
	}

	senses := problem.ObjectiveSenses()
	specs := problem.ConstraintSpecs()
	pop := d.seed(problem, populationSize, rng)
	all := make([]*engine.Solution, 0, populationSize*(d.Generations+1))

	for _, s := range pop {
		problem.Evaluate(s, rng)
		all = append(all, s)
	}

	for gen := 0; gen < d.Generations; gen++ {
		for i, s := range pop {
			mutant := s.Clone()
			mutateOneBit(mutant, rng)
			problem.Evaluate(mutant, rng)
			all = append(all, mutant)

			if betterOrEqualFeasibility(mutant, s, senses, specs) {
				pop[i] = mutant
			}
		}
	}

	// Constrained ranking (Deb's rule): a feasible solution always beats an
	// infeasible one, regardless of objectives. Rank within the feasible
	// subset first so the front a Selector sees never has to fall back to
	// an infeasible individual while a feasible one exists in history.
	if feasible := filterFeasible(all, specs); len(feasible) > 0 {
		return engine.NonDominatedFront(feasible, senses), nil
	}

	return engine.NonDominatedFront(all, senses), nil
}

func filterFeasible(solutions []*engine.Solution, specs []engine.ConstraintSpec) []*engine.Solution {
	const tolerance = 1e-6

	out := make([]*engine.Solution, 0, len(solutions))
	for _, s := range solutions {
		if s.Feasible(specs, tolerance) {
			out = append(out, s)
		}
	}

	return out
}

// betterOrEqualFeasibility prefers a feasible mutant over an infeasible
// parent outright; when feasibility is tied, falls back to Pareto
// dominance on objectives.
func betterOrEqualFeasibility(mutant, parent *engine.Solution, senses []engine.ObjectiveSense, specs []engine.ConstraintSpec) bool {
	const tolerance = 1e-6

	mutantFeasible := mutant.Feasible(specs, tolerance)
	parentFeasible := parent.Feasible(specs, tolerance)

	if mutantFeasible != parentFeasible {
		return mutantFeasible
	}

	return engine.Dominates(mutant, parent, senses)
}

func (d *Driver) seed(problem engine.Problem, populationSize int, rng engine.RNG) []*engine.Solution {
	init := d.Init
	if init == nil {
		if hi, ok := problem.(engine.HasInitializer); ok {
			init = hi.Initializer()
		}
	}

	pop := make([]*engine.Solution, 0, populationSize)
	for len(pop) < populationSize {
		if init != nil {
			pop = append(pop, init.Initialize(rng)...)

			continue
		}

		s := problem.NewSolution()
		for _, v := range s.Variables {
			for i := 0; i < v.Len(); i++ {
				if rng.Intn(2) == 1 {
					v.Set(i)
				}
			}
		}
		pop = append(pop, s)
	}

	return pop[:populationSize]
}

func mutateOneBit(s *engine.Solution, rng engine.RNG) {
	candidates := make([]int, 0, len(s.Variables))
	for i, v := range s.Variables {
		if v.Len() > 0 {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return
	}

	varIdx := candidates[rng.Intn(len(candidates))]
	v := s.Variables[varIdx]
	bit := rng.Intn(v.Len())
	if v.Get(bit) {
		v.Clear(bit)
	} else {
		v.Set(bit)
	}
}
