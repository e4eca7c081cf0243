// Package wiring glues the local and global optimization stages together
// into the single data-flow line of spec.md §2: LocalState →
// LocalAssignmentProblem → engine → front → Selector → candidates →
// GlobalState → GlobalCompositionProblem → engine → front → Selector →
// CompositionGraph.
package wiring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config parameterizes Run: the local fairness exponent, each stage's
// population size, and the selector used to pick one solution from each
// stage's non-dominated front. Generation counts and any other internal
// search budget belong to the engine.Driver the caller constructs, not to
// Config — Run only ever calls Driver.Run(problem, populationSize, rng),
// the one knob the engine.Driver contract exposes.
type Config struct {
	FairnessExponent     float64        `yaml:"fairnessExponent"`
	LocalPopulationSize  int            `yaml:"localPopulationSize"`
	GlobalPopulationSize int            `yaml:"globalPopulationSize"`
	Selector             SelectorConfig `yaml:"selector"`
}

// SelectorConfig names which selector a Run applies to each stage's front,
// and the preference value PreferenceSelector needs.
type SelectorConfig struct {
	Kind       string  `yaml:"kind"` // "preference" or "kneeness"
	Preference float64 `yaml:"preference"`
}

// DefaultConfig returns the reference parameterization: fairness exponent
// 2, a kneeness selector, and modest population sizes suitable for the
// in-module test driver.
func DefaultConfig() Config {
	return Config{
		FairnessExponent:     2,
		LocalPopulationSize:  20,
		GlobalPopulationSize: 20,
		Selector:             SelectorConfig{Kind: "kneeness"},
	}
}

// LoadConfig reads and parses a Config from a YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("wiring: read config %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("wiring: parse config %q: %w", path, err)
	}

	return cfg, nil
}
