// Package config loads sweep scenarios from YAML and watches them for
// edits. A scenario names the couplings and the grid; everything absent
// from the file keeps its default, so a two-line scenario is valid.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	lqg "github.com/arnavk23/LQG-Analysis"
)

// Grid is the radius window a sweep covers.
type Grid struct {
	RMin   float64 `yaml:"r_min"`
	RMax   float64 `yaml:"r_max"`
	Points int     `yaml:"points"`
}

// Scenario is one study configuration.
type Scenario struct {
	Gamma         float64   `yaml:"gamma"`
	Lambda        float64   `yaml:"lambda"`
	Grid          Grid      `yaml:"grid"`
	Isotherms     []float64 `yaml:"isotherms"`       // temperatures in units of Tc
	WeakAdSLambda float64   `yaml:"weak_ads_lambda"` // coupling for the bounded-mass figure
	Output        string    `yaml:"output"`
}

// Default is the reference scenario.
func Default() Scenario {
	return Scenario{
		Gamma:         lqg.ReferenceGamma,
		Lambda:        0,
		Grid:          Grid{RMin: 1, RMax: 20, Points: 600},
		Isotherms:     []float64{0.6, 0.8, 1.0, 1.2, 1.4},
		WeakAdSLambda: -0.01,
		Output:        "report",
	}
}

// Validate rejects scenarios the engine cannot evaluate.
func (s Scenario) Validate() error {
	if s.Gamma <= 0 {
		return fmt.Errorf("gamma must be positive, got %g", s.Gamma)
	}
	if s.Grid.RMin <= 0 || s.Grid.RMax <= s.Grid.RMin {
		return fmt.Errorf("grid window (%g, %g) is not a valid radius range", s.Grid.RMin, s.Grid.RMax)
	}
	if s.Grid.Points < 2 {
		return fmt.Errorf("grid needs at least 2 points, got %d", s.Grid.Points)
	}
	if len(s.Isotherms) == 0 {
		return fmt.Errorf("at least one isotherm is required")
	}
	for _, ratio := range s.Isotherms {
		if ratio <= 0 {
			return fmt.Errorf("isotherm ratio %g is not positive", ratio)
		}
	}
	if s.WeakAdSLambda > 0 {
		return fmt.Errorf("weak_ads_lambda must be zero or negative, got %g", s.WeakAdSLambda)
	}
	if s.Output == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	return nil
}

// Params builds the engine parameters the scenario describes.
func (s Scenario) Params() (lqg.Parameters, error) {
	return lqg.NewParameters(s.Gamma, s.Lambda)
}

// SweepConfig maps the scenario onto a sweep.
func (s Scenario) SweepConfig() (lqg.SweepConfig, error) {
	p, err := s.Params()
	if err != nil {
		return lqg.SweepConfig{}, err
	}
	return lqg.SweepConfig{
		Params: p,
		RMin:   s.Grid.RMin,
		RMax:   s.Grid.RMax,
		Points: s.Grid.Points,
	}, nil
}

// Load reads path over the defaults: keys present in the file replace
// the default values, keys absent keep them.
func Load(path string) (Scenario, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}
