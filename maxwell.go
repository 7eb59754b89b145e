package lqg

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoCoexistence reports that no two-phase pair exists at the requested
// temperature within the search window. Match it with errors.Is; the
// wrapping message says which gate rejected the search.
var ErrNoCoexistence = errors.New("no two-phase coexistence in the search window")

// Coexistence is one equal-pressure pair on a subcritical isotherm: a
// small and a large black hole sharing pressure and temperature, the
// endpoints of the first-order transition at that temperature.
type Coexistence struct {
	RSmall      float64 `json:"r_small"`  // small-phase horizon radius
	RLarge      float64 `json:"r_large"`  // large-phase horizon radius
	Pressure    float64 `json:"pressure"` // shared coexistence pressure
	Temperature float64 `json:"temperature"`
}

// MaxwellConfig bounds the coexistence search. The window edges matter:
// subcritical isotherms admit a one-parameter family of equal-pressure
// pairs, and the reported pair depends on where the window cuts it off.
type MaxwellConfig struct {
	RMin float64 // lower window edge, exclusive
	RMax float64 // upper window edge, exclusive
	Step float64 // scan increment for the small-phase candidate
	Tol  float64 // radius tolerance for the partner refinement
}

// DefaultMaxwellConfig returns the window of the source material,
// 1 < r_small < r_large < 20, with a scan fine enough to localize every
// subcritical pair. Tol bounds the partner radius, not the pressure gap:
// the isotherm is nearly flat past its apex, so a radius pinned to 1e-10
// holds the pressures equal far tighter than a direct pressure stop
// would.
func DefaultMaxwellConfig() MaxwellConfig {
	return MaxwellConfig{RMin: 1, RMax: 20, Step: 0.01, Tol: 1e-10}
}

func (cfg MaxwellConfig) validate() error {
	switch {
	case cfg.RMin <= 0:
		return fmt.Errorf("maxwell window: RMin must be positive, got %g", cfg.RMin)
	case cfg.RMax <= cfg.RMin:
		return fmt.Errorf("maxwell window: RMax %g must exceed RMin %g", cfg.RMax, cfg.RMin)
	case cfg.Step <= 0:
		return fmt.Errorf("maxwell window: Step must be positive, got %g", cfg.Step)
	case cfg.Tol <= 0:
		return fmt.Errorf("maxwell window: Tol must be positive, got %g", cfg.Tol)
	}
	return nil
}

// MaxwellConstruction finds the first equal-pressure pair on the isotherm
// of temperature t, scanning the small-phase candidate upward from the
// bottom of the window. Among the family of valid pairs this policy
// returns the one with the smallest r_small, equivalently the widest
// volume gap the window supports; the choice is stable under grid
// refinement because validity is monotone in r_small.
//
// The search brackets the large-phase partner beyond the isotherm apex
// r₊ = 1/(2πT), where pressure decreases again, and refines it by
// bisection until the pressures agree within cfg.Tol.
//
// Failures are values: a config error for a malformed window, otherwise
// an error wrapping ErrNoCoexistence naming the gate that rejected the
// temperature (at or above critical, non-positive, apex outside the
// window, or no pair within it).
func (p Parameters) MaxwellConstruction(t float64, cfg MaxwellConfig) (Coexistence, error) {
	if err := cfg.validate(); err != nil {
		return Coexistence{}, err
	}
	tc := p.CriticalPoint().Temperature
	if t >= tc {
		return Coexistence{}, fmt.Errorf("temperature %.6g at or above critical %.6g: %w", t, tc, ErrNoCoexistence)
	}
	if t <= 0 {
		return Coexistence{}, fmt.Errorf("non-positive temperature %.6g: %w", t, ErrNoCoexistence)
	}

	apex := 1 / (2 * math.Pi * t)
	if apex <= cfg.RMin || apex >= cfg.RMax {
		return Coexistence{}, fmt.Errorf("isotherm apex r₊ = %.4g outside window (%g, %g), pressure is one-to-one there: %w",
			apex, cfg.RMin, cfg.RMax, ErrNoCoexistence)
	}

	edge := IsothermPressure(cfg.RMax, t)
	for rs := cfg.RMin + cfg.Step; rs < apex; rs += cfg.Step {
		target := IsothermPressure(rs, t)
		if target <= edge {
			// Partner would sit beyond the window.
			continue
		}
		rl := bisectIsotherm(t, target, apex, cfg.RMax, cfg.Tol)
		if rl-rs <= cfg.Step {
			continue
		}
		return Coexistence{
			RSmall:      rs,
			RLarge:      rl,
			Pressure:    target,
			Temperature: t,
		}, nil
	}
	return Coexistence{}, fmt.Errorf("no equal-pressure pair in (%g, %g) at T = %.6g: %w",
		cfg.RMin, cfg.RMax, t, ErrNoCoexistence)
}

// bisectIsotherm solves IsothermPressure(r, t) = target for r in
// [lo, hi], where the pressure is strictly decreasing. Callers guarantee
// the bracket: pressure at lo above target, at hi below. Equal pressures
// imply 1/r_s + 1/r_l = 4πT exactly, so the returned radius inherits
// that relation to within tol.
func bisectIsotherm(t, target, lo, hi, tol float64) float64 {
	for i := 0; i < 200 && hi-lo > tol; i++ {
		mid := 0.5 * (lo + hi)
		if IsothermPressure(mid, t) > target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}
