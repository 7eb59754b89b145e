package lqg

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoInversion reports that the Joule-Thomson numerator does not change
// sign anywhere in the search window. In flat space this is the expected
// outcome: the numerator stays negative across the whole mass domain, so
// throttling always cools. A positive cosmological constant opens an
// inversion point.
var ErrNoInversion = errors.New("no inversion point in the search window")

// InversionConfig bounds the inversion-radius search.
type InversionConfig struct {
	RMin float64 // lower window edge
	RMax float64 // upper window edge
	Step float64 // scan increment
	Tol  float64 // radius tolerance for the refinement
}

// DefaultInversionConfig matches the Maxwell window: radii in (1, 20)
// scanned at 0.01.
func DefaultInversionConfig() InversionConfig {
	return InversionConfig{RMin: 1, RMax: 20, Step: 0.01, Tol: 1e-9}
}

func (cfg InversionConfig) validate() error {
	switch {
	case cfg.RMin <= 0:
		return fmt.Errorf("inversion window: RMin must be positive, got %g", cfg.RMin)
	case cfg.RMax <= cfg.RMin:
		return fmt.Errorf("inversion window: RMax %g must exceed RMin %g", cfg.RMax, cfg.RMin)
	case cfg.Step <= 0:
		return fmt.Errorf("inversion window: Step must be positive, got %g", cfg.Step)
	case cfg.Tol <= 0:
		return fmt.Errorf("inversion window: Tol must be positive, got %g", cfg.Tol)
	}
	return nil
}

// inversionNumerator evaluates q(r) = r⁴ - 4Mr³ - 15αM² on shell, the
// factor of the Joule-Thomson numerator whose root is the inversion
// radius. ok is false where the mass is undefined.
func (p Parameters) inversionNumerator(r float64) (float64, bool) {
	m, ok := p.Mass(r)
	if !ok {
		return 0, false
	}
	r2 := r * r
	r3 := r2 * r
	return r2*r2 - 4*m*r3 - 15*p.Alpha*m*m, true
}

// InversionRadius locates the on-shell zero of the Joule-Thomson
// numerator: the radius where μ changes sign and isenthalpic expansion
// flips between heating and cooling. The scan walks the window, skips
// radii outside the mass domain, and bisects the first sign change.
//
// Returns an error wrapping ErrNoInversion when the numerator keeps its
// sign across every mass-defined radius in the window, which is the
// flat-space behavior.
func (p Parameters) InversionRadius(cfg InversionConfig) (float64, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}

	prevR := math.NaN()
	prevQ := 0.0
	for r := cfg.RMin; r <= cfg.RMax; r += cfg.Step {
		q, ok := p.inversionNumerator(r)
		if !ok {
			prevR = math.NaN()
			continue
		}
		if !math.IsNaN(prevR) && (q == 0 || (prevQ < 0) != (q < 0)) {
			return p.bisectInversion(prevR, r, cfg.Tol)
		}
		prevR, prevQ = r, q
	}
	return 0, fmt.Errorf("joule-thomson numerator keeps its sign over (%g, %g) at Λ = %g: %w",
		cfg.RMin, cfg.RMax, p.Lambda, ErrNoInversion)
}

// bisectInversion refines a sign change of the inversion numerator
// bracketed by [lo, hi], both inside the mass domain.
func (p Parameters) bisectInversion(lo, hi, tol float64) (float64, error) {
	qlo, ok := p.inversionNumerator(lo)
	if !ok {
		return 0, fmt.Errorf("mass undefined at bracket edge r₊ = %g", lo)
	}
	for i := 0; i < 200 && hi-lo > tol; i++ {
		mid := 0.5 * (lo + hi)
		q, ok := p.inversionNumerator(mid)
		if !ok {
			return 0, fmt.Errorf("mass undefined inside bracket at r₊ = %g", mid)
		}
		if (q < 0) == (qlo < 0) {
			lo, qlo = mid, q
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), nil
}

// InversionTemperature returns the inversion-curve temperature at the
// given pressure in the linearized form of the source material,
//
//	T_inv(P) = Tc · (1 + 2P/Pc)
//
// valid near the critical point. T_inv(0) = Tc and the curve has no
// maximum in this approximation; the inversion-curve figure plots it
// against pressure in units of Pc.
func (p Parameters) InversionTemperature(pressure float64) float64 {
	cp := p.CriticalPoint()
	return cp.Temperature * (1 + 2*pressure/cp.Pressure)
}
