package lqg

import (
	"fmt"
	"math"
)

// CriticalExponents are the critical exponents {α, β, γ, δ} of the
// small/large black hole transition. The quantum-corrected equation of
// state lands exactly on the mean-field universality class, the same as
// van der Waals and charged AdS black holes:
//
//	α = 0    specific heat      C_v ∝ |t|^(-α)
//	β = 1/2  order parameter    Δv ∝ (-t)^β
//	γ = 1    compressibility    κ_T ∝ |t|^(-γ)
//	δ = 3    critical isotherm  |P - Pc| ∝ |v - vc|^δ
//
// with t = (T - Tc)/Tc the reduced temperature. The field names shadow
// the Greek letters of the scaling literature, not the Barbero-Immirzi γ
// or the quantum correction α of Parameters.
type CriticalExponents struct {
	Alpha float64
	Beta  float64
	Gamma float64
	Delta float64
}

// MeanFieldExponents returns {0, 1/2, 1, 3}.
func MeanFieldExponents() CriticalExponents {
	return CriticalExponents{Alpha: 0, Beta: 0.5, Gamma: 1, Delta: 3}
}

// Rushbrooke returns α + 2β + γ. The scaling identity fixes it to 2.
func (e CriticalExponents) Rushbrooke() float64 {
	return e.Alpha + 2*e.Beta + e.Gamma
}

// Griffiths returns α + β(1 + δ). The scaling identity fixes it to 2.
func (e CriticalExponents) Griffiths() float64 {
	return e.Alpha + e.Beta*(1+e.Delta)
}

// Widom returns β(δ - 1). The scaling identity fixes it to γ.
func (e CriticalExponents) Widom() float64 {
	return e.Beta * (e.Delta - 1)
}

// Validate checks the three scaling identities at double precision. A set
// of exponents that fails one cannot belong to any consistent scaling
// theory, mean-field or otherwise.
func (e CriticalExponents) Validate() error {
	const tol = 1e-12
	if d := math.Abs(e.Rushbrooke() - 2); d > tol {
		return fmt.Errorf(
			"scaling violation: Rushbrooke identity broken\n"+
				"  Identity: α + 2β + γ = 2\n"+
				"  Got: %g (off by %g)\n"+
				"  Action: re-derive the exponent set, these values are inconsistent",
			e.Rushbrooke(), d)
	}
	if d := math.Abs(e.Griffiths() - 2); d > tol {
		return fmt.Errorf(
			"scaling violation: Griffiths identity broken\n"+
				"  Identity: α + β(1+δ) = 2\n"+
				"  Got: %g (off by %g)\n"+
				"  Action: re-derive the exponent set, these values are inconsistent",
			e.Griffiths(), d)
	}
	if d := math.Abs(e.Widom() - e.Gamma); d > tol {
		return fmt.Errorf(
			"scaling violation: Widom identity broken\n"+
				"  Identity: γ = β(δ-1)\n"+
				"  Got: β(δ-1) = %g against γ = %g\n"+
				"  Action: re-derive the exponent set, these values are inconsistent",
			e.Widom(), e.Gamma)
	}
	return nil
}

// PowerLawFit is the least-squares fit of y = A·x^k on log-log axes.
type PowerLawFit struct {
	Exponent  float64 // k, the slope in log-log space
	Amplitude float64 // A, from the intercept
	RSquared  float64 // goodness of fit over the log-log points
}

// FitPowerLaw fits y = A·x^k by linear regression of ln y against ln x.
//
// The fit is how the report annotates its scaling panels: generate a
// series that should follow a power law, fit it, and print the measured
// exponent next to the theoretical one. Every sample must be strictly
// positive, since both axes are logarithmic.
func FitPowerLaw(xs, ys []float64) (PowerLawFit, error) {
	if len(xs) != len(ys) {
		return PowerLawFit{}, fmt.Errorf("mismatched series: %d x values against %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return PowerLawFit{}, fmt.Errorf("need at least 2 points to fit a power law, got %d", len(xs))
	}

	var sx, sy, sxx, sxy float64
	for i := range xs {
		if xs[i] <= 0 || ys[i] <= 0 {
			return PowerLawFit{}, fmt.Errorf("power law fit requires positive samples, got (%g, %g) at index %d", xs[i], ys[i], i)
		}
		lx := math.Log(xs[i])
		ly := math.Log(ys[i])
		sx += lx
		sy += ly
		sxx += lx * lx
		sxy += lx * ly
	}

	n := float64(len(xs))
	det := n*sxx - sx*sx
	if math.Abs(det) < 1e-15 {
		return PowerLawFit{}, fmt.Errorf("degenerate abscissa: all x values coincide, slope is unconstrained")
	}
	slope := (n*sxy - sx*sy) / det
	intercept := (sy - slope*sx) / n

	// R² in log space, where the regression was performed.
	mean := sy / n
	var ssTot, ssRes float64
	for i := range xs {
		ly := math.Log(ys[i])
		pred := intercept + slope*math.Log(xs[i])
		ssTot += (ly - mean) * (ly - mean)
		ssRes += (ly - pred) * (ly - pred)
	}
	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	return PowerLawFit{
		Exponent:  slope,
		Amplitude: math.Exp(intercept),
		RSquared:  r2,
	}, nil
}
