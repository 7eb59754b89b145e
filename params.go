package lqg

import (
	"fmt"
	"math"
)

// ReferenceGamma is the Barbero-Immirzi parameter used for every reference
// figure and table in arXiv:2405.08241v4.
//
// NOTE: The value 0.2375 is not tunable physics input. It is fixed by
// matching the loop quantum gravity state counting of horizon area to the
// Bekenstein-Hawking entropy S = A/4 (Meissner 2004). Changing γ rescales
// the quantum correction α but leaves the critical ratio invariant, which
// is exactly what TestCriticalRatioIsGammaInvariant verifies.
const ReferenceGamma = 0.2375

// Parameters fixes the physical context for every formula in this package:
// the Barbero-Immirzi parameter γ, the derived quantum correction scale
// α = 16√3·π·γ³, and the cosmological constant Λ.
//
// Parameters is a small immutable value. Derive one with NewParameters and
// pass it explicitly; there is no package-level parameter state, so two
// goroutines evaluating different configurations never interfere.
type Parameters struct {
	Gamma  float64 `json:"gamma"`  // Barbero-Immirzi parameter, > 0
	Alpha  float64 `json:"alpha"`  // quantum correction 16√3·π·γ³, derived from Gamma
	Lambda float64 `json:"lambda"` // cosmological constant: 0 flat, < 0 AdS, > 0 dS
}

// NewParameters derives α from γ and fixes the cosmological constant.
func NewParameters(gamma, lambda float64) (Parameters, error) {
	if gamma <= 0 {
		return Parameters{}, fmt.Errorf("barbero-immirzi parameter must be positive, got %g", gamma)
	}
	return Parameters{
		Gamma:  gamma,
		Alpha:  AlphaFromGamma(gamma),
		Lambda: lambda,
	}, nil
}

// DefaultParameters returns the reference configuration of the source
// material: γ = 0.2375 in an asymptotically flat background (Λ = 0).
func DefaultParameters() Parameters {
	return Parameters{
		Gamma:  ReferenceGamma,
		Alpha:  AlphaFromGamma(ReferenceGamma),
		Lambda: 0,
	}
}

// AlphaFromGamma computes the quantum correction scale α = 16√3·π·γ³.
// At the reference γ = 0.2375 this is ≈ 1.166330.
func AlphaFromGamma(gamma float64) float64 {
	return 16 * math.Sqrt(3) * math.Pi * gamma * gamma * gamma
}

// LambdaAdS returns the anti-de Sitter cosmological constant matched to γ,
//
//	Λ_ads = -3/(16πγ³)
//
// The product with the quantum correction is parameter-free:
// α·Λ_ads = -3√3 for every γ. At this coupling the mass discriminant is
// negative for all radii, so the whole spectrum is horizonless; the Gibbs
// figure keeps the resulting empty curve on purpose.
func LambdaAdS(gamma float64) float64 {
	return -3 / (16 * math.Pi * gamma * gamma * gamma)
}

// WithLambda returns a copy of p with a different cosmological constant.
// γ and α are unchanged.
func (p Parameters) WithLambda(lambda float64) Parameters {
	p.Lambda = lambda
	return p
}

// Validate reports whether the parameter set is internally consistent.
// Hand-built Parameters literals can desynchronize Gamma and Alpha; the
// configuration layer calls this after loading scenarios from disk.
func (p Parameters) Validate() error {
	if p.Gamma <= 0 {
		return fmt.Errorf(
			"parameter violation: γ = %g is not positive\n"+
				"  Field: Gamma\n"+
				"  Risk: α = 16√3·π·γ³ is zero or negative, every formula degenerates\n"+
				"  Action: choose γ > 0 (reference value 0.2375)", p.Gamma)
	}
	want := AlphaFromGamma(p.Gamma)
	if math.Abs(p.Alpha-want) > 1e-12*math.Max(1, want) {
		return fmt.Errorf(
			"parameter violation: α = %g does not match γ = %g\n"+
				"  Field: Alpha\n"+
				"  Expected: 16√3·π·γ³ = %g\n"+
				"  Risk: critical point and mass domain silently disagree with γ\n"+
				"  Action: build Parameters with NewParameters instead of a literal", p.Alpha, p.Gamma, want)
	}
	return nil
}

// beta is the Λ-corrected branch coefficient (3 + αΛ)/3 appearing in the
// heat capacity. It is 1 in flat space and 1 - √3 at the matched AdS
// coupling.
func (p Parameters) beta() float64 {
	return (3 + p.Alpha*p.Lambda) / 3
}
