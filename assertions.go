package lqg

import (
	"math"
	"testing"
)

// AssertionConfig carries the tolerances of the property assertions.
type AssertionConfig struct {
	RatioTol    float64 // critical ratio against the published 7/18
	PressureTol float64 // pressure equality across a coexistence pair
	IdentityTol float64 // exponent scaling identities
}

// DefaultAssertionConfig returns tolerances matched to how each value is
// produced: exact closed forms get double precision, searched values get
// the headroom a bounded scan needs.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		RatioTol:    1e-9,
		PressureTol: 1e-6,
		IdentityTol: 1e-12,
	}
}

// AssertClose fails unless got is within tol of want.
func AssertClose(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.10g, want %.10g (tolerance %g)", name, got, want, tol)
		return
	}
	t.Logf("✓ %s = %.10g (within %g of %.10g)", name, got, tol, want)
}

// AssertDefined fails unless q carries a value, and returns that value
// so the caller can keep checking it.
func AssertDefined(t *testing.T, name string, q Quantity) float64 {
	t.Helper()
	if !q.Defined {
		t.Errorf("%s: undefined, want a value", name)
		return 0
	}
	t.Logf("✓ %s defined: %.10g", name, q.Value)
	return q.Value
}

// AssertUndefined fails if q carries a value.
func AssertUndefined(t *testing.T, name string, q Quantity) {
	t.Helper()
	if q.Defined {
		t.Errorf("%s = %.10g, want undefined", name, q.Value)
		return
	}
	t.Logf("✓ %s undefined, as the domain requires", name)
}

// AssertCriticalRatio checks that CriticalRatio reports the published
// α-invariant value 7/18 for this quantum correction.
func AssertCriticalRatio(t *testing.T, alpha float64, cfg AssertionConfig) {
	t.Helper()
	ratio, err := CriticalRatio(alpha)
	if err != nil {
		t.Errorf("CriticalRatio(%g): %v", alpha, err)
		return
	}
	if math.Abs(ratio-QuantumCriticalRatio) > cfg.RatioTol {
		t.Errorf("critical ratio at α = %g: got %.12f, want %.12f", alpha, ratio, QuantumCriticalRatio)
		return
	}
	t.Logf("✓ critical ratio at α = %g: %.12f = 7/18", alpha, ratio)
}

// AssertCoexistence checks the structural properties of a two-phase
// pair: ordered distinct radii, equal pressures, and the closed-form
// cross-check 1/r_s + 1/r_l = 4πT that any equal-pressure pair on this
// equation of state must satisfy.
func AssertCoexistence(t *testing.T, p Parameters, c Coexistence, cfg AssertionConfig) {
	t.Helper()
	if c.RSmall >= c.RLarge {
		t.Errorf("coexistence radii out of order: r_small = %.6g, r_large = %.6g", c.RSmall, c.RLarge)
		return
	}
	tc := p.CriticalPoint().Temperature
	if c.Temperature >= tc {
		t.Errorf("coexistence reported at T = %.6g, at or above critical %.6g", c.Temperature, tc)
		return
	}
	ps := IsothermPressure(c.RSmall, c.Temperature)
	pl := IsothermPressure(c.RLarge, c.Temperature)
	if d := math.Abs(ps - pl); d > cfg.PressureTol {
		t.Errorf("pressure mismatch across pair: %.10g vs %.10g (Δ = %.3g)", ps, pl, d)
		return
	}
	sum := 1/c.RSmall + 1/c.RLarge
	want := 4 * math.Pi * c.Temperature
	if d := math.Abs(sum - want); d > cfg.PressureTol {
		t.Errorf("sum rule broken: 1/r_s + 1/r_l = %.10g, want 4πT = %.10g (Δ = %.3g)", sum, want, d)
		return
	}
	t.Logf("✓ coexistence at T = %.6g: r_s = %.4f and r_l = %.4f share P = %.6g, sum rule holds",
		c.Temperature, c.RSmall, c.RLarge, c.Pressure)
}

// AssertExponentIdentities checks the three scaling identities as
// subtests, so a failure names the identity that broke.
func AssertExponentIdentities(t *testing.T, e CriticalExponents, cfg AssertionConfig) {
	t.Helper()

	t.Run("Rushbrooke", func(t *testing.T) {
		if d := math.Abs(e.Rushbrooke() - 2); d > cfg.IdentityTol {
			t.Errorf("α + 2β + γ = %g, want 2 (off by %g)", e.Rushbrooke(), d)
			return
		}
		t.Logf("✓ Rushbrooke: α + 2β + γ = %g", e.Rushbrooke())
	})

	t.Run("Griffiths", func(t *testing.T) {
		if d := math.Abs(e.Griffiths() - 2); d > cfg.IdentityTol {
			t.Errorf("α + β(1+δ) = %g, want 2 (off by %g)", e.Griffiths(), d)
			return
		}
		t.Logf("✓ Griffiths: α + β(1+δ) = %g", e.Griffiths())
	})

	t.Run("Widom", func(t *testing.T) {
		if d := math.Abs(e.Widom() - e.Gamma); d > cfg.IdentityTol {
			t.Errorf("β(δ-1) = %g, want γ = %g (off by %g)", e.Widom(), e.Gamma, d)
			return
		}
		t.Logf("✓ Widom: β(δ-1) = %g = γ", e.Widom())
	})
}
