package lqg

import (
	"math"
	"testing"
)

// TestMassDomainBoundary walks the flat-space horizon boundary r₊ = 3√α:
// undefined below it, the closed form r₊³/(3α) at it, positive above.
func TestMassDomainBoundary(t *testing.T) {
	p := DefaultParameters()
	boundary := 3 * math.Sqrt(p.Alpha)

	if m, ok := p.Mass(boundary - 1e-6); ok {
		t.Errorf("mass defined below the horizon boundary: M(%g) = %g", boundary-1e-6, m)
	}

	// Just past the boundary the discriminant is positive beyond floating
	// noise and the mass sits on the closed form to the square root of
	// the offset.
	r := boundary + 1e-9
	m, ok := p.Mass(r)
	if !ok {
		t.Fatalf("mass undefined just past the boundary r₊ = %g", r)
	}
	AssertClose(t, "M(3√α)", m, r*r*r/(3*p.Alpha), 1e-3)

	if m, ok := p.Mass(boundary + 0.5); !ok || m <= 0 {
		t.Errorf("mass above the boundary: got (%g, %v), want positive and defined", m, ok)
	}

	if _, ok := p.Mass(0); ok {
		t.Error("mass defined at r₊ = 0")
	}
	if _, ok := p.Mass(-2); ok {
		t.Error("mass defined at negative radius")
	}
}

func TestMassPinnedValue(t *testing.T) {
	// Scenario: one hand-checked value away from every boundary.
	p := DefaultParameters()
	m, ok := p.Mass(5.0)
	if !ok {
		t.Fatal("mass undefined at r₊ = 5")
	}
	AssertClose(t, "M(5)", m, 8.514709, 1e-3)
}

func TestMassAdSDomains(t *testing.T) {
	// Scenario: at the matched AdS coupling the discriminant is negative
	// for every radius; a weak AdS coupling opens a bounded window.
	p := DefaultParameters()

	ads := p.WithLambda(LambdaAdS(p.Gamma))
	for _, r := range RadiusGrid(1, 20, 96) {
		if m, ok := ads.Mass(r); ok {
			t.Fatalf("mass defined at r₊ = %g under Λ_ads: %g, want horizonless", r, m)
		}
	}
	t.Logf("✓ matched AdS coupling is horizonless across (1, 20)")

	weak := p.WithLambda(-0.01)
	if _, ok := weak.Mass(3.0); ok {
		t.Error("weak AdS: mass defined at r₊ = 3, below the window")
	}
	if _, ok := weak.Mass(5.0); !ok {
		t.Error("weak AdS: mass undefined at r₊ = 5, inside the window")
	}
	if _, ok := weak.Mass(10.0); ok {
		t.Error("weak AdS: mass defined at r₊ = 10, above the window")
	}
	t.Logf("✓ weak AdS window is bounded on both sides")
}

func TestTemperatureSign(t *testing.T) {
	// Scenario: the flat-space temperature crosses zero at r₊³ = 2α and
	// must never be clamped on either side.
	p := DefaultParameters()
	zero := math.Cbrt(2 * p.Alpha)

	if tm := p.Temperature(zero * 0.9); tm >= 0 {
		t.Errorf("T below the zero crossing = %g, want negative", tm)
	}
	if tm := p.Temperature(zero * 1.1); tm <= 0 {
		t.Errorf("T above the zero crossing = %g, want positive", tm)
	}
	AssertClose(t, "T(1.0)", p.Temperature(1.0), -0.1060497, 1e-6)
	t.Logf("✓ negative temperatures reported as computed, zero crossing at r₊ = %.5f", zero)
}

func TestPressureMatchesIsothermOnShell(t *testing.T) {
	// Scenario: Pressure is the isotherm EOS evaluated at the local
	// Hawking temperature; the two paths must agree exactly.
	p := DefaultParameters()
	for _, r := range []float64{0.5, 1.32, 3.74, 10, 19.5} {
		if got, want := p.Pressure(r), IsothermPressure(r, p.Temperature(r)); got != want {
			t.Errorf("Pressure(%g) = %g, IsothermPressure = %g", r, got, want)
		}
	}
	t.Logf("✓ on-shell pressure and isotherm EOS agree")
}

func TestEntropyAndVolume(t *testing.T) {
	for _, r := range []float64{0.1, 1, 3.5, 18} {
		if got, want := Entropy(r), math.Pi*r*r; got != want {
			t.Errorf("S(%g) = %g, want πr₊² = %g", r, got, want)
		}
		if got, want := SpecificVolume(r), 2*r; got != want {
			t.Errorf("v(%g) = %g, want 2r₊ = %g", r, got, want)
		}
	}
}

func TestGibbsInheritsMassDomain(t *testing.T) {
	// Scenario: G = M - T·S exists exactly where the mass does.
	p := DefaultParameters()

	if g, ok := p.Gibbs(2.0); ok {
		t.Errorf("Gibbs defined where the mass is not: G(2) = %g", g)
	}

	g, ok := p.Gibbs(5.0)
	if !ok {
		t.Fatal("Gibbs undefined on the mass domain")
	}
	AssertClose(t, "G(5)", g, 8.269374, 1e-3)
}

func TestHeatCapacityPoleAndBranches(t *testing.T) {
	// Scenario: Cp is negative on the small branch, diverges at
	// r₊ = 2√(3α) inside the exact sentinel, positive on the large branch.
	p := DefaultParameters()
	rc := 2 * math.Sqrt(3*p.Alpha)

	if cp, ok := p.HeatCapacity(2.0); !ok || cp >= 0 {
		t.Errorf("small branch: Cp(2) = (%g, %v), want negative and defined", cp, ok)
	}
	if cp, ok := p.HeatCapacity(rc); ok {
		t.Errorf("Cp defined at the pole r₊c = %g: %g", rc, cp)
	}
	if cp, ok := p.HeatCapacity(6.0); !ok || cp <= 0 {
		t.Errorf("large branch: Cp(6) = (%g, %v), want positive and defined", cp, ok)
	}

	// The sentinel is exact: a denominator of 5e-11 is inside the guard,
	// 1e-6 is outside and yields an enormous but defined value.
	inside := math.Sqrt(12*p.Alpha + 5e-11)
	if cp, ok := p.HeatCapacity(inside); ok {
		t.Errorf("Cp defined at den = 5e-11, inside the guard: %g", cp)
	}
	outside := math.Sqrt(12*p.Alpha + 1e-6)
	cp, ok := p.HeatCapacity(outside)
	if !ok {
		t.Fatal("Cp undefined at den = 1e-6, outside the guard")
	}
	if math.Abs(cp) < 1e6 {
		t.Errorf("Cp just outside the guard = %g, expected a macroscopic divergence", cp)
	}
	t.Logf("✓ pole at r₊c = %.6f with guard %g, near-pole Cp = %.3g", rc, HeatCapacityPoleGuard, cp)
}

func TestJouleThomsonDomain(t *testing.T) {
	// Scenario: μ needs a black hole. It is undefined off the mass domain
	// and finite on it; in flat space the on-shell sign is uniform.
	p := DefaultParameters()

	if _, ok := p.JouleThomson(5.0, 0); ok {
		t.Error("μ defined for non-positive mass")
	}
	if _, ok := p.JouleThomson(-1, 1); ok {
		t.Error("μ defined for non-positive radius")
	}

	m, ok := p.Mass(5.0)
	if !ok {
		t.Fatal("mass undefined at r₊ = 5")
	}
	mu, ok := p.JouleThomson(5.0, m)
	if !ok {
		t.Fatal("μ undefined on shell at r₊ = 5")
	}
	AssertClose(t, "μ(5)", mu, 35.29, 0.1)
}
