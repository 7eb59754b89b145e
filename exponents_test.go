package lqg

import (
	"math"
	"testing"
)

func TestMeanFieldIdentities(t *testing.T) {
	// Scenario: {0, 1/2, 1, 3} satisfies Rushbrooke, Griffiths and Widom
	// exactly; no tolerance games required.
	e := MeanFieldExponents()
	AssertExponentIdentities(t, e, DefaultAssertionConfig())
	if err := e.Validate(); err != nil {
		t.Errorf("mean-field set failed validation: %v", err)
	}
}

func TestValidateCatchesBrokenSet(t *testing.T) {
	// Scenario: perturbing one exponent must break at least one identity.
	e := MeanFieldExponents()
	e.Beta = 0.4
	if err := e.Validate(); err == nil {
		t.Error("expected a scaling violation for β = 0.4")
	} else {
		t.Logf("✓ rejected: %v", err)
	}
}

func TestFitPowerLawRecoversExponent(t *testing.T) {
	// Scenario: a clean y = 3·x^1.5 series must fit to machine precision.
	xs := make([]float64, 40)
	ys := make([]float64, 40)
	for i := range xs {
		x := 0.01 * float64(i+1)
		xs[i] = x
		ys[i] = 3 * math.Pow(x, 1.5)
	}

	fit, err := FitPowerLaw(xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	AssertClose(t, "exponent", fit.Exponent, 1.5, 1e-9)
	AssertClose(t, "amplitude", fit.Amplitude, 3.0, 1e-9)
	if fit.RSquared < 0.999999 {
		t.Errorf("R² = %g, want ≈ 1 for noiseless data", fit.RSquared)
	}
}

func TestFitPowerLawRejections(t *testing.T) {
	cases := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{"MismatchedLengths", []float64{1, 2, 3}, []float64{1, 2}},
		{"TooFewPoints", []float64{1}, []float64{1}},
		{"NonPositiveY", []float64{1, 2}, []float64{1, -2}},
		{"NonPositiveX", []float64{0, 2}, []float64{1, 2}},
		{"DegenerateAbscissa", []float64{4, 4, 4}, []float64{1, 2, 3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := FitPowerLaw(c.xs, c.ys); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestFitRecoversOrderParameterExponent(t *testing.T) {
	// Scenario: the mean-field order parameter Δv = 2Vc·√(-t) over a
	// reduced-temperature range fits to slope 1/2, which is exactly how
	// the scaling figure annotates its panels.
	p := DefaultParameters()
	vc := p.CriticalPoint().Volume

	var red, dv []float64
	for i := 1; i <= 60; i++ {
		r := float64(i) * 1e-3
		red = append(red, r)
		dv = append(dv, 2*vc*math.Sqrt(r))
	}

	fit, err := FitPowerLaw(red, dv)
	if err != nil {
		t.Fatal(err)
	}
	AssertClose(t, "β from fit", fit.Exponent, MeanFieldExponents().Beta, 1e-9)
	t.Logf("✓ order parameter scaling recovered: slope %.6f, R² = %.8f", fit.Exponent, fit.RSquared)
}
