package lqg

import (
	"math"
	"reflect"
	"testing"
)

func TestRadiusGridEndpoints(t *testing.T) {
	grid := RadiusGrid(1, 3, 5)
	want := []float64{1, 1.5, 2, 2.5, 3}
	if len(grid) != len(want) {
		t.Fatalf("len = %d, want %d", len(grid), len(want))
	}
	for i := range want {
		if math.Abs(grid[i]-want[i]) > 1e-12 {
			t.Errorf("grid[%d] = %g, want %g", i, grid[i], want[i])
		}
	}
	if grid[0] != 1 || grid[len(grid)-1] != 3 {
		t.Error("endpoints must be exact, not accumulated")
	}

	if RadiusGrid(1, 3, 0) != nil {
		t.Error("n = 0 must yield nil")
	}
	if g := RadiusGrid(2, 9, 1); len(g) != 1 || g[0] != 2 {
		t.Errorf("n = 1 grid = %v, want [2]", g)
	}
}

func TestSweepDeterministic(t *testing.T) {
	// Scenario: same config, same samples, bit for bit.
	cfg := DefaultSweepConfig()
	cfg.Points = 101

	a := Sweep(cfg)
	b := Sweep(cfg)
	if len(a) != 101 {
		t.Fatalf("len = %d, want 101", len(a))
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two identical sweeps differ")
	}
	t.Logf("✓ %d samples, deterministic", len(a))
}

func TestSweepCarriesGaps(t *testing.T) {
	// Scenario: a flat-space sweep over (1, 20) starts below the horizon
	// boundary, so early samples carry undefined mass while the total
	// quantities stay numeric.
	samples := Sweep(DefaultSweepConfig())

	first := samples[0]
	AssertUndefined(t, "M at r₊ = 1", first.M)
	AssertUndefined(t, "G at r₊ = 1", first.G)
	if math.IsNaN(first.T) || math.IsNaN(first.P) || math.IsInf(first.T, 0) {
		t.Error("total quantities must stay numeric inside the gap")
	}

	last := samples[len(samples)-1]
	AssertDefined(t, "M at r₊ = 20", last.M)

	var gaps int
	for _, s := range samples {
		if !s.M.Defined {
			gaps++
		}
	}
	if gaps == 0 || gaps == len(samples) {
		t.Errorf("gap count = %d of %d, want a proper boundary inside the window", gaps, len(samples))
	}
	t.Logf("✓ %d of %d samples below the horizon boundary", gaps, len(samples))
}

func TestSampleSeqLazyAndRestartable(t *testing.T) {
	// Scenario: the sequence evaluates on demand, stops on break, and a
	// second range starts over from the top with identical values.
	p := DefaultParameters()
	radii := RadiusGrid(4, 12, 9)
	seq := SampleSeq(p, radii)

	var first []ThermoSample
	for s := range seq {
		first = append(first, s)
		if len(first) == 3 {
			break
		}
	}
	if len(first) != 3 {
		t.Fatalf("early break collected %d samples, want 3", len(first))
	}

	var second []ThermoSample
	for s := range seq {
		second = append(second, s)
	}
	if len(second) != len(radii) {
		t.Fatalf("restart collected %d samples, want %d", len(second), len(radii))
	}
	if !reflect.DeepEqual(first, second[:3]) {
		t.Error("restarted sequence diverged from the first pass")
	}
	t.Logf("✓ lazy, breakable, restartable over %d radii", len(radii))
}

func TestSampleMatchesPointwise(t *testing.T) {
	// Scenario: Sample must agree with the individual operations it
	// bundles.
	p := DefaultParameters()
	r := 7.3
	s := p.Sample(r)

	if s.T != p.Temperature(r) || s.P != p.Pressure(r) {
		t.Error("T or P diverges from the pointwise call")
	}
	if s.S != Entropy(r) || s.V != SpecificVolume(r) {
		t.Error("S or v diverges from the pointwise call")
	}
	m, ok := p.Mass(r)
	if s.M.Defined != ok || (ok && s.M.Value != m) {
		t.Error("mass diverges from the pointwise call")
	}
	cp, ok := p.HeatCapacity(r)
	if s.Cp.Defined != ok || (ok && s.Cp.Value != cp) {
		t.Error("heat capacity diverges from the pointwise call")
	}
}
