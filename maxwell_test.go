package lqg

import (
	"errors"
	"testing"
)

// TestMaxwellBelowCritical pins the reference construction at T = 0.8·Tc:
// the smallest-r_small pair sits near the top of the (1, 20) window with
// its partner just inside the edge.
func TestMaxwellBelowCritical(t *testing.T) {
	p := DefaultParameters()
	tcrit := p.CriticalPoint().Temperature

	c, err := p.MaxwellConstruction(0.8*tcrit, DefaultMaxwellConfig())
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	AssertCoexistence(t, p, c, DefaultAssertionConfig())

	if c.RSmall < 18.9 || c.RSmall > 19.1 {
		t.Errorf("r_small = %.4f, want ≈ 19.00 under the smallest-r_small policy", c.RSmall)
	}
	if c.RLarge < 19.9 || c.RLarge >= 20 {
		t.Errorf("r_large = %.4f, want just inside the window edge", c.RLarge)
	}
	if c.Pressure <= 0 {
		t.Errorf("coexistence pressure = %g, want positive at this temperature", c.Pressure)
	}
}

func TestMaxwellGates(t *testing.T) {
	// Scenario: every rejection path reports ErrNoCoexistence with the
	// gate's explanation, never a bare failure.
	p := DefaultParameters()
	tcrit := p.CriticalPoint().Temperature
	cfg := DefaultMaxwellConfig()

	cases := []struct {
		name string
		temp float64
	}{
		{"AtCritical", tcrit},
		{"Supercritical", 1.2 * tcrit},
		{"Zero", 0},
		{"Negative", -0.001},
		{"ApexBeyondWindow", 0.5 * tcrit},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := p.MaxwellConstruction(c.temp, cfg)
			if !errors.Is(err, ErrNoCoexistence) {
				t.Fatalf("err = %v, want ErrNoCoexistence", err)
			}
			t.Logf("✓ rejected: %v", err)
		})
	}
}

func TestMaxwellWindowPolicy(t *testing.T) {
	// Scenario: the construction reports the window's smallest r_small,
	// so widening the window must move the pair down, not leave it fixed.
	p := DefaultParameters()
	temp := 0.8 * p.CriticalPoint().Temperature

	narrow, err := p.MaxwellConstruction(temp, DefaultMaxwellConfig())
	if err != nil {
		t.Fatal(err)
	}

	wideCfg := DefaultMaxwellConfig()
	wideCfg.RMax = 25
	wide, err := p.MaxwellConstruction(temp, wideCfg)
	if err != nil {
		t.Fatal(err)
	}

	if wide.RSmall >= narrow.RSmall {
		t.Errorf("window (1, 25) gives r_small = %.4f, want below the (1, 20) value %.4f",
			wide.RSmall, narrow.RSmall)
	}
	AssertCoexistence(t, p, wide, DefaultAssertionConfig())
	t.Logf("✓ policy: window (1, 20) → r_s = %.3f; window (1, 25) → r_s = %.3f",
		narrow.RSmall, wide.RSmall)
}

func TestMaxwellConfigValidation(t *testing.T) {
	p := DefaultParameters()
	bad := []MaxwellConfig{
		{RMin: 0, RMax: 20, Step: 0.01, Tol: 1e-10},
		{RMin: 5, RMax: 5, Step: 0.01, Tol: 1e-10},
		{RMin: 1, RMax: 20, Step: 0, Tol: 1e-10},
		{RMin: 1, RMax: 20, Step: 0.01, Tol: 0},
	}
	for _, cfg := range bad {
		_, err := p.MaxwellConstruction(0.008, cfg)
		if err == nil || errors.Is(err, ErrNoCoexistence) {
			t.Errorf("config %+v: err = %v, want a config error, not a search outcome", cfg, err)
		}
	}
	t.Logf("✓ malformed windows rejected before searching")
}
