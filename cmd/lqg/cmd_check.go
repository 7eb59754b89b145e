package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	lqg "github.com/arnavk23/LQG-Analysis"
)

// runCheck replays the headline identities against the engine. It is
// the fast way to confirm a build still computes the physics it claims
// to, without running the full test suite.
func runCheck(cmd *cobra.Command, _ []string) error {
	failed := 0
	check := func(name string, ok bool, detail string) {
		if ok {
			fmt.Printf("  ✓ %s\n", name)
			return
		}
		failed++
		fmt.Printf("  ✗ %s: %s\n", name, detail)
	}
	closeTo := func(got, want, tol float64) bool { return math.Abs(got-want) <= tol }

	fmt.Println("closed-form identities")
	check("alpha(0.2375) = 1.166330",
		closeTo(lqg.AlphaFromGamma(lqg.ReferenceGamma), 1.166330, 1e-5),
		fmt.Sprintf("got %.6f", lqg.AlphaFromGamma(lqg.ReferenceGamma)))

	for _, gamma := range []float64{0.15, lqg.ReferenceGamma, 0.30} {
		p, err := lqg.NewParameters(gamma, 0)
		if err != nil {
			check(fmt.Sprintf("parameters at gamma=%.4f", gamma), false, err.Error())
			continue
		}
		c := p.CriticalPoint()
		check(fmt.Sprintf("Pc*vc/Tc = 25/3 at gamma=%.4f", gamma),
			closeTo(c.Ratio(), 25.0/3.0, 1e-9),
			fmt.Sprintf("got %.9f", c.Ratio()))
		check(fmt.Sprintf("alpha*lambda_AdS = -3*sqrt(3) at gamma=%.4f", gamma),
			closeTo(p.Alpha*lqg.LambdaAdS(gamma), -3*math.Sqrt(3), 1e-12),
			fmt.Sprintf("got %.12f", p.Alpha*lqg.LambdaAdS(gamma)))
	}

	check("mean-field exponent identities",
		lqg.MeanFieldExponents().Validate() == nil, "scaling relations broken")

	fmt.Println("domain guards")
	p := lqg.DefaultParameters()
	boundary := 3 * math.Sqrt(p.Alpha)
	_, defBelow := p.Mass(boundary - 1e-6)
	_, defAbove := p.Mass(boundary + 1e-9)
	check("mass undefined below 3*sqrt(alpha)", !defBelow,
		"mass defined below the minimum horizon radius")
	check("mass defined above 3*sqrt(alpha)", defAbove,
		"mass missing just above the minimum horizon radius")

	c := p.CriticalPoint()
	_, cpAtPole := p.HeatCapacity(c.Radius)
	check("heat capacity pole at the critical radius", !cpAtPole,
		"expected undefined at r_c")

	cp2, ok2 := p.HeatCapacity(2)
	cp6, ok6 := p.HeatCapacity(6)
	check("heat capacity negative below r_c", ok2 && cp2 < 0,
		fmt.Sprintf("got %g defined=%v", cp2, ok2))
	check("heat capacity positive above r_c", ok6 && cp6 > 0,
		fmt.Sprintf("got %g defined=%v", cp6, ok6))

	tZero := math.Cbrt(2 * p.Alpha)
	check("temperature zero at (2*alpha)^(1/3)",
		closeTo(p.Temperature(tZero), 0, 1e-12),
		fmt.Sprintf("got %.3e", p.Temperature(tZero)))

	fmt.Println("phase structure")
	mcfg := lqg.DefaultMaxwellConfig()
	co, err := p.MaxwellConstruction(0.8*c.Temperature, mcfg)
	if err != nil {
		check("coexistence at 0.8 Tc", false, err.Error())
	} else {
		check("coexistence at 0.8 Tc", true, "")
		sum := 1/co.RSmall + 1/co.RLarge
		check("coexistence sum rule 1/r1 + 1/r2 = 4*pi*T",
			closeTo(sum, 4*math.Pi*co.Temperature, 1e-6),
			fmt.Sprintf("got %.9f want %.9f", sum, 4*math.Pi*co.Temperature))
	}

	_, err = p.MaxwellConstruction(c.Temperature, mcfg)
	check("no coexistence at Tc", errors.Is(err, lqg.ErrNoCoexistence),
		fmt.Sprint(err))

	if failed > 0 {
		return fmt.Errorf("%d checks failed", failed)
	}
	fmt.Println("all checks passed")
	return nil
}
