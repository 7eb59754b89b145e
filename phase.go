package lqg

import "fmt"

// PhaseRegime classifies an isotherm relative to the critical point.
type PhaseRegime string

const (
	// RegimeNonPhysical marks non-positive temperatures: no equilibrium
	// ensemble exists, nothing to classify.
	RegimeNonPhysical PhaseRegime = "NON_PHYSICAL"

	// RegimeSupercritical marks T ≥ Tc: one fluid phase, no first-order
	// transition anywhere on the isotherm.
	RegimeSupercritical PhaseRegime = "SUPERCRITICAL"

	// RegimeTwoPhase marks a subcritical isotherm with an equal-pressure
	// pair inside the search window: small and large black holes coexist.
	RegimeTwoPhase PhaseRegime = "TWO_PHASE"

	// RegimeSinglePhase marks a subcritical isotherm whose coexistence
	// pair falls outside the search window. The transition exists in the
	// full theory but not in the window being reported on.
	RegimeSinglePhase PhaseRegime = "SINGLE_PHASE"
)

// PhaseDiagnosis explains the phase structure at one temperature. Reason
// is a complete sentence suitable for figure captions and CLI output.
type PhaseDiagnosis struct {
	Regime      PhaseRegime
	Temperature float64
	ReducedT    float64      // T/Tc
	Coexistence *Coexistence // set only for RegimeTwoPhase
	Reason      string
}

// DiagnosePhase classifies the temperature against the critical point
// and, below Tc, attempts the Maxwell construction inside cfg. Search
// failure is a classification, not an error: a subcritical isotherm with
// no pair in the window is reported single-phase with the gate's own
// explanation as the reason.
func (p Parameters) DiagnosePhase(t float64, cfg MaxwellConfig) PhaseDiagnosis {
	tc := p.CriticalPoint().Temperature

	if t <= 0 {
		return PhaseDiagnosis{
			Regime:      RegimeNonPhysical,
			Temperature: t,
			ReducedT:    t / tc,
			Reason:      fmt.Sprintf("temperature %.6g is not positive, no equilibrium ensemble exists", t),
		}
	}
	if t >= tc {
		return PhaseDiagnosis{
			Regime:      RegimeSupercritical,
			Temperature: t,
			ReducedT:    t / tc,
			Reason: fmt.Sprintf("T/Tc = %.3f is at or above critical, small and large branches merge into one fluid phase",
				t/tc),
		}
	}

	c, err := p.MaxwellConstruction(t, cfg)
	if err != nil {
		// Covers both a pair outside the window and a malformed window;
		// either way the reason carries the search's own explanation.
		return PhaseDiagnosis{
			Regime:      RegimeSinglePhase,
			Temperature: t,
			ReducedT:    t / tc,
			Reason:      err.Error(),
		}
	}

	return PhaseDiagnosis{
		Regime:      RegimeTwoPhase,
		Temperature: t,
		ReducedT:    t / tc,
		Coexistence: &c,
		Reason: fmt.Sprintf("first-order transition at P = %.6g between r₊ = %.4f and r₊ = %.4f",
			c.Pressure, c.RSmall, c.RLarge),
	}
}
