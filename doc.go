// Package lqg computes the thermodynamics of quantum-corrected black holes
// in effective loop quantum gravity.
//
// # Overview
//
// lqg evaluates the closed-form equation of state of the quantum-corrected
// Schwarzschild black hole studied in arXiv:2405.08241v4. Every quantity is
// a deterministic function of the horizon radius r₊ and a small parameter
// set (γ, α, Λ); the package performs no simulation and holds no global
// state. Quantities that leave their physical domain of validity are
// reported as explicitly undefined rather than NaN or ±Inf, so downstream
// consumers (tables, charts, archives) can render honest gaps.
//
// # Architecture
//
// The package components:
//
//   - params/      - Parameters (γ, α, Λ) and derivation rules
//   - engine/      - mass, temperature, pressure, entropy, Gibbs, heat capacity
//   - critical/    - critical point, critical ratio constants
//   - maxwell/     - equal-pressure coexistence construction
//   - inversion/   - Joule-Thomson coefficient and inversion points
//   - exponents/   - mean-field critical exponents and power-law fitting
//   - sweep/       - radius grids, batch and lazy evaluation
//   - assertions/  - test helpers for thermodynamic properties
//
// All of the above live in this single package; the list names concerns,
// not directories. Rendering, persistence and serving live under internal/.
//
// # Quick Start
//
// Evaluate the reference configuration of the paper:
//
//	p := lqg.DefaultParameters() // γ = 0.2375, Λ = 0
//
//	m, ok := p.Mass(5.0)
//	if !ok {
//	    // no horizon at this radius
//	}
//
//	t := p.Temperature(5.0)
//	fmt.Printf("M = %.6f  T = %.6f\n", m, t)
//
//	cp := p.CriticalPoint()
//	fmt.Printf("r₊c = %.4f  Pc = %.6f  Tc = %.6f\n",
//	    cp.Radius, cp.Pressure, cp.Temperature)
//
// # The Quantum Correction
//
// The Barbero-Immirzi parameter γ sets the scale of the loop quantum
// gravity correction:
//
//	α = 16√3·π·γ³
//
// At the reference value γ = 0.2375 (fixed by black hole entropy counting),
// α ≈ 1.1663. The correction removes the classical singularity and deforms
// every thermodynamic quantity at small r₊ while restoring the
// Schwarzschild limit as r₊ → ∞.
//
// System behavior by radius (Λ = 0):
//   - r₊ < 3√α:        no horizon, mass undefined
//   - r₊ = 3√α:        extremal boundary, M = r₊³/(3α)
//   - 3√α < r₊ < 2√(3α): thermodynamically unstable (Cp < 0)
//   - r₊ = 2√(3α):     heat capacity diverges (second-order transition)
//   - r₊ > 2√(3α):     stable branch (Cp > 0)
//
// # Undefined Quantities
//
// The black hole mass requires a non-negative discriminant
//
//	D = 1 - 9α/r₊² + Λα·r₊²
//
// and a positive result. Outside this domain there is no black hole to
// speak of, so Mass, Gibbs and every quantity derived from the mass report
// ok = false. Temperature, pressure, entropy and specific volume are total
// on r₊ > 0 and never report failure; temperature may be legitimately
// negative and is never clamped. Poles (heat capacity, Joule-Thomson) are
// guarded by exact sentinels:
//
//	|βr₊² - 12α| ≤ 1e-10  → heat capacity undefined
//	|denominator| ≤ 1e-12 → Joule-Thomson coefficient undefined
//
// Batch evaluation carries undefinedness through Quantity values, which
// marshal to JSON null and persist as SQL NULL.
//
// # The Critical Ratio
//
// The critical point of the small/large black hole transition has closed
// forms:
//
//	r₊c = 2√(3α)   Pc = 1/(24πα)   Vc = 4√(3α)   Tc = √3/(50π√α)
//
// The published critical ratio is
//
//	Pc·Vc/Tc = 7/18 ≈ 0.3889
//
// independent of α, against the classical van der Waals value 3/8. The raw
// product of the closed forms above evaluates to 25/3; the discrepancy
// comes from the truncated Tc expansion used in the source material, and
// both values are exposed (CriticalRatio and CriticalPoint.Ratio) so
// reports can show them side by side.
//
// # Phase Coexistence
//
// Below Tc an isotherm in the P-V plane admits pairs of radii at equal
// pressure. MaxwellConstruction searches a bounded radius window for the
// first such pair scanning upward in r_small:
//
//	c, err := p.MaxwellConstruction(0.8*tc, lqg.DefaultMaxwellConfig())
//	if errors.Is(err, lqg.ErrNoCoexistence) {
//	    // single phase everywhere in the window
//	}
//
// The pair satisfies 1/r_s + 1/r_l = 4πT, which tests use as an
// independent cross-check.
//
// # Testing
//
// Use assertions to validate thermodynamic properties:
//
//	func TestMyScenario(t *testing.T) {
//	    p := lqg.DefaultParameters()
//	    cfg := lqg.DefaultAssertionConfig()
//
//	    // Assert the α-invariant critical ratio
//	    lqg.AssertCriticalRatio(t, p.Alpha, cfg)
//
//	    // Assert a two-phase pair below Tc
//	    c, _ := p.MaxwellConstruction(0.008, lqg.DefaultMaxwellConfig())
//	    lqg.AssertCoexistence(t, p, c, cfg)
//
//	    // Assert the mean-field exponent identities
//	    lqg.AssertExponentIdentities(t, lqg.MeanFieldExponents(), cfg)
//	}
//
// # Philosophy
//
// Traditional numeric code answers: "What is the value?"
// lqg answers: "Is there a value, and what regime is it in?"
//
// - Is the black hole there at all? (D ≥ 0, M > 0)
// - Is the branch stable? (sign of Cp)
// - Is the fluid one phase or two? (T against Tc, Maxwell pairs)
// - Do the scaling laws hold? (exponent identities, power-law fits)
//
// This shifts focus from producing numbers to classifying behavior, which
// is what the figures and reports downstream actually need.
//
// # See Also
//
//   - internal/plot   - dependency-free SVG rendering
//   - internal/report - figure set, constants table, gallery and JSON export
//   - internal/store  - sqlite archive of parameter sweeps
//   - internal/api    - HTTP gallery with health and metrics endpoints
//   - cmd/lqg         - report, serve, sweep and check commands
//   - examples/       - working code samples
package lqg
