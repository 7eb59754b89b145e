package lqg

import "math"

// Pole guards for the two quantities with rational-function poles. These
// are exact sentinels, not tunables: a denominator inside the guard means
// the evaluation point is indistinguishable from the pole at double
// precision, and the quantity is reported undefined instead of ±Inf.
const (
	// HeatCapacityPoleGuard bounds |βr₊² - 12α| below which the heat
	// capacity is treated as divergent.
	HeatCapacityPoleGuard = 1e-10

	// JouleThomsonPoleGuard bounds the Joule-Thomson denominator
	// |9αM² - 9Mr₊³ + 3r₊⁴| below which μ is treated as divergent.
	JouleThomsonPoleGuard = 1e-12
)

// Mass returns the quantum-corrected black hole mass at horizon radius r,
//
//	M(r₊) = r₊³/(3α) · (1 - √D),  D = 1 - 9α/r₊² + Λα·r₊²
//
// The second return is false outside the domain of validity: non-positive
// radius, negative discriminant (no horizon forms), or a non-positive
// mass. On the boundary D = 0 the mass is defined and equals r₊³/(3α).
//
// In flat space (Λ = 0) the domain is exactly r₊ ≥ 3√α. At the matched
// AdS coupling Λ = LambdaAdS(γ) the discriminant is negative for every
// radius and Mass is undefined everywhere.
func (p Parameters) Mass(r float64) (float64, bool) {
	if r <= 0 {
		return 0, false
	}
	d := 1 - 9*p.Alpha/(r*r) + p.Lambda*p.Alpha*r*r
	if d < 0 {
		return 0, false
	}
	m := r * r * r / (3 * p.Alpha) * (1 - math.Sqrt(d))
	if m <= 0 {
		return 0, false
	}
	return m, true
}

// Temperature returns the Hawking temperature at horizon radius r,
//
//	T(r₊) = (1/4π) · (1/r₊² - 2α/r₊⁵ + Λr₊/3)
//
// Defined for every r > 0, including radii where no horizon exists; the
// expression is the analytic continuation the surface-gravity formula
// provides. The temperature is negative below the root of the bracket
// (r₊³ = 2α in flat space) and is deliberately never clamped: the sign
// carries physics, marking the evaporation endpoint regime.
func (p Parameters) Temperature(r float64) float64 {
	r2 := r * r
	r5 := r2 * r2 * r
	return (1/r2 - 2*p.Alpha/r5 + p.Lambda*r/3) / (4 * math.Pi)
}

// Pressure returns the thermodynamic pressure conjugate to the specific
// volume, evaluated on shell at radius r:
//
//	P(r₊) = T(r₊)/(2r₊) - 1/(8πr₊²)
//
// This is IsothermPressure at the local Hawking temperature. Defined for
// every r > 0; shares the sign structure of the temperature.
func (p Parameters) Pressure(r float64) float64 {
	return IsothermPressure(r, p.Temperature(r))
}

// IsothermPressure returns the equation-of-state pressure at radius r on
// the isotherm of temperature t,
//
//	P(r₊, T) = T/(2r₊) - 1/(8πr₊²)
//
// The quantum correction enters only through the on-shell temperature, so
// the isotherm shape itself is α-independent. For t > 0 the curve rises to
// a single maximum at r₊ = 1/(2πT) and decays beyond it; that apex is what
// the Maxwell construction brackets against.
func IsothermPressure(r, t float64) float64 {
	return t/(2*r) - 1/(8*math.Pi*r*r)
}

// SpecificVolume returns the thermodynamic specific volume v = 2r₊.
func SpecificVolume(r float64) float64 {
	return 2 * r
}

// Entropy returns the Bekenstein-Hawking entropy S = πr₊², one quarter of
// the horizon area. The quantum correction deforms temperature and mass
// but leaves the area law intact at this order.
func Entropy(r float64) float64 {
	return math.Pi * r * r
}

// Gibbs returns the Gibbs free energy G = M - T·S at radius r. It
// inherits the mass domain: where no horizon exists there is no free
// energy to report, and ok is false.
func (p Parameters) Gibbs(r float64) (float64, bool) {
	m, ok := p.Mass(r)
	if !ok {
		return 0, false
	}
	return m - p.Temperature(r)*Entropy(r), true
}

// HeatCapacity returns the heat capacity at constant pressure,
//
//	Cp(r₊) = (πr₊²/2) · (βr₊² + 12α)/(βr₊² - 12α),  β = (3 + αΛ)/3
//
// In flat space β = 1 and the denominator vanishes exactly at the
// critical radius r₊ = 2√(3α): Cp is negative on the small unstable
// branch below it, diverges across it, and is positive on the large
// stable branch above. The divergence is the second-order phase
// transition the critical point formulas describe.
//
// ok is false for r ≤ 0 and within HeatCapacityPoleGuard of the pole.
func (p Parameters) HeatCapacity(r float64) (float64, bool) {
	if r <= 0 {
		return 0, false
	}
	b := p.beta()
	den := b*r*r - 12*p.Alpha
	if math.Abs(den) <= HeatCapacityPoleGuard {
		return 0, false
	}
	num := b*r*r + 12*p.Alpha
	return math.Pi * r * r / 2 * num / den, true
}

// JouleThomson returns the Joule-Thomson coefficient μ = ∂T/∂P at fixed
// mass, as a rational function of the radius and the mass:
//
//	μ = (4Mr₊⁵ - 30αM²r₊² - 12Mr₊⁵ + 2r₊⁶) / (9αM² - 9Mr₊³ + 3r₊⁴)
//
// The numerator keeps the four-term form of the source material; it
// factors as 2r₊²(r₊⁴ - 4Mr₊³ - 15αM²), whose root in r₊ is the inversion
// radius where heating turns to cooling. The mass is passed explicitly so
// callers can evaluate on or off shell; feed Mass(r) for the physical
// curve.
//
// ok is false for r ≤ 0, m ≤ 0, and within JouleThomsonPoleGuard of the
// denominator zero.
func (p Parameters) JouleThomson(r, m float64) (float64, bool) {
	if r <= 0 || m <= 0 {
		return 0, false
	}
	r2 := r * r
	r3 := r2 * r
	r4 := r2 * r2
	r5 := r4 * r
	r6 := r3 * r3
	den := 9*p.Alpha*m*m - 9*m*r3 + 3*r4
	if math.Abs(den) <= JouleThomsonPoleGuard {
		return 0, false
	}
	num := 4*m*r5 - 30*p.Alpha*m*m*r2 - 12*m*r5 + 2*r6
	return num / den, true
}
