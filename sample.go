package lqg

// ThermoSample is one full thermodynamic evaluation at a single horizon
// radius. Temperature, pressure, specific volume and entropy are total
// functions and always carry values; mass, Gibbs free energy and heat
// capacity carry their domain flags.
type ThermoSample struct {
	R  float64  `json:"r"`  // horizon radius r₊
	T  float64  `json:"t"`  // Hawking temperature (may be negative)
	P  float64  `json:"p"`  // thermodynamic pressure
	V  float64  `json:"v"`  // specific volume 2r₊
	S  float64  `json:"s"`  // entropy πr₊²
	M  Quantity `json:"m"`  // black hole mass
	G  Quantity `json:"g"`  // Gibbs free energy
	Cp Quantity `json:"cp"` // heat capacity at constant pressure
}

// Sample evaluates every quantity at radius r. Partial quantities come
// back with their domain flags set, so a single sweep over a grid yields
// series with honest gaps.
func (p Parameters) Sample(r float64) ThermoSample {
	s := ThermoSample{
		R: r,
		T: p.Temperature(r),
		P: p.Pressure(r),
		V: SpecificVolume(r),
		S: Entropy(r),
	}
	if m, ok := p.Mass(r); ok {
		s.M = defined(m)
	}
	if g, ok := p.Gibbs(r); ok {
		s.G = defined(g)
	}
	if cp, ok := p.HeatCapacity(r); ok {
		s.Cp = defined(cp)
	}
	return s
}
