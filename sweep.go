package lqg

import "iter"

// SweepConfig describes a batch evaluation over a linear radius grid.
type SweepConfig struct {
	Params Parameters
	RMin   float64
	RMax   float64
	Points int
}

// DefaultSweepConfig covers the reference window (1, 20) at a density
// that resolves the mass boundary and the heat capacity pole in the
// rendered figures.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Params: DefaultParameters(),
		RMin:   1,
		RMax:   20,
		Points: 600,
	}
}

// RadiusGrid returns n radii linearly spaced over [min, max], endpoints
// included. The last point is pinned to max so accumulated rounding never
// shifts the upper edge.
func RadiusGrid(min, max float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{min}
	}
	step := (max - min) / float64(n-1)
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = min + float64(i)*step
	}
	grid[n-1] = max
	return grid
}

// Sweep evaluates the full sample set across the configured grid. The
// result is deterministic: same config, same samples, bit for bit.
func Sweep(cfg SweepConfig) []ThermoSample {
	grid := RadiusGrid(cfg.RMin, cfg.RMax, cfg.Points)
	samples := make([]ThermoSample, 0, len(grid))
	for _, r := range grid {
		samples = append(samples, cfg.Params.Sample(r))
	}
	return samples
}

// SampleSeq returns a lazy sequence of samples over the given radii.
// Nothing is evaluated until the sequence is ranged over, and breaking
// out early stops evaluation at that point. The sequence is restartable:
// ranging twice evaluates the grid twice with identical results.
func SampleSeq(p Parameters, radii []float64) iter.Seq[ThermoSample] {
	return func(yield func(ThermoSample) bool) {
		for _, r := range radii {
			if !yield(p.Sample(r)) {
				return
			}
		}
	}
}
