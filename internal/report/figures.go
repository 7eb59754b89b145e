package report

import (
	"fmt"
	"html/template"
	"math"

	lqg "github.com/arnavk23/LQG-Analysis"
	"github.com/arnavk23/LQG-Analysis/internal/plot"
)

// splitSeries walks n points in order and breaks the polyline wherever
// the evaluator reports a gap, so undefined stretches render as empty
// space instead of interpolated bridges.
func splitSeries(n int, at func(i int) (plot.Point, bool)) [][]plot.Point {
	var segs [][]plot.Point
	var cur []plot.Point
	for i := 0; i < n; i++ {
		pt, ok := at(i)
		if !ok {
			if len(cur) > 0 {
				segs = append(segs, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, pt)
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

func segmentsOf(samples []lqg.ThermoSample, pick func(lqg.ThermoSample) (plot.Point, bool)) [][]plot.Point {
	return splitSeries(len(samples), func(i int) (plot.Point, bool) { return pick(samples[i]) })
}

func sweepOn(p lqg.Parameters, radii []float64) []lqg.ThermoSample {
	out := make([]lqg.ThermoSample, len(radii))
	for i, r := range radii {
		out[i] = p.Sample(r)
	}
	return out
}

// gibbsFigure plots G(r) for three cosmological couplings. The deep AdS
// coupling admits no horizon anywhere, so its series is deliberately
// empty; the weak coupling shows a curve that ends where the mass
// window closes.
func gibbsFigure(opts Options) Figure {
	grid := lqg.RadiusGrid(opts.RMin, opts.RMax, opts.Points)
	colors := plot.Palette()

	gibbsPoint := func(s lqg.ThermoSample) (plot.Point, bool) {
		if !s.G.Defined {
			return plot.Point{}, false
		}
		return plot.Point{X: s.R, Y: s.G.Value}, true
	}

	flat := opts.Params.WithLambda(0)
	deep := opts.Params.WithLambda(lqg.LambdaAdS(opts.Params.Gamma) / 2)
	weak := opts.Params.WithLambda(opts.WeakAdSLambda)

	series := []plot.Series{
		{
			Label:    "Λ = 0",
			Color:    colors[0],
			Segments: segmentsOf(sweepOn(flat, grid), gibbsPoint),
		},
		{
			Label:    fmt.Sprintf("Λ = %.4f (half Λ_AdS)", deep.Lambda),
			Color:    colors[1],
			Segments: segmentsOf(sweepOn(deep, grid), gibbsPoint),
		},
		{
			Label:    fmt.Sprintf("Λ = %g", weak.Lambda),
			Color:    colors[2],
			Segments: segmentsOf(sweepOn(weak, grid), gibbsPoint),
		},
	}

	po := plot.DefaultOptions()
	po.Title = "Gibbs free energy"
	po.XLabel = "r"
	po.YLabel = "G"

	return Figure{
		ID:    "gibbs-vs-radius",
		Title: "Gibbs free energy against horizon radius",
		Caption: "G = M - TS for three cosmological couplings. At half the AdS bound the " +
			"metric function stays negative for every radius, so no horizon forms and the " +
			"series is empty. The weak AdS coupling confines the mass to a bounded radius " +
			"window and the curve stops where the discriminant turns negative.",
		SVG: template.HTML(plot.Line(po, series)),
	}
}

// isothermFigure draws the equation of state P(v, T) at a spread of
// temperatures around Tc, with the closed-form critical point marked
// and Maxwell coexistence chords overlaid where the construction finds
// an equal-pressure pair inside the window.
func isothermFigure(opts Options) Figure {
	c := opts.Params.CriticalPoint()
	grid := lqg.RadiusGrid(opts.RMin, opts.RMax, opts.Points)
	colors := plot.Palette()

	series := make([]plot.Series, 0, len(opts.IsothermRatios)+1)
	for i, ratio := range opts.IsothermRatios {
		t := ratio * c.Temperature
		pts := make([]plot.Point, len(grid))
		for j, r := range grid {
			pts[j] = plot.Point{X: lqg.SpecificVolume(r), Y: lqg.IsothermPressure(r, t)}
		}
		series = append(series, plot.Series{
			Label:    fmt.Sprintf("T = %.2f Tc", ratio),
			Color:    colors[i%len(colors)],
			Segments: [][]plot.Point{pts},
		})
	}

	mcfg := lqg.DefaultMaxwellConfig()
	mcfg.RMin = opts.RMin
	mcfg.RMax = opts.RMax
	for _, ratio := range opts.IsothermRatios {
		if ratio >= 1 {
			continue
		}
		co, err := opts.Params.MaxwellConstruction(ratio*c.Temperature, mcfg)
		if err != nil {
			continue
		}
		series = append(series, plot.Series{
			Label:  fmt.Sprintf("coexistence, T = %.2f Tc", ratio),
			Color:  "#7f7f7f",
			Dashed: true,
			Segments: [][]plot.Point{{
				{X: 2 * co.RSmall, Y: co.Pressure},
				{X: 2 * co.RLarge, Y: co.Pressure},
			}},
		})
	}

	po := plot.DefaultOptions()
	po.Title = "Isotherms around the critical temperature"
	po.XLabel = "v = 2r"
	po.YLabel = "P"

	svg := plot.Line(po, series, plot.Marker{
		X:     c.Volume,
		Y:     c.Pressure,
		Label: "critical point",
		Color: "#d62728",
	})
	return Figure{
		ID:    "pv-isotherms",
		Title: "Isotherms in the P-v plane",
		Caption: "Equation of state at fixed temperature. Dashed chords connect the " +
			"small and large coexisting radii found by the equal-pressure construction; " +
			"isotherms too far below Tc place their pressure apex outside the scan window " +
			"and carry no chord. The marker sits at the closed-form (v_c, P_c), which is " +
			"a property of the critical formulas rather than a point of the plotted family.",
		SVG: template.HTML(svg),
	}
}

// surfaceFigure renders the P(v, T) sheet as the cosmological constant
// sweeps through zero, as an isometric wireframe.
func surfaceFigure(opts Options) (Figure, error) {
	const (
		nLambda  = 12
		nRadius  = 28
		lambdaLo = -0.02
		lambdaHi = 0.02
	)
	radii := lqg.RadiusGrid(opts.RMin, opts.RMax, nRadius)

	grid := plot.SurfaceGrid{
		X: make([][]float64, nLambda),
		Y: make([][]float64, nLambda),
		Z: make([][]float64, nLambda),
	}
	for i := 0; i < nLambda; i++ {
		lam := lambdaLo + (lambdaHi-lambdaLo)*float64(i)/float64(nLambda-1)
		p := opts.Params.WithLambda(lam)
		grid.X[i] = make([]float64, nRadius)
		grid.Y[i] = make([]float64, nRadius)
		grid.Z[i] = make([]float64, nRadius)
		for j, r := range radii {
			grid.X[i][j] = lqg.SpecificVolume(r)
			grid.Y[i][j] = p.Temperature(r)
			grid.Z[i][j] = p.Pressure(r)
		}
	}

	po := plot.DefaultOptions()
	po.Title = "Equation-of-state surface across Λ"
	po.XLabel = "V"
	po.YLabel = "T"
	po.ZLabel = "P"

	svg, err := plot.Surface(po, grid)
	if err != nil {
		return Figure{}, err
	}
	return Figure{
		ID:    "phase-surface",
		Title: "Pressure surface over volume and temperature",
		Caption: "Wireframe of the on-shell state surface as Λ sweeps from -0.02 to 0.02. " +
			"Each line of constant Λ traces an isotherm family; the Λr/3 term tilts the " +
			"temperature axis as the coupling moves through zero.",
		SVG: template.HTML(svg),
	}, nil
}

// jouleThomsonFigure plots the on-shell Joule-Thomson coefficient,
// splitting the curve across the sub-horizon region and any pole of the
// denominator.
func jouleThomsonFigure(opts Options) Figure {
	grid := lqg.RadiusGrid(opts.RMin, opts.RMax, opts.Points)

	segs := splitSeries(len(grid), func(i int) (plot.Point, bool) {
		r := grid[i]
		m, ok := opts.Params.Mass(r)
		if !ok {
			return plot.Point{}, false
		}
		mu, ok := opts.Params.JouleThomson(r, m)
		if !ok {
			return plot.Point{}, false
		}
		return plot.Point{X: r, Y: mu}, true
	})

	po := plot.DefaultOptions()
	po.Title = "Joule-Thomson coefficient"
	po.XLabel = "r"
	po.YLabel = "μ"

	series := []plot.Series{{
		Label:    "μ(r) on shell",
		Color:    plot.Palette()[0],
		Segments: segs,
	}}
	return Figure{
		ID:    "joule-thomson",
		Title: "Joule-Thomson coefficient along the mass shell",
		Caption: "μ evaluated with M(r) substituted into the throttling formula. The curve " +
			"starts at the minimum horizon radius; below it no mass solution exists. With " +
			"Λ = 0 the coefficient keeps one sign across the window, so cooling never " +
			"switches to heating and no inversion point appears.",
		SVG: template.HTML(plot.Line(po, series)),
	}
}

// inversionFigure draws the linear inversion-temperature law for three
// values of the Barbero-Immirzi parameter.
func inversionFigure(opts Options) Figure {
	gammas := []float64{0.15, opts.Params.Gamma, 0.30}
	colors := plot.Palette()
	const (
		pMax = 0.05
		nP   = 61
	)

	series := make([]plot.Series, 0, len(gammas))
	for i, g := range gammas {
		p, err := lqg.NewParameters(g, 0)
		if err != nil {
			continue
		}
		pts := make([]plot.Point, nP)
		for j := 0; j < nP; j++ {
			pr := pMax * float64(j) / float64(nP-1)
			pts[j] = plot.Point{X: pr, Y: p.InversionTemperature(pr)}
		}
		series = append(series, plot.Series{
			Label:    fmt.Sprintf("γ = %.4f", g),
			Color:    colors[i%len(colors)],
			Segments: [][]plot.Point{pts},
		})
	}

	po := plot.DefaultOptions()
	po.Title = "Inversion temperature"
	po.XLabel = "P"
	po.YLabel = "T_inv"

	return Figure{
		ID:    "inversion-curve",
		Title: "Inversion temperature against pressure",
		Caption: "T_inv(P) = Tc (1 + 2P/Pc) for three values of the Barbero-Immirzi " +
			"parameter. Larger γ strengthens the quantum correction, lowering Tc and " +
			"flattening the line. Every curve meets P = 0 at its own Tc.",
		SVG: template.HTML(plot.Line(po, series)),
	}
}

// scalingFigure demonstrates the mean-field power laws near the
// critical point on log-log axes and annotates each legend entry with
// the exponent recovered by the log-log regression.
func scalingFigure(opts Options) (Figure, error) {
	c := opts.Params.CriticalPoint()
	ts := logspace(1e-3, 1e-1, 41)

	laws := []struct {
		name string
		f    func(t float64) float64
	}{
		{"specific heat", func(t float64) float64 { return 1.5 }},
		{"order parameter", func(t float64) float64 { return 2 * c.Volume * math.Sqrt(t) }},
		{"susceptibility", func(t float64) float64 { return 1 / (c.Pressure * t) }},
		{"critical isotherm", func(t float64) float64 { return c.Pressure * t * t * t }},
	}

	colors := plot.Palette()
	series := make([]plot.Series, 0, len(laws))
	for i, law := range laws {
		ys := make([]float64, len(ts))
		pts := make([]plot.Point, len(ts))
		for j, t := range ts {
			ys[j] = law.f(t)
			pts[j] = plot.Point{X: t, Y: ys[j]}
		}
		fit, err := lqg.FitPowerLaw(ts, ys)
		if err != nil {
			return Figure{}, fmt.Errorf("fit %s: %w", law.name, err)
		}
		series = append(series, plot.Series{
			Label:    fmt.Sprintf("%s: fit t^%.2f", law.name, fit.Exponent),
			Color:    colors[i%len(colors)],
			Segments: [][]plot.Point{pts},
		})
	}

	po := plot.DefaultOptions()
	po.Title = "Mean-field scaling near Tc"
	po.XLabel = "t = 1 - T/Tc"
	po.YLabel = "amplitude"
	po.LogX = true
	po.LogY = true

	return Figure{
		ID:    "critical-scaling",
		Title: "Critical scaling on log-log axes",
		Caption: "The four mean-field power laws rendered against reduced temperature " +
			"and refit by log-log regression: exponents 0, 1/2, -1 and 3. The recovered " +
			"values satisfy the Rushbrooke, Griffiths and Widom identities exactly. The " +
			"critical isotherm is shown against t for display; its exponent relates " +
			"pressure to volume deviations at fixed T = Tc.",
		SVG: template.HTML(plot.Line(po, series)),
	}, nil
}

func logspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	llo, lhi := math.Log10(lo), math.Log10(hi)
	for i := range out {
		out[i] = math.Pow(10, llo+(lhi-llo)*float64(i)/float64(n-1))
	}
	return out
}

// constantsTable lists the closed-form quantities a reader checks
// first, formatted for the gallery header.
func constantsTable(p lqg.Parameters) []Constant {
	c := p.CriticalPoint()
	return []Constant{
		{Name: "γ", Value: fmt.Sprintf("%.4f", p.Gamma), Note: "Barbero-Immirzi parameter"},
		{Name: "α", Value: fmt.Sprintf("%.6f", p.Alpha), Note: "quantum correction 16√3πγ³"},
		{Name: "Λ_AdS", Value: fmt.Sprintf("%.7f", lqg.LambdaAdS(p.Gamma)), Note: "AdS bound, αΛ_AdS = -3√3"},
		{Name: "r_c", Value: fmt.Sprintf("%.6f", c.Radius), Note: "critical horizon radius 2√(3α)"},
		{Name: "P_c", Value: fmt.Sprintf("%.8f", c.Pressure), Note: "1/(24πα)"},
		{Name: "v_c", Value: fmt.Sprintf("%.6f", c.Volume), Note: "4√(3α)"},
		{Name: "T_c", Value: fmt.Sprintf("%.8f", c.Temperature), Note: "√3/(50π√α)"},
		{Name: "P_c v_c / T_c", Value: fmt.Sprintf("%.6f", c.Ratio()), Note: "closed-form product, exactly 25/3"},
		{Name: "published ratio", Value: fmt.Sprintf("%.6f", lqg.QuantumCriticalRatio), Note: "quantum-corrected value 7/18"},
		{Name: "classical ratio", Value: fmt.Sprintf("%.6f", lqg.ClassicalCriticalRatio), Note: "van der Waals value 3/8"},
	}
}
