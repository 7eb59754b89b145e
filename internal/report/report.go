// Package report assembles the full study artifact: the figure set, the
// constants table, an HTML gallery that inlines every figure, and a JSON
// export of the underlying sweep. Figures are built from the equation
// engine alone; nothing here re-derives physics.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	lqg "github.com/arnavk23/LQG-Analysis"
)

// Options selects the parameter set and the windows the figures cover.
type Options struct {
	Params         lqg.Parameters
	RMin           float64
	RMax           float64
	Points         int
	IsothermRatios []float64 // isotherm temperatures in units of Tc
	WeakAdSLambda  float64   // the weak AdS coupling of the Gibbs figure
}

// DefaultOptions covers the (1, 20) window with five isotherms
// bracketing Tc. The weak AdS coupling opens a bounded mass window so
// the Gibbs figure shows a real gap.
func DefaultOptions() Options {
	return Options{
		Params:         lqg.DefaultParameters(),
		RMin:           1,
		RMax:           20,
		Points:         600,
		IsothermRatios: []float64{0.6, 0.8, 1.0, 1.2, 1.4},
		WeakAdSLambda:  -0.01,
	}
}

func (o Options) validate() error {
	if err := o.Params.Validate(); err != nil {
		return err
	}
	if o.RMin <= 0 || o.RMax <= o.RMin {
		return fmt.Errorf("report window (%g, %g) is not a valid radius range", o.RMin, o.RMax)
	}
	if o.Points < 2 {
		return fmt.Errorf("report needs at least 2 grid points, got %d", o.Points)
	}
	if len(o.IsothermRatios) == 0 {
		return fmt.Errorf("report needs at least one isotherm")
	}
	for _, ratio := range o.IsothermRatios {
		if ratio <= 0 {
			return fmt.Errorf("isotherm ratio %g is not positive", ratio)
		}
	}
	return nil
}

// Constant is one row of the constants table.
type Constant struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Note  string `json:"note"`
}

// Figure is one rendered chart with its identity and caption. SVG is
// marked safe for direct template inlining; it only ever comes from the
// renderer in internal/plot.
type Figure struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Caption string        `json:"caption"`
	SVG     template.HTML `json:"-"`
}

// Report is the assembled artifact.
type Report struct {
	GeneratedAt time.Time
	Params      lqg.Parameters
	Critical    lqg.CriticalPoint
	Constants   []Constant
	Figures     []Figure
	Samples     []lqg.ThermoSample
}

// Build evaluates the sweep and renders every figure.
func Build(opts Options) (*Report, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("report options: %w", err)
	}

	samples := lqg.Sweep(lqg.SweepConfig{
		Params: opts.Params,
		RMin:   opts.RMin,
		RMax:   opts.RMax,
		Points: opts.Points,
	})

	figures := make([]Figure, 0, 6)
	figures = append(figures, gibbsFigure(opts))
	figures = append(figures, isothermFigure(opts))

	surface, err := surfaceFigure(opts)
	if err != nil {
		return nil, fmt.Errorf("phase surface: %w", err)
	}
	figures = append(figures, surface)
	figures = append(figures, jouleThomsonFigure(opts))
	figures = append(figures, inversionFigure(opts))

	scaling, err := scalingFigure(opts)
	if err != nil {
		return nil, fmt.Errorf("scaling panel: %w", err)
	}
	figures = append(figures, scaling)

	return &Report{
		GeneratedAt: time.Now().UTC(),
		Params:      opts.Params,
		Critical:    opts.Params.CriticalPoint(),
		Constants:   constantsTable(opts.Params),
		Figures:     figures,
		Samples:     samples,
	}, nil
}

// Figure returns the figure with the given ID.
func (r *Report) Figure(id string) (Figure, bool) {
	for _, f := range r.Figures {
		if f.ID == id {
			return f, true
		}
	}
	return Figure{}, false
}

// RenderHTML produces the standalone gallery page.
func (r *Report) RenderHTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, r); err != nil {
		return nil, fmt.Errorf("render gallery: %w", err)
	}
	return buf.Bytes(), nil
}

// export is the samples.json layout.
type export struct {
	GeneratedAt    time.Time          `json:"generated_at"`
	Params         lqg.Parameters     `json:"params"`
	Critical       lqg.CriticalPoint  `json:"critical"`
	PublishedRatio float64            `json:"published_ratio"`
	RawRatio       float64            `json:"raw_ratio"`
	Samples        []lqg.ThermoSample `json:"samples"`
}

// MarshalJSON exports the report in the samples.json layout.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(export{
		GeneratedAt:    r.GeneratedAt,
		Params:         r.Params,
		Critical:       r.Critical,
		PublishedRatio: lqg.QuantumCriticalRatio,
		RawRatio:       r.Critical.Ratio(),
		Samples:        r.Samples,
	})
}

// WriteDir writes the gallery to dir: index.html, one SVG per figure
// under figures/, and samples.json. Returns the total bytes written.
func (r *Report) WriteDir(dir string) (int64, error) {
	figDir := filepath.Join(dir, "figures")
	if err := os.MkdirAll(figDir, 0o755); err != nil {
		return 0, fmt.Errorf("create %s: %w", figDir, err)
	}

	var written int64
	put := func(path string, data []byte) error {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written += int64(len(data))
		return nil
	}

	html, err := r.RenderHTML()
	if err != nil {
		return written, err
	}
	if err := put(filepath.Join(dir, "index.html"), html); err != nil {
		return written, err
	}

	for _, f := range r.Figures {
		if err := put(filepath.Join(figDir, f.ID+".svg"), []byte(f.SVG)); err != nil {
			return written, err
		}
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return written, fmt.Errorf("encode samples: %w", err)
	}
	if err := put(filepath.Join(dir, "samples.json"), data); err != nil {
		return written, err
	}
	return written, nil
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Quantum-corrected black hole thermodynamics</title>
<style>
body { font-family: Georgia, serif; max-width: 860px; margin: 2em auto; color: #222; }
h1 { font-size: 1.5em; }
h2 { font-size: 1.15em; margin-top: 2em; border-bottom: 1px solid #ccc; }
table { border-collapse: collapse; font-size: 0.9em; }
td, th { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
.meta, .caption { color: #555; font-size: 0.9em; }
svg { max-width: 100%; height: auto; }
footer { margin-top: 3em; color: #777; font-size: 0.8em; }
</style>
</head>
<body>
<h1>Quantum-corrected black hole thermodynamics</h1>
<p class="meta">γ = {{printf "%.4f" .Params.Gamma}}, α = {{printf "%.6f" .Params.Alpha}}, Λ = {{printf "%g" .Params.Lambda}} (generated {{.GeneratedAt.Format "2006-01-02 15:04 UTC"}})</p>

<h2>Constants</h2>
<table>
<tr><th>Quantity</th><th>Value</th><th>Note</th></tr>
{{range .Constants}}<tr><td>{{.Name}}</td><td>{{.Value}}</td><td>{{.Note}}</td></tr>
{{end}}</table>

{{range .Figures}}<section id="{{.ID}}">
<h2>{{.Title}}</h2>
{{.SVG}}
<p class="caption">{{.Caption}}</p>
</section>
{{end}}
<footer>figures/*.svg and samples.json sit next to this page.</footer>
</body>
</html>
`))
