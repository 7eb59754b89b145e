// Package plot renders line charts and isometric surface plots as
// standalone SVG documents. It depends on nothing outside the standard
// library: the report embeds its output directly into HTML and writes it
// to disk as-is, so the renderer has to produce complete, self-contained
// markup.
//
// Series data arrives pre-split into contiguous segments. A quantity
// that is undefined over part of its domain becomes a series with more
// than one segment, and the chart shows a visible gap instead of a line
// bridging values that do not exist.
package plot

import (
	"fmt"
	"math"
	"strings"
)

// Point is one chart coordinate in data space.
type Point struct {
	X float64
	Y float64
}

// Series is one labeled curve. Segments are contiguous runs of defined
// points; the renderer draws one polyline per segment and never connects
// across the boundary between them.
type Series struct {
	Label    string
	Color    string
	Dashed   bool
	Segments [][]Point
}

// Marker is a single annotated point, drawn as a filled circle with its
// label beside it.
type Marker struct {
	X     float64
	Y     float64
	Label string
	Color string
}

// Options controls the chart geometry and axes.
type Options struct {
	Width  int
	Height int
	Margin int
	Title  string
	XLabel string
	YLabel string
	ZLabel string // surface plots only
	LogX   bool   // log₁₀ x axis; non-positive x values are dropped
	LogY   bool   // log₁₀ y axis; non-positive y values are dropped
}

// DefaultOptions returns the geometry the report figures use.
func DefaultOptions() Options {
	return Options{Width: 760, Height: 480, Margin: 64}
}

// Palette returns the default series colors in assignment order.
func Palette() []string {
	return []string{"#1f77b4", "#d62728", "#2ca02c", "#9467bd", "#ff7f0e", "#8c564b"}
}

const (
	axisColor = "#333333"
	gridColor = "#dddddd"
	textColor = "#222222"
)

// Line renders a line chart. Empty series stay in the legend so a curve
// with no presence in the plotted window is still accounted for; a chart
// with no drawable points at all renders its frame and a note instead of
// failing.
func Line(opts Options, series []Series, markers ...Marker) string {
	sc, hasData := fitScale(opts, series, markers)

	var sb strings.Builder
	openSVG(&sb, opts)
	drawFrame(&sb, opts, sc)

	palette := Palette()
	for i, s := range series {
		color := s.Color
		if color == "" {
			color = palette[i%len(palette)]
		}
		dash := ""
		if s.Dashed {
			dash = ` stroke-dasharray="6 4"`
		}
		for _, seg := range s.Segments {
			pts := sc.path(seg, opts)
			if pts == "" {
				continue
			}
			sb.WriteString(fmt.Sprintf(
				"  <polyline fill=\"none\" stroke=\"%s\" stroke-width=\"1.8\"%s points=\"%s\"/>\n",
				color, dash, pts))
		}
	}

	for _, m := range markers {
		x, y, ok := sc.point(m.X, m.Y, opts)
		if !ok {
			continue
		}
		color := m.Color
		if color == "" {
			color = axisColor
		}
		sb.WriteString(fmt.Sprintf(
			"  <circle cx=\"%.2f\" cy=\"%.2f\" r=\"4\" fill=\"%s\"/>\n", x, y, color))
		if m.Label != "" {
			sb.WriteString(fmt.Sprintf(
				"  <text x=\"%.2f\" y=\"%.2f\" font-size=\"11\" fill=\"%s\">%s</text>\n",
				x+7, y-6, textColor, m.Label))
		}
	}

	drawLegend(&sb, opts, series)
	if !hasData {
		sb.WriteString(fmt.Sprintf(
			"  <text x=\"%d\" y=\"%d\" font-size=\"13\" fill=\"%s\" text-anchor=\"middle\">no data in the plotted window</text>\n",
			opts.Width/2, opts.Height/2, textColor))
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

// SurfaceGrid is a rectangular mesh: X, Y and Z share the shape
// [rows][cols], each row the same length.
type SurfaceGrid struct {
	X [][]float64
	Y [][]float64
	Z [][]float64
}

func (g SurfaceGrid) check() error {
	rows := len(g.X)
	if rows == 0 || len(g.Y) != rows || len(g.Z) != rows {
		return fmt.Errorf("surface grid: X, Y, Z need the same non-zero row count, got %d/%d/%d",
			len(g.X), len(g.Y), len(g.Z))
	}
	cols := len(g.X[0])
	if cols == 0 {
		return fmt.Errorf("surface grid: empty rows")
	}
	for i := 0; i < rows; i++ {
		if len(g.X[i]) != cols || len(g.Y[i]) != cols || len(g.Z[i]) != cols {
			return fmt.Errorf("surface grid: ragged row %d", i)
		}
	}
	return nil
}

// Surface renders an isometric wireframe of the mesh. Each axis is
// normalized independently, so the projection shows shape, not absolute
// scale; the axis labels name the quantities.
func Surface(opts Options, grid SurfaceGrid) (string, error) {
	if err := grid.check(); err != nil {
		return "", err
	}

	nx := normalizer(grid.X)
	ny := normalizer(grid.Y)
	nz := normalizer(grid.Z)

	// Isometric projection of the unit cube, then fitted to the viewport.
	cos30, sin30 := math.Cos(math.Pi/6), math.Sin(math.Pi/6)
	type pt struct{ U, V float64 }
	project := func(i, j int) pt {
		x := nx(grid.X[i][j])
		y := ny(grid.Y[i][j])
		z := nz(grid.Z[i][j])
		return pt{U: (x - y) * cos30, V: (x+y)*sin30 - z}
	}

	rows, cols := len(grid.X), len(grid.X[0])
	minU, maxU := math.Inf(1), math.Inf(-1)
	minV, maxV := math.Inf(1), math.Inf(-1)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p := project(i, j)
			minU, maxU = math.Min(minU, p.U), math.Max(maxU, p.U)
			minV, maxV = math.Min(minV, p.V), math.Max(maxV, p.V)
		}
	}
	if maxU-minU < 1e-12 {
		maxU = minU + 1
	}
	if maxV-minV < 1e-12 {
		maxV = minV + 1
	}

	m := float64(opts.Margin)
	w := float64(opts.Width) - 2*m
	h := float64(opts.Height) - 2*m
	px := func(p pt) (float64, float64) {
		return m + (p.U-minU)/(maxU-minU)*w, m + (p.V-minV)/(maxV-minV)*h
	}

	var sb strings.Builder
	openSVG(&sb, opts)

	wire := func(next func(k int) pt, n int) {
		var pts strings.Builder
		for k := 0; k < n; k++ {
			x, y := px(next(k))
			fmt.Fprintf(&pts, "%.2f,%.2f ", x, y)
		}
		sb.WriteString(fmt.Sprintf(
			"  <polyline fill=\"none\" stroke=\"#1f77b4\" stroke-width=\"1\" stroke-opacity=\"0.55\" points=\"%s\"/>\n",
			strings.TrimSpace(pts.String())))
	}
	for i := 0; i < rows; i++ {
		row := i
		wire(func(j int) pt { return project(row, j) }, cols)
	}
	for j := 0; j < cols; j++ {
		col := j
		wire(func(i int) pt { return project(i, col) }, rows)
	}

	labelY := opts.Height - opts.Margin/3
	sb.WriteString(fmt.Sprintf(
		"  <text x=\"%d\" y=\"%d\" font-size=\"12\" fill=\"%s\">%s / %s / %s</text>\n",
		opts.Margin, labelY, textColor, opts.XLabel, opts.YLabel, opts.ZLabel))
	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// normalizer maps the values of a mesh onto [0, 1]. A degenerate mesh
// with a single value collapses to the midpoint.
func normalizer(m [][]float64) func(float64) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range m {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if hi-lo < 1e-12 {
		return func(float64) float64 { return 0.5 }
	}
	return func(v float64) float64 { return (v - lo) / (hi - lo) }
}

// scale maps data space to pixel space, including the log transforms.
type scale struct {
	minX, maxX float64
	minY, maxY float64
}

func transform(v float64, log bool) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if !log {
		return v, true
	}
	if v <= 0 {
		return 0, false
	}
	return math.Log10(v), true
}

func fitScale(opts Options, series []Series, markers []Marker) (scale, bool) {
	sc := scale{
		minX: math.Inf(1), maxX: math.Inf(-1),
		minY: math.Inf(1), maxY: math.Inf(-1),
	}
	has := false
	consider := func(x, y float64) {
		tx, okx := transform(x, opts.LogX)
		ty, oky := transform(y, opts.LogY)
		if !okx || !oky {
			return
		}
		has = true
		sc.minX, sc.maxX = math.Min(sc.minX, tx), math.Max(sc.maxX, tx)
		sc.minY, sc.maxY = math.Min(sc.minY, ty), math.Max(sc.maxY, ty)
	}
	for _, s := range series {
		for _, seg := range s.Segments {
			for _, p := range seg {
				consider(p.X, p.Y)
			}
		}
	}
	for _, m := range markers {
		consider(m.X, m.Y)
	}
	if !has {
		sc = scale{minX: 0, maxX: 1, minY: 0, maxY: 1}
		return sc, false
	}
	if sc.maxX-sc.minX < 1e-12 {
		sc.minX, sc.maxX = sc.minX-1, sc.maxX+1
	}
	if sc.maxY-sc.minY < 1e-12 {
		sc.minY, sc.maxY = sc.minY-1, sc.maxY+1
	}
	// Breathing room so curves do not sit on the frame.
	padY := (sc.maxY - sc.minY) * 0.05
	sc.minY -= padY
	sc.maxY += padY
	return sc, true
}

func (sc scale) point(x, y float64, opts Options) (float64, float64, bool) {
	tx, okx := transform(x, opts.LogX)
	ty, oky := transform(y, opts.LogY)
	if !okx || !oky {
		return 0, 0, false
	}
	m := float64(opts.Margin)
	w := float64(opts.Width) - 2*m
	h := float64(opts.Height) - 2*m
	px := m + (tx-sc.minX)/(sc.maxX-sc.minX)*w
	py := m + h - (ty-sc.minY)/(sc.maxY-sc.minY)*h
	return px, py, true
}

func (sc scale) path(seg []Point, opts Options) string {
	var sb strings.Builder
	for _, p := range seg {
		x, y, ok := sc.point(p.X, p.Y, opts)
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%.2f,%.2f ", x, y)
	}
	return strings.TrimSpace(sb.String())
}

func openSVG(sb *strings.Builder, opts Options) {
	sb.WriteString(fmt.Sprintf(
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\" font-family=\"sans-serif\">\n",
		opts.Width, opts.Height))
	sb.WriteString(fmt.Sprintf(
		"  <rect width=\"%d\" height=\"%d\" fill=\"white\"/>\n", opts.Width, opts.Height))
	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(
			"  <text x=\"%d\" y=\"%d\" font-size=\"15\" fill=\"%s\" text-anchor=\"middle\">%s</text>\n",
			opts.Width/2, opts.Margin/2, textColor, opts.Title))
	}
}

func drawFrame(sb *strings.Builder, opts Options, sc scale) {
	m := opts.Margin
	w := opts.Width - 2*m
	h := opts.Height - 2*m

	// Gridlines and tick labels, five divisions per axis.
	const ticks = 5
	for i := 0; i <= ticks; i++ {
		fx := float64(i) / ticks
		x := float64(m) + fx*float64(w)
		vx := sc.minX + fx*(sc.maxX-sc.minX)
		sb.WriteString(fmt.Sprintf(
			"  <line x1=\"%.2f\" y1=\"%d\" x2=\"%.2f\" y2=\"%d\" stroke=\"%s\" stroke-width=\"0.5\"/>\n",
			x, m, x, m+h, gridColor))
		sb.WriteString(fmt.Sprintf(
			"  <text x=\"%.2f\" y=\"%d\" font-size=\"10\" fill=\"%s\" text-anchor=\"middle\">%s</text>\n",
			x, m+h+16, textColor, tickLabel(vx, opts.LogX)))

		fy := float64(i) / ticks
		y := float64(m) + float64(h) - fy*float64(h)
		vy := sc.minY + fy*(sc.maxY-sc.minY)
		sb.WriteString(fmt.Sprintf(
			"  <line x1=\"%d\" y1=\"%.2f\" x2=\"%d\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"0.5\"/>\n",
			m, y, m+w, y, gridColor))
		sb.WriteString(fmt.Sprintf(
			"  <text x=\"%d\" y=\"%.2f\" font-size=\"10\" fill=\"%s\" text-anchor=\"end\">%s</text>\n",
			m-6, y+3, textColor, tickLabel(vy, opts.LogY)))
	}

	// Axis frame on top of the grid.
	sb.WriteString(fmt.Sprintf(
		"  <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"none\" stroke=\"%s\"/>\n",
		m, m, w, h, axisColor))

	if opts.XLabel != "" {
		sb.WriteString(fmt.Sprintf(
			"  <text x=\"%d\" y=\"%d\" font-size=\"12\" fill=\"%s\" text-anchor=\"middle\">%s</text>\n",
			m+w/2, opts.Height-10, textColor, opts.XLabel))
	}
	if opts.YLabel != "" {
		sb.WriteString(fmt.Sprintf(
			"  <text x=\"14\" y=\"%d\" font-size=\"12\" fill=\"%s\" text-anchor=\"middle\" transform=\"rotate(-90 14 %d)\">%s</text>\n",
			m+h/2, textColor, m+h/2, opts.YLabel))
	}
}

func tickLabel(v float64, log bool) string {
	if log {
		return fmt.Sprintf("%.3g", math.Pow(10, v))
	}
	return fmt.Sprintf("%.3g", v)
}

func drawLegend(sb *strings.Builder, opts Options, series []Series) {
	if len(series) == 0 {
		return
	}
	palette := Palette()
	x := opts.Width - opts.Margin - 170
	y := opts.Margin + 14
	for i, s := range series {
		if s.Label == "" {
			continue
		}
		color := s.Color
		if color == "" {
			color = palette[i%len(palette)]
		}
		dash := ""
		if s.Dashed {
			dash = ` stroke-dasharray="6 4"`
		}
		sb.WriteString(fmt.Sprintf(
			"  <line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\" stroke-width=\"2\"%s/>\n",
			x, y-4, x+26, y-4, color, dash))
		sb.WriteString(fmt.Sprintf(
			"  <text x=\"%d\" y=\"%d\" font-size=\"11\" fill=\"%s\">%s</text>\n",
			x+32, y, textColor, s.Label))
		y += 16
	}
}
