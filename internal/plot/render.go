package plot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"ashby-plotter/internal/material"
	"ashby-plotter/internal/unitcell"
	"ashby-plotter/pkg/colorutil"
	"ashby-plotter/pkg/geometry"
)

const (
	hullScale  = 1.1
	hullPoints = 1000
)

// Render draws the chart described by cfg over the material table and the
// optional unit-cell set. The table may be nil when only unit cells are
// shown; cells may be nil when the overlay is disabled. A *PlotError
// means the request was invalid and nothing was drawn.
func Render(table *material.Table, cells *unitcell.Set, cfg Config) (*Figure, error) {
	if cfg.X.Property == "" || cfg.Y.Property == "" {
		return nil, plotErrf(nil, "both axis properties must be selected")
	}
	if table == nil && cells == nil {
		return nil, plotErrf(nil, "nothing to draw: no material table and no unit cells")
	}
	if err := validateAxes(cfg); err != nil {
		return nil, err
	}
	if table != nil {
		if err := prepareTable(table, cfg); err != nil {
			return nil, err
		}
	}

	sp := paramsFor(cfg.Style)
	p := plot.New()
	p.Title.Text = cfg.Title
	p.Title.TextStyle.Font.Size = vg.Points(sp.titleSize)
	applyAxis(&p.X, cfg.X, sp)
	applyAxis(&p.Y, cfg.Y, sp)
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(sp.legendSize)

	if cfg.Grid {
		p.Add(plotter.NewGrid())
	}

	if table != nil {
		if err := drawCategories(p, table, cfg, sp); err != nil {
			return nil, err
		}
	}
	for _, g := range cfg.Guidelines {
		if !g.Enabled {
			continue
		}
		if err := drawGuideline(p, g, cfg, sp); err != nil {
			return nil, err
		}
	}
	for _, m := range cfg.Markers {
		if err := drawMarker(p, m, cfg, sp); err != nil {
			return nil, err
		}
	}
	if cells != nil && cfg.UnitCells.Enabled {
		if err := drawUnitCells(p, cells, cfg, sp); err != nil {
			return nil, err
		}
	}

	// Add grows the axis limits to every layer's data range; configured
	// bounds win once all layers are in, and the plotters clip to them.
	if cfg.X.Fixed() {
		p.X.Min, p.X.Max = cfg.X.Min, cfg.X.Max
	}
	if cfg.Y.Fixed() {
		p.Y.Min, p.Y.Max = cfg.Y.Min, cfg.Y.Max
	}

	return &Figure{
		plot:   p,
		width:  vg.Length(cfg.Width) * vg.Inch,
		height: vg.Length(cfg.Height) * vg.Inch,
	}, nil
}

func validateAxes(cfg Config) error {
	for _, a := range []Axis{cfg.X, cfg.Y} {
		if a.Fixed() && a.Scale == ScaleLog && a.Min <= 0 {
			return plotErrf(nil, "log axis %q cannot start at %g", a.Property, a.Min)
		}
	}
	return nil
}

// prepareTable materializes derived properties and checks that the table
// can supply both axes on the requested scales.
func prepareTable(table *material.Table, cfg Config) error {
	for _, a := range []Axis{cfg.X, cfg.Y} {
		if !table.HasProperty(a.Property) {
			if a.Property != material.PoissonDifference {
				return plotErrf(nil, "table has no property %q", a.Property)
			}
			if err := table.EnsureDerived(a.Property); err != nil {
				return plotErrf(err, "cannot derive %q", a.Property)
			}
		}
	}
	for _, a := range []Axis{cfg.X, cfg.Y} {
		if a.Scale != ScaleLog {
			continue
		}
		for _, r := range table.Rows() {
			if v, ok := r.Props[a.Property]; ok && !v.Positive() {
				return plotErrf(nil, "log axis %q cannot show non-positive value %s", a.Property, v)
			}
		}
	}
	return nil
}

func applyAxis(ax *plot.Axis, cfg Axis, sp styleParams) {
	ax.Label.Text = AxisLabel(cfg.Property)
	ax.Label.TextStyle.Font.Size = vg.Points(sp.labelSize)
	ax.Tick.Label.Font.Size = vg.Points(sp.tickSize)
	if cfg.Scale == ScaleLog {
		ax.Scale = plot.LogScale{}
		ax.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if cfg.Fixed() {
		ax.Min = cfg.Min
		ax.Max = cfg.Max
	}
}

// drawCategories scatters every category's corner points and wraps each
// category in a scaled, smoothed envelope.
func drawCategories(p *plot.Plot, table *material.Table, cfg Config, sp styleParams) error {
	for i, category := range table.Categories() {
		pts := table.Points(category, cfg.X.Property, cfg.Y.Property)
		if len(pts) == 0 {
			continue
		}
		col := CategoryColor(category, i)

		sc, err := plotter.NewScatter(toXYs(pts))
		if err != nil {
			return plotErrf(err, "scatter for %q", category)
		}
		sc.GlyphStyle.Color = col
		sc.GlyphStyle.Radius = vg.Points(sp.glyphSize)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(category, sc)

		if err := drawRangeBoxes(p, table, category, cfg, col, sp); err != nil {
			return err
		}

		if poly := envelope(pts, col, 51, sp, cfg.X.Scale == ScaleLog, cfg.Y.Scale == ScaleLog); poly != nil {
			p.Add(poly)
		}
	}
	return nil
}

// drawRangeBoxes outlines each range-valued material of a category as a
// translucent bounding box spanning its property intervals.
func drawRangeBoxes(p *plot.Plot, table *material.Table, category string, cfg Config, col color.RGBA, sp styleParams) error {
	for _, r := range table.CategoryRows(category) {
		x, okX := r.Props[cfg.X.Property]
		y, okY := r.Props[cfg.Y.Property]
		if !okX || !okY || (!x.IsRange() && !y.IsRange()) {
			continue
		}
		box, err := plotter.NewPolygon(plotter.XYs{
			{X: x.Low, Y: y.Low},
			{X: x.High, Y: y.Low},
			{X: x.High, Y: y.High},
			{X: x.Low, Y: y.High},
		})
		if err != nil {
			return plotErrf(err, "range box for %q", category)
		}
		box.Color = colorutil.WithAlpha(col, 26)
		box.LineStyle.Color = col
		box.LineStyle.Width = vg.Points(sp.lineWidth / 2)
		p.Add(box)
	}
	return nil
}

// envelope builds the translucent hull polygon around a point cloud, or
// nil when the cloud is too small to enclose. On log axes the hull is
// expanded and smoothed in log10 space: padding in linear space can push
// an outline vertex of a wide-ratio cloud below zero, which a log scale
// cannot map.
func envelope(pts []geometry.Point2D, col color.RGBA, alpha uint8, sp styleParams, logX, logY bool) *plotter.Polygon {
	hull := geometry.ConvexHull(toScale(pts, logX, logY))
	if len(hull) < 3 {
		return nil
	}
	outline := geometry.SmoothClosed(geometry.ExpandHull(hull, hullScale), hullPoints)
	outline = fromScale(outline, logX, logY)

	poly, err := plotter.NewPolygon(toXYs(outline))
	if err != nil {
		return nil
	}
	poly.Color = colorutil.WithAlpha(col, alpha)
	poly.LineStyle.Color = col
	poly.LineStyle.Width = vg.Points(sp.lineWidth)
	return poly
}

func drawGuideline(p *plot.Plot, g Guideline, cfg Config, sp styleParams) error {
	log := cfg.X.Scale == ScaleLog
	if !g.valid(log) {
		return plotErrf(nil, "guideline needs x-min < x-max%s", logHint(log))
	}

	// Trace only the part inside the configured axis extents.
	if cfg.X.Fixed() {
		g.XMin = math.Max(g.XMin, cfg.X.Min)
		g.XMax = math.Min(g.XMax, cfg.X.Max)
		if g.XMin >= g.XMax {
			return nil
		}
	}

	line, err := plotter.NewLine(g.trace(log))
	if err != nil {
		return plotErrf(err, "guideline")
	}
	line.Color = color.Black
	line.Width = vg.Points(sp.lineWidth)
	line.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	p.Add(line)

	if g.Label != "" {
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: g.LabelX, Y: g.LabelY}},
			Labels: []string{g.Label},
		})
		if err != nil {
			return plotErrf(err, "guideline label")
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].Font.Size = vg.Points(sp.labelSize)
		}
		p.Add(labels)
	}
	return nil
}

func logHint(log bool) string {
	if log {
		return ", with both positive, and a positive intercept on log axes"
	}
	return ""
}

// drawMarker places one highlighted reference material.
func drawMarker(p *plot.Plot, m Marker, cfg Config, sp styleParams) error {
	x, err := MarkerValue(m, cfg.X.Property)
	if err != nil {
		return plotErrf(err, "marker %q", m.Name)
	}
	y, err := MarkerValue(m, cfg.Y.Property)
	if err != nil {
		return plotErrf(err, "marker %q", m.Name)
	}

	sc, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return plotErrf(err, "marker %q", m.Name)
	}
	sc.GlyphStyle.Color = m.Color
	sc.GlyphStyle.Radius = vg.Points(sp.markerSize)
	sc.GlyphStyle.Shape = draw.PyramidGlyph{}
	p.Add(sc)
	p.Legend.Add(m.Name, sc)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{m.Name},
	})
	if err != nil {
		return plotErrf(err, "marker %q", m.Name)
	}
	labels.Offset = vg.Point{X: vg.Points(sp.markerSize), Y: vg.Points(sp.markerSize / 2)}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(sp.tickSize)
	}
	p.Add(labels)
	return nil
}

// drawUnitCells overlays one envelope per cell family over the mapped
// axis properties.
func drawUnitCells(p *plot.Plot, cells *unitcell.Set, cfg Config, sp styleParams) error {
	xField := unitcell.MapProperty(cfg.X.Property)
	yField := unitcell.MapProperty(cfg.Y.Property)
	if !cells.HasProperty(xField) || !cells.HasProperty(yField) {
		return plotErrf(nil, "unit-cell data has no %q or %q field", xField, yField)
	}

	for _, family := range unitcell.CellTypes() {
		samples := cells.CellSamples(family)
		if len(samples) < 3 {
			continue
		}
		pts := make([]geometry.Point2D, len(samples))
		for i, s := range samples {
			pts[i] = geometry.Point2D{X: s.Props[xField], Y: s.Props[yField]}
		}

		col, ok := CellColors[family]
		if !ok {
			col = colorutil.Black
		}
		if cfg.X.Scale == ScaleLog || cfg.Y.Scale == ScaleLog {
			for _, pt := range pts {
				if (cfg.X.Scale == ScaleLog && pt.X <= 0) || (cfg.Y.Scale == ScaleLog && pt.Y <= 0) {
					return plotErrf(nil, "log axis cannot show unit-cell family %q", family)
				}
			}
		}
		if poly := envelope(pts, col, 191, sp, cfg.X.Scale == ScaleLog, cfg.Y.Scale == ScaleLog); poly != nil {
			p.Add(poly)
			line, err := plotter.NewLine(plotter.XYs{})
			if err == nil {
				line.Color = col
				line.Width = vg.Points(3 * sp.lineWidth)
				p.Legend.Add(family+" ("+cells.Infill().Name+")", line)
			}
		}
	}
	return nil
}

// toScale maps points into the space the chart displays: log10 on log
// axes, identity otherwise.
func toScale(pts []geometry.Point2D, logX, logY bool) []geometry.Point2D {
	if !logX && !logY {
		return pts
	}
	out := make([]geometry.Point2D, len(pts))
	for i, pt := range pts {
		out[i] = pt
		if logX {
			out[i].X = math.Log10(pt.X)
		}
		if logY {
			out[i].Y = math.Log10(pt.Y)
		}
	}
	return out
}

// fromScale undoes toScale.
func fromScale(pts []geometry.Point2D, logX, logY bool) []geometry.Point2D {
	if !logX && !logY {
		return pts
	}
	out := make([]geometry.Point2D, len(pts))
	for i, pt := range pts {
		out[i] = pt
		if logX {
			out[i].X = math.Pow(10, pt.X)
		}
		if logY {
			out[i].Y = math.Pow(10, pt.Y)
		}
	}
	return out
}

func toXYs(pts []geometry.Point2D) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	return xys
}
