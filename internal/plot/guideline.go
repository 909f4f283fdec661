package plot

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

const guidelinePoints = 64

// trace evaluates the guideline over its X range. On log axes the line is
// a power law, sampled geometrically so it stays straight after the log
// transform; on linear axes it is affine.
func (g Guideline) trace(log bool) plotter.XYs {
	xs := make([]float64, guidelinePoints)
	if log {
		ratio := g.XMax / g.XMin
		for i := range xs {
			xs[i] = g.XMin * math.Pow(ratio, float64(i)/float64(guidelinePoints-1))
		}
	} else {
		step := (g.XMax - g.XMin) / float64(guidelinePoints-1)
		for i := range xs {
			xs[i] = g.XMin + float64(i)*step
		}
	}

	pts := make(plotter.XYs, guidelinePoints)
	for i, x := range xs {
		pts[i].X = x
		if log {
			pts[i].Y = g.Intercept * math.Pow(x, g.Power)
		} else {
			pts[i].Y = g.Power*x + g.Intercept
		}
	}
	return pts
}

// valid reports whether the guideline can be drawn on the given scale.
func (g Guideline) valid(log bool) bool {
	if g.XMin >= g.XMax {
		return false
	}
	if log && (g.XMin <= 0 || g.Intercept <= 0) {
		return false
	}
	return true
}
