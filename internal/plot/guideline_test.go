package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuidelineTraceLog(t *testing.T) {
	g := Guideline{Power: 2, Intercept: 0.5, XMin: 1, XMax: 100}
	pts := g.trace(true)

	require.Len(t, pts, guidelinePoints)
	assert.InDelta(t, 1.0, pts[0].X, 1e-9)
	assert.InDelta(t, 100.0, pts[len(pts)-1].X, 1e-9)

	// Every point sits on y = 0.5 * x^2.
	for _, pt := range pts {
		assert.InDelta(t, 0.5*pt.X*pt.X, pt.Y, 1e-6)
	}

	// Geometric sampling: constant ratio between consecutive x values.
	r := pts[1].X / pts[0].X
	assert.InDelta(t, r, pts[10].X/pts[9].X, 1e-9)
}

func TestGuidelineTraceLinear(t *testing.T) {
	g := Guideline{Power: 3, Intercept: -2, XMin: 0, XMax: 10}
	pts := g.trace(false)

	require.Len(t, pts, guidelinePoints)
	assert.InDelta(t, -2.0, pts[0].Y, 1e-9)
	assert.InDelta(t, 28.0, pts[len(pts)-1].Y, 1e-9)
	for _, pt := range pts {
		assert.InDelta(t, 3*pt.X-2, pt.Y, 1e-9)
	}
}

func TestGuidelineValid(t *testing.T) {
	tests := []struct {
		name string
		g    Guideline
		log  bool
		want bool
	}{
		{name: "log ok", g: Guideline{XMin: 1, XMax: 10, Intercept: 1}, log: true, want: true},
		{name: "linear ok", g: Guideline{XMin: -5, XMax: 5}, log: false, want: true},
		{name: "inverted range", g: Guideline{XMin: 10, XMax: 1, Intercept: 1}, log: true, want: false},
		{name: "zero xmin on log", g: Guideline{XMin: 0, XMax: 10, Intercept: 1}, log: true, want: false},
		{name: "zero intercept on log", g: Guideline{XMin: 1, XMax: 10}, log: true, want: false},
		{name: "zero intercept on linear", g: Guideline{XMin: 1, XMax: 10}, log: false, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.g.valid(tt.log))
		})
	}
}
