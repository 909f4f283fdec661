package plot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ashby-plotter/internal/material"
	"ashby-plotter/internal/unitcell"
	"ashby-plotter/pkg/colorutil"
	"ashby-plotter/pkg/geometry"
)

func testTable() *material.Table {
	return material.NewTable(
		[]string{"Density", "Young Modulus", "Poisson"},
		[]material.Row{
			{Category: "Metals", Props: map[string]material.Value{
				"Density":       material.Scalar(7850),
				"Young Modulus": material.Range(190, 210),
				"Poisson":       material.Scalar(0.3),
			}},
			{Category: "Metals", Props: map[string]material.Value{
				"Density":       material.Scalar(2700),
				"Young Modulus": material.Scalar(70),
				"Poisson":       material.Scalar(0.33),
			}},
			{Category: "Polymers", Props: map[string]material.Value{
				"Density":       material.Range(900, 1400),
				"Young Modulus": material.Range(0.1, 4),
				"Poisson":       material.Range(0.35, 0.45),
			}},
		},
	)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Markers = nil
	cfg.Guidelines = nil
	return cfg
}

func TestRender(t *testing.T) {
	fig, err := Render(testTable(), nil, testConfig())
	require.NoError(t, err)
	require.NotNil(t, fig)

	w, h := fig.Size()
	assert.Equal(t, 10.0, w)
	assert.Equal(t, 7.5, h)
}

func TestRenderWithAllLayers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Title = "Stiffness map"
	cfg.PrimaryGuideline().Enabled = true

	fig, err := Render(testTable(), nil, cfg)
	require.NoError(t, err)
	assert.NotNil(t, fig)
}

func TestRenderLinearScales(t *testing.T) {
	cfg := testConfig()
	cfg.X = Axis{Property: "Poisson", Scale: ScaleLinear}
	cfg.Y = Axis{Property: "Young Modulus", Scale: ScaleLinear}

	fig, err := Render(testTable(), nil, cfg)
	require.NoError(t, err)
	assert.NotNil(t, fig)
}

func TestRenderDerivesPoissonDifference(t *testing.T) {
	tbl := testTable()
	cfg := testConfig()
	cfg.X = Axis{Property: material.PoissonDifference, Scale: ScaleLinear}
	cfg.Y = Axis{Property: "Young Modulus", Scale: ScaleLog}

	_, err := Render(tbl, nil, cfg)
	require.NoError(t, err)
	assert.True(t, tbl.HasProperty(material.PoissonDifference))
}

func TestRenderAbsentProperty(t *testing.T) {
	cfg := testConfig()
	cfg.Y.Property = "Hardness"

	_, err := Render(testTable(), nil, cfg)
	var perr *PlotError
	require.True(t, errors.As(err, &perr))
	assert.ErrorContains(t, err, "Hardness")
}

func TestRenderLogAxisRejectsNonPositive(t *testing.T) {
	tbl := material.NewTable(
		[]string{"Density", "Young Modulus"},
		[]material.Row{
			{Category: "Metals", Props: map[string]material.Value{
				"Density":       material.Scalar(7850),
				"Young Modulus": material.Range(-1, 210),
			}},
		},
	)

	cfg := testConfig()
	_, err := Render(tbl, nil, cfg)
	var perr *PlotError
	require.True(t, errors.As(err, &perr))

	// The same data is fine on a linear axis.
	cfg.Y.Scale = ScaleLinear
	cfg.Y.Min, cfg.Y.Max = -10, 300
	_, err = Render(tbl, nil, cfg)
	assert.NoError(t, err)
}

func TestRenderValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "no x property",
			mutate: func(c *Config) { c.X.Property = "" },
		},
		{
			name:   "log axis starting at zero",
			mutate: func(c *Config) { c.X.Min = 0 },
		},
		{
			name: "guideline with inverted x range",
			mutate: func(c *Config) {
				c.Guidelines = []Guideline{{Enabled: true, XMin: 100, XMax: 10, Intercept: 1}}
			},
		},
		{
			name: "guideline with zero intercept on log axes",
			mutate: func(c *Config) {
				c.Guidelines = []Guideline{{Enabled: true, XMin: 10, XMax: 100, Intercept: 0}}
			},
		},
		{
			name: "marker without the plotted property",
			mutate: func(c *Config) {
				c.Markers = []Marker{{Name: "Mystery", Props: map[string]float64{"Density": 1}}}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			_, err := Render(testTable(), nil, cfg)
			var perr *PlotError
			assert.True(t, errors.As(err, &perr), "want PlotError, got %v", err)
		})
	}
}

func TestRenderNothingToDraw(t *testing.T) {
	_, err := Render(nil, nil, testConfig())
	var perr *PlotError
	assert.True(t, errors.As(err, &perr))
}

func TestRenderUnitCellsOnly(t *testing.T) {
	cells := unitCellSet(t)
	cfg := testConfig()
	cfg.UnitCells.Enabled = true

	fig, err := Render(nil, cells, cfg)
	require.NoError(t, err)
	assert.NotNil(t, fig)
}

func TestRenderUnitCellsMissingField(t *testing.T) {
	cells := unitCellSet(t)
	cfg := testConfig()
	cfg.UnitCells.Enabled = true
	cfg.X.Property = "Resistivity"

	_, err := Render(nil, cells, cfg)
	var perr *PlotError
	require.True(t, errors.As(err, &perr))
	assert.ErrorContains(t, err, "Resistivity")
}

// unitCellSet loads a small synthetic study with enough Lattice samples
// for an envelope.
func unitCellSet(t *testing.T) *unitcell.Set {
	t.Helper()
	dir := t.TempDir()
	writeCSV(t, dir, "Lattice_All_inputs.csv",
		"ID,Unit Cell,Infill material,Stiff volume,Total volume\n"+
			"1,Lattice,none,0.2,1\n"+
			"2,Lattice,none,0.4,1\n"+
			"3,Lattice,none,0.6,1\n"+
			"4,Lattice,none,0.8,1\n")
	writeCSV(t, dir, "Lattice_All_outputs.csv",
		"ID,Unit Cell,E1,E2,Nu12\n"+
			"1,Lattice,10,12,0.2\n"+
			"2,Lattice,40,45,0.25\n"+
			"3,Lattice,90,95,0.3\n"+
			"4,Lattice,150,160,0.35\n")
	for _, cell := range []string{"Chiral", "Re-entrant"} {
		writeCSV(t, dir, cell+"_All_inputs.csv", "ID,Unit Cell,Infill material,Stiff volume,Total volume\n")
		writeCSV(t, dir, cell+"_All_outputs.csv", "ID,Unit Cell,E1,E2,Nu12\n")
	}

	set, err := unitcell.Load(dir, unitcell.NoInfill)
	require.NoError(t, err)
	require.Equal(t, 4, set.Len())
	return set
}

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRenderKeepsConfiguredBounds(t *testing.T) {
	cfg := testConfig()
	// Much narrower than the data: every scatter point and envelope
	// vertex falls outside on at least one side.
	cfg.X.Min, cfg.X.Max = 1000, 5000
	cfg.Y.Min, cfg.Y.Max = 1, 100
	cfg.Guidelines = []Guideline{{Enabled: true, Power: 1, Intercept: 1e-3, XMin: 10, XMax: 1e7}}

	fig, err := Render(testTable(), nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, fig.plot.X.Min)
	assert.Equal(t, 5000.0, fig.plot.X.Max)
	assert.Equal(t, 1.0, fig.plot.Y.Min)
	assert.Equal(t, 100.0, fig.plot.Y.Max)
}

func TestRenderGuidelineOutsideAxisRange(t *testing.T) {
	cfg := testConfig()
	cfg.Guidelines = []Guideline{{Enabled: true, Power: 1, Intercept: 1, XMin: 1e6, XMax: 1e7}}

	fig, err := Render(testTable(), nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.X.Min, fig.plot.X.Min)
	assert.Equal(t, cfg.X.Max, fig.plot.X.Max)
}

func TestRenderLogEnvelopeDrawable(t *testing.T) {
	// Polymers span 0.1..4: a linear-space hull expansion would push the
	// padded outline below zero, which the log scale cannot map at draw
	// time.
	fig, err := Render(testTable(), nil, testConfig())
	require.NoError(t, err)
	assert.NotNil(t, fig.Image(320, 240))
}

func TestEnvelopeLogSpaceStaysPositive(t *testing.T) {
	pts := []geometry.Point2D{
		{X: 900, Y: 0.1}, {X: 1400, Y: 0.1}, {X: 1400, Y: 4}, {X: 900, Y: 4},
	}
	poly := envelope(pts, colorutil.Red, 51, paramsFor(StylePublication), true, true)
	require.NotNil(t, poly)
	for _, ring := range poly.XYs {
		for _, pt := range ring {
			assert.Greater(t, pt.X, 0.0)
			assert.Greater(t, pt.Y, 0.0)
		}
	}
}
