// Package plot renders material-property charts: per-category scatter
// clouds wrapped in smoothed envelopes, selection guidelines, highlighted
// reference materials, and unit-cell overlays.
package plot

import (
	"fmt"
	"image/color"

	"ashby-plotter/pkg/colorutil"
)

// Scale selects an axis transform.
type Scale int

const (
	ScaleLog Scale = iota
	ScaleLinear
)

func (s Scale) String() string {
	if s == ScaleLinear {
		return "linear"
	}
	return "log"
}

// ParseScale resolves a stored scale name. Unknown names fall back to log,
// the customary scale for material charts.
func ParseScale(name string) Scale {
	if name == "linear" {
		return ScaleLinear
	}
	return ScaleLog
}

// Axis configures one chart axis. Min and Max bound the visible range;
// leave Min >= Max to autoscale to the data.
type Axis struct {
	Property string
	Scale    Scale
	Min      float64
	Max      float64
}

// Fixed reports whether the axis has an explicit range.
func (a Axis) Fixed() bool {
	return a.Min < a.Max
}

// Guideline is a material-index selection line. On log axes it traces
// y = Intercept * x^Power between XMin and XMax; on linear axes it traces
// y = Power*x + Intercept.
type Guideline struct {
	Enabled   bool
	Power     float64
	Intercept float64
	XMin      float64
	XMax      float64
	Label     string
	LabelX    float64
	LabelY    float64
}

// Marker is a single highlighted material drawn as a large glyph.
type Marker struct {
	Name  string
	Props map[string]float64
	Color color.RGBA
}

// Style selects a preset controlling fonts and stroke weights.
type Style string

const (
	StylePublication  Style = "publication"
	StylePresentation Style = "presentation"
)

// UnitCellOverlay configures the unit-cell data layer.
type UnitCellOverlay struct {
	Enabled bool
	DataDir string
	Infill  string
}

// Config is the complete description of one chart. The renderer reads it,
// never mutates it, so a Config can back both the window state and a
// headless export.
type Config struct {
	X     Axis
	Y     Axis
	Title string
	Grid  bool
	Style Style

	Guidelines []Guideline
	Markers    []Marker
	UnitCells  UnitCellOverlay

	// Figure size in inches.
	Width  float64
	Height float64
}

// DefaultConfig returns the chart drawn before the user changes anything:
// the classic stiffness-density map on log axes.
func DefaultConfig() Config {
	return Config{
		X:      Axis{Property: "Density", Scale: ScaleLog, Min: 10, Max: 1e5},
		Y:      Axis{Property: "Young Modulus", Scale: ScaleLog, Min: 1e-5, Max: 1e4},
		Grid:   true,
		Style:  StylePresentation,
		Width:  10,
		Height: 7.5,
		Guidelines: []Guideline{{
			Power:     1,
			Intercept: 1e-3,
			XMin:      10,
			XMax:      1e5,
			Label:     "E/ρ",
			LabelX:    100,
			LabelY:    0.2,
		}},
		Markers: DefaultMarkers(),
	}
}

// PrimaryGuideline returns the first guideline, creating it when the list
// is empty. The guideline panel edits this one; extra guidelines can be
// appended programmatically.
func (c *Config) PrimaryGuideline() *Guideline {
	if len(c.Guidelines) == 0 {
		c.Guidelines = append(c.Guidelines, Guideline{})
	}
	return &c.Guidelines[0]
}

// DefaultMarkers returns the built-in reference materials.
func DefaultMarkers() []Marker {
	return []Marker{
		{
			Name:  "Foam",
			Props: map[string]float64{"Young Modulus": 0.124e-3, "Poisson": 0.45, "Density": 400},
			Color: colorutil.Blue,
		},
		{
			Name:  "PLA",
			Props: map[string]float64{"Young Modulus": 2.009, "Poisson": 0.3, "Density": 1300},
			Color: colorutil.Red,
		},
	}
}

// MarkerValue looks up a marker's value for a property, deriving the
// hyperbolic Poisson ratio when asked for it.
func MarkerValue(m Marker, property string) (float64, error) {
	if v, ok := m.Props[property]; ok {
		return v, nil
	}
	if property == "Poisson difference" {
		if nu, ok := m.Props["Poisson"]; ok {
			return 1 / (1 + nu), nil
		}
	}
	return 0, fmt.Errorf("material %q has no %q value", m.Name, property)
}
