package plot

import (
	"image/color"

	"ashby-plotter/pkg/colorutil"
)

// Units maps property names to the unit shown on the axis label.
var Units = map[string]string{
	"Density":              "kg/m³",
	"Tensile Strength":     "MPa",
	"Young Modulus":        "GPa",
	"Fracture Toughness":   "MPa√m",
	"Thermal Conductivity": "W/m·K",
	"Thermal expansion":    "1e-6/m",
	"Resistivity":          "Ω·m",
	"Poisson":              "-",
	"Poisson difference":   "-",
}

// AxisLabel builds the axis caption for a property. The derived Poisson
// property gets its descriptive name spelled out.
func AxisLabel(property string) string {
	name := property
	if property == "Poisson difference" {
		name = "Hyperbolic Poisson Ratio 1/(1+ν)"
	}
	if unit, ok := Units[property]; ok {
		return name + ", " + unit
	}
	return name
}

// CategoryColors assigns the conventional chart color to each material
// class.
var CategoryColors = map[string]color.RGBA{
	"Foams":                 colorutil.Blue,
	"Elastomers":            colorutil.Orange,
	"Natural materials":     colorutil.Green,
	"Polymers":              colorutil.Red,
	"Nontechnical ceramics": colorutil.Purple,
	"Composites":            colorutil.Brown,
	"Technical ceramics":    colorutil.Pink,
	"Metals":                colorutil.Grey,
}

// CategoryColor returns the color for a material class. Classes outside
// the conventional set draw from the shared palette so every category
// keeps a stable, distinct color.
func CategoryColor(category string, ordinal int) color.RGBA {
	if c, ok := CategoryColors[category]; ok {
		return c
	}
	return colorutil.FromPalette(ordinal)
}

// CellColors assigns legend colors to the unit-cell families.
var CellColors = map[string]color.RGBA{
	"Chiral":     colorutil.Red,
	"Lattice":    colorutil.Blue,
	"Re-entrant": colorutil.Green,
}

// styleParams are the size knobs a Style preset controls, in points.
type styleParams struct {
	titleSize  float64
	labelSize  float64
	tickSize   float64
	legendSize float64
	lineWidth  float64
	glyphSize  float64
	markerSize float64
}

func paramsFor(s Style) styleParams {
	if s == StylePublication {
		return styleParams{
			titleSize:  14,
			labelSize:  12,
			tickSize:   10,
			legendSize: 8,
			lineWidth:  1,
			glyphSize:  2.5,
			markerSize: 7,
		}
	}
	return styleParams{
		titleSize:  20,
		labelSize:  18,
		tickSize:   14,
		legendSize: 14,
		lineWidth:  2,
		glyphSize:  4,
		markerSize: 10,
	}
}
