package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ashby-plotter/pkg/colorutil"
)

func TestAxisLabel(t *testing.T) {
	assert.Equal(t, "Density, kg/m³", AxisLabel("Density"))
	assert.Equal(t, "Hyperbolic Poisson Ratio 1/(1+ν), -", AxisLabel("Poisson difference"))
	assert.Equal(t, "Hardness", AxisLabel("Hardness"))
}

func TestCategoryColor(t *testing.T) {
	assert.Equal(t, colorutil.Grey, CategoryColor("Metals", 0))
	assert.Equal(t, colorutil.Blue, CategoryColor("Foams", 3))

	// Unknown classes get stable palette colors.
	c1 := CategoryColor("Aerogels", 1)
	c2 := CategoryColor("Aerogels", 1)
	assert.Equal(t, c1, c2)
	assert.NotEqual(t, CategoryColor("Aerogels", 1), CategoryColor("Hydrogels", 2))
}

func TestParseScale(t *testing.T) {
	assert.Equal(t, ScaleLinear, ParseScale("linear"))
	assert.Equal(t, ScaleLog, ParseScale("log"))
	assert.Equal(t, ScaleLog, ParseScale(""))
	assert.Equal(t, "linear", ScaleLinear.String())
	assert.Equal(t, "log", ScaleLog.String())
}

func TestStyleParams(t *testing.T) {
	pub := paramsFor(StylePublication)
	pres := paramsFor(StylePresentation)
	assert.Less(t, pub.labelSize, pres.labelSize)
	assert.Less(t, pub.legendSize, pres.legendSize)
}

func TestMarkerValue(t *testing.T) {
	m := Marker{Name: "PLA", Props: map[string]float64{"Young Modulus": 2.009, "Poisson": 0.3}}

	v, err := MarkerValue(m, "Young Modulus")
	require.NoError(t, err)
	assert.Equal(t, 2.009, v)

	v, err = MarkerValue(m, "Poisson difference")
	require.NoError(t, err)
	assert.InDelta(t, 1/1.3, v, 1e-12)

	_, err = MarkerValue(m, "Density")
	assert.Error(t, err)
}
