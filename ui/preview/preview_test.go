package preview

import (
	"bytes"
	"image/png"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ashby-plotter/internal/material"
	"ashby-plotter/internal/plot"
)

func testFigure(t *testing.T) *plot.Figure {
	t.Helper()
	table := material.NewTable(
		[]string{"Density", "Young Modulus"},
		[]material.Row{
			{Category: "Metals", Props: map[string]material.Value{
				"Density":       material.Scalar(7850),
				"Young Modulus": material.Range(190, 210),
			}},
			{Category: "Metals", Props: map[string]material.Value{
				"Density":       material.Scalar(2700),
				"Young Modulus": material.Scalar(70),
			}},
		},
	)
	cfg := plot.DefaultConfig()
	cfg.Markers = nil
	cfg.Guidelines = nil
	fig, err := plot.Render(table, nil, cfg)
	require.NoError(t, err)
	return fig
}

func TestPreviewShowAndThumbnail(t *testing.T) {
	test.NewApp()
	p := New()

	// Empty until the first chart.
	assert.Nil(t, p.Thumbnail(64, 48))
	assert.Nil(t, p.Icon())

	p.Show(testFigure(t))

	thumb := p.Thumbnail(64, 48)
	require.NotNil(t, thumb)
	assert.Equal(t, 64, thumb.Bounds().Dx())
	assert.Equal(t, 48, thumb.Bounds().Dy())
}

func TestPreviewIcon(t *testing.T) {
	test.NewApp()
	p := New()
	p.Show(testFigure(t))

	icon := p.Icon()
	require.NotNil(t, icon)

	img, err := png.Decode(bytes.NewReader(icon.Content()))
	require.NoError(t, err)
	assert.Equal(t, iconW, img.Bounds().Dx())
	assert.Equal(t, iconH, img.Bounds().Dy())
}
