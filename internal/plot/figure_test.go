package plot

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderTestFigure(t *testing.T) *Figure {
	t.Helper()
	cfg := testConfig()
	cfg.Width, cfg.Height = 5, 4
	fig, err := Render(testTable(), nil, cfg)
	require.NoError(t, err)
	return fig
}

func TestFigureExportPNG(t *testing.T) {
	fig := renderTestFigure(t)
	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, fig.Export(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)

	// Rasterized at 96 dpi: 5x4 inches is 480x384 pixels.
	bounds := img.Bounds()
	assert.Equal(t, 480, bounds.Dx())
	assert.Equal(t, 384, bounds.Dy())
}

func TestFigureExportVectorFormats(t *testing.T) {
	fig := renderTestFigure(t)
	dir := t.TempDir()
	for _, name := range []string{"chart.pdf", "chart.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, fig.Export(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), name)
	}
}

func TestFigureExportUnknownFormat(t *testing.T) {
	fig := renderTestFigure(t)
	for _, name := range []string{"chart.bmp", "chart"} {
		err := fig.Export(filepath.Join(t.TempDir(), name))
		var ioErr *IOError
		require.True(t, errors.As(err, &ioErr), "want IOError for %q, got %v", name, err)
	}
}

func TestFigureExportUnwritablePath(t *testing.T) {
	fig := renderTestFigure(t)
	err := fig.Export(filepath.Join(t.TempDir(), "missing", "chart.png"))
	var ioErr *IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestFigureImage(t *testing.T) {
	fig := renderTestFigure(t)

	img := fig.Image(640, 480)
	bounds := img.Bounds()
	assert.Equal(t, 640, bounds.Dx())
	assert.Equal(t, 480, bounds.Dy())

	// Degenerate sizes are clamped rather than panicking.
	img = fig.Image(0, -5)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
}
