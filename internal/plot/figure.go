package plot

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is a rendered chart ready for export or on-screen preview.
type Figure struct {
	plot   *plot.Plot
	width  vg.Length
	height vg.Length
}

// exportFormats are the extensions Export accepts.
var exportFormats = map[string]bool{
	".png": true,
	".pdf": true,
	".svg": true,
}

// Export writes the figure to path, picking the format from the file
// extension. Supported extensions are .png, .pdf and .svg.
func (f *Figure) Export(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !exportFormats[ext] {
		return &IOError{Path: path, Err: fmt.Errorf("unsupported format %q", ext)}
	}
	if err := f.plot.Save(f.width, f.height, path); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

// Image rasterizes the figure at the given pixel size for an on-screen
// preview. The aspect ratio follows the requested size, not the figure's
// export size.
func (f *Figure) Image(w, h int) image.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(w)*vg.Inch/vgimg.DefaultDPI, vg.Length(h)*vg.Inch/vgimg.DefaultDPI),
		vgimg.UseDPI(vgimg.DefaultDPI),
	)
	f.plot.Draw(draw.New(c))
	return c.Image()
}

// Size returns the export size in inches.
func (f *Figure) Size() (w, h float64) {
	return float64(f.width / vg.Inch), float64(f.height / vg.Inch)
}
