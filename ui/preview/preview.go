// Package preview shows the rendered chart inside the window.
package preview

import (
	"bytes"
	"image"
	"image/png"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/draw"

	"ashby-plotter/internal/plot"
)

// Standard raster size for the preview. The image widget scales it to the
// window; rendering at a fixed size keeps regeneration cheap.
const (
	rasterW = 1200
	rasterH = 900
)

// Preview displays the last rendered figure, or a placeholder before the
// first chart is generated.
type Preview struct {
	container *fyne.Container
	image     *fynecanvas.Image
	hint      *widget.Label
}

// New creates an empty preview.
func New() *Preview {
	p := &Preview{}

	p.hint = widget.NewLabel("Load a spreadsheet and generate a plot")
	p.hint.Alignment = fyne.TextAlignCenter

	p.image = fynecanvas.NewImageFromImage(nil)
	p.image.FillMode = fynecanvas.ImageFillContain
	p.image.ScaleMode = fynecanvas.ImageScaleSmooth
	p.image.Hide()

	p.container = container.NewStack(container.NewCenter(p.hint), p.image)
	return p
}

// Container returns the preview container.
func (p *Preview) Container() fyne.CanvasObject {
	return p.container
}

// Show rasterizes the figure and swaps it into the view.
func (p *Preview) Show(fig *plot.Figure) {
	img := fig.Image(rasterW, rasterH)

	p.hint.Hide()
	p.image.Image = img
	p.image.Show()
	p.image.Refresh()
}

// Thumbnail scales the current preview down. Returns nil before the
// first chart is shown.
func (p *Preview) Thumbnail(w, h int) image.Image {
	src := p.image.Image
	if src == nil {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// Icon size in pixels.
const (
	iconW = 128
	iconH = 96
)

// Icon encodes a thumbnail of the current chart as a window icon.
// Returns nil before the first chart is shown.
func (p *Preview) Icon() fyne.Resource {
	thumb := p.Thumbnail(iconW, iconH)
	if thumb == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil
	}
	return fyne.NewStaticResource("chart.png", buf.Bytes())
}
