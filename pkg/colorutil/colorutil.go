// Package colorutil provides shared color utilities for the Ashby plotter.
package colorutil

import (
	"image/color"
)

// Named plot colors, matched to the matplotlib names the material color
// table was originally written against.
var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Blue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	Orange = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	Green  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	Red    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	Purple = color.RGBA{R: 148, G: 103, B: 189, A: 255}
	Brown  = color.RGBA{R: 140, G: 86, B: 75, A: 255}
	Pink   = color.RGBA{R: 227, G: 119, B: 194, A: 255}
	Grey   = color.RGBA{R: 127, G: 127, B: 127, A: 255}
	Olive  = color.RGBA{R: 188, G: 189, B: 34, A: 255}
	Cyan   = color.RGBA{R: 23, G: 190, B: 207, A: 255}
)

// Palette is the fallback color cycle for categories that have no entry in
// the material color table. Indexing wraps around.
var Palette = []color.RGBA{
	Blue, Orange, Green, Red, Purple, Brown, Pink, Grey, Olive, Cyan,
}

// FromPalette returns the i-th palette color, wrapping as needed.
func FromPalette(i int) color.RGBA {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// WithAlpha returns c at the given opacity. The result is non-premultiplied:
// an RGBA with the channels left at full strength but A lowered is not a
// valid color and renders saturated instead of translucent. Used for
// envelope fills and range boxes.
func WithAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}
