package panels

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ashby-plotter/internal/app"
	"ashby-plotter/internal/material"
	"ashby-plotter/internal/plot"
)

// AxesPanel selects the plotted properties, scales, and axis limits.
type AxesPanel struct {
	state     *app.State
	container fyne.CanvasObject

	xProperty *widget.Select
	yProperty *widget.Select
	xScale    *widget.RadioGroup
	yScale    *widget.RadioGroup
	xMin      *widget.Entry
	xMax      *widget.Entry
	yMin      *widget.Entry
	yMax      *widget.Entry
}

// NewAxesPanel creates a new axes panel.
func NewAxesPanel(state *app.State) *AxesPanel {
	ap := &AxesPanel{
		state: state,
	}

	ap.xProperty = widget.NewSelect(nil, func(selected string) {
		state.UpdateConfig(func(c *plot.Config) { c.X.Property = selected })
	})
	ap.yProperty = widget.NewSelect(nil, func(selected string) {
		state.UpdateConfig(func(c *plot.Config) { c.Y.Property = selected })
	})

	scaleNames := []string{plot.ScaleLog.String(), plot.ScaleLinear.String()}
	ap.xScale = widget.NewRadioGroup(scaleNames, func(selected string) {
		state.UpdateConfig(func(c *plot.Config) { c.X.Scale = plot.ParseScale(selected) })
	})
	ap.xScale.Horizontal = true
	ap.yScale = widget.NewRadioGroup(scaleNames, func(selected string) {
		state.UpdateConfig(func(c *plot.Config) { c.Y.Scale = plot.ParseScale(selected) })
	})
	ap.yScale.Horizontal = true

	ap.xMin = ap.limitEntry(func(c *plot.Config, v float64) { c.X.Min = v })
	ap.xMax = ap.limitEntry(func(c *plot.Config, v float64) { c.X.Max = v })
	ap.yMin = ap.limitEntry(func(c *plot.Config, v float64) { c.Y.Min = v })
	ap.yMax = ap.limitEntry(func(c *plot.Config, v float64) { c.Y.Max = v })

	ap.applyConfig(state.Config)

	// Layout
	ap.container = container.NewVBox(
		widget.NewCard("X Axis", "", container.NewVBox(
			ap.xProperty,
			ap.xScale,
			container.NewGridWithColumns(2,
				labeled("Min:", ap.xMin),
				labeled("Max:", ap.xMax),
			),
		)),
		widget.NewCard("Y Axis", "", container.NewVBox(
			ap.yProperty,
			ap.yScale,
			container.NewGridWithColumns(2,
				labeled("Min:", ap.yMin),
				labeled("Max:", ap.yMax),
			),
		)),
	)

	// Register for events
	state.On(app.EventTableLoaded, func(data interface{}) {
		ap.setProperties(data.(*material.Table))
	})

	return ap
}

// Container returns the panel container.
func (ap *AxesPanel) Container() fyne.CanvasObject {
	return ap.container
}

// limitEntry builds a numeric entry writing one axis limit. Non-numeric
// text leaves the limit untouched until corrected.
func (ap *AxesPanel) limitEntry(set func(*plot.Config, float64)) *widget.Entry {
	e := widget.NewEntry()
	e.OnChanged = func(text string) {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return
		}
		ap.state.UpdateConfig(func(c *plot.Config) { set(c, v) })
	}
	return e
}

// setProperties fills the property selectors from a freshly loaded table.
// The derived Poisson property is offered whenever a Poisson column exists.
func (ap *AxesPanel) setProperties(table *material.Table) {
	props := append([]string(nil), table.Properties()...)
	if table.HasProperty("Poisson") && !table.HasProperty(material.PoissonDifference) {
		props = append(props, material.PoissonDifference)
	}
	ap.xProperty.Options = props
	ap.yProperty.Options = props

	cfg := ap.state.Config
	ap.xProperty.SetSelected(cfg.X.Property)
	ap.yProperty.SetSelected(cfg.Y.Property)
}

func (ap *AxesPanel) applyConfig(cfg plot.Config) {
	ap.xScale.SetSelected(cfg.X.Scale.String())
	ap.yScale.SetSelected(cfg.Y.Scale.String())
	ap.xMin.SetText(formatLimit(cfg.X.Min))
	ap.xMax.SetText(formatLimit(cfg.X.Max))
	ap.yMin.SetText(formatLimit(cfg.Y.Min))
	ap.yMax.SetText(formatLimit(cfg.Y.Max))
}

func formatLimit(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// labeled pairs a caption with a widget in a compact column.
func labeled(caption string, obj fyne.CanvasObject) fyne.CanvasObject {
	return container.NewVBox(widget.NewLabel(caption), obj)
}
