package panels

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ashby-plotter/internal/app"
	"ashby-plotter/internal/plot"
)

// GuidelinePanel configures the material-index selection line.
type GuidelinePanel struct {
	state     *app.State
	container fyne.CanvasObject

	enableCheck *widget.Check
	power       *widget.Entry
	intercept   *widget.Entry
	xMin        *widget.Entry
	xMax        *widget.Entry
	label       *widget.Entry
	labelX      *widget.Entry
	labelY      *widget.Entry
}

// NewGuidelinePanel creates a new guideline panel.
func NewGuidelinePanel(state *app.State) *GuidelinePanel {
	gp := &GuidelinePanel{
		state: state,
	}

	gp.enableCheck = widget.NewCheck("Draw guideline", func(checked bool) {
		state.UpdateConfig(func(c *plot.Config) { c.PrimaryGuideline().Enabled = checked })
	})

	gp.power = gp.numberEntry(func(g *plot.Guideline, v float64) { g.Power = v })
	gp.intercept = gp.numberEntry(func(g *plot.Guideline, v float64) { g.Intercept = v })
	gp.xMin = gp.numberEntry(func(g *plot.Guideline, v float64) { g.XMin = v })
	gp.xMax = gp.numberEntry(func(g *plot.Guideline, v float64) { g.XMax = v })
	gp.labelX = gp.numberEntry(func(g *plot.Guideline, v float64) { g.LabelX = v })
	gp.labelY = gp.numberEntry(func(g *plot.Guideline, v float64) { g.LabelY = v })

	gp.label = widget.NewEntry()
	gp.label.SetPlaceHolder("e.g. E/ρ")
	gp.label.OnChanged = func(text string) {
		state.UpdateConfig(func(c *plot.Config) { c.PrimaryGuideline().Label = text })
	}

	gp.applyConfig(*state.Config.PrimaryGuideline())

	// Layout
	gp.container = container.NewVBox(
		widget.NewCard("Guideline", "", container.NewVBox(
			gp.enableCheck,
			container.NewGridWithColumns(2,
				labeled("Power:", gp.power),
				labeled("Intercept:", gp.intercept),
			),
			container.NewGridWithColumns(2,
				labeled("X from:", gp.xMin),
				labeled("X to:", gp.xMax),
			),
		)),
		widget.NewCard("Annotation", "", container.NewVBox(
			widget.NewLabel("Text:"),
			gp.label,
			container.NewGridWithColumns(2,
				labeled("At X:", gp.labelX),
				labeled("At Y:", gp.labelY),
			),
		)),
	)

	return gp
}

// Container returns the panel container.
func (gp *GuidelinePanel) Container() fyne.CanvasObject {
	return gp.container
}

func (gp *GuidelinePanel) numberEntry(set func(*plot.Guideline, float64)) *widget.Entry {
	e := widget.NewEntry()
	e.OnChanged = func(text string) {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return
		}
		gp.state.UpdateConfig(func(c *plot.Config) { set(c.PrimaryGuideline(), v) })
	}
	return e
}

func (gp *GuidelinePanel) applyConfig(g plot.Guideline) {
	gp.enableCheck.SetChecked(g.Enabled)
	gp.power.SetText(formatLimit(g.Power))
	gp.intercept.SetText(formatLimit(g.Intercept))
	gp.xMin.SetText(formatLimit(g.XMin))
	gp.xMax.SetText(formatLimit(g.XMax))
	gp.label.SetText(g.Label)
	gp.labelX.SetText(formatLimit(g.LabelX))
	gp.labelY.SetText(formatLimit(g.LabelY))
}
