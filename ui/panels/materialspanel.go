package panels

import (
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ashby-plotter/internal/app"
	"ashby-plotter/internal/plot"
)

// MaterialsPanel toggles the highlighted reference materials.
type MaterialsPanel struct {
	state     *app.State
	container fyne.CanvasObject

	available []plot.Marker
	checks    []*widget.Check
}

// NewMaterialsPanel creates a new materials panel.
func NewMaterialsPanel(state *app.State) *MaterialsPanel {
	mp := &MaterialsPanel{
		state:     state,
		available: plot.DefaultMarkers(),
	}

	enabled := make(map[string]bool, len(state.Config.Markers))
	for _, m := range state.Config.Markers {
		enabled[m.Name] = true
	}

	var rows []fyne.CanvasObject
	for _, m := range mp.available {
		check := widget.NewCheck(m.Name, func(bool) {
			mp.syncMarkers()
		})
		check.SetChecked(enabled[m.Name])
		mp.checks = append(mp.checks, check)
		rows = append(rows, check, propertySummary(m))
	}

	mp.container = container.NewVBox(
		widget.NewCard("Highlighted Materials", "Drawn as large glyphs with legend entries",
			container.NewVBox(rows...)),
	)

	return mp
}

// Container returns the panel container.
func (mp *MaterialsPanel) Container() fyne.CanvasObject {
	return mp.container
}

// syncMarkers writes the checked subset back into the configuration.
func (mp *MaterialsPanel) syncMarkers() {
	var markers []plot.Marker
	for i, check := range mp.checks {
		if check.Checked {
			markers = append(markers, mp.available[i])
		}
	}
	mp.state.UpdateConfig(func(c *plot.Config) { c.Markers = markers })
}

func propertySummary(m plot.Marker) fyne.CanvasObject {
	names := make([]string, 0, len(m.Props))
	for name := range m.Props {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s %g", name, m.Props[name])
	}
	label := widget.NewLabel(strings.Join(parts, "  ·  "))
	label.Wrapping = fyne.TextWrapWord
	label.TextStyle = fyne.TextStyle{Italic: true}
	return label
}
