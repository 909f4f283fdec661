package panels

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"ashby-plotter/internal/app"
	"ashby-plotter/internal/plot"
	"ashby-plotter/internal/unitcell"
	"ashby-plotter/ui/prefs"
)

// UnitCellPanel configures the unit-cell overlay: the study directory and
// the infill material the bulk properties are derived for.
type UnitCellPanel struct {
	state     *app.State
	prefs     *prefs.Prefs
	window    fyne.Window
	container fyne.CanvasObject

	enableCheck  *widget.Check
	infillSelect *widget.Select
	dirLabel     *widget.Label
	statusLabel  *widget.Label
}

// NewUnitCellPanel creates a new unit-cell panel.
func NewUnitCellPanel(state *app.State, p *prefs.Prefs) *UnitCellPanel {
	up := &UnitCellPanel{
		state: state,
		prefs: p,
	}

	up.enableCheck = widget.NewCheck("Overlay unit-cell envelopes", func(checked bool) {
		state.UpdateConfig(func(c *plot.Config) { c.UnitCells.Enabled = checked })
	})

	var infillNames []string
	for _, in := range unitcell.Infills() {
		infillNames = append(infillNames, in.Name)
	}
	up.infillSelect = widget.NewSelect(infillNames, func(selected string) {
		state.UpdateConfig(func(c *plot.Config) { c.UnitCells.Infill = selected })
		// The derived properties depend on the infill; force a reload.
		state.InvalidateUnitCells()
	})
	up.infillSelect.SetSelected(unitcell.NoInfill.Name)

	up.dirLabel = widget.NewLabel("No study directory")
	up.dirLabel.Wrapping = fyne.TextWrapWord
	up.statusLabel = widget.NewLabel("")
	up.statusLabel.Wrapping = fyne.TextWrapWord

	browseButton := widget.NewButton("Choose Directory...", func() {
		up.chooseDirectory()
	})

	// Restore the saved study directory.
	if dir := p.String(prefs.KeyUnitCellDataDir, ""); dir != "" {
		up.setDirectory(dir)
	}

	// Layout
	up.container = container.NewVBox(
		widget.NewCard("Unit Cells", "", container.NewVBox(
			up.enableCheck,
			widget.NewLabel("Infill material:"),
			up.infillSelect,
		)),
		widget.NewCard("Study Data", "", container.NewVBox(
			browseButton,
			up.dirLabel,
			up.statusLabel,
		)),
	)

	// Register for events
	state.On(app.EventUnitCellsLoaded, func(data interface{}) {
		set := data.(*unitcell.Set)
		up.statusLabel.SetText(summary(set))
	})

	return up
}

// SetWindow sets the parent window for dialogs.
func (up *UnitCellPanel) SetWindow(w fyne.Window) {
	up.window = w
}

// Container returns the panel container.
func (up *UnitCellPanel) Container() fyne.CanvasObject {
	return up.container
}

func (up *UnitCellPanel) chooseDirectory() {
	if up.window == nil {
		return
	}
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, up.window)
			return
		}
		if uri == nil {
			return
		}
		up.setDirectory(uri.Path())
	}, up.window)

	if dir := up.prefs.String(prefs.KeyUnitCellDataDir, ""); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

func (up *UnitCellPanel) setDirectory(dir string) {
	up.dirLabel.SetText(dir)
	up.prefs.SetString(prefs.KeyUnitCellDataDir, dir)
	up.state.UpdateConfig(func(c *plot.Config) { c.UnitCells.DataDir = dir })
	up.state.InvalidateUnitCells()
}

func summary(set *unitcell.Set) string {
	var parts []string
	for _, cell := range unitcell.CellTypes() {
		if n := len(set.CellSamples(cell)); n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", cell, n))
		}
	}
	if len(parts) == 0 {
		return "No usable samples for this infill"
	}
	return strings.Join(parts, ", ")
}
