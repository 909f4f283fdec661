package panels

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"ashby-plotter/internal/app"
	"ashby-plotter/internal/material"
	"ashby-plotter/internal/plot"
	"ashby-plotter/ui/prefs"
)

// DataPanel handles loading the material table and the figure presets.
type DataPanel struct {
	state     *app.State
	prefs     *prefs.Prefs
	window    fyne.Window
	container fyne.CanvasObject

	fileLabel  *widget.Label
	rowsLabel  *widget.Label
	propsLabel *widget.Label

	titleEntry  *widget.Entry
	styleSelect *widget.RadioGroup
	gridCheck   *widget.Check
}

// NewDataPanel creates a new data panel.
func NewDataPanel(state *app.State, p *prefs.Prefs) *DataPanel {
	dp := &DataPanel{
		state: state,
		prefs: p,
	}

	dp.fileLabel = widget.NewLabel("No file loaded")
	dp.fileLabel.Wrapping = fyne.TextWrapWord
	dp.rowsLabel = widget.NewLabel("")
	dp.propsLabel = widget.NewLabel("")
	dp.propsLabel.Wrapping = fyne.TextWrapWord

	openButton := widget.NewButton("Open Spreadsheet...", func() {
		dp.openFile()
	})

	dp.titleEntry = widget.NewEntry()
	dp.titleEntry.SetPlaceHolder("Chart title")
	dp.titleEntry.OnChanged = func(text string) {
		state.UpdateConfig(func(c *plot.Config) { c.Title = text })
	}

	dp.styleSelect = widget.NewRadioGroup([]string{
		string(plot.StylePresentation),
		string(plot.StylePublication),
	}, func(selected string) {
		state.UpdateConfig(func(c *plot.Config) { c.Style = plot.Style(selected) })
		p.SetString(prefs.KeyFigureStyle, selected)
	})
	dp.styleSelect.Horizontal = true
	saved := p.String(prefs.KeyFigureStyle, string(plot.StylePresentation))
	dp.styleSelect.SetSelected(saved)

	dp.gridCheck = widget.NewCheck("Show grid lines", func(checked bool) {
		state.UpdateConfig(func(c *plot.Config) { c.Grid = checked })
		p.SetBool(prefs.KeyShowGrid, checked)
	})
	dp.gridCheck.SetChecked(p.Bool(prefs.KeyShowGrid, state.Config.Grid))

	// Layout
	dp.container = container.NewVBox(
		widget.NewCard("Material Data", "", container.NewVBox(
			openButton,
			dp.fileLabel,
			dp.rowsLabel,
			dp.propsLabel,
		)),
		widget.NewCard("Figure", "", container.NewVBox(
			widget.NewLabel("Title:"),
			dp.titleEntry,
			widget.NewLabel("Preset:"),
			dp.styleSelect,
			dp.gridCheck,
		)),
	)

	// Register for events
	state.On(app.EventTableLoaded, func(data interface{}) {
		dp.updateTableInfo(data.(*material.Table))
	})

	return dp
}

// SetWindow sets the parent window for dialogs.
func (dp *DataPanel) SetWindow(w fyne.Window) {
	dp.window = w
}

// Container returns the panel container.
func (dp *DataPanel) Container() fyne.CanvasObject {
	return dp.container
}

func (dp *DataPanel) openFile() {
	if dp.window == nil {
		return
	}

	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, dp.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()

		dp.prefs.SetString(prefs.KeyLastDataDir, filepath.Dir(path))
		if err := dp.state.LoadTable(path); err != nil {
			dialog.ShowError(err, dp.window)
		}
	}, dp.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".xlsx"}))

	if dir := dp.prefs.String(prefs.KeyLastDataDir, ""); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

func (dp *DataPanel) updateTableInfo(table *material.Table) {
	dp.fileLabel.SetText(filepath.Base(dp.state.TablePath))
	dp.rowsLabel.SetText(fmt.Sprintf("%d materials, %d classes",
		table.Len(), len(table.Categories())))
	dp.propsLabel.SetText("Properties: " + strings.Join(table.Properties(), ", "))
}
