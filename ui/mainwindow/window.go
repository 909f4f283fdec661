// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"ashby-plotter/internal/app"
	"ashby-plotter/internal/plot"
	"ashby-plotter/internal/version"
	"ashby-plotter/ui/panels"
	"ashby-plotter/ui/prefs"
	"ashby-plotter/ui/preview"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	preview   *preview.Preview
	sidePanel *panels.SidePanel
	statusBar *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Ashby Plotter")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	win.Resize(fyne.NewSize(
		float32(p.Float(prefs.KeyWindowWidth, 1280)),
		float32(p.Float(prefs.KeyWindowHeight, 860)),
	))
	win.SetCloseIntercept(func() {
		size := win.Canvas().Size()
		p.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
		p.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
		if err := p.Save(); err != nil {
			log.Printf("Saving preferences: %v", err)
		}
		win.Close()
	})

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	// Chart preview area
	mw.preview = preview.New()

	// Side panel with tabs
	mw.sidePanel = panels.NewSidePanel(mw.state, mw.prefs)
	mw.sidePanel.SetWindow(mw.Window)

	// Status bar
	mw.statusBar = widget.NewLabel("Ready")

	// Preview area with the generate button on top
	generateBtn := widget.NewButton("Generate Plot", func() {
		mw.onGeneratePlot()
	})
	previewArea := container.NewBorder(
		container.NewHBox(generateBtn), // top
		nil,                            // bottom
		nil,                            // left
		nil,                            // right
		mw.preview.Container(),         // center
	)

	// Main layout: side panel | preview
	split := container.NewHSplit(
		mw.sidePanel.Container(),
		previewArea,
	)
	split.SetOffset(0.3)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Spreadsheet...", mw.onOpenData),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Generate Plot", mw.onGeneratePlot),
		fyne.NewMenuItem("Save Plot...", mw.onSavePlot),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventTableLoaded, func(data interface{}) {
		mw.SetTitle("Ashby Plotter - " + filepath.Base(mw.state.TablePath))
		mw.updateStatus("Loaded " + mw.state.TablePath)
	})

	mw.state.On(app.EventPlotGenerated, func(data interface{}) {
		if fig, ok := data.(*plot.Figure); ok {
			mw.preview.Show(fig)
			if icon := mw.preview.Icon(); icon != nil {
				mw.SetIcon(icon)
			}
			mw.updateStatus("Plot generated")
		}
	})

	mw.state.On(app.EventPlotSaved, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.updateStatus("Saved " + path)
		}
	})

	mw.state.On(app.EventError, func(data interface{}) {
		if err, ok := data.(error); ok {
			mw.updateStatus(err.Error())
		}
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// Menu action handlers

func (mw *MainWindow) onOpenData() {
	mw.sidePanel.OpenData()
}

func (mw *MainWindow) onGeneratePlot() {
	if _, err := mw.state.GeneratePlot(); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onSavePlot() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if !knownExportExt(path) {
			path += ".png"
		}
		mw.prefs.SetString(prefs.KeyLastSaveDir, filepath.Dir(path))
		if err := mw.state.SavePlot(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFileName("ashby_plot.png")
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".pdf", ".svg"}))

	if dir := mw.prefs.String(prefs.KeyLastSaveDir, ""); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Show()
}

func knownExportExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".pdf", ".svg":
		return true
	}
	return false
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Ashby Plotter",
		fmt.Sprintf("Ashby Plotter v%s\n\n"+
			"Material selection charts from property spreadsheets.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
