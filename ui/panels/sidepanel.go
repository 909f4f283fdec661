// Package panels provides UI panels for the application.
package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"ashby-plotter/internal/app"
	"ashby-plotter/ui/prefs"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	container *container.AppTabs

	// Tab content
	dataPanel      *DataPanel
	axesPanel      *AxesPanel
	guidelinePanel *GuidelinePanel
	materialsPanel *MaterialsPanel
	unitCellPanel  *UnitCellPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State, p *prefs.Prefs) *SidePanel {
	sp := &SidePanel{
		state: state,
	}

	// Create individual panels
	sp.dataPanel = NewDataPanel(state, p)
	sp.axesPanel = NewAxesPanel(state)
	sp.guidelinePanel = NewGuidelinePanel(state)
	sp.materialsPanel = NewMaterialsPanel(state)
	sp.unitCellPanel = NewUnitCellPanel(state, p)

	// Create tabbed container
	sp.container = container.NewAppTabs(
		container.NewTabItem("Data", sp.dataPanel.Container()),
		container.NewTabItem("Axes", sp.axesPanel.Container()),
		container.NewTabItem("Guideline", sp.guidelinePanel.Container()),
		container.NewTabItem("Materials", sp.materialsPanel.Container()),
		container.NewTabItem("Unit Cells", sp.unitCellPanel.Container()),
	)

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// SetWindow sets the parent window for dialogs.
func (sp *SidePanel) SetWindow(w fyne.Window) {
	sp.dataPanel.SetWindow(w)
	sp.unitCellPanel.SetWindow(w)
}

// OpenData shows the data panel's file dialog. Exposed for the File menu.
func (sp *SidePanel) OpenData() {
	sp.dataPanel.openFile()
}
