// Package app provides application lifecycle management, shared state, and events.
package app

import (
	"sync"

	"ashby-plotter/internal/material"
	"ashby-plotter/internal/plot"
	"ashby-plotter/internal/unitcell"
)

// State holds the application state: the loaded data, the chart
// configuration, and the last rendered figure.
type State struct {
	mu sync.RWMutex

	// Data
	TablePath string
	Table     *material.Table

	UnitCells *unitcell.Set

	// Chart
	Config plot.Config
	Figure *plot.Figure

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventTableLoaded EventType = iota
	EventUnitCellsLoaded
	EventConfigChanged
	EventPlotGenerated
	EventPlotSaved
	EventError
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state with the default chart setup.
func NewState() *State {
	return &State{
		Config:    plot.DefaultConfig(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// LoadTable loads a material table and makes it the active data set.
func (s *State) LoadTable(path string) error {
	table, err := material.Load(path)
	if err != nil {
		s.Emit(EventError, err)
		return err
	}

	s.mu.Lock()
	s.TablePath = path
	s.Table = table
	// Axis selections from a previous file may not exist in this one.
	if !table.HasProperty(s.Config.X.Property) && s.Config.X.Property != material.PoissonDifference {
		s.Config.X.Property = firstProperty(table, 0)
	}
	if !table.HasProperty(s.Config.Y.Property) && s.Config.Y.Property != material.PoissonDifference {
		s.Config.Y.Property = firstProperty(table, 1)
	}
	s.mu.Unlock()

	s.Emit(EventTableLoaded, table)
	return nil
}

func firstProperty(table *material.Table, fallback int) string {
	props := table.Properties()
	if len(props) == 0 {
		return ""
	}
	if fallback >= len(props) {
		fallback = len(props) - 1
	}
	return props[fallback]
}

// LoadUnitCells loads the unit-cell study for the configured infill.
func (s *State) LoadUnitCells() error {
	s.mu.RLock()
	dir := s.Config.UnitCells.DataDir
	name := s.Config.UnitCells.Infill
	s.mu.RUnlock()

	infill, ok := unitcell.InfillByName(name)
	if !ok {
		infill = unitcell.NoInfill
	}
	set, err := unitcell.Load(dir, infill)
	if err != nil {
		s.Emit(EventError, err)
		return err
	}

	s.mu.Lock()
	s.UnitCells = set
	s.mu.Unlock()

	s.Emit(EventUnitCellsLoaded, set)
	return nil
}

// InvalidateUnitCells drops the loaded study so the next plot reloads it
// with the current overlay settings.
func (s *State) InvalidateUnitCells() {
	s.mu.Lock()
	s.UnitCells = nil
	s.mu.Unlock()
}

// UpdateConfig applies fn to the chart configuration under the lock and
// notifies listeners.
func (s *State) UpdateConfig(fn func(*plot.Config)) {
	s.mu.Lock()
	fn(&s.Config)
	cfg := s.Config
	s.mu.Unlock()

	s.Emit(EventConfigChanged, cfg)
}

// Snapshot returns the current data and configuration for rendering.
func (s *State) Snapshot() (*material.Table, *unitcell.Set, plot.Config) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Table, s.UnitCells, s.Config
}

// GeneratePlot renders the chart from the current state. The unit-cell
// study is loaded on first use when the overlay is enabled.
func (s *State) GeneratePlot() (*plot.Figure, error) {
	s.mu.RLock()
	needCells := s.Config.UnitCells.Enabled && s.UnitCells == nil
	s.mu.RUnlock()
	if needCells {
		if err := s.LoadUnitCells(); err != nil {
			return nil, err
		}
	}

	table, cells, cfg := s.Snapshot()
	fig, err := plot.Render(table, cells, cfg)
	if err != nil {
		s.Emit(EventError, err)
		return nil, err
	}

	s.mu.Lock()
	s.Figure = fig
	s.mu.Unlock()

	s.Emit(EventPlotGenerated, fig)
	return fig, nil
}

// SavePlot exports the last rendered figure, rendering one first if none
// exists yet.
func (s *State) SavePlot(path string) error {
	s.mu.RLock()
	fig := s.Figure
	s.mu.RUnlock()

	if fig == nil {
		var err error
		if fig, err = s.GeneratePlot(); err != nil {
			return err
		}
	}
	if err := fig.Export(path); err != nil {
		s.Emit(EventError, err)
		return err
	}

	s.Emit(EventPlotSaved, path)
	return nil
}
