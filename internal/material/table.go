package material

import (
	"fmt"

	"ashby-plotter/pkg/geometry"
)

// CategoryColumn is the required classification column of every table.
const CategoryColumn = "Category"

// PoissonDifference is the derived hyperbolic Poisson property 1/(1+nu).
// It is computed on demand from the Poisson column.
const PoissonDifference = "Poisson difference"

// Row is one material: its class plus the property values read for it.
type Row struct {
	Category string
	Props    map[string]Value
}

// Table is an in-memory material-property table. Row order and Category
// strings are preserved verbatim from the source file.
type Table struct {
	rows  []Row
	props []string
}

// NewTable builds a table from rows with the given ordered property names.
func NewTable(props []string, rows []Row) *Table {
	return &Table{rows: rows, props: props}
}

// Len returns the number of material rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns all material rows in source order.
func (t *Table) Rows() []Row {
	return t.rows
}

// Properties returns the property names in source column order.
func (t *Table) Properties() []string {
	return t.props
}

// HasProperty reports whether the named property exists in the table.
func (t *Table) HasProperty(name string) bool {
	for _, p := range t.props {
		if p == name {
			return true
		}
	}
	return false
}

// Categories returns the distinct Category values in first-seen order.
func (t *Table) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, r := range t.rows {
		if !seen[r.Category] {
			seen[r.Category] = true
			cats = append(cats, r.Category)
		}
	}
	return cats
}

// CategoryRows returns the rows belonging to a category, in source order.
func (t *Table) CategoryRows(category string) []Row {
	var rows []Row
	for _, r := range t.rows {
		if r.Category == category {
			rows = append(rows, r)
		}
	}
	return rows
}

// Points returns the (x, y) corner points of a category's rows for the two
// named properties. Scalars contribute one point, ranges contribute both
// corners, so the result spans each material's full property envelope.
func (t *Table) Points(category, xProp, yProp string) []geometry.Point2D {
	var pts []geometry.Point2D
	for _, r := range t.CategoryRows(category) {
		x, okX := r.Props[xProp]
		y, okY := r.Props[yProp]
		if !okX || !okY {
			continue
		}
		pts = append(pts, geometry.Point2D{X: x.Low, Y: y.Low})
		if x.IsRange() || y.IsRange() {
			pts = append(pts, geometry.Point2D{X: x.High, Y: y.High})
		}
		if x.IsRange() && y.IsRange() {
			pts = append(pts,
				geometry.Point2D{X: x.Low, Y: y.High},
				geometry.Point2D{X: x.High, Y: y.Low})
		}
	}
	return pts
}

// EnsureDerived materializes a derived property if the table can compute
// it. Currently only the hyperbolic Poisson ratio 1/(1+nu) is derived.
// Note the bound swap: a high Poisson value gives a low hyperbolic one.
func (t *Table) EnsureDerived(name string) error {
	if t.HasProperty(name) {
		return nil
	}
	if name != PoissonDifference {
		return fmt.Errorf("property %q does not exist in the table", name)
	}
	if !t.HasProperty("Poisson") {
		return fmt.Errorf("property %q requires a Poisson column", name)
	}

	for i := range t.rows {
		nu, ok := t.rows[i].Props["Poisson"]
		if !ok {
			continue
		}
		if nu.IsRange() {
			t.rows[i].Props[name] = Range(1/(1+nu.High), 1/(1+nu.Low))
		} else {
			t.rows[i].Props[name] = Scalar(1 / (1 + nu.Low))
		}
	}
	t.props = append(t.props, name)
	return nil
}
