// Package unitcell loads homogenized unit-cell study results from CSV
// files and derives the bulk properties needed to place them on a chart
// alongside conventional materials.
package unitcell

// Infill describes the compliant material filling the voids of a printed
// unit cell. E is in GPa, Rho in g/cm3 scaled to kg/m3 during derivation.
type Infill struct {
	Name string
	E    float64
	Nu   float64
	Rho  float64
}

// The stiff phase of every cell, and the selectable infill materials.
var (
	Stiff           = Infill{Name: "stiff", E: 200, Nu: 0.3, Rho: 7800}
	DenseElastomer  = Infill{Name: "dense elastomer", E: 0.1, Nu: 0.48, Rho: 1000}
	FoamedElastomer = Infill{Name: "foamed elastomer", E: 0.001, Nu: 0.3, Rho: 100}
	NoInfill        = Infill{Name: "none"}
)

// Infills returns the selectable infill materials in menu order.
func Infills() []Infill {
	return []Infill{DenseElastomer, FoamedElastomer, NoInfill}
}

// InfillByName resolves an infill material from its menu name.
func InfillByName(name string) (Infill, bool) {
	for _, in := range Infills() {
		if in.Name == name {
			return in, true
		}
	}
	return Infill{}, false
}

// CellTypes lists the unit-cell families, one CSV file pair each.
func CellTypes() []string {
	return []string{"Chiral", "Lattice", "Re-entrant"}
}

// Sample is one simulated unit cell: its design inputs and homogenized
// outputs merged into a single numeric record.
type Sample struct {
	ID    string
	Cell  string
	Props map[string]float64
}

// Set holds the merged samples of a study for one infill material.
type Set struct {
	infill  Infill
	samples []Sample
}

// Infill returns the infill material the set was derived for.
func (s *Set) Infill() Infill {
	return s.infill
}

// Len returns the number of samples.
func (s *Set) Len() int {
	return len(s.samples)
}

// Samples returns all samples in file order.
func (s *Set) Samples() []Sample {
	return s.samples
}

// CellSamples returns the samples of one cell family.
func (s *Set) CellSamples(cell string) []Sample {
	var out []Sample
	for _, smp := range s.samples {
		if smp.Cell == cell {
			out = append(out, smp)
		}
	}
	return out
}

// HasProperty reports whether every sample carries the named property.
func (s *Set) HasProperty(name string) bool {
	if len(s.samples) == 0 {
		return false
	}
	for _, smp := range s.samples {
		if _, ok := smp.Props[name]; !ok {
			return false
		}
	}
	return true
}

// MapProperty translates a material-table property name to the field
// recorded for unit cells. Moduli and Poisson ratios come from the
// homogenized in-plane values.
func MapProperty(name string) string {
	switch name {
	case "Young Modulus":
		return "E1"
	case "Poisson":
		return "Nu12"
	default:
		return name
	}
}
