package unitcell

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Column names shared by the study CSVs.
const (
	idColumn     = "ID"
	cellColumn   = "Unit Cell"
	infillColumn = "Infill material"

	stiffVolumeColumn = "Stiff volume"
	totalVolumeColumn = "Total volume"

	// DensityField and PoissonDifferenceField are derived during load.
	DensityField           = "Density"
	PoissonDifferenceField = "Poisson difference"
)

// record is one CSV row keyed by merge identity.
type record struct {
	id     string
	cell   string
	infill string
	props  map[string]float64
}

// Load reads the unit-cell study from dir and derives bulk properties for
// the given infill material. Each cell family contributes a pair of files,
// "<Cell>_All_inputs.csv" and "<Cell>_All_outputs.csv", merged on the
// (ID, Unit Cell) key. Samples whose homogenized moduli do not exceed the
// infill modulus carry no information and are dropped.
func Load(dir string, infill Infill) (*Set, error) {
	set := &Set{infill: infill}

	for _, cell := range CellTypes() {
		inputs, err := readStudyFile(filepath.Join(dir, cell+"_All_inputs.csv"))
		if err != nil {
			return nil, err
		}
		outputs, err := readStudyFile(filepath.Join(dir, cell+"_All_outputs.csv"))
		if err != nil {
			return nil, err
		}

		byKey := make(map[string]record, len(inputs))
		for _, in := range inputs {
			byKey[in.id+"\x00"+in.cell] = in
		}

		for _, out := range outputs {
			in, ok := byKey[out.id+"\x00"+out.cell]
			if !ok {
				continue
			}
			if in.infill != infill.Name && out.infill != infill.Name {
				continue
			}

			sample := Sample{ID: out.id, Cell: out.cell, Props: make(map[string]float64, len(in.props)+len(out.props)+2)}
			for k, v := range in.props {
				sample.Props[k] = v
			}
			for k, v := range out.props {
				sample.Props[k] = v
			}

			if err := derive(&sample, infill); err != nil {
				return nil, fmt.Errorf("unit cell %s/%s: %w", out.cell, out.id, err)
			}
			if sample.Props["E1"] <= infill.E || sample.Props["E2"] <= infill.E {
				continue
			}
			set.samples = append(set.samples, sample)
		}
	}
	return set, nil
}

// derive adds the bulk density of the two-phase cell and the hyperbolic
// Poisson ratio. Volumes are in m3 and densities in kg/m3; the 1e6 factor
// converts the volume-weighted mix to the g/m3 scale the charts use.
func derive(s *Sample, infill Infill) error {
	stiffVol, ok := s.Props[stiffVolumeColumn]
	if !ok {
		return fmt.Errorf("missing %q", stiffVolumeColumn)
	}
	totalVol, ok := s.Props[totalVolumeColumn]
	if !ok {
		return fmt.Errorf("missing %q", totalVolumeColumn)
	}
	if totalVol <= 0 {
		return fmt.Errorf("non-positive %q", totalVolumeColumn)
	}
	nu, ok := s.Props["Nu12"]
	if !ok {
		return fmt.Errorf("missing Nu12")
	}

	s.Props[DensityField] = 1e6 * (stiffVol*Stiff.Rho + (totalVol-stiffVol)*infill.Rho) / totalVol
	s.Props[PoissonDifferenceField] = 1 / (1 + nu)
	return nil
}

// readStudyFile parses one study CSV into records. Numeric columns go
// into props; the identity and infill columns are kept as strings.
func readStudyFile(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unit cell data: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unit cell data %s: %w", filepath.Base(path), err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("unit cell data %s: empty file", filepath.Base(path))
	}

	header := rows[0]
	idIdx, cellIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case idColumn:
			idIdx = i
		case cellColumn:
			cellIdx = i
		}
	}
	if idIdx < 0 || cellIdx < 0 {
		return nil, fmt.Errorf("unit cell data %s: missing %q or %q column", filepath.Base(path), idColumn, cellColumn)
	}

	var records []record
	for _, row := range rows[1:] {
		rec := record{props: make(map[string]float64, len(row))}
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			name := strings.TrimSpace(header[i])
			val := strings.TrimSpace(cell)
			switch {
			case i == idIdx:
				rec.id = val
			case i == cellIdx:
				rec.cell = val
			case name == infillColumn:
				rec.infill = val
			default:
				if v, err := strconv.ParseFloat(val, 64); err == nil {
					rec.props[name] = v
				}
			}
		}
		if rec.id == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
