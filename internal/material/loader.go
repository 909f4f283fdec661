package material

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	lowSuffix  = " low"
	highSuffix = " high"
)

// column describes how one spreadsheet column maps into the table.
type column struct {
	prop   string
	isLow  bool
	isHigh bool
}

// Load reads a .xlsx material table from the first sheet of the workbook.
// The sheet must have a header row with a Category column and at least one
// property column. Range-valued properties may be encoded either as paired
// "<Prop> low"/"<Prop> high" columns or as single "min-max" cells.
func Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, loadErrf(path, err, "cannot open spreadsheet")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, loadErrf(path, nil, "workbook has no sheets")
	}
	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, loadErrf(path, err, "cannot read sheet %q", sheets[0])
	}
	if len(cells) < 1 {
		return nil, loadErrf(path, nil, "sheet %q is empty", sheets[0])
	}

	catIdx, columns, props, err := scanHeader(cells[0])
	if err != nil {
		return nil, loadErrf(path, err, "bad header row")
	}
	if catIdx < 0 {
		return nil, loadErrf(path, nil, "missing required %q column", CategoryColumn)
	}
	if len(props) == 0 {
		return nil, loadErrf(path, nil, "no numeric property columns")
	}

	var rows []Row
	for rowNum, record := range cells[1:] {
		if blankRecord(record) {
			continue
		}

		category := ""
		if catIdx < len(record) {
			category = strings.TrimSpace(record[catIdx])
		}
		if category == "" {
			return nil, loadErrf(path, nil, "row %d has an empty %s", rowNum+2, CategoryColumn)
		}

		row := Row{Category: category, Props: make(map[string]Value, len(props))}
		lows := make(map[string]float64)
		highs := make(map[string]float64)
		lowSeen := make(map[string]bool)
		highSeen := make(map[string]bool)

		for idx, col := range columns {
			if idx >= len(record) {
				continue
			}
			cell := strings.TrimSpace(record[idx])
			if cell == "" {
				continue
			}

			switch {
			case col.isLow, col.isHigh:
				v, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return nil, loadErrf(path, err, "row %d: %s bound of %q is not numeric", rowNum+2, boundName(col), col.prop)
				}
				if col.isLow {
					lows[col.prop] = v
					lowSeen[col.prop] = true
				} else {
					highs[col.prop] = v
					highSeen[col.prop] = true
				}
			default:
				v, err := parseValue(cell)
				if err != nil {
					return nil, loadErrf(path, err, "row %d: column %q", rowNum+2, col.prop)
				}
				row.Props[col.prop] = v
			}
		}

		// Join the low/high pairs gathered for this row.
		for prop := range lowSeen {
			if !highSeen[prop] {
				return nil, loadErrf(path, nil, "row %d: %q has a low bound but no high bound", rowNum+2, prop)
			}
		}
		for prop := range highSeen {
			if !lowSeen[prop] {
				return nil, loadErrf(path, nil, "row %d: %q has a high bound but no low bound", rowNum+2, prop)
			}
			low, high := lows[prop], highs[prop]
			if low > high {
				return nil, loadErrf(path, nil, "row %d: %q has low %g > high %g", rowNum+2, prop, low, high)
			}
			row.Props[prop] = Range(low, high)
		}

		rows = append(rows, row)
	}

	return NewTable(props, rows), nil
}

// scanHeader maps header cells to columns, collapsing "<Prop> low"/"<Prop>
// high" pairs into one range-valued property. Property order follows first
// appearance in the header.
func scanHeader(header []string) (catIdx int, columns map[int]column, props []string, err error) {
	catIdx = -1
	columns = make(map[int]column)
	seen := make(map[string]bool)
	plainCols := make(map[string]bool)
	lowCols := make(map[string]bool)
	highCols := make(map[string]bool)

	for idx, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if name == CategoryColumn {
			catIdx = idx
			continue
		}

		switch {
		case strings.HasSuffix(name, lowSuffix):
			prop := strings.TrimSuffix(name, lowSuffix)
			columns[idx] = column{prop: prop, isLow: true}
			lowCols[prop] = true
			if !seen[prop] {
				seen[prop] = true
				props = append(props, prop)
			}
		case strings.HasSuffix(name, highSuffix):
			prop := strings.TrimSuffix(name, highSuffix)
			columns[idx] = column{prop: prop, isHigh: true}
			highCols[prop] = true
			if !seen[prop] {
				seen[prop] = true
				props = append(props, prop)
			}
		default:
			columns[idx] = column{prop: name}
			if seen[name] {
				return 0, nil, nil, loadHeaderErr(name)
			}
			seen[name] = true
			plainCols[name] = true
			props = append(props, name)
		}
	}

	// A property cannot mix the paired-column and single-cell conventions,
	// and a pair must have both halves.
	for prop := range lowCols {
		if !highCols[prop] || plainCols[prop] {
			return 0, nil, nil, loadHeaderErr(prop + lowSuffix)
		}
	}
	for prop := range highCols {
		if !lowCols[prop] || plainCols[prop] {
			return 0, nil, nil, loadHeaderErr(prop + highSuffix)
		}
	}
	return catIdx, columns, props, nil
}

type headerError string

func (e headerError) Error() string {
	return "conflicting or unpaired column " + strconv.Quote(string(e))
}

func loadHeaderErr(name string) error {
	return headerError(name)
}

func boundName(c column) string {
	if c.isLow {
		return "low"
	}
	return "high"
}

func blankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
