// Package material loads material-property tables from spreadsheet files.
package material

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a property value resolved at load time: either a single scalar
// or a [low, high] range. Rendering code never re-inspects cell text.
type Value struct {
	Low    float64
	High   float64
	ranged bool
}

// Scalar returns a single-valued property value.
func Scalar(v float64) Value {
	return Value{Low: v, High: v}
}

// Range returns a range-valued property value.
func Range(low, high float64) Value {
	return Value{Low: low, High: high, ranged: true}
}

// IsRange reports whether the value is range-valued.
func (v Value) IsRange() bool {
	return v.ranged
}

// Mid returns the scalar value, or the midpoint for a range.
func (v Value) Mid() float64 {
	if !v.ranged {
		return v.Low
	}
	return (v.Low + v.High) / 2
}

// Positive reports whether every bound of the value is strictly positive.
// Log-scaled axes require this of all plotted values.
func (v Value) Positive() bool {
	return v.Low > 0 && v.High > 0
}

func (v Value) String() string {
	if v.ranged {
		return fmt.Sprintf("%g-%g", v.Low, v.High)
	}
	return strconv.FormatFloat(v.Low, 'g', -1, 64)
}

// parseValue parses a spreadsheet cell into a Value. Accepted forms are a
// single number ("7.85", "1E-4") and a "min-max" range ("0.9-1.1"). A cell
// that fits neither form, or a range whose bounds are inverted or that
// could be split at more than one place, is rejected rather than guessed.
func parseValue(cell string) (Value, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return Value{}, fmt.Errorf("empty cell")
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return Scalar(v), nil
	}

	low, high, err := splitRange(s)
	if err != nil {
		return Value{}, err
	}
	if low > high {
		return Value{}, fmt.Errorf("range %q has min > max", s)
	}
	return Range(low, high), nil
}

// splitRange splits a "min-max" cell on the dash separating the two numbers.
// Dashes that belong to a number (leading sign, exponent sign) are not
// separators. Exactly one valid split must exist; anything else is ambiguous.
func splitRange(s string) (low, high float64, err error) {
	var found bool
	for i := 1; i < len(s)-1; i++ {
		if s[i] != '-' {
			continue
		}
		prev := s[i-1]
		if prev == 'e' || prev == 'E' || prev == '+' || prev == '-' {
			continue
		}
		l, errL := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
		h, errH := strconv.ParseFloat(strings.TrimSpace(s[i+1:]), 64)
		if errL != nil || errH != nil {
			continue
		}
		if found {
			return 0, 0, fmt.Errorf("ambiguous range cell %q", s)
		}
		low, high, found = l, h, true
	}
	if !found {
		return 0, 0, fmt.Errorf("cell %q is neither a number nor a min-max range", s)
	}
	return low, high, nil
}
