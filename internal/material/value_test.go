package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		cell    string
		want    Value
		wantErr bool
	}{
		{name: "integer", cell: "200", want: Scalar(200)},
		{name: "decimal", cell: "7.85", want: Scalar(7.85)},
		{name: "negative", cell: "-0.3", want: Scalar(-0.3)},
		{name: "exponent", cell: "1E-4", want: Scalar(1e-4)},
		{name: "padded", cell: " 12.5 ", want: Scalar(12.5)},
		{name: "range", cell: "0.9-1.1", want: Range(0.9, 1.1)},
		{name: "range with spaces", cell: "10 - 20", want: Range(10, 20)},
		{name: "range of exponents", cell: "1e-4-1e-3", want: Range(1e-4, 1e-3)},
		{name: "range into negative", cell: "1--2", wantErr: true},
		{name: "inverted range", cell: "5-2", wantErr: true},
		{name: "empty", cell: "", wantErr: true},
		{name: "text", cell: "steel", wantErr: true},
		{name: "double dash", cell: "1-2-3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseValue(tt.cell)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueMid(t *testing.T) {
	assert.Equal(t, 5.0, Scalar(5).Mid())
	assert.Equal(t, 15.0, Range(10, 20).Mid())
}

func TestValuePositive(t *testing.T) {
	assert.True(t, Scalar(0.001).Positive())
	assert.True(t, Range(1, 2).Positive())
	assert.False(t, Scalar(0).Positive())
	assert.False(t, Range(-1, 2).Positive())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "7.85", Scalar(7.85).String())
	assert.Equal(t, "0.9-1.1", Range(0.9, 1.1).String())
}
