package model

import (
	"sort"
	"strconv"
	"strings"
)

// Default values the form starts with.
const (
	DefaultPitch     = "3.175"
	DefaultThickness = "1.7"
)

// FallbackThickness is used when a thickness is not in the table.
const FallbackThickness = "1.14"

// ThicknessTable maps a plate thickness (as entered text) to the
// calibration constant K used in the deformation formula.
type ThicknessTable map[string]float64

// DefaultThicknessTable returns the calibration table shipped with the
// application. Values are opaque calibration constants.
func DefaultThicknessTable() ThicknessTable {
	return ThicknessTable{
		"1.14": 6.06,
		"1.7":  9.89,
		"2.28": 13.52,
		"2.54": 16.05,
		"2.84": 17.04,
		"3.94": 23.94,
		"0.95": 5.4,
	}
}

// K returns the constant for a thickness. Unknown thicknesses use the
// constant for 1.14.
func (t ThicknessTable) K(thickness string) float64 {
	if k, ok := t[strings.TrimSpace(thickness)]; ok {
		return k
	}
	return t[FallbackThickness]
}

// Known reports whether the thickness has its own table entry.
func (t ThicknessTable) Known(thickness string) bool {
	_, ok := t[strings.TrimSpace(thickness)]
	return ok
}

// Thicknesses returns the table keys sorted by numeric value.
func (t ThicknessTable) Thicknesses() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.ParseFloat(keys[i], 64)
		b, _ := strconv.ParseFloat(keys[j], 64)
		return a < b
	})
	return keys
}
