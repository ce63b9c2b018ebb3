package model

import (
	"math"
	"strconv"
	"strings"
)

// ParseValue parses field text, returning fallback when the text is not a
// number. Blank text is not a number.
func ParseValue(text string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return fallback
	}
	return v
}

// FormatValue renders a computed value for display. Non-finite values
// render blank. Values are printed with the shortest digits that identify
// the float32 nearest to v, which hides float64 noise like 31.749999999999996.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 32)
}
