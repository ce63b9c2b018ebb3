package model

import (
	"regexp"
	"strings"
)

// numberPattern captures sign, integer digits (after leading zeros) and
// the fractional part including its dot. Every group is optional so the
// pattern matches any input, possibly with an empty match.
var numberPattern = regexp.MustCompile(`^(-)?0*(\d*)(\.\d*)?`)

// Normalize turns raw keystrokes into a canonical decimal literal:
// "007.50" -> "7.50", ".3" -> "0.3", "" -> "0". Trailing garbage is
// dropped. A trailing dot is kept so the user can keep typing.
func Normalize(raw string) string {
	m := numberPattern.FindStringSubmatch(strings.TrimSpace(raw))
	// The pattern can always match the empty prefix.
	sign, integer, fraction := m[1], m[2], m[3]
	if integer == "" {
		integer = "0"
	}
	return sign + integer + fraction
}
