// Package model holds the data types shared by the deformation engine,
// the importers/exporters, and the UI.
package model

import "strings"

// Field identifies one value on the calculator form.
type Field int

const (
	GearCount Field = iota
	Pitch
	Girth
	Thickness
	DeformationRatio
	DimensionBefore
	DimensionAfter
	ModuleCount
)

// AllFields lists every field in form order.
var AllFields = []Field{
	GearCount, Pitch, Girth, Thickness, DeformationRatio,
	DimensionBefore, DimensionAfter, ModuleCount,
}

var fieldInfo = map[Field]struct {
	name  string
	label string
	unit  string
}{
	GearCount:        {"gear_count", "Gear Count", "T"},
	Pitch:            {"pitch", "Pitch", "mm"},
	Girth:            {"girth", "Girth", "mm"},
	Thickness:        {"thickness", "Plate Thickness", "mm"},
	DeformationRatio: {"deformation_ratio", "Deformation", "%"},
	DimensionBefore:  {"dimension_before", "Before", "mm"},
	DimensionAfter:   {"dimension_after", "After", "mm"},
	ModuleCount:      {"module_count", "Modules", ""},
}

// String returns the snake_case identifier of the field.
func (f Field) String() string {
	if info, ok := fieldInfo[f]; ok {
		return info.name
	}
	return "unknown"
}

// Label returns the human-readable form label.
func (f Field) Label() string {
	if info, ok := fieldInfo[f]; ok {
		return info.label
	}
	return ""
}

// Unit returns the display unit shown next to the field.
func (f Field) Unit() string {
	if info, ok := fieldInfo[f]; ok {
		return info.unit
	}
	return ""
}

// ParseField resolves either a form label or an identifier to a Field.
// Matching is case-insensitive.
func ParseField(s string) (Field, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range AllFields {
		info := fieldInfo[f]
		if s == info.name || s == strings.ToLower(info.label) {
			return f, true
		}
	}
	return 0, false
}

// GirthMode records which side of the gear_count/girth pair is derived.
type GirthMode int

const (
	DerivingGirthFromGears GirthMode = iota
	DerivingGearsFromGirth
)

func (m GirthMode) String() string {
	switch m {
	case DerivingGirthFromGears:
		return "girth-from-gears"
	case DerivingGearsFromGirth:
		return "gears-from-girth"
	default:
		return "unknown"
	}
}

// DeformMode records which side of the before/after pair is derived.
type DeformMode int

const (
	DerivingAfterFromBefore DeformMode = iota
	DerivingBeforeFromAfter
)

func (m DeformMode) String() string {
	switch m {
	case DerivingAfterFromBefore:
		return "after-from-before"
	case DerivingBeforeFromAfter:
		return "before-from-after"
	default:
		return "unknown"
	}
}
