package model

import "fmt"

// MaxModule is the highest module tabulated in the reference rows.
const MaxModule = 10

// ModuleRow is one line of the module table: the girth split evenly into
// Module repeats, before and after deformation.
type ModuleRow struct {
	Label  string `json:"label"`
	Module string `json:"module"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// ModuleLabel returns the row label for a fixed module value.
func ModuleLabel(module int) string {
	return fmt.Sprintf("%d-module", module)
}

// CustomModuleLabel labels the row driven by the user's module count.
const CustomModuleLabel = "n-module"

// Snapshot is a copy of every field plus the two direction modes.
type Snapshot struct {
	GearCount        string     `json:"gear_count"`
	Pitch            string     `json:"pitch"`
	Girth            string     `json:"girth"`
	Thickness        string     `json:"thickness"`
	DeformationRatio string     `json:"deformation_ratio"`
	DimensionBefore  string     `json:"dimension_before"`
	DimensionAfter   string     `json:"dimension_after"`
	ModuleCount      string     `json:"module_count"`
	GirthMode        GirthMode  `json:"-"`
	DeformMode       DeformMode `json:"-"`
}

// Value returns the text of a single field.
func (s Snapshot) Value(f Field) string {
	switch f {
	case GearCount:
		return s.GearCount
	case Pitch:
		return s.Pitch
	case Girth:
		return s.Girth
	case Thickness:
		return s.Thickness
	case DeformationRatio:
		return s.DeformationRatio
	case DimensionBefore:
		return s.DimensionBefore
	case DimensionAfter:
		return s.DimensionAfter
	case ModuleCount:
		return s.ModuleCount
	default:
		return ""
	}
}
