// Package engine keeps the calculator fields consistent. Every edit goes
// through OnEdit, which recomputes the fields that depend on the edited one
// and then re-derives the non-authoritative side of the before/after pair.
package engine

import (
	"sync"

	"github.com/piwi3910/FlexoCalc/internal/model"
)

// pitchFallback and ratioFallback stand in for a blank pitch or ratio in
// the formulas that divide or scale by them.
const (
	pitchFallback = 3.175
	ratioFallback = 100.0
)

// Engine owns the field values and direction modes of one calculator form.
type Engine struct {
	mu         sync.Mutex
	values     map[model.Field]string
	girthMode  model.GirthMode
	deformMode model.DeformMode
	table      model.ThicknessTable
}

// New creates an engine with the form defaults: pitch 3.175, thickness 1.7,
// girth derived from gear count and after derived from before.
func New() *Engine {
	return NewWithTable(model.DefaultThicknessTable())
}

// NewWithTable creates an engine using a specific thickness table.
func NewWithTable(table model.ThicknessTable) *Engine {
	e := &Engine{
		values:     make(map[model.Field]string, len(model.AllFields)),
		girthMode:  model.DerivingGirthFromGears,
		deformMode: model.DerivingAfterFromBefore,
		table:      table,
	}
	for _, f := range model.AllFields {
		e.values[f] = ""
	}
	e.values[model.Pitch] = model.DefaultPitch
	e.values[model.Thickness] = model.DefaultThickness
	return e
}

// Table returns the thickness table the engine looks K up in.
func (e *Engine) Table() model.ThicknessTable {
	return e.table
}

// Set stores text into a field without recomputing anything. Callers are
// expected to follow it with OnEdit.
func (e *Engine) Set(f model.Field, text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.values[f] = text
}

// Value returns the current text of a field.
func (e *Engine) Value(f model.Field) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.values[f]
}

// GirthMode returns which side of gear_count/girth is currently derived.
func (e *Engine) GirthMode() model.GirthMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.girthMode
}

// DeformMode returns which side of before/after is currently derived.
func (e *Engine) DeformMode() model.DeformMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.deformMode
}

// Input normalizes raw text, stores it and runs OnEdit for the field.
// It returns the normalized text so the caller can write it back.
func (e *Engine) Input(f model.Field, raw string) string {
	text := model.Normalize(raw)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.values[f] = text
	e.edit(f)
	return text
}

// OnEdit recomputes everything downstream of an edited field.
func (e *Engine) OnEdit(f model.Field) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.edit(f)
}

// OnEditLabel is OnEdit addressed by form label or identifier. Unknown
// labels only run the before/after pass.
func (e *Engine) OnEditLabel(label string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	f, ok := model.ParseField(label)
	if !ok {
		e.syncDimensions()
		return
	}
	e.edit(f)
}

// Snapshot copies every field and both modes.
func (e *Engine) Snapshot() model.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

func (e *Engine) snapshot() model.Snapshot {
	return model.Snapshot{
		GearCount:        e.values[model.GearCount],
		Pitch:            e.values[model.Pitch],
		Girth:            e.values[model.Girth],
		Thickness:        e.values[model.Thickness],
		DeformationRatio: e.values[model.DeformationRatio],
		DimensionBefore:  e.values[model.DimensionBefore],
		DimensionAfter:   e.values[model.DimensionAfter],
		ModuleCount:      e.values[model.ModuleCount],
		GirthMode:        e.girthMode,
		DeformMode:       e.deformMode,
	}
}

// edit must be called with mu held.
func (e *Engine) edit(f model.Field) {
	switch f {
	case model.GearCount:
		e.girthMode = model.DerivingGirthFromGears
		e.computeGirth()
	case model.Pitch:
		switch e.girthMode {
		case model.DerivingGirthFromGears:
			e.computeGirth()
		case model.DerivingGearsFromGirth:
			e.computeGears()
		}
	case model.Girth:
		e.girthMode = model.DerivingGearsFromGirth
		e.computeGears()
		e.computeDeformation()
	case model.Thickness:
		e.computeDeformation()
	case model.DimensionBefore:
		e.deformMode = model.DerivingAfterFromBefore
	case model.DimensionAfter:
		e.deformMode = model.DerivingBeforeFromAfter
	}
	e.syncDimensions()
}

func (e *Engine) number(f model.Field) float64 {
	return model.ParseValue(e.values[f], 0)
}

func (e *Engine) pitch() float64 {
	return model.ParseValue(e.values[model.Pitch], pitchFallback)
}

func (e *Engine) ratio() float64 {
	return model.ParseValue(e.values[model.DeformationRatio], ratioFallback)
}

// computeGirth sets girth = gear_count × pitch and refreshes the ratio.
func (e *Engine) computeGirth() {
	gears := e.number(model.GearCount)
	if gears == 0 {
		e.values[model.Girth] = ""
	} else {
		e.values[model.Girth] = model.FormatValue(gears * e.pitch())
	}
	e.computeDeformation()
}

// computeGears sets gear_count = girth / pitch. Girth is left as entered.
func (e *Engine) computeGears() {
	girth := e.number(model.Girth)
	if girth == 0 {
		e.values[model.GearCount] = ""
		return
	}
	e.values[model.GearCount] = model.FormatValue(girth / e.pitch())
}

// computeDeformation sets ratio = (1 - K/girth) × 100.
func (e *Engine) computeDeformation() {
	girth := e.number(model.Girth)
	if girth == 0 {
		e.values[model.DeformationRatio] = ""
		return
	}
	k := e.table.K(e.values[model.Thickness])
	e.values[model.DeformationRatio] = model.FormatValue((1 - k/girth) * 100)
}

// syncDimensions re-derives whichever dimension is not authoritative.
func (e *Engine) syncDimensions() {
	switch e.deformMode {
	case model.DerivingAfterFromBefore:
		e.computeAfter()
	case model.DerivingBeforeFromAfter:
		e.computeBefore()
	}
}

func (e *Engine) computeAfter() {
	before := e.number(model.DimensionBefore)
	if before == 0 {
		e.values[model.DimensionAfter] = ""
		return
	}
	e.values[model.DimensionAfter] = model.FormatValue(before * e.ratio() / 100)
}

func (e *Engine) computeBefore() {
	after := e.number(model.DimensionAfter)
	if after == 0 {
		e.values[model.DimensionBefore] = ""
		return
	}
	e.values[model.DimensionBefore] = model.FormatValue(after / e.ratio() * 100)
}
