package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/piwi3910/FlexoCalc/internal/model"
)

const (
	layerBefore = "BEFORE"
	layerAfter  = "AFTER"
	layerText   = "LABELS"

	guideRowPitch  = 20.0 // vertical distance between module rows (mm)
	guidePairGap   = 6.0  // distance between the before and after line of a row
	guideTextSize  = 3.5
	guideTextInset = 40.0 // labels sit left of the lines
)

// ExportDXF draws a repeat guide: for every module row with values, a line
// of the undeformed repeat length on layer BEFORE and a line of the
// deformed length on layer AFTER, both starting at x=0.
func ExportDXF(path string, rows []model.ModuleRow) error {
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(layerText, dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerText, err)
	}
	if _, err := d.AddLayer(layerAfter, color.Red, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerAfter, err)
	}
	if _, err := d.AddLayer(layerBefore, color.Blue, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerBefore, err)
	}

	drawn := 0
	for _, r := range rows {
		before := model.ParseValue(r.Before, 0)
		after := model.ParseValue(r.After, 0)
		if before == 0 || after == 0 {
			continue
		}
		y := -float64(drawn) * guideRowPitch

		if err := d.ChangeLayer(layerBefore); err != nil {
			return fmt.Errorf("failed to switch to layer %s: %w", layerBefore, err)
		}
		if _, err := d.Line(0, y, 0, before, y, 0); err != nil {
			return fmt.Errorf("failed to draw %s before line: %w", r.Label, err)
		}
		if err := d.ChangeLayer(layerAfter); err != nil {
			return fmt.Errorf("failed to switch to layer %s: %w", layerAfter, err)
		}
		if _, err := d.Line(0, y-guidePairGap, 0, after, y-guidePairGap, 0); err != nil {
			return fmt.Errorf("failed to draw %s after line: %w", r.Label, err)
		}
		if err := d.ChangeLayer(layerText); err != nil {
			return fmt.Errorf("failed to switch to layer %s: %w", layerText, err)
		}
		if _, err := d.Text(r.Label, -guideTextInset, y-guidePairGap, 0, guideTextSize); err != nil {
			return fmt.Errorf("failed to label %s: %w", r.Label, err)
		}
		drawn++
	}

	if drawn == 0 {
		return ErrNothingToExport
	}
	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}
