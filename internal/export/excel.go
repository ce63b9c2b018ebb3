package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/FlexoCalc/internal/model"
)

const (
	modulesSheet = "Modules"
	batchSheet   = "Batch"
)

// ExportExcel writes the module table to a "Modules" sheet and, when
// results are given, the batch results to a "Batch" sheet.
func ExportExcel(path string, rows []model.ModuleRow, results []model.JobResult) error {
	if len(rows) == 0 && len(results) == 0 {
		return fmt.Errorf("no rows to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), modulesSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{"Row", "Module", "Before (mm)", "After (mm)"}
	if err := f.SetSheetRow(modulesSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{r.Label, numericCell(r.Module), numericCell(r.Before), numericCell(r.After)}
		if err := f.SetSheetRow(modulesSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if len(results) > 0 {
		if _, err := f.NewSheet(batchSheet); err != nil {
			return fmt.Errorf("failed to create batch sheet: %w", err)
		}
		header := []interface{}{"ID", "Label", "Gears", "Pitch (mm)", "Thickness (mm)", "Girth (mm)", "Deformation (%)", "Before (mm)", "After (mm)"}
		if err := f.SetSheetRow(batchSheet, "A1", &header); err != nil {
			return fmt.Errorf("failed to write batch header: %w", err)
		}
		for i, res := range results {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			values := []interface{}{
				res.Job.ID,
				res.Job.Label,
				numericCell(res.Job.GearCount),
				numericCell(res.Job.Pitch),
				numericCell(res.Job.Thickness),
				numericCell(res.Girth),
				numericCell(res.DeformationRatio),
				numericCell(res.Job.Before),
				numericCell(res.After),
			}
			if err := f.SetSheetRow(batchSheet, cell, &values); err != nil {
				return fmt.Errorf("failed to write batch row %d: %w", i+1, err)
			}
		}
	}

	return f.SaveAs(path)
}

// numericCell stores numbers as numbers so the sheet can be computed on,
// and leaves blank or non-numeric text as it is.
func numericCell(text string) interface{} {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text
	}
	return v
}
