package ui

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/FlexoCalc/internal/engine"
	"github.com/piwi3910/FlexoCalc/internal/importer"
	"github.com/piwi3910/FlexoCalc/internal/model"
)

var batchHeaders = []string{"Label", "Gears", "Pitch", "Thickness", "Girth", "Deformation %", "Before", "After"}

// importBatch opens a job list, evaluates every job and shows the results.
func (a *App) importBatch(excel bool) {
	if excel {
		a.openFile(".xlsx", func(path string) { a.handleImportResult(importer.ImportExcel(path)) })
		return
	}
	a.openFile(".csv", func(path string) { a.handleImportResult(importer.ImportCSV(path)) })
}

func (a *App) handleImportResult(result importer.ImportResult) {
	if len(result.Errors) > 0 {
		err := fmt.Errorf("errors encountered during import:\n\n%w", errors.Join(result.Errors...))
		if len(result.Jobs) > 0 {
			err = fmt.Errorf("%w\n\n%d rows were imported, the rows above were skipped", err, len(result.Jobs))
		}
		dialog.ShowError(err, a.window)
	}
	if len(result.Jobs) == 0 {
		return
	}

	a.lastResults = engine.EvaluateAll(result.Jobs)
	a.showBatchResults(a.lastResults, result.Warnings)
}

// showBatchResults lists evaluated jobs with an option to export them.
func (a *App) showBatchResults(results []model.JobResult, warnings []string) {
	if len(results) == 0 {
		dialog.ShowInformation("No batch results", "Import a CSV or Excel job list first.", a.window)
		return
	}

	table := widget.NewTable(
		func() (int, int) { return len(results) + 1, len(batchHeaders) },
		func() fyne.CanvasObject { return widget.NewLabel("00000.000") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			label.TextStyle = fyne.TextStyle{Bold: id.Row == 0}
			label.SetText(batchCell(results, id.Row, id.Col))
		},
	)
	table.SetColumnWidth(0, 140)

	exportBtn := widget.NewButton("Export to Excel...", func() {
		a.exportExcel(results)
	})

	var top fyne.CanvasObject = widget.NewLabel(fmt.Sprintf("%d jobs evaluated", len(results)))
	if len(warnings) > 0 {
		w := widget.NewLabel(strings.Join(warnings, "\n"))
		w.Wrapping = fyne.TextWrapWord
		w.Importance = widget.WarningImportance
		top = container.NewVBox(top, w)
	}

	content := container.NewBorder(top, exportBtn, nil, nil, table)
	d := dialog.NewCustom("Batch Results", "Close", content, a.window)
	d.Resize(fyne.NewSize(900, 500))
	d.Show()
}

// batchCell returns the text for a batch table cell; row 0 is the header.
func batchCell(results []model.JobResult, row, col int) string {
	if row == 0 {
		return batchHeaders[col]
	}
	if row > len(results) {
		return ""
	}
	r := results[row-1]
	switch col {
	case 0:
		return r.Job.Label
	case 1:
		return r.Job.GearCount
	case 2:
		return r.Job.Pitch
	case 3:
		return r.Job.Thickness
	case 4:
		return r.Girth
	case 5:
		return r.DeformationRatio
	case 6:
		return r.Job.Before
	default:
		return r.After
	}
}
