package engine

import (
	"strconv"

	"github.com/piwi3910/FlexoCalc/internal/model"
)

// ModuleRows tabulates the girth split into module repeats. The first row
// uses the module_count field, the rest modules 1 through 10. Rows are
// blank where girth or ratio is not available. Unlike the dimension fields,
// which fall back to a 100% ratio, a blank ratio leaves the rows blank on
// purpose: without a girth there is nothing to split.
func (e *Engine) ModuleRows() []model.ModuleRow {
	e.mu.Lock()
	defer e.mu.Unlock()

	girth := e.number(model.Girth)
	ratio := e.number(model.DeformationRatio)
	count := e.values[model.ModuleCount]

	rows := make([]model.ModuleRow, 0, model.MaxModule+1)
	rows = append(rows, moduleRow(model.CustomModuleLabel, count, model.ParseValue(count, 0), girth, ratio))
	for m := 1; m <= model.MaxModule; m++ {
		rows = append(rows, moduleRow(model.ModuleLabel(m), strconv.Itoa(m), float64(m), girth, ratio))
	}
	return rows
}

func moduleRow(label, moduleText string, module, girth, ratio float64) model.ModuleRow {
	row := model.ModuleRow{Label: label, Module: moduleText}
	if module == 0 || girth == 0 || ratio == 0 {
		return row
	}
	before := girth / module
	row.Before = model.FormatValue(before)
	row.After = model.FormatValue(before * ratio / 100)
	return row
}
