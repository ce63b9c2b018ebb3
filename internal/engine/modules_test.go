package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/FlexoCalc/internal/model"
)

func TestModuleRowsShape(t *testing.T) {
	rows := New().ModuleRows()
	require.Len(t, rows, model.MaxModule+1)

	assert.Equal(t, model.CustomModuleLabel, rows[0].Label)
	for m := 1; m <= model.MaxModule; m++ {
		assert.Equal(t, model.ModuleLabel(m), rows[m].Label)
		assert.Empty(t, rows[m].Before, "rows stay blank without a girth")
		assert.Empty(t, rows[m].After)
	}
}

func TestModuleRowsSplitGirth(t *testing.T) {
	e := New()
	e.Input(model.GearCount, "100")
	ratio := parse(t, e.Value(model.DeformationRatio))

	rows := e.ModuleRows()
	require.Len(t, rows, 11)

	assert.InDelta(t, 317.5, parse(t, rows[1].Before), 1e-3)
	assert.InDelta(t, 317.5*ratio/100, parse(t, rows[1].After), 1e-3)
	assert.InDelta(t, 31.75, parse(t, rows[10].Before), 1e-4)
	assert.InDelta(t, 31.75*ratio/100, parse(t, rows[10].After), 1e-4)

	// custom row stays blank until module_count is set
	assert.Empty(t, rows[0].Before)

	e.Input(model.ModuleCount, "4")
	rows = e.ModuleRows()
	assert.Equal(t, "4", rows[0].Module)
	assert.InDelta(t, 317.5/4, parse(t, rows[0].Before), 1e-3)
}

func TestModuleRowsBlankRatioUnlikeDimensions(t *testing.T) {
	e := New()
	e.Input(model.DimensionBefore, "250")
	require.Empty(t, e.Value(model.DeformationRatio))

	// the dimension fields use the 100% fallback
	assert.Equal(t, "250", e.Value(model.DimensionAfter))

	// module rows do not
	for _, row := range e.ModuleRows() {
		assert.Empty(t, row.Before, row.Label)
		assert.Empty(t, row.After, row.Label)
	}
}

func TestEvaluateJob(t *testing.T) {
	job := model.NewJob("Label A", "10", "", "1.14", "100")
	res := Evaluate(job)

	assert.Equal(t, job, res.Job)
	assert.Equal(t, "31.75", res.Girth)
	ratio := parse(t, res.DeformationRatio)
	assert.InDelta(t, (1-6.06/31.75)*100, ratio, 1e-4)
	assert.InDelta(t, ratio, parse(t, res.After), 1e-3)
}

func TestEvaluateJobWithoutBefore(t *testing.T) {
	res := Evaluate(model.NewJob("", "120", "5", "", ""))
	assert.Equal(t, "600", res.Girth)
	assert.InDelta(t, (1-9.89/600)*100, parse(t, res.DeformationRatio), 1e-4)
	assert.Empty(t, res.After)
}

func TestEvaluateAllKeepsOrder(t *testing.T) {
	jobs := []model.Job{
		model.NewJob("a", "10", "", "", ""),
		model.NewJob("b", "20", "", "", ""),
		model.NewJob("c", "0", "", "", ""),
	}
	results := EvaluateAll(jobs)
	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Job.Label)
	assert.Equal(t, "63.5", results[1].Girth)
	assert.Empty(t, results[2].Girth)
	assert.Empty(t, results[2].DeformationRatio)
}
