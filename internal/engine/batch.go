package engine

import "github.com/piwi3910/FlexoCalc/internal/model"

// Evaluate runs a job through a fresh engine using the same edit order a
// user would: pitch, thickness, gear count, then the before dimension.
func Evaluate(job model.Job) model.JobResult {
	e := New()
	e.Input(model.Pitch, job.Pitch)
	e.Set(model.Thickness, job.Thickness)
	e.OnEdit(model.Thickness)
	e.Input(model.GearCount, job.GearCount)
	if job.Before != "" {
		e.Input(model.DimensionBefore, job.Before)
	}

	snap := e.Snapshot()
	return model.JobResult{
		Job:              job,
		Girth:            snap.Girth,
		DeformationRatio: snap.DeformationRatio,
		After:            snap.DimensionAfter,
	}
}

// EvaluateAll evaluates each job in order.
func EvaluateAll(jobs []model.Job) []model.JobResult {
	results := make([]model.JobResult, len(jobs))
	for i, job := range jobs {
		results[i] = Evaluate(job)
	}
	return results
}
