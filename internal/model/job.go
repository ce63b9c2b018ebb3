package model

import "github.com/google/uuid"

// Job is one plate in a batch list: the inputs needed to compute a
// deformation ratio and, optionally, one projected dimension.
type Job struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	GearCount string `json:"gear_count"`
	Pitch     string `json:"pitch"`
	Thickness string `json:"thickness"`
	Before    string `json:"before"`
}

// NewJob creates a job with a short unique ID. Blank pitch and thickness
// take the form defaults.
func NewJob(label, gears, pitch, thickness, before string) Job {
	if pitch == "" {
		pitch = DefaultPitch
	}
	if thickness == "" {
		thickness = DefaultThickness
	}
	return Job{
		ID:        uuid.New().String()[:8],
		Label:     label,
		GearCount: gears,
		Pitch:     pitch,
		Thickness: thickness,
		Before:    before,
	}
}

// JobResult holds the computed values for a Job.
type JobResult struct {
	Job              Job    `json:"job"`
	Girth            string `json:"girth"`
	DeformationRatio string `json:"deformation_ratio"`
	After            string `json:"after"`
}
