package model

// AppConfig holds application-wide preferences. Field values on the form
// are not part of it; the calculator always starts from its defaults.
type AppConfig struct {
	Theme        string   `json:"theme"` // "light", "dark", "system"
	PitchChoices []string `json:"pitch_choices"`
	ExportDir    string   `json:"export_dir"`
	ReportTitle  string   `json:"report_title"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Theme:        "system",
		PitchChoices: []string{DefaultPitch, "5"},
		ExportDir:    "",
		ReportTitle:  "Plate Deformation Report",
	}
}

// Sanitize fills in anything a hand-edited or older config file left out.
func (c *AppConfig) Sanitize() {
	defaults := DefaultAppConfig()
	switch c.Theme {
	case "light", "dark", "system":
	default:
		c.Theme = defaults.Theme
	}
	var pitches []string
	for _, p := range c.PitchChoices {
		if ParseValue(p, 0) > 0 {
			pitches = append(pitches, Normalize(p))
		}
	}
	if len(pitches) == 0 {
		pitches = defaults.PitchChoices
	}
	c.PitchChoices = pitches
	if c.ReportTitle == "" {
		c.ReportTitle = defaults.ReportTitle
	}
}
