package model

import "testing"

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()

	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if len(cfg.PitchChoices) != 2 || cfg.PitchChoices[0] != DefaultPitch {
		t.Errorf("expected pitch choices [%s 5], got %v", DefaultPitch, cfg.PitchChoices)
	}
	if cfg.ReportTitle == "" {
		t.Error("ReportTitle should not be empty")
	}
}

func TestSanitizeFillsDefaults(t *testing.T) {
	cfg := AppConfig{Theme: "purple", PitchChoices: []string{"abc", "-1", ""}}
	cfg.Sanitize()

	if cfg.Theme != "system" {
		t.Errorf("expected invalid theme to reset to system, got %s", cfg.Theme)
	}
	if len(cfg.PitchChoices) != 2 {
		t.Errorf("expected default pitch choices, got %v", cfg.PitchChoices)
	}
	if cfg.ReportTitle != DefaultAppConfig().ReportTitle {
		t.Errorf("expected default report title, got %q", cfg.ReportTitle)
	}
}

func TestSanitizeNormalizesPitches(t *testing.T) {
	cfg := AppConfig{Theme: "dark", PitchChoices: []string{"05", "3.175", "0", "6.35"}, ReportTitle: "Mine"}
	cfg.Sanitize()

	want := []string{"5", "3.175", "6.35"}
	if len(cfg.PitchChoices) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.PitchChoices)
	}
	for i := range want {
		if cfg.PitchChoices[i] != want[i] {
			t.Errorf("pitch %d: expected %s, got %s", i, want[i], cfg.PitchChoices[i])
		}
	}
	if cfg.Theme != "dark" || cfg.ReportTitle != "Mine" {
		t.Errorf("valid values should be kept, got theme=%s title=%s", cfg.Theme, cfg.ReportTitle)
	}
}
