package model

import "testing"

func TestThicknessTableVerbatim(t *testing.T) {
	want := map[string]float64{
		"1.14": 6.06,
		"1.7":  9.89,
		"2.28": 13.52,
		"2.54": 16.05,
		"2.84": 17.04,
		"3.94": 23.94,
		"0.95": 5.4,
	}
	table := DefaultThicknessTable()
	if len(table) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(table))
	}
	for k, v := range want {
		if got := table.K(k); got != v {
			t.Errorf("K(%s) = %v, want %v", k, got, v)
		}
		if !table.Known(k) {
			t.Errorf("expected %s to be known", k)
		}
	}
}

func TestThicknessTableFallback(t *testing.T) {
	table := DefaultThicknessTable()
	for _, in := range []string{"", "1.70", "abc", "5"} {
		if got := table.K(in); got != 6.06 {
			t.Errorf("K(%q) = %v, want fallback 6.06", in, got)
		}
		if table.Known(in) {
			t.Errorf("expected %q to be unknown", in)
		}
	}
	if got := table.K(" 1.7 "); got != 9.89 {
		t.Errorf("expected surrounding whitespace to be ignored, got %v", got)
	}
}

func TestThicknessesSorted(t *testing.T) {
	got := DefaultThicknessTable().Thicknesses()
	want := []string{"0.95", "1.14", "1.7", "2.28", "2.54", "2.84", "3.94"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
