package engine

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/FlexoCalc/internal/model"
)

func parse(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err, "expected a number, got %q", s)
	return v
}

func TestNewDefaults(t *testing.T) {
	e := New()

	assert.Equal(t, "3.175", e.Value(model.Pitch))
	assert.Equal(t, "1.7", e.Value(model.Thickness))
	assert.Equal(t, "", e.Value(model.GearCount))
	assert.Equal(t, "", e.Value(model.Girth))
	assert.Equal(t, "", e.Value(model.DeformationRatio))
	assert.Equal(t, model.DerivingGirthFromGears, e.GirthMode())
	assert.Equal(t, model.DerivingAfterFromBefore, e.DeformMode())
}

func TestEditGearCountDerivesGirth(t *testing.T) {
	e := New()
	e.Set(model.GearCount, "10")
	e.OnEdit(model.GearCount)

	assert.Equal(t, "31.75", e.Value(model.Girth))
	assert.InDelta(t, 31.75, parse(t, e.Value(model.Girth)), 1e-9)
	assert.Equal(t, model.DerivingGirthFromGears, e.GirthMode())

	// thickness 1.7 -> K = 9.89
	assert.InDelta(t, (1-9.89/31.75)*100, parse(t, e.Value(model.DeformationRatio)), 1e-4)
}

func TestDeformationRatioUsesThicknessConstant(t *testing.T) {
	e := New()
	e.Input(model.GearCount, "10")
	e.Set(model.Thickness, "1.14")
	e.OnEdit(model.Thickness)

	ratio := parse(t, e.Value(model.DeformationRatio))
	assert.InDelta(t, 80.9, ratio, 0.05)
	assert.InDelta(t, (1-6.06/31.75)*100, ratio, 1e-4)
}

func TestUnknownThicknessFallsBack(t *testing.T) {
	e := New()
	e.Input(model.GearCount, "10")
	e.Set(model.Thickness, "9.99")
	e.OnEdit(model.Thickness)

	assert.InDelta(t, (1-6.06/31.75)*100, parse(t, e.Value(model.DeformationRatio)), 1e-4)
}

func TestEditGearCountZeroBlanksGirth(t *testing.T) {
	e := New()
	e.Input(model.GearCount, "10")
	require.NotEmpty(t, e.Value(model.Girth))

	e.Input(model.GearCount, "0")
	assert.Equal(t, "", e.Value(model.Girth))
	assert.Equal(t, "", e.Value(model.DeformationRatio))
}

func TestEditGirthZeroBlanksGearsAndRatio(t *testing.T) {
	e := New()
	e.Input(model.GearCount, "10")

	e.Set(model.Girth, "0")
	e.OnEdit(model.Girth)

	assert.Equal(t, model.DerivingGearsFromGirth, e.GirthMode())
	assert.Equal(t, "", e.Value(model.GearCount))
	assert.Equal(t, "", e.Value(model.DeformationRatio))
}

func TestEditGirthDerivesGears(t *testing.T) {
	e := New()
	e.Input(model.Girth, "63.5")

	assert.Equal(t, model.DerivingGearsFromGirth, e.GirthMode())
	assert.InDelta(t, 20.0, parse(t, e.Value(model.GearCount)), 1e-4)
	assert.InDelta(t, (1-9.89/63.5)*100, parse(t, e.Value(model.DeformationRatio)), 1e-4)
}

func TestEditPitchWhileDerivingGears(t *testing.T) {
	e := New()
	e.Input(model.Girth, "63.5")
	ratioBefore := e.Value(model.DeformationRatio)

	e.Set(model.Pitch, "5")
	e.OnEdit(model.Pitch)

	assert.Equal(t, "63.5", e.Value(model.Girth), "girth must stay as entered")
	assert.InDelta(t, 12.7, parse(t, e.Value(model.GearCount)), 1e-4)
	assert.Equal(t, ratioBefore, e.Value(model.DeformationRatio))
}

func TestEditPitchWhileDerivingGirth(t *testing.T) {
	e := New()
	e.Input(model.GearCount, "10")

	e.Input(model.Pitch, "5")

	assert.Equal(t, "10", e.Value(model.GearCount))
	assert.Equal(t, "50", e.Value(model.Girth))
	assert.InDelta(t, (1-9.89/50)*100, parse(t, e.Value(model.DeformationRatio)), 1e-4)
}

func TestBlankPitchUsesDefaultPitch(t *testing.T) {
	e := New()
	e.Set(model.Pitch, "")
	e.Input(model.GearCount, "10")

	assert.Equal(t, "31.75", e.Value(model.Girth))
}

func TestZeroPitchBlanksGears(t *testing.T) {
	e := New()
	e.Input(model.Girth, "63.5")
	e.Input(model.Pitch, "0")

	assert.Equal(t, "", e.Value(model.GearCount))
	assert.Equal(t, "63.5", e.Value(model.Girth))
}

func TestEditBeforeDerivesAfter(t *testing.T) {
	e := New()
	e.Set(model.DeformationRatio, "80.9")

	e.Input(model.DimensionBefore, "100")
	assert.Equal(t, model.DerivingAfterFromBefore, e.DeformMode())
	assert.InDelta(t, 80.9, parse(t, e.Value(model.DimensionAfter)), 1e-4)

	e.Input(model.DimensionAfter, "50")
	assert.Equal(t, model.DerivingBeforeFromAfter, e.DeformMode())
	assert.Equal(t, "50", e.Value(model.DimensionAfter))
	assert.InDelta(t, 61.8, parse(t, e.Value(model.DimensionBefore)), 0.01)
}

func TestZeroDrivingDimensionBlanksOtherSide(t *testing.T) {
	e := New()
	e.Set(model.DeformationRatio, "80")
	e.Input(model.DimensionBefore, "100")
	require.Equal(t, "80", e.Value(model.DimensionAfter))

	e.Input(model.DimensionBefore, "0")
	assert.Equal(t, "", e.Value(model.DimensionAfter))

	e.Input(model.DimensionAfter, "")
	assert.Equal(t, "", e.Value(model.DimensionBefore))
}

func TestBlankRatioProjectsUnchanged(t *testing.T) {
	e := New()
	e.Input(model.DimensionBefore, "42")
	assert.Equal(t, "42", e.Value(model.DimensionAfter))
}

func TestZeroRatioRendersBlank(t *testing.T) {
	e := New()
	e.Set(model.DeformationRatio, "0")
	e.Input(model.DimensionAfter, "50")
	assert.Equal(t, "", e.Value(model.DimensionBefore))
}

func TestRatioChangeResyncsDimensions(t *testing.T) {
	e := New()
	e.Input(model.GearCount, "100")
	e.Input(model.DimensionBefore, "200")
	afterOld := parse(t, e.Value(model.DimensionAfter))

	e.Set(model.Thickness, "3.94")
	e.OnEdit(model.Thickness)

	ratio := parse(t, e.Value(model.DeformationRatio))
	afterNew := parse(t, e.Value(model.DimensionAfter))
	assert.NotEqual(t, afterOld, afterNew)
	assert.InDelta(t, 200*ratio/100, afterNew, 1e-3)
	assert.Equal(t, "200", e.Value(model.DimensionBefore))
}

func TestRatioChangeResyncsBeforeWhenAfterIsAuthoritative(t *testing.T) {
	e := New()
	e.Input(model.GearCount, "100")
	e.Input(model.DimensionAfter, "150")

	e.Input(model.GearCount, "120")

	ratio := parse(t, e.Value(model.DeformationRatio))
	assert.Equal(t, "150", e.Value(model.DimensionAfter))
	assert.InDelta(t, 150/ratio*100, parse(t, e.Value(model.DimensionBefore)), 1e-3)
}

func TestBeforeAfterRoundTrip(t *testing.T) {
	cases := []struct {
		before, ratio string
	}{
		{"100", "80.9"},
		{"12.5", "96.88"},
		{"0.3", "50"},
		{"-40", "75.25"},
		{"2540", "99.1"},
	}
	for _, c := range cases {
		e := New()
		e.Set(model.DeformationRatio, c.ratio)
		e.Input(model.DimensionBefore, c.before)
		after := e.Value(model.DimensionAfter)
		require.NotEmpty(t, after)

		e.Input(model.DimensionAfter, after)
		want := parse(t, c.before)
		got := parse(t, e.Value(model.DimensionBefore))
		assert.InEpsilon(t, want, got, 1e-5, "before=%s ratio=%s", c.before, c.ratio)
	}
}

func TestOnEditLabel(t *testing.T) {
	e := New()
	e.Set(model.GearCount, "10")
	e.OnEditLabel("Gear Count")
	assert.Equal(t, "31.75", e.Value(model.Girth))

	e.Set(model.Girth, "63.5")
	e.OnEditLabel("girth")
	assert.Equal(t, model.DerivingGearsFromGirth, e.GirthMode())
}

func TestOnEditUnknownLabelOnlyResyncs(t *testing.T) {
	e := New()
	e.Input(model.GearCount, "10")
	e.Input(model.DimensionBefore, "100")
	before := e.Snapshot()

	e.Set(model.DimensionBefore, "200")
	e.OnEditLabel("no such field")

	after := e.Snapshot()
	assert.Equal(t, before.Girth, after.Girth)
	assert.Equal(t, before.DeformationRatio, after.DeformationRatio)
	assert.Equal(t, model.DerivingAfterFromBefore, after.DeformMode)
	assert.InDelta(t, 200*parse(t, after.DeformationRatio)/100, parse(t, after.DimensionAfter), 1e-3)
}

func TestEditModuleCountChangesNothingElse(t *testing.T) {
	e := New()
	e.Input(model.GearCount, "10")
	snap := e.Snapshot()

	e.Input(model.ModuleCount, "4")

	after := e.Snapshot()
	assert.Equal(t, "4", after.ModuleCount)
	after.ModuleCount = snap.ModuleCount
	assert.Equal(t, snap, after)
}

func TestInputNormalizes(t *testing.T) {
	e := New()
	got := e.Input(model.GearCount, " 0010 ")
	assert.Equal(t, "10", got)
	assert.Equal(t, "10", e.Value(model.GearCount))
	assert.Equal(t, "31.75", e.Value(model.Girth))
}
