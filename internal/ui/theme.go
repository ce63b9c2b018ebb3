package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// FlexoCalcTheme wraps the default Fyne theme with a fixed light or dark
// variant (or the system one) and slightly larger text for the form.
type FlexoCalcTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	system  bool
}

// NewFlexoCalcTheme builds the theme for a config theme name
// ("system", "light" or "dark").
func NewFlexoCalcTheme(name string) *FlexoCalcTheme {
	t := &FlexoCalcTheme{base: theme.DefaultTheme()}
	t.SetVariantName(name)
	return t
}

// SetVariantName switches the variant. Unknown names follow the system.
func (t *FlexoCalcTheme) SetVariantName(name string) {
	t.variant, t.system = variantFor(name)
}

func variantFor(name string) (fyne.ThemeVariant, bool) {
	switch name {
	case "light":
		return theme.VariantLight, false
	case "dark":
		return theme.VariantDark, false
	default:
		return theme.VariantLight, true
	}
}

func (t *FlexoCalcTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if !t.system {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

func (t *FlexoCalcTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *FlexoCalcTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *FlexoCalcTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNamePadding:
		return 4
	default:
		return t.base.Size(name)
	}
}
