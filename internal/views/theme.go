package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CalculatorTheme wraps the default Fyne theme and pins the light/dark
// variant chosen by the user, ignoring the system preference.
type CalculatorTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// NewCalculatorTheme creates a theme with the light or dark variant
func NewCalculatorTheme(light bool) *CalculatorTheme {
	return &CalculatorTheme{
		base:    theme.DefaultTheme(),
		variant: variantFor(light),
	}
}

func variantFor(light bool) fyne.ThemeVariant {
	if light {
		return theme.VariantLight
	}
	return theme.VariantDark
}

// Variant returns the pinned variant
func (t *CalculatorTheme) Variant() fyne.ThemeVariant {
	return t.variant
}

func (t *CalculatorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.variant)
}

func (t *CalculatorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *CalculatorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *CalculatorTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
