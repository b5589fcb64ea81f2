package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// LookupTheme enlarges heading text so results read like the printed table
// and keeps everything else on the default theme.
type LookupTheme struct{}

// NewLookupTheme creates the application theme
func NewLookupTheme() fyne.Theme {
	return &LookupTheme{}
}

// Color returns theme colors
func (t *LookupTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for the lookup button
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameSeparator:
		if variant == theme.VariantDark {
			return color.RGBA{R: 66, G: 66, B: 66, A: 255}
		}
		return color.RGBA{R: 224, G: 224, B: 224, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *LookupTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *LookupTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *LookupTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 20 // table header cells
	case theme.SizeNameHeadingText:
		return 24 // status line
	}

	return theme.DefaultTheme().Size(name)
}
