package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme keeps the default look and only adjusts text size and the accent color
type Theme struct {
	textSize float32
}

// NewTheme creates a theme with the given body text size
func NewTheme(textSize float32) fyne.Theme {
	return &Theme{textSize: textSize}
}

// Color returns theme colors
func (t *Theme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	}
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size scales text sizes relative to the configured body size
func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return t.textSize
	case theme.SizeNameHeadingText:
		return t.textSize + 4
	case theme.SizeNameSubHeadingText:
		return t.textSize + 2
	case theme.SizeNameCaptionText:
		return t.textSize - 2
	}
	return theme.DefaultTheme().Size(name)
}
