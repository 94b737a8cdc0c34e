package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CounterTheme is a fixed dark theme; the system light/dark variant is ignored
type CounterTheme struct{}

// NewCounterTheme creates a new counter theme
func NewCounterTheme() fyne.Theme {
	return &CounterTheme{}
}

// Color returns theme colors
func (t *CounterTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return PlusColor
	case theme.ColorNameError:
		return MinusColor
	case theme.ColorNameBackground:
		return BackgroundColor
	case theme.ColorNameForeground, theme.ColorNameForegroundOnSuccess, theme.ColorNameForegroundOnError:
		return ForegroundColor
	case theme.ColorNamePressed:
		return PressedColor
	case theme.ColorNameHover:
		return HoverColor
	}

	// Use default dark colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *CounterTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CounterTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *CounterTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius:
		return 35 // rounded buttons
	case theme.SizeNameInputBorder:
		return 0
	}
	return theme.DefaultTheme().Size(name)
}

// buttonTheme enlarges text for the +1/-1 buttons only
type buttonTheme struct {
	fyne.Theme
}

func newButtonTheme(base fyne.Theme) fyne.Theme {
	return &buttonTheme{Theme: base}
}

// Size returns the base sizes with a large text size
func (t *buttonTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return ButtonTextSize
	}
	return t.Theme.Size(name)
}
