// Package ui provides the JigCut application UI components.
//
// This file defines a compact Fyne theme with a selectable light/dark variant.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// JigCutTheme wraps the default Fyne theme with compact sizing overrides
// and an optional fixed light/dark variant.
type JigCutTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	fixed   bool // false follows the system variant
}

// NewJigCutTheme creates a JigCutTheme that follows the system variant.
func NewJigCutTheme() *JigCutTheme {
	return &JigCutTheme{base: theme.DefaultTheme()}
}

// NewJigCutThemeWithVariant creates a JigCutTheme with a specific light/dark variant.
func NewJigCutThemeWithVariant(variant fyne.ThemeVariant) *JigCutTheme {
	return &JigCutTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
		fixed:   true,
	}
}

// SetVariant fixes the theme to a light or dark variant.
func (t *JigCutTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
	t.fixed = true
}

// FollowSystem makes the theme use whatever variant the system asks for.
func (t *JigCutTheme) FollowSystem() {
	t.fixed = false
}

// SetByName applies a config theme name: "light", "dark" or "system".
func (t *JigCutTheme) SetByName(name string) {
	switch name {
	case "light":
		t.SetVariant(theme.VariantLight)
	case "dark":
		t.SetVariant(theme.VariantDark)
	default:
		t.FollowSystem()
	}
}

// Color delegates to the base theme with the stored variant.
func (t *JigCutTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.fixed {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *JigCutTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *JigCutTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *JigCutTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
