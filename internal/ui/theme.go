package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/cutline/internal/config"
)

// EditorTheme adapts the timeline palette onto the stock Fyne widgets so the
// toolbar and dialogs match the canvas
type EditorTheme struct {
	palette Palette
	variant fyne.ThemeVariant
}

// NewEditorTheme creates a Fyne theme from the timeline theme
func NewEditorTheme(cfg config.Theme) fyne.Theme {
	variant := theme.VariantDark
	if cfg.Name == config.PresetLight {
		variant = theme.VariantLight
	}
	return &EditorTheme{palette: NewPalette(cfg), variant: variant}
}

// Color returns theme colors
func (t *EditorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return t.palette.Background
	case theme.ColorNameForeground:
		return t.palette.TimeLabelText
	case theme.ColorNamePrimary:
		return t.palette.Playhead
	case theme.ColorNameButton:
		return t.palette.TrackHeaderBG
	case theme.ColorNameInputBackground:
		return t.palette.TimeLabelBG
	}

	// Use default colors for everything else, pinned to our variant
	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *EditorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *EditorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments for a dense editor
// surface
func (t *EditorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameScrollBar:
		return 12
	}
	return theme.DefaultTheme().Size(name)
}
