package config

import "fmt"

// Layout key names accepted in override mappings
const (
	KeyLeftMargin         = "LEFT_MARGIN"
	KeyTopMargin          = "TOP_MARGIN"
	KeyBottomMargin       = "BOTTOM_MARGIN"
	KeyTrackSpacing       = "TRACK_SPACING"
	KeyBasePixelsPerFrame = "BASE_PIXELS_PER_FRAME"
	KeyDefaultTrackHeight = "DEFAULT_TRACK_HEIGHT"
)

// Color key names used by the palette and the rendering layer
const (
	ColorTimeLabelBG     = "timeLabel_bg"
	ColorTimeLabelText   = "timeLabel_text"
	ColorRulerBG         = "ruler_bg"
	ColorRulerTickMajor  = "ruler_tick_major"
	ColorRulerTickMinor  = "ruler_tick_minor"
	ColorPlayhead        = "playhead_color"
	ColorTrackHeaderBG   = "track_header_bg"
	ColorTrackHeaderText = "track_header_text"
	ColorTrackLaneBG1    = "track_lane_bg1"
	ColorTrackLaneBG2    = "track_lane_bg2"
	ColorTrackLaneBorder = "track_lane_border"
	ColorClipFill        = "clip_fill"
	ColorClipFillSel     = "clip_fill_selected"
	ColorClipBorder      = "clip_border"
	ColorEndLine         = "end_line_color"
	ColorBackground      = "background_color"
)

// Built-in preset names
const (
	PresetDark  = "dark"
	PresetLight = "light"
)

// Layout carries the pixel-space constants every geometry computation uses.
// Values are pixels at 1.0 zoom.
type Layout struct {
	LeftMargin         float32
	TopMargin          float32
	BottomMargin       float32
	TrackSpacing       float32
	BasePixelsPerFrame float32
	DefaultTrackHeight float32
}

// DefaultLayout returns the built-in layout constants
func DefaultLayout() Layout {
	return Layout{
		LeftMargin:         150,
		TopMargin:          30,
		BottomMargin:       20,
		TrackSpacing:       2,
		BasePixelsPerFrame: 10,
		DefaultTrackHeight: 60,
	}
}

// Theme is the immutable configuration object passed to every component that
// needs layout constants or colors. The core never interprets the palette; it
// is passed through to the rendering layer.
type Theme struct {
	Name   string
	Layout Layout
	Colors map[string]string
}

// presets holds the built-in color palettes
var presets = map[string]map[string]string{
	PresetDark: {
		ColorTimeLabelBG:     "#141414",
		ColorTimeLabelText:   "#FFFFFF",
		ColorRulerBG:         "#1E1E1E",
		ColorRulerTickMajor:  "#FFFFFF",
		ColorRulerTickMinor:  "#808080",
		ColorPlayhead:        "#FFA500",
		ColorTrackHeaderBG:   "#282828",
		ColorTrackHeaderText: "#FFFFFF",
		ColorTrackLaneBG1:    "#323232",
		ColorTrackLaneBG2:    "#3E3E3E",
		ColorTrackLaneBorder: "#505050",
		ColorClipFill:        "#6496C8",
		ColorClipFillSel:     "#96C8FF",
		ColorClipBorder:      "#000000",
		ColorEndLine:         "#C83232",
		ColorBackground:      "#111111",
	},
	PresetLight: {
		ColorTimeLabelBG:     "#F0F0F0",
		ColorTimeLabelText:   "#000000",
		ColorRulerBG:         "#E0E0E0",
		ColorRulerTickMajor:  "#000000",
		ColorRulerTickMinor:  "#808080",
		ColorPlayhead:        "#FF8C00",
		ColorTrackHeaderBG:   "#D0D0D0",
		ColorTrackHeaderText: "#000000",
		ColorTrackLaneBG1:    "#E8E8E8",
		ColorTrackLaneBG2:    "#F0F0F0",
		ColorTrackLaneBorder: "#A0A0A0",
		ColorClipFill:        "#90CAF9",
		ColorClipFillSel:     "#64B5F6",
		ColorClipBorder:      "#000000",
		ColorEndLine:         "#E53935",
		ColorBackground:      "#FFFFFF",
	},
}

// PresetNames returns the built-in preset names
func PresetNames() []string {
	return []string{PresetDark, PresetLight}
}

// ThemeFor builds a complete theme. An unrecognized preset name falls back to
// "dark". Precedence: explicit override keys > preset keys > layout defaults.
// Overrides may carry both color keys and layout-constant keys.
func ThemeFor(preset string, overrides map[string]any) Theme {
	base, ok := presets[preset]
	if !ok {
		preset = PresetDark
		base = presets[PresetDark]
	}

	theme := Theme{
		Name:   preset,
		Layout: DefaultLayout(),
		Colors: make(map[string]string, len(base)),
	}
	for key, value := range base {
		theme.Colors[key] = value
	}

	for key, value := range overrides {
		if theme.applyLayoutOverride(key, value) {
			continue
		}
		theme.Colors[key] = fmt.Sprint(value)
	}
	return theme
}

// Color returns the named color, falling back to the fallback key when the
// palette has no entry for it
func (t Theme) Color(key, fallback string) string {
	if value, ok := t.Colors[key]; ok {
		return value
	}
	return t.Colors[fallback]
}

// applyLayoutOverride sets a layout constant when key names one. Returns
// false for palette keys.
func (t *Theme) applyLayoutOverride(key string, value any) bool {
	number, ok := toFloat32(value)
	if !ok {
		return false
	}
	switch key {
	case KeyLeftMargin:
		t.Layout.LeftMargin = number
	case KeyTopMargin:
		t.Layout.TopMargin = number
	case KeyBottomMargin:
		t.Layout.BottomMargin = number
	case KeyTrackSpacing:
		t.Layout.TrackSpacing = number
	case KeyBasePixelsPerFrame:
		t.Layout.BasePixelsPerFrame = number
	case KeyDefaultTrackHeight:
		t.Layout.DefaultTrackHeight = number
	default:
		return false
	}
	return true
}

// toFloat32 converts the numeric types a YAML or literal override map can
// carry
func toFloat32(value any) (float32, bool) {
	switch v := value.(type) {
	case int:
		return float32(v), true
	case int64:
		return float32(v), true
	case float32:
		return v, true
	case float64:
		return float32(v), true
	}
	return 0, false
}
