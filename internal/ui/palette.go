package ui

import (
	"image/color"
	"log"

	"github.com/ytget/cutline/internal/config"
)

// Palette is the theme's color table parsed into concrete colors for the
// canvas layer
type Palette struct {
	TimeLabelBG     color.Color
	TimeLabelText   color.Color
	RulerBG         color.Color
	RulerTickMajor  color.Color
	RulerTickMinor  color.Color
	Playhead        color.Color
	TrackHeaderBG   color.Color
	TrackHeaderText color.Color
	TrackLaneBG1    color.Color
	TrackLaneBG2    color.Color
	TrackLaneBorder color.Color
	ClipFill        color.Color
	ClipFillSel     color.Color
	ClipBorder      color.Color
	EndLine         color.Color
	Background      color.Color
}

// NewPalette parses the theme's hex colors. Unparseable values fall back to
// opaque black with a warning, never an error.
func NewPalette(theme config.Theme) Palette {
	pick := func(key string) color.Color {
		return ParseHexColor(theme.Colors[key])
	}
	return Palette{
		TimeLabelBG:     pick(config.ColorTimeLabelBG),
		TimeLabelText:   pick(config.ColorTimeLabelText),
		RulerBG:         pick(config.ColorRulerBG),
		RulerTickMajor:  pick(config.ColorRulerTickMajor),
		RulerTickMinor:  pick(config.ColorRulerTickMinor),
		Playhead:        pick(config.ColorPlayhead),
		TrackHeaderBG:   pick(config.ColorTrackHeaderBG),
		TrackHeaderText: pick(config.ColorTrackHeaderText),
		TrackLaneBG1:    pick(config.ColorTrackLaneBG1),
		TrackLaneBG2:    pick(config.ColorTrackLaneBG2),
		TrackLaneBorder: pick(config.ColorTrackLaneBorder),
		ClipFill:        pick(config.ColorClipFill),
		ClipFillSel:     pick(config.ColorClipFillSel),
		ClipBorder:      pick(config.ColorClipBorder),
		EndLine:         pick(config.ColorEndLine),
		Background:      pick(config.ColorBackground),
	}
}

// ParseHexColor parses a #RGB or #RRGGBB hex string into an opaque color
func ParseHexColor(value string) color.Color {
	rgba := color.RGBA{A: 255}
	switch len(value) {
	case 7: // #RRGGBB
		rgba.R = hexByte(value[1], value[2])
		rgba.G = hexByte(value[3], value[4])
		rgba.B = hexByte(value[5], value[6])
	case 4: // #RGB
		rgba.R = hexByte(value[1], value[1])
		rgba.G = hexByte(value[2], value[2])
		rgba.B = hexByte(value[3], value[3])
	default:
		log.Printf("Warning: unparseable color %q, using black", value)
	}
	if len(value) > 0 && value[0] != '#' {
		log.Printf("Warning: color %q missing # prefix", value)
	}
	return rgba
}

// hexByte combines two hex digits into a byte; invalid digits read as 0
func hexByte(hi, lo byte) uint8 {
	return hexDigit(hi)<<4 | hexDigit(lo)
}

// hexDigit converts one hex character
func hexDigit(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
