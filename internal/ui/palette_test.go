package ui

import (
	"image/color"
	"testing"

	"github.com/ytget/cutline/internal/config"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  color.RGBA
	}{
		{"six digit", "#6496C8", color.RGBA{R: 0x64, G: 0x96, B: 0xC8, A: 255}},
		{"three digit", "#F0A", color.RGBA{R: 0xFF, G: 0x00, B: 0xAA, A: 255}},
		{"uppercase", "#FFA500", color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 255}},
		{"lowercase", "#ffa500", color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 255}},
		{"empty falls back to black", "", color.RGBA{A: 255}},
		{"garbage falls back to black", "not-a-color", color.RGBA{A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseHexColor(tt.value)
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNewPaletteUsesThemeColors(t *testing.T) {
	cfg := config.ThemeFor(config.PresetDark, nil)
	palette := NewPalette(cfg)

	if palette.ClipFill != (color.RGBA{R: 0x64, G: 0x96, B: 0xC8, A: 255}) {
		t.Errorf("ClipFill = %v, want dark preset clip fill", palette.ClipFill)
	}
	if palette.Playhead != (color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 255}) {
		t.Errorf("Playhead = %v, want dark preset playhead", palette.Playhead)
	}
}

func TestNewPaletteAppliesOverrides(t *testing.T) {
	cfg := config.ThemeFor(config.PresetDark, map[string]any{
		config.ColorClipFill: "#112233",
	})
	palette := NewPalette(cfg)

	if palette.ClipFill != (color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 255}) {
		t.Errorf("ClipFill = %v, want overridden color", palette.ClipFill)
	}
	if palette.ClipFillSel == (color.RGBA{A: 255}) {
		t.Errorf("ClipFillSel should keep its preset value, got black")
	}
}
