package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestThemePresetSetting(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetThemePreset(); got != DefaultThemePreset {
		t.Errorf("Default theme preset = %s, expected %s", got, DefaultThemePreset)
	}

	settings.SetThemePreset(PresetLight)
	if got := settings.GetThemePreset(); got != PresetLight {
		t.Errorf("Theme preset = %s, expected %s", got, PresetLight)
	}

	// Unknown presets fall back to the default
	settings.SetThemePreset("solarized")
	if got := settings.GetThemePreset(); got != DefaultThemePreset {
		t.Errorf("Unknown preset stored %s, expected fallback to %s", got, DefaultThemePreset)
	}
}

func TestZoomSliderSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetHZoomSlider(); got != DefaultHZoomSlider {
		t.Errorf("Default H zoom slider = %d, expected %d", got, DefaultHZoomSlider)
	}
	if got := settings.GetVZoomSlider(); got != DefaultVZoomSlider {
		t.Errorf("Default V zoom slider = %d, expected %d", got, DefaultVZoomSlider)
	}

	settings.SetHZoomSlider(60)
	if got := settings.GetHZoomSlider(); got != 60 {
		t.Errorf("H zoom slider = %d, expected 60", got)
	}

	// Out-of-range values clamp to the toolbar scale
	settings.SetHZoomSlider(0)
	if got := settings.GetHZoomSlider(); got != MinZoomSlider {
		t.Errorf("H zoom slider = %d, expected clamp to %d", got, MinZoomSlider)
	}
	settings.SetVZoomSlider(500)
	if got := settings.GetVZoomSlider(); got != MaxZoomSlider {
		t.Errorf("V zoom slider = %d, expected clamp to %d", got, MaxZoomSlider)
	}
}
