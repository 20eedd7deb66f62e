package config

import "fyne.io/fyne/v2"

// Settings keys for Fyne preferences
const (
	KeyThemePreset = "theme_preset"
	KeyHZoomSlider = "h_zoom_slider"
	KeyVZoomSlider = "v_zoom_slider"
)

// Default values
const (
	DefaultThemePreset = PresetDark

	// Slider positions on the 1..100 toolbar scale
	DefaultHZoomSlider = 1
	DefaultVZoomSlider = 50

	MinZoomSlider = 1
	MaxZoomSlider = 100
)

// Settings manages persisted application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetThemePreset returns the configured theme preset name
func (s *Settings) GetThemePreset() string {
	preset := s.app.Preferences().String(KeyThemePreset)
	if preset == "" {
		s.SetThemePreset(DefaultThemePreset)
		return DefaultThemePreset
	}
	return preset
}

// SetThemePreset sets the theme preset name
func (s *Settings) SetThemePreset(preset string) {
	if _, ok := presets[preset]; !ok {
		preset = DefaultThemePreset
	}
	s.app.Preferences().SetString(KeyThemePreset, preset)
}

// GetHZoomSlider returns the persisted horizontal zoom slider position
func (s *Settings) GetHZoomSlider() int {
	return s.clampSlider(s.app.Preferences().IntWithFallback(KeyHZoomSlider, DefaultHZoomSlider))
}

// SetHZoomSlider persists the horizontal zoom slider position
func (s *Settings) SetHZoomSlider(value int) {
	s.app.Preferences().SetInt(KeyHZoomSlider, s.clampSlider(value))
}

// GetVZoomSlider returns the persisted vertical zoom slider position
func (s *Settings) GetVZoomSlider() int {
	return s.clampSlider(s.app.Preferences().IntWithFallback(KeyVZoomSlider, DefaultVZoomSlider))
}

// SetVZoomSlider persists the vertical zoom slider position
func (s *Settings) SetVZoomSlider(value int) {
	s.app.Preferences().SetInt(KeyVZoomSlider, s.clampSlider(value))
}

// clampSlider keeps slider positions on the toolbar scale
func (s *Settings) clampSlider(value int) int {
	if value < MinZoomSlider {
		return MinZoomSlider
	}
	if value > MaxZoomSlider {
		return MaxZoomSlider
	}
	return value
}
