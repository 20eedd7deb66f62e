package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cutline/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onApply  func(preset string)

	presetSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onApply fires with the
// chosen preset name after a confirmed save.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onApply func(preset string)) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onApply:  onApply,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.presetSelect = widget.NewSelect(config.PresetNames(), nil)

	form := container.NewVBox(
		widget.NewLabel("Appearance"),
		widget.NewSeparator(),

		widget.NewLabel("Theme Preset:"),
		sd.presetSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(350, 200))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.presetSelect.SetSelected(sd.settings.GetThemePreset())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.presetSelect.Selected != "" {
		sd.settings.SetThemePreset(sd.presetSelect.Selected)
		if sd.onApply != nil {
			sd.onApply(sd.settings.GetThemePreset())
		}
	}
}
