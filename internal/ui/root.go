package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/cutline/internal/config"
	"github.com/ytget/cutline/internal/geom"
	"github.com/ytget/cutline/internal/model"
	"github.com/ytget/cutline/internal/playback"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	settings *config.Settings

	timeline  *model.Timeline
	mapper    *geom.Mapper
	view      *TimelineView
	toolbar   *Toolbar
	transport playback.Transport

	// overrides reapply on every theme preset switch
	overrides map[string]any
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, timeline *model.Timeline, transport playback.Transport, overrides map[string]any) *RootUI {
	settings := config.NewSettings(app)
	cfg := config.ThemeFor(settings.GetThemePreset(), overrides)

	ui := &RootUI{
		window:    window,
		app:       app,
		settings:  settings,
		timeline:  timeline,
		mapper:    geom.NewMapper(cfg.Layout),
		transport: transport,
		overrides: overrides,
	}

	ui.view = NewTimelineView(timeline, ui.mapper, cfg)
	ui.toolbar = NewToolbar(settings)

	// Restore the persisted zoom before the first frame is drawn
	ui.view.SetHZoom(HZoomFromSlider(ui.toolbar.HZoomValue()))
	ui.view.SetVZoom(VZoomFromSlider(ui.toolbar.VZoomValue()))

	ui.toolbar.SetCallbacks(
		ui.onPlayStop,
		ui.onStepBack,
		ui.onStepForward,
		ui.onHZoomChanged,
		ui.onVZoomChanged,
		ui.onShowSettings,
	)

	// Every clock tick runs on the event loop, serialized with drag handling
	ui.transport.SetDispatcher(func(fn func()) { fyne.Do(fn) })
	ui.transport.SetFrameCallback(func(int) { ui.view.Relayout() })

	log.Printf("RootUI initialized with %d tracks", len(timeline.Tracks()))

	ui.setupUI()
	return ui
}

// View returns the timeline surface, mainly for tests
func (ui *RootUI) View() *TimelineView {
	return ui.view
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	scroller := container.NewScroll(ui.view)

	content := container.NewBorder(
		ui.toolbar.Container(), // top
		nil,                    // bottom
		nil,                    // left
		nil,                    // right
		scroller,               // center
	)

	ui.window.SetContent(content)
}

// onPlayStop toggles playback
func (ui *RootUI) onPlayStop() {
	if ui.transport.IsPlaying() {
		ui.transport.Stop()
	} else {
		ui.transport.Start()
	}
	ui.toolbar.SetPlaying(ui.transport.IsPlaying())
}

// onStepBack nudges the playhead one frame back
func (ui *RootUI) onStepBack() {
	ui.view.StepFrame(-1)
}

// onStepForward nudges the playhead one frame forward
func (ui *RootUI) onStepForward() {
	ui.view.StepFrame(1)
}

// onHZoomChanged applies a horizontal zoom slider move and persists it
func (ui *RootUI) onHZoomChanged(value float64) {
	ui.view.SetHZoom(HZoomFromSlider(value))
	ui.settings.SetHZoomSlider(int(value))
}

// onVZoomChanged applies a vertical zoom slider move and persists it
func (ui *RootUI) onVZoomChanged(value float64) {
	ui.view.SetVZoom(VZoomFromSlider(value))
	ui.settings.SetVZoomSlider(int(value))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.onThemeChanged).Show()
}

// onThemeChanged reapplies the palette after a preset switch. Layout constants
// are fixed at startup; only colors change live.
func (ui *RootUI) onThemeChanged(preset string) {
	cfg := config.ThemeFor(preset, ui.overrides)
	ui.app.Settings().SetTheme(NewEditorTheme(cfg))
	ui.view.SetTheme(cfg)
	log.Printf("theme switched to %q", preset)
}
