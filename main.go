package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/cutline/internal/config"
	"github.com/ytget/cutline/internal/model"
	"github.com/ytget/cutline/internal/playback"
	"github.com/ytget/cutline/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.cutline"
	AppName = "Cutline"

	// ThemeOverridesFile is looked up in the working directory; a missing
	// file simply means no overrides
	ThemeOverridesFile = "cutline-theme.yaml"

	WindowWidth  = 1200
	WindowHeight = 500
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	// Optional per-user theme overrides on top of the chosen preset
	overrides, err := config.LoadThemeOverrides(ThemeOverridesFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("theme overrides ignored: %v", err)
		}
		overrides = nil
	}

	settings := config.NewSettings(myApp)
	cfg := config.ThemeFor(settings.GetThemePreset(), overrides)
	myApp.Settings().SetTheme(ui.NewEditorTheme(cfg))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	timeline := buildDemoTimeline()
	clock := playback.NewClock(timeline)

	ui.NewRootUI(myWindow, myApp, timeline, clock, overrides)

	myWindow.ShowAndRun()

	clock.Stop()
}

// buildDemoTimeline seeds the editor with a small editing session
func buildDemoTimeline() *model.Timeline {
	timeline := model.NewTimeline()

	video1 := model.NewTrack("Video 1")
	video1.AddClip(model.NewClip("Intro", 0, 48))
	video1.AddClip(model.NewClip("Interview", 72, 120))

	video2 := model.NewTrack("Video 2")
	video2.AddClip(model.NewClip("B-Roll", 24, 60))

	audio1 := model.NewTrack("Audio 1")
	audio1.AddClip(model.NewClip("Dialogue", 0, 192))

	audio2 := model.NewTrack("Audio 2")
	audio2.AddClip(model.NewClip("Music", 48, 96))

	timeline.AddTrack(video1)
	timeline.AddTrack(video2)
	timeline.AddTrack(audio1)
	timeline.AddTrack(audio2)
	timeline.ResetEndFrame()

	return timeline
}
