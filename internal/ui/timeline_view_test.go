package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/cutline/internal/config"
	"github.com/ytget/cutline/internal/geom"
	"github.com/ytget/cutline/internal/model"
)

// newTestView builds a view over a two-track timeline at 1.0 zoom
func newTestView(t *testing.T) (*TimelineView, *model.Timeline) {
	t.Helper()
	test.NewApp()

	timeline := model.NewTimeline()
	video := model.NewTrack("Video 1")
	video.AddClip(model.NewClip("A", 0, 50))
	video.AddClip(model.NewClip("B", 60, 40))
	audio := model.NewTrack("Audio 1")
	audio.AddClip(model.NewClip("VO", 10, 80))
	timeline.AddTrack(video)
	timeline.AddTrack(audio)

	cfg := config.ThemeFor(config.PresetDark, nil)
	mapper := geom.NewMapper(cfg.Layout)
	return NewTimelineView(timeline, mapper, cfg), timeline
}

// frameX projects a frame to pixels at default layout and 1.0 zoom
func frameX(frame float64) float32 {
	return 150 + float32(frame)*10
}

func TestTimelineViewSceneSize(t *testing.T) {
	view, timeline := newTestView(t)

	// End frame 100 projects well inside the minimum scene width
	if got := view.sceneSize.Width; got != MinSceneWidth {
		t.Errorf("scene width = %v, want minimum %v", got, MinSceneWidth)
	}

	wantHeight := view.mapper.SceneHeight(timeline.Tracks())
	if got := view.sceneSize.Height; got != wantHeight {
		t.Errorf("scene height = %v, want %v", got, wantHeight)
	}

	// A distant end frame widens the scene past the minimum
	timeline.SetEndFrame(500)
	view.Relayout()
	if got, want := view.sceneSize.Width, frameX(500)+SceneRightPadding; got != want {
		t.Errorf("scene width after end move = %v, want %v", got, want)
	}
}

func TestTimelineViewCreatesClipWidgets(t *testing.T) {
	view, timeline := newTestView(t)

	if got := len(view.clipWidgets); got != 3 {
		t.Fatalf("clip widget count = %d, want 3", got)
	}

	clip := timeline.Tracks()[0].Clips[1]
	cw := view.clipWidgets[clip.ID]
	if cw == nil {
		t.Fatalf("no widget for clip %s", clip.ID)
	}
	if got := cw.Position().X; got != frameX(60) {
		t.Errorf("clip widget X = %v, want %v", got, frameX(60))
	}
	if got := cw.Size().Width; got != view.mapper.ClipWidth(clip) {
		t.Errorf("clip widget width = %v, want %v", got, view.mapper.ClipWidth(clip))
	}
}

func TestTimelineViewSelection(t *testing.T) {
	view, timeline := newTestView(t)
	clip := timeline.Tracks()[0].Clips[0]

	if view.SelectedClipID() != "" {
		t.Fatalf("fresh view should have no selection")
	}

	cw := view.clipWidgets[clip.ID]
	cw.Tapped(&fyne.PointEvent{})
	if view.SelectedClipID() != clip.ID {
		t.Errorf("selection = %q, want %q", view.SelectedClipID(), clip.ID)
	}
	if !cw.Selected() {
		t.Errorf("tapped widget should report selected")
	}
}

func TestClipDragCommitsThroughResolver(t *testing.T) {
	view, timeline := newTestView(t)
	clip := timeline.Tracks()[0].Clips[0]
	cw := view.clipWidgets[clip.ID]

	// Drag clip A (duration 50) from 0 to raw frame 9: its end lands one
	// frame short of clip B's start at 60, so it snaps to 10
	cw.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: frameX(9) - frameX(0)}})
	cw.DragEnd()

	if clip.StartFrame != 10 {
		t.Errorf("StartFrame after snap drag = %d, want 10", clip.StartFrame)
	}
	if got := cw.Position().X; got != frameX(10) {
		t.Errorf("widget X after commit = %v, want %v", got, frameX(10))
	}
	if view.SelectedClipID() != clip.ID {
		t.Errorf("dragging should select the clip")
	}
}

func TestClipDragIgnoresVerticalMotion(t *testing.T) {
	view, timeline := newTestView(t)
	clip := timeline.Tracks()[1].Clips[0]
	cw := view.clipWidgets[clip.ID]
	wantY := cw.Position().Y

	cw.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 30, DY: -200}})
	if got := cw.Position().Y; got != wantY {
		t.Errorf("clip Y during drag = %v, want pinned %v", got, wantY)
	}
	cw.DragEnd()

	if got := cw.Position().Y; got != wantY {
		t.Errorf("clip Y after commit = %v, want %v", got, wantY)
	}
}

func TestPlayheadMarkerFollowsDrag(t *testing.T) {
	view, timeline := newTestView(t)

	view.playheadGrip.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: frameX(25) - frameX(0)}})
	view.playheadGrip.DragEnd()

	if got := timeline.PlayheadFrame(); got != 25 {
		t.Errorf("playhead after grip drag = %d, want 25", got)
	}
	if got := view.playheadLine.AnchorX(); got != frameX(25) {
		t.Errorf("playhead line anchor = %v, want %v", got, frameX(25))
	}
}

func TestEndMarkerDragClampsToMinimum(t *testing.T) {
	view, timeline := newTestView(t)

	// Furthest clip end is frame 100; dragging far left must clamp there
	view.endLine.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: frameX(5) - frameX(100)}})
	view.endLine.DragEnd()

	if got := timeline.EndFrame(); got != 100 {
		t.Errorf("end frame after under-drag = %d, want 100", got)
	}
	if got := view.endLine.AnchorX(); got != frameX(100) {
		t.Errorf("end line anchor = %v, want snapped back to %v", got, frameX(100))
	}
}

func TestStepFrameUsesRawSetter(t *testing.T) {
	view, timeline := newTestView(t)

	view.StepFrame(1)
	view.StepFrame(1)
	if got := timeline.PlayheadFrame(); got != 2 {
		t.Errorf("playhead after two steps = %d, want 2", got)
	}

	// Stepping back below zero is stored raw, same as scrub writes
	timeline.SetPlayheadFrame(0)
	view.StepFrame(-1)
	if got := timeline.PlayheadFrame(); got != -1 {
		t.Errorf("playhead after back step at zero = %d, want -1", got)
	}
}

func TestSetHZoomReprojectsClips(t *testing.T) {
	view, timeline := newTestView(t)
	clip := timeline.Tracks()[0].Clips[1]

	view.SetHZoom(2.0)

	cw := view.clipWidgets[clip.ID]
	want := float32(150 + 60*10*2)
	if got := cw.Position().X; got != want {
		t.Errorf("clip X at 2.0 zoom = %v, want %v", got, want)
	}
}

func TestSetThemeSwapsPalette(t *testing.T) {
	view, _ := newTestView(t)
	darkFill := view.Palette().ClipFill

	view.SetTheme(config.ThemeFor(config.PresetLight, nil))

	if view.Palette().ClipFill == darkFill {
		t.Errorf("palette should change after theme switch")
	}
}
