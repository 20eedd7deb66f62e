package control

import (
	"testing"

	"github.com/ytget/cutline/internal/config"
	"github.com/ytget/cutline/internal/geom"
	"github.com/ytget/cutline/internal/model"
)

func newTestScene() (*model.Timeline, *geom.Mapper) {
	tl := model.NewTimeline()
	track := model.NewTrack("Video 1")
	track.AddClip(model.NewClip("Main", 0, 200))
	tl.AddTrack(track)
	return tl, geom.NewMapper(config.DefaultLayout())
}

func TestPlayheadDragFollowsPointer(t *testing.T) {
	tl, m := newTestScene()
	pc := NewPlayheadController(tl, m)

	x := pc.Drag(frameX(42))
	if x != frameX(42) {
		t.Errorf("Drag() returned %v, expected the pointer X %v", x, frameX(42))
	}
	if got := tl.PlayheadFrame(); got != 42 {
		t.Errorf("Playhead frame = %d, expected 42", got)
	}
}

func TestPlayheadDragClampsNegative(t *testing.T) {
	tl, m := newTestScene()
	pc := NewPlayheadController(tl, m)

	x := pc.Drag(frameX(-10))
	if x != frameX(0) {
		t.Errorf("Drag() left of the margin returned %v, expected pin to %v", x, frameX(0))
	}
	if got := tl.PlayheadFrame(); got != 0 {
		t.Errorf("Playhead frame = %d, expected clamp to 0", got)
	}
}

func TestPlayheadDragAllowsPastEnd(t *testing.T) {
	tl, m := newTestScene()
	pc := NewPlayheadController(tl, m)

	pc.Drag(frameX(100000))
	if got := tl.PlayheadFrame(); got != 100000 {
		t.Errorf("Manual scrub past end stored %d, expected 100000", got)
	}
}

func TestEndMarkerDragAboveMinimum(t *testing.T) {
	tl, m := newTestScene()
	ec := NewEndMarkerController(tl, m)

	x := ec.Drag(frameX(300))
	if x != frameX(300) {
		t.Errorf("Drag() returned %v, expected the pointer X %v", x, frameX(300))
	}
	if got := tl.EndFrame(); got != 300 {
		t.Errorf("End frame = %d, expected 300", got)
	}
}

func TestEndMarkerDragSnapsBackToFloor(t *testing.T) {
	// The furthest clip ends at 200; dragging below that both clamps the
	// stored frame and re-projects the marker onto the floor.
	tl, m := newTestScene()
	ec := NewEndMarkerController(tl, m)

	x := ec.Drag(frameX(150))
	if x != frameX(200) {
		t.Errorf("Drag() below minimum returned %v, expected snap back to %v", x, frameX(200))
	}
	if got := tl.EndFrame(); got != 200 {
		t.Errorf("End frame = %d, expected clamp to 200", got)
	}
}

func TestControllerX(t *testing.T) {
	tl, m := newTestScene()
	tl.SetPlayheadFrame(30)
	tl.SetEndFrame(250)

	if got := NewPlayheadController(tl, m).X(); got != frameX(30) {
		t.Errorf("PlayheadController.X() = %v, expected %v", got, frameX(30))
	}
	if got := NewEndMarkerController(tl, m).X(); got != frameX(250) {
		t.Errorf("EndMarkerController.X() = %v, expected %v", got, frameX(250))
	}
}
