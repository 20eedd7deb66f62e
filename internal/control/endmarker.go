package control

import (
	"github.com/ytget/cutline/internal/geom"
	"github.com/ytget/cutline/internal/model"
)

// EndMarkerController maps a horizontal-only marker drag to the timeline end
// frame, floor-clamped to the furthest clip end. Like the playhead it fires
// live on every position change.
type EndMarkerController struct {
	timeline *model.Timeline
	mapper   *geom.Mapper
}

// NewEndMarkerController creates an end marker controller
func NewEndMarkerController(timeline *model.Timeline, mapper *geom.Mapper) *EndMarkerController {
	return &EndMarkerController{timeline: timeline, mapper: mapper}
}

// Drag accepts the marker's current pixel X, stores the resulting end frame,
// and returns the marker X to display. When the pointer is below the minimum
// end frame the clamped frame is re-projected to pixels so the marker
// visually snaps back to the floor.
func (ec *EndMarkerController) Drag(x float32) float32 {
	frame := ec.mapper.XToFrame(x)
	if minEnd := float64(ec.timeline.MinimumEndFrame()); frame < minEnd {
		frame = minEnd
		x = ec.mapper.FrameToX(frame)
	}
	ec.timeline.SetEndFrame(frame)
	return x
}

// X returns the pixel position of the committed end frame
func (ec *EndMarkerController) X() float32 {
	return ec.mapper.FrameToX(float64(ec.timeline.EndFrame()))
}
