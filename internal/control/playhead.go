package control

import (
	"github.com/ytget/cutline/internal/geom"
	"github.com/ytget/cutline/internal/model"
)

// PlayheadController maps a horizontal-only marker drag to the playhead
// frame. It fires on every position change during a drag and once more on
// release, so scrubbing gives live feedback.
type PlayheadController struct {
	timeline *model.Timeline
	mapper   *geom.Mapper
}

// NewPlayheadController creates a playhead controller
func NewPlayheadController(timeline *model.Timeline, mapper *geom.Mapper) *PlayheadController {
	return &PlayheadController{timeline: timeline, mapper: mapper}
}

// Drag accepts the marker's current pixel X, stores the resulting frame
// clamped to non-negative, and returns the marker X to display. The marker
// follows the pointer unless the clamp applied, in which case it pins to
// frame 0. No upper clamp: scrubbing past the end frame is allowed.
func (pc *PlayheadController) Drag(x float32) float32 {
	frame := pc.mapper.XToFrame(x)
	if frame < 0 {
		frame = 0
		x = pc.mapper.FrameToX(frame)
	}
	pc.timeline.SetPlayheadFrame(frame)
	return x
}

// X returns the pixel position of the committed playhead frame
func (pc *PlayheadController) X() float32 {
	return pc.mapper.FrameToX(float64(pc.timeline.PlayheadFrame()))
}
