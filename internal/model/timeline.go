package model

import "math"

// Timeline end defaults, in frames
const (
	// EndFramePadding is added past the furthest clip when deriving the
	// default end frame
	EndFramePadding = 24

	// MinTimelineLength is the shortest default timeline, in frames
	MinTimelineLength = 100
)

// Timeline owns the ordered set of tracks plus the two scalar states every
// controller mutates: the playhead frame and the timeline end frame.
type Timeline struct {
	tracks        []*Track
	playheadFrame int
	endFrame      int
	onInvalidate  func() // layout collaborator, called after structural changes
}

// NewTimeline creates an empty timeline with the default end frame
func NewTimeline() *Timeline {
	tl := &Timeline{}
	tl.endFrame = tl.DefaultEndFrame()
	return tl
}

// SetInvalidateCallback registers the layout-invalidation collaborator. The
// callback fires after AddTrack; scalar setters leave re-layout to their
// controllers.
func (tl *Timeline) SetInvalidateCallback(callback func()) {
	tl.onInvalidate = callback
}

// AddTrack appends a track and triggers a layout recompute
func (tl *Timeline) AddTrack(track *Track) {
	tl.tracks = append(tl.tracks, track)
	tl.invalidate()
}

// Tracks returns the ordered track list
func (tl *Timeline) Tracks() []*Track {
	return tl.tracks
}

// TrackOf returns the track owning the given clip, or nil
func (tl *Timeline) TrackOf(clip *Clip) *Track {
	for _, track := range tl.tracks {
		for _, c := range track.Clips {
			if c == clip {
				return track
			}
		}
	}
	return nil
}

// MinimumEndFrame returns the furthest clip end across all tracks, or 0 when
// the timeline is empty. Recomputed on every call; clips can move at any time
// so the value is never cached.
func (tl *Timeline) MinimumEndFrame() int {
	maxEnd := 0
	for _, track := range tl.tracks {
		for _, clip := range track.Clips {
			if end := clip.EndFrame(); end > maxEnd {
				maxEnd = end
			}
		}
	}
	return maxEnd
}

// DefaultEndFrame returns the end frame a freshly built timeline gets:
// padding past the furthest clip, but never shorter than the minimum length
func (tl *Timeline) DefaultEndFrame() int {
	end := tl.MinimumEndFrame() + EndFramePadding
	if end < MinTimelineLength {
		end = MinTimelineLength
	}
	return end
}

// ResetEndFrame re-derives the end frame from the current clips
func (tl *Timeline) ResetEndFrame() {
	tl.endFrame = tl.DefaultEndFrame()
}

// PlayheadFrame returns the current playhead position
func (tl *Timeline) PlayheadFrame() int {
	return tl.playheadFrame
}

// SetPlayheadFrame stores the rounded frame. The raw setter does not clamp;
// the controllers keep it non-negative and the playback clock alone enforces
// the wrap at the end frame.
func (tl *Timeline) SetPlayheadFrame(frame float64) {
	tl.playheadFrame = int(math.Round(frame))
}

// EndFrame returns the user-adjustable end-of-timeline boundary
func (tl *Timeline) EndFrame() int {
	return tl.endFrame
}

// SetEndFrame stores the rounded frame, clamped up to MinimumEndFrame so the
// timeline can never end before its furthest clip
func (tl *Timeline) SetEndFrame(frame float64) {
	end := int(math.Round(frame))
	if minEnd := tl.MinimumEndFrame(); end < minEnd {
		end = minEnd
	}
	tl.endFrame = end
}

// invalidate calls the layout callback if set
func (tl *Timeline) invalidate() {
	if tl.onInvalidate != nil {
		tl.onInvalidate()
	}
}
