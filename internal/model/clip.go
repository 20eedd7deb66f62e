package model

import (
	"strings"

	"github.com/google/uuid"
)

// Clip represents a titled interval of frames on a single track
type Clip struct {
	ID             string
	Title          string
	StartFrame     int // first frame occupied by the clip, always >= 0
	DurationFrames int // number of frames occupied, always > 0
}

// NewClip creates a clip with a generated ID
func NewClip(title string, startFrame, durationFrames int) *Clip {
	if startFrame < 0 {
		startFrame = 0
	}
	if durationFrames < 1 {
		durationFrames = 1
	}
	return &Clip{
		ID:             uuid.NewString(),
		Title:          title,
		StartFrame:     startFrame,
		DurationFrames: durationFrames,
	}
}

// EndFrame returns the first frame after the clip, i.e. the exclusive end of
// the occupied interval [StartFrame, EndFrame)
func (c *Clip) EndFrame() int {
	return c.StartFrame + c.DurationFrames
}

// Overlaps reports whether the interval [start, start+duration) would
// intersect this clip's occupied interval
func (c *Clip) Overlaps(start, duration int) bool {
	return start < c.EndFrame() && start+duration > c.StartFrame
}

// GetDisplayTitle returns the title, or the ID prefix when the title is empty
func (c *Clip) GetDisplayTitle() string {
	title := strings.TrimSpace(c.Title)
	if title != "" {
		return title
	}
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}
