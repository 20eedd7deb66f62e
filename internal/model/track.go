package model

import "strings"

// DefaultTrackHeight is the track height in pixels at 1.0 vertical zoom
const DefaultTrackHeight float32 = 60

// Track is a horizontal lane holding non-overlapping clips. The name doubles
// as the lane alternation key for rendering; it is not a uniqueness
// constraint. Height is fixed at creation. Clips are kept in insertion order,
// not time order.
type Track struct {
	Name   string
	Height float32
	Clips  []*Clip
}

// NewTrack creates a track with the given name and the default height
func NewTrack(name string) *Track {
	return NewTrackWithHeight(name, DefaultTrackHeight)
}

// NewTrackWithHeight creates a track with an explicit height
func NewTrackWithHeight(name string, height float32) *Track {
	if height <= 0 {
		height = DefaultTrackHeight
	}
	return &Track{Name: name, Height: height}
}

// AddClip appends a clip to the track
func (t *Track) AddClip(clip *Clip) {
	t.Clips = append(t.Clips, clip)
}

// ClipByID returns the clip with the given ID, or nil
func (t *Track) ClipByID(id string) *Clip {
	for _, c := range t.Clips {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// AlternateLane reports which of the two lane background colors the track
// uses. Tracks whose name ends in "1" use the primary lane color.
func (t *Track) AlternateLane() bool {
	return !strings.HasSuffix(t.Name, "1")
}
