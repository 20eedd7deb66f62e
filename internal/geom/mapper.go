package geom

import (
	"github.com/ytget/cutline/internal/config"
	"github.com/ytget/cutline/internal/model"
)

// Mapper maps frames to horizontal pixels and track indexes to vertical
// pixels. Layout constants are fixed at construction; zoom factors are
// transient view state updated by the toolbar. Zoom factors must be positive;
// that is a caller contract, not defended here.
type Mapper struct {
	layout config.Layout
	hZoom  float64
	vZoom  float64
}

// NewMapper creates a mapper at 1.0 zoom on both axes
func NewMapper(layout config.Layout) *Mapper {
	return &Mapper{layout: layout, hZoom: 1.0, vZoom: 1.0}
}

// Layout returns the layout constants
func (m *Mapper) Layout() config.Layout {
	return m.layout
}

// HZoom returns the horizontal zoom factor
func (m *Mapper) HZoom() float64 {
	return m.hZoom
}

// VZoom returns the vertical zoom factor
func (m *Mapper) VZoom() float64 {
	return m.vZoom
}

// SetHZoom sets the horizontal zoom factor
func (m *Mapper) SetHZoom(zoom float64) {
	m.hZoom = zoom
}

// SetVZoom sets the vertical zoom factor
func (m *Mapper) SetVZoom(zoom float64) {
	m.vZoom = zoom
}

// FrameToX converts a frame number to a horizontal pixel position
func (m *Mapper) FrameToX(frame float64) float32 {
	return m.layout.LeftMargin + float32(frame*float64(m.layout.BasePixelsPerFrame)*m.hZoom)
}

// XToFrame converts a horizontal pixel position to a frame number
func (m *Mapper) XToFrame(x float32) float64 {
	return float64(x-m.layout.LeftMargin) / (float64(m.layout.BasePixelsPerFrame) * m.hZoom)
}

// PixelsPerFrame returns the width of one frame at the current zoom
func (m *Mapper) PixelsPerFrame() float32 {
	return float32(float64(m.layout.BasePixelsPerFrame) * m.hZoom)
}

// TrackHeight returns the on-screen height of a track at the current zoom
func (m *Mapper) TrackHeight(track *model.Track) float32 {
	return float32(float64(track.Height) * m.vZoom)
}

// TrackTop returns the top-Y of the track at the given index: tracks stack
// top-to-bottom from the top margin, each followed by the track spacing
func (m *Mapper) TrackTop(tracks []*model.Track, index int) float32 {
	y := m.layout.TopMargin
	for i := 0; i < index && i < len(tracks); i++ {
		y += m.TrackHeight(tracks[i]) + m.layout.TrackSpacing
	}
	return y
}

// SceneHeight returns the total pixel height the tracks occupy, including
// the top and bottom margins
func (m *Mapper) SceneHeight(tracks []*model.Track) float32 {
	y := m.layout.TopMargin
	for _, track := range tracks {
		y += m.TrackHeight(track) + m.layout.TrackSpacing
	}
	return y + m.layout.BottomMargin
}

// ClipX returns the left pixel edge of a clip
func (m *Mapper) ClipX(clip *model.Clip) float32 {
	return m.FrameToX(float64(clip.StartFrame))
}

// ClipWidth returns the pixel width of a clip. One extra frame is added so
// the right edge includes the clip's last displayed frame; this is a
// rendering convention, not a data-model quantity.
func (m *Mapper) ClipWidth(clip *model.Clip) float32 {
	frames := float64(clip.DurationFrames + 1)
	return float32(frames * float64(m.layout.BasePixelsPerFrame) * m.hZoom)
}
