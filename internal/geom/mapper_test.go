package geom

import (
	"math"
	"testing"

	"github.com/ytget/cutline/internal/config"
	"github.com/ytget/cutline/internal/model"
)

func newTestMapper() *Mapper {
	return NewMapper(config.DefaultLayout())
}

func TestFrameToX(t *testing.T) {
	tests := []struct {
		frame    float64
		hZoom    float64
		expected float32
	}{
		{0, 1.0, 150},
		{10, 1.0, 250},
		{10, 2.0, 350},
		{100, 0.5, 650},
	}

	m := newTestMapper()
	for _, test := range tests {
		m.SetHZoom(test.hZoom)
		if got := m.FrameToX(test.frame); got != test.expected {
			t.Errorf("FrameToX(%v) at zoom %v = %v, expected %v",
				test.frame, test.hZoom, got, test.expected)
		}
	}
}

func TestXToFrameRoundTrip(t *testing.T) {
	frames := []float64{0, 1, 24, 100, 1234}
	zooms := []float64{0.5, 1.0, 2.0, 4.0}

	m := newTestMapper()
	for _, zoom := range zooms {
		m.SetHZoom(zoom)
		for _, frame := range frames {
			got := m.XToFrame(m.FrameToX(frame))
			if math.Abs(got-frame) > 1e-3 {
				t.Errorf("Round trip of frame %v at zoom %v = %v", frame, zoom, got)
			}
		}
	}
}

func TestTrackStacking(t *testing.T) {
	tracks := []*model.Track{
		model.NewTrackWithHeight("Video 1", 60),
		model.NewTrackWithHeight("Video 2", 40),
		model.NewTrackWithHeight("Audio 1", 30),
	}

	m := newTestMapper()

	// TopMargin 30, spacing 2
	if got := m.TrackTop(tracks, 0); got != 30 {
		t.Errorf("TrackTop(0) = %v, expected 30", got)
	}
	if got := m.TrackTop(tracks, 1); got != 92 {
		t.Errorf("TrackTop(1) = %v, expected 92", got)
	}
	if got := m.TrackTop(tracks, 2); got != 134 {
		t.Errorf("TrackTop(2) = %v, expected 134", got)
	}

	// 30 + (60+2) + (40+2) + (30+2) + 20
	if got := m.SceneHeight(tracks); got != 186 {
		t.Errorf("SceneHeight() = %v, expected 186", got)
	}

	m.SetVZoom(2.0)
	if got := m.TrackTop(tracks, 1); got != 152 {
		t.Errorf("TrackTop(1) at v-zoom 2.0 = %v, expected 152", got)
	}
}

func TestClipGeometry(t *testing.T) {
	clip := model.NewClip("Main", 10, 40)
	m := newTestMapper()

	if got := m.ClipX(clip); got != 250 {
		t.Errorf("ClipX() = %v, expected 250", got)
	}

	// Width includes one extra frame so the right edge covers the last
	// displayed frame: (40+1) * 10.
	if got := m.ClipWidth(clip); got != 410 {
		t.Errorf("ClipWidth() = %v, expected 410", got)
	}

	m.SetHZoom(2.0)
	if got := m.ClipWidth(clip); got != 820 {
		t.Errorf("ClipWidth() at zoom 2.0 = %v, expected 820", got)
	}
}

func TestLayoutIdempotence(t *testing.T) {
	tracks := []*model.Track{
		model.NewTrack("Video 1"),
		model.NewTrack("Audio 1"),
	}
	clip := model.NewClip("Main", 25, 75)
	tracks[0].AddClip(clip)

	m := newTestMapper()
	m.SetHZoom(1.7)
	m.SetVZoom(0.8)

	type snapshot struct {
		clipX, clipW, top0, top1, height float32
	}
	capture := func() snapshot {
		return snapshot{
			clipX:  m.ClipX(clip),
			clipW:  m.ClipWidth(clip),
			top0:   m.TrackTop(tracks, 0),
			top1:   m.TrackTop(tracks, 1),
			height: m.SceneHeight(tracks),
		}
	}

	first := capture()
	second := capture()
	if first != second {
		t.Errorf("Layout recompute with unchanged state differs: %+v vs %+v", first, second)
	}
}
