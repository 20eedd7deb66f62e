package control

import (
	"math"

	"github.com/ytget/cutline/internal/geom"
	"github.com/ytget/cutline/internal/model"
)

// SnapTolerance is the maximum frame distance at which a released clip is
// pulled onto an adjacent clip's edge
const SnapTolerance = 1

// Resolver computes the committed start frame for a clip at the end of a
// drag. Drag moves never mutate the model; only the terminal release commits,
// so the resolver always compares the proposed interval against the other
// clips' committed intervals.
type Resolver struct {
	mapper *geom.Mapper
}

// NewResolver creates a resolver over the given mapper
func NewResolver(mapper *geom.Mapper) *Resolver {
	return &Resolver{mapper: mapper}
}

// Resolve returns the start frame for a clip released at the given pixel X
// on its track.
//
// Each other clip on the track may contribute two snap candidates: its end
// (our start butts against it) and its start minus our duration (our end
// butts against it). The snap candidate nearest the raw frame wins; ties
// keep the earliest candidate found. With no snap candidate the raw frame
// stands. If the winner would overlap any other clip the snap is discarded
// and the raw frame is used as released; a reverted raw frame may itself
// still overlap, which is a known limitation kept for compatibility. The
// result is floored at 0.
func (r *Resolver) Resolve(clip *model.Clip, track *model.Track, releaseX float32) int {
	raw := int(math.Round(r.mapper.XToFrame(releaseX)))

	var candidates []int
	for _, other := range track.Clips {
		if other.ID == clip.ID {
			continue
		}
		if absInt(raw-other.EndFrame()) <= SnapTolerance {
			candidates = append(candidates, other.EndFrame())
		}
		if absInt(raw+clip.DurationFrames-other.StartFrame) <= SnapTolerance {
			candidates = append(candidates, other.StartFrame-clip.DurationFrames)
		}
	}

	// Strict < keeps the first candidate found on ties
	chosen := raw
	if len(candidates) > 0 {
		chosen = candidates[0]
		bestDistance := absInt(chosen - raw)
		for _, candidate := range candidates[1:] {
			if distance := absInt(candidate - raw); distance < bestDistance {
				chosen = candidate
				bestDistance = distance
			}
		}
	}

	for _, other := range track.Clips {
		if other.ID == clip.ID {
			continue
		}
		if other.Overlaps(chosen, clip.DurationFrames) {
			chosen = raw
			break
		}
	}

	if chosen < 0 {
		chosen = 0
	}
	return chosen
}

// Commit resolves the released position, writes the clip's new start frame,
// and returns the committed frame together with its re-projected pixel X so
// the widget can reposition itself.
func (r *Resolver) Commit(clip *model.Clip, track *model.Track, releaseX float32) (int, float32) {
	frame := r.Resolve(clip, track, releaseX)
	clip.StartFrame = frame
	return frame, r.mapper.FrameToX(float64(frame))
}

// absInt returns the absolute value of an int
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
