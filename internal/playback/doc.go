package playback

// Package playback implements the timeline transport: a fixed-rate clock that
// advances the playhead one frame per tick and wraps at the end frame. The
// clock pushes frames through the same setter path manual scrubbing uses, so
// there is a single mutation path for both.
