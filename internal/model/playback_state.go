package model

// PlaybackState represents the transport state of the timeline
type PlaybackState string

const (
	// PlaybackStopped means the clock is idle; the playhead stays put
	PlaybackStopped PlaybackState = "Stopped"

	// PlaybackPlaying means the clock is ticking the playhead forward
	PlaybackPlaying PlaybackState = "Playing"
)

// String returns the string representation of PlaybackState
func (ps PlaybackState) String() string {
	return string(ps)
}

// IsActive returns true if the transport is advancing the playhead
func (ps PlaybackState) IsActive() bool {
	return ps == PlaybackPlaying
}
