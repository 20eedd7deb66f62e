package playback

import "github.com/ytget/cutline/internal/model"

// Transport defines the interface for the playback clock.
type Transport interface {
	SetFrameCallback(func(frame int))
	SetDispatcher(func(fn func()))
	Start()
	Stop()
	Step()
	State() model.PlaybackState
	IsPlaying() bool
}
