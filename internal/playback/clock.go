package playback

import (
	"log"
	"sync"
	"time"

	"github.com/ytget/cutline/internal/model"
)

// FrameRate is the fixed playback rate in frames per second
const FrameRate = 24

// TickInterval is the wall-clock spacing between frame advances
const TickInterval = time.Second / FrameRate

// Clock advances the playhead one frame per tick at the fixed frame rate.
// Ticks are independent; there is no catch-up for host timer jitter, so a
// late tick still advances exactly one frame. Stopping leaves the playhead
// wherever playback reached.
type Clock struct {
	timeline *model.Timeline

	mu       sync.Mutex
	state    model.PlaybackState
	stopCh   chan struct{}
	onFrame  func(frame int) // UI re-layout callback
	dispatch func(fn func()) // serializes ticks onto the host event loop
}

// NewClock creates a stopped clock over the given timeline
func NewClock(timeline *model.Timeline) *Clock {
	return &Clock{
		timeline: timeline,
		state:    model.PlaybackStopped,
		dispatch: func(fn func()) { fn() },
	}
}

// SetFrameCallback sets the callback invoked after every frame advance
func (c *Clock) SetFrameCallback(callback func(frame int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onFrame = callback
}

// SetDispatcher routes each tick through the given function. The UI installs
// fyne.Do here so every mutation runs on the event loop, serialized with drag
// handling; by default ticks run on the clock goroutine.
func (c *Clock) SetDispatcher(dispatch func(fn func())) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dispatch != nil {
		c.dispatch = dispatch
	}
}

// Start begins ticking. Starting a running clock is a no-op.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.IsActive() {
		return
	}
	c.state = model.PlaybackPlaying
	c.stopCh = make(chan struct{})

	log.Printf("playback: starting at frame %d", c.timeline.PlayheadFrame())
	go c.run(c.stopCh)
}

// Stop halts ticking. The current frame persists wherever playback stopped.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsActive() {
		return
	}
	c.state = model.PlaybackStopped
	close(c.stopCh)
	c.stopCh = nil

	log.Printf("playback: stopped at frame %d", c.timeline.PlayheadFrame())
}

// Step advances the playhead by exactly one frame, wrapping to 0 upon
// reaching the end frame, and pushes the new frame through the same setter
// the scrub controllers use
func (c *Clock) Step() {
	frame := c.timeline.PlayheadFrame() + 1
	if frame >= c.timeline.EndFrame() {
		frame = 0
	}
	c.timeline.SetPlayheadFrame(float64(frame))
	c.notifyFrame(frame)
}

// State returns the transport state
func (c *Clock) State() model.PlaybackState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsPlaying returns true while the clock is ticking
func (c *Clock) IsPlaying() bool {
	return c.State().IsActive()
}

// run ticks until stopped
func (c *Clock) run(stopCh chan struct{}) {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			c.mu.Lock()
			dispatch := c.dispatch
			c.mu.Unlock()
			dispatch(c.Step)
		}
	}
}

// notifyFrame calls the frame callback if set
func (c *Clock) notifyFrame(frame int) {
	c.mu.Lock()
	callback := c.onFrame
	c.mu.Unlock()
	if callback != nil {
		callback(frame)
	}
}
