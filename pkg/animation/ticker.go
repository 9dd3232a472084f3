// Package animation provides frame pacing, easing curves and tweens for
// animated views.
//
// A window that has animating elements receives frames from its backend.
// Backends without a native frame clock use a [Ticker] to turn wall-clock
// time into per-frame deltas:
//
//	ticker := animation.NewTicker(60)
//	ticker.Start()
//	for range time.Tick(ticker.Interval()) {
//	    window.Frame(ticker.Tick())
//	}
//
// Views such as views.Transition ease values with a [Tween], which runs a
// [Curve] on top of gween.
package animation

import (
	"time"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// Ticker measures the time between animation frames.
//
// Ticker reads time from the package clock, so tests can drive it with a
// [FakeClock]. It is not safe for concurrent use.
type Ticker struct {
	fps      int
	isActive bool
	last     time.Time
}

// NewTicker creates a stopped ticker for the given frame rate. A rate of
// zero or less selects DefaultFPS.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Ticker{fps: fps}
}

// Interval returns the time between frames.
func (t *Ticker) Interval() time.Duration {
	return time.Second / time.Duration(t.fps)
}

// Start activates the ticker. The first Tick after Start measures from
// this call.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.last = Now()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	t.isActive = false
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Tick returns the time since the previous tick, or since Start for the
// first one. An inactive ticker returns zero.
func (t *Ticker) Tick() time.Duration {
	if !t.isActive {
		return 0
	}
	now := Now()
	delta := now.Sub(t.last)
	t.last = now
	if delta < 0 {
		return 0
	}
	return delta
}
