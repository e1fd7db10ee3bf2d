package animations

import (
	"time"

	"github.com/automoto/deepdiver/config"
)

// Animation steps through a clip on a fixed interval measured against the scene clock.
type Animation struct {
	Frames   []config.SpriteID
	Interval time.Duration
	index    int
	last     time.Duration
	current  config.SpriteID
}

// NewAnimation starts a clip at now. The frame shown before the first step is Frames[1].
func NewAnimation(frames []config.SpriteID, interval, now time.Duration) *Animation {
	a := &Animation{
		Frames:   frames,
		Interval: interval,
		last:     now,
	}
	if len(frames) > 0 {
		a.current = frames[1%len(frames)]
	}
	return a
}

// Advance moves to the next frame once Interval has elapsed since the last step.
// Running past the end restarts at index 1, so index 0 only plays on the first cycle.
func (a *Animation) Advance(now time.Duration) config.SpriteID {
	if len(a.Frames) == 0 || now-a.last < a.Interval {
		return a.current
	}
	a.last = now
	if a.index >= len(a.Frames) {
		a.index = 1 % len(a.Frames)
	}
	a.current = a.Frames[a.index]
	a.index++
	return a.current
}

// SetFrames swaps the clip and keeps the running index.
func (a *Animation) SetFrames(frames []config.SpriteID) {
	a.Frames = frames
}

// Hold rewinds the clip and shows a still frame until the next Advance.
func (a *Animation) Hold(frame config.SpriteID) {
	a.index = 0
	a.current = frame
}

func (a *Animation) Frame() config.SpriteID {
	return a.current
}

func (a *Animation) Index() int {
	return a.index
}
