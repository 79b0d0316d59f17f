// Package anim provides timed single-value animations.
//
// An Animation moves one value from a start to an end over a duration in
// milliseconds. Multi-phase sequences are built by calling Reset on the same
// Animation from inside its own callback; the overrun passed to the callback
// lets the next phase shorten itself so the sequence stays on schedule.
package anim

import "github.com/younwookim/battleship/internal/engine/easing"

// Callback is invoked after every Advance that moves the animation.
// finished reports whether the duration was reached, value is the current
// value (the end value once finished) and overrun is how far the last
// advance went past the duration (0 while running).
//
// The callback may Reset the animation it receives.
type Callback func(a *Animation, finished bool, value, overrun float64)

// Animation is a single-value tween. The zero value is finished.
type Animation struct {
	start    float64
	end      float64
	elapsed  float64
	duration float64
	ease     easing.Func
	callback Callback
}

// New creates an animation. A nil easing falls back to easing.Linear.
func New(start, end, duration float64, ease easing.Func, callback Callback) *Animation {
	a := &Animation{}
	a.Reset(start, end, duration, ease, callback)
	return a
}

// Reset overwrites every setting and rewinds the elapsed time.
// Durations must be positive; zero or negative durations are not validated.
func (a *Animation) Reset(start, end, duration float64, ease easing.Func, callback Callback) {
	if ease == nil {
		ease = easing.Linear
	}
	a.start = start
	a.end = end
	a.elapsed = 0
	a.duration = duration
	a.ease = ease
	a.callback = callback
}

// Value evaluates the easing curve at the current elapsed time.
func (a *Animation) Value() float64 {
	if a.ease == nil {
		return a.end
	}
	return a.ease(a.elapsed, a.start, a.end-a.start, a.duration)
}

// Finished reports whether the elapsed time reached the duration.
// Advance clamps elapsed to exactly the duration, so equality is reliable.
func (a *Animation) Finished() bool {
	return a.elapsed == a.duration
}

// Elapsed returns the elapsed time in milliseconds.
func (a *Animation) Elapsed() float64 { return a.elapsed }

// Duration returns the duration in milliseconds.
func (a *Animation) Duration() float64 { return a.duration }

// Advance moves the animation forward by dt milliseconds. Negative deltas
// count as zero. Finished animations ignore further calls.
func (a *Animation) Advance(dt float64) {
	if a.Finished() {
		return
	}
	if dt < 0 {
		dt = 0
	}

	next := a.elapsed + dt
	cb := a.callback

	if next < a.duration {
		a.elapsed = next
		if cb != nil {
			cb(a, false, a.Value(), 0)
		}
		return
	}

	a.elapsed = a.duration
	if cb != nil {
		// Arguments are evaluated before the call, so a Reset inside cb
		// cannot change what this phase reports.
		cb(a, true, a.end, next-a.duration)
	}
}
