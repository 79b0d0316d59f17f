package game

import "time"

// frameWindow is the length of the frame counter window in milliseconds.
const frameWindow = 1000.0

// pacer measures tick deltas, counts frames per second and computes how long
// the driver should wait before the next tick.
type pacer struct {
	last     time.Time
	delta    float64
	interval float64 // desired ms per tick, 0 when unpaced
	timeout  float64

	frames  int
	elapsed float64
	rate    int
}

func newPacer(now time.Time) *pacer {
	return &pacer{last: now}
}

// setRate sets the desired ticks per second. Zero or less disables pacing.
func (p *pacer) setRate(rate float64) {
	if rate <= 0 {
		p.interval = 0
		return
	}
	p.interval = 1000 / rate
}

func (p *pacer) desiredRate() float64 {
	if p.interval <= 0 {
		return 0
	}
	return 1000 / p.interval
}

// begin records the start of a tick. Backward clock jumps give a zero delta.
func (p *pacer) begin(now time.Time) {
	p.delta = millis(now.Sub(p.last))
	if p.delta < 0 {
		p.delta = 0
	}
	p.last = now
}

// count adds the current tick to the frame window and reports whether a new
// rate was published. Overshoot past the window carries into the next one.
func (p *pacer) count() bool {
	p.elapsed += p.delta
	p.frames++
	if p.elapsed < frameWindow {
		return false
	}
	p.rate = p.frames
	p.elapsed -= frameWindow
	p.frames = 0
	return true
}

// end computes the timeout from the work done since begin.
func (p *pacer) end(now time.Time) {
	if p.interval <= 0 {
		p.timeout = 0
		return
	}
	p.timeout = p.interval - millis(now.Sub(p.last))
}

func (p *pacer) timeoutDuration() time.Duration {
	return time.Duration(p.timeout * float64(time.Millisecond))
}
