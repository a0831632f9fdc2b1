// Package loop schedules fixed-rate logic ticks against a free-running render
// clock.
//
// Each frame the frontend calls Advance with the current time. Advance runs as
// many ticks as are due, but never more than the frame-skip limit, and
// returns how far the clock is between the last tick and the next one. The
// renderer uses that fraction to interpolate animations.
package loop

import (
	"math"
	"time"
)

// Loop is a fixed-step scheduler with bounded catch-up.
type Loop struct {
	step         time.Duration
	maxFrameSkip int
	next         time.Time
	started      bool
	ticks        uint64
	dropped      uint64
}

// New creates a loop running tickRate ticks per second and at most
// maxFrameSkip ticks per Advance call.
func New(tickRate, maxFrameSkip int) *Loop {
	return &Loop{
		step:         time.Second / time.Duration(max(1, tickRate)),
		maxFrameSkip: max(1, maxFrameSkip),
	}
}

// Step returns the duration of one tick.
func (l *Loop) Step() time.Duration { return l.step }

// Ticks returns the number of ticks run so far.
func (l *Loop) Ticks() uint64 { return l.ticks }

// Resyncs returns how many times the loop gave up catching up.
func (l *Loop) Resyncs() uint64 { return l.dropped }

// Reset restarts the schedule at now, e.g. after a pause.
func (l *Loop) Reset(now time.Time) {
	l.next = now
	l.started = true
}

// Advance runs tick for every step due at now, up to the frame-skip limit,
// and returns the interpolation fraction in [0, 1). If the limit is hit the
// backlog is dropped and the schedule restarts from now.
func (l *Loop) Advance(now time.Time, tick func()) float64 {
	if !l.started {
		l.Reset(now)
	}

	loops := 0
	for !now.Before(l.next) && loops < l.maxFrameSkip {
		tick()
		l.ticks++
		l.next = l.next.Add(l.step)
		loops++
	}
	if loops == l.maxFrameSkip && !now.Before(l.next) {
		l.next = now.Add(l.step)
		l.dropped++
	}

	interp := float64(now.Add(l.step).Sub(l.next)) / float64(l.step)
	return math.Min(math.Max(interp, 0), math.Nextafter(1, 0))
}
