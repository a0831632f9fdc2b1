package anim

import (
	"math"

	"github.com/vovakirdan/blockfall/internal/geom"
)

// Rotate interpolates Visual.Angle from From to To.
type Rotate struct {
	clock
	From, To     float64
	defaultAngle float64
	base         int
}

// NewRotate creates a rotation whose duration scales with the angle to travel
// relative to defaultAngle, capped at base ticks.
func NewRotate(from, to, defaultAngle float64, base int) *Rotate {
	return &Rotate{
		clock:        newClock(ScaledDuration(to-from, defaultAngle, base)),
		From:         from,
		To:           to,
		defaultAngle: defaultAngle,
		base:         base,
	}
}

// Span returns the absolute angle the animation covers.
func (r *Rotate) Span() float64 {
	return math.Abs(r.To - r.From)
}

func (r *Rotate) value(p float64) float64 {
	return r.From + (r.To-r.From)*p
}

// Current returns the angle at the last tick.
func (r *Rotate) Current() float64 {
	return r.value(r.progress(0))
}

func (r *Rotate) Perform(v *Visual, interpolation float64) {
	v.Angle = r.value(r.progress(interpolation))
}

func (r *Rotate) Finish(v *Visual) {
	if r.finish() {
		v.Angle = r.To
	}
}

// Merge absorbs a rotation that continues r in the same direction (it starts
// where r ends), so rapid repeated turns extend one animation instead of
// snapping. The merged span is the sum of both spans; the counter is re-based
// so the current angle is preserved. Anything else, or a rotation arriving
// after r finished, doesn't merge.
func (r *Rotate) Merge(next Animation) bool {
	n, ok := next.(*Rotate)
	if !ok || r.Finished() {
		return false
	}
	dir, ndir := r.To-r.From, n.To-n.From
	if dir == 0 || ndir == 0 || (dir > 0) != (ndir > 0) {
		return false
	}
	if math.Abs(n.From-r.To) > geom.Epsilon {
		return false
	}

	cur := r.Current()
	r.To += ndir
	r.duration = ScaledDuration(r.To-r.From, r.defaultAngle, r.base)
	p := (cur - r.From) / (r.To - r.From)
	r.elapsed = geom.Clamp(int(math.Round(p*float64(r.duration))), 0, r.duration-1)
	return true
}
