package anim

import (
	"math"

	"github.com/vovakirdan/blockfall/internal/geom"
)

// Move linearly interpolates one offset layer from From to To.
type Move struct {
	clock
	layer    Slot
	From, To geom.Vec
}

// NewMove creates a linear move on layer lasting duration ticks.
func NewMove(layer Slot, from, to geom.Vec, duration int) *Move {
	return &Move{clock: newClock(duration), layer: layer, From: from, To: to}
}

// NewScaledMove creates a linear move whose duration is scaled by the travel
// distance relative to defaultDist (see ScaledDuration).
func NewScaledMove(layer Slot, from, to geom.Vec, defaultDist float64, base int) *Move {
	return NewMove(layer, from, to, ScaledDuration(to.Sub(from).Len(), defaultDist, base))
}

func (m *Move) value(p float64) geom.Vec {
	return m.From.Lerp(m.To, p)
}

// Current returns the value at the last tick.
func (m *Move) Current() geom.Vec {
	return m.value(m.progress(0))
}

func (m *Move) Perform(v *Visual, interpolation float64) {
	v.SetLayerOffset(m.layer, m.value(m.progress(interpolation)))
}

func (m *Move) Finish(v *Visual) {
	if m.finish() {
		v.SetLayerOffset(m.layer, m.To)
	}
}

// Accelerated moves an offset layer along a straight line under constant
// acceleration: s(t) = v0·t + ½·a·t². The duration is the first tick at which
// the travelled distance covers the whole path.
type Accelerated struct {
	clock
	layer    Slot
	From, To geom.Vec
	v0, a    float64
}

// NewAccelerated creates an accelerated move on layer. v0 is the initial speed
// and accel the acceleration, both in units per tick.
func NewAccelerated(layer Slot, from, to geom.Vec, v0, accel float64) *Accelerated {
	dist := to.Sub(from).Len()
	var t float64
	switch {
	case dist < geom.Epsilon:
		t = 1
	case accel < geom.Epsilon:
		t = dist / math.Max(v0, geom.Epsilon)
	default:
		t = (-v0 + math.Sqrt(v0*v0+2*accel*dist)) / accel
	}
	return &Accelerated{
		clock: newClock(int(math.Ceil(t))),
		layer: layer,
		From:  from,
		To:    to,
		v0:    v0,
		a:     accel,
	}
}

func (m *Accelerated) value(interpolation float64) geom.Vec {
	t := math.Min(float64(m.elapsed)+interpolation, float64(m.duration))
	path := m.To.Sub(m.From)
	dist := path.Len()
	if dist < geom.Epsilon {
		return m.To
	}
	s := math.Min(dist, m.v0*t+0.5*m.a*t*t)
	return m.From.Add(path.Scale(s / dist))
}

// Current returns the value at the last tick.
func (m *Accelerated) Current() geom.Vec {
	return m.value(0)
}

func (m *Accelerated) Perform(v *Visual, interpolation float64) {
	v.SetLayerOffset(m.layer, m.value(interpolation))
}

// Finish jumps straight to the end position.
func (m *Accelerated) Finish(v *Visual) {
	if m.finish() {
		v.SetLayerOffset(m.layer, m.To)
	}
}
