// Package anim is the tick-driven animation engine.
//
// Animations advance only on logic ticks (Tick) but can be sampled at any
// fraction between two ticks (Perform), which is what lets rendering run
// smoother than the logic. Values are written into a Visual, the set of
// animatable channels each drawable object carries.
package anim

import (
	"math"

	"github.com/vovakirdan/blockfall/internal/entity"
	"github.com/vovakirdan/blockfall/internal/geom"
)

// Slot names a kind of animation. A target runs at most one animation per
// slot at a time.
type Slot uint8

const (
	SlotDrop Slot = iota
	SlotKick
	SlotRotate
	SlotShift
	SlotCollapse
	SlotBreak
	SlotTransition
	SlotDistortion

	numSlots
)

func (s Slot) String() string {
	switch s {
	case SlotDrop:
		return "drop"
	case SlotKick:
		return "kick"
	case SlotRotate:
		return "rotate"
	case SlotShift:
		return "shift"
	case SlotCollapse:
		return "collapse"
	case SlotBreak:
		return "break"
	case SlotTransition:
		return "transition"
	case SlotDistortion:
		return "distortion"
	}
	return "unknown"
}

// Animation is a time-boxed value animation.
type Animation interface {
	// Tick advances the internal counter by one logic tick.
	Tick()
	// Perform writes the value for "now + interpolation ticks" into v without
	// advancing the counter. interpolation is in [0, 1).
	Perform(v *Visual, interpolation float64)
	// Finished reports whether the counter has reached the duration.
	Finished() bool
	// Finish completes the animation immediately and writes its end state.
	// Calling it again has no effect.
	Finish(v *Visual)
	// Remaining returns the ticks left until Finished.
	Remaining() int
}

// Merger is implemented by animations that can absorb a follow-up animation
// for the same slot instead of being replaced by it.
type Merger interface {
	Merge(next Animation) bool
}

// Animatable2D is implemented by every object animations run on.
type Animatable2D interface {
	ID() entity.ID
	Visual() *Visual
}

// Visual holds the animatable channels of a drawable object.
//
// Position is split into one offset layer per slot so concurrent move
// animations (a drop while shifting, say) don't overwrite each other; the
// effective offset is their sum.
type Visual struct {
	offsets    [numSlots]geom.Vec
	Angle      float64
	Brightness float64
	scale      float64
	opacity    float64
	transition float64
	noise      float64
}

// NewVisual returns a Visual at rest: no offset, no rotation, full size,
// opaque, normal brightness.
func NewVisual() Visual {
	return Visual{Brightness: 1, scale: 1, opacity: 1, transition: 1}
}

// Offset returns the summed offset of every layer.
func (v *Visual) Offset() geom.Vec {
	var sum geom.Vec
	for _, o := range v.offsets {
		sum = sum.Add(o)
	}
	return sum
}

// LayerOffset returns the offset contributed by slot s.
func (v *Visual) LayerOffset(s Slot) geom.Vec {
	return v.offsets[s]
}

// SetLayerOffset sets the offset contributed by slot s.
func (v *Visual) SetLayerOffset(s Slot, o geom.Vec) {
	v.offsets[s] = o
}

// ClearOffsets zeroes every offset layer.
func (v *Visual) ClearOffsets() {
	v.offsets = [numSlots]geom.Vec{}
}

// Scale returns the uniform scale.
func (v *Visual) Scale() float64 { return v.scale }

// SetScale sets the scale; negative values clamp to zero.
func (v *Visual) SetScale(s float64) { v.scale = max(0, s) }

// Opacity returns the opacity in [0, 1].
func (v *Visual) Opacity() float64 { return v.opacity }

// SetOpacity sets the opacity, clamped into [0, 1].
func (v *Visual) SetOpacity(o float64) { v.opacity = geom.ClampF(o, 0, 1) }

// Transition returns the display cross-fade progress in [0, 1]; 1 means the
// new content is fully shown.
func (v *Visual) Transition() float64 { return v.transition }

// SetTransition sets the cross-fade progress, clamped into [0, 1].
func (v *Visual) SetTransition(t float64) { v.transition = geom.ClampF(t, 0, 1) }

// Noise returns the display distortion amplitude.
func (v *Visual) Noise() float64 { return v.noise }

// SetNoise sets the distortion amplitude; negative values clamp to zero.
func (v *Visual) SetNoise(n float64) { v.noise = max(0, n) }

// ScaledDuration derives an animation duration from the distance to travel.
// A travel of defaultDist takes base ticks; shorter travels finish
// proportionally sooner, longer ones are capped at base. The result is at
// least one tick.
func ScaledDuration(dist, defaultDist float64, base int) int {
	if base <= 0 {
		return 1
	}
	if defaultDist <= 0 {
		return base
	}
	d := int(math.Ceil(float64(base) * math.Abs(dist) / defaultDist))
	return geom.Clamp(d, 1, base)
}

// clock is the tick counter shared by every animation kind.
type clock struct {
	elapsed  int
	duration int
	done     bool
}

func newClock(duration int) clock {
	return clock{duration: max(1, duration)}
}

func (c *clock) Tick() {
	if c.elapsed < c.duration {
		c.elapsed++
	}
}

func (c *clock) Finished() bool {
	return c.elapsed >= c.duration
}

func (c *clock) Remaining() int {
	return max(0, c.duration-c.elapsed)
}

// progress returns the completed fraction at now + interpolation ticks.
func (c *clock) progress(interpolation float64) float64 {
	return geom.ClampF((float64(c.elapsed)+interpolation)/float64(c.duration), 0, 1)
}

// finish marks the clock complete and reports whether this is the first call.
func (c *clock) finish() bool {
	c.elapsed = c.duration
	if c.done {
		return false
	}
	c.done = true
	return true
}
