package field

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blockfall/internal/anim"
	"github.com/vovakirdan/blockfall/internal/geom"
)

// canAct reports whether the player may move the active shape.
func (f *Field) canAct() bool {
	return f.active != nil && !f.awaiting && !f.over
}

// tryPut moves the active shape by shift and turns it to rotation r if every
// resulting cell is inside the field and free. Nothing changes on rejection.
func (f *Field) tryPut(shift geom.Point, r geom.Rotation) bool {
	if f.active == nil {
		return false
	}
	if !f.free(f.active.cellsAt(shift, r)) {
		return false
	}
	f.active.commit(shift, r)
	return true
}

// moveNow returns the value a move animation in slot has reached at the last
// tick, or zero if none runs.
func (f *Field) moveNow(target anim.Animatable2D, slot anim.Slot) geom.Vec {
	a, ok := f.anims.Get(target.ID(), slot)
	if !ok {
		return geom.Vec{}
	}
	switch m := a.(type) {
	case *anim.Move:
		return m.Current()
	case *anim.Accelerated:
		return m.Current()
	}
	return geom.Vec{}
}

// animateStep starts a move on slot so a shape that just jumped by cells
// glides there from where it was drawn.
func (f *Field) animateStep(slot anim.Slot, cells geom.Point) {
	s := f.active
	from := f.moveNow(s, slot).Sub(cells.Vec().Scale(f.cfg.CellSize))
	f.anims.Add(s, slot, anim.NewScaledMove(slot, from, geom.Vec{}, f.cfg.CellSize, f.cfg.MoveTicks), nil)
}

// descend moves the active shape down one row.
func (f *Field) descend() bool {
	down := geom.Pt(0, 1)
	if !f.tryPut(down, f.active.rotation) {
		return false
	}
	f.animateStep(anim.SlotDrop, down)
	return true
}

// Shift moves the active shape dx columns sideways.
func (f *Field) Shift(dx int) bool {
	if !f.canAct() || dx == 0 {
		return false
	}
	shift := geom.Pt(dx, 0)
	if !f.tryPut(shift, f.active.rotation) {
		return false
	}
	f.animateStep(anim.SlotShift, shift)
	return true
}

// Rotate turns the active shape a quarter turn in direction dir, trying the
// bare rotation first and then each wall kick in order. dir must be geom.Left
// or geom.Right.
func (f *Field) Rotate(dir geom.Rotation) bool {
	if !dir.IsDirection() {
		panic(fmt.Sprintf("field: rotate by %v: not a turn direction", dir))
	}
	if !f.canAct() {
		return false
	}
	s := f.active
	to := s.rotation.Add(dir)

	kick, ok := geom.Point{}, f.tryPut(geom.Point{}, to)
	if !ok {
		for _, k := range s.typ.WallKicks(s.rotation, dir) {
			if f.tryPut(k, to) {
				kick, ok = k, true
				break
			}
		}
	}
	if !ok {
		return false
	}

	sign := 1
	if dir == geom.Left {
		sign = -1
	}
	from := s.logicalAngle()
	s.turns += sign
	if a, ok := f.anims.Get(s.id, anim.SlotRotate); ok {
		if r, ok := a.(*anim.Rotate); ok && (r.To-r.From)*float64(sign) < 0 {
			from = r.Current()
		}
	}
	f.anims.Add(s, anim.SlotRotate, anim.NewRotate(from, s.logicalAngle(), math.Pi/2, f.cfg.RotateTicks), nil)

	if kick != (geom.Point{}) {
		f.anims.Interrupt(s.id, anim.SlotDrop)
		f.animateStep(anim.SlotKick, kick)
		floor := f.threshold(f.forced) - float64(max(f.cfg.SoftTicks, f.cfg.HardTicks))
		f.counter = max(0, min(f.counter, floor))
	}
	return true
}

// setForced switches gravity mode, rescaling the drop counter so the same
// fraction of the countdown has elapsed under the new threshold.
func (f *Field) setForced(mode ForcedDrop) {
	if mode == f.forced {
		return
	}
	before, after := f.threshold(f.forced), f.threshold(mode)
	f.counter = f.counter * after / before
	f.forced = mode
}

// SetSoftDrop turns soft drop on or off. A running hard drop is not
// affected.
func (f *Field) SetSoftDrop(on bool) bool {
	if !f.canAct() || f.forced == DropHard {
		return false
	}
	if on {
		f.setForced(DropSoft)
	} else {
		f.setForced(DropNormal)
	}
	return true
}

// HardDrop sends the active shape down at the hard-drop rate until it lands.
func (f *Field) HardDrop() bool {
	if !f.canAct() || f.forced == DropHard {
		return false
	}
	f.setForced(DropHard)
	return true
}
