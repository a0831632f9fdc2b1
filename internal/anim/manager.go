package anim

import (
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/entity"
)

type entry struct {
	target Animatable2D
	anim   Animation
	onEnd  func()
}

func slotKey(id entity.ID, s Slot) uint64 {
	return uint64(id)<<8 | uint64(s)
}

// Manager owns every running animation, at most one per (target, slot).
//
// Animations added while a Tick pass is running (typically from a completion
// callback) are parked in a pending table and become live once the pass
// ends, so a pass never observes its own additions.
type Manager struct {
	live    *intmap.Map[uint64, *entry]
	pending *intmap.Map[uint64, *entry]
	ticking bool
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		live:    intmap.New[uint64, *entry](64),
		pending: intmap.New[uint64, *entry](16),
	}
}

// Add starts a on target's slot. An animation already in the slot is
// replaced, unless it is a Merger that absorbs a. onEnd, if set, runs once
// after a finishes on its own during Tick.
func (m *Manager) Add(target Animatable2D, slot Slot, a Animation, onEnd func()) {
	e := &entry{target: target, anim: a, onEnd: onEnd}
	k := slotKey(target.ID(), slot)
	if m.ticking {
		m.pending.Put(k, e)
		return
	}
	m.put(k, e)
}

func (m *Manager) put(k uint64, e *entry) {
	if old, ok := m.live.Get(k); ok {
		if mg, ok := old.anim.(Merger); ok && mg.Merge(e.anim) {
			if e.onEnd != nil {
				prev := old.onEnd
				old.onEnd = func() {
					if prev != nil {
						prev()
					}
					e.onEnd()
				}
			}
			return
		}
	}
	m.live.Put(k, e)
}

// Tick advances every live animation by one tick. Animations that finish are
// completed, removed and then have their callbacks run, in slot-key order.
func (m *Manager) Tick() {
	m.ticking = true

	var done []uint64
	m.live.ForEach(func(k uint64, e *entry) bool {
		e.anim.Tick()
		if e.anim.Finished() {
			done = append(done, k)
		}
		return true
	})
	slices.Sort(done)

	for _, k := range done {
		e, _ := m.live.Get(k)
		m.live.Del(k)
		e.anim.Finish(e.target.Visual())
		if e.onEnd != nil {
			e.onEnd()
		}
	}

	m.ticking = false

	if m.pending.Len() > 0 {
		var keys []uint64
		m.pending.ForEach(func(k uint64, _ *entry) bool {
			keys = append(keys, k)
			return true
		})
		slices.Sort(keys)
		for _, k := range keys {
			e, _ := m.pending.Get(k)
			m.put(k, e)
		}
		m.pending = intmap.New[uint64, *entry](16)
	}
}

// Perform samples every live animation at interpolation ticks past the last
// tick and writes the values into their targets.
func (m *Manager) Perform(interpolation float64) {
	m.live.ForEach(func(_ uint64, e *entry) bool {
		e.anim.Perform(e.target.Visual(), interpolation)
		return true
	})
}

// Get returns the live animation in id's slot.
func (m *Manager) Get(id entity.ID, slot Slot) (Animation, bool) {
	e, ok := m.live.Get(slotKey(id, slot))
	if !ok {
		return nil, false
	}
	return e.anim, true
}

// Has reports whether id has a live animation in slot.
func (m *Manager) Has(id entity.ID, slot Slot) bool {
	_, ok := m.live.Get(slotKey(id, slot))
	return ok
}

// Remaining returns the longest remaining duration among id's live
// animations, or zero when it has none.
func (m *Manager) Remaining(id entity.ID) int {
	var r int
	for s := Slot(0); s < numSlots; s++ {
		if e, ok := m.live.Get(slotKey(id, s)); ok {
			r = max(r, e.anim.Remaining())
		}
	}
	return r
}

// Interrupt completes the animation in id's slot immediately, writing its end
// state without running its callback. It panics when called during Tick.
func (m *Manager) Interrupt(id entity.ID, slot Slot) {
	if m.ticking {
		panic("anim: Interrupt called during Tick")
	}
	k := slotKey(id, slot)
	e, ok := m.live.Get(k)
	if !ok {
		return
	}
	m.live.Del(k)
	e.anim.Finish(e.target.Visual())
}

// Drop discards every animation of id without completing them. It panics
// when called during Tick.
func (m *Manager) Drop(id entity.ID) {
	if m.ticking {
		panic("anim: Drop called during Tick")
	}
	for s := Slot(0); s < numSlots; s++ {
		m.live.Del(slotKey(id, s))
		m.pending.Del(slotKey(id, s))
	}
}

// Len returns the number of live animations.
func (m *Manager) Len() int {
	return m.live.Len()
}
