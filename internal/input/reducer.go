package input

// Timing holds the auto-repeat parameters, in ticks.
type Timing struct {
	AutoShiftDelay   int // Ticks from press to the first repeat
	AutoFireInterval int // Ticks between repeats
}

// DefaultTiming matches the default configuration.
func DefaultTiming() Timing {
	return Timing{AutoShiftDelay: 10, AutoFireInterval: 2}
}

type keyState struct {
	state        State
	ticks        int  // Ticks since the last trigger
	releaseAfter bool // Released before Pressed was delivered
}

// Reducer turns raw press/release edges into per-tick key states.
//
// Edges may arrive at any time between ticks. Tick first delivers the
// current snapshot to every listener, in the order they were added, and then
// advances each key:
//
//	Pressed -> Held -> (AutoShiftDelay) AutoShift -> AutoShiftHeld -> (AutoFireInterval) AutoShift ...
//	Released -> Up
//
// A press and release between two ticks is seen as Pressed, then Released.
type Reducer struct {
	timing    Timing
	keys      [numKeys]keyState
	listeners []Listener
}

// NewReducer creates a reducer with all keys up.
func NewReducer(timing Timing) *Reducer {
	timing.AutoShiftDelay = max(1, timing.AutoShiftDelay)
	timing.AutoFireInterval = max(1, timing.AutoFireInterval)
	return &Reducer{timing: timing}
}

// AddListener appends l to the delivery list.
func (r *Reducer) AddListener(l Listener) {
	r.listeners = append(r.listeners, l)
}

// Press records a key-down edge. Repeated downs while held are ignored.
func (r *Reducer) Press(k Key) {
	if k >= numKeys {
		return
	}
	ks := &r.keys[k]
	if ks.state.Down() {
		return
	}
	*ks = keyState{state: Pressed}
}

// Release records a key-up edge.
func (r *Reducer) Release(k Key) {
	if k >= numKeys {
		return
	}
	ks := &r.keys[k]
	switch {
	case ks.state == Pressed:
		ks.releaseAfter = true
	case ks.state.Down():
		*ks = keyState{state: Released}
	}
}

// Tap records a press immediately followed by a release.
func (r *Reducer) Tap(k Key) {
	r.Press(k)
	r.Release(k)
}

// Snapshot returns the states the next Tick will deliver.
func (r *Reducer) Snapshot() Snapshot {
	var s Snapshot
	for i := range r.keys {
		s.states[i] = r.keys[i].state
	}
	return s
}

// Tick delivers the current snapshot and advances every key by one tick.
func (r *Reducer) Tick() {
	snap := r.Snapshot()
	for _, l := range r.listeners {
		l.OnInput(snap)
	}
	for i := range r.keys {
		r.advance(&r.keys[i])
	}
}

// Reset puts every key up without notifying listeners.
func (r *Reducer) Reset() {
	r.keys = [numKeys]keyState{}
}

func (r *Reducer) advance(ks *keyState) {
	switch ks.state {
	case Pressed:
		if ks.releaseAfter {
			*ks = keyState{state: Released}
			return
		}
		ks.state, ks.ticks = Held, 1
		if ks.ticks >= r.timing.AutoShiftDelay {
			ks.state = AutoShift
		}
	case Held:
		ks.ticks++
		if ks.ticks >= r.timing.AutoShiftDelay {
			ks.state = AutoShift
		}
	case AutoShift:
		ks.state, ks.ticks = AutoShiftHeld, 1
		if ks.ticks >= r.timing.AutoFireInterval {
			ks.state = AutoShift
		}
	case AutoShiftHeld:
		ks.ticks++
		if ks.ticks >= r.timing.AutoFireInterval {
			ks.state = AutoShift
		}
	case Released:
		*ks = keyState{}
	}
}
