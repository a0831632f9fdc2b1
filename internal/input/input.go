// Package input reduces raw key edges into per-tick key states with
// auto-repeat, and hands one snapshot per tick to its listeners.
package input

import "strings"

// Key is a logical game key. Frontends map physical keys onto these.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyRotateLeft
	KeyRotateRight
	KeySoftDrop
	KeyHardDrop
	KeyPause
	KeyRestart

	numKeys
)

// Keys lists every logical key.
var Keys = [numKeys]Key{
	KeyLeft, KeyRight, KeyRotateLeft, KeyRotateRight,
	KeySoftDrop, KeyHardDrop, KeyPause, KeyRestart,
}

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyRotateLeft:
		return "rotate-left"
	case KeyRotateRight:
		return "rotate-right"
	case KeySoftDrop:
		return "soft-drop"
	case KeyHardDrop:
		return "hard-drop"
	case KeyPause:
		return "pause"
	case KeyRestart:
		return "restart"
	}
	return "unknown"
}

// State is the reduced state of one key during one tick.
type State uint8

const (
	// Up means the key is not pressed.
	Up State = iota
	// Pressed is reported on the first tick after the key went down.
	Pressed
	// Held is reported while the key stays down before auto-repeat starts.
	Held
	// AutoShift is reported on every auto-repeat tick.
	AutoShift
	// AutoShiftHeld is reported between auto-repeat ticks.
	AutoShiftHeld
	// Released is reported once, on the first tick after the key went up.
	Released
)

func (s State) String() string {
	switch s {
	case Up:
		return "up"
	case Pressed:
		return "pressed"
	case Held:
		return "held"
	case AutoShift:
		return "auto-shift"
	case AutoShiftHeld:
		return "auto-shift-held"
	case Released:
		return "released"
	}
	return "unknown"
}

// Triggered reports whether the state should fire a repeating action.
func (s State) Triggered() bool {
	return s == Pressed || s == AutoShift
}

// Down reports whether the key is physically down.
func (s State) Down() bool {
	return s != Up && s != Released
}

// Snapshot is the immutable per-tick view of every key.
type Snapshot struct {
	states [numKeys]State
}

// State returns the state of k.
func (s Snapshot) State(k Key) State {
	if k >= numKeys {
		return Up
	}
	return s.states[k]
}

// Triggered reports whether k is Pressed or auto-repeating this tick.
func (s Snapshot) Triggered(k Key) bool { return s.State(k).Triggered() }

// Pressed reports whether k went down since the previous tick.
func (s Snapshot) Pressed(k Key) bool { return s.State(k) == Pressed }

// Released reports whether k went up since the previous tick.
func (s Snapshot) Released(k Key) bool { return s.State(k) == Released }

// Down reports whether k is held.
func (s Snapshot) Down(k Key) bool { return s.State(k).Down() }

// Empty reports whether every key is up.
func (s Snapshot) Empty() bool {
	return s.states == [numKeys]State{}
}

func (s Snapshot) String() string {
	var parts []string
	for _, k := range Keys {
		if st := s.states[k]; st != Up {
			parts = append(parts, k.String()+"="+st.String())
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Listener receives one snapshot per tick.
type Listener interface {
	OnInput(s Snapshot)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Snapshot)

// OnInput calls f(s).
func (f ListenerFunc) OnInput(s Snapshot) { f(s) }
