package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	seen []Snapshot
}

func (r *recorder) OnInput(s Snapshot) { r.seen = append(r.seen, s) }

func (r *recorder) states(k Key) []State {
	out := make([]State, len(r.seen))
	for i, s := range r.seen {
		out[i] = s.State(k)
	}
	return out
}

func TestAutoRepeatSequence(t *testing.T) {
	r := NewReducer(Timing{AutoShiftDelay: 3, AutoFireInterval: 2})
	rec := &recorder{}
	r.AddListener(rec)

	r.Press(KeyLeft)
	for range 8 {
		r.Tick()
	}
	r.Release(KeyLeft)
	r.Tick()
	r.Tick()

	assert.Equal(t, []State{
		Pressed, Held, Held, AutoShift, AutoShiftHeld, AutoShift, AutoShiftHeld, AutoShift,
		Released, Up,
	}, rec.states(KeyLeft))
}

func TestIntervalOfOneRepeatsEveryTick(t *testing.T) {
	r := NewReducer(Timing{AutoShiftDelay: 1, AutoFireInterval: 1})
	rec := &recorder{}
	r.AddListener(rec)
	r.Press(KeyRight)
	for range 4 {
		r.Tick()
	}
	assert.Equal(t, []State{Pressed, AutoShift, AutoShift, AutoShift}, rec.states(KeyRight))
}

func TestTapWithinOneTick(t *testing.T) {
	r := NewReducer(DefaultTiming())
	rec := &recorder{}
	r.AddListener(rec)

	r.Tap(KeyHardDrop)
	r.Tick()
	r.Tick()
	r.Tick()
	assert.Equal(t, []State{Pressed, Released, Up}, rec.states(KeyHardDrop))
	assert.True(t, rec.seen[0].Triggered(KeyHardDrop))
	assert.True(t, rec.seen[1].Released(KeyHardDrop))
	assert.True(t, rec.seen[2].Empty())
}

func TestRepeatedPressWhileHeldIsIgnored(t *testing.T) {
	r := NewReducer(Timing{AutoShiftDelay: 5, AutoFireInterval: 1})
	r.Press(KeySoftDrop)
	r.Tick()
	r.Press(KeySoftDrop)
	assert.Equal(t, Held, r.Snapshot().State(KeySoftDrop))
}

func TestListenersInInsertionOrderBeforeTransition(t *testing.T) {
	r := NewReducer(DefaultTiming())
	var order []string
	r.AddListener(ListenerFunc(func(s Snapshot) {
		order = append(order, "a:"+s.State(KeyLeft).String())
	}))
	r.AddListener(ListenerFunc(func(s Snapshot) {
		order = append(order, "b:"+s.State(KeyLeft).String())
	}))
	r.Press(KeyLeft)
	r.Tick()
	require.Equal(t, []string{"a:pressed", "b:pressed"}, order)
}

func TestSnapshotIsImmutable(t *testing.T) {
	r := NewReducer(DefaultTiming())
	rec := &recorder{}
	r.AddListener(rec)
	r.Press(KeyRotateRight)
	r.Tick()
	r.Tick()
	assert.Equal(t, Pressed, rec.seen[0].State(KeyRotateRight))
	assert.Equal(t, Held, rec.seen[1].State(KeyRotateRight))
	assert.Equal(t, Up, rec.seen[0].State(Key(200)))
}

func TestReset(t *testing.T) {
	r := NewReducer(DefaultTiming())
	r.Press(KeyLeft)
	r.Press(KeyPause)
	r.Reset()
	assert.True(t, r.Snapshot().Empty())
	assert.Equal(t, "{}", r.Snapshot().String())
}
