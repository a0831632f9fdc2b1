package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/geom"
	"github.com/vovakirdan/blockfall/internal/input"
)

func TestControllerDrivesField(t *testing.T) {
	f := newTestField(t)
	s := respawn(f, "T")
	require.True(t, f.descend())
	require.True(t, f.descend())

	r := input.NewReducer(input.Timing{AutoShiftDelay: 3, AutoFireInterval: 1})
	r.AddListener(NewController(f))

	x := s.Anchor().X
	r.Tap(input.KeyLeft)
	r.Tick()
	assert.Equal(t, x-1, s.Anchor().X)
	r.Tick() // Released: no move
	assert.Equal(t, x-1, s.Anchor().X)

	r.Tap(input.KeyRotateRight)
	r.Tick()
	assert.Equal(t, geom.Right, s.Rotation())

	r.Tap(input.KeyRotateLeft)
	r.Tick()
	assert.Equal(t, geom.Initial, s.Rotation())
}

func TestControllerAutoShift(t *testing.T) {
	f := newTestField(t)
	s := respawn(f, "O")
	r := input.NewReducer(input.Timing{AutoShiftDelay: 3, AutoFireInterval: 1})
	r.AddListener(NewController(f))

	x := s.Anchor().X
	r.Press(input.KeyRight)
	r.Tick() // Pressed
	r.Tick() // Held
	r.Tick() // Held
	assert.Equal(t, x+1, s.Anchor().X)
	r.Tick() // AutoShift
	r.Tick() // AutoShift
	assert.Equal(t, x+3, s.Anchor().X)
}

func TestControllerSoftDrop(t *testing.T) {
	f := newTestField(t)
	respawn(f, "T")
	r := input.NewReducer(input.DefaultTiming())
	r.AddListener(NewController(f))

	r.Press(input.KeySoftDrop)
	r.Tick()
	assert.Equal(t, DropSoft, f.Forced())
	r.Tick()
	assert.Equal(t, DropSoft, f.Forced(), "held keeps soft drop")
	r.Release(input.KeySoftDrop)
	r.Tick()
	assert.Equal(t, DropNormal, f.Forced())
}

func TestControllerRecoversLostSoftDropRelease(t *testing.T) {
	f := newTestField(t)
	respawn(f, "T")
	c := NewController(f)
	r := input.NewReducer(input.DefaultTiming())
	r.AddListener(c)

	r.Press(input.KeySoftDrop)
	r.Tick()
	require.Equal(t, DropSoft, f.Forced())

	// The release lands while the field is locked and is dropped.
	f.awaiting = true
	r.Release(input.KeySoftDrop)
	r.Tick()
	assert.Equal(t, DropSoft, f.Forced())

	f.awaiting = false
	r.Tick()
	assert.Equal(t, DropNormal, f.Forced())
}

func TestControllerHardDrop(t *testing.T) {
	f := newTestField(t)
	respawn(f, "T")
	c := NewController(f)
	c.OnInput(input.Snapshot{})
	assert.Equal(t, DropNormal, f.Forced())

	r := input.NewReducer(input.DefaultTiming())
	r.AddListener(c)
	r.Tap(input.KeyHardDrop)
	r.Tick()
	assert.Equal(t, DropHard, f.Forced())
}

func TestControllerSoftDropHeldThroughRespawn(t *testing.T) {
	f := newTestField(t)
	s := respawn(f, "O")
	for f.descend() {
	}
	f.startAwaiting()

	r := input.NewReducer(input.DefaultTiming())
	r.AddListener(NewController(f))

	// Pressed while locked: the field refuses it, the key stays down.
	r.Press(input.KeySoftDrop)
	for i := 0; f.Awaiting() && i < 100; i++ {
		r.Tick()
		f.Tick()
	}
	require.False(t, f.Awaiting())
	require.NotSame(t, s, f.Active())
	assert.Equal(t, DropNormal, f.Forced())

	r.Tick()
	assert.Equal(t, DropSoft, f.Forced(), "held key applies to the new shape")
}

func TestControllerSoftDropHeldThroughHardDrop(t *testing.T) {
	f := newTestField(t)
	s := respawn(f, "T")
	r := input.NewReducer(input.DefaultTiming())
	r.AddListener(NewController(f))

	r.Press(input.KeySoftDrop)
	r.Tick()
	require.Equal(t, DropSoft, f.Forced())

	r.Tap(input.KeyHardDrop)
	r.Tick()
	require.Equal(t, DropHard, f.Forced())

	for i := 0; f.Active() == s && i < 200; i++ {
		f.Tick()
		r.Tick()
	}
	require.NotSame(t, s, f.Active())

	r.Tick()
	assert.Equal(t, DropSoft, f.Forced())

	r.Release(input.KeySoftDrop)
	r.Tick()
	assert.Equal(t, DropNormal, f.Forced())
}
