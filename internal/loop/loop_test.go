package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceRunsDueTicks(t *testing.T) {
	l := New(100, 5) // 10ms per tick
	start := time.Unix(0, 0)
	var n int
	tick := func() { n++ }

	assert.Equal(t, 0.0, l.Advance(start, tick))
	assert.Equal(t, 1, n, "first call ticks immediately")

	interp := l.Advance(start.Add(5*time.Millisecond), tick)
	assert.Equal(t, 1, n)
	assert.InDelta(t, 0.5, interp, 1e-9)

	interp = l.Advance(start.Add(32*time.Millisecond), tick)
	assert.Equal(t, 4, n, "ticks at 10, 20 and 30ms")
	assert.InDelta(t, 0.2, interp, 1e-9)
	assert.Equal(t, uint64(4), l.Ticks())
}

func TestFrameSkipCap(t *testing.T) {
	l := New(100, 3)
	start := time.Unix(0, 0)
	var n int
	tick := func() { n++ }

	l.Advance(start, tick)
	n = 0
	interp := l.Advance(start.Add(time.Second), tick)
	assert.Equal(t, 3, n, "never more than maxFrameSkip per call")
	assert.Equal(t, 0.0, interp)
	assert.Equal(t, uint64(1), l.Resyncs())

	// The backlog is gone: the next tick is one step after the resync.
	n = 0
	l.Advance(start.Add(time.Second+5*time.Millisecond), tick)
	assert.Equal(t, 0, n)
	l.Advance(start.Add(time.Second+10*time.Millisecond), tick)
	assert.Equal(t, 1, n)
}

func TestInterpolationStaysBelowOne(t *testing.T) {
	l := New(60, 5)
	start := time.Unix(0, 0)
	for i := range 200 {
		interp := l.Advance(start.Add(time.Duration(i)*time.Millisecond*7), func() {})
		assert.GreaterOrEqual(t, interp, 0.0)
		assert.Less(t, interp, 1.0)
	}
}

func TestReset(t *testing.T) {
	l := New(10, 5)
	start := time.Unix(0, 0)
	var n int
	l.Advance(start, func() { n++ })
	l.Reset(start.Add(time.Hour))
	l.Advance(start.Add(time.Hour), func() { n++ })
	assert.Equal(t, 2, n, "no catch-up across the pause")
	assert.Equal(t, 100*time.Millisecond, l.Step())
}
