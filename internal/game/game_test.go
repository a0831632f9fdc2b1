package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/field"
	"github.com/vovakirdan/blockfall/internal/geom"
	"github.com/vovakirdan/blockfall/internal/input"
	"github.com/vovakirdan/blockfall/internal/render"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(Options{Config: config.DefaultGameConfig(), Runtime: core.RuntimeConfig{Seed: 7}})
	require.NoError(t, err)
	return g
}

func TestNewValidatesConfig(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Field.Width = 0
	_, err := New(Options{Config: cfg})
	assert.ErrorContains(t, err, "game:")

	cfg = config.DefaultGameConfig()
	cfg.Shapes.Sets = []string{"hexomino"}
	_, err = New(Options{Config: cfg})
	assert.Error(t, err)
}

func TestExplicitSetsOverrideConfig(t *testing.T) {
	g, err := New(Options{
		Config:  config.DefaultGameConfig(),
		Sets:    []shapes.Set{shapes.Pentomino},
		Runtime: core.RuntimeConfig{Seed: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, shapes.Pentomino, g.Field().Active().Type().Set())
	assert.Equal(t, int64(1), g.Seed())
}

func TestGravityThroughTicks(t *testing.T) {
	g := newTestGame(t)
	s := g.Field().Active()
	y := s.Anchor().Y

	for range 47 {
		g.Tick()
	}
	assert.Equal(t, y, s.Anchor().Y)
	g.Tick()
	assert.Equal(t, y+1, s.Anchor().Y)
}

func TestPauseFreezesField(t *testing.T) {
	g := newTestGame(t)
	s := g.Field().Active()

	g.Tap(input.KeyPause)
	g.Tick()
	require.Equal(t, StatePaused, g.State())
	counter := g.Field().DropCounter()

	x := s.Anchor().X
	g.Tap(input.KeyLeft)
	for range 100 {
		g.Tick()
	}
	assert.Equal(t, counter, g.Field().DropCounter())
	assert.Equal(t, x, s.Anchor().X, "moves are ignored while paused")
	assert.True(t, g.Status().Paused)

	g.Tap(input.KeyPause)
	g.Tick()
	assert.Equal(t, StatePlaying, g.State())
}

func TestControlsReachField(t *testing.T) {
	g := newTestGame(t)
	s := g.Field().Active()
	x := s.Anchor().X

	g.Tap(input.KeyRight)
	g.Tick()
	assert.Equal(t, x+1, s.Anchor().X)
}

func TestRestart(t *testing.T) {
	g := newTestGame(t)
	first := g.Field()

	g.Tap(input.KeyHardDrop)
	for range 60 {
		g.Tick()
	}
	g.Tap(input.KeyRestart)
	g.Tick()

	assert.NotSame(t, first, g.Field())
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 0, g.Status().Score)
	assert.NotNil(t, g.Field().Active())
}

func TestGameOver(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 50000 && g.State() != StateOver; i++ {
		if f := g.Field(); f.Active() != nil && !f.Awaiting() && f.Forced() != field.DropHard {
			g.Tap(input.KeyHardDrop)
		}
		g.Tick()
	}
	require.Equal(t, StateOver, g.State())
	assert.True(t, g.Status().GameOver)

	g.Tap(input.KeyPause)
	g.Tick()
	assert.Equal(t, StateOver, g.State(), "pause does nothing after game over")

	g.Tap(input.KeyRestart)
	g.Tick()
	assert.Equal(t, StatePlaying, g.State())
}

func TestAdvanceRunsTicks(t *testing.T) {
	g := newTestGame(t)
	start := time.Unix(100, 0)
	interp := g.Advance(start)
	assert.Equal(t, uint64(1), g.Loop().Ticks())
	assert.Equal(t, 0.0, interp)

	g.Advance(start.Add(time.Second / 2))
	assert.Equal(t, uint64(6), g.Loop().Ticks(), "capped by max frame skip")
}

func TestDraw(t *testing.T) {
	g := newTestGame(t)
	a := render.NewFlatAssets(24, render.GlyphMetrics{Advance: 12, Height: 24})

	var rec render.Recorder
	g.Draw(&rec, a, 0.5)
	assert.Len(t, rec.Filter(render.CallRect), 5, "field frame and four HUD panels")

	var blocks int
	for _, c := range rec.Filter(render.CallSprite) {
		if !c.Image.(render.Sprite).Panel {
			blocks++
		}
	}
	active := len(g.Field().Active().Blocks())
	next := g.Field().Next().SolidBlockCount()
	assert.Equal(t, active+next, blocks)
	assert.NotContains(t, rec.Texts(), "PAUSED")

	g.Tap(input.KeyPause)
	g.Tick()
	rec.Reset()
	g.Draw(&rec, a, 0.5)
	assert.Contains(t, rec.Texts(), "PAUSED")
}

func TestSize(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, geom.V(456, 528), g.Size())
}
