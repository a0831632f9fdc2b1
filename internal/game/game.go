// Package game is the composition root: it wires a field, its controller,
// the input reducer, the HUD and the fixed-tick loop into one session that a
// frontend drives with key edges, wall-clock time and a renderer.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/display"
	"github.com/vovakirdan/blockfall/internal/entity"
	"github.com/vovakirdan/blockfall/internal/field"
	"github.com/vovakirdan/blockfall/internal/geom"
	"github.com/vovakirdan/blockfall/internal/input"
	"github.com/vovakirdan/blockfall/internal/loop"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

// State is the session state.
type State uint8

const (
	StatePlaying State = iota
	StatePaused
	StateOver
)

func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	}
	return "playing"
}

// Options configures a session.
type Options struct {
	Config  config.GameConfig
	Sets    []shapes.Set // empty means the config's sets
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Game is one play session.
type Game struct {
	cfg      config.GameConfig
	registry *shapes.Registry
	rng      *rand.Rand
	logger   *log.Logger
	seed     int64

	tree       *entity.Tree
	field      *field.Field
	hud        *display.HUD
	controller *field.Controller
	reducer    *input.Reducer
	loop       *loop.Loop

	state    State
	restarts int
}

// New validates the configuration and starts a session.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	sets := opts.Sets
	if len(sets) == 0 {
		parsed, err := cfg.Shapes.ParsedSets()
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		sets = parsed
	}

	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Timing.TickRate
	}
	if rt.MaxFrameSkip <= 0 {
		rt.MaxFrameSkip = cfg.Timing.MaxFrameSkip
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:      cfg,
		registry: shapes.NewRegistry(sets...),
		rng:      rand.New(rand.NewSource(rt.Seed)),
		logger:   logger,
		seed:     rt.Seed,
		reducer: input.NewReducer(input.Timing{
			AutoShiftDelay:   cfg.Input.AutoShiftDelay,
			AutoFireInterval: cfg.Input.AutoFireInterval,
		}),
		loop: loop.New(rt.TickRate, rt.MaxFrameSkip),
	}
	g.controller = field.NewController(nil)
	g.reducer.AddListener(g)
	g.start()

	logger.Info("session started", "sets", sets, "seed", rt.Seed, "tps", rt.TickRate)
	return g, nil
}

// start builds a fresh tree, field and HUD.
func (g *Game) start() {
	s := g.cfg.Field.CellSize
	g.tree = entity.NewTree()
	g.field = field.New(field.ConfigFrom(g.cfg), g.registry, g.rng, g.tree, entity.None, geom.V(s, s))
	g.field.SetObserver(&logObserver{logger: g.logger, game: g})
	g.hud = display.NewHUD(display.ConfigFrom(g.cfg), g.tree, entity.None,
		geom.V(float64(g.cfg.Field.Width+2)*s, s))
	g.hud.Update(g.stats())
	g.controller.SetField(g.field)
	g.state = StatePlaying
	if g.field.GameOver() {
		g.state = StateOver
	}
}

// Restart throws the current field away and starts over. The RNG carries
// on, so a restarted game deals a different sequence.
func (g *Game) Restart() {
	g.restarts++
	g.logger.Info("restart", "previous_score", g.field.Score(), "restarts", g.restarts)
	g.start()
}

// Seed returns the RNG seed the session started with.
func (g *Game) Seed() int64 { return g.seed }

// State returns the session state.
func (g *Game) State() State { return g.state }

// Field returns the current field.
func (g *Game) Field() *field.Field { return g.field }

// HUD returns the current HUD.
func (g *Game) HUD() *display.HUD { return g.hud }

// Loop returns the tick scheduler.
func (g *Game) Loop() *loop.Loop { return g.loop }

// Status summarizes the session for a frontend.
func (g *Game) Status() core.GameState {
	return core.GameState{
		Score:    g.field.Score(),
		Level:    g.field.Level(),
		Lines:    g.field.Lines(),
		GameOver: g.state == StateOver,
		Paused:   g.state == StatePaused,
	}
}

// CellSize returns the pixel size of one tile.
func (g *Game) CellSize() float64 { return g.cfg.Field.CellSize }

// Size returns the pixel size of the whole scene: field, HUD and margins.
func (g *Game) Size() geom.Vec {
	s := g.cfg.Field.CellSize
	return geom.V(
		float64(g.cfg.Field.Width+3)*s+display.PanelWidth(s),
		float64(g.cfg.Field.Height+2)*s,
	)
}

// Press, Release and Tap feed raw key edges to the reducer. They take effect
// on the next tick.
func (g *Game) Press(k input.Key)   { g.reducer.Press(k) }
func (g *Game) Release(k input.Key) { g.reducer.Release(k) }
func (g *Game) Tap(k input.Key)     { g.reducer.Tap(k) }

// Advance runs the ticks due at now and returns the interpolation fraction
// for the frame about to be drawn.
func (g *Game) Advance(now time.Time) float64 {
	before := g.loop.Resyncs()
	interp := g.loop.Advance(now, g.Tick)
	if g.loop.Resyncs() != before {
		g.logger.Debug("frame skip limit hit, schedule resynced", "ticks", g.loop.Ticks())
	}
	return interp
}

// Tick advances the session by one logic tick.
func (g *Game) Tick() {
	g.reducer.Tick()
	if g.state == StatePaused {
		return
	}
	g.field.Tick()
	g.hud.Update(g.stats())
	g.hud.Tick()
	if g.field.GameOver() {
		g.state = StateOver
	}
}

// OnInput handles the session keys and forwards the rest to the field
// controller while playing.
func (g *Game) OnInput(s input.Snapshot) {
	if s.Pressed(input.KeyRestart) {
		g.Restart()
		return
	}
	if s.Pressed(input.KeyPause) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		}
		g.logger.Debug("pause toggled", "state", g.state)
	}
	if g.state == StatePlaying {
		g.controller.OnInput(s)
	}
}

func (g *Game) stats() display.Stats {
	return display.Stats{
		Score:     g.field.Score(),
		Level:     g.field.Level(),
		Lines:     g.field.Lines(),
		Next:      g.field.Next(),
		NextColor: g.field.NextColor(),
	}
}
