package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/blockfall/internal/game"
)

var background = color.RGBA{16, 16, 24, 255}

// Options configures the window.
type Options struct {
	Title  string
	Scale  float64 // window size multiplier, 0 means 1
	Logger *log.Logger
}

// Game adapts a session to ebiten.Game.
type Game struct {
	session  *game.Game
	assets   *Assets
	renderer *Renderer
	poller   *Poller
	logger   *log.Logger
	interp   float64
	now      func() time.Time
}

// New wraps a session for Ebitengine.
func New(g *game.Game, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		session:  g,
		assets:   NewAssets(int(g.CellSize())),
		renderer: NewRenderer(),
		poller:   NewPoller(DefaultBindings()),
		logger:   logger,
		now:      time.Now,
	}
}

// Update polls the keyboard and runs the logic ticks due this frame.
func (w *Game) Update() error {
	if anyDown(ebiten.IsKeyPressed, QuitKeys) {
		return ebiten.Termination
	}
	w.poller.Poll(ebiten.IsKeyPressed, w.session)
	w.interp = w.session.Advance(w.now())
	return nil
}

// Draw renders the session onto screen.
func (w *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w.renderer.SetTarget(screen)
	w.session.Draw(w.renderer, w.assets, w.interp)
}

// Layout keeps the logical screen at the scene size and lets Ebitengine
// scale it to the window.
func (w *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := w.session.Size()
	return int(size.X), int(size.Y)
}

// Run opens a window for g and blocks until it is closed.
func Run(g *game.Game, opts Options) error {
	if opts.Title == "" {
		opts.Title = "blockfall"
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	w := New(g, opts.Logger)
	size := g.Size()

	ebiten.SetWindowSize(int(size.X*opts.Scale), int(size.Y*opts.Scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Logic ticks come from the session loop, not from Ebitengine's TPS.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	w.logger.Info("window opened", "width", int(size.X), "height", int(size.Y))
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
