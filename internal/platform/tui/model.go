package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/input"
	"github.com/vovakirdan/blockfall/internal/render"
)

// Options configures the terminal frontend.
type Options struct {
	FPS int // render frames per second
	// SoftDropHold is how long soft drop stays down after the last key event.
	// Terminals report no key releases, only auto-repeated presses, so a
	// held key is detected by presses arriving faster than this.
	SoftDropHold time.Duration
	Logger       *log.Logger
}

// DefaultOptions returns the frontend defaults.
func DefaultOptions() Options {
	return Options{FPS: 60, SoftDropHold: 500 * time.Millisecond}
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	game   *game.Game
	screen *core.Screen
	canvas *Canvas
	assets *render.FlatAssets
	keys   KeyMap
	help   help.Model
	logger *log.Logger
	opts   Options

	width, height int
	softDown      bool
	softRefresh   bool
	softUntil     time.Time
	interp        float64
	quitting      bool
}

// NewModel creates a new Bubble Tea model for g.
func NewModel(g *game.Game, opts Options) Model {
	def := DefaultOptions()
	if opts.FPS <= 0 {
		opts.FPS = def.FPS
	}
	if opts.SoftDropHold <= 0 {
		opts.SoftDropHold = def.SoftDropHold
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	screen := core.NewScreen(0, 0)
	canvas := NewCanvas(screen, g.CellSize())
	size := g.Size()
	screen.Resize(canvas.Columns(size.X), canvas.Rows(size.Y))

	return Model{
		game:   g,
		screen: screen,
		canvas: canvas,
		assets: canvas.Assets(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		opts:   opts,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	k, ok := m.keys.GameKey(msg)
	if !ok {
		return m, nil
	}
	if k == input.KeySoftDrop {
		if !m.softDown {
			m.game.Press(input.KeySoftDrop)
			m.softDown = true
		}
		m.softRefresh = true
		return m, nil
	}
	m.game.Tap(k)
	return m, nil
}

// handleFrame advances the game loop to now. Soft-drop key events are
// timestamped with the frame that follows them.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.softRefresh {
		m.softUntil = now.Add(m.opts.SoftDropHold)
		m.softRefresh = false
	}
	if m.softDown && now.After(m.softUntil) {
		m.game.Release(input.KeySoftDrop)
		m.softDown = false
	}
	m.interp = m.game.Advance(now)
	return m, frameCmd(m.opts.FPS)
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".blockfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	filename := fmt.Sprintf("blockfall_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: write failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m *Model) render() {
	m.screen.Clear()
	m.game.Draw(m.canvas, m.assets, m.interp)
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	st := m.game.Status()
	status := statusStyle.Render(fmt.Sprintf("score %d  level %d  lines %d  seed %d",
		st.Score, st.Level, st.Lines, m.game.Seed()))
	view := lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), status, m.help.View(m.keys))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// chromeRows is the status line plus the short help line under the scene.
const chromeRows = 2

// SceneSize returns the terminal size in cells needed to show g.
func SceneSize(g *game.Game) (cols, rows int) {
	c := NewCanvas(core.NewScreen(0, 0), g.CellSize())
	size := g.Size()
	return c.Columns(size.X), c.Rows(size.Y) + chromeRows
}

// Run starts the Bubble Tea program for g and blocks until the player quits.
func Run(g *game.Game, opts Options) error {
	p := tea.NewProgram(NewModel(g, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
