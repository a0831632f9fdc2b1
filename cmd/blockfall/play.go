package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var (
	flagLogFile string
	flagFPS     int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. Without a mode the shape sets from the
config are used.

Controls:
  ←/→ or A/D    - Move
  ↑/X, Z        - Rotate clockwise, counter-clockwise
  ↓/S           - Soft drop (hold)
  Space         - Hard drop
  P/Esc         - Pause
  R             - Restart
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Start at level 1, slower spawns
  normal - Start at level 3
  hard   - Start at level 8, faster spawns
  fixed  - No progression, stays at the config's start level

Examples:
  blockfall play
  blockfall play pentomino
  blockfall play --difficulty easy
  blockfall play mixed --log-file /tmp/blockfall.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal play has no stderr)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Render frames per second")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Bubble Tea owns the terminal, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("play: open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	g, err := newSession(currentFlags(args), logger)
	if err != nil {
		return err
	}

	opts := tui.DefaultOptions()
	opts.FPS = flagFPS
	opts.Logger = logger

	cols, rows := tui.SceneSize(g)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < cols || h < rows) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d\n", w, h, cols, rows)
		logger.Warn("terminal too small", "width", w, "height", h, "need_width", cols, "need_height", rows)
	}

	return tui.Run(g, opts)
}
