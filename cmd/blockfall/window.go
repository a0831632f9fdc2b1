package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and start a game. Keys match the terminal
version; soft drop follows the real key release. Press Q to close.

Examples:
  blockfall window
  blockfall window pentomino --scale 2
  blockfall window --seed 42 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	g, err := newSession(currentFlags(args), logger)
	if err != nil {
		return err
	}
	return window.Run(g, window.Options{Scale: flagScale, Logger: logger})
}
