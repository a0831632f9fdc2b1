// Package tui is the terminal frontend: a Bubble Tea program that feeds key
// presses to a game session, advances its loop every frame and rasterizes
// the scene into a colored character buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a render frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// specified rate. Logic ticks are scheduled separately by the game loop.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(1, fps))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
