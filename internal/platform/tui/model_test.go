package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/field"
	"github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/input"
)

func newTestModel(t *testing.T) (Model, *game.Game) {
	t.Helper()
	g, err := game.New(game.Options{Config: config.DefaultGameConfig(), Runtime: core.RuntimeConfig{Seed: 3}})
	require.NoError(t, err)
	return NewModel(g, Options{}), g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestKeyReachesGame(t *testing.T) {
	m, g := newTestModel(t)
	x := g.Field().Active().Anchor().X

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, FrameMsg(time.Unix(0, 0)))
	assert.NotNil(t, cmd, "frames keep coming")
	assert.Equal(t, x+1, g.Field().Active().Anchor().X)
	assert.Equal(t, uint64(1), g.Loop().Ticks())
	_ = m
}

func TestSoftDropHoldTimeout(t *testing.T) {
	m, g := newTestModel(t)
	start := time.Unix(0, 0)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, FrameMsg(start))
	require.Equal(t, field.DropSoft, g.Field().Forced())

	// No further key events: the hold expires and soft drop ends.
	m, _ = update(t, m, FrameMsg(start.Add(600*time.Millisecond)))
	assert.Equal(t, field.DropNormal, g.Field().Forced())
	assert.False(t, m.softDown)
}

func TestGameKeyMapping(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want input.Key
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, input.KeyLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, input.KeyRight},
		{tea.KeyMsg{Type: tea.KeyUp}, input.KeyRotateRight},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, input.KeyRotateLeft},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, input.KeyHardDrop},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, input.KeyPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, input.KeyRestart},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			k, ok := km.GameKey(tt.msg)
			require.True(t, ok)
			assert.Equal(t, tt.want, k)
		})
	}

	_, ok := km.GameKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.False(t, ok, "quit is not a game key")
}

func TestViewAndQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, FrameMsg(time.Unix(0, 0)))

	view := m.View()
	assert.True(t, strings.Contains(view, "SCORE"))
	assert.True(t, strings.Contains(view, "NEXT"))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestSceneSize(t *testing.T) {
	_, g := newTestModel(t)
	cols, rows := SceneSize(g)
	assert.Equal(t, 38, cols)
	assert.Equal(t, 24, rows)
}
