package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSessionOptions(t *testing.T) {
	logger := log.New(io.Discard)
	path := writeConfig(t, "drop:\n  start_level: 2\n")

	t.Run("mode selects sets", func(t *testing.T) {
		opts, err := sessionOptions(sessionFlags{mode: "Pentomino", configPath: path, seed: 7}, logger)
		require.NoError(t, err)
		assert.Equal(t, []shapes.Set{shapes.Pentomino}, opts.Sets)
		assert.Equal(t, int64(7), opts.Runtime.Seed)
		assert.Equal(t, 2, opts.Config.Drop.StartLevel)
	})

	t.Run("no mode keeps config sets", func(t *testing.T) {
		opts, err := sessionOptions(sessionFlags{configPath: path}, logger)
		require.NoError(t, err)
		assert.Empty(t, opts.Sets)
	})

	t.Run("difficulty applies preset", func(t *testing.T) {
		opts, err := sessionOptions(sessionFlags{configPath: path, difficulty: "hard"}, logger)
		require.NoError(t, err)
		assert.Equal(t, 8, opts.Config.Drop.StartLevel)
		assert.True(t, opts.Config.Drop.Progression)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := sessionOptions(sessionFlags{mode: "hexomino", configPath: path}, logger)
		assert.ErrorContains(t, err, "unknown mode")
	})

	t.Run("bad difficulty", func(t *testing.T) {
		_, err := sessionOptions(sessionFlags{configPath: path, difficulty: "brutal"}, logger)
		assert.ErrorContains(t, err, "unknown difficulty")
	})

	t.Run("missing config", func(t *testing.T) {
		_, err := sessionOptions(sessionFlags{configPath: filepath.Join(t.TempDir(), "nope.yaml")}, logger)
		assert.Error(t, err)
	})
}

func TestNewSession(t *testing.T) {
	g, err := newSession(sessionFlags{mode: "mixed", seed: 1, configPath: writeConfig(t, "{}\n")}, log.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, int64(1), g.Seed())
	assert.False(t, g.Status().GameOver)
}

func TestPrintModes(t *testing.T) {
	var buf bytes.Buffer
	printModes(&buf, registry.List())
	out := buf.String()
	for _, id := range []string{"tetromino", "pentomino", "mixed"} {
		assert.Contains(t, out, id)
	}

	buf.Reset()
	printModes(&buf, nil)
	assert.Equal(t, "No modes available.\n", buf.String())
}

func TestPrintKeys(t *testing.T) {
	var buf bytes.Buffer
	printKeys(&buf)
	assert.Contains(t, buf.String(), "hard drop")
	assert.Contains(t, buf.String(), "Space")
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "loud"
	_, err := newLogger(io.Discard)
	assert.Error(t, err)

	flagLogLevel = "debug"
	logger, err := newLogger(io.Discard)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
}
