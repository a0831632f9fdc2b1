package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockfall/internal/shapes"
)

// isolate points the user config directory and the working directory at
// fresh temp dirs so the search order only sees what the test writes.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	var cfg GameConfig
	require.NoError(t, yaml.Unmarshal(defaultGameYAML, &cfg))
	assert.Equal(t, DefaultGameConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadSearchOrder(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		isolate(t)
		cfg, src, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, SourceEmbedded, src)
		assert.Equal(t, DefaultGameConfig(), cfg)
	})

	t.Run("local configs dir", func(t *testing.T) {
		_, work := isolate(t)
		writeFile(t, filepath.Join(work, "configs", "blockfall.yaml"), "field:\n  width: 12\n")
		cfg, src, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("configs", "blockfall.yaml"), src)
		assert.Equal(t, 12, cfg.Field.Width)
		assert.Equal(t, 20, cfg.Field.Height, "unset keys keep defaults")
	})

	t.Run("user dir beats local", func(t *testing.T) {
		home, work := isolate(t)
		writeFile(t, filepath.Join(work, "configs", "blockfall.yaml"), "field:\n  width: 12\n")
		writeFile(t, filepath.Join(home, ".blockfall", "blockfall.yaml"), "field:\n  width: 14\n")
		cfg, src, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".blockfall", "blockfall.yaml"), src)
		assert.Equal(t, 14, cfg.Field.Width)
	})

	t.Run("broken user file is skipped", func(t *testing.T) {
		home, _ := isolate(t)
		writeFile(t, filepath.Join(home, ".blockfall", "blockfall.yaml"), "field: [nope\n")
		_, src, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, SourceEmbedded, src)
	})

	t.Run("custom path beats everything", func(t *testing.T) {
		home, work := isolate(t)
		writeFile(t, filepath.Join(home, ".blockfall", "blockfall.yaml"), "field:\n  width: 14\n")
		custom := filepath.Join(work, "mine.yaml")
		writeFile(t, custom, "shapes:\n  sets: [pentomino]\n")
		cfg, src, err := Load(custom)
		require.NoError(t, err)
		assert.Equal(t, custom, src)
		assert.Equal(t, 10, cfg.Field.Width)
		assert.Equal(t, []string{"pentomino"}, cfg.Shapes.Sets)
	})

	t.Run("missing custom path is an error", func(t *testing.T) {
		_, work := isolate(t)
		_, _, err := Load(filepath.Join(work, "missing.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		ok     bool
	}{
		{"defaults", func(*GameConfig) {}, true},
		{"narrow field", func(c *GameConfig) { c.Field.Width = 3 }, false},
		{"zero tick rate", func(c *GameConfig) { c.Timing.TickRate = 0 }, false},
		{"empty curve", func(c *GameConfig) { c.Drop.LevelTicks = nil }, false},
		{"zero in curve", func(c *GameConfig) { c.Drop.LevelTicks = LevelCurve{5, 0} }, false},
		{"unknown set", func(c *GameConfig) { c.Shapes.Sets = []string{"hexomino"} }, false},
		{"mixed sets", func(c *GameConfig) { c.Shapes.Sets = []string{"tetromino", "pentomino"} }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			if tc.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

func TestParsedSets(t *testing.T) {
	c := ShapesConfig{Sets: []string{"4", "Pentomino"}}
	sets, err := c.ParsedSets()
	require.NoError(t, err)
	assert.Equal(t, []shapes.Set{shapes.Tetromino, shapes.Pentomino}, sets)
}

func TestLevelCurve(t *testing.T) {
	curve := LevelCurve{30, 20, 10}
	assert.Equal(t, 30, curve.DropTicks(0))
	assert.Equal(t, 30, curve.DropTicks(1))
	assert.Equal(t, 20, curve.DropTicks(2))
	assert.Equal(t, 10, curve.DropTicks(3))
	assert.Equal(t, 10, curve.DropTicks(99))
	assert.Equal(t, 1, LevelCurve(nil).DropTicks(1))
	assert.Equal(t, 3, curve.Levels())
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultGameConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Drop.Progression)
	assert.Equal(t, 1, cfg.Drop.StartLevel)

	cfg = DefaultGameConfig()
	ApplyPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Drop.Progression)
	assert.Equal(t, 8, cfg.Drop.StartLevel)
	assert.Equal(t, 10, cfg.Drop.AppearanceDelay)
	assert.Equal(t, 8, cfg.Input.AutoShiftDelay)

	cfg = DefaultGameConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	assert.Equal(t, 1, cfg.Drop.StartLevel)
	assert.Equal(t, 30, cfg.Drop.AppearanceDelay)
	assert.Equal(t, 14, cfg.Input.AutoShiftDelay)

	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)
	_, err = ParsePreset("insane")
	assert.Error(t, err)
}
