// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blockfall/internal/shapes"
)

// GameConfig contains all tunable parameters of a game.
type GameConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Timing    TimingConfig    `yaml:"timing"`
	Drop      DropConfig      `yaml:"drop"`
	Input     InputConfig     `yaml:"input"`
	Animation AnimationConfig `yaml:"animation"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Shapes    ShapesConfig    `yaml:"shapes"`
}

// FieldConfig defines the playfield geometry.
type FieldConfig struct {
	Width    int     `yaml:"width"`     // Columns
	Height   int     `yaml:"height"`    // Rows
	CellSize float64 `yaml:"cell_size"` // Pixels per tile in the window frontend
	LightX   float64 `yaml:"light_x"`   // Light source position, screen pixels
	LightY   float64 `yaml:"light_y"`
}

// TimingConfig defines the fixed-tick loop.
type TimingConfig struct {
	TickRate     int `yaml:"tick_rate"`      // Logic ticks per second
	MaxFrameSkip int `yaml:"max_frame_skip"` // Ticks run per frame at most before resyncing
}

// DropConfig defines gravity and level progression.
type DropConfig struct {
	SoftTicks       int        `yaml:"soft_ticks"`       // Drop threshold while soft drop is held
	HardTicks       int        `yaml:"hard_ticks"`       // Drop threshold during a hard drop
	AppearanceDelay int        `yaml:"appearance_delay"` // Ticks between lock and the next spawn
	StartLevel      int        `yaml:"start_level"`
	LinesPerLevel   int        `yaml:"lines_per_level"`
	Progression     bool       `yaml:"progression"` // Whether cleared lines raise the level
	LevelTicks      LevelCurve `yaml:"level_ticks"` // Normal drop threshold per level, from level 1
}

// InputConfig defines key auto-repeat.
type InputConfig struct {
	AutoShiftDelay   int `yaml:"auto_shift_delay"`   // Ticks a key is held before auto-repeat
	AutoFireInterval int `yaml:"auto_fire_interval"` // Ticks between repeats
}

// AnimationConfig defines animation durations.
type AnimationConfig struct {
	MoveTicks     int     `yaml:"move_ticks"`     // Base duration of a one-cell move
	RotateTicks   int     `yaml:"rotate_ticks"`   // Base duration of a quarter turn
	BreakTicks    int     `yaml:"break_ticks"`    // Duration of a cleared block's break
	CollapseAccel float64 `yaml:"collapse_accel"` // Cells per tick² for blocks falling after a clear
	DisplayTicks  int     `yaml:"display_ticks"`  // HUD cross-fade duration
	Distortion    float64 `yaml:"distortion"`     // HUD glitch amplitude in pixels
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	LineScores   []int `yaml:"line_scores"`    // Indexed by rows cleared at once, multiplied by level
	SoftDropCell int   `yaml:"soft_drop_cell"` // Per cell descended by soft drop
	HardDropCell int   `yaml:"hard_drop_cell"` // Per cell descended by hard drop
}

// ShapesConfig selects the shape catalogs.
type ShapesConfig struct {
	Sets         []string `yaml:"sets"`
	RandomColors bool     `yaml:"random_colors"` // Color each shape randomly instead of per type
}

// ParsedSets converts the configured catalog names.
func (c ShapesConfig) ParsedSets() ([]shapes.Set, error) {
	out := make([]shapes.Set, 0, len(c.Sets))
	for _, s := range c.Sets {
		set, err := shapes.ParseSet(s)
		if err != nil {
			return nil, err
		}
		out = append(out, set)
	}
	return out, nil
}

// Validate reports the first impossible value in c.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width >= 5, "field.width must be at least 5, got %d", c.Field.Width)
	check(c.Field.Height >= 5, "field.height must be at least 5, got %d", c.Field.Height)
	check(c.Field.CellSize > 0, "field.cell_size must be positive")
	check(c.Timing.TickRate > 0, "timing.tick_rate must be positive, got %d", c.Timing.TickRate)
	check(c.Timing.MaxFrameSkip >= 1, "timing.max_frame_skip must be at least 1")
	check(c.Drop.SoftTicks >= 1, "drop.soft_ticks must be at least 1")
	check(c.Drop.HardTicks >= 1, "drop.hard_ticks must be at least 1")
	check(c.Drop.AppearanceDelay >= 0, "drop.appearance_delay must not be negative")
	check(c.Drop.StartLevel >= 1, "drop.start_level must be at least 1, got %d", c.Drop.StartLevel)
	check(c.Drop.LinesPerLevel >= 1, "drop.lines_per_level must be at least 1")
	check(len(c.Drop.LevelTicks) > 0, "drop.level_ticks must not be empty")
	for i, t := range c.Drop.LevelTicks {
		check(t >= 1, "drop.level_ticks[%d] must be at least 1, got %d", i, t)
	}
	check(c.Input.AutoShiftDelay >= 1, "input.auto_shift_delay must be at least 1")
	check(c.Input.AutoFireInterval >= 1, "input.auto_fire_interval must be at least 1")
	check(c.Animation.MoveTicks >= 1, "animation.move_ticks must be at least 1")
	check(c.Animation.RotateTicks >= 1, "animation.rotate_ticks must be at least 1")
	check(c.Animation.BreakTicks >= 1, "animation.break_ticks must be at least 1")
	check(c.Animation.CollapseAccel > 0, "animation.collapse_accel must be positive")
	check(c.Animation.DisplayTicks >= 1, "animation.display_ticks must be at least 1")
	check(len(c.Scoring.LineScores) > 0, "scoring.line_scores must not be empty")
	check(len(c.Shapes.Sets) > 0, "shapes.sets must not be empty")
	if _, err := c.Shapes.ParsedSets(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. The empty string is normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// StartLevelForPreset returns the level a preset starts at.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 8
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
