package field

import "github.com/vovakirdan/blockfall/internal/config"

// Config holds the rules a Field runs with.
type Config struct {
	Width, Height int
	CellSize      float64

	SoftTicks       int
	HardTicks       int
	AppearanceDelay int
	StartLevel      int
	LinesPerLevel   int
	Progression     bool
	Curve           config.LevelCurve

	MoveTicks     int
	RotateTicks   int
	BreakTicks    int
	CollapseAccel float64 // cells per tick²

	LineScores   []int
	SoftDropCell int
	HardDropCell int
	RandomColors bool
}

// ConfigFrom extracts the field rules from a game configuration.
func ConfigFrom(cfg config.GameConfig) Config {
	return Config{
		Width:           cfg.Field.Width,
		Height:          cfg.Field.Height,
		CellSize:        cfg.Field.CellSize,
		SoftTicks:       cfg.Drop.SoftTicks,
		HardTicks:       cfg.Drop.HardTicks,
		AppearanceDelay: cfg.Drop.AppearanceDelay,
		StartLevel:      cfg.Drop.StartLevel,
		LinesPerLevel:   cfg.Drop.LinesPerLevel,
		Progression:     cfg.Drop.Progression,
		Curve:           cfg.Drop.LevelTicks,
		MoveTicks:       cfg.Animation.MoveTicks,
		RotateTicks:     cfg.Animation.RotateTicks,
		BreakTicks:      cfg.Animation.BreakTicks,
		CollapseAccel:   cfg.Animation.CollapseAccel,
		LineScores:      cfg.Scoring.LineScores,
		SoftDropCell:    cfg.Scoring.SoftDropCell,
		HardDropCell:    cfg.Scoring.HardDropCell,
		RandomColors:    cfg.Shapes.RandomColors,
	}
}

// DefaultConfig returns the rules of the default configuration.
func DefaultConfig() Config {
	return ConfigFrom(config.DefaultGameConfig())
}
