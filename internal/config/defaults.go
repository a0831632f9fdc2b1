package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:    10,
			Height:   20,
			CellSize: 24,
			LightX:   -240,
			LightY:   -240,
		},
		Timing: TimingConfig{
			TickRate:     60,
			MaxFrameSkip: 5,
		},
		Drop: DropConfig{
			SoftTicks:       3,
			HardTicks:       1,
			AppearanceDelay: 20,
			StartLevel:      1,
			LinesPerLevel:   10,
			Progression:     true,
			LevelTicks: LevelCurve{
				48, 43, 38, 33, 28, 23, 18, 13, 8, 6,
				5, 5, 5, 4, 4, 4, 3, 3, 3, 2,
			},
		},
		Input: InputConfig{
			AutoShiftDelay:   10,
			AutoFireInterval: 2,
		},
		Animation: AnimationConfig{
			MoveTicks:     6,
			RotateTicks:   8,
			BreakTicks:    24,
			CollapseAccel: 0.05,
			DisplayTicks:  12,
			Distortion:    3,
		},
		Scoring: ScoringConfig{
			LineScores:   []int{0, 40, 100, 300, 1200, 2000},
			SoftDropCell: 1,
			HardDropCell: 2,
		},
		Shapes: ShapesConfig{
			Sets:         []string{"tetromino"},
			RandomColors: false,
		},
	}
}
