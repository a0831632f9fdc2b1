package config

// LevelCurve maps a level to its normal drop threshold in ticks. Entry 0 is
// level 1; levels past the end of the table keep the last entry.
type LevelCurve []int

// DropTicks returns the drop threshold for level.
func (c LevelCurve) DropTicks(level int) int {
	if len(c) == 0 {
		return 1
	}
	i := min(max(level-1, 0), len(c)-1)
	return max(1, c[i])
}

// Levels returns the number of distinct speeds in the curve.
func (c LevelCurve) Levels() int {
	return len(c)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Drop.Progression = false
		return
	}
	cfg.Drop.Progression = true
	cfg.Drop.StartLevel = StartLevelForPreset(preset)

	// Adjust handling based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Drop.AppearanceDelay = max(cfg.Drop.AppearanceDelay, 30)
		cfg.Input.AutoShiftDelay += 4
	case DifficultyHard:
		cfg.Drop.AppearanceDelay = min(cfg.Drop.AppearanceDelay, 10)
		cfg.Input.AutoShiftDelay = max(1, cfg.Input.AutoShiftDelay-2)
	}
}
