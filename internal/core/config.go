package core

// RuntimeConfig contains the options a frontend passes to a game session.
type RuntimeConfig struct {
	TickRate     int   // Logic ticks per second, 0 means the config value
	MaxFrameSkip int   // Ticks run at most per rendered frame, 0 means the config value
	Seed         int64 // RNG seed, 0 means seed from the clock
}

// GameState is the status summary a frontend shows around the playfield.
type GameState struct {
	Score    int
	Level    int
	Lines    int
	GameOver bool
	Paused   bool
}
