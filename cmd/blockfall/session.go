package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

// sessionFlags are the inputs shared by every command that starts a game.
type sessionFlags struct {
	mode       string
	configPath string
	difficulty string
	tps        int
	seed       int64
}

func currentFlags(args []string) sessionFlags {
	f := sessionFlags{
		configPath: flagConfig,
		difficulty: flagDifficulty,
		tps:        flagTPS,
		seed:       flagSeed,
	}
	if len(args) > 0 {
		f.mode = args[0]
	}
	return f
}

// sessionOptions resolves config file, difficulty and mode into game options.
func sessionOptions(f sessionFlags, logger *log.Logger) (game.Options, error) {
	cfg, source, err := config.Load(f.configPath)
	if err != nil {
		return game.Options{}, err
	}
	logger.Info("config loaded", "source", source)

	// Without a preset the config's own start level and progression stand.
	if f.difficulty != "" {
		preset, err := config.ParsePreset(f.difficulty)
		if err != nil {
			return game.Options{}, err
		}
		config.ApplyPreset(&cfg, preset)
	}

	var sets []shapes.Set
	if f.mode != "" {
		mode, err := registry.Lookup(f.mode)
		if err != nil {
			return game.Options{}, fmt.Errorf("%w (run 'blockfall list' to see available modes)", err)
		}
		sets = mode.Sets
		logger.Debug("mode selected", "mode", mode.ID, "sets", mode.SetNames())
	}

	// Zero tick rate and frame skip fall back to the config.
	return game.Options{
		Config:  cfg,
		Sets:    sets,
		Runtime: core.RuntimeConfig{TickRate: f.tps, Seed: f.seed},
		Logger:  logger,
	}, nil
}

func newSession(f sessionFlags, logger *log.Logger) (*game.Game, error) {
	opts, err := sessionOptions(f, logger)
	if err != nil {
		return nil, err
	}
	return game.New(opts)
}
