package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/field"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

// logObserver reports field events to the session logger.
type logObserver struct {
	logger *log.Logger
	game   *Game
}

func (o *logObserver) Spawned(s *field.Shape, next *shapes.Type) {
	o.logger.Debug("spawned", "shape", s, "next", next)
}

func (o *logObserver) Locked(s *field.Shape) {
	o.logger.Debug("locked", "shape", s)
}

func (o *logObserver) Cleared(rows []int, points int) {
	o.logger.Debug("rows cleared", "rows", rows, "points", points)
}

func (o *logObserver) LevelChanged(level int) {
	o.logger.Info("level up", "level", level, "lines", o.game.field.Lines())
}

func (o *logObserver) Over(score int) {
	o.logger.Info("game over", "score", score, "lines", o.game.field.Lines(), "level", o.game.field.Level())
}
