// Package field is the tile-field state machine: the settled grid, the active
// shape's lifecycle, gravity, rotation with wall kicks, line clears and
// scoring.
//
// A Field advances only in Tick. Player actions (Shift, Rotate, SetSoftDrop,
// HardDrop) mutate it between ticks, normally through a Controller fed by the
// input reducer. Every logical change that should be seen moving starts an
// animation on the field's own animation manager; logic never reads the
// animated values back.
package field

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/anim"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/entity"
	"github.com/vovakirdan/blockfall/internal/geom"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

// ForcedDrop is the current gravity override.
type ForcedDrop uint8

const (
	DropNormal ForcedDrop = iota
	DropSoft
	DropHard
)

func (d ForcedDrop) String() string {
	switch d {
	case DropSoft:
		return "soft"
	case DropHard:
		return "hard"
	}
	return "normal"
}

// Observer is notified of field events. Every method is called from Tick.
type Observer interface {
	Spawned(s *Shape, next *shapes.Type)
	Locked(s *Shape)
	Cleared(rows []int, points int)
	LevelChanged(level int)
	Over(score int)
}

// NopObserver ignores every event. Embed it to implement part of Observer.
type NopObserver struct{}

func (NopObserver) Spawned(*Shape, *shapes.Type) {}
func (NopObserver) Locked(*Shape)                {}
func (NopObserver) Cleared([]int, int)           {}
func (NopObserver) LevelChanged(int)             {}
func (NopObserver) Over(int)                     {}

// Field is the playfield.
type Field struct {
	cfg      Config
	registry *shapes.Registry
	rng      *rand.Rand
	tree     *entity.Tree
	anims    *anim.Manager
	observer Observer

	id     entity.ID
	origin geom.Vec

	grid     []*Block // row-major, Width*Height
	rowCount []int
	dying    []*Block

	active    *Shape
	next      *shapes.Type
	nextColor core.Color

	level    int
	lines    int
	score    int
	counter  float64
	forced   ForcedDrop
	awaiting bool
	delay    int
	over     bool
}

// New creates a field in tree under parent, with its top-left corner at
// origin, and spawns the first shape.
func New(cfg Config, registry *shapes.Registry, rng *rand.Rand, tree *entity.Tree, parent entity.ID, origin geom.Vec) *Field {
	f := &Field{
		cfg:      cfg,
		registry: registry,
		rng:      rng,
		tree:     tree,
		anims:    anim.NewManager(),
		observer: NopObserver{},
		origin:   origin,
		grid:     make([]*Block, cfg.Width*cfg.Height),
		rowCount: make([]int, cfg.Height),
		level:    max(1, cfg.StartLevel),
	}
	f.id = tree.Add(f, parent)
	f.pickNext()
	f.spawn()
	return f
}

// SetObserver replaces the event observer. nil restores the no-op observer.
func (f *Field) SetObserver(o Observer) {
	if o == nil {
		o = NopObserver{}
	}
	f.observer = o
}

func (f *Field) ID() entity.ID                  { return f.id }
func (f *Field) LocalTransform() geom.Transform { return geom.Translation(f.origin) }

// Width returns the number of columns.
func (f *Field) Width() int { return f.cfg.Width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.cfg.Height }

// CellSize returns the size of one tile in pixels.
func (f *Field) CellSize() float64 { return f.cfg.CellSize }

// Bounds returns the field's rectangle in its own pixel space.
func (f *Field) Bounds() geom.Rect {
	return geom.NewRect(0, 0, float64(f.cfg.Width)*f.cfg.CellSize, float64(f.cfg.Height)*f.cfg.CellSize)
}

// Animations returns the manager running the field's animations.
func (f *Field) Animations() *anim.Manager { return f.anims }

// Active returns the falling shape, or nil.
func (f *Field) Active() *Shape { return f.active }

// Next returns the type that spawns after the active shape.
func (f *Field) Next() *shapes.Type { return f.next }

// NextColor returns the color the next shape spawns with.
func (f *Field) NextColor() core.Color { return f.nextColor }

func (f *Field) Score() int           { return f.score }
func (f *Field) Lines() int           { return f.lines }
func (f *Field) Level() int           { return f.level }
func (f *Field) GameOver() bool       { return f.over }
func (f *Field) Awaiting() bool       { return f.awaiting }
func (f *Field) Forced() ForcedDrop   { return f.forced }
func (f *Field) DropCounter() float64 { return f.counter }

// At returns the settled block at tile p, or nil.
func (f *Field) At(p geom.Point) *Block {
	if !f.inside(p) {
		return nil
	}
	return f.grid[p.Y*f.cfg.Width+p.X]
}

// Settled returns the settled blocks in row-major order.
func (f *Field) Settled() []*Block {
	out := make([]*Block, 0, len(f.grid)/2)
	for _, b := range f.grid {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}

// Dying returns blocks from cleared rows whose break animation still runs.
func (f *Field) Dying() []*Block { return f.dying }

// ChildCorrection keeps the active shape's hull inside the field while a
// rotation or kick animation swings it past a wall.
func (f *Field) ChildCorrection(child entity.ID) geom.Transform {
	if f.active == nil || child != f.active.id {
		return geom.Identity
	}
	hull := f.active.LocalTransform().ApplyAll(f.active.ConvexHull())
	return geom.Translation(entity.Fit(hull, f.Bounds()))
}

// Tick advances the field by one logic tick.
func (f *Field) Tick() {
	f.anims.Tick()
	if f.over {
		return
	}

	if f.awaiting {
		// The shape dissolves on the tick the countdown reaches zero.
		if f.delay > 0 {
			f.delay--
			if f.delay > 0 {
				return
			}
		}
		f.lock()
		return
	}

	if f.active == nil {
		f.spawn()
		return
	}

	f.counter++
	if f.counter+geom.Epsilon < f.threshold(f.forced) {
		return
	}
	if f.descend() {
		f.counter = 0
		switch f.forced {
		case DropSoft:
			f.score += f.cfg.SoftDropCell
		case DropHard:
			f.score += f.cfg.HardDropCell
		}
		return
	}
	f.startAwaiting()
}

// Perform samples the field's animations for rendering.
func (f *Field) Perform(interpolation float64) {
	f.anims.Perform(interpolation)
}

// TicksToDrop returns the ticks left before gravity next acts.
func (f *Field) TicksToDrop() int {
	left := f.threshold(f.forced) - f.counter
	return max(0, int(left-geom.Epsilon)+1)
}

func (f *Field) threshold(mode ForcedDrop) float64 {
	normal := f.cfg.Curve.DropTicks(f.level)
	switch mode {
	case DropHard:
		return float64(min(max(1, f.cfg.HardTicks), normal))
	case DropSoft:
		return float64(min(max(1, f.cfg.SoftTicks), normal))
	}
	return float64(normal)
}

func (f *Field) inside(p geom.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < f.cfg.Width && p.Y < f.cfg.Height
}

func (f *Field) free(cells []geom.Point) bool {
	for _, c := range cells {
		if !f.inside(c) || f.grid[c.Y*f.cfg.Width+c.X] != nil {
			return false
		}
	}
	return true
}

func (f *Field) pickNext() {
	f.next = f.registry.Random(f.rng)
	f.nextColor = f.next.Color()
	if f.cfg.RandomColors {
		f.nextColor = core.BlockColors[f.rng.Intn(len(core.BlockColors))]
	}
}

// spawn places the next type at the top center. A spawn onto settled blocks
// ends the game.
func (f *Field) spawn() {
	t, color := f.next, f.nextColor
	f.pickNext()
	f.spawnType(t, color)
}

func (f *Field) spawnType(t *shapes.Type, color core.Color) {
	anchor := geom.Pt((f.cfg.Width-t.FrameSize())/2, -t.TopRow(geom.Initial))
	s := newShape(t, anchor, color, f.cfg.CellSize)
	s.id = f.tree.Add(s, f.id)
	for _, b := range s.blocks {
		b.id = f.tree.Add(b, s.id)
	}
	f.active = s
	f.counter = 0
	if f.forced == DropHard {
		f.forced = DropNormal
	}
	f.observer.Spawned(s, f.next)

	if !f.free(s.cellsAt(geom.Point{}, geom.Initial)) {
		f.over = true
		f.observer.Over(f.score)
	}
}

func (f *Field) startAwaiting() {
	f.awaiting = true
	f.delay = max(f.cfg.AppearanceDelay, f.anims.Remaining(f.active.id))
}

// lock dissolves the active shape into settled blocks, clears full rows in
// the band the shape covered and spawns the next shape.
func (f *Field) lock() {
	s := f.active
	f.observer.Locked(s)

	for _, b := range s.blocks {
		f.anims.Drop(b.id)
		b.setOwner(nil)
		f.tree.SetParent(b.id, f.id)
		f.grid[b.tile.Y*f.cfg.Width+b.tile.X] = b
		f.rowCount[b.tile.Y]++
	}
	f.anims.Drop(s.id)
	f.tree.Remove(s.id)
	f.active = nil
	f.awaiting = false

	size := s.typ.FrameSize()
	if rows := f.clearRows(s.anchor.Y, s.anchor.Y+size); len(rows) > 0 {
		points := f.lineScore(len(rows))
		f.award(len(rows))
		f.observer.Cleared(rows, points)
	}
	f.spawn()
}

func (f *Field) lineScore(n int) int {
	if len(f.cfg.LineScores) == 0 {
		return 0
	}
	return f.cfg.LineScores[min(n, len(f.cfg.LineScores)-1)] * f.level
}

func (f *Field) award(rows int) {
	f.score += f.lineScore(rows)
	f.lines += rows
	if !f.cfg.Progression {
		return
	}
	level := max(1, f.cfg.StartLevel) + f.lines/max(1, f.cfg.LinesPerLevel)
	if level != f.level {
		f.level = level
		f.observer.LevelChanged(level)
	}
}
