package field

import (
	"math"

	"github.com/vovakirdan/blockfall/internal/anim"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/entity"
	"github.com/vovakirdan/blockfall/internal/geom"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

// Shape is the active, player-controlled group of blocks.
type Shape struct {
	id       entity.ID
	typ      *shapes.Type
	rotation geom.Rotation
	turns    int // signed quarter turns since spawn, drives the visual angle
	anchor   geom.Point
	size     float64
	blocks   []*Block
	visual   anim.Visual
}

func newShape(t *shapes.Type, anchor geom.Point, color core.Color, size float64) *Shape {
	s := &Shape{typ: t, anchor: anchor, size: size, visual: anim.NewVisual()}
	for _, c := range t.Cells(geom.Initial) {
		b := newBlock(anchor.Add(c), color, size)
		b.setOwner(s)
		s.blocks = append(s.blocks, b)
	}
	s.refreshPivots()
	return s
}

func (s *Shape) ID() entity.ID           { return s.id }
func (s *Shape) Visual() *anim.Visual    { return &s.visual }
func (s *Shape) Type() *shapes.Type      { return s.typ }
func (s *Shape) Rotation() geom.Rotation { return s.rotation }
func (s *Shape) Anchor() geom.Point      { return s.anchor }
func (s *Shape) Tile() geom.Point        { return s.anchor }

// Blocks returns the shape's blocks in mask order.
func (s *Shape) Blocks() []*Block { return s.blocks }

// logicalAngle is the angle the shape rests at once rotations finish.
func (s *Shape) logicalAngle() float64 {
	return float64(s.turns) * math.Pi / 2
}

// cellsAt returns the tiles the shape would cover after shifting by shift and
// turning to rotation r.
func (s *Shape) cellsAt(shift geom.Point, r geom.Rotation) []geom.Point {
	cells := s.typ.Cells(r)
	out := make([]geom.Point, len(cells))
	origin := s.anchor.Add(shift)
	for i, c := range cells {
		out[i] = origin.Add(c)
	}
	return out
}

// commit applies a shift and rotation already validated by the field.
func (s *Shape) commit(shift geom.Point, r geom.Rotation) {
	s.anchor = s.anchor.Add(shift)
	s.rotation = r
	for i, c := range s.typ.Cells(r) {
		s.blocks[i].moveTo(s.anchor.Add(c))
	}
	s.refreshPivots()
}

func (s *Shape) refreshPivots() {
	pivot := s.anchor.Vec().Add(s.typ.RotationPivot())
	for _, b := range s.blocks {
		b.setPivot(pivot)
	}
}

// LocalTransform positions the shape's frame inside the field. Rotation is
// already applied to block tiles, so only the part of the visual angle that
// hasn't caught up yet is applied here, around the type's pivot.
func (s *Shape) LocalTransform() geom.Transform {
	pos := s.anchor.Vec().Scale(s.size).Add(s.visual.Offset())
	residual := s.visual.Angle - s.logicalAngle()
	return geom.Translation(pos).
		Combine(geom.RotationAround(residual, s.typ.RotationPivot().Scale(s.size)))
}

// ConvexHull returns the hull of the solid cells at the current rotation in
// the shape's local pixel space.
func (s *Shape) ConvexHull() []geom.Vec {
	hull := s.typ.HullAt(s.rotation)
	out := make([]geom.Vec, len(hull))
	for i, p := range hull {
		out[i] = p.Scale(s.size)
	}
	return out
}

func (s *Shape) String() string {
	return s.typ.String() + "@" + s.anchor.String() + "/" + s.rotation.String()
}
