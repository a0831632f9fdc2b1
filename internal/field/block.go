package field

import (
	"github.com/vovakirdan/blockfall/internal/anim"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/entity"
	"github.com/vovakirdan/blockfall/internal/geom"
)

// TileObject is anything that occupies a tile and can be animated.
type TileObject interface {
	entity.Transformable
	anim.Animatable2D
	Tile() geom.Point
}

// Block is a single cell of color. It belongs either to the active shape or
// to the settled grid; ownership moves at lock time.
type Block struct {
	id     entity.ID
	tile   geom.Point
	pivot  geom.Vec // owning shape's rotation pivot in tile space
	color  core.Color
	size   float64
	owner  *Shape
	visual anim.Visual
}

func newBlock(tile geom.Point, color core.Color, size float64) *Block {
	return &Block{tile: tile, color: color, size: size, visual: anim.NewVisual()}
}

func (b *Block) ID() entity.ID           { return b.id }
func (b *Block) Visual() *anim.Visual    { return &b.visual }
func (b *Block) Tile() geom.Point        { return b.tile }
func (b *Block) Color() core.Color       { return b.color }
func (b *Block) Pivot() geom.Vec         { return b.pivot }
func (b *Block) Settled() bool           { return b.owner == nil }
func (b *Block) Center() geom.Vec        { return geom.V(b.size/2, b.size/2) }
func (b *Block) Size() float64           { return b.size }
func (b *Block) Vertices() []geom.Vec    { return geom.NewRect(0, 0, b.size, b.size).Corners() }
func (b *Block) ConvexHull() []geom.Vec  { return b.Vertices() }
func (b *Block) String() string          { return "block" + b.tile.String() }
func (b *Block) setOwner(s *Shape)       { b.owner = s }
func (b *Block) moveTo(tile geom.Point)  { b.tile = tile }
func (b *Block) setPivot(pivot geom.Vec) { b.pivot = pivot }

// LocalTransform places the block relative to its parent: the owning shape's
// frame while falling, the field once settled. The block's own angle and
// scale apply around its center.
func (b *Block) LocalTransform() geom.Transform {
	cell := b.tile
	if b.owner != nil {
		cell = cell.Sub(b.owner.anchor)
	}
	pos := cell.Vec().Scale(b.size).Add(b.visual.Offset())
	c := b.Center()
	return geom.Translation(pos).
		Combine(geom.RotationAround(b.visual.Angle, c)).
		Combine(geom.ScaleAround(b.visual.Scale(), c))
}
