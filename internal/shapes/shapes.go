// Package shapes holds the immutable shape-type catalogs: solid masks per
// rotation, rotation pivots, wall-kick tables and convex hulls for the 4-cell
// and 5-cell rule sets.
//
// Everything is computed once by NewRegistry and never mutated afterwards; a
// *Registry is safe to share between fields.
package shapes

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/geom"
)

// Set names one of the two shape catalogs.
type Set string

const (
	Tetromino Set = "tetromino"
	Pentomino Set = "pentomino"
)

// ParseSet converts a config string to a Set.
func ParseSet(s string) (Set, error) {
	switch Set(strings.ToLower(strings.TrimSpace(s))) {
	case Tetromino, "4", "tetrominoes":
		return Tetromino, nil
	case Pentomino, "5", "pentominoes":
		return Pentomino, nil
	}
	return "", fmt.Errorf("shapes: unknown shape set %q", s)
}

// Type is one immutable shape variant.
type Type struct {
	name   string
	set    Set
	size   int
	pivot2 geom.Point // rotation pivot in half-cell units
	color  core.Color

	masks [4][]bool
	cells [4][]geom.Point
	kicks [4][]geom.Point // clockwise kicks indexed by source rotation
	hulls [4][]geom.Vec
}

// Name returns the catalog name of the type (e.g. "T", "F'").
func (t *Type) Name() string { return t.name }

// Set returns the catalog the type belongs to.
func (t *Type) Set() Set { return t.set }

// FrameSize returns N for the N×N frame the masks live in.
func (t *Type) FrameSize() int { return t.size }

// Color returns the default color of the type.
func (t *Type) Color() core.Color { return t.color }

// SolidBlockCount returns the number of solid cells (4 or 5).
func (t *Type) SolidBlockCount() int { return len(t.cells[geom.Initial]) }

// RotationPivot returns the point the type rotates around, in frame-local cell
// units. It is either the center of a cell or a cell corner.
func (t *Type) RotationPivot() geom.Vec {
	return geom.V(float64(t.pivot2.X)/2, float64(t.pivot2.Y)/2)
}

// IsSolid reports whether frame cell (x, y) is solid at rotation r.
// Coordinates outside the frame are empty.
func (t *Type) IsSolid(x, y int, r geom.Rotation) bool {
	if x < 0 || y < 0 || x >= t.size || y >= t.size {
		return false
	}
	return t.masks[r&3][y*t.size+x]
}

// Cells returns the solid frame cells at rotation r in row-major order.
// The returned slice must not be modified.
func (t *Type) Cells(r geom.Rotation) []geom.Point {
	return t.cells[r&3]
}

// ConvexHull returns the convex hull of the solid cell corners at the initial
// rotation, in frame-local cell units.
func (t *Type) ConvexHull() []geom.Vec {
	return t.hulls[geom.Initial]
}

// HullAt returns the convex hull of the solid cell corners at rotation r.
func (t *Type) HullAt(r geom.Rotation) []geom.Vec {
	return t.hulls[r&3]
}

// RightWallKicks returns the offsets tried, in order, when a clockwise turn
// from rotation from is blocked. The bare turn is not included.
func (t *Type) RightWallKicks(from geom.Rotation) []geom.Point {
	return t.kicks[from&3]
}

// LeftWallKicks returns the offsets tried when a counter-clockwise turn from
// rotation from is blocked: the negated clockwise kicks of the rotation one
// step counter-clockwise.
func (t *Type) LeftWallKicks(from geom.Rotation) []geom.Point {
	src := t.RightWallKicks(from.Add(geom.Left))
	out := make([]geom.Point, len(src))
	for i, k := range src {
		out[i] = k.Neg()
	}
	return out
}

// WallKicks returns the kick list for turning in direction dir from rotation
// from. dir must be geom.Left or geom.Right.
func (t *Type) WallKicks(from, dir geom.Rotation) []geom.Point {
	switch dir {
	case geom.Right:
		return t.RightWallKicks(from)
	case geom.Left:
		return t.LeftWallKicks(from)
	}
	panic(fmt.Sprintf("shapes: %v is not a turn direction", dir))
}

// TopRow returns the first frame row holding a solid cell at rotation r.
func (t *Type) TopRow(r geom.Rotation) int {
	top := t.size
	for _, c := range t.cells[r&3] {
		top = min(top, c.Y)
	}
	return top
}

func (t *Type) String() string {
	return fmt.Sprintf("%s/%s", t.set, t.name)
}
