package shapes

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/geom"
)

func TestCatalogSizes(t *testing.T) {
	assert.Equal(t, 7, NewRegistry(Tetromino).Len())
	assert.Equal(t, 18, NewRegistry(Pentomino).Len())
	assert.Equal(t, 25, NewRegistry(Tetromino, Pentomino).Len())
	assert.Equal(t, 7, NewRegistry().Len(), "default set")
	assert.Equal(t, 7, NewRegistry(Tetromino, Tetromino).Len(), "duplicates ignored")
	assert.Equal(t, 5, NewRegistry(Tetromino, Pentomino).MaxFrameSize())
}

func TestParseSet(t *testing.T) {
	tests := []struct {
		in   string
		want Set
		err  bool
	}{
		{"tetromino", Tetromino, false},
		{" Pentomino ", Pentomino, false},
		{"5", Pentomino, false},
		{"hexomino", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSet(tc.in)
			if tc.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEveryTypeIsConsistent(t *testing.T) {
	reg := NewRegistry(Tetromino, Pentomino)
	for _, typ := range reg.Types() {
		t.Run(typ.String(), func(t *testing.T) {
			want := 4
			if typ.Set() == Pentomino {
				want = 5
			}
			assert.Equal(t, want, typ.SolidBlockCount())
			assert.Equal(t, want, typ.FrameSize())

			for _, r := range geom.Rotations {
				cells := typ.Cells(r)
				require.Len(t, cells, want)
				count := 0
				for y := range typ.FrameSize() {
					for x := range typ.FrameSize() {
						if typ.IsSolid(x, y, r) {
							count++
						}
					}
				}
				assert.Equal(t, want, count, "mask and cells agree at %v", r)

				// Every hull vertex is a corner of a solid cell and every cell
				// corner lies inside the hull bounds.
				hull := typ.HullAt(r)
				bounds := geom.Bounds(hull)
				for _, c := range cells {
					assert.True(t, bounds.Contains(c.Vec()))
					assert.True(t, bounds.Contains(c.Vec().Add(geom.V(1, 1))))
				}
				for _, v := range hull {
					assert.True(t, isSolidCorner(typ, r, v), "hull vertex %v", v)
				}
			}
		})
	}
}

func TestRotationAroundPivotMatchesMasks(t *testing.T) {
	reg := NewRegistry(Tetromino, Pentomino)
	for _, typ := range reg.Types() {
		pivot := typ.RotationPivot()
		for _, r := range geom.Rotations {
			turn := geom.RotationAround(r.Angle(), pivot)
			for _, c := range typ.Cells(geom.Initial) {
				center := turn.Apply(c.Vec().Add(geom.V(0.5, 0.5)))
				x, y := int(center.X-0.5+0.25), int(center.Y-0.5+0.25)
				assert.True(t, typ.IsSolid(x, y, r), "%v cell %v at %v", typ, c, r)
			}
		}
	}
}

func TestLeftKicksAreNegatedRightKicks(t *testing.T) {
	reg := NewRegistry(Tetromino, Pentomino)
	for _, typ := range reg.Types() {
		for _, r := range geom.Rotations {
			right := typ.RightWallKicks(r.Add(geom.Left))
			left := typ.LeftWallKicks(r)
			require.Len(t, left, len(right))
			for i := range right {
				assert.Equal(t, right[i].Neg(), left[i])
			}
			assert.Equal(t, left, typ.WallKicks(r, geom.Left))
			assert.Equal(t, typ.RightWallKicks(r), typ.WallKicks(r, geom.Right))
		}
	}
}

func TestStandardKicks(t *testing.T) {
	reg := NewRegistry(Tetromino)
	tee := reg.MustLookup(Tetromino, "T")
	assert.Equal(t, []geom.Point{{X: -1}, {X: -1, Y: -1}, {Y: 2}, {X: -1, Y: 2}}, tee.RightWallKicks(geom.Initial))
	assert.Empty(t, reg.MustLookup(Tetromino, "O").RightWallKicks(geom.Initial))
	assert.Len(t, reg.MustLookup(Tetromino, "I").RightWallKicks(geom.Right), 4)

	assert.Panics(t, func() { tee.WallKicks(geom.Initial, geom.UpsideDown) })
}

func TestIShapeSpawnLayout(t *testing.T) {
	i := NewRegistry(Tetromino).MustLookup(Tetromino, "I")
	assert.Equal(t, []geom.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}, i.Cells(geom.Initial))
	assert.Equal(t, 1, i.TopRow(geom.Initial))
	assert.Equal(t, []geom.Point{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}, i.Cells(geom.Right))
	assert.Equal(t, []geom.Vec{geom.V(0, 1), geom.V(4, 1), geom.V(4, 2), geom.V(0, 2)}, i.ConvexHull())
}

func TestOShapeIsRotationInvariant(t *testing.T) {
	o := NewRegistry(Tetromino).MustLookup(Tetromino, "O")
	for _, r := range geom.Rotations {
		assert.Equal(t, o.Cells(geom.Initial), o.Cells(r))
	}
}

func TestLookupAndRandom(t *testing.T) {
	reg := NewRegistry(Tetromino, Pentomino)
	_, err := reg.Lookup(Pentomino, "Q")
	assert.Error(t, err)

	f, err := reg.Lookup(Pentomino, "F'")
	require.NoError(t, err)
	assert.Equal(t, "F'", f.Name())

	rng := rand.New(rand.NewSource(7))
	seen := map[Set]int{}
	for range 2000 {
		seen[reg.Random(rng).Set()]++
	}
	// 7 of 25 types are tetrominoes.
	assert.InDelta(t, 2000*7.0/25.0, float64(seen[Tetromino]), 120)
	assert.InDelta(t, 2000*18.0/25.0, float64(seen[Pentomino]), 120)
}

func isSolidCorner(typ *Type, r geom.Rotation, v geom.Vec) bool {
	x, y := int(v.X), int(v.Y)
	for _, d := range []geom.Point{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: -1}} {
		if typ.IsSolid(x+d.X, y+d.Y, r) {
			return true
		}
	}
	return false
}
