package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/geom"
)

type fixed struct {
	local geom.Transform
	verts []geom.Vec
}

func (f *fixed) LocalTransform() geom.Transform { return f.local }
func (f *fixed) Vertices() []geom.Vec          { return f.verts }

type hulled struct {
	fixed
	hull []geom.Vec
}

func (h *hulled) ConvexHull() []geom.Vec { return h.hull }

type correcting struct {
	fixed
	target ID
	shift  geom.Vec
}

func (c *correcting) ChildCorrection(child ID) geom.Transform {
	if child == c.target {
		return geom.Translation(c.shift)
	}
	return geom.Identity
}

func TestGlobalComposesAncestors(t *testing.T) {
	tree := NewTree()
	root := tree.Add(&fixed{local: geom.Translation(geom.V(100, 50))}, None)
	mid := tree.Add(&fixed{local: geom.QuarterTurn(geom.Right)}, root)
	leaf := tree.Add(&fixed{local: geom.Translation(geom.V(10, 0))}, mid)

	got := tree.Global(leaf).Apply(geom.V(0, 0))
	// leaf shifts right by 10, mid turns that to down by 10, root adds (100, 50).
	assert.True(t, got.ApproxEqual(geom.V(100, 60)), "got %v", got)
	assert.Equal(t, mid, tree.Parent(leaf))
	assert.Equal(t, []ID{mid}, tree.Children(root))
}

func TestCorrectionAppliesOnlyToTargetChild(t *testing.T) {
	tree := NewTree()
	parent := &correcting{fixed: fixed{local: geom.Identity}, shift: geom.V(-3, 0)}
	pid := tree.Add(parent, None)
	a := tree.Add(&fixed{local: geom.Translation(geom.V(5, 5))}, pid)
	b := tree.Add(&fixed{local: geom.Translation(geom.V(5, 5))}, pid)
	parent.target = a

	assert.True(t, tree.Global(a).Apply(geom.Vec{}).ApproxEqual(geom.V(2, 5)))
	assert.True(t, tree.Global(b).Apply(geom.Vec{}).ApproxEqual(geom.V(5, 5)))

	// The correction sits outside the child's rotation: a rotated child is
	// still shifted along the parent's x axis.
	rotated := tree.Add(&fixed{local: geom.QuarterTurn(geom.Right)}, pid)
	parent.target = rotated
	assert.True(t, tree.Global(rotated).Apply(geom.V(1, 0)).ApproxEqual(geom.V(-3, 1)))
}

func TestRemoveAndReparent(t *testing.T) {
	tree := NewTree()
	a := tree.Add(&fixed{local: geom.Translation(geom.V(1, 0))}, None)
	b := tree.Add(&fixed{local: geom.Translation(geom.V(0, 1))}, None)
	c := tree.Add(&fixed{local: geom.Identity}, a)
	require.Equal(t, 3, tree.Len())

	tree.SetParent(c, b)
	assert.True(t, tree.Global(c).Apply(geom.Vec{}).ApproxEqual(geom.V(0, 1)))

	tree.Remove(b)
	assert.False(t, tree.Contains(b))
	assert.True(t, tree.Global(c).Apply(geom.Vec{}).ApproxEqual(geom.Vec{}), "dangling parent ends the chain")

	d := tree.Add(&fixed{local: geom.Identity}, None)
	assert.Greater(t, d, c, "ids are not reused")
	_, ok := tree.Object(b)
	assert.False(t, ok)
}

func TestHullPrefersPrecomputed(t *testing.T) {
	tree := NewTree()
	square := []geom.Vec{geom.V(0, 0), geom.V(2, 0), geom.V(2, 2), geom.V(0, 2), geom.V(1, 1)}
	plain := tree.Add(&fixed{local: geom.Translation(geom.V(10, 0)), verts: square}, None)
	assert.Equal(t, []geom.Vec{geom.V(10, 0), geom.V(12, 0), geom.V(12, 2), geom.V(10, 2)}, tree.Hull(plain))

	pre := []geom.Vec{geom.V(0, 0), geom.V(1, 0), geom.V(0, 1)}
	h := tree.Add(&hulled{fixed: fixed{local: geom.Identity, verts: square}, hull: pre}, None)
	assert.Equal(t, pre, tree.Hull(h))
	assert.Len(t, tree.Vertices(h), len(square))
}

func TestFit(t *testing.T) {
	bounds := geom.NewRect(0, 0, 100, 200)
	tests := []struct {
		name string
		hull []geom.Vec
		want geom.Vec
	}{
		{"inside", []geom.Vec{geom.V(10, 10), geom.V(20, 20)}, geom.Vec{}},
		{"overhang left", []geom.Vec{geom.V(-7, 10), geom.V(20, 20), geom.V(-3, 15)}, geom.V(7, 0)},
		{"overhang right and top", []geom.Vec{geom.V(90, -4), geom.V(105, 20)}, geom.V(-5, 4)},
		{"overhang bottom", []geom.Vec{geom.V(50, 190), geom.V(60, 212)}, geom.V(0, -12)},
		{"wider than bounds", []geom.Vec{geom.V(-10, 0), geom.V(130, 0)}, geom.V(-10, 0)},
		{"empty", nil, geom.Vec{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Fit(tc.hull, bounds)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
		})
	}
}

func TestGlobalOfUnknownIsIdentity(t *testing.T) {
	tree := NewTree()
	assert.True(t, tree.Global(42).ApproxEqual(geom.Identity))
	assert.Nil(t, tree.Hull(42))
	assert.InDelta(t, 0, tree.Global(42).Angle(), 1e-12)
	assert.False(t, math.IsNaN(tree.Global(42).Scale()))
}
