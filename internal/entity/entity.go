// Package entity implements the transform tree every visual object hangs in.
//
// Objects live in an arena keyed by ID. A node refers to its parent by ID
// only, so there are no pointer cycles and a removed parent simply ends the
// chain. Global transforms are folded from the root down on request; nothing
// is cached, so a render pass always sees the current local transforms.
package entity

import (
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/geom"
)

// ID identifies an object in a Tree. The zero ID means "no object".
type ID uint32

// None is the zero ID, used as the parent of root objects.
const None ID = 0

// Transformable is implemented by everything placed in the tree.
type Transformable interface {
	// LocalTransform is the object's own rotation and shift relative to its
	// parent, independent of ancestry.
	LocalTransform() geom.Transform
}

// Corrector is implemented by parents that adjust specific children, such as
// a field pushing an overhanging shape back inside its frame.
type Corrector interface {
	// ChildCorrection returns an extra transform applied between the parent's
	// global transform and the child's local transform.
	ChildCorrection(child ID) geom.Transform
}

// VertexSource exposes an object's outline in local coordinates.
type VertexSource interface {
	Vertices() []geom.Vec
}

// HullSource exposes a precomputed convex hull in local coordinates. When an
// object implements it, Tree.Hull skips recomputing the hull from vertices.
type HullSource interface {
	ConvexHull() []geom.Vec
}

type node struct {
	obj    Transformable
	parent ID
}

// Tree is an arena of transformable objects linked by parent IDs.
type Tree struct {
	nodes *intmap.Map[ID, *node]
	next  ID
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{
		nodes: intmap.New[ID, *node](64),
		next:  1,
	}
}

// Add inserts obj under parent and returns its ID. IDs are never reused, so a
// stale ID held elsewhere can't alias a newer object.
func (t *Tree) Add(obj Transformable, parent ID) ID {
	id := t.next
	t.next++
	t.nodes.Put(id, &node{obj: obj, parent: parent})
	return id
}

// Remove deletes id from the tree. Children keep their parent ID, which now
// resolves to nothing; callers reparent or remove them explicitly.
func (t *Tree) Remove(id ID) {
	t.nodes.Del(id)
}

// Contains reports whether id is alive.
func (t *Tree) Contains(id ID) bool {
	_, ok := t.nodes.Get(id)
	return ok
}

// Len returns the number of live objects.
func (t *Tree) Len() int {
	return t.nodes.Len()
}

// Object returns the object stored under id.
func (t *Tree) Object(id ID) (Transformable, bool) {
	n, ok := t.nodes.Get(id)
	if !ok {
		return nil, false
	}
	return n.obj, true
}

// Parent returns the parent ID of id (None for roots or unknown IDs).
func (t *Tree) Parent(id ID) ID {
	if n, ok := t.nodes.Get(id); ok {
		return n.parent
	}
	return None
}

// SetParent moves id under parent.
func (t *Tree) SetParent(id, parent ID) {
	if n, ok := t.nodes.Get(id); ok {
		n.parent = parent
	}
}

// Children returns the IDs whose parent is id, in ascending ID order.
func (t *Tree) Children(id ID) []ID {
	var out []ID
	t.nodes.ForEach(func(k ID, n *node) bool {
		if n.parent == id {
			out = append(out, k)
		}
		return true
	})
	slices.Sort(out)
	return out
}

// Global returns the transform mapping id's local coordinates to screen
// coordinates: every ancestor's local transform composed outward, with each
// parent's correction for the child applied between the two.
func (t *Tree) Global(id ID) geom.Transform {
	n, ok := t.nodes.Get(id)
	if !ok {
		return geom.Identity
	}
	local := n.obj.LocalTransform()
	if n.parent == None {
		return local
	}
	p, ok := t.nodes.Get(n.parent)
	if !ok {
		return local
	}
	if c, ok := p.obj.(Corrector); ok {
		local = c.ChildCorrection(id).Combine(local)
	}
	return t.Global(n.parent).Combine(local)
}

// Vertices returns id's outline in screen coordinates.
func (t *Tree) Vertices(id ID) []geom.Vec {
	n, ok := t.nodes.Get(id)
	if !ok {
		return nil
	}
	vs, ok := n.obj.(VertexSource)
	if !ok {
		return nil
	}
	return t.Global(id).ApplyAll(vs.Vertices())
}

// Hull returns id's convex hull in screen coordinates, using the object's
// precomputed hull when it has one.
func (t *Tree) Hull(id ID) []geom.Vec {
	n, ok := t.nodes.Get(id)
	if !ok {
		return nil
	}
	return t.Global(id).ApplyAll(LocalHull(n.obj))
}

// LocalHull returns obj's convex hull in its own coordinates.
func LocalHull(obj Transformable) []geom.Vec {
	if hs, ok := obj.(HullSource); ok {
		return hs.ConvexHull()
	}
	if vs, ok := obj.(VertexSource); ok {
		return geom.ConvexHull(vs.Vertices())
	}
	return nil
}

// Fit returns the smallest axis-aligned shift that moves every point of hull
// inside bounds, solved independently per axis from the point overhanging the
// most on each side. A hull wider than bounds is centered on that axis.
func Fit(hull []geom.Vec, bounds geom.Rect) geom.Vec {
	if len(hull) == 0 {
		return geom.Vec{}
	}
	b := geom.Bounds(hull)
	return geom.V(
		fitAxis(b.Min.X, b.Max.X, bounds.Min.X, bounds.Max.X),
		fitAxis(b.Min.Y, b.Max.Y, bounds.Min.Y, bounds.Max.Y),
	)
}

func fitAxis(lo, hi, minB, maxB float64) float64 {
	under := max(0, minB-lo)
	over := max(0, hi-maxB)
	switch {
	case under > geom.Epsilon && over > geom.Epsilon:
		return (under - over) / 2
	case under > geom.Epsilon:
		return under
	case over > geom.Epsilon:
		return -over
	}
	return 0
}
