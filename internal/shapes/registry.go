package shapes

import (
	"fmt"
	"math/rand"
)

// Registry is the immutable union of one or more shape catalogs.
type Registry struct {
	sets  []Set
	types []*Type
	size  int
}

// NewRegistry builds every type of the given sets. Passing no sets selects the
// 4-cell catalog. Unknown sets panic: they are a programming error, config
// strings go through ParseSet first.
func NewRegistry(sets ...Set) *Registry {
	if len(sets) == 0 {
		sets = []Set{Tetromino}
	}
	r := &Registry{}
	seen := make(map[Set]bool, len(sets))
	for _, set := range sets {
		if seen[set] {
			continue
		}
		seen[set] = true
		r.sets = append(r.sets, set)
		for _, def := range definitions(set) {
			t := build(set, def)
			r.types = append(r.types, t)
			r.size = max(r.size, t.size)
		}
	}
	return r
}

// Sets returns the catalogs in the registry.
func (r *Registry) Sets() []Set {
	return append([]Set(nil), r.sets...)
}

// Types returns every type in catalog order.
func (r *Registry) Types() []*Type {
	return append([]*Type(nil), r.types...)
}

// Len returns the number of types.
func (r *Registry) Len() int {
	return len(r.types)
}

// MaxFrameSize returns the largest frame size among the types.
func (r *Registry) MaxFrameSize() int {
	return r.size
}

// Lookup finds a type by set and name.
func (r *Registry) Lookup(set Set, name string) (*Type, error) {
	for _, t := range r.types {
		if t.set == set && t.name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("shapes: no type %s/%s in registry", set, name)
}

// MustLookup is Lookup for statically known names.
func (r *Registry) MustLookup(set Set, name string) *Type {
	t, err := r.Lookup(set, name)
	if err != nil {
		panic(err)
	}
	return t
}

// Random draws a type uniformly over the union of catalogs, so each catalog
// is weighted by its size.
func (r *Registry) Random(rng *rand.Rand) *Type {
	return r.types[rng.Intn(len(r.types))]
}
