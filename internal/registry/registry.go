// Package registry lists the rule-set modes a game can be started in.
// Modes register themselves in init() functions, so the CLI can list and
// resolve them without hardcoding the catalog.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/blockfall/internal/shapes"
)

// Mode is a named selection of shape sets.
type Mode struct {
	ID    string
	Title string
	Sets  []shapes.Set
}

// Registry builds the shape registry for the mode.
func (m Mode) Registry() *shapes.Registry {
	return shapes.NewRegistry(m.Sets...)
}

// SetNames returns the mode's sets as config strings.
func (m Mode) SetNames() []string {
	out := make([]string, len(m.Sets))
	for i, s := range m.Sets {
		out[i] = string(s)
	}
	return out
}

var (
	modes = make(map[string]Mode)
	mu    sync.RWMutex
)

// Register adds a mode to the registry.
// Panics if a mode with the same ID is already registered or has no sets.
func Register(m Mode) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[m.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", m.ID))
	}
	if len(m.Sets) == 0 {
		panic(fmt.Sprintf("registry: mode %q has no shape sets", m.ID))
	}
	modes[m.ID] = m
}

// List returns all registered modes, sorted by ID.
func List() []Mode {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Mode, 0, len(modes))
	for _, m := range modes {
		result = append(result, m)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the mode registered under id (case-insensitive).
func Lookup(id string) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := modes[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Mode{}, fmt.Errorf("registry: unknown mode %q", id)
	}
	return m, nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	_, err := Lookup(id)
	return err == nil
}
