package generator

import (
	"fmt"
	"sort"

	"codeberg.org/anaseto/gruid"

	"tilesmith/pkg/engine/rng"
	"tilesmith/pkg/engine/world"
)

// GridGenerator is an interface for level generation algorithms
type GridGenerator interface {
	Generate(r *rng.Source) (*Result, error)
	Name() string
}

// Result is what a generator hands over once it returns. Fields a generator
// does not produce stay zero.
type Result struct {
	Grid *world.Grid

	// Dungeon output
	Rooms      []Room
	Corridors  []Corridor
	StairsUp   gruid.Point
	StairsDown gruid.Point

	// Backtracking output
	Moves []Move
}

// Factory constructs a generator from an optional configuration map.
type Factory func(cfg map[string]string) (GridGenerator, error)

var generators = map[string]Factory{}

// Register adds a generator factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	generators[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	return f, nil
}

// New builds the named generator from cfg.
func New(name string, cfg map[string]string) (GridGenerator, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return f(cfg)
}

// Names returns the registered generator names, sorted.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultName is the generator used when none is requested
const DefaultName = "dungeon"
