// Package level builds levels from the generator registry and hands them to
// an emitter.
package level

import (
	"fmt"
	"log"

	"codeberg.org/anaseto/gruid"

	"tilesmith/pkg/engine/rng"
	"tilesmith/pkg/engine/world"
	"tilesmith/pkg/game/generator"
	"tilesmith/pkg/game/renderer"
)

// Options selects a generator and its inputs
type Options struct {
	// Generator is a registry name; empty means generator.DefaultName
	Generator string
	// Params is passed to the generator factory
	Params map[string]string
	// Seed is used when HasSeed is set, otherwise a time-based seed is drawn
	Seed    int64
	HasSeed bool
	// Depth is carried through to the Level, starting at 1
	Depth int
}

// Level is a generated level and the inputs that reproduce it
type Level struct {
	Name    string
	Seed    int64
	Depth   int
	Params  map[string]string
	Result  *generator.Result
	Regions [][]gruid.Point
}

// Build generates a level and emits it to e. When e is nil the level is
// only generated.
func Build(opts Options, e renderer.Emitter) (*Level, error) {
	name := opts.Generator
	if name == "" {
		name = generator.DefaultName
	}

	seed := opts.Seed
	if !opts.HasSeed {
		seed = rng.NewSeed()
	}

	depth := opts.Depth
	if depth < 1 {
		depth = 1
	}

	gen, err := generator.New(name, opts.Params)
	if err != nil {
		return nil, err
	}

	res, err := gen.Generate(rng.New(seed))
	if err != nil {
		return nil, fmt.Errorf("%s (seed %d): %w", name, seed, err)
	}

	lvl := &Level{
		Name:    gen.Name(),
		Seed:    seed,
		Depth:   depth,
		Params:  opts.Params,
		Result:  res,
		Regions: world.Regions(res.Grid),
	}
	log.Printf("Generated %s level %d (seed %d, %dx%d)", lvl.Name, depth, seed, res.Grid.Width(), res.Grid.Height())

	if e == nil {
		return lvl, nil
	}
	if err := Emit(lvl, e); err != nil {
		return nil, err
	}
	return lvl, nil
}

// Emit streams the level's moves to a MoveEmitter and its finished grid to
// anything else.
func Emit(lvl *Level, e renderer.Emitter) error {
	res := lvl.Result
	if _, ok := e.(renderer.MoveEmitter); ok && len(res.Moves) > 0 {
		return renderer.EmitMoves(res.Moves, e)
	}
	return renderer.EmitGrid(res.Grid, e)
}

// Reset regenerates the level with the same generator, parameters and seed
func Reset(lvl *Level, e renderer.Emitter) (*Level, error) {
	return Build(lvl.options(lvl.Seed, lvl.Depth), e)
}

// Next generates the following level: same generator and parameters, one
// deeper, seeded from the current seed.
func Next(lvl *Level, e renderer.Emitter) (*Level, error) {
	return Build(lvl.options(lvl.Seed+1, lvl.Depth+1), e)
}

func (l *Level) options(seed int64, depth int) Options {
	return Options{
		Generator: l.Name,
		Params:    l.Params,
		Seed:      seed,
		HasSeed:   true,
		Depth:     depth,
	}
}
