package generator

import (
	"fmt"

	"tilesmith/pkg/engine/rng"
	"tilesmith/pkg/engine/world"
)

// WalkConfig configures the random walk cave
type WalkConfig struct {
	Width  int
	Height int
	Steps  int
	// Walls raises a wall on every empty tile orthogonal to the floor
	Walls bool
}

// DefaultWalkConfig returns a 41x41 walk of 1000 steps with walls
func DefaultWalkConfig() WalkConfig {
	return WalkConfig{Width: 41, Height: 41, Steps: 1000, Walls: true}
}

// WalkConfigFromMap reads the walk keys over the defaults
func WalkConfigFromMap(cfg map[string]string) WalkConfig {
	c := DefaultWalkConfig()
	intFromMap(cfg, "width", &c.Width)
	intFromMap(cfg, "height", &c.Height)
	intFromMap(cfg, "steps", &c.Steps)
	boolFromMap(cfg, "walls", &c.Walls)
	return c
}

// Validate checks the config
func (c WalkConfig) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("%w: walk size %dx%d, need at least 3x3", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps %d", ErrInvalidConfig, c.Steps)
	}
	return nil
}

// WalkGenerator digs a cave by wandering one tile at a time from the centre
type WalkGenerator struct {
	Config WalkConfig
}

// NewWalkGenerator returns a validated random walk generator
func NewWalkGenerator(c WalkConfig) (*WalkGenerator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &WalkGenerator{Config: c}, nil
}

// Name returns the name of this generator
func (g *WalkGenerator) Name() string {
	return "walk"
}

// Generate creates a new grid by walking
func (g *WalkGenerator) Generate(r *rng.Source) (*Result, error) {
	c := g.Config
	if err := c.Validate(); err != nil {
		return nil, err
	}

	grid, err := world.NewGrid(c.Width, c.Height, world.Empty)
	if err != nil {
		return nil, err
	}

	// Start in the center (which is always inside the border)
	x, y := grid.CenterPosition()
	_ = grid.Set(x, y, world.Floor)

	for step := 0; step < c.Steps; step++ {
		dx, dy := randomDirection(r).Delta()
		// Steps that would reach the border are spent standing still
		if grid.IsInterior(x+dx, y+dy) {
			x += dx
			y += dy
		}
		_ = grid.Set(x, y, world.Floor)
	}

	if c.Walls {
		wallOrthogonal(grid)
	}

	return &Result{Grid: grid}, nil
}

// randomDirection returns a random cardinal direction
func randomDirection(r *rng.Source) world.Direction {
	return world.Direction(r.IntN(len(world.AllDirections())))
}

// wallOrthogonal turns the empty tiles next to floor into walls
func wallOrthogonal(grid *world.Grid) {
	for _, p := range grid.Points(world.Floor) {
		for _, d := range world.AllDirections() {
			q := d.Step(p)
			if grid.InBounds(q.X, q.Y) && grid.At(q) == world.Empty {
				_ = grid.Set(q.X, q.Y, world.Wall)
			}
		}
	}
}

func init() {
	Register("walk", func(cfg map[string]string) (GridGenerator, error) {
		return NewWalkGenerator(WalkConfigFromMap(cfg))
	})
}
