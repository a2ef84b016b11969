package generator

import (
	"fmt"

	"tilesmith/pkg/engine/rng"
	"tilesmith/pkg/engine/world"
)

// CaveConfig configures the cellular automata cave
type CaveConfig struct {
	Width           int
	Height          int
	SeedAliveChance float64 // probability that a cell starts Solid
	DeathLimit      int     // Solid with fewer live neighbours opens up
	BirthLimit      int     // Open with more live neighbours fills in
	Iterations      int
	// WallsOutOfRange counts neighbours past the grid edge as live
	WallsOutOfRange bool
}

// DefaultCaveConfig returns the reference 40x40 cave settings
func DefaultCaveConfig() CaveConfig {
	return CaveConfig{
		Width:           40,
		Height:          40,
		SeedAliveChance: 0.40,
		DeathLimit:      3,
		BirthLimit:      4,
		Iterations:      6,
		WallsOutOfRange: true,
	}
}

// CaveConfigFromMap reads the cave keys over the defaults
func CaveConfigFromMap(cfg map[string]string) CaveConfig {
	c := DefaultCaveConfig()
	intFromMap(cfg, "width", &c.Width)
	intFromMap(cfg, "height", &c.Height)
	floatFromMap(cfg, "seed_alive_chance", &c.SeedAliveChance)
	intFromMap(cfg, "death_limit", &c.DeathLimit)
	intFromMap(cfg, "birth_limit", &c.BirthLimit)
	intFromMap(cfg, "iterations", &c.Iterations)
	boolFromMap(cfg, "walls_out_of_range", &c.WallsOutOfRange)
	return c
}

// Validate checks the config
func (c CaveConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: cave size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SeedAliveChance < 0 || c.SeedAliveChance > 1:
		return fmt.Errorf("%w: seed_alive_chance %v outside [0, 1]", ErrInvalidConfig, c.SeedAliveChance)
	case c.Iterations < 0:
		return fmt.Errorf("%w: iterations %d", ErrInvalidConfig, c.Iterations)
	case c.DeathLimit < 0 || c.DeathLimit > 8:
		return fmt.Errorf("%w: death_limit %d outside [0, 8]", ErrInvalidConfig, c.DeathLimit)
	case c.BirthLimit < 0 || c.BirthLimit > 8:
		return fmt.Errorf("%w: birth_limit %d outside [0, 8]", ErrInvalidConfig, c.BirthLimit)
	}
	return nil
}

// CaveGenerator smooths random noise into caves with a birth/death rule
type CaveGenerator struct {
	Config CaveConfig
}

// NewCaveGenerator returns a validated cave generator
func NewCaveGenerator(c CaveConfig) (*CaveGenerator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &CaveGenerator{Config: c}, nil
}

// Name returns the name of this generator
func (g *CaveGenerator) Name() string {
	return "cave"
}

// Generate seeds the grid and runs the configured number of sweeps
func (g *CaveGenerator) Generate(r *rng.Source) (*Result, error) {
	c := g.Config
	if err := c.Validate(); err != nil {
		return nil, err
	}

	grid, err := world.NewGrid(c.Width, c.Height, world.Open)
	if err != nil {
		return nil, err
	}
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if r.Chance(c.SeedAliveChance) {
				_ = grid.Set(x, y, world.Solid)
			}
		}
	}

	for i := 0; i < c.Iterations; i++ {
		grid = sweep(grid, c.DeathLimit, c.BirthLimit, c.WallsOutOfRange)
	}

	return &Result{Grid: grid}, nil
}

// liveNeighbours counts Solid cells around (x, y). With edgesAlive, cells
// past the edge count as live, which keeps the border closed.
func liveNeighbours(grid *world.Grid, x, y int, edgesAlive bool) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			c, err := grid.Get(x+dx, y+dy)
			if err != nil {
				if edgesAlive {
					count++
				}
				continue
			}
			if c == world.Solid {
				count++
			}
		}
	}
	return count
}

// Step applies one sweep of the rule, counting the outside of the grid as
// live. Every cell reads the input grid, which is left untouched.
func Step(grid *world.Grid, deathLimit, birthLimit int) *world.Grid {
	return sweep(grid, deathLimit, birthLimit, true)
}

func sweep(grid *world.Grid, deathLimit, birthLimit int, edgesAlive bool) *world.Grid {
	next := grid.Clone()
	grid.ForEachCell(func(x, y int, c world.Cell) {
		n := liveNeighbours(grid, x, y, edgesAlive)
		if c == world.Solid {
			if n < deathLimit {
				_ = next.Set(x, y, world.Open)
			}
		} else if n > birthLimit {
			_ = next.Set(x, y, world.Solid)
		}
	})
	return next
}

// Stable reports whether another sweep would leave grid unchanged
func Stable(grid *world.Grid, deathLimit, birthLimit int) bool {
	return Step(grid, deathLimit, birthLimit).Equal(grid)
}

func init() {
	Register("cave", func(cfg map[string]string) (GridGenerator, error) {
		return NewCaveGenerator(CaveConfigFromMap(cfg))
	})
}
