package generator

import (
	"errors"
	"testing"

	"tilesmith/pkg/engine/rng"
	"tilesmith/pkg/engine/world"
)

func TestCaveGenerate_NoSeedsOpensAwayFromCorners(t *testing.T) {
	c := DefaultCaveConfig()
	c.Width, c.Height = 10, 10
	c.SeedAliveChance = 0
	c.Iterations = 1

	g, err := NewCaveGenerator(c)
	if err != nil {
		t.Fatalf("NewCaveGenerator: %v", err)
	}
	grid := mustGenerate(t, g, 1).Grid
	grid.ForEachCell(func(x, y int, cell world.Cell) {
		corner := (x == 0 || x == 9) && (y == 0 || y == 9)
		want := world.Open
		if corner {
			// five neighbours lie past the edge, and 5 > BirthLimit
			want = world.Solid
		}
		if cell != want {
			t.Errorf("(%d,%d) = %v, want %v", x, y, cell, want)
		}
	})
}

func TestCaveGenerate_NoSeedsWithoutEdgeWallsIsAllOpen(t *testing.T) {
	c := DefaultCaveConfig()
	c.Width, c.Height = 10, 10
	c.SeedAliveChance = 0
	c.Iterations = 1
	c.WallsOutOfRange = false

	g, err := NewCaveGenerator(c)
	if err != nil {
		t.Fatalf("NewCaveGenerator: %v", err)
	}
	grid := mustGenerate(t, g, 1).Grid
	if n := grid.Count(world.Open); n != 100 {
		t.Errorf("Count(Open) = %d, want 100", n)
	}
}

func TestCaveGenerate_OnlyOpenAndSolid(t *testing.T) {
	g, err := NewCaveGenerator(DefaultCaveConfig())
	if err != nil {
		t.Fatalf("NewCaveGenerator: %v", err)
	}
	grid := mustGenerate(t, g, 8).Grid
	if grid.Width() != 40 || grid.Height() != 40 {
		t.Errorf("size = %dx%d, want 40x40", grid.Width(), grid.Height())
	}
	if n := grid.Count(world.Open) + grid.Count(world.Solid); n != 1600 {
		t.Errorf("Open+Solid = %d, want 1600", n)
	}
}

func TestStep_StableGridIsFixedPoint(t *testing.T) {
	solid, _ := world.NewGrid(8, 8, world.Solid)
	if !Stable(solid, 3, 4) {
		t.Error("Stable(all Solid) = false, want true")
	}
	if next := Step(solid, 3, 4); !next.Equal(solid) {
		t.Error("Step(all Solid) changed the grid")
	}

	// Sweep a generated cave until it settles, then check one more sweep
	g, _ := NewCaveGenerator(DefaultCaveConfig())
	grid := mustGenerate(t, g, 21).Grid
	for i := 0; i < 100 && !Stable(grid, 3, 4); i++ {
		grid = Step(grid, 3, 4)
	}
	if Stable(grid, 3, 4) {
		if next := Step(grid, 3, 4); !next.Equal(grid) {
			t.Error("Step on a stable grid returned a different grid")
		}
	}
}

func TestStep_ReadsSnapshot(t *testing.T) {
	grid, _ := world.NewGrid(3, 3, world.Solid)
	_ = grid.Set(1, 1, world.Open)
	before := grid.Clone()

	next := Step(grid, 3, 4)
	if !grid.Equal(before) {
		t.Error("Step mutated its input")
	}
	// eight live neighbours > BirthLimit
	if c, _ := next.Get(1, 1); c != world.Solid {
		t.Errorf("centre = %v, want Solid", c)
	}
}

func TestStep_LonelySolidDies(t *testing.T) {
	grid, _ := world.NewGrid(5, 5, world.Open)
	_ = grid.Set(2, 2, world.Solid)
	next := Step(grid, 3, 4)
	if c, _ := next.Get(2, 2); c != world.Open {
		t.Errorf("isolated Solid = %v after Step, want Open", c)
	}
}

func TestCaveConfig_Validate(t *testing.T) {
	bad := []func(*CaveConfig){
		func(c *CaveConfig) { c.Width = 0 },
		func(c *CaveConfig) { c.Height = -3 },
		func(c *CaveConfig) { c.SeedAliveChance = 1.5 },
		func(c *CaveConfig) { c.SeedAliveChance = -0.1 },
		func(c *CaveConfig) { c.Iterations = -1 },
		func(c *CaveConfig) { c.DeathLimit = 9 },
		func(c *CaveConfig) { c.BirthLimit = -1 },
	}
	for i, mutate := range bad {
		c := DefaultCaveConfig()
		mutate(&c)
		if _, err := NewCaveGenerator(c); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("case %d: error = %v, want ErrInvalidConfig", i, err)
		}
	}
}

func TestCaveGenerate_Deterministic(t *testing.T) {
	g, _ := NewCaveGenerator(DefaultCaveConfig())
	a, _ := g.Generate(rng.New(4))
	b, _ := g.Generate(rng.New(4))
	if !a.Grid.Equal(b.Grid) {
		t.Error("same seed produced different caves")
	}
}
