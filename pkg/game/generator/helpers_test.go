// Package generator tests: connectivity, border, packing and move-stream
// properties of every generator, plus the registry.
package generator

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/zyedidia/generic/mapset"

	"tilesmith/pkg/engine/rng"
	"tilesmith/pkg/engine/world"
)

// countReachable returns the number of passable cells reachable from start via Up/Right/Down/Left.
func countReachable(grid *world.Grid, start gruid.Point) int {
	if !grid.At(start).Passable() {
		return 0
	}
	visited := mapset.New[gruid.Point]()
	visited.Put(start)
	queue := []gruid.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range world.AllDirections() {
			n := d.Step(p)
			if grid.At(n).Passable() && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited.Size()
}

// countPassable returns the total number of passable cells.
func countPassable(grid *world.Grid) int {
	n := 0
	grid.ForEachCell(func(x, y int, c world.Cell) {
		if c.Passable() {
			n++
		}
	})
	return n
}

// firstPassable returns the first passable cell in row-major order.
func firstPassable(t *testing.T, grid *world.Grid) gruid.Point {
	t.Helper()
	var found gruid.Point
	ok := false
	grid.ForEachCell(func(x, y int, c world.Cell) {
		if !ok && c.Passable() {
			found, ok = gruid.Point{X: x, Y: y}, true
		}
	})
	if !ok {
		t.Fatal("grid has no passable cell")
	}
	return found
}

// assertConnected fails when the passable cells do not form one region.
func assertConnected(t *testing.T, grid *world.Grid) {
	t.Helper()
	total := countPassable(grid)
	reachable := countReachable(grid, firstPassable(t, grid))
	if reachable != total {
		t.Errorf("reachable passable cells %d != total passable cells %d (isolated areas)", reachable, total)
	}
	if n := len(world.Regions(grid)); n != 1 {
		t.Errorf("len(Regions) = %d, want 1", n)
	}
}

// mustGenerate runs g with a fixed seed and fails the test on error.
func mustGenerate(t *testing.T, g GridGenerator, seed int64) *Result {
	t.Helper()
	res, err := g.Generate(rng.New(seed))
	if err != nil {
		t.Fatalf("%s Generate(seed %d): %v", g.Name(), seed, err)
	}
	if res == nil || res.Grid == nil {
		t.Fatalf("%s Generate(seed %d) returned no grid", g.Name(), seed)
	}
	return res
}
