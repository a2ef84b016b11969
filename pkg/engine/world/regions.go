package world

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"github.com/zyedidia/generic/mapset"
)

// passablePath walks 4-connected passable cells.
type passablePath struct {
	grid *Grid
	nbs  paths.Neighbors
}

func (pp *passablePath) passable(p gruid.Point) bool {
	return pp.grid.At(p).Passable()
}

func (pp *passablePath) Neighbors(p gruid.Point) []gruid.Point {
	if !pp.passable(p) {
		return nil
	}
	return pp.nbs.Cardinal(p, pp.passable)
}

// Regions returns the 4-connected components of passable cells. Components
// are ordered by their first cell in row-major order.
func Regions(g *Grid) [][]gruid.Point {
	pr := paths.NewPathRange(g.Range())
	pp := &passablePath{grid: g}
	seen := mapset.New[gruid.Point]()

	var regions [][]gruid.Point
	g.ForEachCell(func(x, y int, c Cell) {
		p := gruid.Point{X: x, Y: y}
		if !c.Passable() || seen.Has(p) {
			return
		}
		cc := pr.CCMap(pp, p)
		region := make([]gruid.Point, len(cc))
		copy(region, cc)
		for _, q := range region {
			seen.Put(q)
		}
		regions = append(regions, region)
	})
	return regions
}

// IsConnected reports whether every passable cell belongs to a single region.
// A grid without passable cells is not connected.
func IsConnected(g *Grid) bool {
	return len(Regions(g)) == 1
}

// Farthest returns the passable cell with the longest walking distance from
// start, and that distance. Ties keep the first cell reached.
func Farthest(g *Grid, start gruid.Point) (gruid.Point, int) {
	if !g.At(start).Passable() {
		return start, -1
	}

	type cellDist struct {
		p    gruid.Point
		dist int
	}

	pp := &passablePath{grid: g}
	visited := mapset.New[gruid.Point]()
	visited.Put(start)
	queue := []cellDist{{start, 0}}

	furthest, maxDist := start, 0
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.dist > maxDist {
			furthest, maxDist = current.p, current.dist
		}

		for _, n := range pp.Neighbors(current.p) {
			if !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, cellDist{n, current.dist + 1})
			}
		}
	}
	return furthest, maxDist
}
