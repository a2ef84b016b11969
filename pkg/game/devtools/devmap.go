package devtools

import (
	"tilesmith/pkg/engine/world"
	"tilesmith/pkg/game/generator"
	"tilesmith/pkg/game/level"
)

// DevMapName is the generator name reported for the developer map
const DevMapName = "devmap"

// devMapMargin is the number of floor cells between samples
const devMapMargin = 3

// DevGrid returns a hard-coded developer map: a walled floor with one
// sample of every non-empty cell kind, laid out in a row with a 3-cell
// margin between samples.
func DevGrid() *world.Grid {
	var kinds []world.Cell
	for _, c := range world.AllCells() {
		if c != world.Empty {
			kinds = append(kinds, c)
		}
	}

	width := 2 + devMapMargin + len(kinds)*(devMapMargin+1)
	height := 2 + 2*devMapMargin + 1

	grid, _ := world.NewGrid(width, height, world.Floor)
	grid.ForEachCell(func(x, y int, c world.Cell) {
		if grid.IsOnBorder(x, y) {
			_ = grid.Set(x, y, world.Wall)
		}
	})

	row := 1 + devMapMargin
	col := 1 + devMapMargin
	for i, c := range kinds {
		_ = grid.Set(col+i*(devMapMargin+1), row, c)
	}
	return grid
}

// DevLevel wraps DevGrid as a level so it can go through the normal dump and
// render paths.
func DevLevel() *level.Level {
	grid := DevGrid()
	return &level.Level{
		Name:    DevMapName,
		Depth:   1,
		Result:  &generator.Result{Grid: grid},
		Regions: world.Regions(grid),
	}
}
