package world

import (
	"errors"
	"fmt"

	"codeberg.org/anaseto/gruid"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
var ErrInvalidSize = errors.New("invalid grid size")

// BoundsError reports an access outside the grid.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("position (%d,%d) out of bounds for %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

// Grid is a fixed-size rectangle of cells stored row-major.
// Positions are (x, y) with x the column and y the row.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid creates a width x height grid with every cell set to fill
func NewGrid(width, height int, fill Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	g := &Grid{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	if fill != Empty {
		g.Fill(fill)
	}
	return g, nil
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if an x/y position is within grid bounds
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsInterior checks if a position is inside the grid and not on its border
func (g *Grid) IsInterior(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// IsOnBorder checks if a position is on the outermost ring of the grid
func (g *Grid) IsOnBorder(x, y int) bool {
	return g.InBounds(x, y) && !g.IsInterior(x, y)
}

// CenterPosition returns the x and y of the grid center
func (g *Grid) CenterPosition() (int, int) {
	return g.width / 2, g.height / 2
}

// Range returns the gruid range covering the whole grid.
func (g *Grid) Range() gruid.Range {
	return gruid.NewRange(0, 0, g.width, g.height)
}

// Get returns the cell at (x, y)
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Empty, g.boundsError(x, y)
	}
	return g.cells[y*g.width+x], nil
}

// Set stores c at (x, y)
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.InBounds(x, y) {
		return g.boundsError(x, y)
	}
	g.cells[y*g.width+x] = c
	return nil
}

// At returns the cell at p, or Empty when p lies outside the grid.
func (g *Grid) At(p gruid.Point) Cell {
	if !g.InBounds(p.X, p.Y) {
		return Empty
	}
	return g.cells[p.Y*g.width+p.X]
}

// Fill sets every cell of the grid to c
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{cells: cells, width: g.width, height: g.height}
}

// Equal reports whether both grids have the same size and contents
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Count returns the number of cells equal to c
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(x, y int, c Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y*g.width+x])
		}
	}
}

// Points returns the positions of every cell equal to c, row-major
func (g *Grid) Points(c Cell) []gruid.Point {
	var ps []gruid.Point
	g.ForEachCell(func(x, y int, cell Cell) {
		if cell == c {
			ps = append(ps, gruid.Point{X: x, Y: y})
		}
	})
	return ps
}

// String renders the grid using each cell's rune, one line per row
func (g *Grid) String() string {
	buf := make([]rune, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			buf = append(buf, g.cells[y*g.width+x].Rune())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func (g *Grid) boundsError(x, y int) error {
	return &BoundsError{X: x, Y: y, Width: g.width, Height: g.height}
}
