package generator

import (
	"fmt"

	"tilesmith/pkg/engine/rng"
	"tilesmith/pkg/engine/world"
)

// maxDivisionDepth bounds the recursion of the division generator
const maxDivisionDepth = 64

// DivisionConfig configures the recursive division maze
type DivisionConfig struct {
	// Size is the side of the square grid; it must be odd so that walls
	// land on even lines and passages on odd ones.
	Size int
}

// DefaultDivisionConfig returns the reference 49x49 maze
func DefaultDivisionConfig() DivisionConfig {
	return DivisionConfig{Size: 49}
}

// DivisionConfigFromMap reads "size" over the defaults
func DivisionConfigFromMap(cfg map[string]string) DivisionConfig {
	c := DefaultDivisionConfig()
	intFromMap(cfg, "size", &c.Size)
	return c
}

// Validate checks the config
func (c DivisionConfig) Validate() error {
	if c.Size < 7 || c.Size%2 == 0 {
		return fmt.Errorf("%w: division size %d must be odd and at least 7", ErrInvalidConfig, c.Size)
	}
	return nil
}

// DivisionGenerator carves a maze by recursively splitting an open
// chamber with walls that each keep a single hole.
type DivisionGenerator struct {
	Config DivisionConfig
}

// NewDivisionGenerator returns a validated division generator
func NewDivisionGenerator(c DivisionConfig) (*DivisionGenerator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &DivisionGenerator{Config: c}, nil
}

// Name returns the name of this generator
func (g *DivisionGenerator) Name() string {
	return "division"
}

// chamber is an inclusive rectangle still open to division. Its bounds are
// always odd, so the wall lines inside it are even.
type chamber struct {
	rmin, cmin, rmax, cmax int
}

func (c chamber) width() int  { return c.cmax - c.cmin }
func (c chamber) height() int { return c.rmax - c.rmin }

// Generate creates the maze grid
func (g *DivisionGenerator) Generate(r *rng.Source) (*Result, error) {
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}
	size := g.Config.Size

	grid, err := world.NewGrid(size, size, world.Open)
	if err != nil {
		return nil, err
	}

	divide(grid, r, chamber{rmin: 1, cmin: 1, rmax: size - 2, cmax: size - 2}, size, 0)
	stampBorder(grid, world.Solid)

	return &Result{Grid: grid}, nil
}

// divide splits c with one wall and recurses into both halves. A chamber
// narrower than a quarter of size on either axis is left open; the quarter
// is exact, so on size 49 a 12-wide chamber already stops.
func divide(grid *world.Grid, r *rng.Source, c chamber, size, depth int) {
	width, height := c.width(), c.height()
	if 4*width < size || 4*height < size || depth > maxDivisionDepth {
		return
	}

	if width >= height {
		// Vertical wall: an even column strictly inside, a hole on an odd row
		col := c.cmin + 1 + 2*r.IntN(width/2)
		hole := c.rmin + 2*r.IntN(height/2+1)
		for row := c.rmin; row <= c.rmax; row++ {
			if row != hole {
				_ = grid.Set(col, row, world.Solid)
			}
		}
		divide(grid, r, chamber{rmin: c.rmin, cmin: c.cmin, rmax: c.rmax, cmax: col - 1}, size, depth+1)
		divide(grid, r, chamber{rmin: c.rmin, cmin: col + 1, rmax: c.rmax, cmax: c.cmax}, size, depth+1)
		return
	}

	// Horizontal wall: an even row strictly inside, a hole on an odd column
	row := c.rmin + 1 + 2*r.IntN(height/2)
	hole := c.cmin + 2*r.IntN(width/2+1)
	for col := c.cmin; col <= c.cmax; col++ {
		if col != hole {
			_ = grid.Set(col, row, world.Solid)
		}
	}
	divide(grid, r, chamber{rmin: c.rmin, cmin: c.cmin, rmax: row - 1, cmax: c.cmax}, size, depth+1)
	divide(grid, r, chamber{rmin: row + 1, cmin: c.cmin, rmax: c.rmax, cmax: c.cmax}, size, depth+1)
}

// stampBorder sets the outermost ring of the grid to c
func stampBorder(grid *world.Grid, c world.Cell) {
	w, h := grid.Width(), grid.Height()
	for x := 0; x < w; x++ {
		_ = grid.Set(x, 0, c)
		_ = grid.Set(x, h-1, c)
	}
	for y := 0; y < h; y++ {
		_ = grid.Set(0, y, c)
		_ = grid.Set(w-1, y, c)
	}
}

func init() {
	Register("division", func(cfg map[string]string) (GridGenerator, error) {
		return NewDivisionGenerator(DivisionConfigFromMap(cfg))
	})
}
