package generator

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"github.com/zyedidia/generic/stack"

	"tilesmith/pkg/engine/rng"
	"tilesmith/pkg/engine/world"
)

// MoveKind tells whether a move reached a new cell or stepped back
type MoveKind int

const (
	Forward MoveKind = iota
	Backward
)

func (k MoveKind) String() string {
	switch k {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return "Unknown"
	}
}

// Move is one step of the maze traversal in cell coordinates. For a forward
// move To is the newly visited cell; for a backward move it is the cell
// popped from the traversal stack.
type Move struct {
	Kind MoveKind
	Dir  world.Direction
	From gruid.Point
	To   gruid.Point
}

// BacktrackingConfig configures the recursive backtracking maze
type BacktrackingConfig struct {
	Cols int
	Rows int
}

// DefaultBacktrackingConfig returns a 10x10 cell maze
func DefaultBacktrackingConfig() BacktrackingConfig {
	return BacktrackingConfig{Cols: 10, Rows: 10}
}

// BacktrackingConfigFromMap reads "cols" and "rows" over the defaults
func BacktrackingConfigFromMap(cfg map[string]string) BacktrackingConfig {
	c := DefaultBacktrackingConfig()
	intFromMap(cfg, "cols", &c.Cols)
	intFromMap(cfg, "rows", &c.Rows)
	return c
}

// Validate checks the config
func (c BacktrackingConfig) Validate() error {
	if c.Cols < 1 || c.Rows < 1 {
		return fmt.Errorf("%w: backtracking needs at least one cell, got %dx%d", ErrInvalidConfig, c.Cols, c.Rows)
	}
	return nil
}

// BacktrackingGenerator builds a perfect maze with a depth-first walk that
// backs up along its own trail at dead ends.
type BacktrackingGenerator struct {
	Config BacktrackingConfig
}

// NewBacktrackingGenerator returns a validated backtracking generator
func NewBacktrackingGenerator(c BacktrackingConfig) (*BacktrackingGenerator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &BacktrackingGenerator{Config: c}, nil
}

// Name returns the name of this generator
func (g *BacktrackingGenerator) Name() string {
	return "backtracking"
}

type mazeCell struct {
	x, y    int
	visited bool
}

type walkState int

const (
	visiting walkState = iota
	backtracking
	done
)

// Moves walks the cell graph from (0,0) and returns the move stream.
// The walk is done as soon as every cell has been visited; the trailing
// climb back to the start is not emitted.
func (g *BacktrackingGenerator) Moves(r *rng.Source) ([]Move, error) {
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}
	cols, rows := g.Config.Cols, g.Config.Rows
	total := cols * rows

	cells := make([]mazeCell, total)
	for i := range cells {
		cells[i] = mazeCell{x: i % cols, y: i / cols}
	}
	at := func(x, y int) *mazeCell {
		if x < 0 || x >= cols || y < 0 || y >= rows {
			return nil
		}
		return &cells[y*cols+x]
	}

	current := at(0, 0)
	current.visited = true
	visited := 1

	trail := stack.New[*mazeCell]()
	moves := make([]Move, 0, 2*total)
	state := visiting
	if visited == total {
		state = done
	}

	options := make([]world.Direction, 0, 4)
	for state != done {
		options = options[:0]
		for _, d := range world.AllDirections() {
			dx, dy := d.Delta()
			if n := at(current.x+dx, current.y+dy); n != nil && !n.visited {
				options = append(options, d)
			}
		}

		if len(options) > 0 {
			state = visiting
			d := options[r.IntN(len(options))]
			dx, dy := d.Delta()
			next := at(current.x+dx, current.y+dy)
			next.visited = true
			visited++
			trail.Push(current)
			moves = append(moves, Move{
				Kind: Forward,
				Dir:  d,
				From: gruid.Point{X: current.x, Y: current.y},
				To:   gruid.Point{X: next.x, Y: next.y},
			})
			current = next
		} else if trail.Size() > 0 {
			state = backtracking
			prev := trail.Pop()
			from := gruid.Point{X: current.x, Y: current.y}
			to := gruid.Point{X: prev.x, Y: prev.y}
			d, _ := world.DirectionBetween(from, to)
			moves = append(moves, Move{Kind: Backward, Dir: d, From: from, To: to})
			current = prev
		} else {
			state = done
		}

		if visited == total {
			state = done
		}
	}

	return moves, nil
}

// Replay carves a move stream onto a (2*cols+1) x (2*rows+1) grid of Solid.
// Cell (x, y) maps to tile (2x+1, 2y+1) and each forward move also opens
// the tile between its endpoints.
func Replay(cols, rows int, moves []Move) (*world.Grid, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: cannot replay onto %dx%d cells", ErrInvalidConfig, cols, rows)
	}
	grid, err := world.NewGrid(2*cols+1, 2*rows+1, world.Solid)
	if err != nil {
		return nil, err
	}
	if err := grid.Set(1, 1, world.Open); err != nil {
		return nil, err
	}

	for i, m := range moves {
		if _, ok := world.DirectionBetween(m.From, m.To); !ok {
			return nil, fmt.Errorf("%w: move %d from %v to %v", ErrInvalidMove, i, m.From, m.To)
		}
		if m.Kind != Forward {
			continue
		}
		if err := grid.Set(2*m.To.X+1, 2*m.To.Y+1, world.Open); err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		if err := grid.Set(m.From.X+m.To.X+1, m.From.Y+m.To.Y+1, world.Open); err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
	}
	return grid, nil
}

// Generate runs the walk and replays it onto a grid
func (g *BacktrackingGenerator) Generate(r *rng.Source) (*Result, error) {
	moves, err := g.Moves(r)
	if err != nil {
		return nil, err
	}
	grid, err := Replay(g.Config.Cols, g.Config.Rows, moves)
	if err != nil {
		return nil, err
	}
	return &Result{Grid: grid, Moves: moves}, nil
}

func init() {
	Register("backtracking", func(cfg map[string]string) (GridGenerator, error) {
		return NewBacktrackingGenerator(BacktrackingConfigFromMap(cfg))
	})
}
