// Package renderer is the hand-off between generators and whatever turns
// tiles into output: it drives an Emitter over a finished grid or a maze
// move stream and calls Finalize exactly once.
package renderer

import (
	"codeberg.org/anaseto/gruid"

	"tilesmith/pkg/engine/world"
	"tilesmith/pkg/game/generator"
)

// EmitGrid emits every non-empty cell of g in row-major order, then
// finalizes. The first emission error stops the run and is returned as is;
// Finalize is not called after a failure. A Sizer is told the grid size
// before the first cell.
func EmitGrid(g *world.Grid, e Emitter) error {
	if s, ok := e.(Sizer); ok {
		s.SetSize(g.Width(), g.Height())
	}
	handles := make([]Handle, 0, g.Width()*g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, err := g.Get(x, y)
			if err != nil {
				return err
			}
			if c == world.Empty {
				continue
			}
			h, err := e.EmitCell(c, x, y)
			if err != nil {
				return err
			}
			handles = append(handles, h)
		}
	}
	return e.Finalize(handles)
}

// EmitMoves feeds a backtracking move stream to e. A MoveEmitter receives
// every move as is; any other emitter gets the Open tiles each forward
// move carves, at tile pitch 2, starting with the entry cell.
func EmitMoves(moves []generator.Move, e Emitter) error {
	var handles []Handle

	if me, ok := e.(MoveEmitter); ok {
		handles = make([]Handle, 0, len(moves))
		for _, m := range moves {
			h, err := me.EmitMove(m)
			if err != nil {
				return err
			}
			handles = append(handles, h)
		}
		return e.Finalize(handles)
	}

	emit := func(x, y int) error {
		h, err := e.EmitCell(world.Open, x, y)
		if err != nil {
			return err
		}
		handles = append(handles, h)
		return nil
	}

	start := walkStart(moves)
	if err := emit(2*start.X+1, 2*start.Y+1); err != nil {
		return err
	}
	for _, m := range moves {
		if m.Kind != generator.Forward {
			continue
		}
		if err := emit(m.From.X+m.To.X+1, m.From.Y+m.To.Y+1); err != nil {
			return err
		}
		if err := emit(2*m.To.X+1, 2*m.To.Y+1); err != nil {
			return err
		}
	}
	return e.Finalize(handles)
}

// walkStart returns the cell the walk began on
func walkStart(moves []generator.Move) gruid.Point {
	if len(moves) == 0 {
		return gruid.Point{}
	}
	return moves[0].From
}
