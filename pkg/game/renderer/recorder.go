package renderer

import (
	"tilesmith/pkg/engine/world"
	"tilesmith/pkg/game/generator"
)

// EmittedCell is one recorded EmitCell call
type EmittedCell struct {
	Cell world.Cell
	X, Y int
}

// Recorder is an in-memory Emitter. Handles are the index of the call.
type Recorder struct {
	Cells     []EmittedCell
	Handles   []Handle // as passed to Finalize
	Finalized int      // number of Finalize calls
}

// EmitCell records the call
func (r *Recorder) EmitCell(c world.Cell, x, y int) (Handle, error) {
	r.Cells = append(r.Cells, EmittedCell{Cell: c, X: x, Y: y})
	return len(r.Cells) - 1, nil
}

// Finalize records the handles
func (r *Recorder) Finalize(handles []Handle) error {
	r.Finalized++
	r.Handles = handles
	return nil
}

// Grid rebuilds a width x height grid from the recorded cells
func (r *Recorder) Grid(width, height int) (*world.Grid, error) {
	g, err := world.NewGrid(width, height, world.Empty)
	if err != nil {
		return nil, err
	}
	for _, c := range r.Cells {
		if err := g.Set(c.X, c.Y, c.Cell); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// MoveRecorder is a Recorder that also takes the move stream
type MoveRecorder struct {
	Recorder
	Moves []generator.Move
}

// EmitMove records the move
func (r *MoveRecorder) EmitMove(m generator.Move) (Handle, error) {
	r.Moves = append(r.Moves, m)
	return len(r.Moves) - 1, nil
}
