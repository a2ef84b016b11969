package renderer

import (
	"tilesmith/pkg/engine/world"
	"tilesmith/pkg/game/generator"
)

// Handle is whatever an emitter returns for one emitted tile or move:
// a mesh, a sprite index, a buffer offset.
type Handle any

// Emitter turns finished tile data into output geometry.
// Implementations can include text dumps, preview windows, mesh builders, etc.
type Emitter interface {
	// EmitCell is called once per non-empty cell
	EmitCell(c world.Cell, x, y int) (Handle, error)

	// Finalize is called exactly once per run, after every EmitCell,
	// with the handles in emission order
	Finalize(handles []Handle) error
}

// MoveEmitter is implemented by emitters that build a maze incrementally
// from the backtracking move stream instead of from a finished grid.
type MoveEmitter interface {
	Emitter

	// EmitMove is called once per move, in stream order
	EmitMove(m generator.Move) (Handle, error)
}

// Sizer is implemented by emitters that lay out a whole grid and need its
// dimensions; EmitGrid calls SetSize before emitting any cell.
type Sizer interface {
	SetSize(width, height int)
}
