package renderer

import (
	"errors"
	"testing"

	"tilesmith/pkg/engine/rng"
	"tilesmith/pkg/engine/world"
	"tilesmith/pkg/game/generator"
)

var errDisk = errors.New("disk full")

// failingEmitter fails on the n-th EmitCell call (0-based)
type failingEmitter struct {
	n         int
	calls     int
	finalized int
}

func (f *failingEmitter) EmitCell(c world.Cell, x, y int) (Handle, error) {
	defer func() { f.calls++ }()
	if f.calls == f.n {
		return nil, errDisk
	}
	return f.calls, nil
}

func (f *failingEmitter) Finalize(handles []Handle) error {
	f.finalized++
	return nil
}

func TestEmitGrid_SkipsEmptyAndFinalizesOnce(t *testing.T) {
	g, _ := world.NewGrid(3, 2, world.Empty)
	_ = g.Set(0, 0, world.Wall)
	_ = g.Set(2, 0, world.Floor)
	_ = g.Set(1, 1, world.StairsUp)

	rec := &Recorder{}
	if err := EmitGrid(g, rec); err != nil {
		t.Fatalf("EmitGrid: %v", err)
	}
	want := []EmittedCell{
		{Cell: world.Wall, X: 0, Y: 0},
		{Cell: world.Floor, X: 2, Y: 0},
		{Cell: world.StairsUp, X: 1, Y: 1},
	}
	if len(rec.Cells) != len(want) {
		t.Fatalf("emitted %d cells, want %d", len(rec.Cells), len(want))
	}
	for i := range want {
		if rec.Cells[i] != want[i] {
			t.Errorf("cell %d = %+v, want %+v", i, rec.Cells[i], want[i])
		}
	}
	if rec.Finalized != 1 {
		t.Errorf("Finalized = %d, want 1", rec.Finalized)
	}
	if len(rec.Handles) != 3 {
		t.Errorf("len(Handles) = %d, want 3", len(rec.Handles))
	}
}

func TestEmitGrid_ErrorPropagates(t *testing.T) {
	g, _ := world.NewGrid(4, 4, world.Solid)
	f := &failingEmitter{n: 5}
	err := EmitGrid(g, f)
	if err != errDisk {
		t.Fatalf("EmitGrid error = %v, want errDisk returned unchanged", err)
	}
	if f.calls != 6 {
		t.Errorf("EmitCell calls = %d, want 6 (stop at first failure)", f.calls)
	}
	if f.finalized != 0 {
		t.Errorf("Finalize calls = %d, want 0 after a failed run", f.finalized)
	}
}

func TestEmitGrid_RoundTripsGrid(t *testing.T) {
	gen, _ := generator.NewDungeonGenerator(generator.DungeonConfig{
		GridWidth: 30, GridHeight: 24, MinRoomSize: 4, MaxRoomSize: 7,
		MinRooms: 3, MaxRooms: 5, MaxAttempts: 10000, InflationStride: 2,
	})
	res, err := gen.Generate(rng.New(12))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	rec := &Recorder{}
	if err := EmitGrid(res.Grid, rec); err != nil {
		t.Fatalf("EmitGrid: %v", err)
	}
	back, err := rec.Grid(30, 24)
	if err != nil {
		t.Fatalf("Recorder.Grid: %v", err)
	}
	if !back.Equal(res.Grid) {
		t.Error("grid rebuilt from emitted cells differs from the generated grid")
	}
}

func TestEmitMoves_StreamsToMoveEmitter(t *testing.T) {
	gen, _ := generator.NewBacktrackingGenerator(generator.BacktrackingConfig{Cols: 5, Rows: 4})
	moves, err := gen.Moves(rng.New(3))
	if err != nil {
		t.Fatalf("Moves: %v", err)
	}
	rec := &MoveRecorder{}
	if err := EmitMoves(moves, rec); err != nil {
		t.Fatalf("EmitMoves: %v", err)
	}
	if len(rec.Moves) != len(moves) {
		t.Errorf("emitted %d moves, want %d", len(rec.Moves), len(moves))
	}
	if len(rec.Cells) != 0 {
		t.Errorf("emitted %d cells to a MoveEmitter, want 0", len(rec.Cells))
	}
	if rec.Finalized != 1 {
		t.Errorf("Finalized = %d, want 1", rec.Finalized)
	}
}

func TestEmitMoves_CellFallbackMatchesReplay(t *testing.T) {
	const cols, rows = 6, 5
	gen, _ := generator.NewBacktrackingGenerator(generator.BacktrackingConfig{Cols: cols, Rows: rows})
	res, err := gen.Generate(rng.New(8))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	rec := &Recorder{}
	if err := EmitMoves(res.Moves, rec); err != nil {
		t.Fatalf("EmitMoves: %v", err)
	}
	if got, want := len(rec.Cells), 2*cols*rows-1; got != want {
		t.Errorf("emitted %d cells, want %d", got, want)
	}

	back, err := rec.Grid(2*cols+1, 2*rows+1)
	if err != nil {
		t.Fatalf("Recorder.Grid: %v", err)
	}
	res.Grid.ForEachCell(func(x, y int, c world.Cell) {
		b, _ := back.Get(x, y)
		if (c == world.Open) != (b == world.Open) {
			t.Errorf("(%d,%d): replay %v, emitted %v", x, y, c, b)
		}
	})
	if rec.Finalized != 1 {
		t.Errorf("Finalized = %d, want 1", rec.Finalized)
	}
}

func TestEmitMoves_NoMovesEmitsEntry(t *testing.T) {
	rec := &Recorder{}
	if err := EmitMoves(nil, rec); err != nil {
		t.Fatalf("EmitMoves: %v", err)
	}
	if len(rec.Cells) != 1 || rec.Cells[0] != (EmittedCell{Cell: world.Open, X: 1, Y: 1}) {
		t.Errorf("cells = %+v, want a single Open at (1,1)", rec.Cells)
	}
}

func TestEmitMoves_ErrorReturnedUnchanged(t *testing.T) {
	gen, _ := generator.NewBacktrackingGenerator(generator.BacktrackingConfig{Cols: 3, Rows: 3})
	moves, _ := gen.Moves(rng.New(2))
	f := &failingEmitter{n: 2}
	if err := EmitMoves(moves, f); err != errDisk {
		t.Errorf("EmitMoves error = %v, want errDisk returned unchanged", err)
	}
	if f.finalized != 0 {
		t.Errorf("Finalize calls = %d, want 0 after a failed run", f.finalized)
	}
}

// sizedRecorder records the size it was given
type sizedRecorder struct {
	Recorder
	width, height int
}

func (s *sizedRecorder) SetSize(width, height int) {
	s.width, s.height = width, height
}

func TestEmitGrid_SetsSizeFirst(t *testing.T) {
	g, _ := world.NewGrid(7, 5, world.Empty)
	_ = g.Set(0, 0, world.Wall)
	rec := &sizedRecorder{}
	if err := EmitGrid(g, rec); err != nil {
		t.Fatalf("EmitGrid: %v", err)
	}
	if rec.width != 7 || rec.height != 5 {
		t.Errorf("SetSize got %dx%d, want 7x5", rec.width, rec.height)
	}
}
