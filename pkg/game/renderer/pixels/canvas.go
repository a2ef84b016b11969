// Package pixels paints emitted cells into an RGBA buffer, one pixel per
// tile, for image-based previews.
package pixels

import (
	"fmt"
	"image/color"

	"codeberg.org/anaseto/gruid"

	"tilesmith/pkg/engine/world"
	"tilesmith/pkg/game/generator"
	"tilesmith/pkg/game/renderer"
)

// DefaultPalette maps each cell kind to a colour; Empty is transparent.
var DefaultPalette = map[world.Cell]color.RGBA{
	world.Floor:      {0x88, 0x88, 0x88, 0xff},
	world.Wall:       {0xaa, 0xaa, 0x00, 0xff},
	world.StairsUp:   {0x00, 0xcc, 0x00, 0xff},
	world.StairsDown: {0xff, 0x44, 0x44, 0xff},
	world.Open:       {0xdd, 0xdd, 0xdd, 0xff},
	world.Solid:      {0x22, 0x22, 0x55, 0xff},
}

// Canvas is an Emitter over a fixed-size RGBA buffer. It is also a
// MoveEmitter: moves are queued and carved one at a time by Step, so a
// preview can animate a maze being dug.
type Canvas struct {
	Palette map[world.Cell]color.RGBA

	width, height int
	pix           []byte
	moves         []generator.Move
	next          int
	finalized     bool
}

// NewCanvas returns a transparent canvas of width x height pixels
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", world.ErrInvalidSize, width, height)
	}
	return &Canvas{
		Palette: DefaultPalette,
		width:   width,
		height:  height,
		pix:     make([]byte, width*height*4),
	}, nil
}

// Size returns the canvas dimensions
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Pix returns the RGBA bytes, row-major, 4 per pixel
func (c *Canvas) Pix() []byte {
	return c.pix
}

// EmitCell paints one pixel
func (c *Canvas) EmitCell(cell world.Cell, x, y int) (renderer.Handle, error) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil, &world.BoundsError{X: x, Y: y, Width: c.width, Height: c.height}
	}
	c.paint(cell, x, y)
	return y*c.width + x, nil
}

// EmitMove queues a move for Step. The start cell of the walk is painted
// straight away.
func (c *Canvas) EmitMove(m generator.Move) (renderer.Handle, error) {
	if len(c.moves) == 0 {
		p := tile(m.From)
		if _, err := c.EmitCell(world.Open, p.X, p.Y); err != nil {
			return nil, err
		}
	}
	c.moves = append(c.moves, m)
	return len(c.moves) - 1, nil
}

// Finalize marks the emission complete
func (c *Canvas) Finalize(handles []renderer.Handle) error {
	c.finalized = true
	return nil
}

// Finalized reports whether the emission run has finished
func (c *Canvas) Finalized() bool {
	return c.finalized
}

// Pending returns the number of queued moves not yet carved
func (c *Canvas) Pending() int {
	return len(c.moves) - c.next
}

// Step carves the next queued forward move, skipping backward ones. It
// returns false once the queue is drained.
func (c *Canvas) Step() bool {
	for c.next < len(c.moves) {
		m := c.moves[c.next]
		c.next++
		if m.Kind != generator.Forward {
			continue
		}
		conn := gruid.Point{X: m.From.X + m.To.X + 1, Y: m.From.Y + m.To.Y + 1}
		dest := tile(m.To)
		c.paint(world.Open, conn.X, conn.Y)
		c.paint(world.Open, dest.X, dest.Y)
		return true
	}
	return false
}

// Fill paints every pixel with the colour of cell
func (c *Canvas) Fill(cell world.Cell) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.paint(cell, x, y)
		}
	}
}

// At returns the colour of a pixel
func (c *Canvas) At(x, y int) color.RGBA {
	i := (y*c.width + x) * 4
	return color.RGBA{c.pix[i], c.pix[i+1], c.pix[i+2], c.pix[i+3]}
}

func (c *Canvas) paint(cell world.Cell, x, y int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	col := c.Palette[cell]
	i := (y*c.width + x) * 4
	c.pix[i+0] = col.R
	c.pix[i+1] = col.G
	c.pix[i+2] = col.B
	c.pix[i+3] = col.A
}

// tile converts a maze cell to its pitch-2 tile coordinate
func tile(p gruid.Point) gruid.Point {
	return gruid.Point{X: 2*p.X + 1, Y: 2*p.Y + 1}
}
