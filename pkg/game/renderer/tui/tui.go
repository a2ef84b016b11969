// Package tui prints a finished level as coloured text.
package tui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"tilesmith/pkg/engine/world"
	"tilesmith/pkg/game/renderer"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// Renderer is an Emitter that buffers the cells it receives and prints the
// whole map when the run is finalized.
type Renderer struct {
	// Title is printed above the map when set
	Title string
	// NoColor prints plain glyphs
	NoColor bool
	// Legend appends a key of the cell kinds present
	Legend bool

	out           io.Writer
	cells         []renderer.EmittedCell
	width, height int

	styles                map[world.Cell]color.Style
	colorTitle            color.Style
	colorSubtle           color.Style
	regexpStringFunctions *regexp.Regexp
}

// New creates a new text renderer writing to out
func New(out io.Writer) *Renderer {
	t := &Renderer{out: out, Legend: true}
	t.Init()
	return t
}

// Init initializes the styles and markup parser
func (t *Renderer) Init() {
	t.styles = map[world.Cell]color.Style{
		world.Floor:      {color.FgGray},
		world.Wall:       {color.FgYellow},
		world.StairsUp:   {color.FgGreen, color.OpBold},
		world.StairsDown: {color.FgRed, color.OpBold},
		world.Open:       {color.FgGray},
		world.Solid:      {color.FgBlue},
	}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// EmitCell buffers the cell
func (t *Renderer) EmitCell(c world.Cell, x, y int) (renderer.Handle, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("cannot render cell kind %d at (%d,%d)", c, x, y)
	}
	t.cells = append(t.cells, renderer.EmittedCell{Cell: c, X: x, Y: y})
	return len(t.cells) - 1, nil
}

// SetSize records the size of the grid about to be emitted, so trailing
// empty rows and columns are still printed
func (t *Renderer) SetSize(width, height int) {
	t.width, t.height = width, height
}

// Finalize prints the buffered map and resets the buffer
func (t *Renderer) Finalize(handles []renderer.Handle) error {
	defer func() {
		t.cells = nil
		t.width, t.height = 0, 0
	}()

	width, height := t.width, t.height
	for _, c := range t.cells {
		width = max(width, c.X+1)
		height = max(height, c.Y+1)
	}

	rows := make([][]world.Cell, height)
	for y := range rows {
		rows[y] = make([]world.Cell, width)
	}
	present := make(map[world.Cell]bool)
	for _, c := range t.cells {
		rows[c.Y][c.X] = c.Cell
		present[c.Cell] = true
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(t.style(t.colorTitle, t.Title))
		b.WriteString("\n")
	}
	b.WriteString(t.style(t.colorSubtle, gotext.Get("%d x %d, %d tiles", width, height, len(handles))))
	b.WriteString("\n\n")

	for _, row := range rows {
		for _, c := range row {
			b.WriteString(t.RenderCell(c))
		}
		b.WriteString("\n")
	}

	if t.Legend && len(present) > 0 {
		b.WriteString("\n")
		b.WriteString(gotext.Get("Legend"))
		b.WriteString("\n")
		for _, c := range world.AllCells() {
			if present[c] {
				b.WriteString(t.FormatText("  CELL{%s} GT{%s}\n", c, c))
			}
		}
	}

	_, err := io.WriteString(t.out, b.String())
	return err
}

// RenderCell returns the styled glyph for a cell kind
func (t *Renderer) RenderCell(c world.Cell) string {
	glyph := string(c.Rune())
	if c == world.Empty {
		return glyph
	}
	return t.style(t.styles[c], glyph)
}

// FormatText formats a message with the renderer's markup system:
// GT{key} translates, CELL{Kind} draws the glyph of a cell kind,
// SUBTLE{text} dims text.
func (t *Renderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "CELL":
			val = t.RenderCell(cellByName(operand))
		case "SUBTLE":
			val = t.style(t.colorSubtle, operand)
		default:
			val = operand
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

func (t *Renderer) style(s color.Style, text string) string {
	if t.NoColor {
		return text
	}
	return s.Sprint(text)
}

// cellByName maps a kind name back to its Cell
func cellByName(name string) world.Cell {
	for _, c := range world.AllCells() {
		if c.String() == name {
			return c
		}
	}
	return world.Empty
}
