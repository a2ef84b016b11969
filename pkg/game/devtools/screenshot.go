package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"tilesmith/pkg/engine/world"
	"tilesmith/pkg/game/level"
	"tilesmith/pkg/game/renderer"
)

// HTMLEmitter is an Emitter that writes the map as a standalone HTML page
// when the run is finalized.
type HTMLEmitter struct {
	Title string

	out           io.Writer
	cells         []renderer.EmittedCell
	width, height int
}

// NewHTMLEmitter returns an emitter writing to out
func NewHTMLEmitter(out io.Writer, title string) *HTMLEmitter {
	return &HTMLEmitter{Title: title, out: out}
}

// EmitCell buffers the cell
func (h *HTMLEmitter) EmitCell(c world.Cell, x, y int) (renderer.Handle, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("cannot render cell kind %d at (%d,%d)", c, x, y)
	}
	h.cells = append(h.cells, renderer.EmittedCell{Cell: c, X: x, Y: y})
	return len(h.cells) - 1, nil
}

// SetSize records the size of the grid about to be emitted
func (h *HTMLEmitter) SetSize(width, height int) {
	h.width, h.height = width, height
}

// Finalize writes the page and resets the buffer
func (h *HTMLEmitter) Finalize(handles []renderer.Handle) error {
	defer func() {
		h.cells = nil
		h.width, h.height = 0, 0
	}()

	width, height := h.width, h.height
	for _, c := range h.cells {
		width = max(width, c.X+1)
		height = max(height, c.Y+1)
	}
	rows := make([][]world.Cell, height)
	for y := range rows {
		rows[y] = make([]world.Cell, width)
	}
	for _, c := range h.cells {
		rows[c.Y][c.X] = c.Cell
	}

	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>` + html.EscapeString(h.Title) + `</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .subtle {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .floor { color: #888; }
        .wall { color: #aaaa00; }
        .stairs-up { color: #00aa00; font-weight: bold; }
        .stairs-down { color: #ff4444; font-weight: bold; }
        .open { color: #666; }
        .solid { color: #4444ff; }
        .void { color: #1a1a2e; }
    </style>
</head>
<body>
`)

	page.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", html.EscapeString(h.Title)))
	page.WriteString(fmt.Sprintf(`    <div class="subtle">%d x %d, %d tiles</div>`+"\n", width, height, len(handles)))

	page.WriteString(`    <div class="map-container">` + "\n")
	for _, row := range rows {
		page.WriteString(`        <div class="map-row">`)
		for _, c := range row {
			page.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, cellClass(c), html.EscapeString(string(c.Rune()))))
		}
		page.WriteString("</div>\n")
	}
	page.WriteString(`    </div>` + "\n")

	page.WriteString(`</body>
</html>
`)

	_, err := io.WriteString(h.out, page.String())
	return err
}

// cellClass returns the CSS class for a cell kind
func cellClass(c world.Cell) string {
	switch c {
	case world.Floor:
		return "floor"
	case world.Wall:
		return "wall"
	case world.StairsUp:
		return "stairs-up"
	case world.StairsDown:
		return "stairs-down"
	case world.Open:
		return "open"
	case world.Solid:
		return "solid"
	default:
		return "void"
	}
}

// SaveScreenshotHTML writes lvl as an HTML page named after the current time
// and returns the file name.
func SaveScreenshotHTML(lvl *level.Level) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	title := fmt.Sprintf("%s level %d (seed %d)", lvl.Name, lvl.Depth, lvl.Seed)
	if err := renderer.EmitGrid(lvl.Result.Grid, NewHTMLEmitter(f, title)); err != nil {
		return filename, err
	}
	return filename, nil
}
