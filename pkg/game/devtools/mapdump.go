// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"tilesmith/pkg/engine/world"
	"tilesmith/pkg/game/generator"
	"tilesmith/pkg/game/level"
)

const mapDumpFilename = "map.txt"

// writeMapGrid writes one line per grid row using the plain cell glyphs
func writeMapGrid(w io.Writer, g *world.Grid) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, _ := g.Get(x, y)
			fmt.Fprintf(w, "%c", c.Rune())
		}
		fmt.Fprintln(w)
	}
}

// WriteDump writes a full debug dump of lvl: metadata, legend, map, rooms,
// corridors, stairs and regions. Format is human- and LLM-readable
// (sections, key: value, consistent structure).
func WriteDump(w io.Writer, lvl *level.Level) error {
	if lvl == nil || lvl.Result == nil || lvl.Result.Grid == nil {
		return fmt.Errorf("no grid")
	}
	res := lvl.Result
	g := res.Grid

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (level layout, rooms, routing) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "generator: %s\n", lvl.Name)
	fmt.Fprintf(w, "level: %d\n", lvl.Depth)
	fmt.Fprintf(w, "level_seed: %d\n", lvl.Seed)
	fmt.Fprintf(w, "grid_width: %d\n", g.Width())
	fmt.Fprintf(w, "grid_height: %d\n", g.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")

	keys := make([]string, 0, len(lvl.Params))
	for k := range lvl.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "param_%s: %s\n", k, lvl.Params[k])
	}
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	for _, c := range world.AllCells() {
		if c == world.Empty {
			continue
		}
		fmt.Fprintf(w, "%c = %s  ", c.Rune(), c)
	}
	fmt.Fprintln(w, "(blank) = empty")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, g)
	fmt.Fprintln(w, "")

	// --- Counts ---
	fmt.Fprintln(w, "--- Cell counts ---")
	for _, c := range world.AllCells() {
		if n := g.Count(c); n > 0 {
			fmt.Fprintf(w, "  %s: %d\n", c, n)
		}
	}
	fmt.Fprintln(w, "")

	// Rooms
	fmt.Fprintln(w, "Rooms:")
	if len(res.Rooms) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for i, r := range res.Rooms {
		fmt.Fprintf(w, "  index: %d x: %d y: %d w: %d h: %d connected: %v\n", i, r.X, r.Y, r.W, r.H, r.Connected)
	}
	fmt.Fprintln(w, "")

	// Corridors
	fmt.Fprintln(w, "Corridors:")
	if len(res.Corridors) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, c := range res.Corridors {
		fmt.Fprintf(w, "  from: %d to: %d length: %d\n", c.From, c.To, len(c.Path))
	}
	fmt.Fprintln(w, "")

	// Stairs
	if len(res.Rooms) > 0 {
		fmt.Fprintln(w, "Stairs:")
		fmt.Fprintf(w, "  up: %d,%d\n", res.StairsUp.X, res.StairsUp.Y)
		fmt.Fprintf(w, "  down: %d,%d\n", res.StairsDown.X, res.StairsDown.Y)
		fmt.Fprintln(w, "")
	}

	// Moves
	if len(res.Moves) > 0 {
		forward := 0
		for _, m := range res.Moves {
			if m.Kind == generator.Forward {
				forward++
			}
		}
		fmt.Fprintln(w, "Moves:")
		fmt.Fprintf(w, "  total: %d forward: %d backward: %d\n", len(res.Moves), forward, len(res.Moves)-forward)
		fmt.Fprintln(w, "")
	}

	// Regions
	fmt.Fprintln(w, "Regions:")
	fmt.Fprintf(w, "  count: %d\n", len(lvl.Regions))
	for i, region := range lvl.Regions {
		first := region[0]
		fmt.Fprintf(w, "  index: %d size: %d first_cell: %d,%d\n", i, len(region), first.X, first.Y)
	}
	fmt.Fprintln(w, "")

	_, err := fmt.Fprintln(w, "=== END MAP DUMP ===")
	return err
}

// DumpToFile writes WriteDump output to path, or to map.txt in the working
// directory when path is empty, and returns the absolute path written.
func DumpToFile(path string, lvl *level.Level) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, lvl); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
