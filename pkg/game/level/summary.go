package level

import (
	"github.com/leonelquinteros/gotext"

	"tilesmith/pkg/engine/world"
)

// Summary holds the counts shown after a level is built
type Summary struct {
	Generator string
	Seed      int64
	Depth     int
	Width     int
	Height    int
	Passable  int
	Rooms     int
	Corridors int
	Moves     int
	Regions   int
}

// Summary counts the level's contents
func (l *Level) Summary() Summary {
	s := Summary{
		Generator: l.Name,
		Seed:      l.Seed,
		Depth:     l.Depth,
		Rooms:     len(l.Result.Rooms),
		Corridors: len(l.Result.Corridors),
		Moves:     len(l.Result.Moves),
		Regions:   len(l.Regions),
	}
	g := l.Result.Grid
	s.Width, s.Height = g.Width(), g.Height()
	g.ForEachCell(func(x, y int, c world.Cell) {
		if c.Passable() {
			s.Passable++
		}
	})
	return s
}

// String renders the summary as a single translated line
func (s Summary) String() string {
	line := gotext.Get("%s level %d, seed %d: %dx%d, %d passable, %d regions", s.Generator, s.Depth, s.Seed, s.Width, s.Height, s.Passable, s.Regions)
	if s.Rooms > 0 {
		line += ", " + gotext.Get("%d rooms, %d corridors", s.Rooms, s.Corridors)
	}
	if s.Moves > 0 {
		line += ", " + gotext.Get("%d moves", s.Moves)
	}
	return line
}
