package generator

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// Room is an axis-aligned rectangle of floor in a dungeon
type Room struct {
	X, Y      int
	W, H      int
	Connected bool
}

// Center returns the room centre in doubled coordinates, so that rooms of
// odd and even size both have an integral centre.
func (r Room) Center() gruid.Point {
	return gruid.Point{X: 2*r.X + r.W, Y: 2*r.Y + r.H}
}

// Distance returns the Manhattan distance between two room centres, in
// doubled coordinates.
func (r Room) Distance(other Room) int {
	return paths.DistanceManhattan(r.Center(), other.Center())
}

// Contains reports whether (x, y) lies inside the room
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Interior reports whether (x, y) lies inside the room and off its edge
// rows and columns
func (r Room) Interior(x, y int) bool {
	return x > r.X && x < r.X+r.W-1 && y > r.Y && y < r.Y+r.H-1
}

// Overlaps reports whether both axis intervals strictly intersect
func (r Room) Overlaps(other Room) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Range returns the room as a gruid range
func (r Room) Range() gruid.Range {
	return gruid.NewRange(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Corridor records one carved connection between two rooms
type Corridor struct {
	From, To int           // room indices
	Path     []gruid.Point // every cell stepped on, in walk order
}
