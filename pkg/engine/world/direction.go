package world

import "codeberg.org/anaseto/gruid"

// Direction represents a cardinal direction on the grid
type Direction int

// Direction constants, in the order neighbours are examined
const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction. Up decreases y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Step returns p moved one tile in direction d.
func (d Direction) Step(p gruid.Point) gruid.Point {
	dx, dy := d.Delta()
	return gruid.Point{X: p.X + dx, Y: p.Y + dy}
}

// DirectionBetween returns the direction leading from p to an orthogonally
// adjacent q. The second result is false when q is not adjacent to p.
func DirectionBetween(p, q gruid.Point) (Direction, bool) {
	for _, d := range AllDirections() {
		if d.Step(p) == q {
			return d, true
		}
	}
	return Up, false
}
