// Package world provides the 2D tile grid primitives shared by every level
// generator: cell kinds, directions, bounds-checked grid storage and
// connectivity analysis.
package world

// Cell is the kind of a single tile in the grid.
// Dungeon and random-walk levels use Empty, Floor, Wall and the stairs;
// maze and cave levels use Open and Solid.
type Cell uint8

// Cell kinds
const (
	Empty Cell = iota
	Floor
	Wall
	StairsUp
	StairsDown
	Open
	Solid
)

// AllCells returns every cell kind in declaration order
func AllCells() []Cell {
	return []Cell{Empty, Floor, Wall, StairsUp, StairsDown, Open, Solid}
}

// String returns the string representation of a cell kind
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Floor:
		return "Floor"
	case Wall:
		return "Wall"
	case StairsUp:
		return "StairsUp"
	case StairsDown:
		return "StairsDown"
	case Open:
		return "Open"
	case Solid:
		return "Solid"
	default:
		return "Unknown"
	}
}

// Rune returns the ASCII glyph used for the cell in text dumps
func (c Cell) Rune() rune {
	switch c {
	case Empty:
		return ' '
	case Floor:
		return '.'
	case Wall:
		return '#'
	case StairsUp:
		return '<'
	case StairsDown:
		return '>'
	case Open:
		return '.'
	case Solid:
		return '#'
	default:
		return '?'
	}
}

// IsValid returns true if c is one of the declared kinds
func (c Cell) IsValid() bool {
	return c <= Solid
}

// Passable returns true for cells a walker can stand on
func (c Cell) Passable() bool {
	switch c {
	case Floor, Open, StairsUp, StairsDown:
		return true
	default:
		return false
	}
}
