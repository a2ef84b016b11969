package generator

import "errors"

var (
	// ErrInvalidConfig is returned when a generator config fails validation.
	ErrInvalidConfig = errors.New("invalid generator config")
	// ErrPackingExhausted is returned when the dungeon runs out of placement
	// attempts before reaching its minimum room count.
	ErrPackingExhausted = errors.New("room packing exhausted")
	// ErrUnknownGenerator is returned for names missing from the registry.
	ErrUnknownGenerator = errors.New("unknown generator")
	// ErrInvalidMove is returned when a move stream steps between cells
	// that are not orthogonal neighbours.
	ErrInvalidMove = errors.New("invalid maze move")
)
