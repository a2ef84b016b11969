// Package terminal answers the two questions the text output needs:
// is stdout a terminal, and how wide is it.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// SizeOf returns the width and height of the terminal behind f.
// Falls back to defaults if the size cannot be determined.
func SizeOf(f *os.File) (width, height int) {
	if f == nil {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetSize returns the current stdout terminal width and height.
func GetSize() (width, height int) {
	return SizeOf(os.Stdout)
}

// FitsWidth reports whether a map of the given column count fits on one
// stdout line without wrapping.
func FitsWidth(columns int) bool {
	width, _ := GetSize()
	return columns <= width
}
