package world

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestDirection_Delta(t *testing.T) {
	want := map[Direction][2]int{
		Up:    {0, -1},
		Right: {1, 0},
		Down:  {0, 1},
		Left:  {-1, 0},
	}
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		if dx != want[d][0] || dy != want[d][1] {
			t.Errorf("%v.Delta() = (%d, %d), want %v", d, dx, dy, want[d])
		}
	}
}

func TestDirection_OppositeCancels(t *testing.T) {
	for _, d := range AllDirections() {
		o := d.Opposite()
		if o == d {
			t.Errorf("%v.Opposite() = %v", d, o)
		}
		dx, dy := d.Delta()
		ox, oy := o.Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v and %v deltas do not cancel", d, o)
		}
	}
}

func TestDirection_Invalid(t *testing.T) {
	d := Direction(9)
	if d.IsValid() {
		t.Error("Direction(9).IsValid() = true, want false")
	}
	if s := d.String(); s != "Unknown" {
		t.Errorf("Direction(9).String() = %q, want Unknown", s)
	}
	if dx, dy := d.Delta(); dx != 0 || dy != 0 {
		t.Errorf("Direction(9).Delta() = (%d, %d), want (0, 0)", dx, dy)
	}
}

func TestDirectionBetween(t *testing.T) {
	p := gruid.Point{X: 4, Y: 4}
	for _, d := range AllDirections() {
		got, ok := DirectionBetween(p, d.Step(p))
		if !ok || got != d {
			t.Errorf("DirectionBetween(p, %v.Step(p)) = %v, %v, want %v, true", d, got, ok, d)
		}
	}
	if _, ok := DirectionBetween(p, gruid.Point{X: 5, Y: 5}); ok {
		t.Error("DirectionBetween for a diagonal = true, want false")
	}
}
