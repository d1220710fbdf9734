package geometry

import "testing"

var allDirections = []Direction{Up, Down, Left, Right}

// TestOppositeInvolution verifies Opposite is its own inverse
func TestOppositeInvolution(t *testing.T) {
	for _, d := range allDirections {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("Expected %v, got %v", d, got)
		}
		if d.Opposite() == d {
			t.Errorf("Expected opposite of %v to differ", d)
		}
	}
}

func TestOppositePairs(t *testing.T) {
	tests := []struct {
		in, want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := tt.in.Opposite(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestDeltaCancelsWithOpposite verifies unit vectors of opposite directions sum to zero
func TestDeltaCancelsWithOpposite(t *testing.T) {
	for _, d := range allDirections {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("Expected %v and its opposite to cancel, got (%d,%d)", d, dx+ox, dy+oy)
		}
		if (dx != 0) != d.IsHorizontal() {
			t.Errorf("Expected IsHorizontal to match delta for %v", d)
		}
	}
}

func TestNextTo(t *testing.T) {
	origin := NewPoint(10, 10)
	tests := []struct {
		name  string
		dir   Direction
		steps int
		want  Point
	}{
		{"Up one", Up, 1, Point{10, 9}},
		{"Down two", Down, 2, Point{10, 12}},
		{"Left symbol width", Left, 2, Point{8, 10}},
		{"Right three", Right, 3, Point{13, 10}},
		{"Zero steps", Up, 0, origin},
		{"To zero", Left, 10, Point{0, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := origin.NextTo(tt.dir, tt.steps); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestNextToUnderflowPanics verifies negative results are treated as programming errors
func TestNextToUnderflowPanics(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		dir  Direction
	}{
		{"Above top", Point{5, 0}, Up},
		{"Left of edge", Point{1, 5}, Left},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected panic on negative coordinate")
				}
			}()
			tt.p.NextTo(tt.dir, 2)
		})
	}
}

func TestNewPointRejectsNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for negative point")
		}
	}()
	NewPoint(-1, 0)
}
