// Package geometry holds grid coordinates and travel directions.
package geometry

import "fmt"

// Point is a terminal cell coordinate, both components non-negative
type Point struct {
	X int
	Y int
}

// NewPoint panics on negative components
func NewPoint(x, y int) Point {
	if x < 0 || y < 0 {
		panic(fmt.Sprintf("geometry: negative point (%d,%d)", x, y))
	}
	return Point{X: x, Y: y}
}

// NextTo returns the point shifted by steps cells in direction d.
// Panics if the shift would produce a negative coordinate; callers guard with collision checks.
func (p Point) NextTo(d Direction, steps int) Point {
	dx, dy := d.Delta()
	x := p.X + dx*steps
	y := p.Y + dy*steps
	if x < 0 || y < 0 {
		panic(fmt.Sprintf("geometry: moving %v by %d %v would result in a negative coordinate", p, steps, d))
	}
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
