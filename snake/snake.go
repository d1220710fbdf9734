// Package snake implements the snake body: movement, growth and collision checks.
package snake

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/field"
	"github.com/lixenwraith/vi-snake/geometry"
	"github.com/lixenwraith/vi-snake/render"
)

// Colors of the snake glyphs
type Colors struct {
	Head tcell.Color
	Body tcell.Color
}

// Snake is an ordered point sequence, index 0 is the head.
// Consecutive points are exactly one grid step apart.
type Snake struct {
	canvas render.Canvas
	field  field.Field
	colors Colors

	body      []geometry.Point
	direction geometry.Direction
	digesting bool
}

// New builds a snake of length points with the head at the field center facing up,
// body trailing downward
func New(length int, f field.Field, colors Colors, canvas render.Canvas) *Snake {
	direction := geometry.Up
	trail := direction.Opposite()
	start := f.CenterPoint()
	step := stepFor(f, direction)

	body := make([]geometry.Point, 0, length+1)
	for i := 0; i < length; i++ {
		body = append(body, start.NextTo(trail, i*step))
	}

	return &Snake{
		canvas:    canvas,
		field:     f,
		colors:    colors,
		body:      body,
		direction: direction,
	}
}

// stepFor is the cell distance of one grid move in direction d
func stepFor(f field.Field, d geometry.Direction) int {
	if d.IsHorizontal() {
		return f.SymbolWidth
	}
	return f.SymbolHeight
}

// Display paints the whole body
func (s *Snake) Display() {
	for i, p := range s.body {
		if i == 0 {
			s.paint(p, s.colors.Head)
		} else {
			s.paint(p, s.colors.Body)
		}
	}
}

// Slither advances the head one grid step in the current direction.
// The tail is dropped unless the snake is digesting, in which case it grows by one.
func (s *Snake) Slither() {
	head := s.Head()
	next := s.nextHead()

	s.paint(head, s.colors.Body)
	s.body = append(s.body, geometry.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = next
	s.paint(next, s.colors.Head)

	if s.digesting {
		s.digesting = false
		return
	}

	tail := s.body[len(s.body)-1]
	s.body = s.body[:len(s.body)-1]
	if tail != next {
		s.erase(tail)
	}
}

func (s *Snake) nextHead() geometry.Point {
	return s.Head().NextTo(s.direction, stepFor(s.field, s.direction))
}

// HasCollidedWithWall reports whether the head sits on the inner margin in its direction of travel
func (s *Snake) HasCollidedWithWall() bool {
	head := s.Head()
	f := s.field

	switch s.direction {
	case geometry.Up:
		return head.Y <= f.SymbolHeight
	case geometry.Down:
		return head.Y >= f.Height-f.SymbolHeight*2
	case geometry.Left:
		return head.X <= f.SymbolWidth
	default:
		return head.X >= f.Width-f.SymbolWidth*2
	}
}

// HasBittenItself reports whether the next move would land on the body.
// Evaluated before Slither commits the move; the current head is excluded.
func (s *Snake) HasBittenItself() bool {
	next := s.nextHead()
	for _, p := range s.body[1:] {
		if p == next {
			return true
		}
	}
	return false
}

// Grow keeps the tail on the next Slither
func (s *Snake) Grow() {
	s.digesting = true
}

// SetDirection turns the snake unless d is the current direction or its reverse
func (s *Snake) SetDirection(d geometry.Direction) {
	if d != s.direction && d != s.direction.Opposite() {
		s.direction = d
	}
}

// SetField replaces the layout snapshot after a resize
func (s *Snake) SetField(f field.Field) {
	s.field = f
}

// Fits reports whether every body point lies inside the interior of f
func (s *Snake) Fits(f field.Field) bool {
	for _, p := range s.body {
		if !f.InInterior(p) {
			return false
		}
	}
	return true
}

// Contains reports whether p is part of the body
func (s *Snake) Contains(p geometry.Point) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}

// Head returns the head point
func (s *Snake) Head() geometry.Point {
	return s.body[0]
}

// Body returns a copy of the body, head first
func (s *Snake) Body() []geometry.Point {
	body := make([]geometry.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Len returns the body length
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current travel direction
func (s *Snake) Direction() geometry.Direction {
	return s.direction
}

// IsDigesting reports whether the next Slither will grow the snake
func (s *Snake) IsDigesting() bool {
	return s.digesting
}

func (s *Snake) paint(p geometry.Point, color tcell.Color) {
	s.canvas.Draw(p.X, p.Y, s.field.Piece, color)
}

func (s *Snake) erase(p geometry.Point) {
	s.canvas.Draw(p.X, p.Y, s.field.Blank, render.ColorBlank)
}
