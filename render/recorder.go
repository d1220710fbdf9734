package render

import (
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/geometry"
)

// Cell is what a Recorder holds at one draw origin
type Cell struct {
	Text  string
	Color tcell.Color
}

// Recorder is an in-memory Canvas for tests.
// Draws are keyed by their origin cell; a later draw at the same origin overwrites.
type Recorder struct {
	cells  map[geometry.Point]Cell
	Clears int
	Shows  int
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{cells: make(map[geometry.Point]Cell)}
}

func (r *Recorder) Draw(x, y int, text string, color tcell.Color) {
	r.cells[geometry.Point{X: x, Y: y}] = Cell{Text: text, Color: color}
}

func (r *Recorder) Clear() {
	r.Clears++
	r.cells = make(map[geometry.Point]Cell)
}

func (r *Recorder) Show() {
	r.Shows++
}

// At returns the last draw at (x, y)
func (r *Recorder) At(x, y int) (Cell, bool) {
	c, ok := r.cells[geometry.Point{X: x, Y: y}]
	return c, ok
}

// Count returns how many origins currently hold text with the given color
func (r *Recorder) Count(color tcell.Color) int {
	n := 0
	for _, c := range r.cells {
		if c.Color == color && strings.TrimSpace(c.Text) != "" {
			n++
		}
	}
	return n
}

// Lines returns every non-blank text drawn, ordered top to bottom then left to right
func (r *Recorder) Lines() []string {
	points := make([]geometry.Point, 0, len(r.cells))
	for p, c := range r.cells {
		if strings.TrimSpace(c.Text) != "" {
			points = append(points, p)
		}
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})

	lines := make([]string, len(points))
	for i, p := range points {
		lines[i] = r.cells[p].Text
	}
	return lines
}
