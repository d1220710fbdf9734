// Package field sizes the playing grid to the terminal and generates symbol-aligned points on it.
package field

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/geometry"
)

// Sizer reports the terminal size in character cells; tcell.Screen satisfies it
type Sizer interface {
	Size() (width, height int)
}

// Glyphs are the symbols drawn for one grid cell
type Glyphs struct {
	Piece  string // snake segment and food
	Border string
}

// Field is an immutable layout snapshot.
// Width and Height are multiples of SymbolWidth and SymbolHeight.
// It is copied by value into the snake and food; a resize builds a new one.
type Field struct {
	Width        int
	Height       int
	SymbolWidth  int
	SymbolHeight int

	Piece  string
	Border string
	Blank  string

	BorderColor tcell.Color
}

// New builds a field fitted to the current terminal size
func New(s Sizer, g Glyphs, borderColor tcell.Color) Field {
	w, h := s.Size()
	return NewSized(w, h, g, borderColor)
}

// NewSized builds a field fitted to an explicit cell size.
// Panics if the piece and border glyphs render with different widths.
func NewSized(width, height int, g Glyphs, borderColor tcell.Color) Field {
	pieceWidth, pieceHeight := measure(g.Piece)
	borderWidth, _ := measure(g.Border)
	if pieceWidth != borderWidth {
		panic(fmt.Sprintf("field: piece symbol width %d and border symbol width %d should be the same", pieceWidth, borderWidth))
	}
	if pieceWidth == 0 {
		panic("field: piece symbol has zero width")
	}

	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return Field{
		Width:        perfectFit(width, pieceWidth),
		Height:       perfectFit(height, pieceHeight),
		SymbolWidth:  pieceWidth,
		SymbolHeight: pieceHeight,
		Piece:        g.Piece,
		Border:       g.Border,
		Blank:        strings.Repeat(" ", pieceWidth),
		BorderColor:  borderColor,
	}
}

// measure returns the rendered width of the widest line and the line count
func measure(symbol string) (width, height int) {
	lines := strings.Split(symbol, "\n")
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return width, len(lines)
}

// perfectFit rounds base down to the nearest multiple of by
func perfectFit(base, by int) int {
	return base - base%by
}

// CenterPoint returns the grid center aligned to the symbol size
func (f Field) CenterPoint() geometry.Point {
	return geometry.Point{
		X: perfectFit(f.Width/2, f.SymbolWidth),
		Y: perfectFit(f.Height/2, f.SymbolHeight),
	}
}

// HasInterior reports whether any cell exists inside the border band
func (f Field) HasInterior() bool {
	return f.Width > 2*f.SymbolWidth && f.Height > 2*f.SymbolHeight
}

// RandomPoint returns a uniformly random aligned point strictly inside the border band.
// ok is false when the field has no interior.
func (f Field) RandomPoint(rng *rand.Rand) (p geometry.Point, ok bool) {
	if !f.HasInterior() {
		return geometry.Point{}, false
	}
	x := f.SymbolWidth + rng.Intn(f.Width-2*f.SymbolWidth)
	y := f.SymbolHeight + rng.Intn(f.Height-2*f.SymbolHeight)
	return geometry.Point{
		X: perfectFit(x, f.SymbolWidth),
		Y: perfectFit(y, f.SymbolHeight),
	}, true
}

// InInterior reports whether p is an aligned cell RandomPoint could return
func (f Field) InInterior(p geometry.Point) bool {
	if !f.HasInterior() {
		return false
	}
	return p.X >= f.SymbolWidth && p.X <= f.Width-2*f.SymbolWidth &&
		p.Y >= f.SymbolHeight && p.Y <= f.Height-2*f.SymbolHeight &&
		p.X%f.SymbolWidth == 0 && p.Y%f.SymbolHeight == 0
}

// InteriorPoints enumerates every aligned interior cell, row by row
func (f Field) InteriorPoints() []geometry.Point {
	if !f.HasInterior() {
		return nil
	}
	cols := (f.Width - 2*f.SymbolWidth) / f.SymbolWidth
	rows := (f.Height - 2*f.SymbolHeight) / f.SymbolHeight
	points := make([]geometry.Point, 0, cols*rows)
	for y := f.SymbolHeight; y <= f.Height-2*f.SymbolHeight; y += f.SymbolHeight {
		for x := f.SymbolWidth; x <= f.Width-2*f.SymbolWidth; x += f.SymbolWidth {
			points = append(points, geometry.Point{X: x, Y: y})
		}
	}
	return points
}

// CanHold reports whether a fresh snake of the given length, head at center and body
// extending downward, fits inside the walls
func (f Field) CanHold(length int) bool {
	if length < 1 {
		return false
	}
	center := f.CenterPoint()
	if !f.InInterior(center) {
		return false
	}
	tail := center.Y + (length-1)*f.SymbolHeight
	return tail <= f.Height-2*f.SymbolHeight
}

// IsBorder reports whether cell (x, y) belongs to the drawn border
func (f Field) IsBorder(x, y int) bool {
	return x == 0 || x == f.Width-f.SymbolWidth || y == 0 || y == f.Height-1
}

// BorderPoints returns the aligned origins of every border glyph
func (f Field) BorderPoints() []geometry.Point {
	if f.Width < f.SymbolWidth || f.Height < 1 {
		return nil
	}
	var points []geometry.Point
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x += f.SymbolWidth {
			if f.IsBorder(x, y) {
				points = append(points, geometry.Point{X: x, Y: y})
			}
		}
	}
	return points
}
