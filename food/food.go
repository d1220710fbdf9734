// Package food places the single food item on a free interior cell.
package food

import (
	"log"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/field"
	"github.com/lixenwraith/vi-snake/geometry"
	"github.com/lixenwraith/vi-snake/render"
)

// ErrNoFreeCell is returned by Place when the snake occupies every interior cell
var ErrNoFreeCell = errors.New("no free cell for food")

// Food holds at most one active point, always free and symbol-aligned
type Food struct {
	canvas render.Canvas
	field  field.Field
	color  tcell.Color
	rng    *rand.Rand

	point  geometry.Point
	placed bool
}

// New creates food with no active point
func New(color tcell.Color, f field.Field, rng *rand.Rand, canvas render.Canvas) *Food {
	return &Food{
		canvas: canvas,
		field:  f,
		color:  color,
		rng:    rng,
	}
}

// Place moves the food to a random interior cell not in body and draws it.
// Random sampling is bounded; a full scan of free cells follows before giving up.
func (fd *Food) Place(body []geometry.Point) error {
	occupied := make(map[geometry.Point]struct{}, len(body))
	for _, p := range body {
		occupied[p] = struct{}{}
	}

	for i := 0; i < constants.FoodPlacementAttempts; i++ {
		p, ok := fd.field.RandomPoint(fd.rng)
		if !ok {
			break
		}
		if _, taken := occupied[p]; !taken {
			fd.set(p)
			return nil
		}
	}

	var free []geometry.Point
	for _, p := range fd.field.InteriorPoints() {
		if _, taken := occupied[p]; !taken {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		fd.placed = false
		return ErrNoFreeCell
	}

	log.Printf("food: random placement exhausted, picking from %d free cells", len(free))
	fd.set(free[fd.rng.Intn(len(free))])
	return nil
}

func (fd *Food) set(p geometry.Point) {
	fd.point = p
	fd.placed = true
	fd.Display()
}

// Display draws the active point, if any
func (fd *Food) Display() {
	if fd.placed {
		fd.canvas.Draw(fd.point.X, fd.point.Y, fd.field.Piece, fd.color)
	}
}

// Point returns the active point
func (fd *Food) Point() (geometry.Point, bool) {
	return fd.point, fd.placed
}

// SetField replaces the layout snapshot after a resize
func (fd *Food) SetField(f field.Field) {
	fd.field = f
}

// IsInside reports whether the active point lies in the interior of the current field
func (fd *Food) IsInside() bool {
	return fd.placed && fd.field.InInterior(fd.point)
}

// PlaceAt moves the food to p if p is an interior cell
func (fd *Food) PlaceAt(p geometry.Point) bool {
	if !fd.field.InInterior(p) {
		return false
	}
	fd.set(p)
	return true
}
