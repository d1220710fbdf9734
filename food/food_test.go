package food

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/field"
	"github.com/lixenwraith/vi-snake/geometry"
	"github.com/lixenwraith/vi-snake/render"
)

var testGlyphs = field.Glyphs{Piece: "()", Border: "[]"}

func newTestFood(w, h int, seed int64) (*Food, *render.Recorder, field.Field) {
	f := field.NewSized(w, h, testGlyphs, tcell.ColorBlue)
	rec := render.NewRecorder()
	return New(tcell.ColorYellow, f, rand.New(rand.NewSource(seed)), rec), rec, f
}

func TestNewFoodHasNoPoint(t *testing.T) {
	fd, _, _ := newTestFood(20, 20, 1)
	if _, ok := fd.Point(); ok {
		t.Error("Expected no active point before Place")
	}
}

// TestPlaceAvoidsBody verifies the food never lands on the snake
func TestPlaceAvoidsBody(t *testing.T) {
	fd, rec, f := newTestFood(20, 20, 7)
	body := []geometry.Point{{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 10, Y: 12}}

	for i := 0; i < 500; i++ {
		if err := fd.Place(body); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		p, ok := fd.Point()
		if !ok {
			t.Fatal("Expected an active point")
		}
		for _, b := range body {
			if p == b {
				t.Fatalf("Expected food off the body, got %v", p)
			}
		}
		if !f.InInterior(p) {
			t.Fatalf("Expected interior point, got %v", p)
		}
	}

	p, _ := fd.Point()
	if c, _ := rec.At(p.X, p.Y); c.Color != tcell.ColorYellow || c.Text != "()" {
		t.Errorf("Expected food drawn at %v, got %+v", p, c)
	}
}

// TestPlaceDenseBoard verifies the free-cell scan finds the last open cell
func TestPlaceDenseBoard(t *testing.T) {
	fd, _, f := newTestFood(10, 6, 3)
	interior := f.InteriorPoints()
	last := interior[len(interior)-1]
	body := interior[:len(interior)-1]

	if err := fd.Place(body); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p, _ := fd.Point(); p != last {
		t.Errorf("Expected the only free cell %v, got %v", last, p)
	}
}

func TestPlaceFullBoard(t *testing.T) {
	fd, _, f := newTestFood(10, 6, 3)

	err := fd.Place(f.InteriorPoints())
	if !errors.Is(err, ErrNoFreeCell) {
		t.Fatalf("Expected ErrNoFreeCell, got %v", err)
	}
	if _, ok := fd.Point(); ok {
		t.Error("Expected no active point on a full board")
	}
}

func TestPlaceWithoutInterior(t *testing.T) {
	fd, _, _ := newTestFood(4, 2, 1)
	if err := fd.Place(nil); !errors.Is(err, ErrNoFreeCell) {
		t.Errorf("Expected ErrNoFreeCell, got %v", err)
	}
}

func TestSetFieldAndIsInside(t *testing.T) {
	fd, _, _ := newTestFood(40, 20, 5)
	if err := fd.Place(nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !fd.IsInside() {
		t.Error("Expected placed food inside its field")
	}

	fd.SetField(field.NewSized(4, 2, testGlyphs, tcell.ColorBlue))
	if fd.IsInside() {
		t.Error("Expected food outside a field with no interior")
	}
}

func TestPlaceAt(t *testing.T) {
	fd, _, _ := newTestFood(20, 20, 1)

	if fd.PlaceAt(geometry.Point{X: 0, Y: 0}) {
		t.Error("Expected border point to be rejected")
	}
	if fd.PlaceAt(geometry.Point{X: 3, Y: 5}) {
		t.Error("Expected misaligned point to be rejected")
	}
	want := geometry.Point{X: 4, Y: 5}
	if !fd.PlaceAt(want) {
		t.Fatal("Expected interior point to be accepted")
	}
	if p, ok := fd.Point(); !ok || p != want {
		t.Errorf("Expected food at %v, got %v (placed=%v)", want, p, ok)
	}
}
