package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		r, g, b int32
		wantErr bool
	}{
		{"Red", "#ff0000", 255, 0, 0, false},
		{"Mixed", "#3a6ff7", 0x3a, 0x6f, 0xf7, false},
		{"Short form", "#fff", 255, 255, 255, false},
		{"Invalid", "not-a-color", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseHex(tt.hex)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.hex)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			r, g, b := c.RGB()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected (%d,%d,%d), got (%d,%d,%d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}

func TestDefaultPaletteDistinct(t *testing.T) {
	p := DefaultPalette()
	if p.Head == p.Body {
		t.Error("Expected head and body colors to differ")
	}
	if p.Food == p.Body {
		t.Error("Expected food and body colors to differ")
	}
}

func TestGetLevelColor(t *testing.T) {
	from := tcell.NewRGBColor(0, 0, 255)
	to := tcell.NewRGBColor(255, 0, 0)

	if got := GetLevelColor(from, to, 0, 20); got != from {
		t.Errorf("Expected base color at level 0, got %v", got)
	}

	r, g, b := GetLevelColor(from, to, 20, 20).RGB()
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("Expected peak color at max level, got (%d,%d,%d)", r, g, b)
	}

	// Over max clamps to peak
	if GetLevelColor(from, to, 40, 20) != GetLevelColor(from, to, 20, 20) {
		t.Error("Expected level above max to clamp")
	}

	mid := GetLevelColor(from, to, 10, 20)
	if mid == from || mid == to {
		t.Errorf("Expected mid level to blend, got %v", mid)
	}
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	rec.Draw(2, 1, "()", tcell.ColorGreen)
	rec.Draw(0, 0, "[]", tcell.ColorBlue)
	rec.Draw(2, 1, "  ", ColorBlank)

	c, ok := rec.At(2, 1)
	if !ok || c.Color != ColorBlank {
		t.Errorf("Expected overwritten blank cell, got %+v", c)
	}
	if rec.Count(tcell.ColorBlue) != 1 {
		t.Errorf("Expected 1 blue cell, got %d", rec.Count(tcell.ColorBlue))
	}
	if lines := rec.Lines(); len(lines) != 1 || lines[0] != "[]" {
		t.Errorf("Expected only the border glyph, got %v", lines)
	}

	rec.Clear()
	if rec.Clears != 1 {
		t.Errorf("Expected 1 clear, got %d", rec.Clears)
	}
	if _, ok := rec.At(0, 0); ok {
		t.Error("Expected clear to erase cells")
	}
}
