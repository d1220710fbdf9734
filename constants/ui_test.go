package constants

import (
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
)

// TestIntervalBounds verifies the tick interval range is usable
func TestIntervalBounds(t *testing.T) {
	if MinInterval >= MaxInterval {
		t.Errorf("Expected MinInterval < MaxInterval, got %v >= %v", MinInterval, MaxInterval)
	}
	if MaxSpeed <= 0 {
		t.Errorf("Expected positive MaxSpeed, got %d", MaxSpeed)
	}

	// Per-level decrement must not truncate to zero
	if (MaxInterval-MinInterval)/time.Duration(MaxSpeed) == 0 {
		t.Error("Expected non-zero interval step per speed level")
	}
}

// TestGlyphWidthsMatch verifies piece and border glyphs render equally wide
func TestGlyphWidthsMatch(t *testing.T) {
	piece := runewidth.StringWidth(PieceSymbol)
	border := runewidth.StringWidth(BorderSymbol)
	if piece != border {
		t.Errorf("Expected equal glyph widths, got piece=%d border=%d", piece, border)
	}
	if piece == 0 {
		t.Error("Expected non-zero glyph width")
	}
}

// TestInitialSnakeLength verifies the starting body satisfies the minimum length
func TestInitialSnakeLength(t *testing.T) {
	if InitialSnakeLength < 3 {
		t.Errorf("Expected InitialSnakeLength >= 3, got %d", InitialSnakeLength)
	}
}
