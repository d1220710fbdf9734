// Package render defines the draw sink shared by the snake, food and game, plus palette helpers.
package render

import "github.com/gdamore/tcell/v2"

// Canvas is the terminal draw sink.
// Implementations are not required to be safe for concurrent use; the game loop is the only writer.
type Canvas interface {
	// Draw prints text starting at cell (x, y) in the given foreground color
	Draw(x, y int, text string, color tcell.Color)

	// Clear blanks the entire screen
	Clear()

	// Show pushes pending draws to the terminal
	Show()
}
