package constants

// Glyphs
// PieceSymbol and BorderSymbol must have the same rendered width
const (
	PieceSymbol  = "()"
	BorderSymbol = "[]"
)

// Palette (hex, parsed by render.DefaultPalette)
const (
	ColorSnakeHead = "#ff3b30"
	ColorSnakeBody = "#34c759"
	ColorFood      = "#ffcc00"
	ColorBorder    = "#3a6ff7"
	ColorText      = "#3a6ff7"

	// ColorTextPeak is the HUD tint at MaxSpeed
	ColorTextPeak = "#ff2d55"
)

// HUD Layout
const (
	// HUDOffsetX is the column where the HUD starts on the top border row
	HUDOffsetX = 2

	// Text shown by the overlays
	TextGameOver    = "Game Over!"
	TextWin         = "You Win!"
	TextPressAnyKey = "Press any key to exit"
	TextPaused      = "PAUSED"
	TextTooSmall    = "Terminal too small"
)
