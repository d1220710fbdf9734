package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-snake/constants"
)

// ColorBlank erases a cell back to the terminal default
const ColorBlank = tcell.ColorReset

// Palette holds the colors of every drawable game element
type Palette struct {
	Head     tcell.Color
	Body     tcell.Color
	Food     tcell.Color
	Border   tcell.Color
	Text     tcell.Color
	TextPeak tcell.Color // HUD tint at max speed
}

// DefaultPalette builds the palette from the hex constants
func DefaultPalette() Palette {
	return Palette{
		Head:     MustParseHex(constants.ColorSnakeHead),
		Body:     MustParseHex(constants.ColorSnakeBody),
		Food:     MustParseHex(constants.ColorFood),
		Border:   MustParseHex(constants.ColorBorder),
		Text:     MustParseHex(constants.ColorText),
		TextPeak: MustParseHex(constants.ColorTextPeak),
	}
}

// ParseHex converts "#rrggbb" into a true color
func ParseHex(hex string) (tcell.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, errors.Wrapf(err, "parse color %q", hex)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// MustParseHex is ParseHex for compile-time constants
func MustParseHex(hex string) tcell.Color {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// GetLevelColor blends from toward to as level approaches maxLevel, in Lab space
func GetLevelColor(from, to tcell.Color, level, maxLevel int) tcell.Color {
	if maxLevel <= 0 || level <= 0 {
		return from
	}
	if level >= maxLevel {
		return to
	}
	t := float64(level) / float64(maxLevel)

	blended := toColorful(from).BlendLab(toColorful(to), t).Clamped()
	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}
