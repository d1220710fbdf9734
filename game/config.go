package game

import (
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/field"
	"github.com/lixenwraith/vi-snake/render"
)

// Config holds the game tunables
type Config struct {
	InitialLength int
	MaxSpeed      int
	MinInterval   time.Duration
	MaxInterval   time.Duration

	Glyphs  field.Glyphs
	Palette render.Palette
}

// DefaultConfig returns the configuration built from constants
func DefaultConfig() Config {
	return Config{
		InitialLength: constants.InitialSnakeLength,
		MaxSpeed:      constants.MaxSpeed,
		MinInterval:   constants.MinInterval,
		MaxInterval:   constants.MaxInterval,
		Glyphs: field.Glyphs{
			Piece:  constants.PieceSymbol,
			Border: constants.BorderSymbol,
		},
		Palette: render.DefaultPalette(),
	}
}

// Validate reports the first unusable setting
func (c Config) Validate() error {
	switch {
	case c.InitialLength < 1:
		return errors.Errorf("initial length %d must be positive", c.InitialLength)
	case c.MaxSpeed < 1:
		return errors.Errorf("max speed %d must be positive", c.MaxSpeed)
	case c.MinInterval <= 0:
		return errors.Errorf("min interval %v must be positive", c.MinInterval)
	case c.MaxInterval < c.MinInterval:
		return errors.Errorf("max interval %v below min interval %v", c.MaxInterval, c.MinInterval)
	case c.Glyphs.Piece == "":
		return errors.New("piece glyph is empty")
	}

	if pw, bw := runewidth.StringWidth(c.Glyphs.Piece), runewidth.StringWidth(c.Glyphs.Border); pw != bw {
		return errors.Errorf("piece glyph width %d differs from border glyph width %d", pw, bw)
	}
	return nil
}
