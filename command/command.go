// Package command maps raw terminal events to game commands.
package command

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-snake/geometry"
)

// Kind identifies a command
type Kind uint8

const (
	Turn Kind = iota
	Resize
	Quit
	Pause
)

func (k Kind) String() string {
	switch k {
	case Turn:
		return "turn"
	case Resize:
		return "resize"
	case Quit:
		return "quit"
	case Pause:
		return "pause"
	default:
		return "unknown"
	}
}

// Command is one game instruction; Direction is only meaningful for Turn
type Command struct {
	Kind      Kind
	Direction geometry.Direction
}

// Source yields terminal events.
// Next waits up to timeout and returns nil if nothing arrived; a negative timeout waits forever.
type Source interface {
	Next(timeout time.Duration) tcell.Event
}

var keyTurns = map[tcell.Key]geometry.Direction{
	tcell.KeyUp:    geometry.Up,
	tcell.KeyDown:  geometry.Down,
	tcell.KeyLeft:  geometry.Left,
	tcell.KeyRight: geometry.Right,
}

// vi motions
var runeTurns = map[rune]geometry.Direction{
	'k': geometry.Up,
	'j': geometry.Down,
	'h': geometry.Left,
	'l': geometry.Right,
}

// FromEvent maps one event to a command; ok is false for ignored input
func FromEvent(ev tcell.Event) (cmd Command, ok bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return fromKey(ev)
	case *tcell.EventResize:
		return Command{Kind: Resize}, true
	}
	return Command{}, false
}

func fromKey(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Kind: Quit}, true
	case tcell.KeyRune:
		r := ev.Rune()
		if d, ok := runeTurns[r]; ok {
			return Command{Kind: Turn, Direction: d}, true
		}
		switch r {
		case 'q':
			return Command{Kind: Quit}, true
		case 'p', ' ':
			return Command{Kind: Pause}, true
		}
		return Command{}, false
	}

	if d, ok := keyTurns[ev.Key()]; ok {
		return Command{Kind: Turn, Direction: d}, true
	}
	return Command{}, false
}

// Get waits up to timeout for the next event and maps it.
// ok is false when the timeout elapsed or the event is ignored.
func Get(src Source, timeout time.Duration) (cmd Command, ok bool, err error) {
	if timeout < 0 {
		timeout = 0
	}
	ev := src.Next(timeout)
	if ev == nil {
		return Command{}, false, nil
	}
	return Parse(ev)
}

// Parse is FromEvent that also surfaces terminal errors
func Parse(ev tcell.Event) (cmd Command, ok bool, err error) {
	if evErr, isErr := ev.(*tcell.EventError); isErr {
		return Command{}, false, errors.Wrap(evErr, "terminal event")
	}
	cmd, ok = FromEvent(ev)
	return cmd, ok, nil
}

// IsKey reports whether ev is a key press of any kind
func IsKey(ev tcell.Event) bool {
	_, ok := ev.(*tcell.EventKey)
	return ok
}
