package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// eventBuffer bounds events read ahead of the game loop
const eventBuffer = 64

// Screen wraps a tcell screen.
// Drawing is done only from the game loop; the poller goroutine only forwards events.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	closeOnce sync.Once
}

// Open creates and initializes the terminal screen (raw mode, hidden cursor)
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	return NewScreen(s)
}

// NewScreen initializes s and starts polling its events
func NewScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	s.HideCursor()
	s.Clear()

	scr := &Screen{
		screen: s,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	Go(scr.poll)
	return scr, nil
}

func (s *Screen) poll() {
	for {
		ev := s.screen.PollEvent()
		// nil once the screen is finalized
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Next waits up to timeout for an event; negative timeout waits until one arrives or the screen closes
func (s *Screen) Next(timeout time.Duration) tcell.Event {
	select {
	case <-s.done:
		return nil
	default:
	}

	if timeout < 0 {
		select {
		case ev := <-s.events:
			return ev
		case <-s.done:
			return nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-s.events:
		return ev
	case <-timer.C:
		return nil
	case <-s.done:
		return nil
	}
}

// Draw prints text at (x, y); wide runes advance by their rendered width
func (s *Screen) Draw(x, y int, text string, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		x += w
	}
}

// Clear blanks the screen
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes pending cells
func (s *Screen) Show() {
	s.screen.Show()
}

// Size returns the terminal size in cells
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Close restores the terminal: cursor visible, colors reset, raw mode off.
// Safe to call multiple times.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
}
