package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/render"
)

// elapse is a script entry that lets part of the requested timeout pass with no event
type elapse time.Duration

func (elapse) When() time.Time { return time.Time{} }

// script replays events in order. A nil entry, or an exhausted script,
// lets the requested timeout elapse on the mock clock.
type script struct {
	clock *MockClock
	steps []tcell.Event
	calls int
}

const maxScriptCalls = 1000

func (s *script) Next(timeout time.Duration) tcell.Event {
	s.calls++
	if s.calls > maxScriptCalls {
		return keyEsc()
	}
	var ev tcell.Event
	if len(s.steps) > 0 {
		ev = s.steps[0]
		s.steps = s.steps[1:]
	}
	if d, ok := ev.(elapse); ok {
		if timeout > 0 {
			s.clock.Advance(min(time.Duration(d), timeout))
		}
		return nil
	}
	if ev == nil && timeout > 0 {
		s.clock.Advance(timeout)
	}
	return ev
}

// sizes returns each size once in turn, then repeats the last
type sizes struct {
	list  [][2]int
	calls int
}

func (s *sizes) Size() (int, int) {
	i := min(s.calls, len(s.list)-1)
	s.calls++
	return s.list[i][0], s.list[i][1]
}

type countingSound struct {
	eat, levelUp, gameOver int
}

func (c *countingSound) PlayEat()      { c.eat++ }
func (c *countingSound) PlayLevelUp()  { c.levelUp++ }
func (c *countingSound) PlayGameOver() { c.gameOver++ }

type harness struct {
	game  *Game
	rec   *render.Recorder
	src   *script
	clock *MockClock
	sound *countingSound
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newHarness(t *testing.T, cfg Config, dims [][2]int, steps ...tcell.Event) *harness {
	t.Helper()
	clock := NewMockClock(epoch)
	h := &harness{
		rec:   render.NewRecorder(),
		src:   &script{clock: clock, steps: steps},
		clock: clock,
		sound: &countingSound{},
	}
	g, err := New(cfg, Deps{
		Canvas: h.rec,
		Sizer:  &sizes{list: dims},
		Events: h.src,
		Sound:  h.sound,
		Clock:  clock,
		Rand:   rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	h.game = g
	return h
}

// start draws the board and enters the running state without a first key
func (h *harness) start() {
	h.game.display()
	h.game.state = StateRunning
}

func keyRune(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func keyArrow(k tcell.Key) tcell.Event {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func keyEsc() tcell.Event {
	return tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
}
