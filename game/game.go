// Package game drives the snake: first-input wait, fixed-interval ticks,
// input handling between ticks, resize, pause and the final overlay.
package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-snake/command"
	"github.com/lixenwraith/vi-snake/field"
	"github.com/lixenwraith/vi-snake/food"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/snake"
)

// Deps are the collaborators a game runs against.
// Sound, Clock and Rand are optional.
type Deps struct {
	Canvas render.Canvas
	Sizer  field.Sizer
	Events command.Source
	Sound  Sounder
	Clock  TimeProvider
	Rand   *rand.Rand
}

// Game owns the field, the snake and the food. It is driven by a single goroutine.
type Game struct {
	cfg    Config
	canvas render.Canvas
	sizer  field.Sizer
	events command.Source
	sound  Sounder
	clock  TimeProvider
	rng    *rand.Rand

	field field.Field
	snake *snake.Snake
	food  *food.Food

	state  State
	score  int
	speed  int
	paused bool
	fits   bool // field can hold the starting snake
	quit   bool
}

// New builds a game sized to deps.Sizer. Nothing is drawn until Run.
func New(cfg Config, deps Deps) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if deps.Canvas == nil || deps.Sizer == nil || deps.Events == nil {
		return nil, errors.New("canvas, sizer and events are required")
	}

	g := &Game{
		cfg:    cfg,
		canvas: deps.Canvas,
		sizer:  deps.Sizer,
		events: deps.Events,
		sound:  deps.Sound,
		clock:  deps.Clock,
		rng:    deps.Rand,
	}
	if g.sound == nil {
		g.sound = Silent{}
	}
	if g.clock == nil {
		g.clock = SystemClock{}
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.field = field.New(g.sizer, cfg.Glyphs, cfg.Palette.Border)
	g.fits = g.field.CanHold(cfg.InitialLength)
	g.snake = g.newSnake()
	g.food = food.New(cfg.Palette.Food, g.field, g.rng, g.canvas)
	log.Printf("game: field %dx%d, playable=%v", g.field.Width, g.field.Height, g.fits)
	return g, nil
}

func (g *Game) newSnake() *snake.Snake {
	colors := snake.Colors{Head: g.cfg.Palette.Head, Body: g.cfg.Palette.Body}
	return snake.New(g.cfg.InitialLength, g.field, colors, g.canvas)
}

// Run plays one game to completion and reports how it ended.
// A nil event from the source is treated as a quit.
func (g *Game) Run() (Result, error) {
	g.state = StateAwaitingFirstInput
	g.display()

	if g.state == StateAwaitingFirstInput {
		if err := g.awaitFirstInput(); err != nil {
			return g.result(), err
		}
	}

	for g.state == StateRunning {
		if err := g.tick(); err != nil {
			return g.result(), err
		}
	}

	log.Printf("game: finished %s", g.result())
	if err := g.finish(); err != nil {
		return g.result(), err
	}
	return g.result(), nil
}

// State returns the current controller state
func (g *Game) State() State {
	return g.state
}

func (g *Game) result() Result {
	return Result{
		State:  g.state,
		Quit:   g.quit,
		Score:  g.score,
		Level:  g.speed,
		Length: g.snake.Len(),
	}
}

// awaitFirstInput blocks until a key arrives. A direction key also sets the heading.
func (g *Game) awaitFirstInput() error {
	for {
		ev := g.events.Next(-1)
		if ev == nil {
			g.stop()
			return nil
		}
		cmd, ok, err := command.Parse(ev)
		if err != nil {
			return err
		}
		if !ok {
			if !command.IsKey(ev) {
				continue
			}
			g.state = StateRunning
			return nil
		}

		switch cmd.Kind {
		case command.Quit:
			g.stop()
			return nil
		case command.Resize:
			// a resize never counts as the first input
			g.resize()
			if g.state == StateWon {
				return nil
			}
			continue
		case command.Turn:
			g.snake.SetDirection(cmd.Direction)
		}

		g.state = StateRunning
		return nil
	}
}

// tick waits out one interval applying input as it arrives, then advances the snake.
// While paused or too small the wait blocks and the interval restarts afterward.
func (g *Game) tick() error {
	interval := Interval(g.speed, g.cfg)
	start := g.clock.Now()

	for {
		if g.suspended() {
			ev := g.events.Next(-1)
			if ev == nil {
				g.stop()
				return nil
			}
			cmd, ok, err := command.Parse(ev)
			if err != nil {
				return err
			}
			if ok && g.apply(cmd) {
				return nil
			}
			start = g.clock.Now()
			continue
		}

		remaining := interval - g.clock.Now().Sub(start)
		if remaining <= 0 {
			break
		}
		cmd, ok, err := command.Get(g.events, remaining)
		if err != nil {
			return err
		}
		if ok && g.apply(cmd) {
			return nil
		}
	}

	g.step()
	return nil
}

func (g *Game) suspended() bool {
	return g.paused || !g.fits
}

// apply handles one command and reports whether the game ended.
// A resize can end it too, when the snake fills the new board.
func (g *Game) apply(cmd command.Command) bool {
	switch cmd.Kind {
	case command.Quit:
		g.stop()
	case command.Turn:
		if !g.suspended() {
			g.snake.SetDirection(cmd.Direction)
		}
	case command.Pause:
		if g.fits {
			g.paused = !g.paused
			g.drawHUD()
			g.canvas.Show()
		}
	case command.Resize:
		g.resize()
	}
	return g.state != StateRunning
}

func (g *Game) stop() {
	g.state = StateGameOver
	g.quit = true
}

// step runs the collision checks, then moves and feeds the snake
func (g *Game) step() {
	if g.state != StateRunning {
		return
	}
	if g.snake.HasCollidedWithWall() || g.snake.HasBittenItself() {
		g.state = StateGameOver
		g.sound.PlayGameOver()
		return
	}

	g.snake.Slither()
	if p, ok := g.food.Point(); ok && g.snake.Head() == p {
		g.consume()
	}
	g.canvas.Show()
}

// consume feeds the snake and re-places the food; a full board is a win
func (g *Game) consume() {
	g.snake.Grow()
	g.score++
	g.sound.PlayEat()

	if g.score%SpeedStep(g.field, g.cfg.MaxSpeed) == 0 && g.speed < g.cfg.MaxSpeed {
		g.speed++
		log.Printf("game: level %d at score %d, interval %v", g.speed, g.score, Interval(g.speed, g.cfg))
		g.sound.PlayLevelUp()
	}

	if err := g.food.Place(g.snake.Body()); err != nil {
		if errors.Is(err, food.ErrNoFreeCell) {
			g.state = StateWon
			return
		}
		log.Printf("game: food placement failed: %v", err)
	}
	g.drawHUD()
}

// resize rebuilds the field from the current terminal size.
// The snake is kept when it still fits, otherwise it restarts at the center. Score and speed survive.
func (g *Game) resize() {
	g.field = field.New(g.sizer, g.cfg.Glyphs, g.cfg.Palette.Border)
	g.fits = g.field.CanHold(g.cfg.InitialLength)
	if !g.fits {
		g.paused = false
	}
	log.Printf("game: resized to %dx%d, playable=%v", g.field.Width, g.field.Height, g.fits)

	if g.fits && !g.snake.Fits(g.field) {
		log.Printf("game: snake outside new field, restarting at center")
		g.snake = g.newSnake()
	} else {
		g.snake.SetField(g.field)
	}
	g.food.SetField(g.field)

	if g.state == StateGameOver || g.state == StateWon {
		g.drawOverlay()
		return
	}
	g.display()
}
