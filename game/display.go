package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/vi-snake/command"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/render"
)

// display redraws the whole screen from model state
func (g *Game) display() {
	g.canvas.Clear()
	if !g.fits {
		g.drawCentered([]string{constants.TextTooSmall}, g.cfg.Palette.Text)
		g.canvas.Show()
		return
	}

	g.drawBorder()
	g.snake.Display()
	if p, ok := g.food.Point(); ok && g.food.IsInside() && !g.snake.Contains(p) {
		g.food.Display()
	} else if err := g.food.Place(g.snake.Body()); err != nil {
		g.state = StateWon
	}
	g.drawHUD()
	g.canvas.Show()
}

func (g *Game) drawBorder() {
	for _, p := range g.field.BorderPoints() {
		g.canvas.Draw(p.X, p.Y, g.field.Border, g.field.BorderColor)
	}
}

// drawHUD writes score and level over the top border row
func (g *Game) drawHUD() {
	if !g.fits {
		return
	}
	for _, p := range g.field.BorderPoints() {
		if p.Y == 0 {
			g.canvas.Draw(p.X, p.Y, g.field.Border, g.field.BorderColor)
		}
	}

	text := fmt.Sprintf(" Score: %d  Level: %d ", g.score, g.speed)
	if g.paused {
		text += " " + constants.TextPaused + " "
	}
	if constants.HUDOffsetX+uniseg.StringWidth(text) > g.field.Width {
		return
	}
	color := render.GetLevelColor(g.cfg.Palette.Text, g.cfg.Palette.TextPeak, g.speed, g.cfg.MaxSpeed)
	g.canvas.Draw(constants.HUDOffsetX, 0, text, color)
}

// drawOverlay replaces the board with the final summary
func (g *Game) drawOverlay() {
	title := constants.TextGameOver
	if g.state == StateWon {
		title = constants.TextWin
	}
	lines := []string{
		title,
		fmt.Sprintf("Your Level: %d", g.speed),
		fmt.Sprintf("Your Score: %d", g.score),
	}
	if !g.quit {
		lines = append(lines, "", constants.TextPressAnyKey)
	}

	g.canvas.Clear()
	g.drawCentered(lines, g.cfg.Palette.Text)
	g.canvas.Show()
}

// drawCentered stacks lines around the screen center, clamped to the top-left corner
func (g *Game) drawCentered(lines []string, color tcell.Color) {
	w, h := g.field.Width, g.field.Height
	top := max(0, h/2-len(lines)/2)
	for i, line := range lines {
		if line == "" {
			continue
		}
		x := max(0, w/2-uniseg.StringWidth(line)/2)
		g.canvas.Draw(x, top+i, line, color)
	}
}

// finish shows the overlay and, unless the player quit, lingers for a key or until the timeout
func (g *Game) finish() error {
	g.drawOverlay()
	if g.quit {
		return nil
	}

	deadline := g.clock.Now().Add(constants.GameOverLinger)
	for {
		remaining := deadline.Sub(g.clock.Now())
		if remaining <= 0 {
			return nil
		}
		ev := g.events.Next(remaining)
		if ev == nil {
			return nil
		}
		cmd, ok, err := command.Parse(ev)
		if err != nil {
			return err
		}
		if ok && cmd.Kind == command.Resize {
			g.resize()
			continue
		}
		if command.IsKey(ev) {
			return nil
		}
	}
}
