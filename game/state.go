package game

import "fmt"

// State is the controller state
type State uint8

const (
	StateAwaitingFirstInput State = iota
	StateRunning
	StateGameOver
	StateWon
)

func (s State) String() string {
	switch s {
	case StateAwaitingFirstInput:
		return "awaiting-first-input"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Result summarizes a finished run
type Result struct {
	State  State
	Quit   bool // ended by the player rather than a collision
	Score  int
	Level  int
	Length int
}

func (r Result) String() string {
	return fmt.Sprintf("%s: score %d, level %d, length %d", r.State, r.Score, r.Level, r.Length)
}

// Sounder plays game sound effects
type Sounder interface {
	PlayEat()
	PlayLevelUp()
	PlayGameOver()
}

// Silent is a Sounder that plays nothing
type Silent struct{}

func (Silent) PlayEat()      {}
func (Silent) PlayLevelUp()  {}
func (Silent) PlayGameOver() {}
