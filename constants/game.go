package constants

import "time"

// Tick Interval Constants
const (
	// MaxInterval is the tick length at speed level 0
	MaxInterval = 700 * time.Millisecond

	// MinInterval is the tick length at MaxSpeed
	MinInterval = 200 * time.Millisecond

	// MaxSpeed is the highest reachable speed level
	MaxSpeed = 20
)

// Snake Constants
const (
	// InitialSnakeLength is the body length at start and after a rebuild
	InitialSnakeLength = 3
)

// Food Constants
const (
	// FoodPlacementAttempts bounds random sampling before falling back to a free-cell scan
	FoodPlacementAttempts = 64
)

// Game Over Constants
const (
	// GameOverLinger is how long the final overlay waits for a key before exiting
	GameOverLinger = 10 * time.Second
)
