package game

import (
	"time"

	"github.com/lixenwraith/vi-snake/field"
)

// Interval maps a speed level to a tick length: MaxInterval at 0 down to MinInterval at MaxSpeed
func Interval(speed int, cfg Config) time.Duration {
	speed = max(0, min(speed, cfg.MaxSpeed))
	step := (cfg.MaxInterval - cfg.MinInterval) / time.Duration(cfg.MaxSpeed)
	return cfg.MinInterval + step*time.Duration(cfg.MaxSpeed-speed)
}

// SpeedStep is the number of foods per speed level on field f, at least 1
func SpeedStep(f field.Field, maxSpeed int) int {
	return max(1, (f.Width*f.Height)/maxSpeed)
}
