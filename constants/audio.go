package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every effect, 0.0-1.0
	AudioMasterVolume = 0.5
)

// Eat Sound Timing
const (
	EatSoundDuration = 90 * time.Millisecond
	EatSoundAttack   = 5 * time.Millisecond
	EatSoundRelease  = 60 * time.Millisecond
)

// Level Up Sound Timing
const (
	LevelUpNote1Duration = 80 * time.Millisecond
	LevelUpNote2Duration = 220 * time.Millisecond
	LevelUpSoundAttack   = 5 * time.Millisecond
	LevelUpNote1Release  = 40 * time.Millisecond
	LevelUpNote2Release  = 160 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundDuration = 600 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 400 * time.Millisecond
)
