package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// SoundType represents the game's sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Food eaten
	SoundLevelUp                   // Speed level increased
	SoundGameOver                  // Wall or self collision
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound generates a short high blip
func CreateEatSound(rate beep.SampleRate, volume float64) beep.Streamer {
	tone, err := generators.SineTone(rate, 1046.5) // C6
	if err != nil {
		return nil
	}
	clipped := beep.Take(rate.N(constants.EatSoundDuration), tone)
	shaped := NewEnvelope(clipped, constants.EatSoundDuration, constants.EatSoundAttack, constants.EatSoundRelease, rate)
	return newVolume(shaped, volume)
}

// CreateLevelUpSound generates a rising two-note chime
func CreateLevelUpSound(rate beep.SampleRate, volume float64) beep.Streamer {
	// E5
	n1 := NewOscillator(659.25, constants.LevelUpNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.LevelUpNote1Duration, constants.LevelUpSoundAttack, constants.LevelUpNote1Release, rate)

	// A5
	n2 := NewOscillator(880.0, constants.LevelUpNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.LevelUpNote2Duration, constants.LevelUpSoundAttack, constants.LevelUpNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), volume*0.5)
}

// CreateGameOverSound generates a low saw buzz with a noise layer
func CreateGameOverSound(rate beep.SampleRate, volume float64) beep.Streamer {
	saw := NewOscillator(110.0, constants.GameOverSoundDuration, WaveSaw, rate)
	sawShaped := NewEnvelope(saw, constants.GameOverSoundDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate)

	noise := NewOscillator(0, constants.GameOverSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.GameOverSoundDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(sawShaped, 0.8),
		newVolume(noiseShaped, 0.2),
	)
	return newVolume(mixed, volume)
}

// GetSoundEffect returns the streamer for the given sound type
func GetSoundEffect(soundType SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(rate, volume)
	case SoundLevelUp:
		return CreateLevelUpSound(rate, volume)
	case SoundGameOver:
		return CreateGameOverSound(rate, volume)
	default:
		return nil
	}
}
