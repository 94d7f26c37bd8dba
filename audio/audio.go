// Package audio plays short feedback tones for drag gestures. A machine
// without a usable audio backend gets a silent player instead of an error.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	pickupFreq = 880
	dropFreq   = 440
)

// Player plays the drag cues. The zero value is unusable; use NewPlayer.
type Player struct {
	disabled atomic.Bool
}

// NewPlayer initializes the speaker. On failure the player marks itself
// disabled and every cue becomes a no-op.
func NewPlayer() *Player {
	p := &Player{}
	if err := speaker.Init(sampleRate, sampleRate.N(20*time.Millisecond)); err != nil {
		p.disabled.Store(true)
	}
	return p
}

// Pickup plays the tile grab cue.
func (p *Player) Pickup() {
	p.tone(pickupFreq, 60*time.Millisecond)
}

// Drop plays the tile release cue.
func (p *Player) Drop() {
	p.tone(dropFreq, 90*time.Millisecond)
}

func (p *Player) tone(freq int, duration time.Duration) {
	if p.disabled.Load() {
		return
	}
	s, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		p.disabled.Store(true)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(duration), s))
}
