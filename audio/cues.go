package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/marionette/event"
)

const sampleRate = beep.SampleRate(44100)

// Cue frequencies and lengths
const (
	jumpToneHz   = 660
	landToneHz   = 330
	jumpDuration = 60 * time.Millisecond
	landDuration = 90 * time.Millisecond
)

// Cues plays short synthesized tones on jump and landing events.
// Initialization failure is non-fatal: the player stays silent and
// every call becomes a no-op.
type Cues struct {
	ready bool
}

// NewCues initializes the speaker. The returned error is advisory; the
// player is usable either way.
func NewCues() (*Cues, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Cues{ready: err == nil}, err
}

// Sink returns an event receiver that cues on jump and landing
func (c *Cues) Sink() event.Sink {
	return func(ev event.Event) {
		switch ev.Type {
		case event.TypeJumpStarted:
			c.tone(jumpToneHz, jumpDuration)
		case event.TypeLanded:
			c.tone(landToneHz, landDuration)
		}
	}
}

// Close releases the speaker
func (c *Cues) Close() {
	if c.ready {
		speaker.Close()
	}
}

func (c *Cues) tone(hz float64, d time.Duration) {
	if !c.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, hz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
