package app

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

// cues plays the short feedback tones: one when a stimulus lights up,
// one when a calibration run completes. A failed speaker init leaves the
// cues silent rather than stopping the app.
type cues struct {
	sr beep.SampleRate
	ok bool
}

func newCues() *cues {
	c := &cues{sr: beep.SampleRate(44100)}
	if err := speaker.Init(c.sr, c.sr.N(time.Second/10)); err == nil {
		c.ok = true
	}
	return c
}

func (c *cues) focusOn() {
	c.play(880, 120*time.Millisecond)
}

func (c *cues) complete() {
	c.play(523, 350*time.Millisecond)
}

func (c *cues) play(freq float64, d time.Duration) {
	if !c.ok {
		return
	}
	tone, err := generators.SinTone(c.sr, int(freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.sr.N(d), tone))
}
