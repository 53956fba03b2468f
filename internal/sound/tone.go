package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"oceanhunter/internal/sim"
)

// Tone is a short run of decaying sine notes played back to back.
type Tone struct {
	Freqs []float64
	Note  time.Duration // length of each note
	Decay float64       // exponential decay per second
	Gain  float64
}

// MusicCue names the background loop in a Bank.
const MusicCue = "music"

// Cues returns the effect tones keyed by the names the simulation plays.
func Cues() map[string]Tone {
	return map[string]Tone{
		sim.SoundEat:     {Freqs: []float64{880}, Note: 100 * time.Millisecond, Decay: 3, Gain: 0.5},
		sim.SoundHurt:    {Freqs: []float64{220, 165}, Note: 200 * time.Millisecond, Decay: 2, Gain: 0.6},
		sim.SoundLevelUp: {Freqs: []float64{523.25, 659.25, 783.99}, Note: 120 * time.Millisecond, Decay: 2, Gain: 0.5},
		sim.SoundBubble:  {Freqs: []float64{1200, 1600}, Note: 40 * time.Millisecond, Decay: 8, Gain: 0.3},
	}
}

// Music is the arpeggio looped under play.
func Music() Tone {
	return Tone{Freqs: []float64{261.63, 329.63, 392.00, 523.25}, Note: 250 * time.Millisecond, Decay: 2, Gain: 0.15}
}

// Streamer builds a finite streamer for t.
func (t Tone) Streamer(sr beep.SampleRate) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(t.Freqs))
	for _, f := range t.Freqs {
		sine, err := generators.SineTone(sr, f)
		if err != nil {
			return nil, err
		}
		n := sr.N(t.Note)
		notes = append(notes, &decay{s: beep.Take(n, sine), rate: t.Decay, sr: sr})
	}
	return WithVolume(beep.Seq(notes...), t.Gain), nil
}

// WithVolume scales s linearly. Zero or less is silence.
func WithVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// decay multiplies its input by exp(-rate*t).
type decay struct {
	s    beep.Streamer
	rate float64
	sr   beep.SampleRate
	pos  int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := math.Exp(-d.rate * d.sr.D(d.pos).Seconds())
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }
