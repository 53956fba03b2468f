package sound

import (
	"fmt"

	"github.com/gopxl/beep"
)

// Bank holds every cue rendered once at startup.
type Bank struct {
	Format beep.Format
	bufs   map[string]*beep.Buffer
}

// NewBank synthesizes the effect cues and the music loop at sr.
func NewBank(sr beep.SampleRate) (*Bank, error) {
	b := &Bank{
		Format: beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2},
		bufs:   make(map[string]*beep.Buffer),
	}
	tones := Cues()
	tones[MusicCue] = Music()
	for name, t := range tones {
		s, err := t.Streamer(sr)
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", name, err)
		}
		buf := beep.NewBuffer(b.Format)
		buf.Append(s)
		b.bufs[name] = buf
	}
	return b, nil
}

// Names lists the cues in the bank, music included.
func (b *Bank) Names() []string {
	out := make([]string, 0, len(b.bufs))
	for name := range b.bufs {
		out = append(out, name)
	}
	return out
}

// Streamer returns a fresh seekable reader over a cue.
func (b *Bank) Streamer(name string) (beep.StreamSeeker, bool) {
	buf, ok := b.bufs[name]
	if !ok {
		return nil, false
	}
	return buf.Streamer(0, buf.Len()), true
}

// Len reports a cue's length in samples.
func (b *Bank) Len(name string) int {
	if buf, ok := b.bufs[name]; ok {
		return buf.Len()
	}
	return 0
}

// PCM16 encodes a cue as interleaved little-endian signed 16-bit stereo,
// the layout ebiten's audio players expect.
func (b *Bank) PCM16(name string) ([]byte, error) {
	s, ok := b.Streamer(name)
	if !ok {
		return nil, fmt.Errorf("unknown cue %q", name)
	}
	w := b.Format.Width()
	out := make([]byte, 0, s.Len()*w)
	chunk := make([][2]float64, 512)
	frame := make([]byte, w)
	for {
		n, ok := s.Stream(chunk)
		for _, smp := range chunk[:n] {
			b.Format.EncodeSigned(frame, smp)
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return out, nil
}
