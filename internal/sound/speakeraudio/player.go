// Package speakeraudio plays sound bank cues through beep's speaker, for
// frontends that have no audio stack of their own.
package speakeraudio

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"oceanhunter/internal/sound"
)

const musicVolume = 0.3

// Player mixes cues into one stream. It works without an open speaker, in
// which case cues pile up in the mixer and nothing is heard.
type Player struct {
	bank  *sound.Bank
	mixer *beep.Mixer
	music *beep.Ctrl
	muted bool
	live  bool
}

func New(bank *sound.Bank) *Player {
	return &Player{bank: bank, mixer: &beep.Mixer{}}
}

// Open starts the speaker with a 100ms buffer and hands it the mixer.
func (p *Player) Open() error {
	sr := p.bank.Format.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.live = true
	return nil
}

func (p *Player) Close() {
	if !p.live {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.live = false
}

func (p *Player) Play(name string, volume float64) {
	if p.muted {
		return
	}
	s, ok := p.bank.Streamer(name)
	if !ok {
		log.Printf("no sound for cue %q", name)
		return
	}
	p.locked(func() { p.mixer.Add(sound.WithVolume(s, volume)) })
}

// StartMusic begins the looped background track, or resumes it if it is
// already in the mixer.
func (p *Player) StartMusic() {
	p.locked(func() {
		if p.music != nil {
			p.music.Paused = p.muted
			return
		}
		s, ok := p.bank.Streamer(sound.MusicCue)
		if !ok {
			return
		}
		p.music = &beep.Ctrl{Streamer: sound.WithVolume(beep.Loop(-1, s), musicVolume), Paused: p.muted}
		p.mixer.Add(p.music)
	})
}

func (p *Player) PauseMusic() {
	p.locked(func() {
		if p.music != nil {
			p.music.Paused = true
		}
	})
}

func (p *Player) ToggleMute() bool {
	p.muted = !p.muted
	p.locked(func() {
		if p.music != nil {
			p.music.Paused = p.muted
		}
	})
	return p.muted
}

func (p *Player) Muted() bool { return p.muted }

// Active reports how many streams the mixer is still playing.
func (p *Player) Active() int {
	n := 0
	p.locked(func() { n = p.mixer.Len() })
	return n
}

func (p *Player) locked(fn func()) {
	if p.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
