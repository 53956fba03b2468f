// Package ebitenaudio plays sound bank cues through ebiten's audio context.
package ebitenaudio

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"oceanhunter/internal/sound"
)

const musicVolume = 0.3

// track is the part of *audio.Player the music loop needs.
type track interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
}

// Player keeps the music loop running while muted; mute only zeroes its
// volume, so unmuting mid-game brings the music straight back.
type Player struct {
	cues  map[string]*audio.Player
	music track
	muted bool
}

// New decodes every cue in bank into a ready player. ctx must run at the
// bank's sample rate.
func New(ctx *audio.Context, bank *sound.Bank) (*Player, error) {
	if ctx.SampleRate() != int(bank.Format.SampleRate) {
		return nil, fmt.Errorf("audio context at %d Hz, bank at %d Hz", ctx.SampleRate(), bank.Format.SampleRate)
	}
	p := &Player{cues: make(map[string]*audio.Player)}
	for _, name := range bank.Names() {
		pcm, err := bank.PCM16(name)
		if err != nil {
			return nil, err
		}
		if name == sound.MusicCue {
			loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
			music, err := ctx.NewPlayer(loop)
			if err != nil {
				return nil, fmt.Errorf("music player: %w", err)
			}
			music.SetVolume(musicVolume)
			p.music = music
			continue
		}
		p.cues[name] = ctx.NewPlayerFromBytes(pcm)
	}
	return p, nil
}

// Play restarts a cue at volume. Unknown cues are logged and skipped.
func (p *Player) Play(name string, volume float64) {
	if p.muted {
		return
	}
	pl, ok := p.cues[name]
	if !ok {
		log.Printf("no sound for cue %q", name)
		return
	}
	pl.SetVolume(volume)
	if err := pl.Rewind(); err != nil {
		log.Printf("rewind %s: %v", name, err)
		return
	}
	pl.Play()
}

func (p *Player) StartMusic() {
	if p.music == nil {
		return
	}
	if err := p.music.Rewind(); err != nil {
		log.Printf("rewind music: %v", err)
	}
	p.music.Play()
}

func (p *Player) PauseMusic() {
	if p.music != nil {
		p.music.Pause()
	}
}

func (p *Player) ResumeMusic() {
	if p.music != nil {
		p.music.Play()
	}
}

// ToggleMute silences cues and the music loop; it returns the new state.
func (p *Player) ToggleMute() bool {
	p.SetMuted(!p.muted)
	return p.muted
}

func (p *Player) SetMuted(m bool) {
	p.muted = m
	if p.music == nil {
		return
	}
	if m {
		p.music.SetVolume(0)
	} else {
		p.music.SetVolume(musicVolume)
	}
}

func (p *Player) Muted() bool { return p.muted }
