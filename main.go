package main

import (
	"log"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"oceanhunter/internal/config"
	"oceanhunter/internal/sim"
	"oceanhunter/internal/sound"
	"oceanhunter/internal/sound/ebitenaudio"
	"oceanhunter/internal/store"
)

func main() {
	log.SetPrefix("oceanhunter: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	opts := []sim.Option{sim.WithStore(store.NewFile(cfg.HighScoreFile))}
	var music jukebox = nopJukebox{}
	if p, err := newAudio(cfg); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		opts = append(opts, sim.WithSound(p))
		music = p
	}

	game, err := sim.New(cfg, opts...)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Ocean Hunter")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(NewApp(game, music)); err != nil {
		log.Fatal(err)
	}
}

func newAudio(cfg config.Config) (*ebitenaudio.Player, error) {
	bank, err := sound.NewBank(beep.SampleRate(config.SampleRate))
	if err != nil {
		return nil, err
	}
	p, err := ebitenaudio.New(audio.NewContext(config.SampleRate), bank)
	if err != nil {
		return nil, err
	}
	p.SetMuted(cfg.Muted)
	return p, nil
}
