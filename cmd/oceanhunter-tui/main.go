// Command oceanhunter-tui plays Ocean Hunter in a terminal.
package main

import (
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"

	"oceanhunter/internal/config"
	"oceanhunter/internal/sim"
	"oceanhunter/internal/sound"
	"oceanhunter/internal/sound/speakeraudio"
	"oceanhunter/internal/store"
)

func main() {
	log.SetPrefix("oceanhunter-tui: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// The terminal owns stdout once the screen is up.
	if f, err := os.OpenFile("oceanhunter-tui.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	opts := []sim.Option{sim.WithStore(store.NewFile(cfg.HighScoreFile))}
	music, err := openAudio(cfg)
	if err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		opts = append(opts, sim.WithSound(music))
	}

	game, err := sim.New(cfg, opts...)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	t := NewTerminal(screen, game, music)
	t.Run()
	t.Close()
}

// openAudio returns a player only when the speaker is live; without one
// nothing drains the mixer.
func openAudio(cfg config.Config) (*speakeraudio.Player, error) {
	bank, err := sound.NewBank(beep.SampleRate(config.SampleRate))
	if err != nil {
		return nil, err
	}
	p := speakeraudio.New(bank)
	if err := p.Open(); err != nil {
		return nil, err
	}
	if cfg.Muted {
		p.ToggleMute()
	}
	return p, nil
}
