package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"oceanhunter/internal/config"
	"oceanhunter/internal/sim"
)

func TestTerminalWithoutAudio(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11
	game, err := sim.New(cfg)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	term := NewTerminal(newSimScreen(t, 80, 25), game, nil)
	now := time.Unix(0, 0)

	key := func(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }
	if !term.handleEvent(key(' '), now) || game.State() != sim.StatePlaying {
		t.Fatalf("space should start play, state=%v", game.State())
	}
	term.handleEvent(key('m'), now)
	if h := term.hud(); h.muted {
		t.Fatalf("no audio should never report muted")
	}
	term.handleEvent(key('p'), now)
	if game.State() != sim.StatePaused {
		t.Fatalf("p should pause, state=%v", game.State())
	}
	if term.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now) {
		t.Fatalf("escape should quit")
	}
}
