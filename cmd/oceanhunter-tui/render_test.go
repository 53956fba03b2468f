package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"oceanhunter/internal/sim"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func TestViewportMapsCorners(t *testing.T) {
	v := viewport{cols: 80, rows: 25, w: 1024, h: 768}
	if x, y := v.cell(0, 0); x != 0 || y != 1 {
		t.Fatalf("origin -> %d,%d", x, y)
	}
	if x, y := v.cell(1024, 768); x != 79 || y != 24 {
		t.Fatalf("far corner -> %d,%d", x, y)
	}
	if sx, sy := v.span(1); sx != 1 || sy != 1 {
		t.Fatalf("tiny entity span %d,%d", sx, sy)
	}
}

func TestDrawPlacesPlayerAndHUD(t *testing.T) {
	screen := newSimScreen(t, 80, 25)
	snap := sim.Snapshot{
		State:  sim.StatePlaying,
		Score:  40,
		Level:  2,
		Width:  1024,
		Height: 768,
		Player: sim.EntityView{Role: sim.RolePlayer, X: 512, Y: 384, Size: 10, FacingRight: true},
	}
	draw(screen, snap, hudInfo{muted: true})

	v := viewport{cols: 80, rows: 25, w: 1024, h: 768}
	x, y := v.cell(512, 384)
	r, _, _, _ := screen.GetContent(x, y)
	if r != '>' {
		t.Fatalf("player glyph %q at %d,%d", r, x, y)
	}
	if r, _, _, _ := screen.GetContent(1, 0); r != 'S' {
		t.Fatalf("HUD should start with the score, got %q", r)
	}
}

func TestDrawToleratesTinyTerminal(t *testing.T) {
	screen := newSimScreen(t, 5, 2)
	draw(screen, sim.Snapshot{Width: 1024, Height: 768}, hudInfo{})
}
