package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"oceanhunter/internal/config"
	"oceanhunter/internal/sim"
)

const toastFrames = 180

// jukebox is the part of the audio backend the window drives directly;
// effect cues go through the simulation.
type jukebox interface {
	StartMusic()
	PauseMusic()
	ResumeMusic()
	ToggleMute() bool
	Muted() bool
}

type nopJukebox struct{}

func (nopJukebox) StartMusic() {}
func (nopJukebox) PauseMusic() {}
func (nopJukebox) ResumeMusic() {}
func (nopJukebox) ToggleMute() bool { return false }
func (nopJukebox) Muted() bool { return false }

type toast struct {
	text string
	ttl  int
}

// App adapts the simulation to ebiten's Update/Draw/Layout loop.
type App struct {
	game  *sim.Game
	music jukebox

	prevState    sim.State
	toasts       []toast
	frame        int
	scaleFactor  float64
	isFullscreen bool
}

func NewApp(game *sim.Game, music jukebox) *App {
	a := &App{game: game, music: music, prevState: game.State(), scaleFactor: 1}
	game.Events().Subscribe(sim.EventStateChanged, a.onState)
	game.Events().Subscribe(sim.EventAchievementUnlocked, func(e sim.Event) {
		a.toasts = append(a.toasts, toast{text: e.Text, ttl: toastFrames})
	})
	return a
}

func (a *App) onState(e sim.Event) {
	next := sim.State(e.Value)
	switch next {
	case sim.StatePlaying:
		if a.prevState == sim.StatePaused {
			a.music.ResumeMusic()
		} else {
			a.music.StartMusic()
		}
	case sim.StatePaused, sim.StateGameOver:
		a.music.PauseMusic()
	}
	a.prevState = next
}

func (a *App) Update() error {
	a.frame++
	a.handleWindowKeys()

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.music.ToggleMute()
	}

	switch a.game.State() {
	case sim.StateMenu:
		if startPressed() {
			a.game.Start()
		}
	case sim.StateGameOver:
		if startPressed() || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			a.game.Reset()
		}
	default:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			a.game.TogglePause()
		}
	}

	a.game.Update(1/float64(ebiten.TPS()), readInput())

	live := a.toasts[:0]
	for _, t := range a.toasts {
		t.ttl--
		if t.ttl > 0 {
			live = append(live, t)
		}
	}
	a.toasts = live
	return nil
}

// handleWindowKeys toggles a maximized window with F and restores it with Esc.
func (a *App) handleWindowKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.isFullscreen = !a.isFullscreen
		if a.isFullscreen {
			ebiten.MaximizeWindow()
		} else {
			a.restoreWindow()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && a.isFullscreen {
		a.isFullscreen = false
		a.restoreWindow()
	}
}

func (a *App) restoreWindow() {
	ebiten.RestoreWindow()
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
}

func startPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func readInput() sim.Input {
	down := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return sim.Input{
		Left:  down(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: down(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:    down(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  down(ebiten.KeyArrowDown, ebiten.KeyS),
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	a.isFullscreen = ebiten.IsWindowMaximized()
	w := a.game.World()
	a.scaleFactor = math.Min(float64(outsideWidth)/w.W, float64(outsideHeight)/w.H)
	return int(w.W * a.scaleFactor), int(w.H * a.scaleFactor)
}
