package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"oceanhunter/internal/sim"
	"oceanhunter/internal/sound/speakeraudio"
)

const (
	frameInterval = 16 * time.Millisecond
	keyHold       = 150 * time.Millisecond
)

// Terminal drives the simulation from tcell events and a frame ticker.
type Terminal struct {
	screen tcell.Screen
	game   *sim.Game
	music  *speakeraudio.Player
	keys   heldKeys

	toast    string
	toastTTL int
}

// NewTerminal wires game events to music and toasts. music may be nil.
func NewTerminal(screen tcell.Screen, game *sim.Game, music *speakeraudio.Player) *Terminal {
	t := &Terminal{
		screen: screen,
		game:   game,
		music:  music,
		keys:   heldKeys{hold: keyHold},
	}
	game.Events().Subscribe(sim.EventStateChanged, t.onState)
	game.Events().Subscribe(sim.EventAchievementUnlocked, func(e sim.Event) {
		t.toast = "Achievement: " + e.Text
		t.toastTTL = 180
	})
	return t
}

// onState follows play with the music loop; StartMusic resumes a paused loop.
func (t *Terminal) onState(e sim.Event) {
	if t.music == nil {
		return
	}
	switch sim.State(e.Value) {
	case sim.StatePlaying:
		t.music.StartMusic()
	case sim.StatePaused, sim.StateGameOver:
		t.music.PauseMusic()
	}
}

// Run blocks until the player quits.
func (t *Terminal) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			t.game.Update(dt, t.keys.input(now))
			if t.toastTTL > 0 {
				t.toastTTL--
			}
			draw(t.screen, t.game.Snapshot(), t.hud())
		}
	}
}

func (t *Terminal) Close() {
	if t.music != nil {
		t.music.Close()
	}
	t.screen.Fini()
}

// handleEvent applies one terminal event and reports whether to keep going.
func (t *Terminal) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			t.keys.press(dirUp, now)
		case tcell.KeyDown:
			t.keys.press(dirDown, now)
		case tcell.KeyLeft:
			t.keys.press(dirLeft, now)
		case tcell.KeyRight:
			t.keys.press(dirRight, now)
		case tcell.KeyEnter:
			t.startOrRestart()
		case tcell.KeyRune:
			t.handleRune(ev.Rune(), now)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) handleRune(r rune, now time.Time) {
	switch r {
	case 'w', 'W':
		t.keys.press(dirUp, now)
	case 's', 'S':
		t.keys.press(dirDown, now)
	case 'a', 'A':
		t.keys.press(dirLeft, now)
	case 'd', 'D':
		t.keys.press(dirRight, now)
	case ' ':
		t.startOrRestart()
	case 'p', 'P':
		t.game.TogglePause()
	case 'm', 'M':
		if t.music != nil {
			t.music.ToggleMute()
		}
	}
}

func (t *Terminal) startOrRestart() {
	switch t.game.State() {
	case sim.StateMenu:
		t.game.Start()
	case sim.StateGameOver:
		t.game.Reset()
	}
}

func (t *Terminal) hud() hudInfo {
	h := hudInfo{}
	if t.toastTTL > 0 {
		h.toast = t.toast
	}
	if t.music != nil {
		h.muted = t.music.Muted()
	}
	return h
}
