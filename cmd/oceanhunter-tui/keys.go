package main

import (
	"time"

	"oceanhunter/internal/sim"
)

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// heldKeys turns key repeats into held directions. Terminals report presses
// but not releases, so a direction stays down for hold after its last
// repeat. Pressing a direction releases its opposite.
type heldKeys struct {
	hold  time.Duration
	until [4]time.Time
}

func (h *heldKeys) press(d direction, now time.Time) {
	h.until[d] = now.Add(h.hold)
	h.until[opposite(d)] = time.Time{}
}

func (h *heldKeys) input(now time.Time) sim.Input {
	down := func(d direction) bool { return now.Before(h.until[d]) }
	return sim.Input{
		Up:    down(dirUp),
		Down:  down(dirDown),
		Left:  down(dirLeft),
		Right: down(dirRight),
	}
}

func opposite(d direction) direction {
	switch d {
	case dirUp:
		return dirDown
	case dirDown:
		return dirUp
	case dirLeft:
		return dirRight
	}
	return dirLeft
}
