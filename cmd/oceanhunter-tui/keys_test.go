package main

import (
	"testing"
	"time"
)

func TestHeldKeyExpires(t *testing.T) {
	h := heldKeys{hold: 100 * time.Millisecond}
	t0 := time.Unix(0, 0)
	h.press(dirLeft, t0)

	if in := h.input(t0.Add(50 * time.Millisecond)); !in.Left {
		t.Fatalf("left should still be held")
	}
	if in := h.input(t0.Add(150 * time.Millisecond)); in.Left {
		t.Fatalf("left should have been released")
	}
}

func TestOppositePressReleases(t *testing.T) {
	h := heldKeys{hold: time.Second}
	t0 := time.Unix(0, 0)
	h.press(dirUp, t0)
	h.press(dirRight, t0)
	h.press(dirDown, t0)

	in := h.input(t0)
	if in.Up || !in.Down || !in.Right {
		t.Fatalf("unexpected input %+v", in)
	}
}
