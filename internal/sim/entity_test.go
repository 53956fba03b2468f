package sim

import (
	"testing"

	"oceanhunter/internal/config"
)

func TestCanEatIsAntisymmetric(t *testing.T) {
	for a := 1.0; a <= 120; a += 0.5 {
		for b := 1.0; b <= 120; b += 0.5 {
			if CanEat(a, b, config.EatRatio) && CanEat(b, a, config.EatRatio) {
				t.Fatalf("both can eat each other: a=%g b=%g", a, b)
			}
		}
	}
}

func TestCanEatDeadZone(t *testing.T) {
	cases := []struct {
		a, b  float64
		aEats bool
		bEats bool
	}{
		{a: 30, b: 24, aEats: true},
		{a: 30, b: 25, aEats: false},  // 30 > 30 fails: strict
		{a: 30, b: 26, aEats: false},  // dead zone
		{a: 30, b: 36, bEats: false},  // 36 > 36 fails: strict
		{a: 30, b: 36.5, bEats: true}, // just outside
		{a: 30, b: 30},
	}
	for _, tc := range cases {
		if got := CanEat(tc.a, tc.b, config.EatRatio); got != tc.aEats {
			t.Errorf("CanEat(%g,%g)=%v want %v", tc.a, tc.b, got, tc.aEats)
		}
		if got := CanEat(tc.b, tc.a, config.EatRatio); got != tc.bEats {
			t.Errorf("CanEat(%g,%g)=%v want %v", tc.b, tc.a, got, tc.bEats)
		}
	}
}

func TestBoundsOverlapIsAxisAligned(t *testing.T) {
	a := &Entity{Pos: Vec2{0, 0}, Size: 10}

	// Diagonal neighbour: boxes overlap at the corner even though the
	// centers are further apart than a circle test would allow.
	b := &Entity{Pos: Vec2{9, 9}, Size: 10}
	if !a.Bounds().Overlaps(b.Bounds()) {
		t.Fatalf("expected corner overlap")
	}
	if d := a.Pos.DistTo(b.Pos); d <= 10 {
		t.Fatalf("test setup: centers should be beyond circle reach, d=%g", d)
	}

	touching := &Entity{Pos: Vec2{10, 0}, Size: 10}
	if a.Bounds().Overlaps(touching.Bounds()) {
		t.Fatalf("edge contact must not count as overlap")
	}
}

func TestWrapStaysHalfOpen(t *testing.T) {
	w := World{W: 100, H: 50}
	cases := []struct{ in, want Vec2 }{
		{Vec2{-1, -1}, Vec2{99, 49}},
		{Vec2{100, 50}, Vec2{0, 0}},
		{Vec2{250, 120}, Vec2{50, 20}},
		{Vec2{-1e-18, 10}, Vec2{0, 10}},
	}
	for _, tc := range cases {
		got := w.Wrap(tc.in)
		if got != tc.want {
			t.Errorf("Wrap(%v)=%v want %v", tc.in, got, tc.want)
		}
		if got.X < 0 || got.X >= w.W || got.Y < 0 || got.Y >= w.H {
			t.Errorf("Wrap(%v)=%v escaped [0,W)x[0,H)", tc.in, got)
		}
	}
}

func TestClampMargin(t *testing.T) {
	w := World{W: 100, H: 80}
	if got := w.Clamp(Vec2{-5, 200}, 10); got != (Vec2{10, 70}) {
		t.Fatalf("clamp with margin: got %v", got)
	}
	// A margin wider than the world pins to the center line.
	if got := w.Clamp(Vec2{0, 0}, 500); got != (Vec2{50, 40}) {
		t.Fatalf("oversized margin: got %v", got)
	}
}

func TestConfineByPolicy(t *testing.T) {
	w := World{W: 100, H: 100}

	p := &Entity{Role: RolePlayer, Pos: Vec2{-20, 130}, Size: 10}
	w.confine(p)
	if p.Pos != (Vec2{5, 95}) {
		t.Fatalf("player clamp: got %v", p.Pos)
	}

	wrap := &Entity{Role: RolePredator, Pos: Vec2{105, -5}, Size: 10, Edge: config.EdgeWrap}
	w.confine(wrap)
	if wrap.Pos != (Vec2{5, 95}) {
		t.Fatalf("wrap: got %v", wrap.Pos)
	}

	clamp := &Entity{Role: RolePrey, Pos: Vec2{105, -5}, Size: 10, Edge: config.EdgeClamp}
	w.confine(clamp)
	if clamp.Pos != (Vec2{100, 0}) {
		t.Fatalf("clamp: got %v", clamp.Pos)
	}
}

func TestInputDiagonalIsNormalized(t *testing.T) {
	d := Input{Right: true, Down: true}.Direction()
	if l := d.Len(); l < 0.999999 || l > 1.000001 {
		t.Fatalf("diagonal length %g", l)
	}
	if !(Input{Left: true, Right: true}).Direction().IsZero() {
		t.Fatalf("opposite keys should cancel")
	}
}
