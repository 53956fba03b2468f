package sim

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestParticleSystemCapacity(t *testing.T) {
	ps := NewParticleSystem(8, rand.New(rand.NewSource(1)))
	for i := 0; i < 20; i++ {
		ps.Add(Particle{X: float64(i), Alpha: 1, Fade: 0.1})
	}
	if len(ps.P) != 8 {
		t.Fatalf("pool grew past its capacity: %d", len(ps.P))
	}
	for _, p := range ps.P {
		if p.X < 12 {
			t.Fatalf("particle %g survived eviction; the newest 8 are 12..19", p.X)
		}
	}
}

func TestFullPoolEvictsOldestAfterFade(t *testing.T) {
	ps := NewParticleSystem(4, rand.New(rand.NewSource(5)))
	ps.Add(Particle{Size: 0, Alpha: 0.01, Fade: 1})
	for i := 1; i <= 3; i++ {
		ps.Add(Particle{Size: float64(i), Alpha: 1})
	}
	ps.Update() // the first particle fades and its slot is refilled by swap
	ps.Add(Particle{Size: 4, Alpha: 1})
	ps.Add(Particle{Size: 5, Alpha: 1})

	sizes := map[float64]bool{}
	for _, p := range ps.P {
		sizes[p.Size] = true
	}
	if sizes[1] || !sizes[2] || !sizes[3] || !sizes[4] || !sizes[5] {
		t.Fatalf("expected the oldest live particle (size 1) evicted, pool sizes %v", sizes)
	}
}

func TestParticlesFadeOut(t *testing.T) {
	ps := NewParticleSystem(16, rand.New(rand.NewSource(2)))
	ps.Add(Particle{Alpha: 1, Fade: 0.5})
	ps.Add(Particle{Alpha: 1, Fade: 0.1})

	ps.Update()
	if len(ps.P) != 2 {
		t.Fatalf("after one tick: %d particles", len(ps.P))
	}
	ps.Update()
	if len(ps.P) != 1 {
		t.Fatalf("fast fader should be gone: %d particles", len(ps.P))
	}
	for i := 0; i < 20; i++ {
		ps.Update()
	}
	if len(ps.P) != 0 {
		t.Fatalf("all particles should fade: %d left", len(ps.P))
	}
}

func TestBubblesRiseWithoutGravity(t *testing.T) {
	ps := NewParticleSystem(4, rand.New(rand.NewSource(3)))
	ps.Add(Particle{Kind: ParticleBubble, VY: -1, Alpha: 1, Fade: 0.01})
	ps.Add(Particle{Kind: ParticleCircle, VY: -1, Alpha: 1, Fade: 0.01})
	for i := 0; i < 10; i++ {
		ps.Update()
	}
	if ps.P[0].VY != -1 {
		t.Fatalf("bubble velocity changed: %g", ps.P[0].VY)
	}
	if ps.P[1].VY <= -1 {
		t.Fatalf("gravity did not apply to circle: %g", ps.P[1].VY)
	}
}

func TestEatEffectMix(t *testing.T) {
	ps := NewParticleSystem(64, rand.New(rand.NewSource(4)))
	ps.EatEffect(10, 10, ColorPreyEaten)
	kinds := map[ParticleKind]int{}
	for _, p := range ps.P {
		kinds[p.Kind]++
		if p.Col != ColorPreyEaten {
			t.Fatalf("wrong colour %v", p.Col)
		}
	}
	if kinds[ParticleSparkle] != 3 || kinds[ParticleStar] != 2 || kinds[ParticleCircle] != 5 {
		t.Fatalf("unexpected mix %v", kinds)
	}
}
