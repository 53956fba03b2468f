package sim

import (
	"math"

	"golang.org/x/exp/rand"
)

type ParticleKind uint8

const (
	ParticleCircle ParticleKind = iota
	ParticleStar
	ParticleSparkle
	ParticleBubble
)

const particleGravity = 0.05

type RGB struct{ R, G, B uint8 }

var (
	ColorPreyEaten     = RGB{0xFF, 0xFF, 0x00}
	ColorPredatorEaten = RGB{0xFF, 0x00, 0x00}
	ColorBubble        = RGB{0xFF, 0xFF, 0xFF}
	levelUpColors      = [...]RGB{{0xFF, 0xD7, 0x00}, {0xFF, 0xA5, 0x00}, {0xFF, 0x45, 0x00}}
)

type Particle struct {
	X, Y   float64
	VX, VY float64

	Size  float64
	Alpha float64 // 1 = opaque, removed at 0
	Fade  float64 // alpha lost per tick

	Angle, Spin         float64
	Wobble, WobbleSpeed float64

	Col  RGB
	Kind ParticleKind

	born uint64
}

// ParticleSystem is a fixed-capacity pool. When full, a new particle
// replaces the oldest live one. Slot order is not age order: Update
// swap-removes, so age is tracked per particle.
type ParticleSystem struct {
	Max  int
	P    []Particle
	rng  *rand.Rand
	next uint64
}

func NewParticleSystem(maxParticles int, rng *rand.Rand) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = 1
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: rng,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
}

func (ps *ParticleSystem) Add(p Particle) {
	p.born = ps.next
	ps.next++
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	oldest := 0
	for i := range ps.P {
		if ps.P[i].born < ps.P[oldest].born {
			oldest = i
		}
	}
	ps.P[oldest] = p
}

// Update advances every particle one tick and drops the faded ones.
func (ps *ParticleSystem) Update() {
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.X += p.VX
		p.Y += p.VY
		if p.Kind != ParticleBubble {
			p.VY += particleGravity
		}
		p.Angle += p.Spin
		p.Wobble += p.WobbleSpeed
		p.Alpha = math.Max(0, p.Alpha-p.Fade)
		if p.Alpha <= 0 {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		i++
	}
}

// Burst spawns count particles of one kind at x,y.
func (ps *ParticleSystem) Burst(x, y float64, col RGB, count int, kind ParticleKind) {
	r := ps.rng
	for i := 0; i < count; i++ {
		speed := 1 + r.Float64()*2
		ps.Add(Particle{
			X:           x,
			Y:           y,
			VX:          (r.Float64() - 0.5) * 4,
			VY:          -speed + (r.Float64()-0.5)*2,
			Size:        2 + r.Float64()*4,
			Alpha:       1,
			Fade:        0.02 + r.Float64()*0.02,
			Angle:       r.Float64() * 2 * math.Pi,
			Spin:        (r.Float64() - 0.5) * 0.2,
			Wobble:      r.Float64() * 2 * math.Pi,
			WobbleSpeed: (r.Float64() - 0.5) * 0.1,
			Col:         col,
			Kind:        kind,
		})
	}
}

func (ps *ParticleSystem) EatEffect(x, y float64, col RGB) {
	ps.Burst(x, y, col, 3, ParticleSparkle)
	ps.Burst(x, y, col, 2, ParticleStar)
	ps.Burst(x, y, col, 5, ParticleCircle)
}

func (ps *ParticleSystem) BubbleEffect(x, y float64) {
	ps.Burst(x, y, ColorBubble, 1, ParticleBubble)
}

func (ps *ParticleSystem) LevelUpEffect(x, y float64) {
	for _, c := range levelUpColors {
		ps.Burst(x, y, c, 5, ParticleStar)
		ps.Burst(x, y, c, 5, ParticleSparkle)
	}
}
