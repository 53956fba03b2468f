package sim

import (
	"math"

	"github.com/google/uuid"

	"oceanhunter/internal/config"
)

type Role uint8

const (
	RolePlayer Role = iota
	RolePrey
	RolePredator
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RolePrey:
		return "prey"
	case RolePredator:
		return "predator"
	}
	return "unknown"
}

// Entity is anything that moves in the world. Size is the edge length of
// its collision box, centered on Pos.
type Entity struct {
	ID   string
	Role Role

	Pos Vec2
	Vel Vec2 // units per tick, set by steering, applied by Integrate
	Dir Vec2 // unit heading used when wandering

	Size  float64
	Speed float64

	Edge        config.EdgePolicy
	FacingRight bool
}

func newEntity(role Role, pos Vec2, size, speed float64, edge config.EdgePolicy, dir Vec2) *Entity {
	if size <= 0 {
		panic("sim: entity size must be positive")
	}
	return &Entity{
		ID:          uuid.NewString(),
		Role:        role,
		Pos:         pos,
		Dir:         dir,
		Size:        size,
		Speed:       speed,
		Edge:        edge,
		FacingRight: dir.X >= 0,
	}
}

// Rect is an axis-aligned box with its top-left corner at X,Y.
type Rect struct {
	X, Y, W, H float64
}

// Bounds returns the entity's collision box: center ± size/2.
func (e *Entity) Bounds() Rect {
	return Rect{X: e.Pos.X - e.Size/2, Y: e.Pos.Y - e.Size/2, W: e.Size, H: e.Size}
}

// Overlaps uses strict inequalities, so boxes that only touch do not collide.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// CanEat reports whether something of size eater may consume something of
// size food. Sizes within the ratio band of each other eat nothing.
func CanEat(eater, food, ratio float64) bool {
	return eater > food*ratio
}

// World is the play field [0,W]×[0,H].
type World struct {
	W, H float64
}

func (w World) Center() Vec2 { return Vec2{w.W / 2, w.H / 2} }

// Contains reports whether p lies inside the closed rectangle.
func (w World) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= w.W && p.Y >= 0 && p.Y <= w.H
}

// Clamp keeps p at least margin away from every edge. Margins wider than
// half the world collapse onto the center line.
func (w World) Clamp(p Vec2, margin float64) Vec2 {
	mx := math.Min(margin, w.W/2)
	my := math.Min(margin, w.H/2)
	return Vec2{clampF(p.X, mx, w.W-mx), clampF(p.Y, my, w.H-my)}
}

// Wrap maps p into [0,W)×[0,H).
func (w World) Wrap(p Vec2) Vec2 {
	return Vec2{wrapF(p.X, w.W), wrapF(p.Y, w.H)}
}

func wrapF(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	if v >= size {
		v = 0
	}
	return v
}

// confine applies the entity's edge policy. The player is clamped with a
// half-size margin so its whole body stays visible.
func (w World) confine(e *Entity) {
	switch {
	case e.Role == RolePlayer:
		e.Pos = w.Clamp(e.Pos, e.Size/2)
	case e.Edge == config.EdgeWrap:
		e.Pos = w.Wrap(e.Pos)
	default:
		e.Pos = w.Clamp(e.Pos, 0)
	}
}
