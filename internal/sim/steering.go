package sim

import (
	"golang.org/x/exp/rand"

	"oceanhunter/internal/config"
)

// Steering turns the player's position into desired creature velocities.
// It only writes Dir and Vel; Integrate moves the entity.
type Steering struct {
	rng *rand.Rand

	ChaseRadius float64
	FleeRadius  float64
	FleeBoost   float64
	TurnChance  float64
	PreyWander  float64
}

func NewSteering(rng *rand.Rand, cfg config.Config) Steering {
	return Steering{
		rng:         rng,
		ChaseRadius: cfg.ChaseRadius,
		FleeRadius:  cfg.FleeRadius,
		FleeBoost:   cfg.FleeBoost,
		TurnChance:  cfg.WanderTurnChance,
		PreyWander:  cfg.PreyWanderFactor,
	}
}

// Steer sets c.Vel for this tick.
func (s Steering) Steer(c *Entity, player Vec2) {
	switch c.Role {
	case RolePredator:
		c.Vel = s.predator(c, player)
	case RolePrey:
		c.Vel = s.prey(c, player)
	}
}

// predator heads straight for a player inside the chase radius, otherwise
// keeps its heading with a small chance per tick of picking a new one.
func (s Steering) predator(c *Entity, player Vec2) Vec2 {
	to := player.Sub(c.Pos)
	d := to.Len()
	if d < s.ChaseRadius && d > 0 {
		c.Dir = to.Scale(1 / d)
	} else {
		s.wander(c)
	}
	return c.Dir.Scale(c.Speed)
}

// prey runs from a player inside the flee radius, faster the closer it is.
// Outside the radius it drifts on its wander heading at reduced speed.
func (s Steering) prey(c *Entity, player Vec2) Vec2 {
	away := c.Pos.Sub(player)
	d := away.Len()
	if d < s.FleeRadius {
		if d > 0 {
			c.Dir = away.Scale(1 / d)
		}
		proximity := 1 - d/s.FleeRadius
		return c.Dir.Scale(c.Speed * (s.FleeBoost*proximity + s.PreyWander))
	}
	s.wander(c)
	return c.Dir.Scale(c.Speed * s.PreyWander)
}

func (s Steering) wander(c *Entity) {
	if c.Dir.IsZero() || s.rng.Float64() < s.TurnChance {
		c.Dir = randHeading(s.rng)
	}
}

// Integrate applies Vel to Pos, updates facing and confines the entity to
// the world according to its edge policy.
func Integrate(e *Entity, w World) {
	e.Pos = e.Pos.Add(e.Vel)
	if e.Vel.X != 0 {
		e.FacingRight = e.Vel.X > 0
	}
	w.confine(e)
}
