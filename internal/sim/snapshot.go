package sim

// EntityView is a renderer's copy of one entity.
type EntityView struct {
	ID          string
	Role        Role
	X, Y        float64
	Size        float64
	FacingRight bool
}

func viewOf(e *Entity) EntityView {
	return EntityView{
		ID:          e.ID,
		Role:        e.Role,
		X:           e.Pos.X,
		Y:           e.Pos.Y,
		Size:        e.Size,
		FacingRight: e.FacingRight,
	}
}

// Snapshot is everything a renderer needs for one frame. It shares no
// memory with the game.
type Snapshot struct {
	State         State
	Tick          int
	Score         int
	Level         int
	Width, Height float64

	Player    EntityView
	Prey      []EntityView
	Predators []EntityView
	Particles []Particle

	Stats        Stats
	Achievements []Achievement
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:        g.state,
		Tick:         g.tick,
		Score:        g.score,
		Level:        g.level,
		Width:        g.world.W,
		Height:       g.world.H,
		Player:       viewOf(g.player),
		Prey:         make([]EntityView, len(g.prey)),
		Predators:    make([]EntityView, len(g.predators)),
		Particles:    make([]Particle, len(g.particles.P)),
		Stats:        g.stats,
		Achievements: g.achievements.List(),
	}
	for i, c := range g.prey {
		s.Prey[i] = viewOf(c)
	}
	for i, c := range g.predators {
		s.Predators[i] = viewOf(c)
	}
	copy(s.Particles, g.particles.P)
	return s
}
