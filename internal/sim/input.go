package sim

// Input is the pressed-key state sampled once per frame.
type Input struct {
	Left, Right, Up, Down bool
}

// Direction returns a unit vector, or zero when no direction is held or
// opposite keys cancel out.
func (in Input) Direction() Vec2 {
	var d Vec2
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	return d.Normalize()
}

func (g *Game) movePlayer(in Input) float64 {
	p := g.player
	before := p.Pos
	p.Vel = in.Direction().Scale(p.Speed)
	Integrate(p, g.world)
	return p.Pos.DistTo(before)
}
