package sim

// resolveCollisions applies the eat rules for one tick. Collections are
// walked from the end so swap-removal never skips an unvisited creature;
// creatures spawned during the walk are appended past it and wait for the
// next tick.
func (g *Game) resolveCollisions() {
	ratio := g.cfg.EatRatio

	for i := len(g.prey) - 1; i >= 0; i-- {
		c := g.prey[i]
		if !g.player.Bounds().Overlaps(c.Bounds()) || !CanEat(g.player.Size, c.Size, ratio) {
			continue
		}
		g.prey = removeAt(g.prey, i)
		g.consume(c, g.cfg.PreyReward, ColorPreyEaten, 0.4)
		if len(g.prey) < g.cfg.PreyFloor {
			g.replenishPrey()
		}
	}

	for i := len(g.predators) - 1; i >= 0; i-- {
		c := g.predators[i]
		if !g.player.Bounds().Overlaps(c.Bounds()) {
			continue
		}
		switch {
		case CanEat(c.Size, g.player.Size, ratio):
			g.gameOver()
			return
		case CanEat(g.player.Size, c.Size, ratio):
			g.predators = removeAt(g.predators, i)
			g.consume(c, g.cfg.PredatorReward, ColorPredatorEaten, 0.6)
			g.spawnPredator(g.cfg.Levels.For(g.level))
		}
	}
}

func (g *Game) consume(c *Entity, reward int, col RGB, volume float64) {
	g.score += reward
	g.player.Size += g.cfg.GrowIncrement
	g.stats.CreaturesEaten++
	g.particles.EatEffect(c.Pos.X, c.Pos.Y, col)
	g.sound.Play(SoundEat, volume)

	g.emit(Event{Type: EventCreatureEaten, X: c.Pos.X, Y: c.Pos.Y, Role: c.Role, Size: c.Size})
	g.emit(Event{Type: EventScoreChanged, Value: g.score})
	g.emit(Event{Type: EventSizeChanged, Size: g.player.Size})
	g.checkAchievements()
}

// removeAt swap-removes s[i] and clears the vacated slot.
func removeAt(s []*Entity, i int) []*Entity {
	last := len(s) - 1
	s[i] = s[last]
	s[last] = nil
	return s[:last]
}
