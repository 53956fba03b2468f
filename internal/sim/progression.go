package sim

import (
	"math"

	"oceanhunter/internal/config"
)

// checkProgression levels up for every threshold the score has crossed.
func (g *Game) checkProgression() {
	for g.score >= g.level*g.cfg.LevelScoreStep {
		g.levelUp()
	}
}

func (g *Game) levelUp() {
	g.level++
	g.player.Speed += g.cfg.LevelSpeedBonus
	g.spawnLevel(g.cfg.Levels.For(g.level))

	g.particles.LevelUpEffect(g.player.Pos.X, g.player.Pos.Y)
	g.sound.Play(SoundLevelUp, 0.5)
	g.emit(Event{Type: EventLevelChanged, X: g.player.Pos.X, Y: g.player.Pos.Y, Value: g.level})
	g.checkAchievements()
}

// spawnLevel adds the creatures a level brings with it.
func (g *Game) spawnLevel(lc config.LevelConfig) {
	for i := 0; i < lc.Prey; i++ {
		g.spawnPrey(lc, g.cfg.PreySafeRadius)
	}
	for i := 0; i < lc.Predators; i++ {
		g.spawnPredator(lc)
	}
}

func (g *Game) replenishPrey() {
	n := g.cfg.ReplenishMin + g.rng.Intn(g.cfg.ReplenishMax-g.cfg.ReplenishMin+1)
	lc := g.cfg.Levels.For(g.level)
	for i := 0; i < n; i++ {
		g.spawnPrey(lc, g.cfg.ReplenishSafeRadius)
	}
}

func (g *Game) spawnPrey(lc config.LevelConfig, safe float64) *Entity {
	lo := math.Max(g.cfg.MinPreySize, g.player.Size*lc.PreySize.Min)
	hi := math.Max(lo, g.player.Size*lc.PreySize.Max)
	c := g.spawnCreature(RolePrey, randRange(g.rng, lo, hi), lc.PreySpeed, safe, g.cfg.PreyEdge)
	g.prey = append(g.prey, c)
	return c
}

func (g *Game) spawnPredator(lc config.LevelConfig) *Entity {
	size := randRange(g.rng, g.player.Size*lc.PredatorSize.Min, g.player.Size*lc.PredatorSize.Max)
	c := g.spawnCreature(RolePredator, size, lc.PredatorSpeed, g.cfg.PredatorSafeRadius, g.cfg.PredatorEdge)
	g.predators = append(g.predators, c)
	return c
}

func (g *Game) spawnCreature(role Role, size float64, speed config.Range, safe float64, edge config.EdgePolicy) *Entity {
	pos, ok := g.spawn.PlaceEntity(role, g.player.Pos, safe, g.cfg.CreatureSpacing, g.prey, g.predators)
	if !ok {
		g.stats.PlacementMisses++
	}
	return newEntity(role, pos, size, randRange(g.rng, speed.Min, speed.Max), edge, randHeading(g.rng))
}
