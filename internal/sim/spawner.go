package sim

import (
	"math"

	"golang.org/x/exp/rand"
)

// Spawner places new creatures by rejection sampling.
type Spawner struct {
	rng   *rand.Rand
	world World

	Attempts        int
	Padding         float64
	PredatorMaxDist float64
}

func NewSpawner(rng *rand.Rand, world World, attempts int, padding, predatorMaxDist float64) *Spawner {
	return &Spawner{
		rng:             rng,
		world:           world,
		Attempts:        attempts,
		Padding:         padding,
		PredatorMaxDist: predatorMaxDist,
	}
}

// PlaceEntity draws candidate positions until one is at least
// minFromPlayer from playerPos and minFromOthers from every entity in
// existing. Prey candidates are uniform over the world; predator candidates
// sit on a random bearing in a distance band around the player. Candidates
// are clamped inside the padded world before testing.
//
// When every attempt fails the last candidate is returned with ok=false.
// Callers use it anyway: a crowded world gets a crowded spawn, never an error.
func (s *Spawner) PlaceEntity(role Role, playerPos Vec2, minFromPlayer, minFromOthers float64, existing ...[]*Entity) (pos Vec2, ok bool) {
	attempts := s.Attempts
	if attempts <= 0 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		pos = s.world.Clamp(s.candidate(role, playerPos, minFromPlayer), s.Padding)
		if pos.DistTo(playerPos) >= minFromPlayer && clearOf(pos, minFromOthers, existing) {
			return pos, true
		}
	}
	return pos, false
}

func (s *Spawner) candidate(role Role, playerPos Vec2, minFromPlayer float64) Vec2 {
	if role != RolePredator {
		return Vec2{s.rng.Float64() * s.world.W, s.rng.Float64() * s.world.H}
	}
	maxDist := math.Max(minFromPlayer, s.PredatorMaxDist)
	dist := minFromPlayer + s.rng.Float64()*(maxDist-minFromPlayer)
	return playerPos.Add(FromAngle(s.rng.Float64() * 2 * math.Pi).Scale(dist))
}

func clearOf(p Vec2, minDist float64, groups [][]*Entity) bool {
	for _, group := range groups {
		for _, e := range group {
			if p.DistTo(e.Pos) < minDist {
				return false
			}
		}
	}
	return true
}

// randRange returns a uniform value in [lo, hi].
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

func randHeading(rng *rand.Rand) Vec2 {
	return FromAngle(rng.Float64() * 2 * math.Pi)
}
