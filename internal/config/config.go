package config

import (
	"errors"
	"fmt"
)

// World dimensions (in world units).
const (
	WorldWidth  = 1024.0
	WorldHeight = 768.0
)

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
	SampleRate   = 44100
)

// Player.
const (
	PlayerStartSize  = 30.0
	PlayerStartSpeed = 5.0
	GrowIncrement    = 2.0
	LevelSpeedBonus  = 0.2
)

// Eating and progression.
const (
	EatRatio       = 1.2 // strictly bigger by this factor to eat
	PreyReward     = 10
	PredatorReward = 50
	LevelScoreStep = 100
	PreyFloor      = 5
	ReplenishMin   = 2
	ReplenishMax   = 3
)

// Spawning.
const (
	SpawnAttempts            = 50
	SpawnPadding             = 50.0
	PreySafeRadius           = 100.0
	ReplenishSafeRadius      = 200.0 // prey topped up mid-level keep further off
	PredatorSafeRadius       = 300.0
	PredatorSpawnMaxDistance = 360.0
	CreatureSpacing          = 50.0
	MinPreySize              = 10.0
)

// Steering.
const (
	ChaseRadius      = 300.0
	FleeRadius       = 150.0
	FleeBoost        = 1.5
	WanderTurnChance = 0.02
	PreyWanderFactor = 0.5
)

// Effects.
const (
	MaxParticles      = 512
	BubbleChance      = 0.05
	BubbleSoundChance = 0.2
)

const HighScoreKey = "highScore"

// ErrInvalid marks configuration that can never produce a playable game.
var ErrInvalid = errors.New("invalid config")

// EdgePolicy decides what happens when an entity crosses the world edge.
type EdgePolicy string

const (
	EdgeClamp EdgePolicy = "clamp"
	EdgeWrap  EdgePolicy = "wrap"
)

// Config holds everything the simulation reads at construction time.
type Config struct {
	Width, Height float64

	PlayerStartSize  float64
	PlayerStartSpeed float64
	GrowIncrement    float64
	LevelSpeedBonus  float64

	EatRatio       float64
	PreyReward     int
	PredatorReward int
	LevelScoreStep int
	PreyFloor      int
	ReplenishMin   int
	ReplenishMax   int

	SpawnAttempts            int
	SpawnPadding             float64
	PreySafeRadius           float64
	ReplenishSafeRadius      float64
	PredatorSafeRadius       float64
	PredatorSpawnMaxDistance float64
	CreatureSpacing          float64
	MinPreySize              float64

	ChaseRadius      float64
	FleeRadius       float64
	FleeBoost        float64
	WanderTurnChance float64
	PreyWanderFactor float64

	PreyEdge     EdgePolicy
	PredatorEdge EdgePolicy

	MaxParticles      int
	BubbleChance      float64
	BubbleSoundChance float64

	Seed          uint64
	HighScoreFile string
	Muted         bool

	Levels Levels
}

// Default returns the stock tuning with the embedded level table.
func Default() Config {
	return Config{
		Width:  WorldWidth,
		Height: WorldHeight,

		PlayerStartSize:  PlayerStartSize,
		PlayerStartSpeed: PlayerStartSpeed,
		GrowIncrement:    GrowIncrement,
		LevelSpeedBonus:  LevelSpeedBonus,

		EatRatio:       EatRatio,
		PreyReward:     PreyReward,
		PredatorReward: PredatorReward,
		LevelScoreStep: LevelScoreStep,
		PreyFloor:      PreyFloor,
		ReplenishMin:   ReplenishMin,
		ReplenishMax:   ReplenishMax,

		SpawnAttempts:            SpawnAttempts,
		SpawnPadding:             SpawnPadding,
		PreySafeRadius:           PreySafeRadius,
		ReplenishSafeRadius:      ReplenishSafeRadius,
		PredatorSafeRadius:       PredatorSafeRadius,
		PredatorSpawnMaxDistance: PredatorSpawnMaxDistance,
		CreatureSpacing:          CreatureSpacing,
		MinPreySize:              MinPreySize,

		ChaseRadius:      ChaseRadius,
		FleeRadius:       FleeRadius,
		FleeBoost:        FleeBoost,
		WanderTurnChance: WanderTurnChance,
		PreyWanderFactor: PreyWanderFactor,

		PreyEdge:     EdgeClamp,
		PredatorEdge: EdgeWrap,

		MaxParticles:      MaxParticles,
		BubbleChance:      BubbleChance,
		BubbleSoundChance: BubbleSoundChance,

		HighScoreFile: "oceanhunter_highscore.json",

		Levels: DefaultLevels(),
	}
}

// Validate rejects tuning that breaks simulation preconditions.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: world %gx%g", ErrInvalid, c.Width, c.Height)
	case c.SpawnPadding < 0 || 2*c.SpawnPadding >= c.Width || 2*c.SpawnPadding >= c.Height:
		return fmt.Errorf("%w: spawn padding %g does not fit world", ErrInvalid, c.SpawnPadding)
	case c.PlayerStartSize <= 0:
		return fmt.Errorf("%w: player start size %g", ErrInvalid, c.PlayerStartSize)
	case c.PlayerStartSpeed <= 0:
		return fmt.Errorf("%w: player start speed %g", ErrInvalid, c.PlayerStartSpeed)
	case c.GrowIncrement < 0 || c.LevelSpeedBonus < 0:
		return fmt.Errorf("%w: negative growth", ErrInvalid)
	case c.EatRatio < 1:
		return fmt.Errorf("%w: eat ratio %g below 1", ErrInvalid, c.EatRatio)
	case c.LevelScoreStep <= 0:
		return fmt.Errorf("%w: level score step %d", ErrInvalid, c.LevelScoreStep)
	case c.ReplenishMin < 0 || c.ReplenishMax < c.ReplenishMin:
		return fmt.Errorf("%w: replenish range [%d,%d]", ErrInvalid, c.ReplenishMin, c.ReplenishMax)
	case c.SpawnAttempts <= 0:
		return fmt.Errorf("%w: spawn attempts %d", ErrInvalid, c.SpawnAttempts)
	case c.MinPreySize <= 0:
		return fmt.Errorf("%w: min prey size %g", ErrInvalid, c.MinPreySize)
	case c.PreySafeRadius < 0 || c.ReplenishSafeRadius < 0 || c.PredatorSafeRadius < 0:
		return fmt.Errorf("%w: negative spawn radius", ErrInvalid)
	case c.ChaseRadius < 0 || c.FleeRadius < 0:
		return fmt.Errorf("%w: negative steering radius", ErrInvalid)
	case c.WanderTurnChance < 0 || c.WanderTurnChance > 1:
		return fmt.Errorf("%w: wander chance %g", ErrInvalid, c.WanderTurnChance)
	case c.MaxParticles <= 0:
		return fmt.Errorf("%w: max particles %d", ErrInvalid, c.MaxParticles)
	}
	if err := c.PreyEdge.validate(); err != nil {
		return fmt.Errorf("prey edge: %w", err)
	}
	if err := c.PredatorEdge.validate(); err != nil {
		return fmt.Errorf("predator edge: %w", err)
	}
	if err := c.Levels.Validate(); err != nil {
		return fmt.Errorf("levels: %w", err)
	}
	return nil
}

func (e EdgePolicy) validate() error {
	switch e {
	case EdgeClamp, EdgeWrap:
		return nil
	}
	return fmt.Errorf("%w: edge policy %q", ErrInvalid, string(e))
}
