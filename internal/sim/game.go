package sim

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/exp/rand"

	"oceanhunter/internal/config"
)

type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// Sound cue names passed to SoundTrigger.
const (
	SoundEat     = "eat"
	SoundHurt    = "hurt"
	SoundLevelUp = "levelUp"
	SoundBubble  = "bubble"
)

// SoundTrigger plays a named cue. Implementations must not block.
type SoundTrigger interface {
	Play(name string, volume float64)
}

// ScalarStore persists single numbers by key.
type ScalarStore interface {
	Get(key string) (float64, error)
	Set(key string, value float64) error
}

type nopSound struct{}

func (nopSound) Play(string, float64) {}

// Game owns the whole simulation. It is not safe for concurrent use: one
// goroutine calls Update and reads Snapshot.
type Game struct {
	cfg    config.Config
	world  World
	rng    *rand.Rand
	spawn  *Spawner
	steer  Steering
	events *EventBus
	sound  SoundTrigger
	store  ScalarStore

	state State
	tick  int
	score int
	level int

	player    *Entity
	prey      []*Entity
	predators []*Entity

	particles    *ParticleSystem
	stats        Stats
	achievements *Achievements
}

type Option func(*Game)

func WithSound(s SoundTrigger) Option {
	return func(g *Game) {
		if s != nil {
			g.sound = s
		}
	}
}

func WithStore(s ScalarStore) Option {
	return func(g *Game) { g.store = s }
}

// WithRand replaces the seeded source, mostly for tests.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// New validates cfg and builds a game sitting in the menu with the first
// level already populated.
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := &Game{
		cfg:          cfg,
		world:        World{W: cfg.Width, H: cfg.Height},
		rng:          rand.New(rand.NewSource(seed)),
		events:       NewEventBus(),
		sound:        nopSound{},
		achievements: NewAchievements(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.spawn = NewSpawner(g.rng, g.world, cfg.SpawnAttempts, cfg.SpawnPadding, cfg.PredatorSpawnMaxDistance)
	g.steer = NewSteering(g.rng, cfg)
	g.particles = NewParticleSystem(cfg.MaxParticles, g.rng)
	g.loadHighScore()
	g.newRun()
	g.state = StateMenu
	return g, nil
}

func (g *Game) Events() *EventBus { return g.events }
func (g *Game) State() State { return g.state }
func (g *Game) Score() int { return g.score }
func (g *Game) Level() int { return g.level }
func (g *Game) Player() Entity { return *g.player }
func (g *Game) World() World { return g.world }
func (g *Game) Stats() Stats { return g.stats }

// Start leaves the menu.
func (g *Game) Start() {
	if g.state == StateMenu {
		g.setState(StatePlaying)
	}
}

// TogglePause flips between Playing and Paused; other states ignore it.
func (g *Game) TogglePause() {
	switch g.state {
	case StatePlaying:
		g.setState(StatePaused)
	case StatePaused:
		g.setState(StatePlaying)
	}
}

// Reset starts a fresh run from any state: score 0, level 1, a new player
// and freshly spawned creatures.
func (g *Game) Reset() {
	g.newRun()
	g.setState(StatePlaying)
}

func (g *Game) newRun() {
	g.score = 0
	g.level = 1
	g.tick = 0
	g.player = newEntity(RolePlayer, g.world.Center(), g.cfg.PlayerStartSize, g.cfg.PlayerStartSpeed, config.EdgeClamp, Vec2{1, 0})
	g.prey = nil
	g.predators = nil
	g.particles.Clear()
	g.stats = Stats{HighScore: g.stats.HighScore}
	g.achievements.Reset()
	g.spawnLevel(g.cfg.Levels.For(1))

	g.emit(Event{Type: EventScoreChanged, Value: g.score})
	g.emit(Event{Type: EventLevelChanged, Value: g.level})
	g.emit(Event{Type: EventSizeChanged, Size: g.player.Size})
}

// Update advances one frame. dt is the wall-clock frame time in seconds and
// only feeds the time-played statistic: movement is in units per tick.
func (g *Game) Update(dt float64, in Input) {
	if g.state != StatePlaying {
		return
	}
	g.tick++
	g.stats.TimePlayed += dt

	g.stats.Distance += g.movePlayer(in)

	for _, c := range g.prey {
		g.steer.Steer(c, g.player.Pos)
		Integrate(c, g.world)
	}
	for _, c := range g.predators {
		g.steer.Steer(c, g.player.Pos)
		Integrate(c, g.world)
	}

	g.particles.Update()
	g.checkAchievements()

	g.resolveCollisions()
	if g.state != StatePlaying {
		return
	}
	g.checkProgression()

	if g.rng.Float64() < g.cfg.BubbleChance {
		g.particles.BubbleEffect(g.rng.Float64()*g.world.W, g.world.H)
		if g.rng.Float64() < g.cfg.BubbleSoundChance {
			g.sound.Play(SoundBubble, 0.1)
		}
	}
}

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}
	g.state = s
	g.emit(Event{Type: EventStateChanged, Value: int(s)})
}

func (g *Game) emit(e Event) { g.events.Emit(e) }

func (g *Game) gameOver() {
	g.setState(StateGameOver)
	if g.score > g.stats.HighScore {
		g.stats.HighScore = g.score
		g.saveHighScore()
	}
	g.sound.Play(SoundHurt, 0.5)
	g.emit(Event{Type: EventGameOver, X: g.player.Pos.X, Y: g.player.Pos.Y, Value: g.score})
}

func (g *Game) loadHighScore() {
	if g.store == nil {
		return
	}
	v, err := g.store.Get(config.HighScoreKey)
	if err != nil {
		log.Printf("high score unavailable: %v", err)
		return
	}
	g.stats.HighScore = int(v)
}

func (g *Game) saveHighScore() {
	if g.store == nil {
		return
	}
	if err := g.store.Set(config.HighScoreKey, float64(g.stats.HighScore)); err != nil {
		log.Printf("save high score: %v", err)
	}
}

func (g *Game) checkAchievements() {
	for _, a := range g.achievements.Check(g.stats, g.level, g.score) {
		g.sound.Play(SoundLevelUp, 0.3)
		g.emit(Event{Type: EventAchievementUnlocked, Text: a.Title})
	}
}
