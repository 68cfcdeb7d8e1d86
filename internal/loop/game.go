package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/polyroids/internal/audio"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/loop/config"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
	"github.com/tomz197/polyroids/internal/score"
)

// GameState represents the current session phase.
type GameState int

const (
	GameStateStart      GameState = iota // Title screen, rocks drifting
	GameStatePlaying                     // Ship in play
	GameStateRespawning                  // Ship lost, waiting for a safe respawn
	GameStateGameOver                    // No lives left
)

func (s GameState) String() string {
	switch s {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateRespawning:
		return "respawning"
	case GameStateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameOptions configures a Game.
type GameOptions struct {
	Lives  int          // Lives per session (default 3)
	Rand   *rand.Rand   // Randomness source (default time-seeded)
	Sound  audio.Player // Sound collaborator (default Nop)
	Logger *log.Logger  // Event log (default discards)
}

// Game runs one single-player session on a World.
type Game struct {
	world  *World
	board  *score.Board
	ship   *object.Ship
	saucer *object.Saucer
	state  GameState

	lives int
	rng   *rand.Rand
	sound audio.Player
	log   *log.Logger

	cycle        object.ShapeCycle
	wave         int // Current wave number, from 1
	waveSize     int // Rocks in the current wave
	respawnTimer int
	saucerTimer  int
	events       []Event

	// Reused by the collision pass
	grid    *physics.SpatialGrid
	rocks   []*object.Rock
	bullets []*object.Bullet
}

// NewGame creates a game on the title screen with a wave of rocks
// drifting in the background.
func NewGame(screen object.Screen, opts GameOptions) *Game {
	if opts.Lives <= 0 {
		opts.Lives = 3
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	g := &Game{
		world: NewWorld(screen),
		board: score.New(opts.Lives),
		lives: opts.Lives,
		rng:   opts.Rand,
		sound: audio.OrNop(opts.Sound),
		log:   opts.Logger,
		grid:  physics.NewSpatialGrid(float64(screen.Width), float64(screen.Height), config.GridCellSize),
	}
	g.spawnRocks(config.InitialRocks)
	g.world.Flush()
	return g
}

// Start begins a new session: fresh score and lives, a ship in the centre
// and the first wave of rocks.
func (g *Game) Start() {
	if g.saucer != nil {
		g.saucer.Silence()
		g.saucer = nil
	}
	g.sound.StopSound(audio.Thrust)
	g.world.Clear()
	g.board.Reset(g.lives)
	g.cycle = object.ShapeCycle{}
	g.wave = 0
	g.waveSize = config.InitialRocks - 1

	g.spawnShip()
	g.nextWave()
	g.scheduleSaucer()
	g.world.Flush()
	g.state = GameStatePlaying
	g.log.Debug("session start", "lives", g.lives)
}

// Step advances the game by one frame.
func (g *Game) Step(in input.Input) {
	g.events = g.events[:0]
	intents := in.Intents()

	// Control
	switch g.state {
	case GameStateStart, GameStateGameOver:
		if in.Enter || intents.Fire {
			g.Start()
			return
		}
	case GameStatePlaying:
		if g.ship != nil {
			g.ship.Control(intents, g.world, g.rng)
		}
	case GameStateRespawning:
		g.respawnTimer--
		if g.respawnTimer <= 0 && g.safeToRespawn() {
			g.spawnShip()
			g.state = GameStatePlaying
		}
	}
	if g.saucer != nil {
		g.saucer.Think(g.target(), g.world, g.rng)
	}
	g.world.Flush()

	// Move
	g.world.MoveAll(object.UpdateContext{Screen: g.world.Screen, Spawner: g.world, Rand: g.rng})
	if g.saucer != nil && g.world.Killed(g.saucer) {
		g.log.Debug("saucer left", "size", g.saucer.Size, "laps", g.saucer.Laps())
		g.saucer = nil
		g.scheduleSaucer()
	}
	g.world.Flush()

	// Collide
	g.handleCollisions()
	g.world.Flush()

	if g.state == GameStatePlaying || g.state == GameStateRespawning {
		if g.world.Count(object.KindRock) == 0 {
			g.nextWave()
		}
		g.updateSaucerSchedule()
		g.world.Flush()
	}
}

// Draw draws every live entity.
func (g *Game) Draw(r object.Renderer) {
	g.world.DrawAll(r)
}

// Events returns the events of the last Step. The slice is reused.
func (g *Game) Events() []Event {
	return g.events
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Score() int {
	return g.board.Score()
}

func (g *Game) Lives() int {
	return g.board.Lives()
}

// Wave returns the current wave number, from 1.
func (g *Game) Wave() int {
	return g.wave
}

func (g *Game) World() *World {
	return g.world
}

// Ship returns the ship in play, or nil.
func (g *Game) Ship() *object.Ship {
	return g.ship
}

// Saucer returns the saucer in play, or nil.
func (g *Game) Saucer() *object.Saucer {
	return g.saucer
}

// target returns what the saucer shoots at. A nil *Ship must not be
// wrapped in a non-nil interface.
func (g *Game) target() object.Target {
	if g.ship == nil {
		return nil
	}
	return g.ship
}

func (g *Game) emit(e Event) {
	e.Score = g.board.Score()
	e.Lives = g.board.Lives()
	g.events = append(g.events, e)
}

func (g *Game) spawnShip() {
	g.ship = object.NewShip(g.world.Screen, g.sound)
	g.world.Spawn(g.ship)
}

func (g *Game) spawnRocks(n int) {
	for _, r := range object.SpawnWave(g.world.Screen, n, &g.cycle, g.rng) {
		g.world.Spawn(r)
	}
}

// nextWave starts a wave with one more rock than the last, up to MaxRocks.
func (g *Game) nextWave() {
	g.wave++
	g.waveSize = min(g.waveSize+1, config.MaxRocks)
	g.spawnRocks(g.waveSize)
	g.emit(Event{Type: EventWaveStart, Wave: g.wave})
	g.log.Debug("wave start", "wave", g.wave, "rocks", g.waveSize)
}

// safeToRespawn reports whether no part of any rock is within SafeRadius
// of the centre.
func (g *Game) safeToRespawn() bool {
	center := g.world.Screen.Center()
	safe := true
	g.world.Each(object.KindRock, func(e object.Entity) {
		r := e.(*object.Rock)
		if physics.PointInCircle(r.Position.X, r.Position.Y, center.X, center.Y, config.SafeRadius+object.RockRadius(r.Size)) {
			safe = false
		}
	})
	return safe
}

func (g *Game) scheduleSaucer() {
	g.saucerTimer = config.SaucerIntervalFrames + g.rng.Intn(config.SaucerJitterFrames)
}

// updateSaucerSchedule counts down to the next saucer while none is alive.
func (g *Game) updateSaucerSchedule() {
	if g.saucer != nil {
		return
	}
	g.saucerTimer--
	if g.saucerTimer > 0 {
		return
	}

	size := object.SaucerLarge
	if g.board.Score() >= config.SmallSaucerScore || g.rng.Intn(config.SmallSaucerChance) == 0 {
		size = object.SaucerSmall
	}
	g.saucer = object.NewSaucer(g.world.Screen, size, g.rng, g.sound)
	g.world.Spawn(g.saucer)
	g.log.Debug("saucer spawned", "size", size)
}
