package cavern

import (
	"math/rand"

	"github.com/cavern-arcade/cavern/internal/config"
	"github.com/cavern-arcade/cavern/internal/core"
	"github.com/cavern-arcade/cavern/internal/registry"
)

func init() {
	registry.Register("cavern", func() registry.Game {
		return New(config.DefaultCavernConfig())
	})
}

// Game is the cavern simulation. It owns the entity arena, the level grid
// and all tick-scoped state; the platform layer drives it through Step and
// reads back a snapshot for rendering. Step never blocks and is only called
// from one goroutine.
type Game struct {
	cfg  config.CavernConfig
	diff *config.DifficultyManager
	rng  *rand.Rand

	grid    Grid
	arena   *Arena
	player  Handle
	blowing Handle // Orb still being charged by held fire

	tick       int
	level      int
	levelColor int
	score      int
	gameOver   bool

	pending    []RobotType // Robots yet to spawn this level, popped from the tail
	spawnTimer int
	fruitTimer int
}

// New creates a game with the given tuning. Call Reset before stepping.
func New(cfg config.CavernConfig) *Game {
	return &Game{
		cfg:   cfg,
		diff:  config.NewDifficultyManager(cfg.Difficulty),
		arena: NewArena(64),
	}
}

// ID implements registry.Game.
func (g *Game) ID() string { return "cavern" }

// Title implements registry.Game.
func (g *Game) Title() string { return "Cavern" }

// Difficulty exposes the progression manager so the platform layer can apply
// preset overrides before Reset.
func (g *Game) Difficulty() *config.DifficultyManager { return g.diff }

// ApplyPreset retunes the game for a difficulty preset. Must be called before
// Reset; it rebuilds the progression manager from the adjusted config.
func (g *Game) ApplyPreset(preset config.DifficultyPreset) {
	config.ApplyCavernPreset(&g.cfg, preset)
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
}

// Reset starts a fresh run: score zeroed, level zero, player at the spawn
// point. The seed in rc drives all in-game randomness, so equal seeds and
// equal input sequences replay identically.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = 1
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.arena.Reset()
	g.tick = 0
	g.level = -1
	g.levelColor = -1
	g.score = 0
	g.gameOver = false
	g.player = g.arena.Spawn(Entity{
		Kind:   KindPlayer,
		Facing: FacingRight,
		W:      g.cfg.Player.Width,
		H:      g.cfg.Player.Height,
		Lives:  g.cfg.Player.Lives,
	})
	g.blowing = NilHandle
	g.nextLevel()
}

// nextLevel advances to the next layout, clears every entity except the
// player and queues the level's robots.
func (g *Game) nextLevel() {
	g.level++
	g.levelColor = (g.levelColor + 1) % 4
	g.grid = NewGrid(g.level)

	g.arena.ForEach(func(h Handle, e *Entity) {
		if e.Kind != KindPlayer {
			g.arena.Kill(h)
		}
	})
	g.arena.Compact()
	g.blowing = NilHandle
	g.respawnPlayer()

	total := 10 + g.level
	aggressive := 1 + g.level*2/3
	if aggressive > total {
		aggressive = total
	}
	g.pending = g.pending[:0]
	for i := 0; i < total; i++ {
		if i < aggressive {
			g.pending = append(g.pending, RobotAggressive)
		} else {
			g.pending = append(g.pending, RobotNormal)
		}
	}
	g.rng.Shuffle(len(g.pending), func(i, j int) {
		g.pending[i], g.pending[j] = g.pending[j], g.pending[i]
	})

	g.spawnTimer = 0
	g.fruitTimer = 0
}

func (g *Game) respawnPlayer() {
	p := g.arena.Get(g.player)
	if p == nil {
		return
	}
	p.Pos = core.Vec2{X: LevelWidth / 2, Y: 100}
	p.Vel = core.Vec2{}
	p.Facing = FacingRight
	p.OnGround = false
	p.PlayerMode = PlayerIdle
	p.InvulnTicks = g.cfg.Player.Invulnerability
	p.HurtTicks = 0
	p.FireCooldown = 0
}

// Step advances the simulation one tick. Order is fixed: player, robots,
// projectiles and effects, interaction resolution, spawning, then compaction.
// The input snapshot is already edge-detected; Step never sees raw key state.
func (g *Game) Step(in core.InputState) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.updatePlayer(in)
	g.arena.ForEachKind(KindRobot, g.updateRobot)
	g.arena.ForEachKind(KindOrb, g.updateOrb)
	g.arena.ForEachKind(KindBolt, g.updateBolt)
	g.arena.ForEachKind(KindFruit, g.updateFruit)
	g.arena.ForEachKind(KindPop, g.updatePop)

	g.resolve()
	g.runSpawner()
	g.arena.Compact()

	if g.levelComplete() {
		g.nextLevel()
	}
	return core.StepResult{State: g.State()}
}

// levelComplete reports whether every robot of the level has been dealt
// with: nothing pending, nothing alive, nothing trapped and no pickups or
// animations left on screen.
func (g *Game) levelComplete() bool {
	if len(g.pending) > 0 {
		return false
	}
	done := true
	g.arena.ForEach(func(_ Handle, e *Entity) {
		if !e.Alive {
			return
		}
		switch e.Kind {
		case KindRobot, KindFruit, KindPop:
			done = false
		case KindOrb:
			if e.OrbMode == OrbCarrying {
				done = false
			}
		}
	})
	return done
}

// State implements registry.Game. Paused is always false; pausing is owned
// by the platform layer, which simply stops calling Step.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.gameOver}
}

// Lives returns the player's remaining lives for the HUD.
func (g *Game) Lives() int {
	if p := g.arena.Get(g.player); p != nil {
		return core.Max(p.Lives, 0)
	}
	return 0
}

// Level returns the zero-based level index.
func (g *Game) Level() int { return g.level }

// Tick returns the number of completed simulation ticks.
func (g *Game) Tick() int { return g.tick }

// boltInterval is the current robot firing interval after difficulty
// scaling.
func (g *Game) boltInterval() int {
	return g.diff.BoltInterval(g.cfg.Robot.BoltInterval, g.score, g.tick)
}

// maxEnemies caps concurrent robots, growing with the level.
func (g *Game) maxEnemies() int {
	return core.Min((g.level+6)/2, g.cfg.Spawner.MaxEnemiesCap)
}
