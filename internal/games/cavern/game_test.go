package cavern

import (
	"testing"

	"github.com/cavern-arcade/cavern/internal/config"
	"github.com/cavern-arcade/cavern/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New(config.DefaultCavernConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// playerEntity returns the live player or fails the test.
func playerEntity(t *testing.T, g *Game) *Entity {
	t.Helper()
	p := g.arena.Get(g.player)
	if p == nil {
		t.Fatal("player entity missing")
	}
	return p
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and same input sequence must replay identically.
	inputs := make([]core.InputState, 600)
	for i := range inputs {
		inputs[i].Right = i%3 != 0
		inputs[i].Left = i%7 == 0
		inputs[i].JumpPressed = i%25 == 0
		inputs[i].FirePressed = i%40 == 0
		inputs[i].FireHeld = i%40 < 10
	}

	run := func() (core.GameState, int) {
		g := newTestGame(12345)
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
			if st.GameOver {
				break
			}
		}
		return st, g.tick
	}

	st1, t1 := run()
	st2, t2 := run()

	if st1.Score != st2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", st1.Score, st2.Score)
	}
	if t1 != t2 {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", t1, t2)
	}
}

func TestSingleCapturePerOrb(t *testing.T) {
	// Two robots overlapping one orb: exactly one is trapped, ties going to
	// the earlier registry slot.
	g := newTestGame(1)
	cfg := g.cfg

	pos := core.Vec2{X: 200, Y: 300}
	r1 := g.arena.Spawn(Entity{
		Kind: KindRobot, Pos: pos, Facing: FacingRight,
		W: cfg.Robot.Width, H: cfg.Robot.Height, RobotMode: RobotPatrolling,
	})
	r2 := g.arena.Spawn(Entity{
		Kind: KindRobot, Pos: pos, Facing: FacingLeft,
		W: cfg.Robot.Width, H: cfg.Robot.Height, RobotMode: RobotPatrolling,
	})
	orb := g.arena.Spawn(Entity{
		Kind: KindOrb, Pos: core.Vec2{X: pos.X, Y: pos.Y - 10}, Facing: FacingRight,
		W: cfg.Orb.Size, H: cfg.Orb.Size, OrbMode: OrbExpanding, Carrying: NilHandle,
	})

	g.resolve()

	o := g.arena.Get(orb)
	if o.OrbMode != OrbCarrying {
		t.Fatalf("orb mode = %v, want OrbCarrying", o.OrbMode)
	}
	if o.Carrying != r1 {
		t.Errorf("orb captured wrong robot: got %v, want first-registered", o.Carrying)
	}
	if got := g.arena.Get(r1).RobotMode; got != RobotTrapped {
		t.Errorf("first robot mode = %v, want RobotTrapped", got)
	}
	if got := g.arena.Get(r2).RobotMode; got != RobotPatrolling {
		t.Errorf("second robot mode = %v, want unchanged RobotPatrolling", got)
	}
}

func TestPopWithCarriedRobotSpawnsOneFruit(t *testing.T) {
	g := newTestGame(1)
	cfg := g.cfg
	p := playerEntity(t, g)

	robot := g.arena.Spawn(Entity{
		Kind: KindRobot, Pos: p.Pos, W: cfg.Robot.Width, H: cfg.Robot.Height,
		RobotMode: RobotTrapped, RobotType: RobotNormal,
	})
	orb := g.arena.Spawn(Entity{
		Kind: KindOrb, Pos: core.Vec2{X: p.Pos.X, Y: p.Pos.Y - 10},
		W: cfg.Orb.Size, H: cfg.Orb.Size, OrbMode: OrbCarrying, Carrying: robot,
	})
	g.arena.Get(robot).TrappedBy = orb
	scoreBefore := g.score

	// The pickup stage would scoop up the fruit in the same pass since it
	// lands at the player's feet; assert right after the pop stage.
	g.resolveOrbPops()
	g.arena.Compact()

	if n := g.arena.CountKind(KindFruit); n != 1 {
		t.Errorf("fruit count = %d, want exactly 1", n)
	}
	if g.arena.Get(robot) != nil {
		t.Error("carried robot should be removed on pop")
	}
	if g.arena.Get(orb) != nil {
		t.Error("orb should be removed on pop")
	}
	if g.score != scoreBefore+cfg.Orb.PopPoints {
		t.Errorf("score = %d, want %d", g.score, scoreBefore+cfg.Orb.PopPoints)
	}
}

func TestBoltBurstFreesRobotWithoutFruit(t *testing.T) {
	// Only the player's pop converts a trapped robot. A bolt bursting the
	// bubble releases the robot, with no fruit and no points.
	g := newTestGame(1)
	cfg := g.cfg

	pos := core.Vec2{X: 600, Y: 300}
	robot := g.arena.Spawn(Entity{
		Kind: KindRobot, Pos: pos, W: cfg.Robot.Width, H: cfg.Robot.Height,
		RobotMode: RobotTrapped, RobotType: RobotNormal, Speed: 2,
	})
	orb := g.arena.Spawn(Entity{
		Kind: KindOrb, Pos: pos, W: cfg.Orb.Size, H: cfg.Orb.Size,
		OrbMode: OrbCarrying, Carrying: robot,
	})
	g.arena.Get(robot).TrappedBy = orb
	bolt := g.arena.Spawn(Entity{
		Kind: KindBolt, Pos: pos, Facing: FacingLeft,
		W: cfg.Bolt.Size, H: cfg.Bolt.Size,
	})
	scoreBefore := g.score

	g.resolve()
	g.arena.Compact()

	if g.arena.Get(orb) != nil {
		t.Error("orb should burst on bolt contact")
	}
	if g.arena.Get(bolt) != nil {
		t.Error("bolt should be spent on the orb")
	}
	r := g.arena.Get(robot)
	if r == nil {
		t.Fatal("robot should survive a bolt burst")
	}
	if r.RobotMode != RobotPatrolling {
		t.Errorf("robot mode = %v, want RobotPatrolling after release", r.RobotMode)
	}
	if n := g.arena.CountKind(KindFruit); n != 0 {
		t.Errorf("fruit count = %d, want 0 for a bolt burst", n)
	}
	if g.score != scoreBefore {
		t.Errorf("score = %d, want unchanged %d", g.score, scoreBefore)
	}
}

func TestEmptyOrbExpirySpawnsNoFruit(t *testing.T) {
	g := newTestGame(1)
	cfg := g.cfg

	orb := g.arena.Spawn(Entity{
		Kind: KindOrb, Pos: core.Vec2{X: 300, Y: 200},
		W: cfg.Orb.Size, H: cfg.Orb.Size, OrbMode: OrbExpanding,
		OrbTimer: cfg.Orb.Lifetime - 1, Carrying: NilHandle,
	})

	g.updateOrb(orb, g.arena.Get(orb))
	g.arena.Compact()

	if g.arena.Get(orb) != nil {
		t.Error("expired orb should be removed")
	}
	if n := g.arena.CountKind(KindFruit); n != 0 {
		t.Errorf("fruit count = %d, want 0 for empty orb", n)
	}
	if n := g.arena.CountKind(KindPop); n != 1 {
		t.Errorf("pop effect count = %d, want 1", n)
	}
}

func TestDamageIgnoredWhileInvulnerable(t *testing.T) {
	g := newTestGame(1)
	p := playerEntity(t, g)
	p.InvulnTicks = 50
	livesBefore := p.Lives

	// Overlapping bolt contact on consecutive ticks inside the window.
	for i := 0; i < 5; i++ {
		g.arena.Spawn(Entity{
			Kind: KindBolt, Pos: core.Vec2{X: p.Pos.X, Y: p.Pos.Y - 10},
			Facing: FacingLeft, W: g.cfg.Bolt.Size, H: g.cfg.Bolt.Size,
		})
		g.resolve()
		g.arena.Compact()
	}

	if p.Lives != livesBefore {
		t.Errorf("lives = %d, want %d (no damage while invulnerable)", p.Lives, livesBefore)
	}
}

func TestLivesSequenceEndsInGameOver(t *testing.T) {
	g := newTestGame(1)
	p := playerEntity(t, g)
	if p.Lives != 3 {
		t.Fatalf("starting lives = %d, want 3", p.Lives)
	}

	hit := func() {
		p := playerEntity(t, g)
		p.InvulnTicks = 0
		g.arena.Spawn(Entity{
			Kind: KindBolt, Pos: core.Vec2{X: p.Pos.X, Y: p.Pos.Y - 10},
			Facing: FacingLeft, W: g.cfg.Bolt.Size, H: g.cfg.Bolt.Size,
		})
		g.resolve()
		g.arena.Compact()
	}

	want := []int{2, 1, 0}
	for i, w := range want {
		hit()
		if got := playerEntity(t, g).Lives; got != w {
			t.Fatalf("after hit %d: lives = %d, want %d", i+1, got, w)
		}
		if g.gameOver {
			t.Fatalf("after hit %d: premature game over", i+1)
		}
	}

	// Fourth hit at zero lives ends the run rather than showing -1.
	pp := g.arena.Get(g.player)
	pp.InvulnTicks = 0
	g.arena.Spawn(Entity{
		Kind: KindBolt, Pos: core.Vec2{X: pp.Pos.X, Y: pp.Pos.Y - 10},
		Facing: FacingLeft, W: g.cfg.Bolt.Size, H: g.cfg.Bolt.Size,
	})
	g.resolve()
	if !g.gameOver {
		t.Error("fourth hit at lives=0 should end the game")
	}
	if g.Lives() != 0 {
		t.Errorf("displayed lives = %d, want 0 at game over", g.Lives())
	}
}

func TestTrapExpiryFreesRobotWithoutFruit(t *testing.T) {
	g := newTestGame(1)
	cfg := g.cfg

	robot := g.arena.Spawn(Entity{
		Kind: KindRobot, Pos: core.Vec2{X: 300, Y: 300},
		W: cfg.Robot.Width, H: cfg.Robot.Height,
		RobotMode: RobotTrapped, Speed: 2.5,
	})
	orb := g.arena.Spawn(Entity{
		Kind: KindOrb, Pos: core.Vec2{X: 300, Y: 290},
		W: cfg.Orb.Size, H: cfg.Orb.Size, OrbMode: OrbCarrying, Carrying: robot,
	})
	r := g.arena.Get(robot)
	r.TrappedBy = orb

	for i := 0; i < cfg.Robot.TrappedDuration; i++ {
		g.updateTrappedRobot(robot, r)
	}
	g.arena.Compact()

	if r.RobotMode != RobotPatrolling {
		t.Errorf("robot mode = %v, want RobotPatrolling after trap expiry", r.RobotMode)
	}
	if r.Speed != 2.5 {
		t.Errorf("robot speed = %v, want full velocity restored", r.Speed)
	}
	if g.arena.Get(orb) != nil {
		t.Error("orb should be destroyed on trap expiry")
	}
	if n := g.arena.CountKind(KindFruit); n != 0 {
		t.Errorf("fruit count = %d, want 0 on trap expiry", n)
	}
}

func TestEntitiesStayInBounds(t *testing.T) {
	g := newTestGame(99)

	for i := 0; i < 2000 && !g.gameOver; i++ {
		var in core.InputState
		in.Left = i%11 < 5
		in.Right = !in.Left
		in.JumpPressed = i%17 == 0
		in.FirePressed = i%23 == 0
		in.FireHeld = i%23 < 6
		g.Step(in)

		g.arena.ForEach(func(_ Handle, e *Entity) {
			if !e.Alive {
				return
			}
			if e.Pos.X < 0 || e.Pos.X > LevelWidth {
				t.Fatalf("tick %d: %v at x=%v outside the level", g.tick, e.Kind, e.Pos.X)
			}
			// Gravity actors stay inside the walkable band; projectiles may
			// briefly poke past it before wall collision retires them.
			if e.bottomAnchored() && (e.Pos.X < MinX-1 || e.Pos.X > MaxX+1) {
				t.Fatalf("tick %d: %v at x=%v outside walkable band", g.tick, e.Kind, e.Pos.X)
			}
			if e.Pos.Y > LevelHeight+e.H+1 {
				t.Fatalf("tick %d: %v at y=%v below the level", g.tick, e.Kind, e.Pos.Y)
			}
		})
	}
}

func TestHeldFireExtendsOrbFlight(t *testing.T) {
	g := newTestGame(1)

	g.Step(core.InputState{FirePressed: true, FireHeld: true})
	_, orb := g.arena.First(KindOrb)
	if orb == nil {
		t.Fatal("fire press should spawn an orb")
	}
	base := orb.BlownFrames

	for i := 0; i < 5; i++ {
		g.Step(core.InputState{FireHeld: true})
	}
	if orb.BlownFrames <= base {
		t.Errorf("blown frames = %d, want > %d after holding fire", orb.BlownFrames, base)
	}

	// Release detaches for good; further holding must not inflate again.
	g.Step(core.InputState{})
	after := orb.BlownFrames
	g.Step(core.InputState{FireHeld: true})
	if orb.BlownFrames != after {
		t.Errorf("blown frames changed after release: %d -> %d", after, orb.BlownFrames)
	}
}

func TestOrbCapReached(t *testing.T) {
	g := newTestGame(1)
	max := g.cfg.Orb.MaxActive

	for i := 0; i < max+3; i++ {
		p := playerEntity(t, g)
		p.FireCooldown = 0
		g.Step(core.InputState{FirePressed: true})
	}
	if n := g.arena.CountKind(KindOrb); n > max {
		t.Errorf("active orbs = %d, want at most %d", n, max)
	}
}

func TestGameOverFreezesSimulation(t *testing.T) {
	g := newTestGame(1)
	g.gameOver = true
	before := g.tick
	g.Step(core.InputState{Right: true})
	if g.tick != before {
		t.Error("Step should not advance after game over")
	}
}
