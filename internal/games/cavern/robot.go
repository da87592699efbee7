package cavern

import "github.com/cavern-arcade/cavern/internal/core"

// updateRobot advances one enemy. Trapped robots do not move themselves;
// the carrying orb drags them and their trap timer decides release. Capture
// itself happens in the resolver.
func (g *Game) updateRobot(h Handle, e *Entity) {
	if !e.Alive {
		return
	}
	if e.RobotMode == RobotTrapped {
		g.updateTrappedRobot(h, e)
		return
	}

	g.applyGravity(e)

	if e.TurnTicks > 0 {
		e.TurnTicks--
	}
	if e.BoltTicks > 0 {
		e.BoltTicks--
	}

	speed := int(g.diff.Speed(e.Speed, g.score, g.tick))
	if speed < 1 {
		speed = 1
	}
	if g.moveActor(e, int(e.Facing), 0, speed) {
		// Wall or ledge boundary: pick a new direction right away.
		e.TurnTicks = 0
	}

	player := g.arena.Get(g.player)

	e.RobotMode = RobotPatrolling
	if player != nil && core.Abs(int(player.Pos.X-e.Pos.X)) < int(g.cfg.Robot.ChaseRadius) {
		e.RobotMode = RobotChasing
	}

	if e.TurnTicks <= 0 {
		e.Facing = g.pickDirection(e, player)
		e.TurnTicks = 100 + g.rng.Intn(151)
	}

	// Aggressive robots divert toward orbs drifting through their row,
	// hunting down the player's bubbles.
	if e.RobotType == RobotAggressive {
		bounds := e.Bounds()
		g.arena.ForEachKind(KindOrb, func(_ Handle, orb *Entity) {
			if !orb.Alive || orb.OrbMode == OrbPopping {
				return
			}
			if orb.Pos.Y >= bounds.Y && orb.Pos.Y < bounds.Bottom() &&
				core.Abs(int(orb.Pos.X-e.Pos.X)) < 200 {
				e.Facing = horizontalToward(e.Pos.X, orb.Pos.X)
			}
		})
	}

	if e.BoltTicks <= 0 && player != nil && player.Alive {
		e.Facing = horizontalToward(e.Pos.X, player.Pos.X)
		g.fireBolt(h, e)
		e.BoltTicks = g.boltInterval()
	}
}

// updateTrappedRobot keeps the robot glued to its orb and frees it when the
// trap window runs out. Release restores the robot's full patrol speed and
// destroys the orb without leaving fruit behind.
func (g *Game) updateTrappedRobot(h Handle, e *Entity) {
	orb := g.arena.Get(e.TrappedBy)
	if orb == nil || !orb.Alive {
		g.releaseRobot(e)
		return
	}
	e.Pos = core.Vec2{X: orb.Pos.X, Y: orb.Pos.Y + e.H/2}

	e.TrappedTicks++
	if e.TrappedTicks >= g.cfg.Robot.TrappedDuration {
		g.popOrb(e.TrappedBy, orb, false)
	}
}

// releaseRobot reverts a trapped robot to patrolling at full velocity.
func (g *Game) releaseRobot(e *Entity) {
	e.RobotMode = RobotPatrolling
	e.TrappedBy = NilHandle
	e.TrappedTicks = 0
	e.Vel = core.Vec2{}
	e.TurnTicks = 0
}

// pickDirection chooses the next patrol heading. One extra candidate biased
// toward the player makes robots drift that way without hard tracking; inside
// the chase radius the bias is certain.
func (g *Game) pickDirection(e *Entity, player *Entity) Facing {
	if player == nil || !player.Alive {
		if g.rng.Intn(2) == 0 {
			return FacingLeft
		}
		return FacingRight
	}
	toward := horizontalToward(e.Pos.X, player.Pos.X)
	if e.RobotMode == RobotChasing {
		return toward
	}
	switch g.rng.Intn(3) {
	case 0:
		return FacingLeft
	case 1:
		return FacingRight
	default:
		return toward
	}
}

func (g *Game) fireBolt(owner Handle, e *Entity) {
	g.arena.Spawn(Entity{
		Kind:   KindBolt,
		Pos:    core.Vec2{X: e.Pos.X + float64(e.Facing)*20, Y: e.Pos.Y - e.H + 10},
		Facing: e.Facing,
		W:      g.cfg.Bolt.Size,
		H:      g.cfg.Bolt.Size,
		Owner:  owner,
	})
}

func horizontalToward(from, to float64) Facing {
	if to < from {
		return FacingLeft
	}
	return FacingRight
}
