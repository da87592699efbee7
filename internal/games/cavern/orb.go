package cavern

// updateOrb advances one bubble. Flying orbs travel horizontally until a
// wall stops them or their blown frames run out, then drift upward. While
// carrying, the robot's trap timer owns the orb's fate, so the lifetime
// check only applies to empty orbs.
func (g *Game) updateOrb(h Handle, e *Entity) {
	if !e.Alive || e.OrbMode == OrbPopping {
		return
	}
	e.OrbTimer++

	switch e.OrbMode {
	case OrbFlying:
		if g.moveActor(e, int(e.Facing), 0, int(g.cfg.Orb.Speed)) {
			e.OrbMode = OrbExpanding
		} else if e.OrbTimer >= e.BlownFrames {
			e.OrbMode = OrbExpanding
		}
	case OrbExpanding, OrbCarrying:
		g.moveActor(e, 0, -1, 1+g.rng.Intn(int(g.cfg.Orb.RiseSpeed)+1))
	}

	offTop := e.Pos.Y <= -40
	expired := e.OrbMode != OrbCarrying && e.OrbTimer >= g.cfg.Orb.Lifetime
	if offTop || expired {
		g.popOrb(h, e, false)
	}
}

// popOrb destroys the orb with a pop effect. withFruit converts the carried
// robot into a pickup and awards points; otherwise a carried robot breaks
// free and resumes patrolling. Idempotent against a second pop in the same
// tick.
func (g *Game) popOrb(h Handle, e *Entity, withFruit bool) {
	if !e.Alive || e.OrbMode == OrbPopping {
		return
	}
	e.OrbMode = OrbPopping
	g.spawnPop(e.Pos, popOrbStyle)

	if robot := g.arena.Get(e.Carrying); robot != nil && robot.Alive {
		if withFruit {
			g.arena.Kill(e.Carrying)
			g.spawnFruit(e.Pos, robot.RobotType)
			g.score += g.cfg.Orb.PopPoints
		} else {
			g.releaseRobot(robot)
		}
	}
	e.Carrying = NilHandle
	if h == g.blowing {
		g.blowing = NilHandle
	}
	g.arena.Kill(h)
}

// updateBolt moves an enemy shot in a straight line and retires it on wall
// contact. Hits on the player and on orbs are the resolver's job.
func (g *Game) updateBolt(h Handle, e *Entity) {
	if !e.Alive {
		return
	}
	if g.moveActor(e, int(e.Facing), 0, int(g.cfg.Bolt.Speed)) {
		g.arena.Kill(h)
	}
}
