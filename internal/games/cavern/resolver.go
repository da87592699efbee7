package cavern

// resolve applies every interaction rule once per tick, after all motion is
// computed. Rules run in a fixed order so the same configuration always
// produces the same outcome: orbs capture robots first, then pops, then
// player damage, then pickups. Entities killed by an earlier rule are inert
// for the rest of the scan; nothing is removed until compaction.
func (g *Game) resolve() {
	g.resolveCaptures()
	g.resolveOrbPops()
	g.resolveBoltOrbHits()
	g.resolvePlayerDamage()
	g.resolvePickups()
}

// resolveCaptures traps robots that touch free orbs. A robot already dead
// or trapped is skipped, and each orb captures at most one robot per tick;
// ties go to the first robot in registry order.
func (g *Game) resolveCaptures() {
	g.arena.ForEachKind(KindOrb, func(oh Handle, orb *Entity) {
		if !orb.Alive || orb.OrbMode == OrbCarrying || orb.OrbMode == OrbPopping {
			return
		}
		captured := false
		g.arena.ForEachKind(KindRobot, func(rh Handle, robot *Entity) {
			if captured || !robot.Alive || robot.RobotMode == RobotTrapped {
				return
			}
			if !orb.Overlaps(robot) {
				return
			}
			captured = true
			orb.OrbMode = OrbCarrying
			orb.Carrying = rh
			robot.RobotMode = RobotTrapped
			robot.TrappedBy = oh
			robot.TrappedTicks = 0
			robot.Vel.Y = 0
			if oh == g.blowing {
				g.blowing = NilHandle
			}
		})
	})
}

// resolveOrbPops pops carrying orbs the player touches, converting the
// trapped robot into fruit.
func (g *Game) resolveOrbPops() {
	player := g.arena.Get(g.player)
	if player == nil || !player.Alive {
		return
	}
	g.arena.ForEachKind(KindOrb, func(oh Handle, orb *Entity) {
		if !orb.Alive || orb.OrbMode != OrbCarrying {
			return
		}
		if player.Overlaps(orb) {
			g.popOrb(oh, orb, true)
		}
	})
}

// resolveBoltOrbHits lets enemy fire burst orbs. Only the player's pop
// converts a trapped robot; a bolt bursting a carrying orb frees the robot
// without fruit, the same as trap expiry.
func (g *Game) resolveBoltOrbHits() {
	g.arena.ForEachKind(KindBolt, func(bh Handle, bolt *Entity) {
		if !bolt.Alive {
			return
		}
		g.arena.ForEachKind(KindOrb, func(oh Handle, orb *Entity) {
			if !bolt.Alive || !orb.Alive || orb.OrbMode == OrbPopping {
				return
			}
			if bolt.Overlaps(orb) {
				g.popOrb(oh, orb, false)
				g.arena.Kill(bh)
			}
		})
	})
}

// resolvePlayerDamage applies bolt and robot contact damage. While the
// invulnerability timer runs, all damage contacts are ignored, so overlap
// held across consecutive ticks costs a single life.
func (g *Game) resolvePlayerDamage() {
	player := g.arena.Get(g.player)
	if player == nil || !player.Alive || player.InvulnTicks > 0 {
		return
	}

	hit := false
	g.arena.ForEachKind(KindBolt, func(bh Handle, bolt *Entity) {
		if hit || !bolt.Alive {
			return
		}
		if player.Overlaps(bolt) {
			hit = true
			g.arena.Kill(bh)
		}
	})
	if !hit {
		g.arena.ForEachKind(KindRobot, func(_ Handle, robot *Entity) {
			if hit || !robot.Alive || robot.RobotMode == RobotTrapped {
				return
			}
			if player.Overlaps(robot) {
				hit = true
			}
		})
	}
	if hit {
		g.damagePlayer(player)
	}
}

// damagePlayer takes one life and respawns the player at the spawn point
// under a fresh invulnerability window. Losing the last life ends the run.
func (g *Game) damagePlayer(player *Entity) {
	player.Lives--
	if player.Lives < 0 {
		player.PlayerMode = PlayerDead
		player.Alive = false
		g.gameOver = true
		return
	}
	g.respawnPlayer()
	player.HurtTicks = g.cfg.Player.KnockbackTicks
	player.PlayerMode = PlayerHurt
}

// resolvePickups collects fruit the player touches.
func (g *Game) resolvePickups() {
	player := g.arena.Get(g.player)
	if player == nil || !player.Alive {
		return
	}
	g.arena.ForEachKind(KindFruit, func(fh Handle, fruit *Entity) {
		if !fruit.Alive {
			return
		}
		if player.Overlaps(fruit) {
			g.score += fruit.Points
			g.spawnPop(fruit.Pos, popFruitStyle)
			g.arena.Kill(fh)
		}
	})
}
