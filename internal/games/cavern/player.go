package cavern

import "github.com/cavern-arcade/cavern/internal/core"

// updatePlayer advances the player one tick: gravity, horizontal movement,
// jumping, firing and the charge mechanic for the most recent orb. Damage is
// not handled here; the resolver applies it after all motion is computed.
func (g *Game) updatePlayer(in core.InputState) {
	p := g.arena.Get(g.player)
	if p == nil || !p.Alive {
		return
	}

	g.applyGravity(p)

	if p.FireCooldown > 0 {
		p.FireCooldown--
	}
	if p.InvulnTicks > 0 {
		p.InvulnTicks--
	}
	if p.HurtTicks > 0 {
		p.HurtTicks--
	}

	dx := 0
	switch {
	case in.Left:
		dx = -1
	case in.Right:
		dx = 1
	}
	if dx != 0 {
		p.Facing = Facing(dx)
		// Firing briefly roots the player, matching the blow animation.
		if p.FireCooldown < g.cfg.Player.FireCooldown/2 {
			g.moveActor(p, dx, 0, int(g.cfg.Physics.WalkSpeed))
		}
	}

	if in.JumpPressed && p.OnGround && p.Vel.Y == 0 {
		p.Vel.Y = g.cfg.Physics.JumpImpulse
		p.OnGround = false
	}

	if in.FirePressed && p.FireCooldown <= 0 && g.arena.CountKind(KindOrb) < g.cfg.Orb.MaxActive {
		g.fireOrb(p)
	}

	// Holding fire keeps inflating the last orb, lengthening its flight up
	// to the charge cap. Any release detaches it for good.
	if in.FireHeld {
		if orb := g.arena.Get(g.blowing); orb != nil && orb.Alive && orb.OrbMode == OrbFlying {
			orb.BlownFrames += g.cfg.Orb.ChargeGain
			if orb.BlownFrames >= g.cfg.Orb.ChargeMax {
				g.blowing = NilHandle
			}
		} else {
			g.blowing = NilHandle
		}
	} else {
		g.blowing = NilHandle
	}

	p.PlayerMode = playerMode(p, dx)
}

// fireOrb spawns an orb just ahead of the player's face, clamped into the
// walkable band so point-blank wall shots still appear inside the level.
func (g *Game) fireOrb(p *Entity) {
	x := core.ClampF(p.Pos.X+float64(p.Facing)*38, MinX, MaxX)
	y := p.Pos.Y - 35
	g.blowing = g.arena.Spawn(Entity{
		Kind:        KindOrb,
		Pos:         core.Vec2{X: x, Y: y},
		Facing:      p.Facing,
		W:           g.cfg.Orb.Size,
		H:           g.cfg.Orb.Size,
		Owner:       g.player,
		OrbMode:     OrbFlying,
		BlownFrames: g.cfg.Orb.FlightTicks,
		Carrying:    NilHandle,
	})
	p.FireCooldown = g.cfg.Player.FireCooldown
}

func playerMode(p *Entity, dx int) PlayerMode {
	switch {
	case p.HurtTicks > 0:
		return PlayerHurt
	case p.FireCooldown > 0:
		return PlayerFiring
	case !p.OnGround:
		return PlayerJumping
	case dx != 0:
		return PlayerWalking
	default:
		return PlayerIdle
	}
}
