package cavern

import "github.com/cavern-arcade/cavern/internal/core"

// Pop animation styles, selecting a sprite set in the renderer.
const (
	popFruitStyle = 0
	popOrbStyle   = 1
)

// popDuration is the pop animation length in ticks.
const popDuration = 12

// updateFruit drops a pickup under gravity and ages it out. Collection is
// applied by the resolver; expiry leaves a small pop effect and no points.
func (g *Game) updateFruit(h Handle, e *Entity) {
	if !e.Alive {
		return
	}
	g.applyGravity(e)

	e.TTL--
	if e.TTL <= 0 {
		g.spawnPop(core.Vec2{X: e.Pos.X, Y: e.Pos.Y - 27}, popFruitStyle)
		g.arena.Kill(h)
	}
}

// updatePop ages the pop animation and retires it.
func (g *Game) updatePop(h Handle, e *Entity) {
	if !e.Alive {
		return
	}
	e.PopTicks++
	if e.PopTicks >= popDuration {
		g.arena.Kill(h)
	}
}

// spawnFruit creates a pickup at pos. Robots trapped and popped drop fruit
// whose tier depends on the robot type: aggressive robots always drop the
// top tier, normal robots a uniform pick.
func (g *Game) spawnFruit(pos core.Vec2, from RobotType) {
	var ft FruitType
	if from == RobotAggressive {
		ft = FruitLemon
	} else {
		ft = FruitType(g.rng.Intn(3))
	}
	g.spawnFruitOfType(pos, ft)
}

// spawnRandomFruit drops a bonus pickup of a uniformly random tier, used by
// the timed fruit rain while enemies remain.
func (g *Game) spawnRandomFruit(pos core.Vec2) {
	g.spawnFruitOfType(pos, FruitType(g.rng.Intn(3)))
}

func (g *Game) spawnFruitOfType(pos core.Vec2, ft FruitType) {
	g.arena.Spawn(Entity{
		Kind:      KindFruit,
		Pos:       pos,
		Facing:    FacingRight,
		W:         g.cfg.Fruit.Size,
		H:         g.cfg.Fruit.Size,
		FruitType: ft,
		TTL:       g.cfg.Fruit.TTL,
		Points:    (int(ft) + 1) * g.cfg.Fruit.BasePoints,
	})
}

func (g *Game) spawnPop(pos core.Vec2, style int) {
	g.arena.Spawn(Entity{
		Kind:     KindPop,
		Pos:      pos,
		Facing:   FacingRight,
		W:        1,
		H:        1,
		PopStyle: style,
	})
}
