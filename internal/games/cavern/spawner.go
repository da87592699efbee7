package cavern

import "github.com/cavern-arcade/cavern/internal/core"

// runSpawner feeds the level's pending robots onto the screen at a fixed
// cadence and rains bonus fruit while any enemies remain. Both intervals
// shrink as difficulty progresses.
func (g *Game) runSpawner() {
	g.spawnTimer++
	g.fruitTimer++

	interval := g.diff.SpawnInterval(g.cfg.Spawner.EnemyInterval, g.score, g.tick)
	if g.spawnTimer >= interval && len(g.pending) > 0 && g.arena.CountKind(KindRobot) < g.maxEnemies() {
		g.spawnTimer = 0
		rt := g.pending[len(g.pending)-1]
		g.pending = g.pending[:len(g.pending)-1]
		g.spawnRobot(rt)
	}

	if g.fruitTimer >= g.cfg.Spawner.FruitInterval {
		g.fruitTimer = 0
		if len(g.pending) > 0 || g.arena.CountKind(KindRobot) > 0 {
			pos := core.Vec2{
				X: MinX + g.rng.Float64()*(MaxX-MinX),
				Y: 75 + g.rng.Float64()*325,
			}
			g.spawnRandomFruit(pos)
		}
	}
}

// spawnRobot drops a new enemy in from above the level at an open column.
func (g *Game) spawnRobot(rt RobotType) {
	speed := g.cfg.Robot.MinSpeed +
		g.rng.Float64()*(g.cfg.Robot.MaxSpeed-g.cfg.Robot.MinSpeed)
	g.arena.Spawn(Entity{
		Kind:      KindRobot,
		Pos:       core.Vec2{X: g.grid.SpawnX(g.rng), Y: -30},
		Facing:    FacingRight,
		W:         g.cfg.Robot.Width,
		H:         g.cfg.Robot.Height,
		RobotMode: RobotPatrolling,
		RobotType: rt,
		Speed:     speed,
		BoltTicks: g.boltInterval(),
		TrappedBy: NilHandle,
	})
}
