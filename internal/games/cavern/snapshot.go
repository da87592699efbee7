package cavern

import "github.com/cavern-arcade/cavern/internal/core"

// EntityView is a read-only copy of one live entity, enough for a
// presentation layer to pick a sprite and for tests to assert on state
// without reaching into the arena.
type EntityView struct {
	Kind   Kind
	Pos    core.Vec2
	Facing Facing
	W, H   float64

	PlayerMode  PlayerMode
	Lives       int
	InvulnTicks int

	RobotMode RobotMode
	RobotType RobotType

	OrbMode  OrbMode
	Carrying bool

	FruitType FruitType
	Points    int

	PopStyle int
}

// Snapshot returns every live entity in registry iteration order. The slice
// is freshly allocated each call; callers may keep it across ticks.
func (g *Game) Snapshot() []EntityView {
	views := make([]EntityView, 0, g.arena.Len())
	g.arena.ForEach(func(_ Handle, e *Entity) {
		if !e.Alive {
			return
		}
		views = append(views, EntityView{
			Kind:        e.Kind,
			Pos:         e.Pos,
			Facing:      e.Facing,
			W:           e.W,
			H:           e.H,
			PlayerMode:  e.PlayerMode,
			Lives:       e.Lives,
			InvulnTicks: e.InvulnTicks,
			RobotMode:   e.RobotMode,
			RobotType:   e.RobotType,
			OrbMode:     e.OrbMode,
			Carrying:    g.arena.Alive(e.Carrying),
			FruitType:   e.FruitType,
			Points:      e.Points,
			PopStyle:    e.PopStyle,
		})
	})
	return views
}
