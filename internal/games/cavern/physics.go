package cavern

import "github.com/cavern-arcade/cavern/internal/core"

// moveActor moves an actor by whole pixels with tile collision, one pixel at
// a time so fast movement cannot tunnel through walls. dx and dy are
// directions (-1, 0 or 1) and speed is the pixel count. Reports whether a
// wall or the level boundary stopped the move.
//
// Collision is tested at the anchor point and only when it crosses a tile
// boundary: falling stops the pixel before the foot would enter a solid
// tile, so a grounded actor rests at y%TileSize == TileSize-1 and horizontal
// checks at foot height probe the open row above the platform. Moving up is
// never blocked, which is what makes platforms jump-through from below.
// Each accepted pixel is committed, so a blocked move keeps the progress
// made up to the blocking pixel and a fast fall still lands flush.
func (g *Game) moveActor(e *Entity, dx, dy int, speed int) bool {
	x, y := int(e.Pos.X), int(e.Pos.Y)
	blocked := false
	for i := 0; i < speed; i++ {
		nx, ny := x+dx, y+dy
		if nx < int(MinX) || nx > int(MaxX) {
			blocked = true
			break
		}
		boundary := (dy > 0 && ny%TileSize == 0) ||
			(dx > 0 && nx%TileSize == 0) ||
			(dx < 0 && nx%TileSize == TileSize-1)
		if boundary && g.grid.SolidAt(float64(nx), float64(ny)) {
			blocked = true
			break
		}
		x, y = nx, ny
	}
	e.Pos.X, e.Pos.Y = float64(x), float64(y)
	return blocked
}

// applyGravity accelerates a falling actor and resolves the vertical move.
// Landing zeroes the velocity and sets OnGround; dropping past the bottom of
// the level wraps the actor back to the top.
func (g *Game) applyGravity(e *Entity) {
	e.Vel.Y += g.cfg.Physics.Gravity
	if e.Vel.Y > g.cfg.Physics.MaxFallSpeed {
		e.Vel.Y = g.cfg.Physics.MaxFallSpeed
	}
	vy := int(e.Vel.Y)
	if g.moveActor(e, 0, sign(vy), core.Abs(vy)) {
		e.Vel.Y = 0
		e.OnGround = true
	} else if vy > 0 {
		e.OnGround = false
	}
	if e.Pos.Y-e.H >= LevelHeight {
		e.Pos.Y = 1
		e.OnGround = false
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
