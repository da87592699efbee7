package cavern

import (
	"fmt"
	"strings"

	"github.com/cavern-arcade/cavern/internal/core"
)

// HUD occupies the top rows; the level is scaled into the rest.
const hudRows = 2

var levelColors = []core.Color{
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorGreen,
}

var fruitColors = []core.Color{
	core.ColorBrightGreen,
	core.ColorBrightRed,
	core.ColorBrightYellow,
}

// Render draws the game to the screen. Level pixel coordinates are scaled
// into the cell grid below the HUD, so any terminal size works.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	w, h := dst.Width(), dst.Height()-hudRows
	if w < NumColumns || h < NumRows {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	g.renderLevel(dst, w, h)
	g.renderEntities(dst, w, h)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hearts := strings.Repeat("♥", g.Lives())
	hud := fmt.Sprintf(" Cavern | Score: %d  Lives: %s  Level: %d", g.score, hearts, g.level+1)
	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// cell maps a level pixel position to a screen cell.
func cell(pos core.Vec2, w, h int) (int, int) {
	cx := int(pos.X / LevelWidth * float64(w))
	cy := hudRows + int(pos.Y/LevelHeight*float64(h))
	return cx, cy
}

// renderLevel draws the tile grid.
func (g *Game) renderLevel(dst *core.Screen, w, h int) {
	col := levelColors[g.levelColor%len(levelColors)]
	for ty, row := range g.grid.Rows() {
		for tx, ch := range row {
			if ch == ' ' {
				continue
			}
			px := float64(GridXOff + tx*TileSize)
			py := float64(ty * TileSize)
			x0, y0 := cell(core.Vec2{X: px, Y: py}, w, h)
			x1, _ := cell(core.Vec2{X: px + TileSize, Y: py}, w, h)
			for x := x0; x < x1 && x < dst.Width(); x++ {
				dst.SetColored(x, y0, '█', col)
			}
		}
	}
}

// renderEntities draws every live actor. Draw order matches update order so
// the player ends up on top; trapped robots render as part of their orb.
func (g *Game) renderEntities(dst *core.Screen, w, h int) {
	g.arena.ForEach(func(_ Handle, e *Entity) {
		if !e.Alive {
			return
		}
		x, y := cell(e.Pos, w, h)
		if x < 0 || x >= dst.Width() || y < hudRows || y >= dst.Height() {
			return
		}
		switch e.Kind {
		case KindFruit:
			dst.SetColored(x, y, '%', fruitColors[int(e.FruitType)%len(fruitColors)])
		case KindBolt:
			glyph := '»'
			if e.Facing == FacingLeft {
				glyph = '«'
			}
			dst.SetColored(x, y, glyph, core.ColorBrightRed)
		case KindRobot:
			if e.RobotMode == RobotTrapped {
				return
			}
			glyph, col := 'R', core.ColorRed
			if e.RobotType == RobotAggressive {
				glyph, col = 'A', core.ColorBrightMagenta
			}
			dst.SetColored(x, y, glyph, col)
		case KindPop:
			glyph := '*'
			if e.PopTicks >= popDuration/2 {
				glyph = '·'
			}
			dst.SetColored(x, y, glyph, core.ColorBrightWhite)
		case KindOrb:
			switch e.OrbMode {
			case OrbFlying:
				dst.SetColored(x, y, '∘', core.ColorCyan)
			case OrbCarrying:
				dst.SetColored(x, y, '◉', core.ColorBrightCyan)
			default:
				dst.SetColored(x, y, '○', core.ColorCyan)
			}
		case KindPlayer:
			// Flicker through the invulnerability window.
			if e.InvulnTicks > 0 && g.tick%2 == 0 {
				return
			}
			dst.SetColored(x, y-1, '@', core.ColorBrightYellow)
		}
	})
}
