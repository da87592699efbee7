// Package cavern implements the Cavern game: a single-screen platformer in
// which the player blows bubble projectiles (orbs) that trap patrolling
// robots, then pops the bubbles to convert the robots into fruit pickups.
//
// The package is a pure simulation: it consumes an edge-detected input
// snapshot once per tick, advances every entity, resolves interactions in a
// fixed order, and exposes the resulting entity list for rendering. It has no
// dependency on the terminal platform.
package cavern

import "math/rand"

// Level dimensions in pixels and tiles. The playfield is a fixed-size grid;
// the terminal renderer scales it to whatever screen is available.
const (
	LevelWidth  = 800.0
	LevelHeight = 480.0

	NumRows    = 18
	NumColumns = 28
	TileSize   = 25
	GridXOff   = 50 // Horizontal offset of the tile grid within the level

	// Walkable horizontal range. Actors never cross these, matching the
	// side walls of the playfield.
	MinX = 70.0
	MaxX = 730.0
)

// layouts holds the tile maps cycled through as the player clears levels.
// 'X' marks a solid tile, spaces and short rows are empty.
var layouts = [][]string{
	{
		"XXXXX     XXXXXXXX     XXXXX",
		"", "", "", "",
		"   XXXXXXX        XXXXXXX   ",
		"", "", "",
		"   XXXXXXXXXXXXXXXXXXXXXX   ",
		"", "", "",
		"XXXXXXXXX          XXXXXXXXX",
		"", "", "",
	},
	{
		"XXXX    XXXXXXXXXXXX    XXXX",
		"", "", "", "",
		"    XXXXXXXXXXXXXXXXXXXX    ",
		"", "", "",
		"XXXXXX                XXXXXX",
		"      X              X      ",
		"       X            X       ",
		"        X          X        ",
		"         X        X         ",
		"", "", "",
	},
	{
		"XXXX    XXXX    XXXX    XXXX",
		"", "", "", "",
		"  XXXXXXXX        XXXXXXXX  ",
		"", "", "",
		"XXXX      XXXXXXXX      XXXX",
		"", "", "",
		"    XXXXXX        XXXXXX    ",
		"", "", "",
	},
}

// Grid is the static level geometry consulted by movement and projectile
// logic. It answers tile-solidity queries; it never mutates during play.
type Grid struct {
	rows []string
}

// NewGrid builds the grid for the given level number, cycling through the
// available layouts. The first row is repeated at the bottom so the floor
// matches the ceiling.
func NewGrid(level int) Grid {
	base := layouts[level%len(layouts)]
	rows := make([]string, 0, len(base)+1)
	rows = append(rows, base...)
	rows = append(rows, base[0])
	return Grid{rows: rows}
}

// IsSolid reports whether the tile at the given tile coordinates blocks
// movement. Tiles in the top row and outside the grid are open, so entities
// can drop in from above and wrap at the bottom.
func (g Grid) IsSolid(tileX, tileY int) bool {
	if tileY <= 0 || tileY >= NumRows {
		return false
	}
	if tileX < 0 || tileX >= NumColumns {
		return false
	}
	row := g.rows[tileY]
	return tileX < len(row) && row[tileX] != ' '
}

// SolidAt reports whether the pixel position falls inside a solid tile.
func (g Grid) SolidAt(x, y float64) bool {
	tileX := (int(x) - GridXOff) / TileSize
	tileY := int(y) / TileSize
	if int(x) < GridXOff {
		tileX = -1
	}
	return g.IsSolid(tileX, tileY)
}

// SpawnX picks the pixel x of a clear top-row column for dropping in an
// enemy. Columns are probed starting from a random index so spawns spread
// across the level.
func (g Grid) SpawnX(rng *rand.Rand) float64 {
	top := g.rows[0]
	start := rng.Intn(NumColumns)
	for i := 0; i < NumColumns; i++ {
		col := (start + i) % NumColumns
		if col >= len(top) || top[col] == ' ' {
			x := float64(TileSize*col + GridXOff + TileSize/2)
			return clampSpawnX(x)
		}
	}
	return LevelWidth / 2
}

// clampSpawnX keeps edge-column spawns inside the walkable band.
func clampSpawnX(x float64) float64 {
	if x < MinX {
		return MinX
	}
	if x > MaxX {
		return MaxX
	}
	return x
}

// Rows returns the raw tile rows for rendering.
func (g Grid) Rows() []string {
	return g.rows
}
