package rooms

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"

	"github.com/mirrorhall/mirrorhall/common"
)

// Level is a room's walkable layout: a rectangular tile grid where '#' is a
// solid wall and everything else is floor. Purely geometric; rendering and
// movement live with their systems.
type Level struct {
	Width  int
	Height int
	solid  [][]bool
}

// ParseLevel reads an ASCII layout. Blank leading/trailing lines are
// dropped; all remaining rows must be the same width.
func ParseLevel(data []byte) (*Level, error) {
	raw := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(strings.Trim(raw, "\n"), "\n")
	if len(lines) == 0 || (len(lines) == 1 && strings.TrimSpace(lines[0]) == "") {
		return nil, fmt.Errorf("rooms: empty layout")
	}

	width := len(lines[0])
	solid := make([][]bool, len(lines))
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("rooms: layout row %d is %d wide, want %d", y, len(line), width)
		}
		solid[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			solid[y][x] = line[x] == '#'
		}
	}

	return &Level{Width: width, Height: len(lines), solid: solid}, nil
}

// Solid reports whether the tile at tx,ty is a wall. Out of bounds counts
// as solid so movement can never leave the grid.
func (l *Level) Solid(tx, ty int) bool {
	if l == nil || tx < 0 || ty < 0 || tx >= l.Width || ty >= l.Height {
		return true
	}
	return l.solid[ty][tx]
}

// SolidAtWorld reports whether a world position falls inside a wall tile.
func (l *Level) SolidAtWorld(pos cp.Vector) bool {
	tx := int(pos.X / common.TileSize)
	ty := int(pos.Y / common.TileSize)
	if pos.X < 0 || pos.Y < 0 {
		return true
	}
	return l.Solid(tx, ty)
}

// WorldSize returns the layout's extent in world units.
func (l *Level) WorldSize() (float64, float64) {
	if l == nil {
		return 0, 0
	}
	return float64(l.Width) * common.TileSize, float64(l.Height) * common.TileSize
}

// TileToWorld converts fractional tile coordinates to world units, so 2.5
// is the center of tile column 2.
func TileToWorld(tx, ty float64) cp.Vector {
	return cp.Vector{X: tx * common.TileSize, Y: ty * common.TileSize}
}
