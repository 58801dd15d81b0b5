// Package world holds the static spatial model: the tile grid, solids,
// pickups, and spawn points parsed from level text. A World is immutable
// after load except for the pickup collections, which the simulation consumes
// during play and restores from spawn snapshots on reset.
package world

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/units"
)

// FallbackLevel is the built-in level used when a level file is missing or
// malformed. The substitution decision belongs to the caller, not this
// package; parsing FallbackLevel is still an ordinary FromASCII call.
const FallbackLevel = "" +
	"................................\n" +
	"................................\n" +
	"................................\n" +
	"................................\n" +
	".......C.........C.......C......\n" +
	"......#####.....#####...#####...\n" +
	"..P....M....E................G..\n" +
	"#######...########..######...###\n"

// World is the spatial model for one level.
type World struct {
	Solids      []units.Rect // one rect per solid tile, in scan order
	SolidTiles  []uint8      // row-major width*height grid for O(1) lookups
	Coins       []units.Vec2 // centers; consumed during play
	Mushrooms   []units.Vec2 // top-left positions; consumed during play
	EnemySpawns []units.Vec2 // tile top-left positions
	PlayerSpawn units.Vec2   // tile top-left
	GoalTile    units.Vec2   // tile top-left
	Width       int
	Height      int

	TileSize units.Units
}

// FromASCII parses a level grid. Trailing whitespace is trimmed per line and
// blank lines are dropped. Recognized tiles: '#' solid, 'C' coin, 'M'
// mushroom, 'E' enemy spawn, 'P' player spawn (exactly one), 'G' goal tile
// (exactly one), '.' empty. Anything else fails the load; a failed load
// returns no usable World.
//
// Mushrooms are settled onto the ground below their tile at load time, so
// the mushroomSize geometry is part of the level contract.
func FromASCII(contents string, tile units.Units, mushroomSize units.Vec2) (*World, error) {
	var lines []string
	for _, raw := range strings.Split(contents, "\n") {
		line := strings.TrimRight(raw, "\r \t\v\f")
		if line != "" {
			lines = append(lines, line)
		}
	}

	height := len(lines)
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("world: level has no tiles")
	}

	w := &World{
		Width:      width,
		Height:     height,
		TileSize:   tile,
		SolidTiles: make([]uint8, width*height),
	}

	var mushroomTiles []units.Vec2
	var playerSpawn, goalTile *units.Vec2

	for row := 0; row < height; row++ {
		line := lines[row]
		for col := 0; col < len(line); col++ {
			ch := line[col]
			tilePos := units.Vec2{X: units.Units(col) * tile, Y: units.Units(row) * tile}

			switch ch {
			case '#':
				w.SolidTiles[row*width+col] = 1
				w.Solids = append(w.Solids, units.Rect{X: tilePos.X, Y: tilePos.Y, W: tile, H: tile})
			case 'C':
				w.Coins = append(w.Coins, units.Vec2{X: tilePos.X + tile/2, Y: tilePos.Y + tile/2})
			case 'M':
				mushroomTiles = append(mushroomTiles, tilePos)
			case 'E':
				w.EnemySpawns = append(w.EnemySpawns, tilePos)
			case 'P':
				if playerSpawn != nil {
					return nil, fmt.Errorf("world: multiple player spawns found")
				}
				p := tilePos
				playerSpawn = &p
			case 'G':
				if goalTile != nil {
					return nil, fmt.Errorf("world: multiple goal tiles found")
				}
				g := tilePos
				goalTile = &g
			case '.':
			default:
				return nil, fmt.Errorf("world: unexpected tile %q", string(ch))
			}
		}
	}

	if playerSpawn == nil {
		return nil, fmt.Errorf("world: missing player spawn")
	}
	if goalTile == nil {
		return nil, fmt.Errorf("world: missing goal tile")
	}
	w.PlayerSpawn = *playerSpawn
	w.GoalTile = *goalTile

	for _, tilePos := range mushroomTiles {
		x := tilePos.X + (tile-mushroomSize.X)/2
		sampleX := tilePos.X + tile/2
		baseY, ok := w.GroundYForX(sampleX, tilePos.Y)
		if !ok {
			baseY = tilePos.Y + tile
		}
		w.Mushrooms = append(w.Mushrooms, units.Vec2{X: x, Y: baseY - mushroomSize.Y})
	}

	return w, nil
}

// IsSolidTile reports whether the tile at (col, row) is solid.
// Coordinates outside the grid are not solid.
func (w *World) IsSolidTile(col, row int) bool {
	if col < 0 || row < 0 || col >= w.Width || row >= w.Height {
		return false
	}
	return w.SolidTiles[row*w.Width+col] != 0
}

// GroundYForX scans downward from startY for the first solid tile in the
// column containing worldX and returns its top edge. ok is false when the
// column has no solid below startY.
func (w *World) GroundYForX(worldX, startY units.Units) (y units.Units, ok bool) {
	col := int(units.FloorDiv(worldX, w.TileSize))
	startRow := int(units.FloorDiv(startY, w.TileSize))
	if startRow < 0 {
		startRow = 0
	}

	for row := startRow; row < w.Height; row++ {
		if w.IsSolidTile(col, row) {
			return units.Units(row) * w.TileSize, true
		}
	}
	return 0, false
}

// GoalTriggerRect derives the flagpole rectangle that actually triggers a
// win: three tiles tall, 0.18 tiles wide, horizontally centered on the goal
// tile and anchored at the ground below it.
func (w *World) GoalTriggerRect() units.Rect {
	tile := w.TileSize
	goalCenterX := w.GoalTile.X + tile/2
	baseY, ok := w.GroundYForX(goalCenterX, w.GoalTile.Y)
	if !ok {
		baseY = w.GoalTile.Y + tile
	}

	poleHeight := tile * 3
	poleW := (tile * 9) / 50
	return units.Rect{
		X: goalCenterX - poleW/2,
		Y: baseY - poleHeight,
		W: poleW,
		H: poleHeight,
	}
}
