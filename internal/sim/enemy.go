package sim

import (
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/units"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Enemy is a patrol actor. Dead enemies stay in the GameState slice with
// Alive=false so index-based identity (and anything a renderer keys by
// index) survives across ticks.
type Enemy struct {
	Pos      units.Vec2
	Vel      units.Vec2
	Size     units.Vec2
	Dir      int // patrol direction, -1 or 1
	Alive    bool
	OnGround bool
}

// Reset settles the enemy onto the ground below its spawn tile, patrolling
// left first.
func (e *Enemy) Reset(spawnTile units.Vec2, w *world.World, cfg *Config) {
	e.Size = cfg.EnemySize
	tile := cfg.TileSize

	sampleX := spawnTile.X + tile/2
	baseY, ok := w.GroundYForX(sampleX, spawnTile.Y)
	if !ok {
		baseY = spawnTile.Y + tile
	}

	e.Pos = units.Vec2{
		X: spawnTile.X + (tile-e.Size.X)/2,
		Y: baseY - e.Size.Y,
	}
	e.Vel = units.Vec2{}
	e.Dir = -1
	e.Alive = true
	e.OnGround = false
}

// Rect returns the enemy's bounding box.
func (e *Enemy) Rect() units.Rect {
	return units.RectAt(e.Pos, e.Size)
}

// Update advances one tick of patrol AI: gravity, walk, then turn around on
// walls (immediately, no idle frame) or on ledges (probe one pixel ahead of
// the leading edge at the foot line). The world's horizontal extent acts as
// a final clamp that also flips direction.
func (e *Enemy) Update(w *world.World, cfg *Config) {
	if !e.Alive {
		return
	}

	e.Vel.Y = minUnits(e.Vel.Y+cfg.Gravity, cfg.TerminalVelocity)
	e.Vel.X = units.Units(e.Dir) * cfg.EnemySpeed

	desiredX := e.Vel.X
	moved := physics.MoveWithCollisions(e.Pos, e.Size, e.Vel, w.Solids)
	hitWall := desiredX != 0 && moved.Vel.X == 0

	e.Pos = moved.Pos
	e.Vel = moved.Vel
	e.OnGround = moved.OnGround

	if hitWall {
		e.Dir *= -1
		e.Vel.X = units.Units(e.Dir) * cfg.EnemySpeed
	} else if e.OnGround {
		var footX units.Units
		if e.Dir >= 0 {
			footX = e.Pos.X + e.Size.X + units.PxToUnits(1)
		} else {
			footX = e.Pos.X - units.PxToUnits(1)
		}
		footY := e.Pos.Y + e.Size.Y + units.PxToUnits(1)

		hasGround := false
		if groundY, ok := w.GroundYForX(footX, footY); ok {
			hasGround = groundY <= footY
		}

		if !hasGround {
			e.Dir *= -1
			e.Vel.X = units.Units(e.Dir) * cfg.EnemySpeed
		}
	}

	worldW := units.Units(w.Width) * cfg.TileSize
	if e.Pos.X <= 0 {
		e.Pos.X = 0
		e.Dir = 1
	} else if e.Pos.X+e.Size.X >= worldW {
		e.Pos.X = worldW - e.Size.X
		if e.Pos.X < 0 {
			e.Pos.X = 0
		}
		e.Dir = -1
	}
}
