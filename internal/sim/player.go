package sim

import (
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/units"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Player is the player actor. Timers count down in time units (1 s == 600)
// and decay by units.DtTime every tick.
type Player struct {
	Pos      units.Vec2
	Vel      units.Vec2
	OnGround bool
	Size     units.Vec2

	Facing          int
	CoyoteTimer     int32
	JumpBufferTimer int32
	Powered         bool
	InvulnTimer     int32
}

// Reset places the player on the spawn tile: horizontally centered, feet on
// the tile's bottom edge.
func (p *Player) Reset(spawnTile units.Vec2, cfg *Config) {
	p.Size = cfg.PlayerSize
	p.Pos = units.Vec2{
		X: spawnTile.X + (cfg.TileSize-p.Size.X)/2,
		Y: spawnTile.Y + (cfg.TileSize - p.Size.Y),
	}

	p.Vel = units.Vec2{}
	p.OnGround = false
	p.Facing = 1
	p.CoyoteTimer = 0
	p.JumpBufferTimer = 0
	p.Powered = false
	p.InvulnTimer = 0
}

// Rect returns the player's bounding box.
func (p *Player) Rect() units.Rect {
	return units.RectAt(p.Pos, p.Size)
}

// Center returns the player's center point.
func (p *Player) Center() units.Vec2 {
	return p.Pos.Add(p.Size.Div(2))
}

// IsInvulnerable reports whether the hurt grace window is active.
func (p *Player) IsInvulnerable() bool {
	return p.InvulnTimer > 0
}

// Update advances the player one tick. The step order is fixed: timers,
// short-hop cut, coyote refresh, horizontal approach, buffered jump, gravity,
// collision, then a second buffered-jump check once the resolver has
// confirmed ground contact. Both jump-consumption points are required for
// correct jump-buffer feel; a press buffered just before landing only
// becomes consumable after the resolver reports OnGround.
//
// Returns whether a jump was consumed this tick.
func (p *Player) Update(in StepInput, w *world.World, cfg *Config) bool {
	p.InvulnTimer = max32(0, p.InvulnTimer-units.DtTime)

	jumped := false

	if in.JumpPressed {
		p.JumpBufferTimer = cfg.JumpBufferTime
	} else {
		p.JumpBufferTimer = max32(0, p.JumpBufferTimer-units.DtTime)
	}

	if in.JumpReleased && p.Vel.Y < 0 {
		p.Vel.Y /= 2 // short hop: cut the rising half of the jump
	}

	if p.OnGround {
		p.CoyoteTimer = cfg.CoyoteTime
	} else {
		p.CoyoteTimer = max32(0, p.CoyoteTimer-units.DtTime)
	}

	moveX := in.MoveX()
	if moveX != 0 {
		if moveX < 0 {
			p.Facing = -1
		} else {
			p.Facing = 1
		}
	}

	targetSpeed := units.Units(moveX) * cfg.MoveSpeed
	accel := cfg.MoveDecel
	if moveX != 0 {
		accel = cfg.MoveAccel
	}
	p.Vel.X = physics.Approach(p.Vel.X, targetSpeed, accel)

	if p.JumpBufferTimer > 0 && p.CoyoteTimer > 0 {
		p.Vel.Y = -cfg.JumpSpeed
		p.OnGround = false
		p.CoyoteTimer = 0
		p.JumpBufferTimer = 0
		jumped = true
	}

	p.Vel.Y = minUnits(p.Vel.Y+cfg.Gravity, cfg.TerminalVelocity)

	moved := physics.MoveWithCollisions(p.Pos, p.Size, p.Vel, w.Solids)
	p.Pos = moved.Pos
	p.Vel = moved.Vel
	p.OnGround = moved.OnGround

	if p.JumpBufferTimer > 0 && p.OnGround {
		p.Vel.Y = -cfg.JumpSpeed
		p.OnGround = false
		p.CoyoteTimer = 0
		p.JumpBufferTimer = 0
		jumped = true
	}

	return jumped
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minUnits(a, b units.Units) units.Units {
	if a < b {
		return a
	}
	return b
}
