// Package config provides YAML-based tuning configuration for the
// platformer. Files are written in human units (pixels, seconds); ToSim
// converts them into the fixed-point units the simulation runs on.
package config

import (
	"github.com/vovakirdan/tui-platformer/internal/sim"
	"github.com/vovakirdan/tui-platformer/internal/units"
)

// Tuning contains every gameplay constant exposed to level designers.
type Tuning struct {
	Geometry TuningGeometry `yaml:"geometry"`
	Movement TuningMovement `yaml:"movement"`
	Combat   TuningCombat   `yaml:"combat"`
	Timers   TuningTimers   `yaml:"timers"`
}

// TuningGeometry defines tile and actor sizes in pixels.
type TuningGeometry struct {
	TileSize       int `yaml:"tile_size"`
	PlayerWidth    int `yaml:"player_width"`
	PlayerHeight   int `yaml:"player_height"`
	EnemyWidth     int `yaml:"enemy_width"`
	EnemyHeight    int `yaml:"enemy_height"`
	MushroomWidth  int `yaml:"mushroom_width"`
	MushroomHeight int `yaml:"mushroom_height"`
}

// TuningMovement defines speeds (px/s) and accelerations (px/s^2).
type TuningMovement struct {
	MoveSpeed        int `yaml:"move_speed"`
	MoveAccel        int `yaml:"move_accel"`
	MoveDecel        int `yaml:"move_decel"`
	Gravity          int `yaml:"gravity"`
	TerminalVelocity int `yaml:"terminal_velocity"`
	JumpSpeed        int `yaml:"jump_speed"`
	EnemySpeed       int `yaml:"enemy_speed"`
}

// TuningCombat defines contact-resolution speeds in px/s.
type TuningCombat struct {
	StompBounce    int `yaml:"stomp_bounce"`
	HurtKnockbackX int `yaml:"hurt_knockback_x"`
	HurtKnockbackY int `yaml:"hurt_knockback_y"`
}

// TuningTimers defines input-feel windows in seconds.
type TuningTimers struct {
	CoyoteTime     float64 `yaml:"coyote_time"`
	JumpBufferTime float64 `yaml:"jump_buffer_time"`
	HurtInvulnTime float64 `yaml:"hurt_invuln_time"`
}

// ToSim converts the tuning into simulation units. Speeds in px/s become
// per-tick fixed-point velocities ((px/tick) * PosScale, which at 60 Hz is
// px/s * 60); px/s^2 accelerations map one-to-one onto per-tick velocity
// deltas in those units; seconds become time units.
func (t Tuning) ToSim() sim.Config {
	pxPerSec := func(v int) units.Units {
		return units.Units(v) * units.Units(units.PosScale/units.TickHz)
	}
	seconds := func(s float64) int32 {
		return int32(s*float64(units.TimeScale) + 0.5)
	}

	return sim.Config{
		TileSize: units.PxToUnits(units.Units(t.Geometry.TileSize)),
		PlayerSize: units.Vec2{
			X: units.PxToUnits(units.Units(t.Geometry.PlayerWidth)),
			Y: units.PxToUnits(units.Units(t.Geometry.PlayerHeight)),
		},
		EnemySize: units.Vec2{
			X: units.PxToUnits(units.Units(t.Geometry.EnemyWidth)),
			Y: units.PxToUnits(units.Units(t.Geometry.EnemyHeight)),
		},
		MushroomSize: units.Vec2{
			X: units.PxToUnits(units.Units(t.Geometry.MushroomWidth)),
			Y: units.PxToUnits(units.Units(t.Geometry.MushroomHeight)),
		},

		MoveSpeed: pxPerSec(t.Movement.MoveSpeed),
		MoveAccel: units.Units(t.Movement.MoveAccel),
		MoveDecel: units.Units(t.Movement.MoveDecel),

		Gravity:          units.Units(t.Movement.Gravity),
		TerminalVelocity: pxPerSec(t.Movement.TerminalVelocity),
		JumpSpeed:        pxPerSec(t.Movement.JumpSpeed),

		StompBounce: pxPerSec(t.Combat.StompBounce),
		EnemySpeed:  pxPerSec(t.Movement.EnemySpeed),

		HurtKnockbackX: pxPerSec(t.Combat.HurtKnockbackX),
		HurtKnockbackY: pxPerSec(t.Combat.HurtKnockbackY),

		CoyoteTime:     seconds(t.Timers.CoyoteTime),
		JumpBufferTime: seconds(t.Timers.JumpBufferTime),
		HurtInvulnTime: seconds(t.Timers.HurtInvulnTime),
	}
}
