// Package sim is the deterministic simulation kernel: player and enemy state
// machines, the phase machine, scoring, and the canonical state hash. One
// Step call fully resolves one fixed 60 Hz tick; given the same World and the
// same input sequence it produces bit-identical state on every platform.
package sim

import "github.com/vovakirdan/tui-platformer/internal/units"

// Config holds every tunable constant. It is set once at construction and
// never mutated afterwards; all of it feeds the state hash.
type Config struct {
	// Geometry (units).
	TileSize     units.Units
	PlayerSize   units.Vec2
	EnemySize    units.Vec2
	MushroomSize units.Vec2

	// Movement (velocities are (px/tick)*PosScale).
	MoveSpeed units.Units
	MoveAccel units.Units
	MoveDecel units.Units

	Gravity          units.Units
	TerminalVelocity units.Units
	JumpSpeed        units.Units

	StompBounce units.Units
	EnemySpeed  units.Units

	HurtKnockbackX units.Units
	HurtKnockbackY units.Units

	// Timers (time units: 1 s == units.TimeScale).
	CoyoteTime     int32
	JumpBufferTime int32
	HurtInvulnTime int32
}

// DefaultConfig returns the canonical tuning. Velocity constants are written
// as px-per-second * 60, which equals (px/tick) * PosScale at 60 Hz.
func DefaultConfig() Config {
	return Config{
		TileSize:     32 * units.PosScale,
		PlayerSize:   units.Vec2{X: 22 * units.PosScale, Y: 28 * units.PosScale},
		EnemySize:    units.Vec2{X: 24 * units.PosScale, Y: 20 * units.PosScale},
		MushroomSize: units.Vec2{X: 24 * units.PosScale, Y: 22 * units.PosScale},

		MoveSpeed: 220 * 60,
		MoveAccel: 1600,
		MoveDecel: 2000,

		Gravity:          1200,
		TerminalVelocity: 780 * 60,
		JumpSpeed:        420 * 60,

		StompBounce: 320 * 60,
		EnemySpeed:  65 * 60,

		HurtKnockbackX: 200 * 60,
		HurtKnockbackY: 260 * 60,

		CoyoteTime:     60,  // 0.1 s
		JumpBufferTime: 72,  // 0.12 s
		HurtInvulnTime: 450, // 0.75 s
	}
}
