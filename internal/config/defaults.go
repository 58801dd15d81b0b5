package config

import (
	_ "embed"
)

//go:embed defaults/tuning.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the built-in tuning, matching defaults/tuning.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		Geometry: TuningGeometry{
			TileSize:       32,
			PlayerWidth:    22,
			PlayerHeight:   28,
			EnemyWidth:     24,
			EnemyHeight:    20,
			MushroomWidth:  24,
			MushroomHeight: 22,
		},
		Movement: TuningMovement{
			MoveSpeed:        220,
			MoveAccel:        1600,
			MoveDecel:        2000,
			Gravity:          1200,
			TerminalVelocity: 780,
			JumpSpeed:        420,
			EnemySpeed:       65,
		},
		Combat: TuningCombat{
			StompBounce:    320,
			HurtKnockbackX: 200,
			HurtKnockbackY: 260,
		},
		Timers: TuningTimers{
			CoyoteTime:     0.1,
			JumpBufferTime: 0.12,
			HurtInvulnTime: 0.75,
		},
	}
}

// GetDefaultYAML returns the embedded default tuning YAML, for writing out
// a starter config file.
func GetDefaultYAML() []byte {
	return defaultTuningYAML
}
