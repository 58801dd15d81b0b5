package sim

// Canonical state hash: FNV-1a over the entire GameState, one 64-bit
// little-endian chunk per field, in a fixed order. This is the determinism
// oracle used by golden replays, so the field order, the 0/1 boolean
// encoding, and the bit-pattern encoding of signed integers are all part of
// the contract. Do not reorder fields.

const (
	fnvOffsetBasis uint64 = 14695981039346656037
	fnvPrime       uint64 = 1099511628211
)

type stateHasher struct {
	h uint64
}

func newStateHasher() *stateHasher {
	return &stateHasher{h: fnvOffsetBasis}
}

func (sh *stateHasher) u64(v uint64) {
	for i := 0; i < 8; i++ {
		sh.h ^= uint64(byte(v >> (i * 8)))
		sh.h *= fnvPrime
	}
}

func (sh *stateHasher) i64(v int64) { sh.u64(uint64(v)) }

func (sh *stateHasher) b(v bool) {
	if v {
		sh.u64(1)
	} else {
		sh.u64(0)
	}
}

// HashState digests the full state. Two states with equal hashes at every
// tick of a run are, for replay purposes, the same run.
func HashState(s *GameState) uint64 {
	sh := newStateHasher()
	cfg := &s.Config

	sh.i64(cfg.TileSize)
	sh.i64(cfg.PlayerSize.X)
	sh.i64(cfg.PlayerSize.Y)
	sh.i64(cfg.EnemySize.X)
	sh.i64(cfg.EnemySize.Y)
	sh.i64(cfg.MushroomSize.X)
	sh.i64(cfg.MushroomSize.Y)

	sh.i64(cfg.MoveSpeed)
	sh.i64(cfg.MoveAccel)
	sh.i64(cfg.MoveDecel)
	sh.i64(cfg.Gravity)
	sh.i64(cfg.TerminalVelocity)
	sh.i64(cfg.JumpSpeed)
	sh.i64(cfg.StompBounce)
	sh.i64(cfg.EnemySpeed)
	sh.i64(cfg.HurtKnockbackX)
	sh.i64(cfg.HurtKnockbackY)
	sh.u64(uint64(cfg.CoyoteTime))
	sh.u64(uint64(cfg.JumpBufferTime))
	sh.u64(uint64(cfg.HurtInvulnTime))

	sh.u64(uint64(s.Phase))
	sh.u64(s.Tick)

	sh.u64(uint64(s.Score))
	sh.u64(uint64(s.HighScore))

	sh.i64(s.Player.Pos.X)
	sh.i64(s.Player.Pos.Y)
	sh.i64(s.Player.Vel.X)
	sh.i64(s.Player.Vel.Y)
	sh.b(s.Player.OnGround)
	sh.u64(uint64(int64(s.Player.Facing)))
	sh.u64(uint64(s.Player.CoyoteTimer))
	sh.u64(uint64(s.Player.JumpBufferTimer))
	sh.b(s.Player.Powered)
	sh.u64(uint64(s.Player.InvulnTimer))

	sh.u64(uint64(s.World.Width))
	sh.u64(uint64(s.World.Height))
	sh.i64(s.World.PlayerSpawn.X)
	sh.i64(s.World.PlayerSpawn.Y)
	sh.i64(s.World.GoalTile.X)
	sh.i64(s.World.GoalTile.Y)

	sh.u64(uint64(len(s.World.Coins)))
	for _, c := range s.World.Coins {
		sh.i64(c.X)
		sh.i64(c.Y)
	}

	sh.u64(uint64(len(s.World.Mushrooms)))
	for _, m := range s.World.Mushrooms {
		sh.i64(m.X)
		sh.i64(m.Y)
	}

	sh.u64(uint64(len(s.World.EnemySpawns)))
	for _, spawn := range s.World.EnemySpawns {
		sh.i64(spawn.X)
		sh.i64(spawn.Y)
	}

	sh.u64(uint64(len(s.World.SolidTiles)))
	for _, t := range s.World.SolidTiles {
		sh.u64(uint64(t))
	}

	sh.u64(uint64(len(s.CoinSpawns)))
	for _, c := range s.CoinSpawns {
		sh.i64(c.X)
		sh.i64(c.Y)
	}

	sh.u64(uint64(len(s.MushroomSpawns)))
	for _, m := range s.MushroomSpawns {
		sh.i64(m.X)
		sh.i64(m.Y)
	}

	sh.u64(uint64(len(s.Enemies)))
	for i := range s.Enemies {
		e := &s.Enemies[i]
		sh.i64(e.Pos.X)
		sh.i64(e.Pos.Y)
		sh.i64(e.Vel.X)
		sh.i64(e.Vel.Y)
		sh.u64(uint64(int64(e.Dir)))
		sh.b(e.Alive)
		sh.b(e.OnGround)
	}

	return sh.h
}
