package sim

import (
	"encoding/binary"
	"hash/fnv"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/world"
)

// The chunked hasher must agree with the stdlib FNV-1a 64 over the same byte
// stream: each value is one little-endian 64-bit chunk.
func TestHasherMatchesFNV64a(t *testing.T) {
	sh := newStateHasher()
	sh.u64(0x0123456789abcdef)
	sh.i64(-42)
	sh.b(true)
	sh.b(false)

	neg := int64(-42)
	ref := fnv.New64a()
	var buf [8]byte
	for _, v := range []uint64{0x0123456789abcdef, uint64(neg), 1, 0} {
		binary.LittleEndian.PutUint64(buf[:], v)
		ref.Write(buf[:])
	}

	if sh.h != ref.Sum64() {
		t.Errorf("hash = %#x, want %#x", sh.h, ref.Sum64())
	}
}

func TestHasherOrderSensitive(t *testing.T) {
	a := newStateHasher()
	a.u64(1)
	a.u64(2)

	b := newStateHasher()
	b.u64(2)
	b.u64(1)

	if a.h == b.h {
		t.Error("swapping value order must change the hash")
	}
}

func hashTestGame(t *testing.T) *GameState {
	t.Helper()
	cfg := DefaultConfig()
	w, err := world.FromASCII(world.FallbackLevel, cfg.TileSize, cfg.MushroomSize)
	if err != nil {
		t.Fatalf("FromASCII: %v", err)
	}
	return NewGame(w, cfg)
}

func TestHashStateRepeatable(t *testing.T) {
	s := hashTestGame(t)
	if HashState(s) != HashState(s) {
		t.Error("hashing must not mutate state")
	}
}

func TestHashStateCoversFields(t *testing.T) {
	s := hashTestGame(t)
	base := HashState(s)

	mutations := []struct {
		name   string
		mutate func()
		revert func()
	}{
		{"tick", func() { s.Tick++ }, func() { s.Tick-- }},
		{"phase", func() { s.Phase = PhasePlaying }, func() { s.Phase = PhaseTitle }},
		{"score", func() { s.Score = 100 }, func() { s.Score = 0 }},
		{"high score", func() { s.HighScore = 100 }, func() { s.HighScore = 0 }},
		{"player pos", func() { s.Player.Pos.X++ }, func() { s.Player.Pos.X-- }},
		{"player facing", func() { s.Player.Facing = -1 }, func() { s.Player.Facing = 1 }},
		{"powered", func() { s.Player.Powered = true }, func() { s.Player.Powered = false }},
		{"enemy alive", func() { s.Enemies[0].Alive = false }, func() { s.Enemies[0].Alive = true }},
		{"enemy dir", func() { s.Enemies[0].Dir = 1 }, func() { s.Enemies[0].Dir = -1 }},
		{"coin list", func() { s.World.Coins = s.World.Coins[:len(s.World.Coins)-1] },
			func() { s.World.Coins = s.World.Coins[:len(s.World.Coins)+1] }},
	}

	for _, m := range mutations {
		m.mutate()
		if HashState(s) == base {
			t.Errorf("%s: mutation did not change the hash", m.name)
		}
		m.revert()
		if HashState(s) != base {
			t.Fatalf("%s: revert did not restore the hash", m.name)
		}
	}
}
