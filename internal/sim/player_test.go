package sim

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/units"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

func testWorld(t *testing.T, contents string) *world.World {
	t.Helper()
	cfg := DefaultConfig()
	w, err := world.FromASCII(contents, cfg.TileSize, cfg.MushroomSize)
	if err != nil {
		t.Fatalf("FromASCII: %v", err)
	}
	return w
}

// flatWorld is a long floor with plenty of headroom.
const flatWorld = "" +
	"............\n" +
	"............\n" +
	"............\n" +
	"P..........G\n" +
	"############\n"

func settledPlayer(t *testing.T, w *world.World, cfg *Config) *Player {
	t.Helper()
	p := &Player{}
	p.Reset(w.PlayerSpawn, cfg)
	// Let the player land so OnGround is confirmed by the resolver.
	for i := 0; i < 10; i++ {
		p.Update(StepInput{}, w, cfg)
	}
	if !p.OnGround {
		t.Fatal("player should have settled on the ground")
	}
	return p
}

func TestPlayerJumpFromGround(t *testing.T) {
	cfg := DefaultConfig()
	w := testWorld(t, flatWorld)
	p := settledPlayer(t, w, &cfg)

	jumped := p.Update(StepInput{JumpPressed: true}, w, &cfg)
	if !jumped {
		t.Fatal("grounded jump press should jump")
	}
	if p.Vel.Y >= 0 {
		t.Errorf("vel.Y = %d, want negative after jump", p.Vel.Y)
	}
	if p.OnGround {
		t.Error("player should leave the ground on jump")
	}
}

func TestPlayerJumpConsumedOnce(t *testing.T) {
	cfg := DefaultConfig()
	w := testWorld(t, flatWorld)
	p := settledPlayer(t, w, &cfg)

	if !p.Update(StepInput{JumpPressed: true}, w, &cfg) {
		t.Fatal("first press should jump")
	}
	// Holding without a new press edge must not re-trigger.
	for i := 0; i < 5; i++ {
		if p.Update(StepInput{}, w, &cfg) {
			t.Fatal("jump should be consumed exactly once")
		}
	}
}

func TestPlayerCoyoteJump(t *testing.T) {
	cfg := DefaultConfig()
	// Floor ends at column 5; walking right runs off the ledge.
	w := testWorld(t, ""+
		"............\n"+
		"............\n"+
		"P..........G\n"+
		"######......\n")
	p := settledPlayer(t, w, &cfg)

	// Run right until airborne.
	steps := 0
	for p.OnGround && steps < 600 {
		p.Update(StepInput{Right: true}, w, &cfg)
		steps++
	}
	if p.OnGround {
		t.Fatal("player never left the ledge")
	}
	if p.CoyoteTimer <= 0 {
		t.Fatal("coyote window should be open just after leaving ground")
	}

	if !p.Update(StepInput{JumpPressed: true}, w, &cfg) {
		t.Error("jump within the coyote window should be honored")
	}
}

func TestPlayerCoyoteExpires(t *testing.T) {
	cfg := DefaultConfig()
	p := &Player{}
	w := testWorld(t, flatWorld)
	p.Reset(w.PlayerSpawn, &cfg)

	// Airborne at spawn: drain the (already zero) coyote window further.
	p.Pos.Y -= units.PxToUnits(200)
	for i := 0; i < int(cfg.CoyoteTime/units.DtTime)+2; i++ {
		p.Update(StepInput{}, w, &cfg)
	}
	if p.Update(StepInput{JumpPressed: true}, w, &cfg) {
		t.Error("jump must not trigger after the coyote window closed in midair")
	}
}

func TestPlayerJumpBufferOnLanding(t *testing.T) {
	cfg := DefaultConfig()
	w := testWorld(t, flatWorld)
	p := settledPlayer(t, w, &cfg)

	// Go airborne, then fall until one tick away from touchdown. Player is a
	// value type, so a copy probes the next tick without mutating p.
	p.Update(StepInput{JumpPressed: true}, w, &cfg)
	for i := 0; ; i++ {
		if i > 600 {
			t.Fatal("player never came back down")
		}
		probe := *p
		probe.Update(StepInput{}, w, &cfg)
		if probe.OnGround {
			break
		}
		p.Update(StepInput{}, w, &cfg)
	}

	// Press while still airborne: coyote is spent, so the first consumption
	// point cannot fire; only the post-resolution point can, once the resolver
	// confirms ground this same tick.
	if p.CoyoteTimer != 0 {
		t.Fatal("coyote window should be long spent while falling")
	}
	if !p.Update(StepInput{JumpPressed: true}, w, &cfg) {
		t.Error("buffered jump should fire the tick landing confirms ground")
	}
	if p.Vel.Y >= 0 {
		t.Error("player should be rising after the buffered jump")
	}
}

func TestPlayerShortHop(t *testing.T) {
	cfg := DefaultConfig()
	w := testWorld(t, flatWorld)
	p := settledPlayer(t, w, &cfg)

	p.Update(StepInput{JumpPressed: true}, w, &cfg)
	rising := p.Vel.Y

	p.Update(StepInput{JumpReleased: true}, w, &cfg)
	// Release halves upward velocity before gravity is applied that tick.
	if p.Vel.Y <= rising/2 {
		t.Errorf("vel.Y = %d, want cut roughly in half from %d", p.Vel.Y, rising)
	}
	if p.Vel.Y >= 0 {
		t.Error("player should still be rising after the cut")
	}
}

func TestPlayerHorizontalApproach(t *testing.T) {
	cfg := DefaultConfig()
	w := testWorld(t, flatWorld)
	p := settledPlayer(t, w, &cfg)

	// Accelerate right; speed must approach MoveSpeed without overshoot.
	prev := p.Vel.X
	for i := 0; i < 2000; i++ {
		p.Update(StepInput{Right: true}, w, &cfg)
		if p.Vel.X > cfg.MoveSpeed {
			t.Fatalf("vel.X = %d overshoots MoveSpeed %d", p.Vel.X, cfg.MoveSpeed)
		}
		if p.Vel.X == cfg.MoveSpeed {
			break
		}
		if p.Vel.X <= prev {
			t.Fatalf("vel.X stalled at %d before reaching MoveSpeed", p.Vel.X)
		}
		prev = p.Vel.X
	}
	if p.Vel.X != cfg.MoveSpeed {
		t.Fatalf("vel.X = %d never reached MoveSpeed %d", p.Vel.X, cfg.MoveSpeed)
	}
	if p.Facing != 1 {
		t.Errorf("facing = %d, want 1", p.Facing)
	}

	// Release input: decelerate to exactly zero.
	for i := 0; i < 2000 && p.Vel.X != 0; i++ {
		p.Update(StepInput{}, w, &cfg)
		if p.Vel.X < 0 {
			t.Fatalf("deceleration overshot zero: %d", p.Vel.X)
		}
	}
	if p.Vel.X != 0 {
		t.Error("player should decelerate to a stop")
	}
}

func TestPlayerInvulnTimerDecays(t *testing.T) {
	cfg := DefaultConfig()
	w := testWorld(t, flatWorld)
	p := settledPlayer(t, w, &cfg)

	p.InvulnTimer = cfg.HurtInvulnTime
	ticks := int(cfg.HurtInvulnTime / units.DtTime)
	for i := 0; i < ticks; i++ {
		if !p.IsInvulnerable() {
			t.Fatalf("invulnerability ended early at tick %d", i)
		}
		p.Update(StepInput{}, w, &cfg)
	}
	if p.IsInvulnerable() {
		t.Error("invulnerability should have expired")
	}
	if p.InvulnTimer != 0 {
		t.Errorf("timer = %d, want floored at 0", p.InvulnTimer)
	}
}
