package physics

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/units"
)

func px(n int64) units.Units {
	return units.PxToUnits(n)
}

func TestRectsIntersect(t *testing.T) {
	base := units.Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other units.Rect
		want  bool
	}{
		{"full overlap", units.Rect{X: 2, Y: 2, W: 4, H: 4}, true},
		{"partial overlap", units.Rect{X: 8, Y: 8, W: 10, H: 10}, true},
		{"touching right edge", units.Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", units.Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"disjoint", units.Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectsIntersect(base, tt.other); got != tt.want {
				t.Errorf("RectsIntersect = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := RectsIntersect(tt.other, base); got != tt.want {
				t.Errorf("RectsIntersect (flipped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApproach(t *testing.T) {
	tests := []struct {
		value, target, delta, want units.Units
	}{
		{0, 100, 30, 30},
		{90, 100, 30, 100}, // clamps at target, never overshoots
		{100, 100, 30, 100},
		{0, -100, 30, -30},
		{-90, -100, 30, -100},
		{50, 0, 20, 30},
	}

	for _, tt := range tests {
		if got := Approach(tt.value, tt.target, tt.delta); got != tt.want {
			t.Errorf("Approach(%d, %d, %d) = %d, want %d", tt.value, tt.target, tt.delta, got, tt.want)
		}
	}
}

func TestMoveStopsAtWall(t *testing.T) {
	// Actor moving right into a solid should be pushed to its left edge.
	solids := []units.Rect{{X: px(10), Y: 0, W: px(4), H: px(4)}}
	size := units.Vec2{X: px(2), Y: px(2)}

	res := MoveWithCollisions(
		units.Vec2{X: px(7), Y: px(1)},
		size,
		units.Vec2{X: px(5), Y: 0},
		solids,
	)

	if res.Pos.X != px(10)-size.X {
		t.Errorf("pos.X = %d, want %d", res.Pos.X, px(10)-size.X)
	}
	if res.Vel.X != 0 {
		t.Errorf("vel.X = %d, want 0", res.Vel.X)
	}
	if res.OnGround {
		t.Error("horizontal resolution must not set OnGround")
	}
}

func TestMoveLandsOnFloor(t *testing.T) {
	solids := []units.Rect{{X: 0, Y: px(10), W: px(20), H: px(2)}}
	size := units.Vec2{X: px(2), Y: px(2)}

	// Bottom starts at 9 px; 4 px down ends inside the 10..12 px floor band.
	// 5 px would land exactly edge-adjacent, which the open-interval test
	// does not count as an overlap.
	res := MoveWithCollisions(
		units.Vec2{X: px(4), Y: px(7)},
		size,
		units.Vec2{X: 0, Y: px(4)},
		solids,
	)

	if res.Pos.Y != px(10)-size.Y {
		t.Errorf("pos.Y = %d, want %d", res.Pos.Y, px(10)-size.Y)
	}
	if res.Vel.Y != 0 {
		t.Errorf("vel.Y = %d, want 0", res.Vel.Y)
	}
	if !res.OnGround {
		t.Error("downward resolution should set OnGround")
	}
}

func TestMoveBumpsCeiling(t *testing.T) {
	solids := []units.Rect{{X: 0, Y: 0, W: px(20), H: px(2)}}
	size := units.Vec2{X: px(2), Y: px(2)}

	res := MoveWithCollisions(
		units.Vec2{X: px(4), Y: px(4)},
		size,
		units.Vec2{X: 0, Y: -px(5)},
		solids,
	)

	if res.Pos.Y != px(2) {
		t.Errorf("pos.Y = %d, want %d", res.Pos.Y, px(2))
	}
	if res.Vel.Y != 0 {
		t.Errorf("vel.Y = %d, want 0", res.Vel.Y)
	}
	if res.OnGround {
		t.Error("upward resolution must not set OnGround")
	}
}

func TestMoveNoTunneling(t *testing.T) {
	// After resolution the actor must not overlap any solid along the axis.
	solids := []units.Rect{
		{X: px(10), Y: 0, W: px(2), H: px(40)},
		{X: 0, Y: px(20), W: px(40), H: px(2)},
	}
	size := units.Vec2{X: px(2), Y: px(2)}

	pos := units.Vec2{X: px(2), Y: px(2)}
	vel := units.Vec2{X: px(3), Y: px(3)}
	for i := 0; i < 30; i++ {
		res := MoveWithCollisions(pos, size, vel, solids)
		rect := units.RectAt(res.Pos, size)
		for _, solid := range solids {
			if RectsIntersect(rect, solid) {
				t.Fatalf("tick %d: actor ends overlapping solid %+v at %+v", i, solid, res.Pos)
			}
		}
		pos = res.Pos
	}
}

func TestMovePure(t *testing.T) {
	solids := []units.Rect{{X: px(5), Y: 0, W: px(2), H: px(10)}}
	pos := units.Vec2{X: px(2), Y: px(2)}
	size := units.Vec2{X: px(2), Y: px(2)}
	vel := units.Vec2{X: px(4), Y: px(1)}

	a := MoveWithCollisions(pos, size, vel, solids)
	b := MoveWithCollisions(pos, size, vel, solids)

	if a != b {
		t.Errorf("resolver is not deterministic: %+v vs %+v", a, b)
	}
	if pos.X != px(2) || vel.X != px(4) {
		t.Error("resolver must not mutate its inputs")
	}
}
