// Package physics implements the axis-separated collision resolver shared by
// all actors. It contains no game rules and no state; every function is a
// pure function of its inputs, which is what keeps replays bit-exact.
package physics

import "github.com/vovakirdan/tui-platformer/internal/units"

// RectsIntersect reports whether two rectangles overlap.
// The test is open-interval: edges that merely touch do not count.
func RectsIntersect(a, b units.Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Approach moves value toward target by at most delta, clamping exactly at
// target. It never overshoots.
func Approach(value, target, delta units.Units) units.Units {
	if value < target {
		next := value + delta
		if next < target {
			return next
		}
		return target
	}
	next := value - delta
	if next > target {
		return next
	}
	return target
}

// MoveResult is the outcome of one collision-resolved move.
type MoveResult struct {
	Pos      units.Vec2
	Vel      units.Vec2
	OnGround bool
}

// MoveWithCollisions applies vel to pos one axis at a time, X before Y, and
// pushes the actor out of any solid it ends up overlapping. The axis order
// and the sequential solid-list resolution are load-bearing: changing either
// changes the state hash. Overlaps introduced by a correction are not
// re-checked against earlier solids.
//
// Downward motion that resolves against a solid sets OnGround; upward motion
// only zeroes the vertical velocity.
func MoveWithCollisions(pos, size, vel units.Vec2, solids []units.Rect) MoveResult {
	out := MoveResult{Pos: pos, Vel: vel}

	out.Pos.X += out.Vel.X
	rect := units.RectAt(out.Pos, size)
	for _, solid := range solids {
		if !RectsIntersect(rect, solid) {
			continue
		}
		if out.Vel.X > 0 {
			out.Pos.X = solid.X - size.X
		} else if out.Vel.X < 0 {
			out.Pos.X = solid.X + solid.W
		}
		out.Vel.X = 0
		rect.X = out.Pos.X
	}

	out.Pos.Y += out.Vel.Y
	rect.Y = out.Pos.Y
	for _, solid := range solids {
		if !RectsIntersect(rect, solid) {
			continue
		}
		if out.Vel.Y > 0 {
			out.Pos.Y = solid.Y - size.Y
			out.OnGround = true
		} else if out.Vel.Y < 0 {
			out.Pos.Y = solid.Y + solid.H
		}
		out.Vel.Y = 0
		rect.Y = out.Pos.Y
	}

	return out
}
