// Package units provides the fixed-point coordinate and time systems used by
// the simulation. All positional math is integer-only so that results are
// bit-identical across platforms and builds; no float ever touches game state.
package units

// Units is the fixed-point scalar for positions and velocities.
// Positions are stored in units where 1 px == PosScale units.
// Velocities are stored as (px / tick) * PosScale.
type Units = int64

const (
	// TickHz is the fixed simulation rate.
	TickHz = 60

	// PosScale is the position scale: 1 px == PosScale units.
	PosScale Units = 3600

	// TimeScale is the timer scale: 1 s == TimeScale time units.
	// It is divisible by TickHz so that per-tick decrements stay integral.
	TimeScale int32 = 600

	// DtTime is the time-unit advance per tick (TimeScale / TickHz).
	DtTime int32 = TimeScale / TickHz
)

// Vec2 is a pair of fixed-point scalars.
type Vec2 struct {
	X, Y Units
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Div returns the vector scaled down by s.
func (v Vec2) Div(s Units) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// Rect is an axis-aligned rectangle defined by top-left corner plus size.
type Rect struct {
	X, Y, W, H Units
}

// RectAt builds a rectangle from a position and a size vector.
func RectAt(pos, size Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// PxToUnits converts a pixel count to position units.
func PxToUnits(px Units) Units {
	return px * PosScale
}

// FloorDiv divides a by b rounding toward negative infinity.
// Tile indices are derived from world coordinates with this, not with Go's
// truncating division, so negative coordinates land in the correct tile.
// b must be positive.
func FloorDiv(a, b Units) Units {
	if a >= 0 {
		return a / b
	}
	return -(((-a) + (b - 1)) / b)
}

// Signum returns -1, 0, or 1 for v.
func Signum(v Units) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
