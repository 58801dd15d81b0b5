package sim

import "github.com/vovakirdan/tui-platformer/internal/units"

// Snapshot is a read-only view of one tick's state for downstream consumers
// (renderer, HUD). Coordinates are whole pixels; the snapshot carries no
// references back into the live state, so consumers can never mutate the
// simulation through it.
type Snapshot struct {
	Phase     Phase
	Tick      uint64
	Score     uint32
	HighScore uint32

	TilePx      int
	WorldWidth  int // tiles
	WorldHeight int // tiles

	Player  ActorView
	Powered bool
	Invuln  bool
	Facing  int

	Enemies   []ActorView
	Coins     []PointView
	Mushrooms []PointView
	GoalPole  RectView
}

// ActorView is an actor's pixel-space bounding box plus liveness.
type ActorView struct {
	X, Y, W, H int
	Alive      bool
}

// PointView is a pickup position in pixels.
type PointView struct {
	X, Y int
}

// RectView is a pixel-space rectangle.
type RectView struct {
	X, Y, W, H int
}

func toPx(u units.Units) int {
	return int(u / units.PosScale)
}

// Snapshot captures the current state for rendering.
func (s *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:       s.Phase,
		Tick:        s.Tick,
		Score:       s.Score,
		HighScore:   s.HighScore,
		TilePx:      toPx(s.Config.TileSize),
		WorldWidth:  s.World.Width,
		WorldHeight: s.World.Height,
		Powered:     s.Player.Powered,
		Invuln:      s.Player.IsInvulnerable(),
		Facing:      s.Player.Facing,
	}

	snap.Player = ActorView{
		X: toPx(s.Player.Pos.X), Y: toPx(s.Player.Pos.Y),
		W: toPx(s.Player.Size.X), H: toPx(s.Player.Size.Y),
		Alive: true,
	}

	snap.Enemies = make([]ActorView, len(s.Enemies))
	for i := range s.Enemies {
		e := &s.Enemies[i]
		snap.Enemies[i] = ActorView{
			X: toPx(e.Pos.X), Y: toPx(e.Pos.Y),
			W: toPx(e.Size.X), H: toPx(e.Size.Y),
			Alive: e.Alive,
		}
	}

	snap.Coins = make([]PointView, len(s.World.Coins))
	for i, c := range s.World.Coins {
		snap.Coins[i] = PointView{X: toPx(c.X), Y: toPx(c.Y)}
	}

	snap.Mushrooms = make([]PointView, len(s.World.Mushrooms))
	for i, m := range s.World.Mushrooms {
		snap.Mushrooms[i] = PointView{X: toPx(m.X), Y: toPx(m.Y)}
	}

	pole := s.World.GoalTriggerRect()
	snap.GoalPole = RectView{X: toPx(pole.X), Y: toPx(pole.Y), W: toPx(pole.W), H: toPx(pole.H)}

	return snap
}

// SolidAt reports whether the world tile at (col, row) is solid; render
// helper so consumers don't need the World itself.
func (s *GameState) SolidAt(col, row int) bool {
	return s.World.IsSolidTile(col, row)
}
