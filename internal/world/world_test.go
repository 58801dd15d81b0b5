package world

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/units"
)

var (
	testTile         = units.PxToUnits(32)
	testMushroomSize = units.Vec2{X: units.PxToUnits(24), Y: units.PxToUnits(22)}
)

func mustParse(t *testing.T, contents string) *World {
	t.Helper()
	w, err := FromASCII(contents, testTile, testMushroomSize)
	if err != nil {
		t.Fatalf("FromASCII: %v", err)
	}
	return w
}

func TestParseFallbackLevel(t *testing.T) {
	w := mustParse(t, FallbackLevel)

	if w.Width <= 0 || w.Height <= 0 {
		t.Fatalf("dimensions %dx%d should be positive", w.Width, w.Height)
	}
	if len(w.Solids) == 0 {
		t.Error("fallback level should have solids")
	}
	if len(w.Coins) != 3 {
		t.Errorf("coins = %d, want 3", len(w.Coins))
	}
	if len(w.Mushrooms) != 1 {
		t.Errorf("mushrooms = %d, want 1", len(w.Mushrooms))
	}
	if len(w.EnemySpawns) != 1 {
		t.Errorf("enemy spawns = %d, want 1", len(w.EnemySpawns))
	}
	if len(w.SolidTiles) != w.Width*w.Height {
		t.Errorf("solid grid size = %d, want %d", len(w.SolidTiles), w.Width*w.Height)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"empty", ""},
		{"blank lines only", "\n\n  \n"},
		{"missing player spawn", "..G\n###\n"},
		{"missing goal", "..P\n###\n"},
		{"duplicate player spawn", "P.P.G\n#####\n"},
		{"duplicate goal", "P.G.G\n#####\n"},
		{"unknown tile", "P.X.G\n#####\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := FromASCII(tt.contents, testTile, testMushroomSize)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Error() == "" {
				t.Error("error message should not be empty")
			}
			if w != nil {
				t.Error("failed parse must not return a usable world")
			}
		})
	}
}

func TestTrailingWhitespaceTrimmed(t *testing.T) {
	w := mustParse(t, "P..G   \n####\t\n")
	if w.Width != 4 {
		t.Errorf("width = %d, want 4 (trailing whitespace trimmed)", w.Width)
	}
	if w.Height != 2 {
		t.Errorf("height = %d, want 2", w.Height)
	}
}

func TestIsSolidTile(t *testing.T) {
	w := mustParse(t, "P..G\n####\n")

	for col := 0; col < 4; col++ {
		if w.IsSolidTile(col, 0) {
			t.Errorf("tile (%d, 0) should be empty", col)
		}
		if !w.IsSolidTile(col, 1) {
			t.Errorf("tile (%d, 1) should be solid", col)
		}
	}

	// Out of bounds is never solid.
	for _, pos := range [][2]int{{-1, 1}, {4, 1}, {0, -1}, {0, 2}} {
		if w.IsSolidTile(pos[0], pos[1]) {
			t.Errorf("out-of-bounds tile %v should not be solid", pos)
		}
	}
}

func TestGroundYForX(t *testing.T) {
	w := mustParse(t, strings.Join([]string{
		"P..G",
		"....",
		"##.#",
	}, "\n"))

	y, ok := w.GroundYForX(testTile/2, 0)
	if !ok {
		t.Fatal("column 0 has ground")
	}
	if y != 2*testTile {
		t.Errorf("ground y = %d, want %d", y, 2*testTile)
	}

	// Column 2 has no solid at all.
	if _, ok := w.GroundYForX(2*testTile+testTile/2, 0); ok {
		t.Error("column 2 should report no ground")
	}

	// Scanning starts at startY: below the only solid there is nothing.
	if _, ok := w.GroundYForX(testTile/2, 3*testTile); ok {
		t.Error("no ground below startY in column 0")
	}

	// Negative x must floor to a column left of the grid, not column 0.
	if _, ok := w.GroundYForX(-1, 0); ok {
		t.Error("negative x is outside the grid")
	}
}

func TestGoalTriggerRect(t *testing.T) {
	w := mustParse(t, "P..G\n####\n")

	pole := w.GoalTriggerRect()
	if pole.H != 3*testTile {
		t.Errorf("pole height = %d, want %d", pole.H, 3*testTile)
	}
	if pole.W != (testTile*9)/50 {
		t.Errorf("pole width = %d, want %d", pole.W, (testTile*9)/50)
	}

	// Anchored at the ground below the goal tile.
	if pole.Y+pole.H != testTile {
		t.Errorf("pole bottom = %d, want %d", pole.Y+pole.H, testTile)
	}

	// Horizontally centered on the goal tile.
	goalCenter := w.GoalTile.X + testTile/2
	if pole.X+pole.W/2 < goalCenter-1 || pole.X+pole.W/2 > goalCenter+1 {
		t.Errorf("pole center %d not on goal center %d", pole.X+pole.W/2, goalCenter)
	}
}

func TestMushroomSettlesOnGround(t *testing.T) {
	w := mustParse(t, strings.Join([]string{
		"P.M.G",
		".....",
		"#####",
	}, "\n"))

	if len(w.Mushrooms) != 1 {
		t.Fatalf("mushrooms = %d, want 1", len(w.Mushrooms))
	}
	m := w.Mushrooms[0]
	if m.Y != 2*testTile-testMushroomSize.Y {
		t.Errorf("mushroom y = %d, want resting on ground at %d", m.Y, 2*testTile-testMushroomSize.Y)
	}
}
