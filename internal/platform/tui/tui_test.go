package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/sim"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInputTrackerJumpEdges(t *testing.T) {
	tr := NewInputTracker()
	tr.HandleKey(keyMsg(" "))

	in := tr.Next()
	if !in.JumpPressed {
		t.Fatal("first tick after press should carry the press edge")
	}
	if in.JumpReleased {
		t.Fatal("press and release must not fire together")
	}

	// Edge fires once.
	if tr.Next().JumpPressed {
		t.Error("press edge repeated")
	}

	// No repeats arrive: the release edge fires when the window lapses.
	released := 0
	for i := 0; i < jumpHoldTicks+2; i++ {
		if tr.Next().JumpReleased {
			released++
		}
	}
	if released != 1 {
		t.Errorf("release edges = %d, want exactly 1", released)
	}
}

func TestInputTrackerJumpRepeatExtendsHold(t *testing.T) {
	tr := NewInputTracker()
	tr.HandleKey(keyMsg(" "))
	tr.Next()

	// Auto-repeat while held: no second press edge, hold window refreshed.
	tr.HandleKey(keyMsg(" "))
	in := tr.Next()
	if in.JumpPressed {
		t.Error("auto-repeat must not produce a second press edge")
	}
	if in.JumpReleased {
		t.Error("hold window should have been refreshed")
	}
}

func TestInputTrackerMovementWindow(t *testing.T) {
	tr := NewInputTracker()
	tr.HandleKey(keyMsg("d"))

	held := 0
	for i := 0; i < moveHoldTicks+5; i++ {
		if tr.Next().Right {
			held++
		}
	}
	if held != moveHoldTicks {
		t.Errorf("right held for %d ticks, want %d", held, moveHoldTicks)
	}
}

func TestInputTrackerOneShotEdges(t *testing.T) {
	tr := NewInputTracker()
	tr.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	tr.HandleKey(keyMsg("r"))
	tr.HandleKey(tea.KeyMsg{Type: tea.KeyEscape})

	in := tr.Next()
	if !in.StartPressed || !in.RestartPressed || !in.QuitPressed {
		t.Errorf("queued edges missing: %+v", in)
	}

	in = tr.Next()
	if in.StartPressed || in.RestartPressed || in.QuitPressed {
		t.Errorf("one-shot edges repeated: %+v", in)
	}
}

func TestInputTrackerReset(t *testing.T) {
	tr := NewInputTracker()
	tr.HandleKey(keyMsg("d"))
	tr.HandleKey(keyMsg(" "))
	tr.HandleKey(keyMsg("r"))
	tr.Reset()

	in := tr.Next()
	if in != (sim.StepInput{}) {
		t.Errorf("after Reset the next input must be empty, got %+v", in)
	}

	// Reset drops held state, not the clock: a fresh press still works.
	tr.HandleKey(keyMsg(" "))
	if !tr.Next().JumpPressed {
		t.Error("press after Reset must fire its edge")
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(4, 2, 5, 5, '#', ColorGray)

	if got := s.Get(4, 2); got != '#' {
		t.Errorf("Get(4,2) = %q, want '#'", got)
	}
	if got := s.Get(5, 3); got != '#' {
		t.Errorf("Get(5,3) = %q, want '#'", got)
	}
	if got := s.Get(3, 2); got != ' ' {
		t.Errorf("Get(3,2) = %q, fill must not spill left", got)
	}

	s.Clear()
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("Clear left %q at (%d,%d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenClipsAndGroups(t *testing.T) {
	s := NewScreen(10, 3)
	s.Set(-1, 0, 'x', ColorRed)
	s.Set(10, 0, 'x', ColorRed)
	s.Set(0, 3, 'x', ColorRed)
	s.DrawText(8, 1, "abcd", ColorGreen) // clips after "ab"

	if got := s.Get(9, 1); got != 'b' {
		t.Errorf("Get(9,1) = %q, want 'b'", got)
	}
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("out-of-bounds writes must be ignored, got %q at origin", got)
	}

	if lines := strings.Split(s.String(), "\n"); len(lines) != 3 {
		t.Errorf("String() rows = %d, want 3", len(lines))
	}
}

func screenRow(s *Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.Get(x, y))
	}
	return sb.String()
}

func renderTestState(t *testing.T) *sim.GameState {
	t.Helper()
	cfg := sim.DefaultConfig()
	w, err := world.FromASCII(world.FallbackLevel, cfg.TileSize, cfg.MushroomSize)
	if err != nil {
		t.Fatalf("FromASCII: %v", err)
	}
	return sim.NewGame(w, cfg)
}

func TestRenderFrameTitleOverlay(t *testing.T) {
	state := renderTestState(t)
	s := NewScreen(80, 24)

	RenderFrame(s, state.Snapshot(), state.SolidAt)

	if !strings.Contains(screenRow(s, s.Height()/2), "press enter to start") {
		t.Error("title overlay missing")
	}
	if !strings.Contains(screenRow(s, 0), "SCORE 000000") {
		t.Error("HUD missing")
	}
}

func TestRenderFrameDrawsActors(t *testing.T) {
	state := renderTestState(t)
	state.Step(sim.StepInput{StartPressed: true})
	s := NewScreen(80, 24)

	RenderFrame(s, state.Snapshot(), state.SolidAt)

	frame := ""
	for y := 0; y < s.Height(); y++ {
		frame += screenRow(s, y)
	}

	if !strings.ContainsRune(frame, '@') {
		t.Error("player glyph missing")
	}
	if !strings.ContainsRune(frame, 'o') {
		t.Error("coin glyphs missing")
	}
	if !strings.ContainsRune(frame, '█') {
		t.Error("solid tiles missing")
	}
}
