package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/sim"
)

// Hold windows in ticks. Terminals deliver key presses and auto-repeats but
// never releases, so a held key is modeled as a deadline refreshed by each
// repeat. Movement needs a window longer than the terminal's initial repeat
// delay or walking stutters; the jump window is shorter so the synthesized
// release still allows short hops.
const (
	moveHoldTicks = 22
	jumpHoldTicks = 14
)

// InputTracker converts key presses into per-tick simulation inputs.
// HandleKey runs on every key message; Next drains the accumulated state into
// exactly one StepInput per tick, synthesizing the jump release edge when the
// jump hold window lapses.
type InputTracker struct {
	tick uint64

	leftUntil  uint64
	rightUntil uint64
	jumpUntil  uint64

	jumpHeld      bool
	jumpQueued    bool
	startQueued   bool
	restartQueued bool
	quitQueued    bool
}

// NewInputTracker creates an input tracker with empty state.
func NewInputTracker() *InputTracker {
	return &InputTracker{}
}

// HandleKey processes one key message. Returns true for keys the tracker
// consumed; the caller handles everything else (hard quit, screenshots).
func (t *InputTracker) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "left", "a", "h":
		t.leftUntil = t.tick + moveHoldTicks
	case "right", "d", "l":
		t.rightUntil = t.tick + moveHoldTicks
	case " ", "up", "w", "k":
		if !t.jumpHeld {
			t.jumpQueued = true
		}
		t.jumpHeld = true
		t.jumpUntil = t.tick + jumpHoldTicks
	case "enter":
		t.startQueued = true
	case "r":
		t.restartQueued = true
	case "esc":
		t.quitQueued = true
	default:
		return false
	}
	return true
}

// Next returns the input for the upcoming tick and advances the tracker's
// clock. One-shot edges (jump press, start, restart, quit) fire exactly once.
func (t *InputTracker) Next() sim.StepInput {
	t.tick++

	in := sim.StepInput{
		Left:           t.tick <= t.leftUntil,
		Right:          t.tick <= t.rightUntil,
		JumpPressed:    t.jumpQueued,
		StartPressed:   t.startQueued,
		RestartPressed: t.restartQueued,
		QuitPressed:    t.quitQueued,
	}

	if t.jumpHeld && t.tick > t.jumpUntil {
		in.JumpReleased = true
		t.jumpHeld = false
	}

	t.jumpQueued = false
	t.startQueued = false
	t.restartQueued = false
	t.quitQueued = false

	return in
}

// Reset clears all held and queued state.
func (t *InputTracker) Reset() {
	*t = InputTracker{tick: t.tick}
}
