package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/sim"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Model is the Bubble Tea model driving one game session.
type Model struct {
	state      *sim.GameState
	store      *storage.Store
	level      string // level name used for score persistence
	tickRate   int
	screen     *Screen
	input      *InputTracker
	quitting   bool
	scoreSaved bool // Whether score has been saved for current completion
}

// NewModel creates a new Bubble Tea model for the given game state.
func NewModel(state *sim.GameState, store *storage.Store, level string, tickRate int) Model {
	if tickRate <= 0 {
		tickRate = 60
	}

	return Model{
		state:    state,
		store:    store,
		level:    level,
		tickRate: tickRate,
		screen:   NewScreen(80, 24),
		input:    NewInputTracker(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		// On the title screen escape leaves the program; in play it is the
		// quit-to-title input.
		if m.state.Phase == sim.PhaseTitle {
			m.quitting = true
			return m, tea.Quit
		}
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	m.input.HandleKey(msg)
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prevPhase := m.state.Phase
	m.state.Step(m.input.Next())

	// Back on the title screen, held keys from the previous run are stale.
	if m.state.Phase == sim.PhaseTitle && prevPhase != sim.PhaseTitle {
		m.input.Reset()
	}

	// Save score once per completion
	if m.state.Phase == sim.PhaseLevelComplete && !m.scoreSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.level, int(m.state.Score), int(m.state.Tick))
		}
		m.scoreSaved = true
	}
	if m.state.Phase != sim.PhaseLevelComplete {
		m.scoreSaved = false
	}

	return m, tickCmd(m.tickRate)
}

// saveScreenshot saves the current frame to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".platformer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.level, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	RenderFrame(m.screen, m.state.Snapshot(), m.state.SolidAt)
	return m.screen.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(state *sim.GameState, store *storage.Store, level string, tickRate int) error {
	model := NewModel(state, store, level, tickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
