package sim

// Phase is the top-level game phase. Transitions are handled exhaustively in
// Step; there is no per-phase dispatch beyond that switch.
type Phase uint8

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseLevelComplete
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "Title"
	case PhasePlaying:
		return "Playing"
	case PhaseLevelComplete:
		return "LevelComplete"
	default:
		return "Unknown"
	}
}
