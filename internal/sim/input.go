package sim

// StepInput is one tick's worth of player input. Left and Right are level
// signals (held keys); the rest are edge signals raised on the tick the key
// went down (or up, for JumpReleased).
type StepInput struct {
	Left           bool
	Right          bool
	JumpPressed    bool
	JumpReleased   bool
	StartPressed   bool
	RestartPressed bool
	QuitPressed    bool
}

// MoveX derives the horizontal input axis: -1, 0, or 1.
func (in StepInput) MoveX() int {
	x := 0
	if in.Right {
		x++
	}
	if in.Left {
		x--
	}
	return x
}
