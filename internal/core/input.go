package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - flap
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart after game over
	ActionBack           // B, Escape - leave the game
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone {
		return
	}
	f.bits |= 1 << uint(a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone {
		return false
	}
	return f.bits&(1<<uint(a)) != 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}
