package core

// Action represents a semantic player intent, abstracted from physical keys
// and mouse buttons.
type Action int

const (
	ActionNone         Action = iota
	ActionLeft                // Left arrow, A - nudge the paddle left
	ActionRight               // Right arrow, D - nudge the paddle right
	ActionLaunch              // Space, left click - launch balls resting on the paddle
	ActionPause               // P, Escape - pause/unpause
	ActionRestartLevel        // L - rebuild the current level
	ActionRestartGame         // R - start over from the first level
	ActionQuit                // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionRestartLevel:
		return "RestartLevel"
	case ActionRestartGame:
		return "RestartGame"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input sampled during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// PointerX is the last pointer position in playfield units.
	// Only meaningful when HasPointer is true.
	PointerX   float64
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Point records a pointer position for this frame. Later calls win.
func (f *InputFrame) Point(x float64) {
	f.PointerX = x
	f.HasPointer = true
}

// Clear resets all actions for the next frame.
// The pointer position is sticky and survives a clear.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
