package core

// Action represents a semantic game intent, abstracted from physical key presses.
// The input source produces at most one Action per simulation tick.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P, Escape - handled by the driver, never reaches the engine
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action asks for a heading change.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// Heading maps a direction action to its unit vector.
// ok is false for non-direction actions.
func (a Action) Heading() (v Vec, ok bool) {
	switch a {
	case ActionUp:
		return VecUp, true
	case ActionDown:
		return VecDown, true
	case ActionLeft:
		return VecLeft, true
	case ActionRight:
		return VecRight, true
	}
	return Vec{}, false
}

// Merge folds a newly polled action into one still pending for the next tick.
// Restart and Quit are sticky; a later direction replaces an earlier one.
func Merge(pending, next Action) Action {
	switch {
	case next == ActionNone:
		return pending
	case pending == ActionQuit:
		return pending
	case pending == ActionRestart && next != ActionQuit:
		return pending
	}
	return next
}
