package core

// Action represents a semantic game action, abstracted from physical key presses.
// Keyboard, touch or scripted input all reduce to this vocabulary.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, A, H
	ActionRight            // Right arrow, D, L
	ActionSoftDrop         // Down arrow, S, J
	ActionRotate           // Up arrow, W, K, X
	ActionHardDrop         // Space
	ActionPause            // P, Escape
	ActionStart            // Enter
	ActionRestart          // R
	ActionQuit             // Q, Ctrl+C
	ActionToggleHelp       // ?
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
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionToggleHelp:
		return "ToggleHelp"
	default:
		return "Unknown"
	}
}

// GameActions lists the actions that reach the game engine, in a stable order.
// Scripted drivers pick from this list.
func GameActions() []Action {
	return []Action{
		ActionLeft,
		ActionRight,
		ActionSoftDrop,
		ActionRotate,
		ActionHardDrop,
	}
}
