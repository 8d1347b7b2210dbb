package core

// Action represents a semantic player intent, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, Left arrow - move ship left
	ActionRight              // D, Right arrow - move ship right
	ActionFire               // Space - fire a bullet
	ActionRestart            // R - start a new session
	ActionPause              // P - pause/unpause
	ActionToggleMusic        // M - background music on/off
	ActionToggleSFX          // X - sound effects on/off
	ActionHelp               // ? - expand key help
	ActionQuit               // Q, Ctrl+C - exit
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
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionToggleMusic:
		return "ToggleMusic"
	case ActionToggleSFX:
		return "ToggleSFX"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
