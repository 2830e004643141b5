package core

// Action represents a semantic viewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionNext              // Right, L - next iteration
	ActionPrev              // Left, H - previous iteration
	ActionFirst             // Home, g - first iteration
	ActionLast              // End, Shift+G - last iteration
	ActionTogglePlay        // Space - play/pause
	ActionFaster            // + - raise playback rate
	ActionSlower            // - - lower playback rate
	ActionToggleIDs         // I - show domino ids
	ActionRestart           // R - regenerate with a fresh seed
	ActionBack              // B, Escape - return to the caller
	ActionQuit              // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNext:
		return "Next"
	case ActionPrev:
		return "Prev"
	case ActionFirst:
		return "First"
	case ActionLast:
		return "Last"
	case ActionTogglePlay:
		return "TogglePlay"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionToggleIDs:
		return "ToggleIDs"
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
