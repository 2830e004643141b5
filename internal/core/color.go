package core

// Color is a semantic foreground role for a screen cell. The platform layer
// maps roles to concrete terminal colors, so a palette can be swapped without
// touching drawing code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorUp            // domino sliding up
	ColorRight         // domino sliding right
	ColorDown          // domino sliding down
	ColorLeft          // domino sliding left
	ColorEmpty         // empty cell inside the diamond
	ColorFrame         // borders and rules
	ColorAccent        // header highlights
	ColorMuted         // secondary text
)

// String returns a human-readable name for the color role.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorUp:
		return "up"
	case ColorRight:
		return "right"
	case ColorDown:
		return "down"
	case ColorLeft:
		return "left"
	case ColorEmpty:
		return "empty"
	case ColorFrame:
		return "frame"
	case ColorAccent:
		return "accent"
	case ColorMuted:
		return "muted"
	default:
		return "unknown"
	}
}
