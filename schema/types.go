package schema

import "fmt"

// TagID identifies a tag. Ids are assigned monotonically and never reused.
type TagID uint32

// WindowID identifies a window. Ids are owned by the windowing subsystem.
type WindowID uint32

// OutputName identifies an output by its connector name (e.g. "DP-1").
type OutputName string

// Geometry is the logical placement of an output.
type Geometry struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

// SameSize reports whether both geometries have the same logical size.
func (g Geometry) SameSize(other Geometry) bool {
	return g.Width == other.Width && g.Height == other.Height
}

// SamePosition reports whether both geometries share the same origin.
func (g Geometry) SamePosition(other Geometry) bool {
	return g.X == other.X && g.Y == other.Y
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", g.Width, g.Height, g.X, g.Y)
}

// SetActiveMode selects the boolean transition applied by SetActive.
type SetActiveMode int

const (
	// SetActiveUnspecified is the zero value and is rejected.
	SetActiveUnspecified SetActiveMode = iota
	// SetActiveSet forces the flag on.
	SetActiveSet
	// SetActiveUnset forces the flag off.
	SetActiveUnset
	// SetActiveToggle flips the flag.
	SetActiveToggle
)

// Apply returns the flag value resulting from the transition.
func (m SetActiveMode) Apply(current bool) bool {
	switch m {
	case SetActiveSet:
		return true
	case SetActiveUnset:
		return false
	case SetActiveToggle:
		return !current
	default:
		return current
	}
}

// Valid reports whether the mode is one of set, unset or toggle.
func (m SetActiveMode) Valid() bool {
	return m == SetActiveSet || m == SetActiveUnset || m == SetActiveToggle
}

func (m SetActiveMode) String() string {
	switch m {
	case SetActiveSet:
		return "set"
	case SetActiveUnset:
		return "unset"
	case SetActiveToggle:
		return "toggle"
	default:
		return "unspecified"
	}
}

// ParseSetActiveMode parses "set", "unset" or "toggle".
func ParseSetActiveMode(value string) (SetActiveMode, error) {
	switch value {
	case "set", "on", "true":
		return SetActiveSet, nil
	case "unset", "off", "false":
		return SetActiveUnset, nil
	case "toggle":
		return SetActiveToggle, nil
	default:
		return SetActiveUnspecified, fmt.Errorf("%w: mode %q", ErrInvalidRequest, value)
	}
}
