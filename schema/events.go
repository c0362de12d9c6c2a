package schema

import "fmt"

// SignalKind names one signal channel.
type SignalKind int

const (
	// SignalOutputConnect fires when an output is connected.
	SignalOutputConnect SignalKind = iota + 1
	// SignalOutputDisconnect fires when an output is disconnected.
	SignalOutputDisconnect
	// SignalOutputResize fires when an output's logical size changes.
	SignalOutputResize
	// SignalOutputMove fires when an output's logical position changes.
	SignalOutputMove
	// SignalWindowPointerEnter fires when the pointer enters a window.
	SignalWindowPointerEnter
	// SignalWindowPointerLeave fires when the pointer leaves a window.
	SignalWindowPointerLeave
	// SignalTagActive fires when a tag's active flag changes.
	SignalTagActive
)

// NumSignalKinds is the number of signal kinds.
const NumSignalKinds = int(SignalTagActive)

// SignalKinds lists every kind in channel order.
var SignalKinds = []SignalKind{
	SignalOutputConnect,
	SignalOutputDisconnect,
	SignalOutputResize,
	SignalOutputMove,
	SignalWindowPointerEnter,
	SignalWindowPointerLeave,
	SignalTagActive,
}

var signalKindNames = map[SignalKind]string{
	SignalOutputConnect:      "output-connect",
	SignalOutputDisconnect:   "output-disconnect",
	SignalOutputResize:       "output-resize",
	SignalOutputMove:         "output-move",
	SignalWindowPointerEnter: "window-pointer-enter",
	SignalWindowPointerLeave: "window-pointer-leave",
	SignalTagActive:          "tag-active",
}

func (k SignalKind) String() string {
	if name, ok := signalKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("signal-kind(%d)", int(k))
}

// Valid reports whether k is one of the known kinds.
func (k SignalKind) Valid() bool {
	_, ok := signalKindNames[k]
	return ok
}

// ParseSignalKind resolves a kind from its channel name.
func ParseSignalKind(value string) (SignalKind, error) {
	for kind, name := range signalKindNames {
		if name == value {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: signal kind %q", ErrInvalidRequest, value)
}

// Signal is a state-change notification delivered on exactly one channel.
// The set of implementations is closed.
type Signal interface {
	Kind() SignalKind
	isSignal()
}

// OutputConnectSignal carries a newly connected output.
type OutputConnectSignal struct {
	OutputName OutputName
}

// OutputDisconnectSignal carries a removed output.
type OutputDisconnectSignal struct {
	OutputName OutputName
}

// OutputResizeSignal carries a new logical size.
type OutputResizeSignal struct {
	OutputName OutputName
	Width      uint32
	Height     uint32
}

// OutputMoveSignal carries a new logical position.
type OutputMoveSignal struct {
	OutputName OutputName
	X          int32
	Y          int32
}

// WindowPointerEnterSignal carries the window the pointer entered.
type WindowPointerEnterSignal struct {
	WindowID WindowID
}

// WindowPointerLeaveSignal carries the window the pointer left.
type WindowPointerLeaveSignal struct {
	WindowID WindowID
}

// TagActiveSignal carries a tag's new active flag.
type TagActiveSignal struct {
	TagID  TagID
	Active bool
}

func (OutputConnectSignal) Kind() SignalKind      { return SignalOutputConnect }
func (OutputDisconnectSignal) Kind() SignalKind   { return SignalOutputDisconnect }
func (OutputResizeSignal) Kind() SignalKind       { return SignalOutputResize }
func (OutputMoveSignal) Kind() SignalKind         { return SignalOutputMove }
func (WindowPointerEnterSignal) Kind() SignalKind { return SignalWindowPointerEnter }
func (WindowPointerLeaveSignal) Kind() SignalKind { return SignalWindowPointerLeave }
func (TagActiveSignal) Kind() SignalKind          { return SignalTagActive }

func (OutputConnectSignal) isSignal()      {}
func (OutputDisconnectSignal) isSignal()   {}
func (OutputResizeSignal) isSignal()       {}
func (OutputMoveSignal) isSignal()         {}
func (WindowPointerEnterSignal) isSignal() {}
func (WindowPointerLeaveSignal) isSignal() {}
func (TagActiveSignal) isSignal()          {}
