package controlpb

import "fmt"

// StreamControl is the client to server flow-control message.
type StreamControl int32

const (
	StreamControlUnspecified StreamControl = 0
	// StreamControlReady grants one unit of credit.
	StreamControlReady StreamControl = 1
	// StreamControlDisconnect closes the subscription.
	StreamControlDisconnect StreamControl = 2
)

func (v StreamControl) String() string {
	switch v {
	case StreamControlReady:
		return "STREAM_CONTROL_READY"
	case StreamControlDisconnect:
		return "STREAM_CONTROL_DISCONNECT"
	case StreamControlUnspecified:
		return "STREAM_CONTROL_UNSPECIFIED"
	default:
		return fmt.Sprintf("STREAM_CONTROL(%d)", int32(v))
	}
}

// SignalRequest is shared by every signal stream.
type SignalRequest struct {
	Control StreamControl
}

func (m *SignalRequest) AppendWire(b []byte) []byte {
	return appendInt32(b, 1, int32(m.Control))
}

func (m *SignalRequest) UnmarshalWire(b []byte) error {
	*m = SignalRequest{}
	return walk(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		v, err := f.int32()
		m.Control = StreamControl(v)
		return err
	})
}

// OutputConnectResponse is tagwm.signal.v1.OutputConnectResponse.
type OutputConnectResponse struct {
	OutputName string
}

func (m *OutputConnectResponse) AppendWire(b []byte) []byte {
	return appendString(b, 1, m.OutputName)
}

func (m *OutputConnectResponse) UnmarshalWire(b []byte) error {
	*m = OutputConnectResponse{}
	return walk(b, func(f field) error {
		var err error
		if f.num == 1 {
			m.OutputName, err = f.string()
		}
		return err
	})
}

// OutputDisconnectResponse is tagwm.signal.v1.OutputDisconnectResponse.
type OutputDisconnectResponse struct {
	OutputName string
}

func (m *OutputDisconnectResponse) AppendWire(b []byte) []byte {
	return appendString(b, 1, m.OutputName)
}

func (m *OutputDisconnectResponse) UnmarshalWire(b []byte) error {
	*m = OutputDisconnectResponse{}
	return walk(b, func(f field) error {
		var err error
		if f.num == 1 {
			m.OutputName, err = f.string()
		}
		return err
	})
}

// OutputResizeResponse is tagwm.signal.v1.OutputResizeResponse.
type OutputResizeResponse struct {
	OutputName    string
	LogicalWidth  uint32
	LogicalHeight uint32
}

func (m *OutputResizeResponse) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.OutputName)
	b = appendUint(b, 2, uint64(m.LogicalWidth))
	return appendUint(b, 3, uint64(m.LogicalHeight))
}

func (m *OutputResizeResponse) UnmarshalWire(b []byte) error {
	*m = OutputResizeResponse{}
	return walk(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.OutputName, err = f.string()
		case 2:
			m.LogicalWidth, err = f.uint32()
		case 3:
			m.LogicalHeight, err = f.uint32()
		}
		return err
	})
}

// OutputMoveResponse is tagwm.signal.v1.OutputMoveResponse.
type OutputMoveResponse struct {
	OutputName string
	X          int32
	Y          int32
}

func (m *OutputMoveResponse) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.OutputName)
	b = appendInt32(b, 2, m.X)
	return appendInt32(b, 3, m.Y)
}

func (m *OutputMoveResponse) UnmarshalWire(b []byte) error {
	*m = OutputMoveResponse{}
	return walk(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.OutputName, err = f.string()
		case 2:
			m.X, err = f.int32()
		case 3:
			m.Y, err = f.int32()
		}
		return err
	})
}

// WindowPointerEnterResponse is tagwm.signal.v1.WindowPointerEnterResponse.
type WindowPointerEnterResponse struct {
	WindowId uint32
}

func (m *WindowPointerEnterResponse) AppendWire(b []byte) []byte {
	return appendUint(b, 1, uint64(m.WindowId))
}

func (m *WindowPointerEnterResponse) UnmarshalWire(b []byte) error {
	*m = WindowPointerEnterResponse{}
	return walk(b, func(f field) error {
		var err error
		if f.num == 1 {
			m.WindowId, err = f.uint32()
		}
		return err
	})
}

// WindowPointerLeaveResponse is tagwm.signal.v1.WindowPointerLeaveResponse.
type WindowPointerLeaveResponse struct {
	WindowId uint32
}

func (m *WindowPointerLeaveResponse) AppendWire(b []byte) []byte {
	return appendUint(b, 1, uint64(m.WindowId))
}

func (m *WindowPointerLeaveResponse) UnmarshalWire(b []byte) error {
	*m = WindowPointerLeaveResponse{}
	return walk(b, func(f field) error {
		var err error
		if f.num == 1 {
			m.WindowId, err = f.uint32()
		}
		return err
	})
}

// TagActiveResponse is tagwm.signal.v1.TagActiveResponse.
type TagActiveResponse struct {
	TagId  uint32
	Active bool
}

func (m *TagActiveResponse) AppendWire(b []byte) []byte {
	b = appendUint(b, 1, uint64(m.TagId))
	return appendBool(b, 2, m.Active)
}

func (m *TagActiveResponse) UnmarshalWire(b []byte) error {
	*m = TagActiveResponse{}
	return walk(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.TagId, err = f.uint32()
		case 2:
			m.Active, err = f.bool()
		}
		return err
	})
}
