package controlpb

// GetWindowsRequest is tagwm.window.v1.GetRequest.
type GetWindowsRequest struct{}

func (m *GetWindowsRequest) AppendWire(b []byte) []byte { return b }

func (m *GetWindowsRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(field) error { return nil })
}

// GetWindowsResponse is tagwm.window.v1.GetResponse.
type GetWindowsResponse struct {
	WindowIds []uint32
}

func (m *GetWindowsResponse) AppendWire(b []byte) []byte {
	return appendPackedUint32(b, 1, m.WindowIds)
}

func (m *GetWindowsResponse) UnmarshalWire(b []byte) error {
	*m = GetWindowsResponse{}
	return walk(b, func(f field) error {
		var err error
		if f.num == 1 {
			m.WindowIds, err = f.appendUint32s(m.WindowIds)
		}
		return err
	})
}

// GetWindowPropertiesRequest is tagwm.window.v1.GetPropertiesRequest.
type GetWindowPropertiesRequest struct {
	WindowId uint32
}

func (m *GetWindowPropertiesRequest) AppendWire(b []byte) []byte {
	return appendUint(b, 1, uint64(m.WindowId))
}

func (m *GetWindowPropertiesRequest) UnmarshalWire(b []byte) error {
	*m = GetWindowPropertiesRequest{}
	return walk(b, func(f field) error {
		var err error
		if f.num == 1 {
			m.WindowId, err = f.uint32()
		}
		return err
	})
}

// GetWindowPropertiesResponse is tagwm.window.v1.GetPropertiesResponse.
type GetWindowPropertiesResponse struct {
	TagIds       []uint32
	PointerFocus bool
}

func (m *GetWindowPropertiesResponse) AppendWire(b []byte) []byte {
	b = appendPackedUint32(b, 1, m.TagIds)
	return appendBool(b, 2, m.PointerFocus)
}

func (m *GetWindowPropertiesResponse) UnmarshalWire(b []byte) error {
	*m = GetWindowPropertiesResponse{}
	return walk(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.TagIds, err = f.appendUint32s(m.TagIds)
		case 2:
			m.PointerFocus, err = f.bool()
		}
		return err
	})
}

// SetWindowTagRequest is tagwm.window.v1.SetTagRequest.
type SetWindowTagRequest struct {
	WindowId    uint32
	TagId       uint32
	SetOrToggle SetOrToggle
}

func (m *SetWindowTagRequest) AppendWire(b []byte) []byte {
	b = appendUint(b, 1, uint64(m.WindowId))
	b = appendUint(b, 2, uint64(m.TagId))
	return appendInt32(b, 3, int32(m.SetOrToggle))
}

func (m *SetWindowTagRequest) UnmarshalWire(b []byte) error {
	*m = SetWindowTagRequest{}
	return walk(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.WindowId, err = f.uint32()
		case 2:
			m.TagId, err = f.uint32()
		case 3:
			var v int32
			v, err = f.int32()
			m.SetOrToggle = SetOrToggle(v)
		}
		return err
	})
}
