package controlpb

// GetOutputsRequest is tagwm.output.v1.GetRequest.
type GetOutputsRequest struct{}

func (m *GetOutputsRequest) AppendWire(b []byte) []byte { return b }

func (m *GetOutputsRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(field) error { return nil })
}

// GetOutputsResponse is tagwm.output.v1.GetResponse.
type GetOutputsResponse struct {
	OutputNames []string
}

func (m *GetOutputsResponse) AppendWire(b []byte) []byte {
	return appendStrings(b, 1, m.OutputNames)
}

func (m *GetOutputsResponse) UnmarshalWire(b []byte) error {
	*m = GetOutputsResponse{}
	return walk(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		v, err := f.string()
		if err != nil {
			return err
		}
		m.OutputNames = append(m.OutputNames, v)
		return nil
	})
}

// GetOutputPropertiesRequest is tagwm.output.v1.GetPropertiesRequest.
type GetOutputPropertiesRequest struct {
	OutputName string
}

func (m *GetOutputPropertiesRequest) AppendWire(b []byte) []byte {
	return appendString(b, 1, m.OutputName)
}

func (m *GetOutputPropertiesRequest) UnmarshalWire(b []byte) error {
	*m = GetOutputPropertiesRequest{}
	return walk(b, func(f field) error {
		var err error
		if f.num == 1 {
			m.OutputName, err = f.string()
		}
		return err
	})
}

// GetOutputPropertiesResponse is tagwm.output.v1.GetPropertiesResponse.
type GetOutputPropertiesResponse struct {
	X             int32
	Y             int32
	LogicalWidth  uint32
	LogicalHeight uint32
	TagIds        []uint32
}

func (m *GetOutputPropertiesResponse) AppendWire(b []byte) []byte {
	b = appendInt32(b, 1, m.X)
	b = appendInt32(b, 2, m.Y)
	b = appendUint(b, 3, uint64(m.LogicalWidth))
	b = appendUint(b, 4, uint64(m.LogicalHeight))
	return appendPackedUint32(b, 5, m.TagIds)
}

func (m *GetOutputPropertiesResponse) UnmarshalWire(b []byte) error {
	*m = GetOutputPropertiesResponse{}
	return walk(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.X, err = f.int32()
		case 2:
			m.Y, err = f.int32()
		case 3:
			m.LogicalWidth, err = f.uint32()
		case 4:
			m.LogicalHeight, err = f.uint32()
		case 5:
			m.TagIds, err = f.appendUint32s(m.TagIds)
		}
		return err
	})
}
